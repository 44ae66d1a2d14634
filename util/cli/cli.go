// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/33cn/arcade/common/log"
	"github.com/33cn/arcade/pluginmgr"
	"github.com/33cn/arcade/system/dapp/commands"
	"github.com/spf13/cobra"
)

// NewRootCmd 根命令, 加入所有已经注册插件的命令
func NewRootCmd(name string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   name,
		Short: name + " local node tools",
	}
	rootCmd.PersistentFlags().String("conf", name+".toml", "config file")
	rootCmd.PersistentFlags().StringSlice("key", nil, "private keys in hex to sign the transaction, may repeat")

	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.KeysCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
	return rootCmd
}

//Run :
func Run(name string) {
	log.SetLogLevel("error")
	if err := NewRootCmd(name).Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
