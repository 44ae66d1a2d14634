// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/33cn/arcade/common"
	"github.com/33cn/arcade/common/address"
	"github.com/33cn/arcade/common/crypto"
	"github.com/spf13/cobra"
)

// KeyInfo 私钥, 公钥以及地址
type KeyInfo struct {
	PrivKey string `json:"privKey,omitempty"`
	PubKey  string `json:"pubKey,omitempty"`
	Addr    string `json:"addr"`
}

// KeysCmd key command
func KeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Key and address tools",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		GenKeyCmd(),
		KeyToAddrCmd(),
		ExecAddrCmd(),
	)

	return cmd
}

// GenKeyCmd generate a secp256k1 key
func GenKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a new secp256k1 private key",
		Run:   genKey,
	}
	return cmd
}

func genKey(cmd *cobra.Command, args []string) {
	c, err := crypto.New(crypto.NameSecp256k1)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	priv, err := c.GenKey()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	pub := priv.PubKey().Bytes()
	output(&KeyInfo{
		PrivKey: common.ToHex(priv.Bytes()),
		PubKey:  common.ToHex(pub),
		Addr:    address.PubKeyToAddress(pub).String(),
	})
}

// KeyToAddrCmd address of --key
func KeyToAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Get address of the private keys given by --key",
		Run:   keyToAddr,
	}
	return cmd
}

func keyToAddr(cmd *cobra.Command, args []string) {
	keys, _ := cmd.Flags().GetStringSlice("key")
	var infos []*KeyInfo
	for _, key := range keys {
		priv, err := parsePrivKey(key)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		pub := priv.PubKey().Bytes()
		infos = append(infos, &KeyInfo{PubKey: common.ToHex(pub), Addr: address.PubKeyToAddress(pub).String()})
	}
	output(infos)
}

// ExecAddrCmd 执行器自身的账户地址
func ExecAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec_addr",
		Short: "Get address of executor",
		Run:   execAddr,
	}
	cmd.Flags().StringP("exec", "e", "", "executor name")
	cmd.MarkFlagRequired("exec")
	return cmd
}

func execAddr(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("exec")
	output(&KeyInfo{Addr: address.ExecAddress(name)})
}

func output(v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(data))
}
