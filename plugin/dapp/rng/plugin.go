// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rng

import (
	"github.com/33cn/arcade/plugin/dapp/rng/commands"
	"github.com/33cn/arcade/plugin/dapp/rng/executor"
	rt "github.com/33cn/arcade/plugin/dapp/rng/types"
	"github.com/33cn/arcade/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     rt.RngX,
		ExecName: rt.RngX,
		Exec:     executor.Init,
		Cmd:      commands.RngCmd,
	})
}
