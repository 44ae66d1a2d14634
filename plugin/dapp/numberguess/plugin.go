// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numberguess

import (
	"github.com/33cn/arcade/plugin/dapp/numberguess/commands"
	"github.com/33cn/arcade/plugin/dapp/numberguess/executor"
	gt "github.com/33cn/arcade/plugin/dapp/numberguess/types"
	"github.com/33cn/arcade/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     gt.NumberGuessX,
		ExecName: gt.NumberGuessX,
		Exec:     executor.Init,
		Cmd:      commands.NumberGuessCmd,
	})
}
