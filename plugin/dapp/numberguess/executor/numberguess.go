// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/arcade/common/log"
	"github.com/33cn/arcade/executor"
	gt "github.com/33cn/arcade/plugin/dapp/numberguess/types"
	"github.com/33cn/arcade/types"
)

var glog = log.New("module", "execs.numberguess")

// Init 按名字注册执行器, 重复注册忽略
func Init(name string) {
	if executor.IsRegistered(name) {
		return
	}
	executor.Register(name, newNumberGuess)
}

// NumberGuess 猜数字结算执行器
type NumberGuess struct {
	executor.DriverBase
}

func newNumberGuess() executor.Driver {
	return &NumberGuess{}
}

// GetActionName action name
func (g *NumberGuess) GetActionName(tx *types.Transaction) string {
	action, err := gt.DecodeAction(tx.Payload)
	if err != nil {
		return "unknown"
	}
	return gt.GetActionName(action.Ty)
}

// Exec 按 action 类型分发
func (g *NumberGuess) Exec(tx *types.Transaction) (*types.Receipt, error) {
	action, err := gt.DecodeAction(tx.Payload)
	if err != nil {
		return nil, err
	}
	actiondb := NewAction(g)
	if action.Ty == gt.NumberGuessActionInit && action.Init != nil {
		return actiondb.Init(action.Init)
	} else if action.Ty == gt.NumberGuessActionStart && action.Start != nil {
		return actiondb.StartGame(action.Start)
	} else if action.Ty == gt.NumberGuessActionGuess && action.Guess != nil {
		return actiondb.SubmitGuess(action.Guess.GameID, action.Guess.Guess)
	} else if action.Ty == gt.NumberGuessActionResolve && action.Resolve != nil {
		return actiondb.ResolveGame(action.Resolve.GameID)
	}
	return nil, types.ErrActionNotSupport
}

// Query 只读查询
func (g *NumberGuess) Query(funcName string, params []byte) (interface{}, error) {
	actiondb := NewAction(g)
	switch funcName {
	case gt.FuncNameGetGame:
		var req gt.ReqGame
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return actiondb.GetGame(req.GameID)
	case gt.FuncNameGetConfig:
		return actiondb.GetConfig()
	}
	return nil, types.ErrActionNotSupport
}
