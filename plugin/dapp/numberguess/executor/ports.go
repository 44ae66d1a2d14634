// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/arcade/account"
	"github.com/33cn/arcade/executor"
	gt "github.com/33cn/arcade/plugin/dapp/numberguess/types"
	"github.com/33cn/arcade/types"
)

// RandomnessSource 引擎依赖的随机数预言机
type RandomnessSource interface {
	Request(requester string, requestID uint64) (*types.Receipt, error)
	ReadResult(caller string, requestID uint64) (uint64, error)
}

// TokenTransfer 引擎依赖的结算代币
type TokenTransfer interface {
	Transfer(from, to string, amount int64) (*types.Receipt, error)
}

// withRandomness 以当前合约的身份调用 rng 合约
func withRandomness(env *executor.Env, rngContract string, fn func(src RandomnessSource) error) error {
	return env.CallAddr(rngContract, func(d executor.Driver) error {
		src, ok := d.(RandomnessSource)
		if !ok {
			glog.Error("withRandomness", "contract", rngContract, "exec", d.GetName(), "err", gt.ErrRngContract)
			return gt.ErrRngContract
		}
		return fn(src)
	})
}

// settlementToken 结算代币账户, 转出前检查 from 的授权
func settlementToken(env *executor.Env, symbol string) (TokenTransfer, error) {
	acc, err := account.NewAccountDB(symbol, env.StateDB())
	if err != nil {
		return nil, err
	}
	return acc.SetAuthorizer(env.RequireAuth), nil
}
