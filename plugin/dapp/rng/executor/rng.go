// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/arcade/common/log"
	"github.com/33cn/arcade/executor"
	rt "github.com/33cn/arcade/plugin/dapp/rng/types"
	"github.com/33cn/arcade/types"
)

var rlog = log.New("module", "execs.rng")

// Init 按名字注册执行器, 重复注册忽略
func Init(name string) {
	if executor.IsRegistered(name) {
		return
	}
	executor.Register(name, newRng)
}

// Rng 随机数预言机执行器
type Rng struct {
	executor.DriverBase
}

func newRng() executor.Driver {
	return &Rng{}
}

// GetActionName action name
func (r *Rng) GetActionName(tx *types.Transaction) string {
	action, err := rt.DecodeAction(tx.Payload)
	if err != nil {
		return "unknown"
	}
	return rt.GetActionName(action.Ty)
}

// Exec 按 action 类型分发
func (r *Rng) Exec(tx *types.Transaction) (*types.Receipt, error) {
	action, err := rt.DecodeAction(tx.Payload)
	if err != nil {
		return nil, err
	}
	actiondb := NewAction(r)
	if action.Ty == rt.RngActionInit && action.Init != nil {
		return actiondb.Init(action.Init.Admin, action.Init.Oracle)
	} else if action.Ty == rt.RngActionAuthorize && action.Authorize != nil {
		return actiondb.Authorize(action.Authorize.Admin, action.Authorize.Requester)
	} else if action.Ty == rt.RngActionRequest && action.Request != nil {
		return actiondb.Request(action.Request.Requester, action.Request.RequestID)
	} else if action.Ty == rt.RngActionFulfill && action.Fulfill != nil {
		return actiondb.Fulfill(action.Fulfill.Caller, action.Fulfill.RequestID, action.Fulfill.Seed)
	} else if action.Ty == rt.RngActionRead && action.Read != nil {
		return actiondb.Read(action.Read.Caller, action.Read.RequestID)
	}
	return nil, types.ErrActionNotSupport
}

// Query 只读查询
func (r *Rng) Query(funcName string, params []byte) (interface{}, error) {
	actiondb := NewAction(r)
	switch funcName {
	case rt.FuncNameGetRecord:
		var req rt.ReqRecord
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return actiondb.GetRecord(req.RequestID)
	case rt.FuncNameIsAuthorized:
		var req rt.ReqAddr
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		ok, err := actiondb.IsAuthorized(req.Addr)
		if err != nil {
			return nil, err
		}
		return &rt.ReplyIsAuthorized{Addr: req.Addr, Authorized: ok}, nil
	case rt.FuncNameGetConfig:
		return actiondb.GetConfig()
	}
	return nil, types.ErrActionNotSupport
}

// Request 供其他执行器同步调用, 在同一个事务中登记请求
func (r *Rng) Request(requester string, requestID uint64) (*types.Receipt, error) {
	return NewAction(r).Request(requester, requestID)
}

// ReadResult 供其他执行器同步调用
func (r *Rng) ReadResult(caller string, requestID uint64) (uint64, error) {
	return NewAction(r).ReadResult(caller, requestID)
}
