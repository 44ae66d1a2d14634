// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"

	"github.com/33cn/arcade/types"
)

func init() {
	types.RegisterLog(GetLogMap())
}

// GetLogMap rng 的日志类型
func GetLogMap() map[int32]*types.LogInfo {
	return map[int32]*types.LogInfo{
		TyLogRngInit:      {Ty: reflect.TypeOf(ReceiptRngInit{}), Name: "LogRngInit"},
		TyLogRngAuthorize: {Ty: reflect.TypeOf(ReceiptRngAuthorize{}), Name: "LogRngAuthorize"},
		TyLogRngRequest:   {Ty: reflect.TypeOf(ReceiptRngRequest{}), Name: "LogRngRequest"},
		TyLogRngFulfilled: {Ty: reflect.TypeOf(ReceiptRngFulfilled{}), Name: "LogRngFulfilled"},
		TyLogRngRead:      {Ty: reflect.TypeOf(ReceiptRngRead{}), Name: "LogRngRead"},
	}
}

func (a *RngAction) value() interface{} {
	switch a.Ty {
	case RngActionInit:
		return a.Init
	case RngActionAuthorize:
		return a.Authorize
	case RngActionRequest:
		return a.Request
	case RngActionFulfill:
		return a.Fulfill
	case RngActionRead:
		return a.Read
	}
	return nil
}

// Encode 只编码 Ty 对应的字段
func (a *RngAction) Encode() []byte {
	return types.EncodeAction(a.Ty, a.value())
}

// DecodeAction 没有内容的 action 各字段保持 nil
func DecodeAction(payload []byte) (*RngAction, error) {
	p, err := types.DecodeAction(payload)
	if err != nil {
		return nil, err
	}
	action := &RngAction{Ty: p.Ty}
	if len(p.Value) == 0 {
		return action, nil
	}
	switch p.Ty {
	case RngActionInit:
		action.Init = &RngInit{}
		err = types.Decode(p.Value, action.Init)
	case RngActionAuthorize:
		action.Authorize = &RngAuthorize{}
		err = types.Decode(p.Value, action.Authorize)
	case RngActionRequest:
		action.Request = &RngRequest{}
		err = types.Decode(p.Value, action.Request)
	case RngActionFulfill:
		action.Fulfill = &RngFulfill{}
		err = types.Decode(p.Value, action.Fulfill)
	case RngActionRead:
		action.Read = &RngRead{}
		err = types.Decode(p.Value, action.Read)
	}
	if err != nil {
		return nil, err
	}
	return action, nil
}
