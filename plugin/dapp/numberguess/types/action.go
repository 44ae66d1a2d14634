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

// GetLogMap numberguess 的日志类型
func GetLogMap() map[int32]*types.LogInfo {
	return map[int32]*types.LogInfo{
		TyLogNumberGuessInit: {Ty: reflect.TypeOf(ReceiptNumberGuessInit{}), Name: "LogNumberGuessInit"},
		TyLogGameStarted:     {Ty: reflect.TypeOf(ReceiptGameStarted{}), Name: "LogGameStarted"},
		TyLogGuessSubmitted:  {Ty: reflect.TypeOf(ReceiptGuessSubmitted{}), Name: "LogGuessSubmitted"},
		TyLogGameResolved:    {Ty: reflect.TypeOf(ReceiptGameResolved{}), Name: "LogGameResolved"},
	}
}

func (a *NumberGuessAction) value() interface{} {
	switch a.Ty {
	case NumberGuessActionInit:
		return a.Init
	case NumberGuessActionStart:
		return a.Start
	case NumberGuessActionGuess:
		return a.Guess
	case NumberGuessActionResolve:
		return a.Resolve
	}
	return nil
}

// Encode 只编码 Ty 对应的字段
func (a *NumberGuessAction) Encode() []byte {
	return types.EncodeAction(a.Ty, a.value())
}

// DecodeAction 没有内容的 action 各字段保持 nil
func DecodeAction(payload []byte) (*NumberGuessAction, error) {
	p, err := types.DecodeAction(payload)
	if err != nil {
		return nil, err
	}
	action := &NumberGuessAction{Ty: p.Ty}
	if len(p.Value) == 0 {
		return action, nil
	}
	switch p.Ty {
	case NumberGuessActionInit:
		action.Init = &NumberGuessInit{}
		err = types.Decode(p.Value, action.Init)
	case NumberGuessActionStart:
		action.Start = &GameStart{}
		err = types.Decode(p.Value, action.Start)
	case NumberGuessActionGuess:
		action.Guess = &GameGuess{}
		err = types.Decode(p.Value, action.Guess)
	case NumberGuessActionResolve:
		action.Resolve = &GameResolve{}
		err = types.Decode(p.Value, action.Resolve)
	}
	if err != nil {
		return nil, err
	}
	return action, nil
}
