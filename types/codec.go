// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"

	"github.com/near/borsh-go"
	"github.com/pkg/errors"
)

// Encode 状态以及日志统一使用 borsh 编码, 编码失败说明类型定义有误
func Encode(data interface{}) []byte {
	// borsh 把顶层指针当作 option 编码, 这里统一按值编码
	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	b, err := borsh.Serialize(v.Interface())
	if err != nil {
		panic(err)
	}
	return b
}

// Decode 解码到 data 指针
func Decode(b []byte, data interface{}) error {
	if err := borsh.Deserialize(data, b); err != nil {
		return errors.Wrap(ErrDecode, err.Error())
	}
	return nil
}

// ActionPayload 交易 payload 的外层, Value 是 Ty 对应结构单独的编码.
// borsh 会把 option 的 None 解码成非 nil 的零值, 所以不直接编码带指针字段的 action
type ActionPayload struct {
	Ty    int32
	Value []byte
}

// EncodeAction value 为 nil 时 Value 为空
func EncodeAction(ty int32, value interface{}) []byte {
	payload := &ActionPayload{Ty: ty}
	v := reflect.ValueOf(value)
	if v.IsValid() && !(v.Kind() == reflect.Ptr && v.IsNil()) {
		payload.Value = Encode(value)
	}
	return Encode(payload)
}

// DecodeAction 解出外层, 调用者按 Ty 解码 Value
func DecodeAction(b []byte) (*ActionPayload, error) {
	var payload ActionPayload
	if err := Decode(b, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
