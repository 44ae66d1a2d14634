// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/arcade/common/address"
	dbm "github.com/33cn/arcade/common/db"
	"github.com/33cn/arcade/types"
)

// Driver 执行器接口, 每次调用都会新建一个 Driver 并注入 Env
type Driver interface {
	SetEnv(env *Env)
	GetName() string
	SetName(name string)
	GetActionName(tx *types.Transaction) string
	Exec(tx *types.Transaction) (*types.Receipt, error)
	Query(funcName string, params []byte) (interface{}, error)
}

// DriverBase 执行器的公共部分
type DriverBase struct {
	env  *Env
	name string
}

// SetEnv set env
func (d *DriverBase) SetEnv(env *Env) {
	d.env = env
}

// GetEnv get env
func (d *DriverBase) GetEnv() *Env {
	return d.env
}

// GetStateDB 当前调用的状态
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.env.StateDB()
}

// GetHeight 当前调用的高度
func (d *DriverBase) GetHeight() int64 {
	return d.env.Height
}

// SetName set name
func (d *DriverBase) SetName(name string) {
	d.name = name
}

// GetName get name
func (d *DriverBase) GetName() string {
	return d.name
}

// GetExecAddr 执行器自身的账户地址
func (d *DriverBase) GetExecAddr() string {
	return address.ExecAddress(d.name)
}

// GetActionName get action name
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	return "unknown"
}

// Query 默认不支持查询
func (d *DriverBase) Query(funcName string, params []byte) (interface{}, error) {
	return nil, types.ErrActionNotSupport
}
