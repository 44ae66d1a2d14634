// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/arcade/common/address"
	dbm "github.com/33cn/arcade/common/db"
	"github.com/33cn/arcade/types"
)

// Env 一次调用的执行环境: 状态, 高度, 签名者以及合约调用栈
type Env struct {
	ID     string
	Height int64
	TxHash []byte

	state   *StateDB
	signers map[string]bool
	mock    bool
	stack   []string
	cfg     *types.Exec
}

func newEnv(id string, height int64, state *StateDB, signers []string, mock bool, cfg *types.Exec) *Env {
	env := &Env{
		ID:      id,
		Height:  height,
		state:   state,
		signers: make(map[string]bool),
		mock:    mock,
		cfg:     cfg,
	}
	for _, s := range signers {
		env.signers[s] = true
	}
	return env
}

// StateDB 合约可见的状态
func (env *Env) StateDB() dbm.KV {
	return env.state
}

// CurrentExecAddr 正在执行的合约地址
func (env *Env) CurrentExecAddr() string {
	if len(env.stack) == 0 {
		return ""
	}
	return env.stack[len(env.stack)-1]
}

// Invoker 调用当前合约的合约地址, 由交易直接调用时为空
func (env *Env) Invoker() string {
	if len(env.stack) < 2 {
		return ""
	}
	return env.stack[len(env.stack)-2]
}

// RequireAuth addr 签名了交易, 或者是当前合约, 或者是调用当前合约的合约
func (env *Env) RequireAuth(addr string) error {
	if env.mock {
		return nil
	}
	if addr == "" {
		return types.ErrNotAuthorized
	}
	if env.signers[addr] {
		return nil
	}
	if addr == env.CurrentExecAddr() || addr == env.Invoker() {
		return nil
	}
	elog.Debug("RequireAuth", "id", env.ID, "addr", addr, "exec", env.CurrentExecAddr())
	return types.ErrNotAuthorized
}

// Call 同步调用另外一个执行器, 共享同一个状态事务
func (env *Env) Call(name string, fn func(d Driver) error) error {
	d, err := LoadDriver(name)
	if err != nil {
		return err
	}
	d.SetEnv(env)
	env.stack = append(env.stack, address.ExecAddress(name))
	defer func() {
		env.stack = env.stack[:len(env.stack)-1]
	}()
	return fn(d)
}

// CallAddr 按合约地址调用
func (env *Env) CallAddr(addr string, fn func(d Driver) error) error {
	name, err := LookupExecName(addr)
	if err != nil {
		return err
	}
	return env.Call(name, fn)
}

// Bump 按配置续期 key 的存活高度
func (env *Env) Bump(key []byte) error {
	return env.state.ExtendTTL(key, env.cfg.BumpThreshold, env.cfg.BumpLedgers)
}

// LiveUntil key 的存活截止高度
func (env *Env) LiveUntil(key []byte) (int64, error) {
	return env.state.LiveUntil(key)
}
