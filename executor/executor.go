// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 串行执行交易, 每笔交易的状态修改要么全部写入要么全部丢弃
package executor

import (
	"sync"
	"time"

	"github.com/33cn/arcade/common"
	"github.com/33cn/arcade/common/address"
	dbm "github.com/33cn/arcade/common/db"
	"github.com/33cn/arcade/common/log"
	"github.com/33cn/arcade/metrics"
	"github.com/33cn/arcade/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var elog = log.New("module", "execs")

var (
	heightKey   = []byte("exec-height")
	txPrefixKey = []byte("exec-tx-")
)

// Executor 执行器, 持有底层数据库以及当前高度
type Executor struct {
	mu          sync.Mutex
	db          dbm.DB
	cfg         *types.Exec
	height      int64
	mockAuths   bool
	subscribers []func(*types.ReceiptData)
}

// New 从数据库恢复当前高度
func New(db dbm.DB, cfg *types.Exec) (*Executor, error) {
	if cfg == nil {
		cfg = types.DefaultConfig().Exec
	}
	e := &Executor{db: db, cfg: cfg}
	v, err := db.Get(heightKey)
	if err != nil && err != dbm.ErrNotFoundInDb {
		return nil, errors.Wrap(err, "load height")
	}
	if err == nil {
		e.height = int64(common.BytesToUint64(v))
	}
	return e, nil
}

// MockAllAuths 所有身份检查直接通过, 测试使用
func (e *Executor) MockAllAuths() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mockAuths = true
}

// Height 已经执行的交易数
func (e *Executor) Height() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.height
}

// Subscribe 交易执行成功后回调
func (e *Executor) Subscribe(fn func(*types.ReceiptData)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subscribers = append(e.subscribers, fn)
}

func txKey(hash []byte) []byte {
	return append(append([]byte{}, txPrefixKey...), common.ToHex(hash)...)
}

// Exec 执行一笔交易, 返回错误时状态没有任何变化
func (e *Executor) Exec(tx *types.Transaction) (receipt *types.Receipt, err error) {
	if tx == nil {
		return nil, types.ErrEmptyTx
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	driver, err := LoadDriver(tx.Execer)
	if err != nil {
		return nil, err
	}
	action := driver.GetActionName(tx)
	begin := time.Now()
	defer func() {
		metrics.MarkCall(tx.Execer, action, begin, err)
	}()

	var signers []string
	if len(tx.Signatures) > 0 || !e.mockAuths {
		signers, err = tx.CheckSign()
		if err != nil {
			return nil, err
		}
	}
	hash := tx.Hash()
	height := e.height + 1
	state := NewStateDB(e.db, height)
	if len(signers) > 0 {
		has, err := state.Has(txKey(hash))
		if err != nil {
			return nil, err
		}
		if has {
			return nil, types.ErrTxDup
		}
	}

	env := newEnv(uuid.New().String(), height, state, signers, e.mockAuths, e.cfg)
	env.TxHash = hash
	env.stack = []string{address.ExecAddress(tx.Execer)}
	driver.SetEnv(env)

	state.Begin()
	receipt, err = driver.Exec(tx)
	if err != nil {
		state.Rollback()
		elog.Error("Exec", "id", env.ID, "execer", tx.Execer, "action", action, "err", err)
		return nil, err
	}
	setKeys := len(state.GetSetKeys())
	state.Commit()
	if len(signers) > 0 {
		state.Set(txKey(hash), common.Uint64ToBytes(uint64(height)))
	}
	state.Set(heightKey, common.Uint64ToBytes(uint64(height)))
	if err = state.Flush(true); err != nil {
		elog.Error("Exec flush", "id", env.ID, "execer", tx.Execer, "err", err)
		return nil, errors.Wrap(err, "flush state")
	}
	e.height = height
	if receipt == nil {
		receipt = &types.Receipt{}
	}
	receipt.Ty = types.ExecOk
	elog.Debug("Exec", "id", env.ID, "execer", tx.Execer, "action", action, "height", height, "keys", setKeys)

	data := &types.ReceiptData{
		TxHash: hash,
		Height: height,
		Execer: tx.Execer,
		Ty:     receipt.Ty,
		Logs:   receipt.Logs,
	}
	for _, fn := range e.subscribers {
		fn(data)
	}
	return receipt, nil
}

// Query 只读查询, 对状态的任何修改都会被丢弃
func (e *Executor) Query(execer string, funcName string, params []byte) (interface{}, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	driver, err := LoadDriver(execer)
	if err != nil {
		return nil, err
	}
	state := NewStateDB(e.db, e.height)
	env := newEnv(uuid.New().String(), e.height, state, nil, false, e.cfg)
	env.stack = []string{address.ExecAddress(execer)}
	driver.SetEnv(env)
	state.Begin()
	defer state.Rollback()
	return driver.Query(funcName, params)
}

// ExecGenesis 不经过签名检查直接修改状态, 用于创世发行
func (e *Executor) ExecGenesis(fn func(kv dbm.KV) (*types.Receipt, error)) (*types.Receipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	state := NewStateDB(e.db, e.height)
	state.Begin()
	receipt, err := fn(state)
	if err != nil {
		state.Rollback()
		elog.Error("ExecGenesis", "err", err)
		return nil, err
	}
	state.Commit()
	if err := state.Flush(true); err != nil {
		return nil, errors.Wrap(err, "flush state")
	}
	return receipt, nil
}
