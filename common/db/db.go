// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 持久化 key-value 存储后端以及合约使用的 KV 接口
package db

import (
	"errors"
	"sync"

	log "github.com/inconshreveable/log15"
)

var dlog = log.New("module", "db")

// ErrNotFoundInDb key 不存在
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// ErrUnknownBackend backend 没有注册
var ErrUnknownBackend = errors.New("ErrUnknownBackend")

//KV 合约可见的状态存储, 由执行器注入
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	Has(key []byte) (bool, error)
	Remove(key []byte) error
	// ExtendTTL 剩余存活高度低于 threshold 时, 延长到当前高度 + extendTo
	ExtendTTL(key []byte, threshold, extendTo int64) error
}

//DB 底层数据库
type DB interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	Delete(key []byte) error
	NewBatch(sync bool) Batch
	Close()
}

//Batch 批量写, Write 时一次提交
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
}

//-----------------------------------------------------------------------------

// backend names
const (
	LevelDBBackendStr    = "leveldb" // legacy, defaults to goleveldb.
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var (
	backends   = map[string]dbCreator{}
	backendsMu sync.Mutex
)

func registerDBCreator(backend string, creator dbCreator, force bool) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB 按 backend 名创建数据库
func NewDB(name string, backend string, dir string, cache int) (DB, error) {
	backendsMu.Lock()
	creator, ok := backends[backend]
	backendsMu.Unlock()
	if !ok {
		dlog.Error("NewDB", "backend", backend, "err", ErrUnknownBackend)
		return nil, ErrUnknownBackend
	}
	db, err := creator(name, dir, cache)
	if err != nil {
		dlog.Error("NewDB", "backend", backend, "dir", dir, "err", err)
		return nil, err
	}
	return db, nil
}
