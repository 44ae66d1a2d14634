// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/arcade/common"
	dbm "github.com/33cn/arcade/common/db"
	"github.com/33cn/arcade/types"
)

var ttlPrefix = []byte("ttl-")

// StateDB 一次调用的状态视图, 写入先进入 txcache, Commit 后进入 cache, Flush 时一次写入底层数据库
type StateDB struct {
	db      dbm.DB
	cache   map[string][]byte
	txcache map[string][]byte
	keys    []string
	intx    bool
	height  int64
}

// NewStateDB new state db
func NewStateDB(db dbm.DB, height int64) *StateDB {
	return &StateDB{
		db:      db,
		cache:   make(map[string][]byte),
		txcache: make(map[string][]byte),
		height:  height,
	}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.keys = nil
	s.txcache = nil
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit canche tx
func (s *StateDB) Commit() {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
	s.keys = nil
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx && s.txcache != nil {
		if value, ok := s.txcache[skey]; ok {
			return found(value)
		}
	}
	if value, ok := s.cache[skey]; ok {
		return found(value)
	}
	// 读到的值不进入 cache, Flush 只写修改过的 key
	value, err := s.db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	return value, err
}

// nil 表示已经删除
func found(value []byte) ([]byte, error) {
	if value == nil {
		return nil, types.ErrNotFound
	}
	return value, nil
}

// Has key 是否存在
func (s *StateDB) Has(key []byte) (bool, error) {
	_, err := s.Get(key)
	if err == types.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Set set key value to state db, value 为 nil 时删除
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if s.intx {
		if s.txcache == nil {
			s.txcache = make(map[string][]byte)
		}
		s.keys = append(s.keys, skey)
		s.txcache[skey] = common.CopyBytes(value)
	} else {
		s.cache[skey] = common.CopyBytes(value)
	}
	return nil
}

// Remove 删除 key 以及它的存活高度
func (s *StateDB) Remove(key []byte) error {
	if err := s.Set(key, nil); err != nil {
		return err
	}
	return s.Set(ttlKey(key), nil)
}

func ttlKey(key []byte) []byte {
	return append(append([]byte{}, ttlPrefix...), key...)
}

// LiveUntil key 的存活截止高度, 没有续期记录时返回 0
func (s *StateDB) LiveUntil(key []byte) (int64, error) {
	v, err := s.Get(ttlKey(key))
	if err == types.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int64(common.BytesToUint64(v)), nil
}

// ExtendTTL 剩余存活高度小于 threshold 时延长到 height + extendTo
func (s *StateDB) ExtendTTL(key []byte, threshold, extendTo int64) error {
	if threshold < 0 || extendTo < threshold {
		return types.ErrInvalidParam
	}
	has, err := s.Has(key)
	if err != nil {
		return err
	}
	if !has {
		return types.ErrNotFound
	}
	live, err := s.LiveUntil(key)
	if err != nil {
		return err
	}
	if live-s.height >= threshold {
		return nil
	}
	return s.Set(ttlKey(key), common.Uint64ToBytes(uint64(s.height+extendTo)))
}

// GetSetKeys  get state db set keys
func (s *StateDB) GetSetKeys() (keys []string) {
	return s.keys
}

// Flush 把已经 Commit 的数据写入底层数据库
func (s *StateDB) Flush(sync bool) error {
	if s.intx {
		panic("StateDB: Flush inside tx")
	}
	batch := s.db.NewBatch(sync)
	for k, v := range s.cache {
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	if err := batch.Write(); err != nil {
		return err
	}
	s.cache = make(map[string][]byte)
	return nil
}
