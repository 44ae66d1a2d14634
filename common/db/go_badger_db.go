// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"path"

	"github.com/dgraph-io/badger"
	"github.com/pkg/errors"
)

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

//NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	db, err := badger.Open(badger.DefaultOptions(dbPath))
	if err != nil {
		return nil, errors.Wrapf(err, "open badger %s", dbPath)
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, ErrNotFoundInDb
		}
		dlog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		dlog.Error("Set", "error", err)
		return err
	}
	return nil
}

//Delete delete
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		dlog.Error("Delete", "error", err)
		return err
	}
	return nil
}

//DB 底层 badger
func (db *GoBadgerDB) DB() *badger.DB {
	return db.db
}

//Close close
func (db *GoBadgerDB) Close() {
	err := db.db.Close()
	if err != nil {
		dlog.Error("Close", "error", err)
	}
}

//NewBatch badger 的写事务作为 batch
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db, batch: db.db.NewTransaction(true)}
}

type goBadgerDBBatch struct {
	db    *GoBadgerDB
	batch *badger.Txn
	err   error
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	if mBatch.err != nil {
		return
	}
	mBatch.err = mBatch.batch.Set(key, value)
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	if mBatch.err != nil {
		return
	}
	mBatch.err = mBatch.batch.Delete(key)
}

func (mBatch *goBadgerDBBatch) Write() error {
	defer mBatch.batch.Discard()
	if mBatch.err != nil {
		dlog.Error("Write", "error", mBatch.err)
		return mBatch.err
	}
	if err := mBatch.batch.Commit(); err != nil {
		dlog.Error("Write", "error", err)
		return err
	}
	return nil
}
