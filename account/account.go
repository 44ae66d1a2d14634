// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 结算代币的账户操作
*/
package account

//1. load from db
//2. save to db
//3. KVSet
//4. Transfer
//5. Account balance query

import (
	"strings"

	dbm "github.com/33cn/arcade/common/db"
	"github.com/33cn/arcade/common/log"
	"github.com/33cn/arcade/types"
)

var alog = log.New("module", "account")

// MaxTokenBalance 单个账户余额上限
const MaxTokenBalance int64 = 900 * 1e8 * types.Coin

// Authorizer 检查 addr 是否授权了本次调用
type Authorizer func(addr string) error

// DB for account
type DB struct {
	db               dbm.KV
	accountKeyPerfix []byte
	symbol           string
	auth             Authorizer
}

// SymbolPrefix 账户 key 前缀
func SymbolPrefix(symbol string) string {
	return "mavl-token-" + symbol + "-"
}

// NewAccountDB 按代币 symbol 创建账户数据库
func NewAccountDB(symbol string, db dbm.KV) (*DB, error) {
	//如果 symbol 中存在 "-", 那么创建失败
	if symbol == "" || strings.ContainsRune(symbol, '-') {
		return nil, types.ErrSymbolNameNotAllow
	}
	return &DB{
		db:               db,
		accountKeyPerfix: []byte(SymbolPrefix(symbol)),
		symbol:           symbol,
	}, nil
}

// SetAuthorizer 转出前检查 from 的授权
func (acc *DB) SetAuthorizer(auth Authorizer) *DB {
	acc.auth = auth
	return acc
}

// Symbol symbol
func (acc *DB) Symbol() string {
	return acc.symbol
}

// LoadAccount 账户不存在时返回余额为0的账户
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

// CheckTransfer 检查余额是否足够
func (acc *DB) CheckTransfer(from, to string, amount int64) error {
	if !types.CheckAmount(amount) {
		return types.ErrAmount
	}
	if from == to {
		return types.ErrSendSameToRecv
	}
	accFrom := acc.LoadAccount(from)
	b := accFrom.GetBalance() - amount
	if b < 0 {
		return types.ErrNoBalance
	}
	return nil
}

// Transfer from 必须授权本次调用, 余额不足时不做任何修改
func (acc *DB) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	if err := acc.CheckTransfer(from, to, amount); err != nil {
		alog.Error("Transfer", "from", from, "to", to, "amount", amount, "err", err)
		return nil, err
	}
	if acc.auth != nil {
		if err := acc.auth(from); err != nil {
			alog.Error("Transfer auth", "from", from, "err", err)
			return nil, err
		}
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	copyfrom := *accFrom
	copyto := *accTo

	toBalance, err := safeAdd(accTo.GetBalance(), amount)
	if err != nil {
		return nil, err
	}
	accFrom.Balance = accFrom.GetBalance() - amount
	accTo.Balance = toBalance

	receiptBalanceFrom := &types.ReceiptAccountTransfer{
		Prev:    &copyfrom,
		Current: accFrom,
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}
	if err := acc.SaveAccount(accFrom); err != nil {
		return nil, err
	}
	if err := acc.SaveAccount(accTo); err != nil {
		return nil, err
	}
	alog.Debug("Transfer", "symbol", acc.symbol, "from", from, "to", to, "amount", amount)
	return acc.transferReceipt(accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo *types.ReceiptAccountTransfer) *types.Receipt {
	ty := int32(types.TyLogTransfer)
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptFrom),
	}
	log2 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

// SaveAccount save
func (acc *DB) SaveAccount(acc1 *types.Account) error {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		if err := acc.db.Set(set[i].GetKey(), set[i].Value); err != nil {
			return err
		}
	}
	return nil
}

// GetKVSet 账户对应的 kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

// AccountKey 账户 key
func (acc *DB) AccountKey(address string) (key []byte) {
	key = make([]byte, 0, len(acc.accountKeyPerfix)+len(address))
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

// GetBalance 账户余额
func (acc *DB) GetBalance(addr string) int64 {
	return acc.LoadAccount(addr).GetBalance()
}
