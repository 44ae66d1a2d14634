// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/arcade/common/db"
	"github.com/33cn/arcade/executor"
	"github.com/33cn/arcade/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = "14ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr2 = "24ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr3 = "34ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
)

func GenerAccDb(t *testing.T) *DB {
	//构造账户数据库
	storedb, err := db.NewGoMemDB("gomemdb", "test", 128)
	require.NoError(t, err)
	state := executor.NewStateDB(storedb, 1)
	acc, err := NewAccountDB("arc", state)
	require.NoError(t, err)
	return acc
}

func (acc *DB) GenerAccData(t *testing.T) {
	// 加入账户
	_, err := acc.GenesisInit(addr1, 1000*types.Coin)
	require.NoError(t, err)
	_, err = acc.GenesisInit(addr2, 900*types.Coin)
	require.NoError(t, err)
}

func TestNewAccountDB(t *testing.T) {
	_, err := NewAccountDB("a-b", nil)
	assert.Equal(t, types.ErrSymbolNameNotAllow, err)
	_, err = NewAccountDB("", nil)
	assert.Equal(t, types.ErrSymbolNameNotAllow, err)
	acc, err := NewAccountDB("arc", nil)
	require.NoError(t, err)
	assert.Equal(t, "mavl-token-arc-"+addr1, string(acc.AccountKey(addr1)))
	assert.Equal(t, "arc", acc.Symbol())
}

func TestCheckTransfer(t *testing.T) {
	acc := GenerAccDb(t)
	acc.GenerAccData(t)

	require.NoError(t, acc.CheckTransfer(addr1, addr2, 10*types.Coin))
	assert.Equal(t, types.ErrNoBalance, acc.CheckTransfer(addr3, addr1, 1))
	assert.Equal(t, types.ErrAmount, acc.CheckTransfer(addr1, addr2, 0))
	assert.Equal(t, types.ErrSendSameToRecv, acc.CheckTransfer(addr1, addr1, 1))
}

func TestTransfer(t *testing.T) {
	acc := GenerAccDb(t)
	acc.GenerAccData(t)

	receipt, err := acc.Transfer(addr1, addr3, 10*types.Coin)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 2)
	assert.Equal(t, int32(types.TyLogTransfer), receipt.Logs[0].Ty)
	var r types.ReceiptAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &r))
	assert.Equal(t, 1000*types.Coin, r.Prev.Balance)
	assert.Equal(t, 990*types.Coin, r.Current.Balance)

	assert.Equal(t, 990*types.Coin, acc.GetBalance(addr1))
	assert.Equal(t, 10*types.Coin, acc.GetBalance(addr3))

	_, err = acc.Transfer(addr3, addr1, 11*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, 10*types.Coin, acc.GetBalance(addr3))
}

func TestTransferAuthorizer(t *testing.T) {
	acc := GenerAccDb(t)
	acc.GenerAccData(t)
	acc.SetAuthorizer(func(addr string) error {
		if addr != addr2 {
			return types.ErrNotAuthorized
		}
		return nil
	})

	_, err := acc.Transfer(addr1, addr2, 1)
	assert.Equal(t, types.ErrNotAuthorized, err)
	assert.Equal(t, 1000*types.Coin, acc.GetBalance(addr1))

	_, err = acc.Transfer(addr2, addr1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1000*types.Coin+1, acc.GetBalance(addr1))
}

func TestGenesisInit(t *testing.T) {
	acc := GenerAccDb(t)
	receipt, err := acc.GenesisInit(addr1, 5)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogGenesis), receipt.Logs[0].Ty)
	require.Len(t, receipt.KV, 1)

	_, err = acc.GenesisInit(addr1, 0)
	assert.Equal(t, types.ErrAmount, err)

	// 超过余额上限
	for i := 0; i < 90; i++ {
		_, err = acc.GenesisInit(addr2, types.MaxCoin-1)
		require.NoError(t, err)
	}
	_, err = acc.GenesisInit(addr2, types.MaxCoin-1)
	assert.Equal(t, types.ErrAmount, err)
}
