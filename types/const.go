// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// 执行器名称
const (
	RngX         = "rng"
	NumberGuessX = "numberguess"
	// DefaultSymbol 结算代币
	DefaultSymbol = "arc"
)

// coin conversation
const (
	Coin    int64 = 1e8
	MaxCoin int64 = 1e17
)

// 状态存活高度, 每次写入都会按照这两个值续期
const (
	PersistentBumpLedgers   int64 = 518400
	PersistentBumpThreshold int64 = PersistentBumpLedgers - 100800
)

// log type
const (
	TyLogTransfer = 3
	TyLogGenesis  = 4
)

// ExecOk 执行成功, 失败的交易不产生收据
const ExecOk = 2

// CheckAmount 检查转账金额
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}
