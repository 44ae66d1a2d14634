// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Account 账户余额
type Account struct {
	Currency int32
	Balance  int64
	Frozen   int64
	Addr     string
}

// GetBalance balance
func (m *Account) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

// ReceiptAccountTransfer 账户变化前后的值
type ReceiptAccountTransfer struct {
	Prev    *Account
	Current *Account
}
