// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrAlreadyFulfilled 随机数已经提交, 不能覆盖
	ErrAlreadyFulfilled = errors.New("ErrAlreadyFulfilled")
	// ErrNotFulfilled 请求不存在或者还没有提交随机数
	ErrNotFulfilled = errors.New("ErrNotFulfilled")
	// ErrRequestExists 请求已经被其他地址登记
	ErrRequestExists = errors.New("ErrRequestExists")
	// ErrInvalidSeed 种子长度不是 32 字节
	ErrInvalidSeed = errors.New("ErrInvalidSeed")
)
