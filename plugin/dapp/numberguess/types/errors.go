// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrInvalidRange min >= max 或者区间超过 MaxRangeSize
	ErrInvalidRange = errors.New("ErrInvalidRange")
	// ErrWagerOutOfBounds 押注不在配置的区间内, 或者配置的区间不合法
	ErrWagerOutOfBounds = errors.New("ErrWagerOutOfBounds")
	// ErrDuplicateGameID 游戏 id 已经存在
	ErrDuplicateGameID = errors.New("ErrDuplicateGameID")
	// ErrGuessOutOfRange 猜测不在 [min, max] 内
	ErrGuessOutOfRange = errors.New("ErrGuessOutOfRange")
	// ErrAlreadyGuessed 每局只能猜一次
	ErrAlreadyGuessed = errors.New("ErrAlreadyGuessed")
	// ErrNotYetGuessed 还没有提交猜测, 不能开奖
	ErrNotYetGuessed = errors.New("ErrNotYetGuessed")
	// ErrAlreadyResolved 已经开奖
	ErrAlreadyResolved = errors.New("ErrAlreadyResolved")
	// ErrRandomnessNotFulfilled 预言机还没有提交随机数
	ErrRandomnessNotFulfilled = errors.New("ErrRandomnessNotFulfilled")
	// ErrGameNotFound 游戏不存在
	ErrGameNotFound = errors.New("ErrGameNotFound")
	// ErrInvalidHouseEdge 抽水不在 [0, 10000] bps 内
	ErrInvalidHouseEdge = errors.New("ErrInvalidHouseEdge")
	// ErrRngContract rng 地址不是随机数预言机执行器
	ErrRngContract = errors.New("ErrRngContract")
)
