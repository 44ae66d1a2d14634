// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "github.com/33cn/arcade/types"

//numberguess action ty
const (
	NumberGuessActionInit = iota + 1
	NumberGuessActionStart
	NumberGuessActionGuess
	NumberGuessActionResolve
)

// game status
const (
	GameStatusOpen    = int32(1)
	GameStatusGuessed = int32(2)
	GameStatusWon     = int32(3)
	GameStatusLost    = int32(4)
)

// log ty
const (
	TyLogNumberGuessInit = 1200
	TyLogGameStarted     = 1201
	TyLogGuessSubmitted  = 1202
	TyLogGameResolved    = 1203
)

// query func name
const (
	FuncNameGetGame   = "GetGame"
	FuncNameGetConfig = "GetConfig"
)

const (
	// MaxRangeSize 单局可选数字的最大个数
	MaxRangeSize = uint64(1000000)
	// MaxWagerLimit 配置的最大押注上限, 保证 wager * MaxRangeSize 小于 MaxCoin, 中奖时总能转账
	MaxWagerLimit = (types.MaxCoin - 1) / int64(MaxRangeSize)
	// MaxHouseEdgeBps 10000 bps = 100%
	MaxHouseEdgeBps = int64(10000)
)

// NumberGuessX 默认执行器名
const NumberGuessX = types.NumberGuessX

var actionName = map[int32]string{
	NumberGuessActionInit:    "Init",
	NumberGuessActionStart:   "Start",
	NumberGuessActionGuess:   "Guess",
	NumberGuessActionResolve: "Resolve",
}

// GetActionName action 名称
func GetActionName(ty int32) string {
	if name, ok := actionName[ty]; ok {
		return name
	}
	return "unknown"
}

var statusName = map[int32]string{
	GameStatusOpen:    "Open",
	GameStatusGuessed: "Guessed",
	GameStatusWon:     "Won",
	GameStatusLost:    "Lost",
}

// StatusName status 名称
func StatusName(status int32) string {
	if name, ok := statusName[status]; ok {
		return name
	}
	return "unknown"
}
