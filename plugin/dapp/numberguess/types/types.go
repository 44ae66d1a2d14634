// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/arcade/types"
)

// NumberGuessAction 交易 payload
type NumberGuessAction struct {
	Ty      int32
	Init    *NumberGuessInit
	Start   *GameStart
	Guess   *GameGuess
	Resolve *GameResolve
}

// NumberGuessInit 引擎配置, 只能设置一次
type NumberGuessInit struct {
	Admin           string
	RngContract     string
	PrizePool       string
	SettlementToken string
	MinWager        int64
	MaxWager        int64
	HouseEdgeBps    int64
}

// GameStart 开局, 押注从 Player 转入引擎
type GameStart struct {
	Player string
	Min    uint32
	Max    uint32
	Wager  int64
	GameID uint64
}

// GameGuess 提交猜测
type GameGuess struct {
	GameID uint64
	Guess  uint32
}

// GameResolve 开奖, 任何人都可以调用
type GameResolve struct {
	GameID uint64
}

// EngineConfig 引擎配置
type EngineConfig struct {
	Admin           string
	RngContract     string
	PrizePool       string
	SettlementToken string
	MinWager        int64
	MaxWager        int64
	HouseEdgeBps    int64
}

// Game 一局游戏. Guess 在 Guessed 之后有效, Secret 在 Won/Lost 之后有效, Payout 只在 Won 时大于 0
type Game struct {
	GameID     uint64
	Player     string
	Min        uint32
	Max        uint32
	Wager      int64
	Guess      uint32
	Secret     uint32
	Payout     int64
	Status     int32
	CreatedAt  int64
	GuessedAt  int64
	ResolvedAt int64
}

// RangeSize max - min + 1
func (g *Game) RangeSize() uint64 {
	return uint64(g.Max) - uint64(g.Min) + 1
}

// ReceiptNumberGuessInit init log
type ReceiptNumberGuessInit struct {
	Admin       string
	RngContract string
}

// ReceiptGameStarted start log
type ReceiptGameStarted struct {
	GameID uint64
	Player string
	Wager  int64
}

// ReceiptGuessSubmitted guess log
type ReceiptGuessSubmitted struct {
	GameID uint64
	Guess  uint32
}

// ReceiptGameResolved resolve log
type ReceiptGameResolved struct {
	GameID uint64
	Status int32
	Secret uint32
	Payout int64
}

// ReqGame 查询一局游戏
type ReqGame struct {
	GameID uint64
}

// NewTx 构造 numberguess 交易
func NewTx(execer string, action *NumberGuessAction, nonce int64) *types.Transaction {
	return types.NewTransaction(execer, action.Encode(), nonce)
}
