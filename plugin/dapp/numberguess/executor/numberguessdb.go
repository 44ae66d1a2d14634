// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

//database opeartion for executor numberguess
import (
	"fmt"
	"math"

	"github.com/33cn/arcade/account"
	"github.com/33cn/arcade/common/address"
	dbm "github.com/33cn/arcade/common/db"
	"github.com/33cn/arcade/executor"
	gt "github.com/33cn/arcade/plugin/dapp/numberguess/types"
	rt "github.com/33cn/arcade/plugin/dapp/rng/types"
	"github.com/33cn/arcade/types"
	"github.com/shopspring/decimal"
)

/*
  引擎的状态:
    config:     init 时写入一次, 之后只读
    game-<id>:  每局一条记录, Open -> Guessed -> Won/Lost, 从不删除

  押注在开局时从玩家转入引擎自己的账户, 中奖时由引擎账户支付.
  游戏 id 同时作为向预言机请求随机数的 id.
*/

// Action 一次调用中对引擎状态的操作
type Action struct {
	env      *executor.Env
	db       dbm.KV
	name     string
	execaddr string
	height   int64
	kv       []*types.KeyValue
}

// NewAction new
func NewAction(g *NumberGuess) *Action {
	return &Action{
		env:      g.GetEnv(),
		db:       g.GetStateDB(),
		name:     g.GetName(),
		execaddr: g.GetExecAddr(),
		height:   g.GetHeight(),
	}
}

func calcConfigKey(name string) []byte {
	return []byte("mavl-" + name + "-config")
}

func calcGameKey(name string, id uint64) []byte {
	return []byte(fmt.Sprintf("mavl-%s-game-%020d", name, id))
}

// CalcPayout 中奖金额: gross = wager * rangeSize, fee = floor(gross * bps / 10000), net = gross - fee
func CalcPayout(wager int64, rangeSize uint64, bps int64) (gross, fee, net int64, err error) {
	if bps < 0 || bps > gt.MaxHouseEdgeBps {
		return 0, 0, 0, gt.ErrInvalidHouseEdge
	}
	if wager < 0 || rangeSize > math.MaxInt64 {
		return 0, 0, 0, types.ErrArithmeticOverflow
	}
	size := int64(rangeSize)
	if size != 0 && wager > math.MaxInt64/size {
		return 0, 0, 0, types.ErrArithmeticOverflow
	}
	gross = wager * size
	fee = decimal.NewFromInt(gross).
		Mul(decimal.NewFromInt(bps)).
		Div(decimal.NewFromInt(gt.MaxHouseEdgeBps)).
		Floor().
		IntPart()
	return gross, fee, gross - fee, nil
}

func (action *Action) save(key, value []byte) error {
	if err := action.db.Set(key, value); err != nil {
		return err
	}
	if err := action.env.Bump(key); err != nil {
		return err
	}
	action.kv = append(action.kv, &types.KeyValue{Key: key, Value: value})
	return nil
}

func (action *Action) receipt(ty int32, log interface{}) *types.Receipt {
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   action.kv,
		Logs: []*types.ReceiptLog{{Ty: ty, Log: types.Encode(log)}},
	}
}

func (action *Action) loadConfig() (*gt.EngineConfig, error) {
	value, err := action.db.Get(calcConfigKey(action.name))
	if err == types.ErrNotFound {
		return nil, types.ErrNotInitialized
	}
	if err != nil {
		return nil, err
	}
	var cfg gt.EngineConfig
	if err := types.Decode(value, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (action *Action) loadGame(id uint64) (*gt.Game, error) {
	value, err := action.db.Get(calcGameKey(action.name, id))
	if err == types.ErrNotFound {
		return nil, gt.ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	var game gt.Game
	if err := types.Decode(value, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (action *Action) saveGame(game *gt.Game) error {
	if err := action.save(calcGameKey(action.name, game.GameID), types.Encode(game)); err != nil {
		return err
	}
	return action.env.Bump(calcConfigKey(action.name))
}

// Init 只能调用一次
func (action *Action) Init(req *gt.NumberGuessInit) (*types.Receipt, error) {
	has, err := action.db.Has(calcConfigKey(action.name))
	if err != nil {
		return nil, err
	}
	if has {
		glog.Error("Init", "admin", req.Admin, "err", types.ErrAlreadyInitialized)
		return nil, types.ErrAlreadyInitialized
	}
	if address.CheckAddress(req.Admin) != nil || address.CheckAddress(req.RngContract) != nil ||
		address.CheckAddress(req.PrizePool) != nil {
		glog.Error("Init", "admin", req.Admin, "rng", req.RngContract, "pool", req.PrizePool, "err", types.ErrInvalidAddress)
		return nil, types.ErrInvalidAddress
	}
	if !executor.IsDriverAddress(req.RngContract) {
		glog.Error("Init", "rng", req.RngContract, "err", gt.ErrRngContract)
		return nil, gt.ErrRngContract
	}
	if _, err := account.NewAccountDB(req.SettlementToken, action.db); err != nil {
		glog.Error("Init", "token", req.SettlementToken, "err", err)
		return nil, err
	}
	if req.HouseEdgeBps < 0 || req.HouseEdgeBps > gt.MaxHouseEdgeBps {
		glog.Error("Init", "bps", req.HouseEdgeBps, "err", gt.ErrInvalidHouseEdge)
		return nil, gt.ErrInvalidHouseEdge
	}
	if req.MinWager <= 0 || req.MinWager > req.MaxWager || req.MaxWager > gt.MaxWagerLimit {
		glog.Error("Init", "min", req.MinWager, "max", req.MaxWager, "err", gt.ErrWagerOutOfBounds)
		return nil, gt.ErrWagerOutOfBounds
	}
	if err := action.env.RequireAuth(req.Admin); err != nil {
		glog.Error("Init", "admin", req.Admin, "err", err)
		return nil, err
	}
	cfg := &gt.EngineConfig{
		Admin:           req.Admin,
		RngContract:     req.RngContract,
		PrizePool:       req.PrizePool,
		SettlementToken: req.SettlementToken,
		MinWager:        req.MinWager,
		MaxWager:        req.MaxWager,
		HouseEdgeBps:    req.HouseEdgeBps,
	}
	if err := action.save(calcConfigKey(action.name), types.Encode(cfg)); err != nil {
		return nil, err
	}
	glog.Debug("Init", "admin", req.Admin, "rng", req.RngContract, "token", req.SettlementToken)
	return action.receipt(gt.TyLogNumberGuessInit, &gt.ReceiptNumberGuessInit{Admin: req.Admin, RngContract: req.RngContract}), nil
}

// StartGame 开局: 押注转入引擎, 同时以游戏 id 向预言机请求随机数
func (action *Action) StartGame(req *gt.GameStart) (*types.Receipt, error) {
	cfg, err := action.loadConfig()
	if err != nil {
		glog.Error("StartGame", "id", req.GameID, "err", err)
		return nil, err
	}
	if req.Min >= req.Max {
		glog.Error("StartGame", "id", req.GameID, "min", req.Min, "max", req.Max, "err", gt.ErrInvalidRange)
		return nil, gt.ErrInvalidRange
	}
	if uint64(req.Max)-uint64(req.Min)+1 > gt.MaxRangeSize {
		glog.Error("StartGame", "id", req.GameID, "min", req.Min, "max", req.Max, "err", gt.ErrInvalidRange)
		return nil, gt.ErrInvalidRange
	}
	if req.Wager <= 0 || req.Wager < cfg.MinWager || req.Wager > cfg.MaxWager {
		glog.Error("StartGame", "id", req.GameID, "wager", req.Wager, "err", gt.ErrWagerOutOfBounds)
		return nil, gt.ErrWagerOutOfBounds
	}
	has, err := action.db.Has(calcGameKey(action.name, req.GameID))
	if err != nil {
		return nil, err
	}
	if has {
		glog.Error("StartGame", "id", req.GameID, "err", gt.ErrDuplicateGameID)
		return nil, gt.ErrDuplicateGameID
	}
	if err := action.env.RequireAuth(req.Player); err != nil {
		glog.Error("StartGame", "id", req.GameID, "player", req.Player, "err", err)
		return nil, err
	}

	token, err := settlementToken(action.env, cfg.SettlementToken)
	if err != nil {
		return nil, err
	}
	receipt, err := token.Transfer(req.Player, action.execaddr, req.Wager)
	if err != nil {
		glog.Error("StartGame transfer", "id", req.GameID, "player", req.Player, "err", err)
		return nil, err
	}
	err = withRandomness(action.env, cfg.RngContract, func(src RandomnessSource) error {
		r, err := src.Request(action.execaddr, req.GameID)
		if err != nil {
			return err
		}
		types.MergeReceipt(receipt, r)
		return nil
	})
	if err != nil {
		glog.Error("StartGame request", "id", req.GameID, "err", err)
		return nil, err
	}

	game := &gt.Game{
		GameID:    req.GameID,
		Player:    req.Player,
		Min:       req.Min,
		Max:       req.Max,
		Wager:     req.Wager,
		Status:    gt.GameStatusOpen,
		CreatedAt: action.height,
	}
	if err := action.saveGame(game); err != nil {
		return nil, err
	}
	glog.Debug("StartGame", "id", req.GameID, "player", req.Player, "wager", req.Wager)
	r := action.receipt(gt.TyLogGameStarted, &gt.ReceiptGameStarted{GameID: req.GameID, Player: req.Player, Wager: req.Wager})
	return types.MergeReceipt(receipt, r), nil
}

// SubmitGuess 每局只能猜一次, 必须由玩家本人提交
func (action *Action) SubmitGuess(id uint64, guess uint32) (*types.Receipt, error) {
	game, err := action.loadGame(id)
	if err != nil {
		glog.Error("SubmitGuess", "id", id, "err", err)
		return nil, err
	}
	if game.Status != gt.GameStatusOpen {
		glog.Error("SubmitGuess", "id", id, "status", gt.StatusName(game.Status), "err", gt.ErrAlreadyGuessed)
		return nil, gt.ErrAlreadyGuessed
	}
	if guess < game.Min || guess > game.Max {
		glog.Error("SubmitGuess", "id", id, "guess", guess, "err", gt.ErrGuessOutOfRange)
		return nil, gt.ErrGuessOutOfRange
	}
	if err := action.env.RequireAuth(game.Player); err != nil {
		glog.Error("SubmitGuess", "id", id, "player", game.Player, "err", err)
		return nil, err
	}
	game.Guess = guess
	game.Status = gt.GameStatusGuessed
	game.GuessedAt = action.height
	if err := action.saveGame(game); err != nil {
		return nil, err
	}
	glog.Debug("SubmitGuess", "id", id, "guess", guess)
	return action.receipt(gt.TyLogGuessSubmitted, &gt.ReceiptGuessSubmitted{GameID: id, Guess: guess}), nil
}

// ResolveGame 任何人都可以开奖, 随机数未提交时失败且不修改状态
func (action *Action) ResolveGame(id uint64) (*types.Receipt, error) {
	game, err := action.loadGame(id)
	if err != nil {
		glog.Error("ResolveGame", "id", id, "err", err)
		return nil, err
	}
	if game.Status == gt.GameStatusOpen {
		glog.Error("ResolveGame", "id", id, "err", gt.ErrNotYetGuessed)
		return nil, gt.ErrNotYetGuessed
	}
	if game.Status != gt.GameStatusGuessed {
		glog.Error("ResolveGame", "id", id, "status", gt.StatusName(game.Status), "err", gt.ErrAlreadyResolved)
		return nil, gt.ErrAlreadyResolved
	}
	cfg, err := action.loadConfig()
	if err != nil {
		return nil, err
	}

	var raw uint64
	err = withRandomness(action.env, cfg.RngContract, func(src RandomnessSource) error {
		raw, err = src.ReadResult(action.execaddr, id)
		return err
	})
	if err == rt.ErrNotFulfilled {
		err = gt.ErrRandomnessNotFulfilled
	}
	if err != nil {
		glog.Error("ResolveGame read", "id", id, "err", err)
		return nil, err
	}

	receipt := &types.Receipt{Ty: types.ExecOk}
	game.Secret = rt.SecretInRange(raw, game.Min, game.Max)
	game.ResolvedAt = action.height
	if game.Guess == game.Secret {
		_, fee, net, err := CalcPayout(game.Wager, game.RangeSize(), cfg.HouseEdgeBps)
		if err != nil {
			glog.Error("ResolveGame payout", "id", id, "wager", game.Wager, "err", err)
			return nil, err
		}
		if net > 0 {
			token, err := settlementToken(action.env, cfg.SettlementToken)
			if err != nil {
				return nil, err
			}
			r, err := token.Transfer(action.execaddr, game.Player, net)
			if err != nil {
				glog.Error("ResolveGame transfer", "id", id, "net", net, "err", err)
				return nil, err
			}
			types.MergeReceipt(receipt, r)
		}
		game.Status = gt.GameStatusWon
		game.Payout = net
		glog.Debug("ResolveGame won", "id", id, "secret", game.Secret, "net", net, "fee", fee)
	} else {
		game.Status = gt.GameStatusLost
		game.Payout = 0
		glog.Debug("ResolveGame lost", "id", id, "secret", game.Secret, "guess", game.Guess)
	}
	if err := action.saveGame(game); err != nil {
		return nil, err
	}
	r := action.receipt(gt.TyLogGameResolved, &gt.ReceiptGameResolved{
		GameID: id,
		Status: game.Status,
		Secret: game.Secret,
		Payout: game.Payout,
	})
	return types.MergeReceipt(receipt, r), nil
}

// GetGame 查询一局游戏
func (action *Action) GetGame(id uint64) (*gt.Game, error) {
	return action.loadGame(id)
}

// GetConfig 查询配置
func (action *Action) GetConfig() (*gt.EngineConfig, error) {
	return action.loadConfig()
}
