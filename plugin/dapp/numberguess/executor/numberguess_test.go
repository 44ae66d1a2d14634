// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"math"
	"testing"

	"github.com/33cn/arcade/account"
	"github.com/33cn/arcade/common/address"
	"github.com/33cn/arcade/common/crypto"
	dbm "github.com/33cn/arcade/common/db"
	"github.com/33cn/arcade/executor"
	gt "github.com/33cn/arcade/plugin/dapp/numberguess/types"
	rngexec "github.com/33cn/arcade/plugin/dapp/rng/executor"
	rt "github.com/33cn/arcade/plugin/dapp/rng/types"
	"github.com/33cn/arcade/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSymbol       = "arc"
	engineFunds      = int64(1000000)
	playerFunds      = int64(100000)
	testMinWager     = int64(10)
	testMaxWager     = int64(10000)
	testHouseEdgeBps = int64(250)
)

func init() {
	rngexec.Init(rt.RngX)
	Init(gt.NumberGuessX)
}

type testKey struct {
	priv crypto.PrivKey
	addr string
}

func genKey(t *testing.T) *testKey {
	c, err := crypto.New(crypto.NameSecp256k1)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)
	return &testKey{priv: priv, addr: address.PubKeyToAddress(priv.PubKey().Bytes()).String()}
}

func makeSeed(b byte) []byte {
	seed := make([]byte, rt.SeedLen)
	seed[31] = b
	return seed
}

type suite struct {
	t      *testing.T
	db     dbm.DB
	exec   *executor.Executor
	admin  *testKey
	oracle *testKey
	player *testKey
	engine string
	nonce  int64
}

// newSuite 预言机已经初始化并把引擎加入白名单, 引擎还没有初始化
func newSuite(t *testing.T) *suite {
	db, err := dbm.NewGoMemDB("numberguess", "", 0)
	require.NoError(t, err)
	exec, err := executor.New(db, nil)
	require.NoError(t, err)
	s := &suite{
		t:      t,
		db:     db,
		exec:   exec,
		admin:  genKey(t),
		oracle: genKey(t),
		player: genKey(t),
		engine: address.ExecAddress(gt.NumberGuessX),
	}
	_, err = s.sendRng(&rt.RngAction{Ty: rt.RngActionInit, Init: &rt.RngInit{Admin: s.admin.addr, Oracle: s.oracle.addr}}, s.admin)
	require.NoError(t, err)
	_, err = s.sendRng(&rt.RngAction{Ty: rt.RngActionAuthorize, Authorize: &rt.RngAuthorize{Admin: s.admin.addr, Requester: s.engine}}, s.admin)
	require.NoError(t, err)
	return s
}

// newReadySuite 引擎已经初始化, 引擎和玩家都有余额
func newReadySuite(t *testing.T) *suite {
	s := newSuite(t)
	_, err := s.initEngine(testMinWager, testMaxWager, testHouseEdgeBps)
	require.NoError(t, err)
	s.fund(s.engine, engineFunds)
	s.fund(s.player.addr, playerFunds)
	return s
}

func (s *suite) sendRng(action *rt.RngAction, signers ...*testKey) (*types.Receipt, error) {
	s.nonce++
	tx := rt.NewTx(rt.RngX, action, s.nonce)
	for _, k := range signers {
		tx.Sign(types.SECP256K1, k.priv)
	}
	return s.exec.Exec(tx)
}

func (s *suite) send(action *gt.NumberGuessAction, signers ...*testKey) (*types.Receipt, error) {
	s.nonce++
	tx := gt.NewTx(gt.NumberGuessX, action, s.nonce)
	for _, k := range signers {
		tx.Sign(types.SECP256K1, k.priv)
	}
	return s.exec.Exec(tx)
}

func (s *suite) initEngine(minWager, maxWager, bps int64) (*types.Receipt, error) {
	return s.send(&gt.NumberGuessAction{Ty: gt.NumberGuessActionInit, Init: &gt.NumberGuessInit{
		Admin:           s.admin.addr,
		RngContract:     address.ExecAddress(rt.RngX),
		PrizePool:       s.admin.addr,
		SettlementToken: testSymbol,
		MinWager:        minWager,
		MaxWager:        maxWager,
		HouseEdgeBps:    bps,
	}}, s.admin)
}

func (s *suite) fund(addr string, amount int64) {
	_, err := s.exec.ExecGenesis(func(kv dbm.KV) (*types.Receipt, error) {
		acc, err := account.NewAccountDB(testSymbol, kv)
		if err != nil {
			return nil, err
		}
		return acc.GenesisInit(addr, amount)
	})
	require.NoError(s.t, err)
}

func (s *suite) balance(addr string) int64 {
	acc, err := account.NewAccountDB(testSymbol, executor.NewStateDB(s.db, s.exec.Height()))
	require.NoError(s.t, err)
	return acc.GetBalance(addr)
}

func (s *suite) start(id uint64, min, max uint32, wager int64) (*types.Receipt, error) {
	return s.send(&gt.NumberGuessAction{Ty: gt.NumberGuessActionStart, Start: &gt.GameStart{
		Player: s.player.addr,
		Min:    min,
		Max:    max,
		Wager:  wager,
		GameID: id,
	}}, s.player)
}

func (s *suite) guess(id uint64, guess uint32) (*types.Receipt, error) {
	return s.send(&gt.NumberGuessAction{Ty: gt.NumberGuessActionGuess, Guess: &gt.GameGuess{GameID: id, Guess: guess}}, s.player)
}

func (s *suite) resolve(id uint64) (*types.Receipt, error) {
	return s.send(&gt.NumberGuessAction{Ty: gt.NumberGuessActionResolve, Resolve: &gt.GameResolve{GameID: id}}, genKey(s.t))
}

func (s *suite) fulfill(id uint64, seed []byte) {
	_, err := s.sendRng(&rt.RngAction{Ty: rt.RngActionFulfill, Fulfill: &rt.RngFulfill{Caller: s.oracle.addr, RequestID: id, Seed: seed}}, s.oracle)
	require.NoError(s.t, err)
}

func (s *suite) game(id uint64) (*gt.Game, error) {
	reply, err := s.exec.Query(gt.NumberGuessX, gt.FuncNameGetGame, types.Encode(&gt.ReqGame{GameID: id}))
	if err != nil {
		return nil, err
	}
	return reply.(*gt.Game), nil
}

func findLog(t *testing.T, receipt *types.Receipt, ty int32, v interface{}) {
	for _, l := range receipt.Logs {
		if l.Ty == ty {
			require.NoError(t, types.Decode(l.Log, v))
			return
		}
	}
	t.Fatalf("log %d not found", ty)
}

func TestCalcPayout(t *testing.T) {
	gross, fee, net, err := CalcPayout(100, 10, 250)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), gross)
	assert.Equal(t, int64(25), fee)
	assert.Equal(t, int64(975), net)

	gross, fee, net, err = CalcPayout(1000, 2, 250)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), gross)
	assert.Equal(t, int64(50), fee)
	assert.Equal(t, int64(1950), net)

	// fee 向下取整
	_, fee, net, err = CalcPayout(13, 3, 250)
	require.NoError(t, err)
	assert.Equal(t, int64(0), fee)
	assert.Equal(t, int64(39), net)

	_, fee, net, err = CalcPayout(100, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), fee)
	assert.Equal(t, int64(1000), net)

	_, fee, net, err = CalcPayout(100, 10, 10000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), fee)
	assert.Equal(t, int64(0), net)

	// 接近上限时不能溢出
	_, fee, net, err = CalcPayout(math.MaxInt64/2, 2, 250)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-1)-fee, net)

	_, _, _, err = CalcPayout(math.MaxInt64, 2, 250)
	assert.Equal(t, types.ErrArithmeticOverflow, err)
	_, _, _, err = CalcPayout(math.MaxInt64/int64(gt.MaxRangeSize)+1, gt.MaxRangeSize, 250)
	assert.Equal(t, types.ErrArithmeticOverflow, err)
	_, _, _, err = CalcPayout(100, 10, 10001)
	assert.Equal(t, gt.ErrInvalidHouseEdge, err)
}

func TestSecretInRange(t *testing.T) {
	// 游戏 1, [1, 10]
	expect := []uint32{1, 7, 8, 4, 10, 3}
	for b, secret := range expect {
		raw := rt.DeriveRawValue(makeSeed(byte(b)), 1)
		assert.Equal(t, secret, rt.SecretInRange(raw, 1, 10))
		// 同样的输入总是得到同样的结果
		assert.Equal(t, secret, rt.SecretInRange(rt.DeriveRawValue(makeSeed(byte(b)), 1), 1, 10))
	}

	ranges := [][2]uint32{{0, 1}, {1, 10}, {5, 6}, {100, 1099}, {1, 1000000}, {math.MaxUint32 - 1, math.MaxUint32}}
	for i := 0; i < 256; i++ {
		raw := rt.DeriveRawValue(makeSeed(byte(i)), uint64(i))
		for _, r := range ranges {
			secret := rt.SecretInRange(raw, r[0], r[1])
			assert.True(t, secret >= r[0] && secret <= r[1], "raw %d range %v secret %d", raw, r, secret)
		}
	}
	for _, raw := range []uint64{0, 1, math.MaxUint64, math.MaxUint64 - 1} {
		for _, r := range ranges {
			secret := rt.SecretInRange(raw, r[0], r[1])
			assert.True(t, secret >= r[0] && secret <= r[1])
		}
	}
}

func TestInit(t *testing.T) {
	s := newSuite(t)
	_, err := s.start(1, 1, 10, 100)
	assert.Equal(t, types.ErrNotInitialized, err)

	_, err = s.initEngine(testMinWager, testMaxWager, 10001)
	assert.Equal(t, gt.ErrInvalidHouseEdge, err)
	_, err = s.initEngine(testMinWager, testMaxWager, -1)
	assert.Equal(t, gt.ErrInvalidHouseEdge, err)
	_, err = s.initEngine(0, testMaxWager, testHouseEdgeBps)
	assert.Equal(t, gt.ErrWagerOutOfBounds, err)
	_, err = s.initEngine(testMaxWager+1, testMaxWager, testHouseEdgeBps)
	assert.Equal(t, gt.ErrWagerOutOfBounds, err)
	_, err = s.send(&gt.NumberGuessAction{Ty: gt.NumberGuessActionInit, Init: &gt.NumberGuessInit{
		Admin:           s.admin.addr,
		RngContract:     address.ExecAddress(rt.RngX),
		PrizePool:       s.admin.addr,
		SettlementToken: "a-b",
		MinWager:        testMinWager,
		MaxWager:        testMaxWager,
		HouseEdgeBps:    testHouseEdgeBps,
	}}, s.admin)
	assert.Equal(t, types.ErrSymbolNameNotAllow, err)
	// rng 合约必须是已注册的执行器
	_, err = s.send(&gt.NumberGuessAction{Ty: gt.NumberGuessActionInit, Init: &gt.NumberGuessInit{
		Admin:           s.admin.addr,
		RngContract:     s.oracle.addr,
		PrizePool:       s.admin.addr,
		SettlementToken: testSymbol,
		MinWager:        testMinWager,
		MaxWager:        testMaxWager,
		HouseEdgeBps:    testHouseEdgeBps,
	}}, s.admin)
	assert.Equal(t, gt.ErrRngContract, err)

	// 管理员没有签名
	_, err = s.send(&gt.NumberGuessAction{Ty: gt.NumberGuessActionInit, Init: &gt.NumberGuessInit{
		Admin:           s.admin.addr,
		RngContract:     address.ExecAddress(rt.RngX),
		PrizePool:       s.admin.addr,
		SettlementToken: testSymbol,
		MinWager:        testMinWager,
		MaxWager:        testMaxWager,
		HouseEdgeBps:    testHouseEdgeBps,
	}}, s.player)
	assert.Equal(t, types.ErrNotAuthorized, err)

	receipt, err := s.initEngine(testMinWager, testMaxWager, testHouseEdgeBps)
	require.NoError(t, err)
	assert.Equal(t, int32(gt.TyLogNumberGuessInit), receipt.Logs[0].Ty)
	_, err = s.initEngine(testMinWager, testMaxWager, 100)
	assert.Equal(t, types.ErrAlreadyInitialized, err)

	reply, err := s.exec.Query(gt.NumberGuessX, gt.FuncNameGetConfig, nil)
	require.NoError(t, err)
	cfg := reply.(*gt.EngineConfig)
	assert.Equal(t, testHouseEdgeBps, cfg.HouseEdgeBps)
	assert.Equal(t, testSymbol, cfg.SettlementToken)
	assert.Equal(t, address.ExecAddress(rt.RngX), cfg.RngContract)
}

func TestStartGame(t *testing.T) {
	s := newReadySuite(t)
	receipt, err := s.start(1, 1, 10, 100)
	require.NoError(t, err)

	var ev gt.ReceiptGameStarted
	findLog(t, receipt, gt.TyLogGameStarted, &ev)
	assert.Equal(t, uint64(1), ev.GameID)
	assert.Equal(t, s.player.addr, ev.Player)
	assert.Equal(t, int64(100), ev.Wager)

	assert.Equal(t, playerFunds-100, s.balance(s.player.addr))
	assert.Equal(t, engineFunds+100, s.balance(s.engine))

	game, err := s.game(1)
	require.NoError(t, err)
	assert.Equal(t, gt.GameStatusOpen, game.Status)
	assert.Equal(t, s.player.addr, game.Player)
	assert.Equal(t, uint32(0), game.Guess)
	assert.Equal(t, uint32(0), game.Secret)
	assert.Equal(t, int64(0), game.Payout)

	// 预言机中已经登记了请求
	reply, err := s.exec.Query(rt.RngX, rt.FuncNameGetRecord, types.Encode(&rt.ReqRecord{RequestID: 1}))
	require.NoError(t, err)
	rec := reply.(*rt.RandomnessRecord)
	assert.False(t, rec.Fulfilled)
	assert.Equal(t, s.engine, rec.Requester)
}

func TestStartGameValidation(t *testing.T) {
	s := newReadySuite(t)

	_, err := s.start(1, 10, 10, 100)
	assert.Equal(t, gt.ErrInvalidRange, err)
	_, err = s.start(1, 10, 1, 100)
	assert.Equal(t, gt.ErrInvalidRange, err)
	_, err = s.start(1, 1, uint32(gt.MaxRangeSize)+1, 100)
	assert.Equal(t, gt.ErrInvalidRange, err)
	// range 先于 wager 检查
	_, err = s.start(1, 1, 1, 1)
	assert.Equal(t, gt.ErrInvalidRange, err)

	_, err = s.start(1, 1, 10, testMinWager-1)
	assert.Equal(t, gt.ErrWagerOutOfBounds, err)
	_, err = s.start(1, 1, 10, testMaxWager+1)
	assert.Equal(t, gt.ErrWagerOutOfBounds, err)
	_, err = s.start(1, 1, 10, 0)
	assert.Equal(t, gt.ErrWagerOutOfBounds, err)
	_, err = s.start(1, 1, 10, -100)
	assert.Equal(t, gt.ErrWagerOutOfBounds, err)

	// range == MaxRangeSize
	_, err = s.start(1, 1, uint32(gt.MaxRangeSize), testMinWager)
	require.NoError(t, err)
	_, err = s.start(2, 0, 1, testMaxWager)
	require.NoError(t, err)

	_, err = s.start(1, 1, 10, 100)
	assert.Equal(t, gt.ErrDuplicateGameID, err)
	_, err = s.start(1, 5, 6, testMaxWager)
	assert.Equal(t, gt.ErrDuplicateGameID, err)
	_, err = s.start(2, 1, 10, testMinWager)
	assert.Equal(t, gt.ErrDuplicateGameID, err)

	assert.Equal(t, playerFunds-testMinWager-testMaxWager, s.balance(s.player.addr))
}

func TestStartGameAtomic(t *testing.T) {
	s := newReadySuite(t)

	// 玩家没有签名
	other := genKey(t)
	_, err := s.send(&gt.NumberGuessAction{Ty: gt.NumberGuessActionStart, Start: &gt.GameStart{
		Player: s.player.addr, Min: 1, Max: 10, Wager: 100, GameID: 1,
	}}, other)
	assert.Equal(t, types.ErrNotAuthorized, err)

	// 余额不足
	poor := genKey(t)
	s.fund(poor.addr, 50)
	_, err = s.send(&gt.NumberGuessAction{Ty: gt.NumberGuessActionStart, Start: &gt.GameStart{
		Player: poor.addr, Min: 1, Max: 10, Wager: 100, GameID: 1,
	}}, poor)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, int64(50), s.balance(poor.addr))
	_, err = s.game(1)
	assert.Equal(t, gt.ErrGameNotFound, err)

	// 已经提交过随机数的 id 不能开局, 押注原样退回
	s.fulfill(3, makeSeed(1))
	_, err = s.start(3, 1, 10, 100)
	assert.Equal(t, rt.ErrAlreadyFulfilled, err)
	assert.Equal(t, playerFunds, s.balance(s.player.addr))
	assert.Equal(t, engineFunds, s.balance(s.engine))
	_, err = s.game(3)
	assert.Equal(t, gt.ErrGameNotFound, err)
}

func TestStartGameRequiresWhitelist(t *testing.T) {
	db, err := dbm.NewGoMemDB("numberguess", "", 0)
	require.NoError(t, err)
	exec, err := executor.New(db, nil)
	require.NoError(t, err)
	s := &suite{t: t, db: db, exec: exec, admin: genKey(t), oracle: genKey(t), player: genKey(t), engine: address.ExecAddress(gt.NumberGuessX)}
	_, err = s.sendRng(&rt.RngAction{Ty: rt.RngActionInit, Init: &rt.RngInit{Admin: s.admin.addr, Oracle: s.oracle.addr}}, s.admin)
	require.NoError(t, err)
	_, err = s.initEngine(testMinWager, testMaxWager, testHouseEdgeBps)
	require.NoError(t, err)
	s.fund(s.player.addr, playerFunds)

	_, err = s.start(1, 1, 10, 100)
	assert.Equal(t, types.ErrNotAuthorized, err)
	assert.Equal(t, playerFunds, s.balance(s.player.addr))
	_, err = s.game(1)
	assert.Equal(t, gt.ErrGameNotFound, err)
}

func TestSubmitGuess(t *testing.T) {
	s := newReadySuite(t)
	_, err := s.guess(1, 5)
	assert.Equal(t, gt.ErrGameNotFound, err)

	_, err = s.start(1, 1, 10, 100)
	require.NoError(t, err)
	_, err = s.start(2, 1, 10, 100)
	require.NoError(t, err)

	_, err = s.guess(1, 0)
	assert.Equal(t, gt.ErrGuessOutOfRange, err)
	_, err = s.guess(1, 11)
	assert.Equal(t, gt.ErrGuessOutOfRange, err)

	// 只有玩家本人可以猜
	other := genKey(t)
	_, err = s.send(&gt.NumberGuessAction{Ty: gt.NumberGuessActionGuess, Guess: &gt.GameGuess{GameID: 1, Guess: 5}}, other)
	assert.Equal(t, types.ErrNotAuthorized, err)

	receipt, err := s.guess(1, 1)
	require.NoError(t, err)
	var ev gt.ReceiptGuessSubmitted
	findLog(t, receipt, gt.TyLogGuessSubmitted, &ev)
	assert.Equal(t, uint64(1), ev.GameID)
	assert.Equal(t, uint32(1), ev.Guess)
	_, err = s.guess(2, 10)
	require.NoError(t, err)

	_, err = s.guess(1, 5)
	assert.Equal(t, gt.ErrAlreadyGuessed, err)

	game, err := s.game(1)
	require.NoError(t, err)
	assert.Equal(t, gt.GameStatusGuessed, game.Status)
	assert.Equal(t, uint32(1), game.Guess)
	game, err = s.game(2)
	require.NoError(t, err)
	assert.Equal(t, uint32(10), game.Guess)
}

func TestResolveWin(t *testing.T) {
	s := newReadySuite(t)
	_, err := s.resolve(1)
	assert.Equal(t, gt.ErrGameNotFound, err)

	_, err = s.start(1, 1, 10, 100)
	require.NoError(t, err)
	_, err = s.resolve(1)
	assert.Equal(t, gt.ErrNotYetGuessed, err)

	_, err = s.guess(1, 7)
	require.NoError(t, err)
	_, err = s.resolve(1)
	assert.Equal(t, gt.ErrRandomnessNotFulfilled, err)
	game, err := s.game(1)
	require.NoError(t, err)
	assert.Equal(t, gt.GameStatusGuessed, game.Status)

	// seed 1 对游戏 1 的 secret 是 7
	s.fulfill(1, makeSeed(1))
	receipt, err := s.resolve(1)
	require.NoError(t, err)
	var ev gt.ReceiptGameResolved
	findLog(t, receipt, gt.TyLogGameResolved, &ev)
	assert.Equal(t, gt.GameStatusWon, ev.Status)
	assert.Equal(t, uint32(7), ev.Secret)
	assert.Equal(t, int64(975), ev.Payout)

	game, err = s.game(1)
	require.NoError(t, err)
	assert.Equal(t, gt.GameStatusWon, game.Status)
	assert.Equal(t, uint32(7), game.Secret)
	assert.Equal(t, int64(975), game.Payout)
	assert.Equal(t, playerFunds-100+975, s.balance(s.player.addr))
	assert.Equal(t, engineFunds+100-975, s.balance(s.engine))

	_, err = s.resolve(1)
	assert.Equal(t, gt.ErrAlreadyResolved, err)
	_, err = s.guess(1, 3)
	assert.Equal(t, gt.ErrAlreadyGuessed, err)
}

// 最大押注并且最大区间时, 中奖仍然可以支付
func TestResolveWinMaxPayout(t *testing.T) {
	s := newSuite(t)
	_, err := s.initEngine(testMinWager, gt.MaxWagerLimit+1, testHouseEdgeBps)
	assert.Equal(t, gt.ErrWagerOutOfBounds, err)
	_, err = s.initEngine(testMinWager, gt.MaxWagerLimit, testHouseEdgeBps)
	require.NoError(t, err)

	hi := uint32(gt.MaxRangeSize)
	gross, _, net, err := CalcPayout(gt.MaxWagerLimit, gt.MaxRangeSize, testHouseEdgeBps)
	require.NoError(t, err)
	assert.True(t, types.CheckAmount(gross))
	s.fund(s.engine, net)
	s.fund(s.player.addr, gt.MaxWagerLimit)

	_, err = s.start(7, 1, hi, gt.MaxWagerLimit)
	require.NoError(t, err)
	secret := rt.SecretInRange(rt.DeriveRawValue(makeSeed(1), 7), 1, hi)
	_, err = s.guess(7, secret)
	require.NoError(t, err)
	s.fulfill(7, makeSeed(1))
	receipt, err := s.resolve(7)
	require.NoError(t, err)

	var ev gt.ReceiptGameResolved
	findLog(t, receipt, gt.TyLogGameResolved, &ev)
	assert.Equal(t, gt.GameStatusWon, ev.Status)
	assert.Equal(t, net, ev.Payout)
	assert.Equal(t, net, s.balance(s.player.addr))
	assert.Equal(t, gt.MaxWagerLimit, s.balance(s.engine))
}

func TestResolveWinTwoNumbers(t *testing.T) {
	s := newReadySuite(t)
	_, err := s.start(7, 0, 1, 1000)
	require.NoError(t, err)
	_, err = s.guess(7, 1)
	require.NoError(t, err)
	s.fulfill(7, makeSeed(0))
	_, err = s.resolve(7)
	require.NoError(t, err)

	game, err := s.game(7)
	require.NoError(t, err)
	assert.Equal(t, gt.GameStatusWon, game.Status)
	assert.Equal(t, int64(1950), game.Payout)
	assert.Equal(t, playerFunds-1000+1950, s.balance(s.player.addr))
}

func TestResolveLose(t *testing.T) {
	s := newReadySuite(t)
	_, err := s.start(2, 1, 10, 100)
	require.NoError(t, err)
	_, err = s.guess(2, 5)
	require.NoError(t, err)
	// seed 1 对游戏 2 的 secret 是 4
	s.fulfill(2, makeSeed(1))
	receipt, err := s.resolve(2)
	require.NoError(t, err)
	var ev gt.ReceiptGameResolved
	findLog(t, receipt, gt.TyLogGameResolved, &ev)
	assert.Equal(t, gt.GameStatusLost, ev.Status)
	assert.Equal(t, uint32(4), ev.Secret)
	assert.Equal(t, int64(0), ev.Payout)
	assert.Len(t, receipt.Logs, 1)

	game, err := s.game(2)
	require.NoError(t, err)
	assert.Equal(t, gt.GameStatusLost, game.Status)
	assert.Equal(t, uint32(4), game.Secret)
	assert.Equal(t, int64(0), game.Payout)
	assert.Equal(t, playerFunds-100, s.balance(s.player.addr))
	assert.Equal(t, engineFunds+100, s.balance(s.engine))

	_, err = s.resolve(2)
	assert.Equal(t, gt.ErrAlreadyResolved, err)
}

func TestResolveEngineNoBalance(t *testing.T) {
	s := newSuite(t)
	_, err := s.initEngine(testMinWager, testMaxWager, testHouseEdgeBps)
	require.NoError(t, err)
	s.fund(s.player.addr, playerFunds)

	_, err = s.start(1, 1, 10, 100)
	require.NoError(t, err)
	_, err = s.guess(1, 7)
	require.NoError(t, err)
	s.fulfill(1, makeSeed(1))

	// 引擎只有 100, 不够支付 975, 整个开奖回滚
	_, err = s.resolve(1)
	assert.Equal(t, types.ErrNoBalance, err)
	game, err := s.game(1)
	require.NoError(t, err)
	assert.Equal(t, gt.GameStatusGuessed, game.Status)
	assert.Equal(t, uint32(0), game.Secret)

	s.fund(s.engine, engineFunds)
	_, err = s.resolve(1)
	require.NoError(t, err)
	game, err = s.game(1)
	require.NoError(t, err)
	assert.Equal(t, gt.GameStatusWon, game.Status)
	assert.Equal(t, playerFunds-100+975, s.balance(s.player.addr))
}

func TestGameTTL(t *testing.T) {
	s := newReadySuite(t)
	_, err := s.start(1, 1, 10, 100)
	require.NoError(t, err)
	height := s.exec.Height()
	state := executor.NewStateDB(s.db, height)
	live, err := state.LiveUntil(calcGameKey(gt.NumberGuessX, 1))
	require.NoError(t, err)
	assert.Equal(t, height+types.PersistentBumpLedgers, live)
}

func TestActionNotSupport(t *testing.T) {
	s := newReadySuite(t)
	_, err := s.send(&gt.NumberGuessAction{Ty: gt.NumberGuessActionResolve}, s.player)
	assert.Equal(t, types.ErrActionNotSupport, err)
	_, err = s.exec.Query(gt.NumberGuessX, "Nothing", nil)
	assert.Equal(t, types.ErrActionNotSupport, err)
}
