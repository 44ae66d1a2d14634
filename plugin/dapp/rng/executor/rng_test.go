// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/arcade/common/address"
	"github.com/33cn/arcade/common/crypto"
	dbm "github.com/33cn/arcade/common/db"
	"github.com/33cn/arcade/executor"
	rt "github.com/33cn/arcade/plugin/dapp/rng/types"
	"github.com/33cn/arcade/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	Init(rt.RngX)
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
	t         *testing.T
	db        dbm.DB
	exec      *executor.Executor
	admin     *testKey
	oracle    *testKey
	requester *testKey
	nonce     int64
}

func newSuite(t *testing.T, mock bool) *suite {
	db, err := dbm.NewGoMemDB("rng", "", 0)
	require.NoError(t, err)
	exec, err := executor.New(db, nil)
	require.NoError(t, err)
	if mock {
		exec.MockAllAuths()
	}
	return &suite{
		t:         t,
		db:        db,
		exec:      exec,
		admin:     genKey(t),
		oracle:    genKey(t),
		requester: genKey(t),
	}
}

func (s *suite) send(action *rt.RngAction, signers ...*testKey) (*types.Receipt, error) {
	s.nonce++
	tx := rt.NewTx(rt.RngX, action, s.nonce)
	for _, k := range signers {
		tx.Sign(types.SECP256K1, k.priv)
	}
	return s.exec.Exec(tx)
}

func (s *suite) init() {
	_, err := s.send(&rt.RngAction{Ty: rt.RngActionInit, Init: &rt.RngInit{Admin: s.admin.addr, Oracle: s.oracle.addr}}, s.admin)
	require.NoError(s.t, err)
	_, err = s.send(&rt.RngAction{Ty: rt.RngActionAuthorize, Authorize: &rt.RngAuthorize{Admin: s.admin.addr, Requester: s.requester.addr}}, s.admin)
	require.NoError(s.t, err)
}

func (s *suite) fulfill(id uint64, seed []byte) (*types.Receipt, error) {
	return s.send(&rt.RngAction{Ty: rt.RngActionFulfill, Fulfill: &rt.RngFulfill{Caller: s.oracle.addr, RequestID: id, Seed: seed}}, s.oracle)
}

func (s *suite) read(caller *testKey, id uint64) (uint64, error) {
	receipt, err := s.send(&rt.RngAction{Ty: rt.RngActionRead, Read: &rt.RngRead{Caller: caller.addr, RequestID: id}}, caller)
	if err != nil {
		return 0, err
	}
	require.Len(s.t, receipt.Logs, 1)
	assert.Equal(s.t, int32(rt.TyLogRngRead), receipt.Logs[0].Ty)
	var r rt.ReceiptRngRead
	require.NoError(s.t, types.Decode(receipt.Logs[0].Log, &r))
	return r.RawValue, nil
}

func (s *suite) record(id uint64) (*rt.RandomnessRecord, error) {
	reply, err := s.exec.Query(rt.RngX, rt.FuncNameGetRecord, types.Encode(&rt.ReqRecord{RequestID: id}))
	if err != nil {
		return nil, err
	}
	return reply.(*rt.RandomnessRecord), nil
}

func TestDeriveRawValue(t *testing.T) {
	assert.Equal(t, uint64(3185397464471143308), rt.DeriveRawValue(makeSeed(0), 0))
	assert.Equal(t, uint64(7255149256984270286), rt.DeriveRawValue(makeSeed(1), 1))
	assert.Equal(t, uint64(1208876972754788089), rt.DeriveRawValue(makeSeed(7), 42))
	// 同样的输入总是得到同样的结果
	assert.Equal(t, rt.DeriveRawValue(makeSeed(9), 5), rt.DeriveRawValue(makeSeed(9), 5))
	assert.NotEqual(t, rt.DeriveRawValue(makeSeed(9), 5), rt.DeriveRawValue(makeSeed(9), 6))
}

func TestInitRejectsReinit(t *testing.T) {
	s := newSuite(t, false)
	s.init()
	_, err := s.send(&rt.RngAction{Ty: rt.RngActionInit, Init: &rt.RngInit{Admin: s.admin.addr, Oracle: s.admin.addr}}, s.admin)
	assert.Equal(t, types.ErrAlreadyInitialized, err)

	reply, err := s.exec.Query(rt.RngX, rt.FuncNameGetConfig, nil)
	require.NoError(t, err)
	cfg := reply.(*rt.OracleConfig)
	assert.Equal(t, s.oracle.addr, cfg.Oracle)
	assert.Equal(t, s.admin.addr, cfg.Admin)
}

func TestInitRequiresAdminSignature(t *testing.T) {
	s := newSuite(t, false)
	other := genKey(t)
	_, err := s.send(&rt.RngAction{Ty: rt.RngActionInit, Init: &rt.RngInit{Admin: s.admin.addr, Oracle: s.oracle.addr}}, other)
	assert.Equal(t, types.ErrNotAuthorized, err)
	_, err = s.send(&rt.RngAction{Ty: rt.RngActionInit, Init: &rt.RngInit{Admin: "bad", Oracle: s.oracle.addr}}, s.admin)
	assert.Equal(t, types.ErrInvalidAddress, err)

	_, err = s.exec.Query(rt.RngX, rt.FuncNameGetConfig, nil)
	assert.Equal(t, types.ErrNotInitialized, err)
}

func TestAuthorize(t *testing.T) {
	s := newSuite(t, false)
	_, err := s.send(&rt.RngAction{Ty: rt.RngActionAuthorize, Authorize: &rt.RngAuthorize{Admin: s.admin.addr, Requester: s.requester.addr}}, s.admin)
	assert.Equal(t, types.ErrNotInitialized, err)

	s.init()
	// 重复添加不报错
	_, err = s.send(&rt.RngAction{Ty: rt.RngActionAuthorize, Authorize: &rt.RngAuthorize{Admin: s.admin.addr, Requester: s.requester.addr}}, s.admin)
	require.NoError(t, err)

	other := genKey(t)
	_, err = s.send(&rt.RngAction{Ty: rt.RngActionAuthorize, Authorize: &rt.RngAuthorize{Admin: other.addr, Requester: other.addr}}, other)
	assert.Equal(t, types.ErrNotAuthorized, err)

	reply, err := s.exec.Query(rt.RngX, rt.FuncNameIsAuthorized, types.Encode(&rt.ReqAddr{Addr: s.requester.addr}))
	require.NoError(t, err)
	assert.True(t, reply.(*rt.ReplyIsAuthorized).Authorized)
	reply, err = s.exec.Query(rt.RngX, rt.FuncNameIsAuthorized, types.Encode(&rt.ReqAddr{Addr: other.addr}))
	require.NoError(t, err)
	assert.False(t, reply.(*rt.ReplyIsAuthorized).Authorized)
}

func TestFulfillAndRead(t *testing.T) {
	s := newSuite(t, false)
	s.init()

	_, err := s.read(s.requester, 1)
	assert.Equal(t, rt.ErrNotFulfilled, err)

	receipt, err := s.fulfill(1, makeSeed(1))
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(rt.TyLogRngFulfilled), receipt.Logs[0].Ty)
	var ev rt.ReceiptRngFulfilled
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &ev))
	assert.Equal(t, uint64(1), ev.RequestID)

	raw, err := s.read(s.requester, 1)
	require.NoError(t, err)
	assert.Equal(t, rt.DeriveRawValue(makeSeed(1), 1), raw)

	// 不在白名单中
	other := genKey(t)
	_, err = s.read(other, 1)
	assert.Equal(t, types.ErrNotAuthorized, err)
}

func TestFulfillRejectsReplay(t *testing.T) {
	s := newSuite(t, false)
	s.init()
	_, err := s.fulfill(5, makeSeed(1))
	require.NoError(t, err)
	_, err = s.fulfill(5, makeSeed(2))
	assert.Equal(t, rt.ErrAlreadyFulfilled, err)

	rec, err := s.record(5)
	require.NoError(t, err)
	assert.True(t, rec.Fulfilled)
	assert.Equal(t, rt.DeriveRawValue(makeSeed(1), 5), rec.RawValue)
}

func TestFulfillRejectsNonOracle(t *testing.T) {
	s := newSuite(t, false)
	s.init()
	_, err := s.send(&rt.RngAction{Ty: rt.RngActionFulfill, Fulfill: &rt.RngFulfill{Caller: s.admin.addr, RequestID: 1, Seed: makeSeed(1)}}, s.admin)
	assert.Equal(t, types.ErrNotAuthorized, err)

	// 冒用预言机地址
	_, err = s.send(&rt.RngAction{Ty: rt.RngActionFulfill, Fulfill: &rt.RngFulfill{Caller: s.oracle.addr, RequestID: 1, Seed: makeSeed(1)}}, s.admin)
	assert.Equal(t, types.ErrNotAuthorized, err)

	_, err = s.fulfill(1, []byte{1, 2, 3})
	assert.Equal(t, rt.ErrInvalidSeed, err)

	_, err = s.record(1)
	assert.Equal(t, types.ErrNotFound, err)
}

func TestRequest(t *testing.T) {
	s := newSuite(t, false)
	s.init()
	request := func(k *testKey, id uint64) (*types.Receipt, error) {
		return s.send(&rt.RngAction{Ty: rt.RngActionRequest, Request: &rt.RngRequest{Requester: k.addr, RequestID: id}}, k)
	}

	other := genKey(t)
	_, err := request(other, 1)
	assert.Equal(t, types.ErrNotAuthorized, err)

	receipt, err := request(s.requester, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(rt.TyLogRngRequest), receipt.Logs[0].Ty)
	// 同一个请求者重复登记
	_, err = request(s.requester, 1)
	require.NoError(t, err)

	rec, err := s.record(1)
	require.NoError(t, err)
	assert.False(t, rec.Fulfilled)
	assert.Equal(t, s.requester.addr, rec.Requester)

	_, err = s.send(&rt.RngAction{Ty: rt.RngActionAuthorize, Authorize: &rt.RngAuthorize{Admin: s.admin.addr, Requester: other.addr}}, s.admin)
	require.NoError(t, err)
	_, err = request(other, 1)
	assert.Equal(t, rt.ErrRequestExists, err)

	_, err = s.fulfill(1, makeSeed(3))
	require.NoError(t, err)
	_, err = request(s.requester, 1)
	assert.Equal(t, rt.ErrAlreadyFulfilled, err)
	rec, err = s.record(1)
	require.NoError(t, err)
	assert.True(t, rec.Fulfilled)
	assert.Equal(t, s.requester.addr, rec.Requester)
}

func TestRecordTTL(t *testing.T) {
	s := newSuite(t, true)
	s.init()
	_, err := s.fulfill(9, makeSeed(9))
	require.NoError(t, err)

	height := s.exec.Height()
	state := executor.NewStateDB(s.db, height)
	live, err := state.LiveUntil(calcRecordKey(rt.RngX, 9))
	require.NoError(t, err)
	assert.Equal(t, height+types.PersistentBumpLedgers, live)
	live, err = state.LiveUntil(calcConfigKey(rt.RngX))
	require.NoError(t, err)
	assert.True(t, live >= height-2+types.PersistentBumpLedgers)
}

func TestActionNotSupport(t *testing.T) {
	s := newSuite(t, true)
	_, err := s.send(&rt.RngAction{Ty: rt.RngActionFulfill})
	assert.Equal(t, types.ErrActionNotSupport, err)
	_, err = s.exec.Query(rt.RngX, "Nothing", nil)
	assert.Equal(t, types.ErrActionNotSupport, err)
}
