// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

//database opeartion for executor rng
import (
	"fmt"

	"github.com/33cn/arcade/common/address"
	dbm "github.com/33cn/arcade/common/db"
	"github.com/33cn/arcade/executor"
	rt "github.com/33cn/arcade/plugin/dapp/rng/types"
	"github.com/33cn/arcade/types"
)

/*
  预言机的状态:
    config:            管理员以及唯一可以提交种子的预言机地址, init 时写入一次
    requester-<addr>:  读取白名单, 每个地址一个 key
    record-<id>:       每个请求一条记录, 只能从未提交变为已提交一次, 从不删除

  所有写入都会续期存活高度.
*/

// Action 一次调用中对预言机状态的操作
type Action struct {
	env      *executor.Env
	db       dbm.KV
	name     string
	execaddr string
	height   int64
	kv       []*types.KeyValue
}

// NewAction new
func NewAction(r *Rng) *Action {
	return &Action{
		env:      r.GetEnv(),
		db:       r.GetStateDB(),
		name:     r.GetName(),
		execaddr: r.GetExecAddr(),
		height:   r.GetHeight(),
	}
}

func calcConfigKey(name string) []byte {
	return []byte("mavl-" + name + "-config")
}

func calcRequesterKey(name, addr string) []byte {
	return []byte("mavl-" + name + "-requester-" + addr)
}

func calcRecordKey(name string, id uint64) []byte {
	return []byte(fmt.Sprintf("mavl-%s-record-%020d", name, id))
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

func (action *Action) loadConfig() (*rt.OracleConfig, error) {
	value, err := action.db.Get(calcConfigKey(action.name))
	if err == types.ErrNotFound {
		return nil, types.ErrNotInitialized
	}
	if err != nil {
		return nil, err
	}
	var cfg rt.OracleConfig
	if err := types.Decode(value, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (action *Action) loadRecord(id uint64) (*rt.RandomnessRecord, error) {
	value, err := action.db.Get(calcRecordKey(action.name, id))
	if err != nil {
		return nil, err
	}
	var rec rt.RandomnessRecord
	if err := types.Decode(value, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Init 只能调用一次
func (action *Action) Init(admin, oracle string) (*types.Receipt, error) {
	has, err := action.db.Has(calcConfigKey(action.name))
	if err != nil {
		return nil, err
	}
	if has {
		rlog.Error("Init", "admin", admin, "err", types.ErrAlreadyInitialized)
		return nil, types.ErrAlreadyInitialized
	}
	if address.CheckAddress(admin) != nil || address.CheckAddress(oracle) != nil {
		rlog.Error("Init", "admin", admin, "oracle", oracle, "err", types.ErrInvalidAddress)
		return nil, types.ErrInvalidAddress
	}
	if err := action.env.RequireAuth(admin); err != nil {
		rlog.Error("Init", "admin", admin, "err", err)
		return nil, err
	}
	cfg := &rt.OracleConfig{Admin: admin, Oracle: oracle}
	if err := action.save(calcConfigKey(action.name), types.Encode(cfg)); err != nil {
		return nil, err
	}
	rlog.Debug("Init", "admin", admin, "oracle", oracle)
	return action.receipt(rt.TyLogRngInit, &rt.ReceiptRngInit{Admin: admin, Oracle: oracle}), nil
}

// Authorize 重复添加同一个地址不报错
func (action *Action) Authorize(admin, requester string) (*types.Receipt, error) {
	cfg, err := action.loadConfig()
	if err != nil {
		rlog.Error("Authorize", "admin", admin, "err", err)
		return nil, err
	}
	if admin != cfg.Admin {
		rlog.Error("Authorize", "admin", admin, "err", types.ErrNotAuthorized)
		return nil, types.ErrNotAuthorized
	}
	if err := action.env.RequireAuth(admin); err != nil {
		rlog.Error("Authorize", "admin", admin, "err", err)
		return nil, err
	}
	if address.CheckAddress(requester) != nil {
		rlog.Error("Authorize", "requester", requester, "err", types.ErrInvalidAddress)
		return nil, types.ErrInvalidAddress
	}
	if err := action.save(calcRequesterKey(action.name, requester), []byte{1}); err != nil {
		return nil, err
	}
	if err := action.env.Bump(calcConfigKey(action.name)); err != nil {
		return nil, err
	}
	rlog.Debug("Authorize", "requester", requester)
	return action.receipt(rt.TyLogRngAuthorize, &rt.ReceiptRngAuthorize{Requester: requester}), nil
}

// IsAuthorized addr 是否在读取白名单中
func (action *Action) IsAuthorized(addr string) (bool, error) {
	return action.db.Has(calcRequesterKey(action.name, addr))
}

func (action *Action) checkRequester(caller string) error {
	if _, err := action.loadConfig(); err != nil {
		return err
	}
	ok, err := action.IsAuthorized(caller)
	if err != nil {
		return err
	}
	if !ok {
		return types.ErrNotAuthorized
	}
	return action.env.RequireAuth(caller)
}

// Request 登记一个待提交的请求; 同一个请求者重复登记不报错
func (action *Action) Request(requester string, id uint64) (*types.Receipt, error) {
	if err := action.checkRequester(requester); err != nil {
		rlog.Error("Request", "requester", requester, "id", id, "err", err)
		return nil, err
	}
	rec, err := action.loadRecord(id)
	if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	if rec != nil {
		if rec.Fulfilled {
			rlog.Error("Request", "requester", requester, "id", id, "err", rt.ErrAlreadyFulfilled)
			return nil, rt.ErrAlreadyFulfilled
		}
		if rec.Requester != requester {
			rlog.Error("Request", "requester", requester, "id", id, "owner", rec.Requester, "err", rt.ErrRequestExists)
			return nil, rt.ErrRequestExists
		}
		return &types.Receipt{Ty: types.ExecOk}, nil
	}
	rec = &rt.RandomnessRecord{
		RequestID:   id,
		Requester:   requester,
		RequestedAt: action.height,
	}
	if err := action.save(calcRecordKey(action.name, id), types.Encode(rec)); err != nil {
		return nil, err
	}
	rlog.Debug("Request", "requester", requester, "id", id)
	return action.receipt(rt.TyLogRngRequest, &rt.ReceiptRngRequest{RequestID: id, Requester: requester}), nil
}

// Fulfill 只有预言机可以提交, 每个请求只能提交一次
func (action *Action) Fulfill(caller string, id uint64, seed []byte) (*types.Receipt, error) {
	cfg, err := action.loadConfig()
	if err != nil {
		rlog.Error("Fulfill", "caller", caller, "id", id, "err", err)
		return nil, err
	}
	if caller != cfg.Oracle {
		rlog.Error("Fulfill", "caller", caller, "id", id, "err", types.ErrNotAuthorized)
		return nil, types.ErrNotAuthorized
	}
	if err := action.env.RequireAuth(caller); err != nil {
		rlog.Error("Fulfill", "caller", caller, "id", id, "err", err)
		return nil, err
	}
	if len(seed) != rt.SeedLen {
		rlog.Error("Fulfill", "id", id, "seedlen", len(seed), "err", rt.ErrInvalidSeed)
		return nil, rt.ErrInvalidSeed
	}
	rec, err := action.loadRecord(id)
	if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	if rec == nil {
		// 没有登记过的请求直接提交
		rec = &rt.RandomnessRecord{RequestID: id, RequestedAt: action.height}
	}
	if rec.Fulfilled {
		rlog.Error("Fulfill", "caller", caller, "id", id, "err", rt.ErrAlreadyFulfilled)
		return nil, rt.ErrAlreadyFulfilled
	}
	rec.Fulfilled = true
	rec.RawValue = rt.DeriveRawValue(seed, id)
	rec.FulfilledAt = action.height
	if err := action.save(calcRecordKey(action.name, id), types.Encode(rec)); err != nil {
		return nil, err
	}
	rlog.Debug("Fulfill", "id", id, "requester", rec.Requester)
	return action.receipt(rt.TyLogRngFulfilled, &rt.ReceiptRngFulfilled{RequestID: id}), nil
}

// ReadResult 白名单中的地址读取已经提交的随机数
func (action *Action) ReadResult(caller string, id uint64) (uint64, error) {
	if err := action.checkRequester(caller); err != nil {
		rlog.Error("ReadResult", "caller", caller, "id", id, "err", err)
		return 0, err
	}
	rec, err := action.loadRecord(id)
	if err == types.ErrNotFound {
		return 0, rt.ErrNotFulfilled
	}
	if err != nil {
		return 0, err
	}
	if !rec.Fulfilled {
		return 0, rt.ErrNotFulfilled
	}
	return rec.RawValue, nil
}

// Read 以交易的方式读取, 结果写入收据
func (action *Action) Read(caller string, id uint64) (*types.Receipt, error) {
	raw, err := action.ReadResult(caller, id)
	if err != nil {
		return nil, err
	}
	return action.receipt(rt.TyLogRngRead, &rt.ReceiptRngRead{RequestID: id, Caller: caller, RawValue: raw}), nil
}

// GetRecord 查询请求记录
func (action *Action) GetRecord(id uint64) (*rt.RandomnessRecord, error) {
	return action.loadRecord(id)
}

// GetConfig 查询配置
func (action *Action) GetConfig() (*rt.OracleConfig, error) {
	return action.loadConfig()
}
