// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/33cn/arcade/types"
)

// RngAction 交易 payload, Ty 指明哪一个字段有效
type RngAction struct {
	Ty        int32
	Init      *RngInit
	Authorize *RngAuthorize
	Request   *RngRequest
	Fulfill   *RngFulfill
	Read      *RngRead
}

// RngInit 设置管理员以及唯一的预言机身份
type RngInit struct {
	Admin  string
	Oracle string
}

// RngAuthorize 把 Requester 加入读取白名单
type RngAuthorize struct {
	Admin     string
	Requester string
}

// RngRequest 白名单中的地址登记一个请求
type RngRequest struct {
	Requester string
	RequestID uint64
}

// RngFulfill 预言机提交种子
type RngFulfill struct {
	Caller    string
	RequestID uint64
	Seed      []byte
}

// RngRead 读取随机数, 结果记录在收据中
type RngRead struct {
	Caller    string
	RequestID uint64
}

// OracleConfig 预言机配置, 白名单按地址单独保存
type OracleConfig struct {
	Admin  string
	Oracle string
}

// RandomnessRecord 每个请求一条记录, RawValue 只在 Fulfilled 时有效并且写入后不再改变
type RandomnessRecord struct {
	RequestID   uint64
	Fulfilled   bool
	RawValue    uint64
	Requester   string
	RequestedAt int64
	FulfilledAt int64
}

// ReceiptRngInit init log
type ReceiptRngInit struct {
	Admin  string
	Oracle string
}

// ReceiptRngAuthorize authorize log
type ReceiptRngAuthorize struct {
	Requester string
}

// ReceiptRngRequest request log
type ReceiptRngRequest struct {
	RequestID uint64
	Requester string
}

// ReceiptRngFulfilled fulfilled log
type ReceiptRngFulfilled struct {
	RequestID uint64
}

// ReceiptRngRead read log
type ReceiptRngRead struct {
	RequestID uint64
	Caller    string
	RawValue  uint64
}

// ReqRecord 查询请求记录
type ReqRecord struct {
	RequestID uint64
}

// ReqAddr 查询地址
type ReqAddr struct {
	Addr string
}

// ReplyIsAuthorized 是否在白名单中
type ReplyIsAuthorized struct {
	Addr       string
	Authorized bool
}

// DeriveRawValue SHA256(seed || BE64(requestID)) 的前 8 字节, 按大端解释
func DeriveRawValue(seed []byte, requestID uint64) uint64 {
	preimage := make([]byte, 0, len(seed)+8)
	preimage = append(preimage, seed...)
	var id [8]byte
	binary.BigEndian.PutUint64(id[:], requestID)
	preimage = append(preimage, id[:]...)
	digest := sha256.Sum256(preimage)
	return binary.BigEndian.Uint64(digest[:8])
}

// SecretInRange 把随机数映射到 [min, max]
func SecretInRange(raw uint64, min, max uint32) uint32 {
	rangeSize := uint64(max) - uint64(min) + 1
	return min + uint32(raw%rangeSize)
}

// NewTx 构造 rng 交易
func NewTx(execer string, action *RngAction, nonce int64) *types.Transaction {
	return types.NewTransaction(execer, action.Encode(), nonce)
}

// NewFulfillTx 预言机提交种子的交易
func NewFulfillTx(execer, caller string, requestID uint64, seed []byte, nonce int64) *types.Transaction {
	return NewTx(execer, &RngAction{
		Ty:      RngActionFulfill,
		Fulfill: &RngFulfill{Caller: caller, RequestID: requestID, Seed: seed},
	}, nonce)
}
