// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"sync"
)

// KeyValue 状态写入
type KeyValue struct {
	Key   []byte
	Value []byte
}

// GetKey key
func (kv *KeyValue) GetKey() []byte {
	if kv != nil {
		return kv.Key
	}
	return nil
}

// ReceiptLog 一次状态变化对应的事件, Log 为 borsh 编码的事件结构
type ReceiptLog struct {
	Ty  int32
	Log []byte
}

// Receipt 执行结果
type Receipt struct {
	Ty   int32
	KV   []*KeyValue
	Logs []*ReceiptLog
}

// GetLogs logs
func (r *Receipt) GetLogs() []*ReceiptLog {
	if r != nil {
		return r.Logs
	}
	return nil
}

// MergeReceipt 合并 receipt2 到 receipt1
func MergeReceipt(receipt1, receipt2 *Receipt) *Receipt {
	if receipt2 != nil {
		receipt1.KV = append(receipt1.KV, receipt2.KV...)
		receipt1.Logs = append(receipt1.Logs, receipt2.Logs...)
	}
	return receipt1
}

// ReceiptData 对外通知的执行结果, 带上交易 hash 以及执行高度
type ReceiptData struct {
	TxHash []byte
	Height int64
	Execer string
	Ty     int32
	Logs   []*ReceiptLog
}

// LogInfo 日志类型对应的结构以及名字
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

var (
	logMu    sync.RWMutex
	logTypes = make(map[int32]*LogInfo)
)

func init() {
	RegisterLog(map[int32]*LogInfo{
		TyLogTransfer: {reflect.TypeOf(ReceiptAccountTransfer{}), "LogTransfer"},
		TyLogGenesis:  {reflect.TypeOf(ReceiptAccountTransfer{}), "LogGenesis"},
	})
}

// RegisterLog 注册日志类型, 各个执行器的 types 包在 init 中调用
func RegisterLog(logs map[int32]*LogInfo) {
	logMu.Lock()
	defer logMu.Unlock()
	for ty, info := range logs {
		logTypes[ty] = info
	}
}

// DecodeLog 按注册的类型解码日志, 未注册时返回 ErrLogType
func DecodeLog(l *ReceiptLog) (string, interface{}, error) {
	logMu.RLock()
	info, ok := logTypes[l.Ty]
	logMu.RUnlock()
	if !ok {
		return "", nil, ErrLogType
	}
	v := reflect.New(info.Ty).Interface()
	if err := Decode(l.Log, v); err != nil {
		return info.Name, nil, err
	}
	return info.Name, v, nil
}
