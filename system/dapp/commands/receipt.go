// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/arcade/common"
	"github.com/33cn/arcade/types"
)

// ReceiptOutput 交易执行结果
type ReceiptOutput struct {
	TxHash string       `json:"txHash"`
	Height int64        `json:"height"`
	Ty     int32        `json:"ty"`
	Logs   []*LogOutput `json:"logs"`
}

// LogOutput 解码之后的日志, 未注册的日志类型输出原始 hex
type LogOutput struct {
	Ty     int32       `json:"ty"`
	TyName string      `json:"tyName"`
	Log    interface{} `json:"log,omitempty"`
	RawLog string      `json:"rawLog,omitempty"`
}

func decodeLog(l *types.ReceiptLog) *LogOutput {
	out := &LogOutput{Ty: l.Ty, TyName: "unknown"}
	name, v, err := types.DecodeLog(l)
	if name != "" {
		out.TyName = name
	}
	if err != nil {
		out.RawLog = common.ToHex(l.Log)
		return out
	}
	out.Log = v
	return out
}
