// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "github.com/33cn/arcade/types"

//rng action ty
const (
	RngActionInit = iota + 1
	RngActionAuthorize
	RngActionRequest
	RngActionFulfill
	RngActionRead
)

// log ty
const (
	TyLogRngInit      = 1100
	TyLogRngAuthorize = 1101
	TyLogRngRequest   = 1102
	TyLogRngFulfilled = 1103
	TyLogRngRead      = 1104
)

// query func name
const (
	FuncNameGetRecord    = "GetRecord"
	FuncNameIsAuthorized = "IsAuthorized"
	FuncNameGetConfig    = "GetConfig"
)

// SeedLen 预言机提交的种子长度
const SeedLen = 32

// RngX 默认执行器名
const RngX = types.RngX

var actionName = map[int32]string{
	RngActionInit:      "Init",
	RngActionAuthorize: "Authorize",
	RngActionRequest:   "Request",
	RngActionFulfill:   "Fulfill",
	RngActionRead:      "Read",
}

// GetActionName action 名称, 用于日志以及统计
func GetActionName(ty int32) string {
	if name, ok := actionName[ty]; ok {
		return name
	}
	return "unknown"
}
