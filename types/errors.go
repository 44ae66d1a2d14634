// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// errors used across executors
var (
	ErrNotFound           = errors.New("ErrNotFound")
	ErrNotInitialized     = errors.New("ErrNotInitialized")
	ErrAlreadyInitialized = errors.New("ErrAlreadyInitialized")
	ErrNotAuthorized      = errors.New("ErrNotAuthorized")
	ErrArithmeticOverflow = errors.New("ErrArithmeticOverflow")
	ErrNoBalance          = errors.New("ErrNoBalance")
	ErrAmount             = errors.New("ErrAmount")
	ErrSendSameToRecv     = errors.New("ErrSendSameToRecv")
	ErrSymbolNameNotAllow = errors.New("ErrSymbolNameNotAllow")
	ErrSign               = errors.New("ErrSign")
	ErrNoSignature        = errors.New("ErrNoSignature")
	ErrInvalidAddress     = errors.New("ErrInvalidAddress")
	ErrExecNameNotAllow   = errors.New("ErrExecNameNotAllow")
	ErrExecNotFound       = errors.New("ErrExecNotFound")
	ErrDecode             = errors.New("ErrDecode")
	ErrEmptyTx            = errors.New("ErrEmptyTx")
	ErrInvalidParam       = errors.New("ErrInvalidParam")
	ErrActionNotSupport   = errors.New("ErrActionNotSupport")
	ErrTxDup              = errors.New("ErrTxDup")
	ErrLogType            = errors.New("ErrLogType")
)
