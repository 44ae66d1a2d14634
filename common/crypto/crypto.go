// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crypto 签名接口定义
package crypto

import (
	"errors"
)

//PrivKey 私钥
type PrivKey interface {
	Bytes() []byte
	Sign(msg []byte) Signature
	PubKey() PubKey
}

//Signature 签名
type Signature interface {
	Bytes() []byte
}

//PubKey 公钥
type PubKey interface {
	Bytes() []byte
	VerifyBytes(msg []byte, sig Signature) bool
}

//Crypto 加密
type Crypto interface {
	GenKey() (PrivKey, error)
	SignatureFromBytes([]byte) (Signature, error)
	PrivKeyFromBytes([]byte) (PrivKey, error)
	PubKeyFromBytes([]byte) (PubKey, error)
}

// ErrNotSupportAlgorithm unknown signature algorithm
var ErrNotSupportAlgorithm = errors.New("ErrNotSupportAlgorithm")

var drivers = map[string]Crypto{
	NameSecp256k1: Secp256k1Driver{},
}

//New 按名字获取签名驱动
func New(name string) (Crypto, error) {
	c, ok := drivers[name]
	if !ok {
		return nil, ErrNotSupportAlgorithm
	}
	return c, nil
}
