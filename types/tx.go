// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/arcade/common"
	"github.com/33cn/arcade/common/address"
	"github.com/33cn/arcade/common/crypto"
)

// 签名类型
const (
	Invalid   = 0
	SECP256K1 = 1
)

var signNames = map[int32]string{
	SECP256K1: crypto.NameSecp256k1,
}

// GetSignName 签名类型对应的驱动名
func GetSignName(ty int32) string {
	if name, ok := signNames[ty]; ok {
		return name
	}
	return "unknown"
}

// Signature 交易签名
type Signature struct {
	Ty        int32
	Pubkey    []byte
	Signature []byte
}

// Transaction 一次调用: 目标执行器, 操作描述, 以及所有参与者的签名
type Transaction struct {
	Execer     string
	Payload    []byte
	Nonce      int64
	Signatures []*Signature
}

type txBody struct {
	Execer  string
	Payload []byte
	Nonce   int64
}

// NewTransaction new
func NewTransaction(execer string, payload []byte, nonce int64) *Transaction {
	return &Transaction{Execer: execer, Payload: payload, Nonce: nonce}
}

// Hash 不包含签名部分
func (tx *Transaction) Hash() []byte {
	body := &txBody{Execer: tx.Execer, Payload: tx.Payload, Nonce: tx.Nonce}
	return common.Sha256(Encode(body))
}

// Sign 追加一个签名, 多个参与者可以依次签名
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	sig := priv.Sign(tx.Hash())
	tx.Signatures = append(tx.Signatures, &Signature{
		Ty:        ty,
		Pubkey:    priv.PubKey().Bytes(),
		Signature: sig.Bytes(),
	})
}

// CheckSign 验证所有签名, 返回签名者地址
func (tx *Transaction) CheckSign() ([]string, error) {
	if len(tx.Signatures) == 0 {
		return nil, ErrNoSignature
	}
	hash := tx.Hash()
	signers := make([]string, 0, len(tx.Signatures))
	for _, sig := range tx.Signatures {
		c, err := crypto.New(GetSignName(sig.Ty))
		if err != nil {
			return nil, err
		}
		pub, err := c.PubKeyFromBytes(sig.Pubkey)
		if err != nil {
			return nil, ErrSign
		}
		signbytes, err := c.SignatureFromBytes(sig.Signature)
		if err != nil {
			return nil, ErrSign
		}
		if !pub.VerifyBytes(hash, signbytes) {
			return nil, ErrSign
		}
		signers = append(signers, address.PubKeyToAddress(sig.Pubkey).String())
	}
	return signers, nil
}
