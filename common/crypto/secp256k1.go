// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crypto

import (
	"errors"

	"github.com/33cn/arcade/common"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

//NameSecp256k1 driver name
const NameSecp256k1 = "secp256k1"

//Secp256k1Driver secp256k1 驱动
type Secp256k1Driver struct{}

//GenKey 生成私钥
func (d Secp256k1Driver) GenKey() (PrivKey, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	var key PrivKeySecp256k1
	copy(key[:], priv.Serialize())
	return key, nil
}

//PrivKeyFromBytes 字节转为私钥
func (d Secp256k1Driver) PrivKeyFromBytes(b []byte) (PrivKey, error) {
	if len(b) != 32 {
		return nil, errors.New("invalid priv key byte")
	}
	var key PrivKeySecp256k1
	copy(key[:], b)
	return key, nil
}

//PubKeyFromBytes 字节转为公钥
func (d Secp256k1Driver) PubKeyFromBytes(b []byte) (PubKey, error) {
	if len(b) != 33 {
		return nil, errors.New("invalid pub key byte")
	}
	if _, err := btcec.ParsePubKey(b); err != nil {
		return nil, err
	}
	var pub PubKeySecp256k1
	copy(pub[:], b)
	return pub, nil
}

//SignatureFromBytes 字节转为签名
func (d Secp256k1Driver) SignatureFromBytes(b []byte) (Signature, error) {
	return SignatureSecp256k1(common.CopyBytes(b)), nil
}

//PrivKeySecp256k1 私钥
type PrivKeySecp256k1 [32]byte

//Bytes 字节格式
func (privKey PrivKeySecp256k1) Bytes() []byte {
	s := make([]byte, 32)
	copy(s, privKey[:])
	return s
}

//Sign 对 sha256(msg) 签名, DER 编码
func (privKey PrivKeySecp256k1) Sign(msg []byte) Signature {
	priv, _ := btcec.PrivKeyFromBytes(privKey[:])
	sig := ecdsa.Sign(priv, common.Sha256(msg))
	return SignatureSecp256k1(sig.Serialize())
}

//PubKey 压缩格式公钥
func (privKey PrivKeySecp256k1) PubKey() PubKey {
	_, pub := btcec.PrivKeyFromBytes(privKey[:])
	var out PubKeySecp256k1
	copy(out[:], pub.SerializeCompressed())
	return out
}

//PubKeySecp256k1 压缩公钥
type PubKeySecp256k1 [33]byte

//Bytes 字节格式
func (pubKey PubKeySecp256k1) Bytes() []byte {
	s := make([]byte, len(pubKey))
	copy(s, pubKey[:])
	return s
}

//VerifyBytes 验证签名
func (pubKey PubKeySecp256k1) VerifyBytes(msg []byte, sig Signature) bool {
	pub, err := btcec.ParsePubKey(pubKey[:])
	if err != nil {
		return false
	}
	parsed, err := ecdsa.ParseDERSignature(sig.Bytes())
	if err != nil {
		return false
	}
	return parsed.Verify(common.Sha256(msg), pub)
}

//SignatureSecp256k1 DER 签名
type SignatureSecp256k1 []byte

//Bytes 字节格式
func (sig SignatureSecp256k1) Bytes() []byte {
	return common.CopyBytes(sig)
}
