// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	c, err := New(NameSecp256k1)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)

	msg := []byte("start game 42")
	sig := priv.Sign(msg)
	assert.True(t, priv.PubKey().VerifyBytes(msg, sig))
	assert.False(t, priv.PubKey().VerifyBytes([]byte("start game 43"), sig))

	other, err := c.GenKey()
	require.NoError(t, err)
	assert.False(t, other.PubKey().VerifyBytes(msg, sig))
}

func TestKeyFromBytes(t *testing.T) {
	c, err := New(NameSecp256k1)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)

	priv2, err := c.PrivKeyFromBytes(priv.Bytes())
	require.NoError(t, err)
	assert.Equal(t, priv.PubKey().Bytes(), priv2.PubKey().Bytes())

	pub, err := c.PubKeyFromBytes(priv.PubKey().Bytes())
	require.NoError(t, err)
	sig, err := c.SignatureFromBytes(priv.Sign([]byte("x")).Bytes())
	require.NoError(t, err)
	assert.True(t, pub.VerifyBytes([]byte("x"), sig))

	_, err = c.PrivKeyFromBytes([]byte{1, 2})
	assert.Error(t, err)
	_, err = c.PubKeyFromBytes(make([]byte, 33))
	assert.Error(t, err)

	_, err = New("sm2")
	assert.Equal(t, ErrNotSupportAlgorithm, err)
}
