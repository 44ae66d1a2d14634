// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAction(t *testing.T) {
	resolve := &GameResolve{GameID: 0}
	action, err := DecodeAction((&NumberGuessAction{Ty: NumberGuessActionResolve, Resolve: resolve}).Encode())
	require.NoError(t, err)
	assert.Equal(t, resolve, action.Resolve)

	action, err = DecodeAction((&NumberGuessAction{Ty: NumberGuessActionResolve}).Encode())
	require.NoError(t, err)
	assert.Equal(t, int32(NumberGuessActionResolve), action.Ty)
	assert.Nil(t, action.Resolve)
}

func TestMaxWagerLimit(t *testing.T) {
	assert.True(t, MaxWagerLimit*int64(MaxRangeSize) < 1e17)
	assert.True(t, (MaxWagerLimit+1)*int64(MaxRangeSize) >= 1e17)
}
