// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package poseidon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/go-zkas/pkg/crypto/pasta"
)

func TestParamsDerivation(t *testing.T) {
	params, err := NewParams[pasta.Fp](3)
	//
	require.NoError(t, err)
	assert.Equal(t, uint(3), params.Width())
	//
	rf, rp := params.Rounds()
	assert.Equal(t, uint(8), rf)
	assert.Equal(t, uint(56), rp)
	// Round constants cover every round.
	assert.Len(t, params.roundConstants, int(rf+rp))
	assert.Len(t, params.roundConstants[0], 3)
	// MDS is t x t and nowhere zero.
	require.Len(t, params.mds, 3)
	//
	for _, row := range params.mds {
		require.Len(t, row, 3)
		//
		for _, entry := range row {
			assert.False(t, entry.IsZero())
		}
	}
}

func TestParamsUnsupportedWidth(t *testing.T) {
	_, err := NewParams[pasta.Fp](1)
	assert.Error(t, err)
	//
	_, err = NewParams[pasta.Fp](13)
	assert.Error(t, err)
}

func TestParamsDeterministic(t *testing.T) {
	first, err := NewParams[pasta.Fp](3)
	require.NoError(t, err)
	//
	second, err := NewParams[pasta.Fp](3)
	require.NoError(t, err)
	//
	assert.Equal(t, first.roundConstants, second.roundConstants)
	assert.Equal(t, first.mds, second.mds)
	// Distinct widths derive distinct constants.
	other, err := NewParams[pasta.Fp](4)
	require.NoError(t, err)
	assert.NotEqual(t, first.roundConstants[0][0], other.roundConstants[0][0])
}

func TestHashDeterministic(t *testing.T) {
	params, err := NewParams[pasta.Fp](3)
	require.NoError(t, err)
	//
	a, b := pasta.NewFp(1), pasta.NewFp(2)
	//
	assert.Equal(t, Hash(params, a, b), Hash(params, a, b))
	// Order matters.
	assert.NotEqual(t, Hash(params, a, b), Hash(params, b, a))
	// Inputs matter.
	assert.NotEqual(t, Hash(params, a, b), Hash(params, a, a))
}

func TestHashArityMismatchPanics(t *testing.T) {
	params, err := NewParams[pasta.Fp](3)
	require.NoError(t, err)
	//
	assert.Panics(t, func() {
		Hash(params, pasta.NewFp(1))
	})
}

func TestPermuteChangesState(t *testing.T) {
	params, err := NewParams[pasta.Fp](3)
	require.NoError(t, err)
	//
	state := []pasta.Fp{pasta.NewFp(0), pasta.NewFp(1), pasta.NewFp(2)}
	original := append([]pasta.Fp{}, state...)
	//
	params.Permute(state)
	//
	assert.NotEqual(t, original, state)
}
