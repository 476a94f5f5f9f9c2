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
package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/go-zkas/pkg/crypto/pasta"
	"github.com/consensys/go-zkas/pkg/zkas/ast"
)

func TestParseWitnessScalars(t *testing.T) {
	witnesses, err := ParseWitnessJSON([]byte(`[
		{"type": "Base",   "value": "42"},
		{"type": "Base",   "value": "0xff"},
		{"type": "Scalar", "value": "7"},
		{"type": "Uint32", "value": "5"},
		{"type": "Uint64", "value": "123456789"}
	]`))
	//
	require.NoError(t, err)
	require.Len(t, witnesses, 5)
	assert.Equal(t, Base{pasta.NewFp(42)}, witnesses[0])
	assert.Equal(t, Base{pasta.NewFp(255)}, witnesses[1])
	assert.Equal(t, Scalar{pasta.NewFq(7)}, witnesses[2])
	assert.Equal(t, Uint32{5}, witnesses[3])
	assert.Equal(t, Uint64{123456789}, witnesses[4])
}

func TestParseWitnessPoint(t *testing.T) {
	g := pasta.Generator()
	//
	witnesses, err := ParseWitnessJSON([]byte(`[
		{"type": "EcPoint",
		 "x": "0x` + g.X().Text(16) + `",
		 "y": "0x` + g.Y().Text(16) + `"}
	]`))
	//
	require.NoError(t, err)
	require.Len(t, witnesses, 1)
	assert.Equal(t, ast.TYPE_EC_POINT, witnesses[0].Type())
	assert.Equal(t, g, witnesses[0].(Point).Inner)
}

func TestParseWitnessPointOffCurve(t *testing.T) {
	_, err := ParseWitnessJSON([]byte(`[
		{"type": "EcPoint", "x": "1", "y": "1"}
	]`))
	//
	assert.Error(t, err)
}

func TestParseWitnessMerklePathLength(t *testing.T) {
	_, err := ParseWitnessJSON([]byte(`[
		{"type": "MerklePath", "values": ["1", "2", "3"]}
	]`))
	//
	assert.Error(t, err)
}

func TestParseWitnessUnknownType(t *testing.T) {
	_, err := ParseWitnessJSON([]byte(`[{"type": "Widget", "value": "1"}]`))
	assert.Error(t, err)
}
