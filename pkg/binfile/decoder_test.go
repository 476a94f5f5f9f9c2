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
package binfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/go-zkas/pkg/util/field"
	"github.com/consensys/go-zkas/pkg/zkas/ast"
	"github.com/consensys/go-zkas/pkg/zkas/opcode"
)

// testProgram is the bytecode of a small but representative circuit: one
// constant, two witnesses, a literal, and both producing and void
// statements.
func testProgram() *Program {
	return &Program{
		K:         11,
		Namespace: "Test",
		Constants: []Constant{
			{ast.TYPE_EC_FIXED_POINT_BASE, "NULLIFIER_K"},
		},
		Literals: []Literal{
			{ast.LITERAL_UINT64, 42},
		},
		Witnesses: []ast.Type{ast.TYPE_BASE, ast.TYPE_BASE},
		Statements: []Statement{
			// heap: [NULLIFIER_K, w1, w2]
			{opcode.WITNESS_BASE, []Operand{{ast.HEAP_LITERAL, 0}}},
			// heap: [NULLIFIER_K, w1, w2, v3]
			{opcode.BASE_ADD, []Operand{{ast.HEAP_VARIABLE, 1}, {ast.HEAP_VARIABLE, 3}}},
			{opcode.CONSTRAIN_INSTANCE, []Operand{{ast.HEAP_VARIABLE, 4}}},
		},
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	program := testProgram()
	//
	decoded, err := Decode(Encode(program), &field.PALLAS)
	//
	require.Nil(t, err)
	assert.Equal(t, program, decoded)
}

func TestDecodeBadMagic(t *testing.T) {
	data := Encode(testProgram())
	data[0] = 0x0c
	//
	_, err := Decode(data, &field.PALLAS)
	//
	require.NotNil(t, err)
	assert.Equal(t, DecodeBadMagic, err.Kind)
}

func TestDecodeBadVersion(t *testing.T) {
	data := Encode(testProgram())
	data[4] = 0x03
	//
	_, err := Decode(data, &field.PALLAS)
	//
	require.NotNil(t, err)
	assert.Equal(t, DecodeBadVersion, err.Kind)
}

func TestDecodeRowExponentBounds(t *testing.T) {
	for _, k := range []uint32{0, 32, 100} {
		program := testProgram()
		program.K = k
		//
		_, err := Decode(Encode(program), &field.PALLAS)
		//
		require.NotNil(t, err, "k=%d", k)
		assert.Equal(t, DecodeBadRowExponent, err.Kind)
	}
	// Boundary values 1 and 31 are accepted.
	for _, k := range []uint32{1, 31} {
		program := testProgram()
		program.K = k
		//
		_, err := Decode(Encode(program), &field.PALLAS)
		require.Nil(t, err, "k=%d", k)
	}
}

func TestDecodeHeapIndexOutOfRange(t *testing.T) {
	program := testProgram()
	// Reference one slot past the heap at that point.
	program.Statements[1].Args[1].Index = 4
	//
	_, err := Decode(Encode(program), &field.PALLAS)
	//
	require.NotNil(t, err)
	assert.Equal(t, DecodeHeapIndexOutOfRange, err.Kind)
}

func TestDecodeLiteralIndexOutOfRange(t *testing.T) {
	program := testProgram()
	program.Statements[0].Args[0].Index = 1
	//
	_, err := Decode(Encode(program), &field.PALLAS)
	//
	require.NotNil(t, err)
	assert.Equal(t, DecodeHeapIndexOutOfRange, err.Kind)
}

func TestDecodeUnknownOpcode(t *testing.T) {
	data := Encode(&Program{
		K:         11,
		Namespace: "N",
		Statements: []Statement{
			{opcode.Code(0x7e), nil},
		},
	})
	//
	_, err := Decode(data, &field.PALLAS)
	//
	require.NotNil(t, err)
	assert.Equal(t, DecodeUnknownOpcode, err.Kind)
}

func TestDecodeUnknownType(t *testing.T) {
	data := Encode(&Program{
		K:         11,
		Namespace: "N",
		Witnesses: []ast.Type{ast.Type(0x7e)},
	})
	//
	_, err := Decode(data, &field.PALLAS)
	//
	require.NotNil(t, err)
	assert.Equal(t, DecodeUnknownType, err.Kind)
}

func TestDecodeTruncated(t *testing.T) {
	data := Encode(testProgram())
	//
	for _, cut := range []int{0, 3, 5, 9, len(data) / 2} {
		_, err := Decode(data[:cut], &field.PALLAS)
		assert.NotNil(t, err, "cut=%d", cut)
	}
}

func TestDecodeTrailingGarbage(t *testing.T) {
	data := Encode(testProgram())
	data = append(data, 0xff, 0xff, 0xff)
	//
	_, err := Decode(data, &field.PALLAS)
	//
	require.NotNil(t, err)
}

func TestDecodeHeapGrowthAcrossStatements(t *testing.T) {
	// A statement may reference the output of the previous statement, whose
	// heap slot only exists because that statement produces a value.
	program := testProgram()
	//
	decoded, err := Decode(Encode(program), &field.PALLAS)
	//
	require.Nil(t, err)
	assert.Equal(t, uint(2), decoded.Producing())
	assert.Equal(t, uint(5), decoded.HeapSize())
}
