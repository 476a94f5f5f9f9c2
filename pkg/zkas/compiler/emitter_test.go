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
package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/go-zkas/pkg/binfile"
	"github.com/consensys/go-zkas/pkg/util/field"
	"github.com/consensys/go-zkas/pkg/zkas/ast"
	"github.com/consensys/go-zkas/pkg/zkas/opcode"
)

// roundTrip encodes and decodes a program against the default field.
func roundTrip(program *binfile.Program) (*binfile.Program, *binfile.DecodeError) {
	return binfile.Decode(binfile.Encode(program), &field.PALLAS)
}

func emitString(t *testing.T, input string, debug bool) []byte {
	t.Helper()
	//
	analysis, err := analyzeString(t, input)
	require.Nil(t, err)
	//
	return EmitBytes(analysis, debug)
}

func TestEmitHelloConstant(t *testing.T) {
	bytes := emitString(t,
		`k=11; field="pallas"; constant "N"{} witness "N"{} circuit "N"{}`, false)
	// Golden encoding: magic, version, k, namespace, four empty sections.
	assert.Equal(t, []byte{
		0x0b, 0x01, 0xb1, 0x35, // magic
		0x02,                   // version
		0x0b, 0x00, 0x00, 0x00, // k = 11
		0x01, 'N', // namespace
		0x00, // constants
		0x00, // literals
		0x00, // witnesses
		0x00, // statements
	}, bytes)
}

func TestEmitDeterminism(t *testing.T) {
	first := emitString(t, helloSource, true)
	second := emitString(t, helloSource, true)
	//
	assert.Equal(t, first, second)
}

func TestEmitLiteralPlacement(t *testing.T) {
	analysis, err := analyzeString(t, `k=11; field="pallas";
		constant "N"{} witness "N"{}
		circuit "N"{
			a = witness_base(42);
			range_check(64, a);
			constrain_instance(a);
		}`)
	require.Nil(t, err)
	//
	program := Emit(analysis, false)
	// The literal heap holds [42, 64] in first-encountered order.
	require.Len(t, program.Literals, 2)
	assert.Equal(t, binfile.Literal{Kind: ast.LITERAL_UINT64, Value: 42}, program.Literals[0])
	assert.Equal(t, binfile.Literal{Kind: ast.LITERAL_UINT64, Value: 64}, program.Literals[1])
	// Statements carry their opcode points and heap references.
	require.Len(t, program.Statements, 3)
	assert.Equal(t, opcode.WITNESS_BASE, program.Statements[0].Opcode)
	assert.Equal(t, binfile.Operand{Kind: ast.HEAP_LITERAL, Index: 0},
		program.Statements[0].Args[0])
	assert.Equal(t, opcode.RANGE_CHECK, program.Statements[1].Opcode)
	assert.Equal(t, binfile.Operand{Kind: ast.HEAP_LITERAL, Index: 1},
		program.Statements[1].Args[0])
	assert.Equal(t, binfile.Operand{Kind: ast.HEAP_VARIABLE, Index: 0},
		program.Statements[1].Args[1])
}

func TestEmitStatementCorrespondence(t *testing.T) {
	analysis, err := analyzeString(t, helloSource)
	require.Nil(t, err)
	//
	program := Emit(analysis, false)
	// 1:1 correspondence between analyzed and emitted statements.
	assert.Len(t, program.Statements, len(analysis.Program.Statements))
	assert.Equal(t, uint(1), program.Producing())
	assert.Equal(t, uint(3), program.HeapSize())
}

func TestEmitDecodeRoundTrip(t *testing.T) {
	analysis, err := analyzeString(t, helloSource)
	require.Nil(t, err)
	//
	program := Emit(analysis, false)
	// Decoding the emitted bytes recovers the analyzed program structurally.
	decoded, derr := roundTrip(program)
	require.Nil(t, derr)
	assert.Equal(t, program, decoded)
}

func TestEmitDebugSection(t *testing.T) {
	analysis, err := analyzeString(t, helloSource)
	require.Nil(t, err)
	//
	program := Emit(analysis, true)
	//
	require.NotNil(t, program.Debug)
	require.Len(t, program.Debug.Positions, 2)
	// Positions point at the opcode tokens.
	assert.Equal(t, uint(12), program.Debug.Positions[0].Line)
	assert.Equal(t, []string{"a", "b", "c"}, program.Debug.HeapNames)
	assert.Empty(t, program.Debug.LiteralNames)
	// Debug emission round-trips through the container format.
	decoded, derr := roundTrip(program)
	require.Nil(t, derr)
	assert.Equal(t, program.Debug, decoded.Debug)
}
