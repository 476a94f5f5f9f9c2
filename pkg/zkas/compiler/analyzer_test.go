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

	"github.com/consensys/go-zkas/pkg/util/source"
	"github.com/consensys/go-zkas/pkg/zkas/ast"
)

func analyzeString(t *testing.T, input string) (*Analysis, *AnalyzeError) {
	t.Helper()
	//
	program, perr := Parse(source.NewSourceFile("test.zk", []byte(input)))
	require.NoError(t, perr)
	//
	return Analyze(program)
}

func TestAnalyzeHeapIndices(t *testing.T) {
	analysis, err := analyzeString(t, `k=11; field="pallas";
		constant "N" { EcFixedPointBase NULLIFIER_K, }
		witness "N" { Base a, Base b, }
		circuit "N" { c = base_add(a, b); d = base_mul(c, a); }`)
	//
	require.Nil(t, err)
	// Constants first, then witnesses, then assignments, in order.
	symbols := analysis.Symbols.Symbols()
	require.Len(t, symbols, 5)
	//
	for i, expected := range []struct {
		name   string
		origin Origin
	}{
		{"NULLIFIER_K", ORIGIN_CONSTANT},
		{"a", ORIGIN_WITNESS},
		{"b", ORIGIN_WITNESS},
		{"c", ORIGIN_ASSIGNED},
		{"d", ORIGIN_ASSIGNED},
	} {
		assert.Equal(t, expected.name, symbols[i].Name)
		assert.Equal(t, expected.origin, symbols[i].Origin)
		assert.Equal(t, uint(i), symbols[i].Index)
	}
}

func TestAnalyzeLiteralOrderAndDedup(t *testing.T) {
	analysis, err := analyzeString(t, `k=11; field="pallas";
		constant "N" {} witness "N" {}
		circuit "N" {
			a = witness_base(42);
			range_check(64, a);
			b = witness_base(42);
			range_check(64, b);
		}`)
	//
	require.Nil(t, err)
	// Literals appear in first-encountered order, deduplicated.
	require.Len(t, analysis.Literals, 2)
	assert.Equal(t, uint64(42), analysis.Literals[0].Value)
	assert.Equal(t, uint64(64), analysis.Literals[1].Value)
	// Both range checks reference the same literal slot.
	assert.Equal(t, analysis.Operands[1][0], analysis.Operands[3][0])
}

func TestAnalyzeResolvedOperands(t *testing.T) {
	analysis, err := analyzeString(t, `k=11; field="pallas";
		constant "N" {} witness "N" { Base a, }
		circuit "N" { b = witness_base(7); c = base_add(a, b); }`)
	//
	require.Nil(t, err)
	// base_add(a, b): a is heap slot 0, b is heap slot 1.
	operands := analysis.Operands[1]
	assert.Equal(t, Operand{ast.HEAP_VARIABLE, 0}, operands[0])
	assert.Equal(t, Operand{ast.HEAP_VARIABLE, 1}, operands[1])
}

func TestAnalyzeErrorKinds(t *testing.T) {
	prelude := `k=11; field="pallas"; `
	//
	tests := []struct {
		name  string
		input string
		kind  AnalyzeErrorKind
	}{
		{
			"duplicate witness",
			`constant "N"{} witness "N"{ Base a, Base a, } circuit "N"{}`,
			AnalyzeDuplicateSymbol,
		},
		{
			"duplicate assignment",
			`constant "N"{} witness "N"{ Base a, } circuit "N"{ a = witness_base(1); }`,
			AnalyzeDuplicateSymbol,
		},
		{
			"unknown builtin",
			`constant "N"{ EcFixedPoint MYSTERY_POINT, } witness "N"{} circuit "N"{}`,
			AnalyzeUnknownBuiltin,
		},
		{
			"unknown opcode",
			`constant "N"{} witness "N"{} circuit "N"{ frobnicate(); }`,
			AnalyzeUnknownOpcode,
		},
		{
			"arity mismatch",
			`constant "N"{} witness "N"{ Base a, Base b, } circuit "N"{ c = base_add(a); }`,
			AnalyzeArityMismatch,
		},
		{
			"type mismatch",
			`constant "N"{} witness "N"{ EcPoint p, Base x, } circuit "N"{ y = base_add(p, x); }`,
			AnalyzeTypeMismatch,
		},
		{
			"assign to void op",
			`constant "N"{} witness "N"{ Base a, } circuit "N"{ b = bool_check(a); }`,
			AnalyzeAssignToVoidOp,
		},
		{
			"unused output",
			`constant "N"{} witness "N"{ Base a, Base b, } circuit "N"{ base_add(a, b); }`,
			AnalyzeUnusedOutput,
		},
		{
			"use before declaration",
			`constant "N"{} witness "N"{} circuit "N"{ a = witness_base(1); b = base_add(a, zz); }`,
			AnalyzeUseBeforeDeclaration,
		},
		{
			"self reference",
			`constant "N"{} witness "N"{ Base a, } circuit "N"{ c = base_add(c, a); }`,
			AnalyzeUseBeforeDeclaration,
		},
		{
			"literal where var expected",
			`constant "N"{} witness "N"{ Base a, } circuit "N"{ c = base_add(a, 5); }`,
			AnalyzeLiteralWhereVarExpected,
		},
		{
			"var where literal expected",
			`constant "N"{} witness "N"{ Base a, } circuit "N"{ c = witness_base(a); }`,
			AnalyzeLiteralWhereVarExpected,
		},
		{
			"unsupported range width",
			`constant "N"{} witness "N"{ Base a, } circuit "N"{ range_check(65, a); }`,
			AnalyzeUnsupportedLiteralWidth,
		},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := analyzeString(t, prelude+tt.input)
			//
			require.NotNil(t, err)
			assert.Equal(t, tt.kind, err.Kind)
		})
	}
}

func TestAnalyzeArityDiagnosticPosition(t *testing.T) {
	input := `k=11; field="pallas"; constant "N"{}
witness "N"{ Base a, Base b, }
circuit "N"{ c = base_add(a); }`
	//
	_, err := analyzeString(t, input)
	//
	require.NotNil(t, err)
	// The diagnostic points at the column of base_add itself.
	assert.Regexp(t, `^test\.zk:3:18: `, err.Error())
}

func TestAnalyzeMonotoneExtension(t *testing.T) {
	prefix := `k=11; field="pallas"; constant "N"{} witness "N"{ Base a, Base b, }
		circuit "N"{ c = base_add(a, b); `
	// A valid circuit stays valid when extended with statements referencing
	// existing, correctly-typed names.
	_, err := analyzeString(t, prefix+`}`)
	require.Nil(t, err)
	//
	_, err = analyzeString(t, prefix+`d = base_mul(c, a); constrain_instance(d); }`)
	require.Nil(t, err)
}
