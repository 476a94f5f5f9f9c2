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

// Package opcode fixes the closed table of circuit operations.  The byte
// codes, arities and type signatures form part of the binary interface and
// must not be reordered.  Extending the language means appending to this
// table and supplying a gadget, never touching the dispatcher.
package opcode

import (
	"github.com/consensys/go-zkas/pkg/zkas/ast"
)

// Code is the single-byte encoding of an opcode.  Codes are grouped by
// category in the high nibble.
type Code uint8

// EC arithmetic.
const (
	// EC_ADD adds two variable points.
	EC_ADD Code = 0x01
	// EC_MUL multiplies a fixed base by a full-width scalar.
	EC_MUL Code = 0x02
	// EC_MUL_BASE multiplies a fixed base by a base field element, wrapped
	// through the curve's scalar embedding.
	EC_MUL_BASE Code = 0x03
	// EC_MUL_SHORT multiplies a fixed base by a short (64bit) scalar.
	EC_MUL_SHORT Code = 0x04
	// EC_MUL_VAR_BASE multiplies a variable (non-identity) point by a base
	// field element.
	EC_MUL_VAR_BASE Code = 0x05
	// EC_GET_X extracts the affine x coordinate of a point.
	EC_GET_X Code = 0x08
	// EC_GET_Y extracts the affine y coordinate of a point.
	EC_GET_Y Code = 0x09
)

// Hashing.
const (
	// POSEIDON_HASH hashes a variable number of base field elements.
	POSEIDON_HASH Code = 0x10
	// MERKLE_ROOT computes a depth-32 Merkle root from a position, an
	// authentication path and a leaf.
	MERKLE_ROOT Code = 0x20
)

// Base field arithmetic.
const (
	// BASE_ADD adds two base field elements.
	BASE_ADD Code = 0x30
	// BASE_MUL multiplies two base field elements.
	BASE_MUL Code = 0x31
	// BASE_SUB subtracts two base field elements.
	BASE_SUB Code = 0x32
)

// Witness lifts.
const (
	// WITNESS_BASE materialises a literal as a base field element.
	WITNESS_BASE Code = 0x40
)

// Range and comparison checks.
const (
	// RANGE_CHECK constrains a value to a given number of bits (64 or 253).
	RANGE_CHECK Code = 0x50
	// LESS_THAN_STRICT enforces a < b.
	LESS_THAN_STRICT Code = 0x51
	// LESS_THAN_LOOSE enforces a <= b.
	LESS_THAN_LOOSE Code = 0x52
	// BOOL_CHECK enforces a in {0, 1}.
	BOOL_CHECK Code = 0x53
)

// Conditionals.
const (
	// COND_SELECT returns a if c = 1 else b.
	COND_SELECT Code = 0x60
	// ZERO_COND_SELECT returns a if a = 0 else b.
	ZERO_COND_SELECT Code = 0x61
)

// Constraints.
const (
	// CONSTRAIN_EQUAL_BASE asserts equality of two base field elements.
	CONSTRAIN_EQUAL_BASE Code = 0xe0
	// CONSTRAIN_EQUAL_POINT asserts equality of two points.
	CONSTRAIN_EQUAL_POINT Code = 0xe1
	// CONSTRAIN_INSTANCE emits its argument as a public input.
	CONSTRAIN_INSTANCE Code = 0xf0
)

// MAX_POSEIDON_ARITY bounds the number of inputs to a single poseidon_hash
// call, as fixed by the largest supported permutation width.
const MAX_POSEIDON_ARITY = 11

// Spec fixes everything the pipeline needs to know about one opcode: its
// code point, source spelling, input signature, output type and which
// argument positions take a literal.
type Spec struct {
	// Single-byte code point.
	Code Code
	// Source-level spelling.
	Name string
	// Expected input types, by position.  For variadic opcodes this holds a
	// single entry giving the repeated element type.
	Inputs []ast.Type
	// Set for opcodes accepting a variable number of inputs.
	Variadic bool
	// Output type, or TYPE_NONE for opcodes producing no heap value.
	Output ast.Type
	// Positions (0-based) at which a literal argument is expected.  All
	// other positions require identifier references.
	LiteralArgs []uint
}

// HasOutput checks whether this opcode pushes a value onto the heap.
func (p *Spec) HasOutput() bool {
	return p.Output != ast.TYPE_NONE
}

// TakesLiteralAt checks whether position i expects a literal argument.
func (p *Spec) TakesLiteralAt(i uint) bool {
	for _, pos := range p.LiteralArgs {
		if pos == i {
			return true
		}
	}
	//
	return false
}

// OPCODES is the closed opcode table, in code-point order.
var OPCODES = []Spec{
	{EC_ADD, "ec_add",
		[]ast.Type{ast.TYPE_EC_POINT, ast.TYPE_EC_POINT},
		false, ast.TYPE_EC_POINT, nil},
	{EC_MUL, "ec_mul",
		[]ast.Type{ast.TYPE_SCALAR, ast.TYPE_EC_FIXED_POINT},
		false, ast.TYPE_EC_POINT, nil},
	{EC_MUL_BASE, "ec_mul_base",
		[]ast.Type{ast.TYPE_BASE, ast.TYPE_EC_FIXED_POINT_BASE},
		false, ast.TYPE_EC_POINT, nil},
	{EC_MUL_SHORT, "ec_mul_short",
		[]ast.Type{ast.TYPE_UINT64, ast.TYPE_EC_FIXED_POINT_SHORT},
		false, ast.TYPE_EC_POINT, nil},
	{EC_MUL_VAR_BASE, "ec_mul_var_base",
		[]ast.Type{ast.TYPE_BASE, ast.TYPE_EC_NI_POINT},
		false, ast.TYPE_EC_POINT, nil},
	{EC_GET_X, "ec_get_x",
		[]ast.Type{ast.TYPE_EC_POINT},
		false, ast.TYPE_BASE, nil},
	{EC_GET_Y, "ec_get_y",
		[]ast.Type{ast.TYPE_EC_POINT},
		false, ast.TYPE_BASE, nil},
	{POSEIDON_HASH, "poseidon_hash",
		[]ast.Type{ast.TYPE_BASE},
		true, ast.TYPE_BASE, nil},
	{MERKLE_ROOT, "merkle_root",
		[]ast.Type{ast.TYPE_UINT32, ast.TYPE_MERKLE_PATH, ast.TYPE_BASE},
		false, ast.TYPE_BASE, nil},
	{BASE_ADD, "base_add",
		[]ast.Type{ast.TYPE_BASE, ast.TYPE_BASE},
		false, ast.TYPE_BASE, nil},
	{BASE_MUL, "base_mul",
		[]ast.Type{ast.TYPE_BASE, ast.TYPE_BASE},
		false, ast.TYPE_BASE, nil},
	{BASE_SUB, "base_sub",
		[]ast.Type{ast.TYPE_BASE, ast.TYPE_BASE},
		false, ast.TYPE_BASE, nil},
	{WITNESS_BASE, "witness_base",
		[]ast.Type{ast.TYPE_UINT64},
		false, ast.TYPE_BASE, []uint{0}},
	{RANGE_CHECK, "range_check",
		[]ast.Type{ast.TYPE_UINT64, ast.TYPE_BASE},
		false, ast.TYPE_NONE, []uint{0}},
	{LESS_THAN_STRICT, "less_than_strict",
		[]ast.Type{ast.TYPE_BASE, ast.TYPE_BASE},
		false, ast.TYPE_NONE, nil},
	{LESS_THAN_LOOSE, "less_than_loose",
		[]ast.Type{ast.TYPE_BASE, ast.TYPE_BASE},
		false, ast.TYPE_NONE, nil},
	{BOOL_CHECK, "bool_check",
		[]ast.Type{ast.TYPE_BASE},
		false, ast.TYPE_NONE, nil},
	{COND_SELECT, "cond_select",
		[]ast.Type{ast.TYPE_BASE, ast.TYPE_BASE, ast.TYPE_BASE},
		false, ast.TYPE_BASE, nil},
	{ZERO_COND_SELECT, "zero_cond_select",
		[]ast.Type{ast.TYPE_BASE, ast.TYPE_BASE},
		false, ast.TYPE_BASE, nil},
	{CONSTRAIN_EQUAL_BASE, "constrain_equal_base",
		[]ast.Type{ast.TYPE_BASE, ast.TYPE_BASE},
		false, ast.TYPE_NONE, nil},
	{CONSTRAIN_EQUAL_POINT, "constrain_equal_point",
		[]ast.Type{ast.TYPE_EC_POINT, ast.TYPE_EC_POINT},
		false, ast.TYPE_NONE, nil},
	{CONSTRAIN_INSTANCE, "constrain_instance",
		[]ast.Type{ast.TYPE_BASE},
		false, ast.TYPE_NONE, nil},
}

// Lookup finds the spec for a given source-level opcode name.
func Lookup(name string) (*Spec, bool) {
	for i := range OPCODES {
		if OPCODES[i].Name == name {
			return &OPCODES[i], true
		}
	}
	//
	return nil, false
}

// LookupCode finds the spec for a given code point.
func LookupCode(code uint8) (*Spec, bool) {
	for i := range OPCODES {
		if OPCODES[i].Code == Code(code) {
			return &OPCODES[i], true
		}
	}
	//
	return nil, false
}
