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

// Package binfile fixes the bytecode container format: a magic identifier and
// binary version, followed by the namespace, constant, literal, witness and
// circuit sections, and an optional trailing debug section.  The layout is
// bit-exact and the encoder is deterministic, hence compiling the same source
// twice yields identical bytes.
package binfile

import (
	"github.com/consensys/go-zkas/pkg/zkas/ast"
	"github.com/consensys/go-zkas/pkg/zkas/opcode"
)

// MAGIC is the four-byte identifier opening every bytecode artifact.
var MAGIC = [4]byte{0x0b, 0x01, 0xb1, 0x35}

// VERSION is the binary format version this package reads and writes.
const VERSION byte = 0x02

// Program is the in-memory representation of a bytecode artifact, produced by
// the emitter and recovered by the decoder.
type Program struct {
	// Row count exponent (the circuit has 2^k rows).
	K uint32
	// User-chosen namespace.
	Namespace string
	// Constant declarations, in declaration order.
	Constants []Constant
	// Literal heap entries, in first-encountered order.
	Literals []Literal
	// Witness types, in declaration order.
	Witnesses []ast.Type
	// Circuit statements, in source order.
	Statements []Statement
	// Optional debug information (nil when absent).
	Debug *DebugInfo
}

// Constant is a named builtin constant declaration.
type Constant struct {
	Type ast.Type
	Name string
}

// Literal is a single literal heap entry.
type Literal struct {
	Kind  ast.LiteralKind
	Value uint64
}

// Statement is a single opcode invocation with its resolved heap references.
type Statement struct {
	Opcode opcode.Code
	Args   []Operand
}

// Operand is a heap reference: which heap, and the index within it.
type Operand struct {
	Kind  ast.HeapKind
	Index uint64
}

// DebugInfo is the optional trailing section: source positions per statement,
// the variable heap names, and the literal values rendered verbatim.
type DebugInfo struct {
	// Source position of each statement, parallel to Statements.
	Positions []Position
	// Name of every variable heap slot, in heap order.
	HeapNames []string
	// Decimal rendering of every literal, in heap order.
	LiteralNames []string
}

// Position is a line/column pair, both counting from 1.
type Position struct {
	Line   uint
	Column uint
}

// Producing determines how many statements of a program push a value onto the
// variable heap.
func (p *Program) Producing() uint {
	var n uint
	//
	for _, stmt := range p.Statements {
		if spec, ok := opcode.LookupCode(uint8(stmt.Opcode)); ok && spec.HasOutput() {
			n++
		}
	}
	//
	return n
}

// HeapSize determines the final size of the variable heap for a program:
// constants, then witnesses, then one slot per producing statement.
func (p *Program) HeapSize() uint {
	return uint(len(p.Constants)) + uint(len(p.Witnesses)) + p.Producing()
}
