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

// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the analyzer, along with the closed set of value types.
package ast

import (
	"github.com/consensys/go-zkas/pkg/util/source"
)

// Program is the root of the syntax tree: one header, followed by the
// constant, witness and circuit sections (whose namespaces agree).
type Program struct {
	// Row count exponent (the circuit has 2^k rows).
	K uint32
	// Name of the field the circuit is arithmetised over.
	Field string
	// User-chosen namespace, repeated across all three sections.
	Namespace string
	// Declared constants, in source order.
	Constants []*ConstantDecl
	// Declared witnesses, in source order.
	Witnesses []*WitnessDecl
	// Circuit statements, in source order.
	Statements []*Statement
	// Mapping of nodes back to the source file.
	SourceMap *source.Map[any]
}

// ConstantDecl declares a named builtin constant of a given type.
type ConstantDecl struct {
	Type Type
	Name string
}

// WitnessDecl declares a named witness of a given type.
type WitnessDecl struct {
	Type Type
	Name string
}

// Statement is a single opcode invocation within the circuit section, either
// an assignment "x = op(args);" or a bare call "op(args);".
type Statement struct {
	// Name assigned to the opcode's output, or empty for a bare call.
	Target string
	// Source-level opcode name.
	Opcode string
	// Arguments, in source order.
	Args []*Arg
}

// IsAssignment checks whether this statement binds a name.
func (p *Statement) IsAssignment() bool {
	return p.Target != ""
}

// Arg is a single opcode argument: either a reference to a previously
// declared name, or an integer literal.
type Arg struct {
	// Referenced identifier (unless this is a literal).
	Name string
	// Literal value (when IsLiteral is set).
	Literal uint64
	// Discriminates the two variants.
	IsLiteral bool
}
