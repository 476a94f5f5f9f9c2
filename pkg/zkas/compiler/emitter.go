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
	"strconv"

	"github.com/consensys/go-zkas/pkg/binfile"
)

// Emit lowers an analyzed program into its bytecode representation.  There is
// a 1:1 correspondence between analyzed and emitted statements, and no
// optimisation of any kind: emission depends only on the declaration-order
// lists fixed by analysis, hence the same source always yields the same
// bytes.  When debug is set, the trailing debug section records source
// positions, heap slot names and literal values.
func Emit(analysis *Analysis, debug bool) *binfile.Program {
	var (
		ast     = analysis.Program
		program = binfile.Program{
			K:         ast.K,
			Namespace: ast.Namespace,
		}
	)
	// Constant section, in declaration order.
	for _, decl := range ast.Constants {
		program.Constants = append(program.Constants, binfile.Constant{
			Type: decl.Type, Name: decl.Name,
		})
	}
	// Literal section, in first-encountered order.
	for _, literal := range analysis.Literals {
		program.Literals = append(program.Literals, binfile.Literal{
			Kind: literal.Kind, Value: literal.Value,
		})
	}
	// Witness section, in declaration order.
	for _, decl := range ast.Witnesses {
		program.Witnesses = append(program.Witnesses, decl.Type)
	}
	// Circuit section, in source order.
	for i := range ast.Statements {
		var stmt binfile.Statement
		//
		stmt.Opcode = analysis.Specs[i].Code
		//
		for _, operand := range analysis.Operands[i] {
			stmt.Args = append(stmt.Args, binfile.Operand{
				Kind: operand.Kind, Index: uint64(operand.Index),
			})
		}
		//
		program.Statements = append(program.Statements, stmt)
	}
	//
	if debug {
		program.Debug = emitDebug(analysis)
	}
	//
	return &program
}

// EmitBytes lowers an analyzed program and serialises it in one step.
func EmitBytes(analysis *Analysis, debug bool) []byte {
	return binfile.Encode(Emit(analysis, debug))
}

// emitDebug gathers the debug section contents: per-statement source
// positions, the variable heap names in heap order, and the literal values.
// Literals are rendered verbatim as decimal, with no canonical reformatting.
func emitDebug(analysis *Analysis) *binfile.DebugInfo {
	var (
		debug  binfile.DebugInfo
		srcmap = analysis.Program.SourceMap
	)
	//
	for _, stmt := range analysis.Program.Statements {
		span := srcmap.Get(stmt)
		srcfile := srcmap.SourceFile()
		line, col := srcfile.LineColumn(span)
		//
		debug.Positions = append(debug.Positions, binfile.Position{
			Line: uint(line), Column: uint(col),
		})
	}
	//
	for _, symbol := range analysis.Symbols.Symbols() {
		debug.HeapNames = append(debug.HeapNames, symbol.Name)
	}
	//
	for _, literal := range analysis.Literals {
		debug.LiteralNames = append(debug.LiteralNames, strconv.FormatUint(literal.Value, 10))
	}
	//
	return &debug
}
