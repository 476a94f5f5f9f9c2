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
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-zkas/pkg/zkas/ast"
	"github.com/consensys/go-zkas/pkg/zkas/opcode"
)

// Literal is a single entry of the literal heap, in first-encountered order.
type Literal struct {
	Kind  ast.LiteralKind
	Value uint64
}

// Operand is a resolved statement argument: a reference into one of the two
// heaps.
type Operand struct {
	Kind  ast.HeapKind
	Index uint
}

// Analysis is the result of a successful semantic analysis: the program
// annotated with its finalized symbol table, literal table, and per-statement
// resolved operands.
type Analysis struct {
	Program *ast.Program
	// Symbol table, fixing the variable heap layout.
	Symbols *SymbolTable
	// Literal table, fixing the literal heap layout.
	Literals []Literal
	// Resolved operands, one row per circuit statement.
	Operands [][]Operand
	// Opcode specs, one per circuit statement.
	Specs []*opcode.Spec
}

// Analyze runs the three semantic passes (symbol binding, constant
// resolution, statement checking) over a parsed program, producing either a
// fully annotated analysis or the first error encountered.
func Analyze(program *ast.Program) (*Analysis, *AnalyzeError) {
	analysis := &Analysis{
		Program: program,
		Symbols: NewSymbolTable(),
	}
	// Pass 1: bind constant and witness names.
	if err := analysis.bindSymbols(); err != nil {
		return nil, err
	}
	// Pass 2: resolve constants against the builtin set.
	if err := analysis.resolveConstants(); err != nil {
		return nil, err
	}
	// Pass 3: check every circuit statement in order.
	if err := analysis.checkStatements(); err != nil {
		return nil, err
	}
	//
	log.Debugf("analyzed %d statements over %d symbols and %d literals",
		len(program.Statements), analysis.Symbols.Len(), len(analysis.Literals))
	//
	return analysis, nil
}

// bindSymbols registers every constant and witness name, assigning heap
// indices in declaration order.
func (p *Analysis) bindSymbols() *AnalyzeError {
	for _, decl := range p.Program.Constants {
		if !p.Symbols.Bind(decl.Name, decl.Type, ORIGIN_CONSTANT) {
			return p.error(decl, AnalyzeDuplicateSymbol,
				fmt.Sprintf("symbol \"%s\" already declared", decl.Name))
		}
	}
	//
	for _, decl := range p.Program.Witnesses {
		if !p.Symbols.Bind(decl.Name, decl.Type, ORIGIN_WITNESS) {
			return p.error(decl, AnalyzeDuplicateSymbol,
				fmt.Sprintf("symbol \"%s\" already declared", decl.Name))
		}
	}
	//
	return nil
}

// resolveConstants verifies every declared constant against the closed set of
// builtins recognised by the host.
func (p *Analysis) resolveConstants() *AnalyzeError {
	for _, decl := range p.Program.Constants {
		if !opcode.IsBuiltin(decl.Name) {
			return p.error(decl, AnalyzeUnknownBuiltin,
				fmt.Sprintf("unknown builtin constant \"%s\"", decl.Name))
		}
	}
	//
	return nil
}

// checkStatements walks the circuit in order, resolving and type checking
// every argument and binding assignment targets.
func (p *Analysis) checkStatements() *AnalyzeError {
	// Literal deduplication, mapping values to literal heap indices.
	dedup := make(map[uint64]uint)
	//
	for _, stmt := range p.Program.Statements {
		spec, ok := opcode.Lookup(stmt.Opcode)
		//
		if !ok {
			return p.error(stmt, AnalyzeUnknownOpcode,
				fmt.Sprintf("unknown opcode \"%s\"", stmt.Opcode))
		}
		// Check arity.
		if err := p.checkArity(stmt, spec); err != nil {
			return err
		}
		// Resolve every argument.
		operands := make([]Operand, len(stmt.Args))
		//
		for i, arg := range stmt.Args {
			operand, err := p.resolveArg(stmt, spec, uint(i), arg, dedup)
			//
			if err != nil {
				return err
			}
			//
			operands[i] = operand
		}
		// Check output usage, binding the target when present.
		if stmt.IsAssignment() {
			if !spec.HasOutput() {
				return p.error(stmt, AnalyzeAssignToVoidOp,
					fmt.Sprintf("opcode \"%s\" produces no value", stmt.Opcode))
			}
			//
			if !p.Symbols.Bind(stmt.Target, spec.Output, ORIGIN_ASSIGNED) {
				return p.error(stmt, AnalyzeDuplicateSymbol,
					fmt.Sprintf("symbol \"%s\" already declared", stmt.Target))
			}
		} else if spec.HasOutput() {
			return p.error(stmt, AnalyzeUnusedOutput,
				fmt.Sprintf("output of opcode \"%s\" must be assigned", stmt.Opcode))
		}
		//
		p.Operands = append(p.Operands, operands)
		p.Specs = append(p.Specs, spec)
	}
	//
	return nil
}

// checkArity verifies the number of supplied arguments against the opcode's
// declared arity.
func (p *Analysis) checkArity(stmt *ast.Statement, spec *opcode.Spec) *AnalyzeError {
	n := uint(len(stmt.Args))
	//
	if spec.Variadic {
		if n == 0 || n > opcode.MAX_POSEIDON_ARITY {
			return p.error(stmt, AnalyzeArityMismatch,
				fmt.Sprintf("opcode \"%s\" expects between 1 and %d arguments, found %d",
					stmt.Opcode, opcode.MAX_POSEIDON_ARITY, n))
		}
		//
		return nil
	}
	//
	if n != uint(len(spec.Inputs)) {
		return p.error(stmt, AnalyzeArityMismatch,
			fmt.Sprintf("opcode \"%s\" expects %d arguments, found %d",
				stmt.Opcode, len(spec.Inputs), n))
	}
	//
	return nil
}

// resolveArg resolves a single argument to a heap reference, checking its
// type against the opcode's expectation at that position.
func (p *Analysis) resolveArg(stmt *ast.Statement, spec *opcode.Spec, pos uint,
	arg *ast.Arg, dedup map[uint64]uint) (Operand, *AnalyzeError) {
	//
	var expected ast.Type
	// Variadic opcodes repeat their single input type.
	if spec.Variadic {
		expected = spec.Inputs[0]
	} else {
		expected = spec.Inputs[pos]
	}
	//
	if arg.IsLiteral != spec.TakesLiteralAt(pos) {
		if arg.IsLiteral {
			return Operand{}, p.error(arg, AnalyzeLiteralWhereVarExpected,
				fmt.Sprintf("argument %d of \"%s\" expects a variable, found a literal", pos, stmt.Opcode))
		}
		//
		return Operand{}, p.error(arg, AnalyzeLiteralWhereVarExpected,
			fmt.Sprintf("argument %d of \"%s\" expects a literal, found a variable", pos, stmt.Opcode))
	}
	// Literal arguments land on the literal heap.
	if arg.IsLiteral {
		// Range checks support two bit widths only.
		if spec.Code == opcode.RANGE_CHECK && arg.Literal != 64 && arg.Literal != 253 {
			return Operand{}, p.error(arg, AnalyzeUnsupportedLiteralWidth,
				fmt.Sprintf("unsupported range check width %d (expected 64 or 253)", arg.Literal))
		}
		//
		index, ok := dedup[arg.Literal]
		//
		if !ok {
			index = uint(len(p.Literals))
			dedup[arg.Literal] = index
			p.Literals = append(p.Literals, Literal{ast.LITERAL_UINT64, arg.Literal})
		}
		//
		return Operand{ast.HEAP_LITERAL, index}, nil
	}
	// Identifier arguments resolve through the symbol table.
	symbol, ok := p.Symbols.Lookup(arg.Name)
	//
	if !ok {
		return Operand{}, p.error(arg, AnalyzeUseBeforeDeclaration,
			fmt.Sprintf("\"%s\" used before declaration", arg.Name))
	}
	//
	if symbol.Type != expected {
		return Operand{}, p.error(arg, AnalyzeTypeMismatch,
			fmt.Sprintf("argument %d of \"%s\" expects %s, found %s",
				pos, stmt.Opcode, expected, symbol.Type))
	}
	//
	return Operand{ast.HEAP_VARIABLE, symbol.Index}, nil
}

// error constructs an analysis error reported against a given AST node.
func (p *Analysis) error(node any, kind AnalyzeErrorKind, msg string) *AnalyzeError {
	return &AnalyzeError{kind, p.Program.SourceMap.SyntaxError(node, msg)}
}
