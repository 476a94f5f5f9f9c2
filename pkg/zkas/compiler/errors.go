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
	"github.com/consensys/go-zkas/pkg/util/source"
)

// LexErrorKind distinguishes the failure modes of the lexer.
type LexErrorKind uint8

const (
	// LexUnexpectedCharacter indicates a byte sequence matched by no rule.
	LexUnexpectedCharacter LexErrorKind = iota
	// LexIntegerOverflow indicates a literal exceeding 64 bits.
	LexIntegerOverflow
	// LexUnterminatedComment indicates a block comment or string literal
	// still open at the end of input.
	LexUnterminatedComment
)

// LexError is a lexical error at a given span.
type LexError struct {
	Kind LexErrorKind
	Err  *source.SyntaxError
}

func (p *LexError) Error() string {
	return p.Err.Error()
}

// Span returns the span the error is reported on.
func (p *LexError) Span() source.Span {
	return p.Err.Span()
}

// ParseErrorKind distinguishes the failure modes of the parser.
type ParseErrorKind uint8

const (
	// ParseUnexpectedToken indicates the lookahead token was not what the
	// grammar required.
	ParseUnexpectedToken ParseErrorKind = iota
	// ParseNamespaceMismatch indicates the three section namespaces were not
	// byte-identical.
	ParseNamespaceMismatch
	// ParseMissingSection indicates a required section was absent.
	ParseMissingSection
)

// ParseError is a syntactic error at a given span.
type ParseError struct {
	Kind ParseErrorKind
	Err  *source.SyntaxError
}

func (p *ParseError) Error() string {
	return p.Err.Error()
}

// Span returns the span the error is reported on.
func (p *ParseError) Span() source.Span {
	return p.Err.Span()
}

// AnalyzeErrorKind distinguishes the failure modes of the analyzer.
type AnalyzeErrorKind uint8

const (
	// AnalyzeDuplicateSymbol indicates a name declared twice.
	AnalyzeDuplicateSymbol AnalyzeErrorKind = iota
	// AnalyzeUnknownBuiltin indicates a constant outside the builtin set.
	AnalyzeUnknownBuiltin
	// AnalyzeUnknownOpcode indicates a statement naming no known opcode.
	AnalyzeUnknownOpcode
	// AnalyzeArityMismatch indicates a wrong number of arguments.
	AnalyzeArityMismatch
	// AnalyzeTypeMismatch indicates an argument of the wrong type.
	AnalyzeTypeMismatch
	// AnalyzeAssignToVoidOp indicates an assignment from an opcode which
	// produces no value.
	AnalyzeAssignToVoidOp
	// AnalyzeUnusedOutput indicates a bare call of an opcode which produces
	// a value.
	AnalyzeUnusedOutput
	// AnalyzeUseBeforeDeclaration indicates a reference to a name not yet
	// declared.
	AnalyzeUseBeforeDeclaration
	// AnalyzeLiteralWhereVarExpected indicates a literal argument at a
	// position requiring an identifier (or vice versa).
	AnalyzeLiteralWhereVarExpected
	// AnalyzeUnsupportedLiteralWidth indicates a range check over a bit
	// width other than 64 or 253.
	AnalyzeUnsupportedLiteralWidth
)

// AnalyzeError is a semantic error at a given span.
type AnalyzeError struct {
	Kind AnalyzeErrorKind
	Err  *source.SyntaxError
}

func (p *AnalyzeError) Error() string {
	return p.Err.Error()
}

// Span returns the span the error is reported on.
func (p *AnalyzeError) Span() source.Span {
	return p.Err.Span()
}
