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

	"github.com/consensys/go-zkas/pkg/util/source"
	"github.com/consensys/go-zkas/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// COMMENT signals "# ... \n" or "/* ... */"
const COMMENT uint = 2

// LCURLY signals "{"
const LCURLY uint = 3

// RCURLY signals "}"
const RCURLY uint = 4

// LBRACE signals "("
const LBRACE uint = 5

// RBRACE signals ")"
const RBRACE uint = 6

// COMMA signals ","
const COMMA uint = 7

// SEMICOLON signals ";"
const SEMICOLON uint = 8

// EQUALS signals "="
const EQUALS uint = 9

// NUMBER signals an integer number
const NUMBER uint = 10

// STRING signals a quoted string literal
const STRING uint = 11

// IDENTIFIER signals an identifier.  Keywords are not distinguished here;
// they are classified by spelling inside the parser.
const IDENTIFIER uint = 12

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit(' '),
	lex.Unit('\t'),
	lex.Unit('\r'),
	lex.Unit('\n')))

// Rule for describing numbers
var number lex.Scanner[rune] = lex.Many(lex.Within('0', '9'))

var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner[rune] = lex.And(identifierStart, identifierRest)

// Line comments run from '#' until a newline or EOF.
var lineComment lex.Scanner[rune] = lex.And(lex.Unit('#'), lex.Until('\n'))

// Block comments run from "/*" until "*/".  An unclosed block comment
// matches nothing, leaving the lexer stuck at its opening characters.
var blockComment lex.Scanner[rune] = func(items []rune) uint {
	if len(items) < 2 || items[0] != '/' || items[1] != '*' {
		return 0
	}
	//
	for i := 2; i+1 < len(items); i++ {
		if items[i] == '*' && items[i+1] == '/' {
			return uint(i + 2)
		}
	}
	// Unterminated
	return 0
}

// String literals run from '"' until the closing '"'.  An unclosed string
// matches nothing, leaving the lexer stuck at its opening quote.
var stringLit lex.Scanner[rune] = func(items []rune) uint {
	if len(items) == 0 || items[0] != '"' {
		return 0
	}
	//
	for i := 1; i < len(items); i++ {
		if items[i] == '"' {
			return uint(i + 1)
		}
	}
	// Unterminated
	return 0
}

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lineComment, COMMENT),
	lex.Rule(blockComment, COMMENT),
	lex.Rule(stringLit, STRING),
	lex.Rule(lex.Unit('{'), LCURLY),
	lex.Rule(lex.Unit('}'), RCURLY),
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Unit(';'), SEMICOLON),
	lex.Rule(lex.Unit('='), EQUALS),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(number, NUMBER),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Lex a given source file into a sequence of zero or more tokens, or fail
// with the first lexical error arising.
func Lex(srcfile *source.File) ([]lex.Token, *LexError) {
	var (
		lexer = lex.NewLexer(srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := int(lexer.Index()), int(lexer.Index()+lexer.Remaining())
		span := source.NewSpan(start, end)
		kind := LexUnexpectedCharacter
		msg := "unexpected character"
		// Distinguish input which stalled on an unclosed comment or string.
		contents := srcfile.Contents()
		if contents[start] == '"' {
			kind = LexUnterminatedComment
			msg = "unterminated string"
		} else if contents[start] == '/' && start+1 < len(contents) && contents[start+1] == '*' {
			kind = LexUnterminatedComment
			msg = "unterminated comment"
		}
		//
		return nil, &LexError{kind, srcfile.SyntaxError(span, msg)}
	}
	// Check all numeric literals fit in 64 bits.
	for _, t := range tokens {
		if t.Kind == NUMBER {
			text := string(srcfile.Contents()[t.Span.Start():t.Span.End()])
			//
			if _, err := strconv.ParseUint(text, 10, 64); err != nil {
				return nil, &LexError{
					LexIntegerOverflow,
					srcfile.SyntaxError(t.Span, "integer literal exceeds 64 bits"),
				}
			}
		}
	}
	// Remove any whitespace
	tokens = removeMatching(tokens, func(t lex.Token) bool { return t.Kind == WHITESPACE })
	// Remove any comments
	tokens = removeMatching(tokens, func(t lex.Token) bool { return t.Kind == COMMENT })
	// Done
	return tokens, nil
}

// removeMatching removes all tokens matching a given predicate, preserving
// the order of the rest.
func removeMatching(tokens []lex.Token, predicate func(lex.Token) bool) []lex.Token {
	var kept []lex.Token
	//
	for _, t := range tokens {
		if !predicate(t) {
			kept = append(kept, t)
		}
	}
	//
	return kept
}
