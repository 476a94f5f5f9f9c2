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
package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	tagWord uint = iota
	tagNumber
	tagSpace
	tagEof
)

func testRules() []LexRule[rune] {
	var (
		word   = Many(Within('a', 'z'))
		number = Many(Within('0', '9'))
		space  = Many(Unit(' '))
	)
	//
	return []LexRule[rune]{
		Rule(word, tagWord),
		Rule(number, tagNumber),
		Rule(space, tagSpace),
		Rule(Eof[rune](), tagEof),
	}
}

func TestLexerCollect(t *testing.T) {
	lexer := NewLexer([]rune("abc 123 x"), testRules()...)
	tokens := lexer.Collect()
	//
	kinds := make([]uint, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	//
	assert.Equal(t, []uint{tagWord, tagSpace, tagNumber, tagSpace, tagWord, tagEof}, kinds)
	assert.Equal(t, uint(0), lexer.Remaining())
}

func TestLexerSpans(t *testing.T) {
	lexer := NewLexer([]rune("abc 123"), testRules()...)
	tokens := lexer.Collect()
	//
	assert.Equal(t, 0, tokens[0].Span.Start())
	assert.Equal(t, 3, tokens[0].Span.End())
	assert.Equal(t, 4, tokens[2].Span.Start())
	assert.Equal(t, 7, tokens[2].Span.End())
}

func TestLexerStuckOnUnknown(t *testing.T) {
	lexer := NewLexer([]rune("abc!def"), testRules()...)
	lexer.Collect()
	// Lexer stalls at the unknown character.
	assert.Equal(t, uint(3), lexer.Index())
	assert.Equal(t, uint(4), lexer.Remaining())
}

func TestScannerAnd(t *testing.T) {
	// Identifier-style rule: a letter, then letters and digits.
	scanner := And(
		Within('a', 'z'),
		Many(Or(Within('a', 'z'), Within('0', '9'))))
	//
	assert.Equal(t, uint(3), scanner([]rune("a12 x")))
	assert.Equal(t, uint(1), scanner([]rune("a")))
	assert.Equal(t, uint(0), scanner([]rune("9a")))
}

func TestScannerUntil(t *testing.T) {
	scanner := Until[rune]('\n')
	//
	assert.Equal(t, uint(3), scanner([]rune("abc\ndef")))
	assert.Equal(t, uint(3), scanner([]rune("abc")))
}
