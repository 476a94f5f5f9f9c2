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
)

func lexString(t *testing.T, input string) ([]uint, *LexError) {
	t.Helper()
	//
	srcfile := source.NewSourceFile("test.zk", []byte(input))
	tokens, err := Lex(srcfile)
	//
	if err != nil {
		return nil, err
	}
	//
	kinds := make([]uint, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	//
	return kinds, nil
}

func TestLexStatement(t *testing.T) {
	kinds, err := lexString(t, "c = base_add(a, 42);")
	//
	require.Nil(t, err)
	assert.Equal(t, []uint{
		IDENTIFIER, EQUALS, IDENTIFIER, LBRACE,
		IDENTIFIER, COMMA, NUMBER, RBRACE, SEMICOLON, END_OF,
	}, kinds)
}

func TestLexHeader(t *testing.T) {
	kinds, err := lexString(t, "k = 11;\nfield = \"pallas\";")
	//
	require.Nil(t, err)
	assert.Equal(t, []uint{
		IDENTIFIER, EQUALS, NUMBER, SEMICOLON,
		IDENTIFIER, EQUALS, STRING, SEMICOLON, END_OF,
	}, kinds)
}

func TestLexSkipsComments(t *testing.T) {
	kinds, err := lexString(t, "a # trailing comment\n/* block\ncomment */ b")
	//
	require.Nil(t, err)
	assert.Equal(t, []uint{IDENTIFIER, IDENTIFIER, END_OF}, kinds)
}

func TestLexKeywordsAreIdentifiers(t *testing.T) {
	// Keywords are classified by spelling in the parser, never by the lexer.
	kinds, err := lexString(t, "k field constant witness circuit")
	//
	require.Nil(t, err)
	assert.Equal(t, []uint{
		IDENTIFIER, IDENTIFIER, IDENTIFIER, IDENTIFIER, IDENTIFIER, END_OF,
	}, kinds)
}

func TestLexIntegerBoundary(t *testing.T) {
	// 2^64 - 1 is accepted.
	_, err := lexString(t, "18446744073709551615")
	require.Nil(t, err)
	// 2^64 overflows.
	_, err = lexString(t, "18446744073709551616")
	require.NotNil(t, err)
	assert.Equal(t, LexIntegerOverflow, err.Kind)
}

func TestLexUnexpectedCharacter(t *testing.T) {
	_, err := lexString(t, "a = b ? c")
	//
	require.NotNil(t, err)
	assert.Equal(t, LexUnexpectedCharacter, err.Kind)
	assert.Equal(t, 6, err.Span().Start())
}

func TestLexUnterminatedComment(t *testing.T) {
	_, err := lexString(t, "a /* never closed")
	//
	require.NotNil(t, err)
	assert.Equal(t, LexUnterminatedComment, err.Kind)
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := lexString(t, "field = \"pallas")
	//
	require.NotNil(t, err)
	assert.Equal(t, LexUnterminatedComment, err.Kind)
}

func TestLexRestartable(t *testing.T) {
	// Lexing the same input twice yields identical token kinds.
	first, err1 := lexString(t, "x = poseidon_hash(a, b);")
	second, err2 := lexString(t, "x = poseidon_hash(a, b);")
	//
	require.Nil(t, err1)
	require.Nil(t, err2)
	assert.Equal(t, first, second)
}
