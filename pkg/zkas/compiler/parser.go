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
	"math"
	"strconv"

	"github.com/consensys/go-zkas/pkg/util/source"
	"github.com/consensys/go-zkas/pkg/util/source/lex"
	"github.com/consensys/go-zkas/pkg/zkas/ast"
)

// Parse accepts a given source file representing a circuit description, and
// parses it into a program tree.  On any failure the first error is returned
// (a LexError or ParseError) and parsing aborts (there is no recovery).
func Parse(srcfile *source.File) (*ast.Program, error) {
	parser := NewParser(srcfile)
	// Parse program
	return parser.Parse()
}

// Parser is a recursive-descent parser for the circuit language.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Source mapping
	srcmap *source.Map[any]
	// Position within the tokens
	index int
}

// NewParser constructs a new parser for a given source file.
func NewParser(srcfile *source.File) *Parser {
	// Construct (initially empty) source mapping
	srcmap := source.NewSourceMap[any](*srcfile)
	//
	return &Parser{srcfile, nil, srcmap, 0}
}

// Parse the given source file into a program, or fail with the first error.
func (p *Parser) Parse() (*ast.Program, error) {
	var (
		program = &ast.Program{}
		lexErr  *LexError
		err     *ParseError
	)
	// Convert source file into tokens
	if p.tokens, lexErr = Lex(p.srcfile); lexErr != nil {
		return nil, lexErr
	}
	// Header fixes k and the field.
	if err = p.parseHeader(program); err != nil {
		return nil, err
	}
	// Constant section.
	if err = p.parseConstants(program); err != nil {
		return nil, err
	}
	// Witness section.
	if err = p.parseWitnesses(program); err != nil {
		return nil, err
	}
	// Circuit section.
	if err = p.parseCircuit(program); err != nil {
		return nil, err
	}
	// Nothing may follow the circuit section.
	if p.lookahead().Kind != END_OF {
		return nil, p.syntaxError(p.lookahead(), ParseUnexpectedToken, "unexpected token after circuit section")
	}
	//
	program.SourceMap = p.srcmap
	//
	return program, nil
}

// header := "k" "=" Uint ";" "field" "=" StringLit ";"
func (p *Parser) parseHeader(program *ast.Program) *ParseError {
	var (
		err *ParseError
		tok lex.Token
	)
	//
	if err = p.parseKeyword("k", ParseUnexpectedToken); err != nil {
		return err
	} else if _, err = p.expect(EQUALS); err != nil {
		return err
	} else if tok, err = p.expect(NUMBER); err != nil {
		return err
	}
	// NOTE: 64bit overflow was already rejected by the lexer.
	k, _ := strconv.ParseUint(p.string(tok), 10, 64)
	//
	if k > math.MaxUint32 {
		return p.syntaxError(tok, ParseUnexpectedToken, "row count exponent too large")
	}
	//
	program.K = uint32(k)
	//
	if _, err = p.expect(SEMICOLON); err != nil {
		return err
	} else if err = p.parseKeyword("field", ParseUnexpectedToken); err != nil {
		return err
	} else if _, err = p.expect(EQUALS); err != nil {
		return err
	} else if tok, err = p.expect(STRING); err != nil {
		return err
	}
	//
	program.Field = p.stringContents(tok)
	//
	_, err = p.expect(SEMICOLON)
	//
	return err
}

// constants := "constant" StringLit "{" (TypeTag Ident ",")* "}"
func (p *Parser) parseConstants(program *ast.Program) *ParseError {
	err := p.parseSectionHeader(program, "constant")
	//
	if err != nil {
		return err
	}
	//
	for p.lookahead().Kind != RCURLY {
		typ, name, span, err := p.parseTypedDeclaration()
		//
		if err != nil {
			return err
		}
		//
		decl := &ast.ConstantDecl{Type: typ, Name: name}
		program.Constants = append(program.Constants, decl)
		p.srcmap.Put(decl, span)
	}
	//
	_, err = p.expect(RCURLY)
	//
	return err
}

// witness := "witness" StringLit "{" (TypeTag Ident ",")* "}"
func (p *Parser) parseWitnesses(program *ast.Program) *ParseError {
	err := p.parseSectionHeader(program, "witness")
	//
	if err != nil {
		return err
	}
	//
	for p.lookahead().Kind != RCURLY {
		typ, name, span, err := p.parseTypedDeclaration()
		//
		if err != nil {
			return err
		}
		//
		decl := &ast.WitnessDecl{Type: typ, Name: name}
		program.Witnesses = append(program.Witnesses, decl)
		p.srcmap.Put(decl, span)
	}
	//
	_, err = p.expect(RCURLY)
	//
	return err
}

// circuit := "circuit" StringLit "{" statement* "}"
func (p *Parser) parseCircuit(program *ast.Program) *ParseError {
	err := p.parseSectionHeader(program, "circuit")
	//
	if err != nil {
		return err
	}
	//
	for p.lookahead().Kind != RCURLY {
		stmt, err := p.parseStatement()
		//
		if err != nil {
			return err
		}
		//
		program.Statements = append(program.Statements, stmt)
	}
	//
	_, err = p.expect(RCURLY)
	//
	return err
}

// parseSectionHeader consumes a section keyword, its namespace string and the
// opening brace, checking the namespace against any section seen before.
func (p *Parser) parseSectionHeader(program *ast.Program, section string) *ParseError {
	var (
		err *ParseError
		tok lex.Token
	)
	//
	if err = p.parseKeyword(section, ParseMissingSection); err != nil {
		return err
	} else if tok, err = p.expect(STRING); err != nil {
		return err
	}
	//
	namespace := p.stringContents(tok)
	// All three section namespaces must be byte-identical.
	if program.Namespace == "" {
		program.Namespace = namespace
	} else if program.Namespace != namespace {
		return p.syntaxError(tok, ParseNamespaceMismatch,
			fmt.Sprintf("namespace \"%s\" does not match \"%s\"", namespace, program.Namespace))
	}
	//
	_, err = p.expect(LCURLY)
	//
	return err
}

// parseTypedDeclaration consumes "TypeTag Ident ," returning the type, name
// and the span of the name token.
func (p *Parser) parseTypedDeclaration() (ast.Type, string, source.Span, *ParseError) {
	var (
		none source.Span
		tok  lex.Token
		err  *ParseError
	)
	//
	if tok, err = p.expect(IDENTIFIER); err != nil {
		return ast.TYPE_NONE, "", none, err
	}
	//
	typ, ok := ast.ParseType(p.string(tok))
	//
	if !ok {
		return ast.TYPE_NONE, "", none, p.syntaxError(tok, ParseUnexpectedToken,
			fmt.Sprintf("unknown type \"%s\"", p.string(tok)))
	}
	//
	if tok, err = p.expect(IDENTIFIER); err != nil {
		return ast.TYPE_NONE, "", none, err
	}
	//
	name, span := p.string(tok), tok.Span
	//
	if _, err = p.expect(COMMA); err != nil {
		return ast.TYPE_NONE, "", none, err
	}
	//
	return typ, name, span, nil
}

// statement := (Ident "=")? Ident "(" arglist? ")" ";"
func (p *Parser) parseStatement() (*ast.Statement, *ParseError) {
	var (
		stmt ast.Statement
		err  *ParseError
		tok  lex.Token
	)
	//
	if tok, err = p.expect(IDENTIFIER); err != nil {
		return nil, err
	}
	// Disambiguate assignment from bare call on the following token.
	if p.match(EQUALS) {
		stmt.Target = p.string(tok)
		//
		if tok, err = p.expect(IDENTIFIER); err != nil {
			return nil, err
		}
	}
	//
	stmt.Opcode = p.string(tok)
	// Statements are mapped to their opcode token, so that later diagnostics
	// (e.g. arity errors) point at the operation itself.
	p.srcmap.Put(&stmt, tok.Span)
	//
	if _, err = p.expect(LBRACE); err != nil {
		return nil, err
	}
	//
	if stmt.Args, err = p.parseArgList(); err != nil {
		return nil, err
	}
	//
	if _, err = p.expect(RBRACE); err != nil {
		return nil, err
	}
	//
	if _, err = p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	//
	return &stmt, nil
}

// arglist := arg ("," arg)*
func (p *Parser) parseArgList() ([]*ast.Arg, *ParseError) {
	var args []*ast.Arg
	// Empty argument list?
	if p.lookahead().Kind == RBRACE {
		return nil, nil
	}
	//
	for {
		arg, err := p.parseArg()
		//
		if err != nil {
			return nil, err
		}
		//
		args = append(args, arg)
		//
		if !p.match(COMMA) {
			return args, nil
		}
	}
}

// arg := Ident | Uint
func (p *Parser) parseArg() (*ast.Arg, *ParseError) {
	var (
		arg       ast.Arg
		lookahead = p.lookahead()
	)
	//
	switch lookahead.Kind {
	case IDENTIFIER:
		p.match(IDENTIFIER)
		arg.Name = p.string(lookahead)
	case NUMBER:
		p.match(NUMBER)
		// NOTE: overflow was already rejected by the lexer.
		val, _ := strconv.ParseUint(p.string(lookahead), 10, 64)
		arg.Literal = val
		arg.IsLiteral = true
	default:
		return nil, p.syntaxError(lookahead, ParseUnexpectedToken, "expected argument")
	}
	//
	p.srcmap.Put(&arg, lookahead.Span)
	//
	return &arg, nil
}

// parseKeyword consumes an identifier token with a required spelling.
func (p *Parser) parseKeyword(keyword string, kind ParseErrorKind) *ParseError {
	tok, err := p.expect(IDENTIFIER)
	//
	if err != nil {
		err.Kind = kind
		return err
	} else if p.string(tok) != keyword {
		return p.syntaxError(tok, kind, fmt.Sprintf("expected \"%s\"", keyword))
	}
	//
	return nil
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

// Get the contents of a string literal token, with quotes stripped.
func (p *Parser) stringContents(token lex.Token) string {
	str := p.string(token)
	return str[1 : len(str)-1]
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	if p.index >= len(p.tokens) {
		// Empty input: synthesise EOF at the end of the file.
		n := len(p.srcfile.Contents())
		return lex.Token{Kind: END_OF, Span: source.NewSpan(n, n)}
	}
	//
	return p.tokens[p.index]
}

// Expect returns an error if the next token is not what was expected.
func (p *Parser) expect(kind uint) (lex.Token, *ParseError) {
	lookahead := p.lookahead()
	//
	if lookahead.Kind != kind {
		return lookahead, p.syntaxError(lookahead, ParseUnexpectedToken,
			fmt.Sprintf("expected %s, found %s", tokenName(kind), tokenName(lookahead.Kind)))
	}
	//
	p.index++
	//
	return lookahead, nil
}

// Match attempts to match the given token.
func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser) syntaxError(token lex.Token, kind ParseErrorKind, msg string) *ParseError {
	return &ParseError{kind, p.srcfile.SyntaxError(token.Span, msg)}
}

// tokenName renders a token kind for error messages.
func tokenName(kind uint) string {
	switch kind {
	case END_OF:
		return "end of file"
	case LCURLY:
		return "\"{\""
	case RCURLY:
		return "\"}\""
	case LBRACE:
		return "\"(\""
	case RBRACE:
		return "\")\""
	case COMMA:
		return "\",\""
	case SEMICOLON:
		return "\";\""
	case EQUALS:
		return "\"=\""
	case NUMBER:
		return "number"
	case STRING:
		return "string"
	case IDENTIFIER:
		return "identifier"
	}
	//
	return "unknown token"
}
