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
	"github.com/consensys/go-zkas/pkg/zkas/ast"
)

// Origin records how a symbol came into being.
type Origin uint8

const (
	// ORIGIN_CONSTANT marks symbols from the constant section.
	ORIGIN_CONSTANT Origin = iota
	// ORIGIN_WITNESS marks symbols from the witness section.
	ORIGIN_WITNESS
	// ORIGIN_ASSIGNED marks symbols bound by a circuit statement.
	ORIGIN_ASSIGNED
)

func (o Origin) String() string {
	switch o {
	case ORIGIN_CONSTANT:
		return "constant"
	case ORIGIN_WITNESS:
		return "witness"
	case ORIGIN_ASSIGNED:
		return "assigned"
	}
	//
	return "unknown"
}

// Symbol is a single named entry of the symbol table.  Its index is its
// position on the variable heap, fixed by declaration order.
type Symbol struct {
	Name   string
	Type   ast.Type
	Origin Origin
	Index  uint
}

// SymbolTable maps identifier names to their type, origin and heap index.
// Insertion order is preserved, and names are globally unique within a
// program.
type SymbolTable struct {
	symbols []Symbol
	// Fast lookup from name to position within symbols.
	index map[string]uint
}

// NewSymbolTable constructs an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{nil, make(map[string]uint)}
}

// Bind registers a new symbol, assigning it the next heap index.  This fails
// (returning false) when the name is already bound.
func (p *SymbolTable) Bind(name string, typ ast.Type, origin Origin) bool {
	if _, ok := p.index[name]; ok {
		return false
	}
	//
	p.index[name] = uint(len(p.symbols))
	p.symbols = append(p.symbols, Symbol{name, typ, origin, uint(len(p.symbols))})
	//
	return true
}

// Lookup resolves a name to its symbol.
func (p *SymbolTable) Lookup(name string) (*Symbol, bool) {
	if i, ok := p.index[name]; ok {
		return &p.symbols[i], true
	}
	//
	return nil, false
}

// Symbols returns all symbols in declaration order.
func (p *SymbolTable) Symbols() []Symbol {
	return p.symbols
}

// Len returns the number of bound symbols.
func (p *SymbolTable) Len() uint {
	return uint(len(p.symbols))
}
