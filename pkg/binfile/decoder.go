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
package binfile

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/consensys/go-zkas/pkg/util/field"
	"github.com/consensys/go-zkas/pkg/zkas/ast"
	"github.com/consensys/go-zkas/pkg/zkas/opcode"
)

// Decode reverses Encode, validating every field along the way: the magic
// identifier, binary version, row count exponent (against the given field
// configuration), all type and opcode tags, and every heap reference against
// the heap size at its point of use.
func Decode(data []byte, config *field.Config) (*Program, *DecodeError) {
	decoder := &decoder{data, 0}
	//
	return decoder.decode(config)
}

// decoder holds the cursor state for a single decoding run.
type decoder struct {
	data   []byte
	offset uint
}

func (p *decoder) decode(config *field.Config) (*Program, *DecodeError) {
	var (
		program Program
		err     *DecodeError
	)
	// Magic and version.
	if err = p.decodeHeader(); err != nil {
		return nil, err
	}
	// Row count exponent.
	k, err := p.u32()
	//
	if err != nil {
		return nil, err
	} else if k == 0 || uint(k) > config.MaxK() {
		return nil, p.fail(DecodeBadRowExponent,
			fmt.Sprintf("row count exponent %d outside [1, %d]", k, config.MaxK()))
	}
	//
	program.K = k
	// Namespace.
	if program.Namespace, err = p.string(); err != nil {
		return nil, err
	}
	// Sections, in fixed order.
	if err = p.decodeConstants(&program); err != nil {
		return nil, err
	} else if err = p.decodeLiterals(&program); err != nil {
		return nil, err
	} else if err = p.decodeWitnesses(&program); err != nil {
		return nil, err
	} else if err = p.decodeCircuit(&program); err != nil {
		return nil, err
	}
	// Optional debug section occupies the remainder.
	if p.offset < uint(len(p.data)) {
		if err = p.decodeDebug(&program); err != nil {
			return nil, err
		}
	}
	//
	if p.offset != uint(len(p.data)) {
		return nil, p.fail(DecodeMalformed, "trailing bytes after program")
	}
	//
	return &program, nil
}

func (p *decoder) decodeHeader() *DecodeError {
	if uint(len(p.data)) < 5 {
		return p.fail(DecodeTruncated, "truncated header")
	}
	//
	if [4]byte(p.data[:4]) != MAGIC {
		return p.fail(DecodeBadMagic, "bad magic identifier")
	}
	//
	if p.data[4] != VERSION {
		p.offset = 4
		return p.fail(DecodeBadVersion,
			fmt.Sprintf("unsupported binary version %d", p.data[4]))
	}
	//
	p.offset = 5
	//
	return nil
}

func (p *decoder) decodeConstants(program *Program) *DecodeError {
	n, err := p.varint()
	//
	if err != nil {
		return err
	}
	//
	for i := uint64(0); i < n; i++ {
		tag, err := p.u8()
		//
		if err != nil {
			return err
		} else if !ast.ValidType(tag) {
			return p.fail(DecodeUnknownType, fmt.Sprintf("unknown type tag 0x%02x", tag))
		}
		//
		name, err := p.string()
		//
		if err != nil {
			return err
		}
		//
		program.Constants = append(program.Constants, Constant{ast.Type(tag), name})
	}
	//
	return nil
}

func (p *decoder) decodeLiterals(program *Program) *DecodeError {
	n, err := p.varint()
	//
	if err != nil {
		return err
	}
	//
	for i := uint64(0); i < n; i++ {
		kind, err := p.u8()
		//
		if err != nil {
			return err
		} else if ast.LiteralKind(kind) != ast.LITERAL_UINT64 {
			return p.fail(DecodeUnknownType, fmt.Sprintf("unknown literal kind 0x%02x", kind))
		}
		//
		value, err := p.varint()
		//
		if err != nil {
			return err
		}
		//
		program.Literals = append(program.Literals, Literal{ast.LiteralKind(kind), value})
	}
	//
	return nil
}

func (p *decoder) decodeWitnesses(program *Program) *DecodeError {
	n, err := p.varint()
	//
	if err != nil {
		return err
	}
	//
	for i := uint64(0); i < n; i++ {
		tag, err := p.u8()
		//
		if err != nil {
			return err
		} else if !ast.ValidType(tag) {
			return p.fail(DecodeUnknownType, fmt.Sprintf("unknown type tag 0x%02x", tag))
		}
		//
		program.Witnesses = append(program.Witnesses, ast.Type(tag))
	}
	//
	return nil
}

func (p *decoder) decodeCircuit(program *Program) *DecodeError {
	n, err := p.varint()
	//
	if err != nil {
		return err
	}
	// Variable heap size at the current statement, which grows as producing
	// statements are decoded.
	heap := uint64(len(program.Constants) + len(program.Witnesses))
	//
	for i := uint64(0); i < n; i++ {
		var stmt Statement
		//
		code, err := p.u8()
		//
		if err != nil {
			return err
		}
		//
		spec, ok := opcode.LookupCode(code)
		//
		if !ok {
			return p.fail(DecodeUnknownOpcode, fmt.Sprintf("unknown opcode 0x%02x", code))
		}
		//
		stmt.Opcode = spec.Code
		//
		arity, err := p.u8()
		//
		if err != nil {
			return err
		}
		//
		for j := uint8(0); j < arity; j++ {
			arg, err := p.decodeOperand(heap, uint64(len(program.Literals)))
			//
			if err != nil {
				return err
			}
			//
			stmt.Args = append(stmt.Args, arg)
		}
		//
		if spec.HasOutput() {
			heap++
		}
		//
		program.Statements = append(program.Statements, stmt)
	}
	//
	return nil
}

func (p *decoder) decodeOperand(heap uint64, literals uint64) (Operand, *DecodeError) {
	kind, err := p.u8()
	//
	if err != nil {
		return Operand{}, err
	}
	//
	index, err := p.varint()
	//
	if err != nil {
		return Operand{}, err
	}
	//
	switch ast.HeapKind(kind) {
	case ast.HEAP_VARIABLE:
		if index >= heap {
			return Operand{}, p.fail(DecodeHeapIndexOutOfRange,
				fmt.Sprintf("variable heap index %d exceeds heap size %d", index, heap))
		}
	case ast.HEAP_LITERAL:
		if index >= literals {
			return Operand{}, p.fail(DecodeHeapIndexOutOfRange,
				fmt.Sprintf("literal heap index %d exceeds heap size %d", index, literals))
		}
	default:
		return Operand{}, p.fail(DecodeMalformed, fmt.Sprintf("unknown heap kind 0x%02x", kind))
	}
	//
	return Operand{ast.HeapKind(kind), index}, nil
}

func (p *decoder) decodeDebug(program *Program) *DecodeError {
	var debug DebugInfo
	//
	n, err := p.varint()
	//
	if err != nil {
		return err
	} else if n != uint64(len(program.Statements)) {
		return p.fail(DecodeMalformed, "debug section statement count mismatch")
	}
	//
	for i := uint64(0); i < n; i++ {
		line, err := p.varint()
		//
		if err != nil {
			return err
		}
		//
		col, err := p.varint()
		//
		if err != nil {
			return err
		}
		//
		debug.Positions = append(debug.Positions, Position{uint(line), uint(col)})
	}
	// Heap names.
	total, err := p.varint()
	//
	if err != nil {
		return err
	} else if total != uint64(program.HeapSize()) {
		return p.fail(DecodeMalformed, "debug section heap size mismatch")
	}
	//
	for i := uint64(0); i < total; i++ {
		name, err := p.string()
		//
		if err != nil {
			return err
		}
		//
		debug.HeapNames = append(debug.HeapNames, name)
	}
	// Literal names.
	count, err := p.varint()
	//
	if err != nil {
		return err
	} else if count != uint64(len(program.Literals)) {
		return p.fail(DecodeMalformed, "debug section literal count mismatch")
	}
	//
	for i := uint64(0); i < count; i++ {
		name, err := p.string()
		//
		if err != nil {
			return err
		}
		//
		debug.LiteralNames = append(debug.LiteralNames, name)
	}
	//
	program.Debug = &debug
	//
	return nil
}

// u8 reads a single byte.
func (p *decoder) u8() (uint8, *DecodeError) {
	if p.offset >= uint(len(p.data)) {
		return 0, p.fail(DecodeTruncated, "unexpected end of file")
	}
	//
	b := p.data[p.offset]
	p.offset++
	//
	return b, nil
}

// u32 reads a little-endian 32bit integer.
func (p *decoder) u32() (uint32, *DecodeError) {
	if p.offset+4 > uint(len(p.data)) {
		return 0, p.fail(DecodeTruncated, "unexpected end of file")
	}
	//
	v := binary.LittleEndian.Uint32(p.data[p.offset:])
	p.offset += 4
	//
	return v, nil
}

// varint reads a canonical varint.
func (p *decoder) varint() (uint64, *DecodeError) {
	value, n := readVarint(p.data[p.offset:])
	//
	if n == 0 {
		return 0, p.fail(DecodeMalformed, "malformed varint")
	}
	//
	p.offset += n
	//
	return value, nil
}

// string reads a varint length followed by UTF-8 bytes.
func (p *decoder) string() (string, *DecodeError) {
	length, err := p.varint()
	//
	if err != nil {
		return "", err
	}
	//
	if p.offset+uint(length) > uint(len(p.data)) {
		return "", p.fail(DecodeTruncated, "truncated string")
	}
	//
	bytes := p.data[p.offset : p.offset+uint(length)]
	//
	if !utf8.Valid(bytes) {
		return "", p.fail(DecodeMalformed, "string is not valid UTF-8")
	}
	//
	p.offset += uint(length)
	//
	return string(bytes), nil
}

// fail constructs a decode error at the current offset.
func (p *decoder) fail(kind DecodeErrorKind, msg string) *DecodeError {
	return &DecodeError{kind, p.offset, msg}
}
