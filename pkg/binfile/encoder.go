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
)

// Encode serialises a program into the bytecode layout.  Encoding is
// deterministic: all sections are written in the order their contents were
// declared, never in map iteration order.
func Encode(program *Program) []byte {
	var data []byte
	// Magic and version.
	data = append(data, MAGIC[:]...)
	data = append(data, VERSION)
	// Row count exponent.
	data = binary.LittleEndian.AppendUint32(data, program.K)
	// Namespace.
	data = appendString(data, program.Namespace)
	// Constant section.
	data = appendVarint(data, uint64(len(program.Constants)))
	//
	for _, c := range program.Constants {
		data = append(data, byte(c.Type))
		data = appendString(data, c.Name)
	}
	// Literal section.
	data = appendVarint(data, uint64(len(program.Literals)))
	//
	for _, l := range program.Literals {
		data = append(data, byte(l.Kind))
		data = appendVarint(data, l.Value)
	}
	// Witness section.
	data = appendVarint(data, uint64(len(program.Witnesses)))
	//
	for _, w := range program.Witnesses {
		data = append(data, byte(w))
	}
	// Circuit section.
	data = appendVarint(data, uint64(len(program.Statements)))
	//
	for _, stmt := range program.Statements {
		data = append(data, byte(stmt.Opcode), byte(len(stmt.Args)))
		//
		for _, arg := range stmt.Args {
			data = append(data, byte(arg.Kind))
			data = appendVarint(data, arg.Index)
		}
	}
	// Optional debug section.
	if program.Debug != nil {
		data = appendDebug(data, program.Debug)
	}
	//
	return data
}

// appendDebug serialises the trailing debug section.
func appendDebug(data []byte, debug *DebugInfo) []byte {
	data = appendVarint(data, uint64(len(debug.Positions)))
	//
	for _, pos := range debug.Positions {
		data = appendVarint(data, uint64(pos.Line))
		data = appendVarint(data, uint64(pos.Column))
	}
	//
	data = appendVarint(data, uint64(len(debug.HeapNames)))
	//
	for _, name := range debug.HeapNames {
		data = appendString(data, name)
	}
	//
	data = appendVarint(data, uint64(len(debug.LiteralNames)))
	//
	for _, name := range debug.LiteralNames {
		data = appendString(data, name)
	}
	//
	return data
}

// appendString writes a varint length followed by UTF-8 bytes.
func appendString(data []byte, s string) []byte {
	data = appendVarint(data, uint64(len(s)))
	//
	return append(data, s...)
}
