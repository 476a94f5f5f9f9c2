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
	"fmt"
)

// DecodeErrorKind distinguishes the failure modes of the decoder.
type DecodeErrorKind uint8

const (
	// DecodeBadMagic indicates the artifact does not open with the magic
	// identifier.
	DecodeBadMagic DecodeErrorKind = iota
	// DecodeBadVersion indicates an unsupported binary version.
	DecodeBadVersion
	// DecodeBadRowExponent indicates a row count exponent outside the range
	// permitted by the field configuration.
	DecodeBadRowExponent
	// DecodeTruncated indicates the artifact ends mid-section.
	DecodeTruncated
	// DecodeMalformed indicates a non-canonical varint or inconsistent
	// section contents.
	DecodeMalformed
	// DecodeUnknownOpcode indicates a code point outside the opcode table.
	DecodeUnknownOpcode
	// DecodeUnknownType indicates a tag outside the type table.
	DecodeUnknownType
	// DecodeHeapIndexOutOfRange indicates a heap reference beyond the heap
	// size at its point of use.
	DecodeHeapIndexOutOfRange
)

// DecodeError is a malformed-bytecode error at a given byte offset.  The
// decoder aborts on the first malformed field.
type DecodeError struct {
	Kind   DecodeErrorKind
	Offset uint
	Msg    string
}

func (p *DecodeError) Error() string {
	return fmt.Sprintf("offset %d: %s", p.Offset, p.Msg)
}
