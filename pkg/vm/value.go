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
package vm

import (
	"fmt"

	"github.com/consensys/go-zkas/pkg/crypto/pasta"
	"github.com/consensys/go-zkas/pkg/zkas/ast"
)

// MERKLE_DEPTH is the depth of Merkle authentication paths.
const MERKLE_DEPTH = 32

// Value is a single typed slot of the variable heap.
type Value interface {
	fmt.Stringer
	// Type returns the tag this value carries on the heap.
	Type() ast.Type
}

// Point is a heap value holding a curve point.  Its tag distinguishes
// variable points from the various fixed-base flavours.
type Point struct {
	Inner pasta.Point
	Kind  ast.Type
}

// NewPoint wraps a curve point under a given (point-typed) tag.
func NewPoint(kind ast.Type, inner pasta.Point) Point {
	if !kind.IsPoint() {
		panic("non-point type for curve point")
	}
	//
	return Point{inner, kind}
}

// Type implementation for the Value interface.
func (p Point) Type() ast.Type { return p.Kind }

func (p Point) String() string { return p.Inner.String() }

// Base is a heap value holding a base field element.
type Base struct {
	Inner pasta.Fp
}

// Type implementation for the Value interface.
func (p Base) Type() ast.Type { return ast.TYPE_BASE }

func (p Base) String() string { return p.Inner.String() }

// Scalar is a heap value holding a scalar field element.
type Scalar struct {
	Inner pasta.Fq
}

// Type implementation for the Value interface.
func (p Scalar) Type() ast.Type { return ast.TYPE_SCALAR }

func (p Scalar) String() string { return p.Inner.String() }

// BaseArray is a heap value holding an ordered sequence of base field
// elements.
type BaseArray struct {
	Inner []pasta.Fp
}

// Type implementation for the Value interface.
func (p BaseArray) Type() ast.Type { return ast.TYPE_BASE_ARRAY }

func (p BaseArray) String() string { return fmt.Sprintf("[%d base elements]", len(p.Inner)) }

// ScalarArray is a heap value holding an ordered sequence of scalar field
// elements.
type ScalarArray struct {
	Inner []pasta.Fq
}

// Type implementation for the Value interface.
func (p ScalarArray) Type() ast.Type { return ast.TYPE_SCALAR_ARRAY }

func (p ScalarArray) String() string { return fmt.Sprintf("[%d scalar elements]", len(p.Inner)) }

// MerklePath is a heap value holding a depth-32 authentication path, leaf
// side first.
type MerklePath struct {
	Inner [MERKLE_DEPTH]pasta.Fp
}

// Type implementation for the Value interface.
func (p MerklePath) Type() ast.Type { return ast.TYPE_MERKLE_PATH }

func (p MerklePath) String() string { return fmt.Sprintf("[merkle path depth %d]", MERKLE_DEPTH) }

// Uint32 is a heap value holding an unsigned 32bit integer.
type Uint32 struct {
	Inner uint32
}

// Type implementation for the Value interface.
func (p Uint32) Type() ast.Type { return ast.TYPE_UINT32 }

func (p Uint32) String() string { return fmt.Sprintf("%d", p.Inner) }

// Uint64 is a heap value holding an unsigned 64bit integer.
type Uint64 struct {
	Inner uint64
}

// Type implementation for the Value interface.
func (p Uint64) Type() ast.Type { return ast.TYPE_UINT64 }

func (p Uint64) String() string { return fmt.Sprintf("%d", p.Inner) }
