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
package pasta

import "fmt"

// bCoeff is the constant term of the Pallas curve equation y² = x³ + 5.
var bCoeff = NewFp(5)

// Point is a point on the Pallas curve in affine coordinates, including the
// identity (point at infinity).  The zero value is the identity.
type Point struct {
	x, y Fp
	// Set when this point is finite (not the identity).  For the identity it
	// is clear, and x and y are zero.
	finite bool
}

// Identity returns the group identity (the point at infinity).
func Identity() Point {
	return Point{}
}

// NewPoint constructs a point from affine coordinates.  The coordinates are
// not checked against the curve equation; use IsOnCurve for that.
func NewPoint(x, y Fp) Point {
	return Point{x, y, true}
}

// Generator returns the canonical Pallas generator (-1, 2).
func Generator() Point {
	return Point{NewFp(1).Neg(), NewFp(2), true}
}

// X returns the affine x coordinate, which is zero for the identity.
func (p Point) X() Fp {
	return p.x
}

// Y returns the affine y coordinate, which is zero for the identity.
func (p Point) Y() Fp {
	return p.y
}

// IsIdentity checks whether this point is the group identity.
func (p Point) IsIdentity() bool {
	return !p.finite
}

// Equals checks whether two points are the same.
func (p Point) Equals(q Point) bool {
	return p == q
}

// IsOnCurve checks the affine coordinates against y² = x³ + 5.  The identity
// is on the curve by definition.
func (p Point) IsOnCurve() bool {
	if p.IsIdentity() {
		return true
	}
	//
	lhs := p.y.Square()
	rhs := p.x.Square().Mul(p.x).Add(bCoeff)
	//
	return lhs.Equals(rhs)
}

// Neg returns the group inverse -p.
func (p Point) Neg() Point {
	if p.IsIdentity() {
		return p
	}
	//
	return Point{p.x, p.y.Neg(), true}
}

// Add computes p + q under the affine group law.
func (p Point) Add(q Point) Point {
	switch {
	case p.IsIdentity():
		return q
	case q.IsIdentity():
		return p
	case p.x.Equals(q.x) && p.y.Equals(q.y.Neg()):
		// Inverse points (this also covers doubling a 2-torsion point,
		// except the curve has none).
		return Identity()
	case p.x.Equals(q.x):
		return p.Double()
	}
	// Chord: lambda = (y2 - y1) / (x2 - x1)
	lambda := q.y.Sub(p.y).Mul(q.x.Sub(p.x).Inverse())
	//
	x3 := lambda.Square().Sub(p.x).Sub(q.x)
	y3 := lambda.Mul(p.x.Sub(x3)).Sub(p.y)
	//
	return Point{x3, y3, true}
}

// Double computes 2p under the affine group law.
func (p Point) Double() Point {
	if p.IsIdentity() || p.y.IsZero() {
		return Identity()
	}
	// Tangent: lambda = 3x² / 2y
	lambda := p.x.Square().Mul(NewFp(3)).Mul(p.y.Double().Inverse())
	//
	x3 := lambda.Square().Sub(p.x.Double())
	y3 := lambda.Mul(p.x.Sub(x3)).Sub(p.y)
	//
	return Point{x3, y3, true}
}

// ScalarMul computes [k]p by double-and-add over the 255 scalar bits.
func (p Point) ScalarMul(k Fq) Point {
	acc := Identity()
	//
	for i := 254; i >= 0; i-- {
		acc = acc.Double()
		//
		if k.Bit(uint(i)) {
			acc = acc.Add(p)
		}
	}
	//
	return acc
}

// MulUint64 computes [k]p for a short (64bit) scalar.
func (p Point) MulUint64(k uint64) Point {
	return p.ScalarMul(NewFq(k))
}

// MulBase computes [k]p where the scalar is given as a base field element,
// embedded into the scalar field via its canonical byte representation.
func (p Point) MulBase(k Fp) Point {
	var scalar Fq
	//
	return p.ScalarMul(scalar.SetBytes(k.Bytes()))
}

func (p Point) String() string {
	if p.IsIdentity() {
		return "(inf)"
	}
	//
	return fmt.Sprintf("(0x%s, 0x%s)", p.x.Text(16), p.y.Text(16))
}
