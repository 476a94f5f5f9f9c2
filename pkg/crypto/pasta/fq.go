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

import (
	"hash/fnv"
	"math/big"

	"github.com/consensys/gnark-crypto/field/pool"
)

// qLimbs is the Pallas scalar field modulus (equally, the Vesta base field)
// q = 0x40000000000000000000000000000000224698fc0994a8dd8c46eb2100000001
// in little-endian limb order.
var qLimbs = limbs{
	0x8c46eb2100000001,
	0x224698fc0994a8dd,
	0x0000000000000000,
	0x4000000000000000,
}

// qModulus is the Pallas scalar field modulus as a big.Int.
var qModulus = limbsToBig(qLimbs, new(big.Int))

// Fq is an element of the Pallas scalar field, held in canonical reduced
// form.  The zero value represents 0 and is ready for use.
type Fq struct {
	inner limbs
}

// NewFq constructs a scalar field element from a given uint64.
func NewFq(val uint64) Fq {
	return Fq{limbs{val, 0, 0, 0}}
}

// Add x + y
func (x Fq) Add(y Fq) Fq {
	return Fq{limbsAdd(x.inner, y.inner, qLimbs)}
}

// Sub x - y
func (x Fq) Sub(y Fq) Fq {
	return Fq{limbsSub(x.inner, y.inner, qLimbs)}
}

// Mul x * y
func (x Fq) Mul(y Fq) Fq {
	return Fq{limbsMul(x.inner, y.inner, qModulus)}
}

// Neg -x
func (x Fq) Neg() Fq {
	return Fq{limbsSub(limbs{}, x.inner, qLimbs)}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Fq) Inverse() Fq {
	return Fq{limbsInverse(x.inner, qModulus)}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Fq) Cmp(y Fq) int {
	return limbsCmp(x.inner, y.inner)
}

// Equals checks whether two elements are the same.
func (x Fq) Equals(y Fq) bool {
	return x == y
}

// IsZero implementation for the field.Element interface.
func (x Fq) IsZero() bool {
	return limbsIsZero(x.inner)
}

// IsOne implementation for the field.Element interface.
func (x Fq) IsOne() bool {
	return x.inner == limbs{1, 0, 0, 0}
}

// Modulus returns the Pallas scalar field modulus q.
func (x Fq) Modulus() *big.Int {
	return new(big.Int).Set(qModulus)
}

// Bit returns the ith bit of the canonical representation of x.
func (x Fq) Bit(i uint) bool {
	return limbsBit(x.inner, i)
}

// SetUint64 implementation for the field.Element interface.
func (x Fq) SetUint64(val uint64) Fq {
	return NewFq(val)
}

// Uint64 returns the numerical value of x, assuming it fits.
func (x Fq) Uint64() uint64 {
	if x.inner[1]|x.inner[2]|x.inner[3] != 0 {
		panic("field element exceeds 64 bits")
	}
	//
	return x.inner[0]
}

// SetBytes constructs an element from big-endian bytes, reducing modulo q.
func (x Fq) SetBytes(bytes []byte) Fq {
	b := pool.BigInt.Get()
	//
	b.SetBytes(bytes)
	y := Fq{limbsFromBig(b, qModulus)}
	//
	pool.BigInt.Put(b)
	//
	return y
}

// Bytes returns the canonical big-endian encoding of x, always 32 bytes.
func (x Fq) Bytes() []byte {
	var bytes [32]byte
	//
	for i := 0; i < 4; i++ {
		for j := 0; j < 8; j++ {
			bytes[31-(i*8)-j] = byte(x.inner[i] >> (8 * j))
		}
	}
	//
	return bytes[:]
}

// Text returns the numerical value of x in the given base.
func (x Fq) Text(base int) string {
	return limbsToBig(x.inner, new(big.Int)).Text(base)
}

func (x Fq) String() string {
	return x.Text(10)
}

// Hash implementation for hashing containers keyed by field elements.
func (x Fq) Hash() uint64 {
	hash := fnv.New64a()
	hash.Write(x.Bytes())
	// Done
	return hash.Sum64()
}
