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

// pLimbs is the Pallas base field modulus
// p = 0x40000000000000000000000000000000224698fc094cf91b992d30ed00000001
// in little-endian limb order.
var pLimbs = limbs{
	0x992d30ed00000001,
	0x224698fc094cf91b,
	0x0000000000000000,
	0x4000000000000000,
}

// pModulus is the Pallas base field modulus as a big.Int.
var pModulus = limbsToBig(pLimbs, new(big.Int))

// Fp is an element of the Pallas base field, held in canonical reduced form.
// The zero value represents 0 and is ready for use.
type Fp struct {
	inner limbs
}

// NewFp constructs a base field element from a given uint64.
func NewFp(val uint64) Fp {
	return Fp{limbs{val, 0, 0, 0}}
}

// Add x + y
func (x Fp) Add(y Fp) Fp {
	return Fp{limbsAdd(x.inner, y.inner, pLimbs)}
}

// Sub x - y
func (x Fp) Sub(y Fp) Fp {
	return Fp{limbsSub(x.inner, y.inner, pLimbs)}
}

// Mul x * y
func (x Fp) Mul(y Fp) Fp {
	return Fp{limbsMul(x.inner, y.inner, pModulus)}
}

// Neg -x
func (x Fp) Neg() Fp {
	return Fp{limbsSub(limbs{}, x.inner, pLimbs)}
}

// Double 2x
func (x Fp) Double() Fp {
	return x.Add(x)
}

// Square x * x
func (x Fp) Square() Fp {
	return x.Mul(x)
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Fp) Inverse() Fp {
	return Fp{limbsInverse(x.inner, pModulus)}
}

// Sqrt computes a square root of x, where one exists.  Of the two roots, the
// one whose canonical representation has an even low bit is returned.
func (x Fp) Sqrt() (Fp, bool) {
	root, ok := limbsSqrt(x.inner, pModulus)
	//
	if !ok {
		return Fp{}, false
	}
	//
	y := Fp{root}
	// Normalise to the even root.
	if y.Bit(0) {
		y = y.Neg()
	}
	//
	return y, true
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Fp) Cmp(y Fp) int {
	return limbsCmp(x.inner, y.inner)
}

// Equals checks whether two elements are the same.
func (x Fp) Equals(y Fp) bool {
	return x == y
}

// IsZero implementation for the field.Element interface.
func (x Fp) IsZero() bool {
	return limbsIsZero(x.inner)
}

// IsOne implementation for the field.Element interface.
func (x Fp) IsOne() bool {
	return x.inner == limbs{1, 0, 0, 0}
}

// Modulus returns the Pallas base field modulus p.
func (x Fp) Modulus() *big.Int {
	return new(big.Int).Set(pModulus)
}

// Bit returns the ith bit of the canonical representation of x.
func (x Fp) Bit(i uint) bool {
	return limbsBit(x.inner, i)
}

// SetUint64 implementation for the field.Element interface.
func (x Fp) SetUint64(val uint64) Fp {
	return NewFp(val)
}

// Uint64 returns the numerical value of x, assuming it fits.
func (x Fp) Uint64() uint64 {
	if x.inner[1]|x.inner[2]|x.inner[3] != 0 {
		panic("field element exceeds 64 bits")
	}
	//
	return x.inner[0]
}

// SetBytes constructs an element from big-endian bytes, reducing modulo p.
func (x Fp) SetBytes(bytes []byte) Fp {
	b := pool.BigInt.Get()
	//
	b.SetBytes(bytes)
	y := Fp{limbsFromBig(b, pModulus)}
	//
	pool.BigInt.Put(b)
	//
	return y
}

// Bytes returns the canonical big-endian encoding of x, always 32 bytes.
func (x Fp) Bytes() []byte {
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
func (x Fp) Text(base int) string {
	return limbsToBig(x.inner, new(big.Int)).Text(base)
}

func (x Fp) String() string {
	return x.Text(10)
}

// Hash implementation for hashing containers keyed by field elements.
func (x Fp) Hash() uint64 {
	hash := fnv.New64a()
	hash.Write(x.Bytes())
	// Done
	return hash.Sum64()
}
