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
	"math/big"
	"math/bits"

	"github.com/consensys/gnark-crypto/field/pool"
)

// limbs is the canonical (non-Montgomery) representation of a field element as
// four 64bit words in little-endian order.  Values are always fully reduced,
// hence two elements are equal exactly when their limbs are equal.
type limbs [4]uint64

// limbsCmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func limbsCmp(x, y limbs) int {
	for i := 3; i >= 0; i-- {
		if x[i] < y[i] {
			return -1
		} else if x[i] > y[i] {
			return 1
		}
	}
	//
	return 0
}

// limbsAdd computes x + y modulo m, assuming both operands are reduced.
func limbsAdd(x, y, m limbs) limbs {
	var (
		z     limbs
		carry uint64
	)
	//
	z[0], carry = bits.Add64(x[0], y[0], 0)
	z[1], carry = bits.Add64(x[1], y[1], carry)
	z[2], carry = bits.Add64(x[2], y[2], carry)
	z[3], carry = bits.Add64(x[3], y[3], carry)
	// Reduce on overflow, or when the sum exceeds the modulus.
	if carry != 0 || limbsCmp(z, m) >= 0 {
		z = limbsRawSub(z, m)
	}
	//
	return z
}

// limbsSub computes x - y modulo m, assuming both operands are reduced.
func limbsSub(x, y, m limbs) limbs {
	var (
		z      limbs
		borrow uint64
	)
	//
	z[0], borrow = bits.Sub64(x[0], y[0], 0)
	z[1], borrow = bits.Sub64(x[1], y[1], borrow)
	z[2], borrow = bits.Sub64(x[2], y[2], borrow)
	z[3], borrow = bits.Sub64(x[3], y[3], borrow)
	// Wrap around on underflow.
	if borrow != 0 {
		z = limbsRawAdd(z, m)
	}
	//
	return z
}

// limbsRawAdd computes x + y discarding any final carry.
func limbsRawAdd(x, y limbs) limbs {
	var (
		z     limbs
		carry uint64
	)
	//
	z[0], carry = bits.Add64(x[0], y[0], 0)
	z[1], carry = bits.Add64(x[1], y[1], carry)
	z[2], carry = bits.Add64(x[2], y[2], carry)
	z[3], _ = bits.Add64(x[3], y[3], carry)
	//
	return z
}

// limbsRawSub computes x - y discarding any final borrow.
func limbsRawSub(x, y limbs) limbs {
	var (
		z      limbs
		borrow uint64
	)
	//
	z[0], borrow = bits.Sub64(x[0], y[0], 0)
	z[1], borrow = bits.Sub64(x[1], y[1], borrow)
	z[2], borrow = bits.Sub64(x[2], y[2], borrow)
	z[3], _ = bits.Sub64(x[3], y[3], borrow)
	//
	return z
}

// limbsIsZero checks whether all limbs are zero.
func limbsIsZero(x limbs) bool {
	return x[0]|x[1]|x[2]|x[3] == 0
}

// limbsBit returns the ith bit of x, where bit 0 is the least significant.
func limbsBit(x limbs, i uint) bool {
	if i >= 256 {
		return false
	}
	//
	return (x[i/64]>>(i%64))&1 == 1
}

// limbsToBig writes x into a given big.Int.
func limbsToBig(x limbs, b *big.Int) *big.Int {
	var bytes [32]byte
	//
	for i := 0; i < 4; i++ {
		// Limb i occupies bytes 24-8i .. 31-8i (big endian).
		for j := 0; j < 8; j++ {
			bytes[31-(i*8)-j] = byte(x[i] >> (8 * j))
		}
	}
	//
	return b.SetBytes(bytes[:])
}

// limbsFromBig reduces a given (non-negative) big.Int modulo m and splits it
// into limbs.
func limbsFromBig(b *big.Int, m *big.Int) limbs {
	var (
		z     limbs
		bytes [32]byte
		r     = pool.BigInt.Get()
	)
	//
	r.Mod(b, m)
	r.FillBytes(bytes[:])
	//
	for i := 0; i < 4; i++ {
		for j := 0; j < 8; j++ {
			z[i] |= uint64(bytes[31-(i*8)-j]) << (8 * j)
		}
	}
	//
	pool.BigInt.Put(r)
	//
	return z
}

// limbsMul computes x * y modulo m, going through pooled big.Int scratch
// values for the double-width intermediate product.
func limbsMul(x, y limbs, m *big.Int) limbs {
	var (
		bx = pool.BigInt.Get()
		by = pool.BigInt.Get()
	)
	//
	limbsToBig(x, bx)
	limbsToBig(y, by)
	bx.Mul(bx, by)
	//
	z := limbsFromBig(bx, m)
	//
	pool.BigInt.Put(bx)
	pool.BigInt.Put(by)
	//
	return z
}

// limbsInverse computes x⁻¹ modulo m, or zero when x is zero.
func limbsInverse(x limbs, m *big.Int) limbs {
	if limbsIsZero(x) {
		return limbs{}
	}
	//
	bx := pool.BigInt.Get()
	//
	limbsToBig(x, bx)
	bx.ModInverse(bx, m)
	//
	z := limbsFromBig(bx, m)
	//
	pool.BigInt.Put(bx)
	//
	return z
}

// limbsSqrt computes a square root of x modulo m when one exists.
func limbsSqrt(x limbs, m *big.Int) (limbs, bool) {
	bx := pool.BigInt.Get()
	//
	limbsToBig(x, bx)
	//
	if bx.ModSqrt(bx, m) == nil {
		pool.BigInt.Put(bx)
		return limbs{}, false
	}
	//
	z := limbsFromBig(bx, m)
	//
	pool.BigInt.Put(bx)
	//
	return z, true
}
