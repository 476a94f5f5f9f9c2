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
	"golang.org/x/crypto/blake2b"
)

// GroupHash maps a domain-separated message onto a curve point of unknown
// discrete logarithm, by hashing to a candidate x coordinate and incrementing
// until the curve equation admits a root.  The derivation is deterministic,
// hence suitable for fixed bases baked in at start-up.
func GroupHash(domain string, msg string) Point {
	var (
		one = NewFp(1)
		x   Fp
	)
	// Derive the starting candidate.
	digest := blake2b.Sum512([]byte(domain + ":" + msg))
	x = x.SetBytes(digest[:32])
	// Increment until x³ + 5 is a quadratic residue.
	for {
		rhs := x.Square().Mul(x).Add(bCoeff)
		//
		if y, ok := rhs.Sqrt(); ok {
			return Point{x, y, true}
		}
		//
		x = x.Add(one)
	}
}

// Fixed bases used by the circuit builtins.  Each is derived once at start-up
// and thereafter read-only.
var (
	// NullifierK is the fixed base used for nullifier derivation.
	NullifierK = GroupHash("z.cash:Orchard-Nullifier", "K")
	// ValueCommitValue is the value component base of a value commitment.
	ValueCommitValue = GroupHash("z.cash:Orchard-cv", "v")
	// ValueCommitRandom is the blinding component base of a value commitment.
	ValueCommitRandom = GroupHash("z.cash:Orchard-cv", "r")
)
