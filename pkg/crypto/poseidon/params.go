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
package poseidon

import (
	"fmt"

	"github.com/consensys/go-zkas/pkg/util/field"
)

// FULL_ROUNDS is the number of full rounds for the x^5 sbox at the 128bit
// security level.
const FULL_ROUNDS uint = 8

// partialRounds maps the state width t to the number of partial rounds for
// the x^5 sbox over a ~255bit prime field at the 128bit security level.
var partialRounds = map[uint]uint{
	2:  56,
	3:  56,
	4:  56,
	5:  60,
	6:  60,
	7:  63,
	8:  63,
	9:  63,
	10: 68,
	11: 68,
	12: 68,
}

// Params fixes a Poseidon instance: the state width, round numbers, round
// constants and MDS matrix.  Parameters are immutable once constructed.
type Params[F field.Element[F]] struct {
	// State width (rate + capacity).
	t uint
	// Number of full rounds (split evenly around the partial rounds).
	rf uint
	// Number of partial rounds.
	rp uint
	// Round constants, one row of t values per round.
	roundConstants [][]F
	// MDS matrix (t x t).
	mds [][]F
}

// NewParams derives the parameters for a given state width, using the Grain
// generator for the round constants and a Cauchy construction for the MDS
// matrix.  The derivation is deterministic in t and the field.
func NewParams[F field.Element[F]](t uint) (*Params[F], error) {
	var (
		zero    F
		modulus = zero.Modulus()
	)
	//
	rp, ok := partialRounds[t]
	if !ok {
		return nil, fmt.Errorf("unsupported poseidon width %d", t)
	}
	//
	p := &Params[F]{t: t, rf: FULL_ROUNDS, rp: rp}
	// Derive round constants.
	gen := newGrain(modulus, t, p.rf, p.rp)
	//
	for round := uint(0); round < p.rf+p.rp; round++ {
		row := make([]F, t)
		//
		for i := range row {
			row[i] = field.BigInt[F](gen.sampleElement())
		}
		//
		p.roundConstants = append(p.roundConstants, row)
	}
	// Construct the Cauchy MDS matrix over the sequences x = 0..t-1 and
	// y = t..2t-1, i.e. M[i][j] = 1/(x_i + y_j).
	for i := uint(0); i < t; i++ {
		row := make([]F, t)
		//
		for j := uint(0); j < t; j++ {
			row[j] = field.Uint64[F](uint64(i + t + j)).Inverse()
		}
		//
		p.mds = append(p.mds, row)
	}
	//
	return p, nil
}

// Width returns the state width t of this instance.
func (p *Params[F]) Width() uint {
	return p.t
}

// Rounds returns the number of full and partial rounds of this instance.
func (p *Params[F]) Rounds() (uint, uint) {
	return p.rf, p.rp
}
