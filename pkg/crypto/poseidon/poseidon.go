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

// Package poseidon implements the Poseidon algebraic sponge with an x^5 sbox,
// parameterised over a prime field.  Only the fixed-length hashing mode is
// provided, since circuit opcodes always hash a statically-known number of
// inputs.
package poseidon

import (
	"github.com/consensys/go-zkas/pkg/util/field"
)

// Permute applies the Poseidon permutation to a state of width p.t in place.
func (p *Params[F]) Permute(state []F) {
	if uint(len(state)) != p.t {
		panic("state width mismatch")
	}
	//
	var (
		half  = p.rf / 2
		round = uint(0)
	)
	// First half of the full rounds.
	for i := uint(0); i < half; i++ {
		p.fullRound(state, round)
		round++
	}
	// Partial rounds.
	for i := uint(0); i < p.rp; i++ {
		p.partialRound(state, round)
		round++
	}
	// Second half of the full rounds.
	for i := uint(0); i < half; i++ {
		p.fullRound(state, round)
		round++
	}
}

// Hash computes the fixed-length Poseidon hash of the given inputs, using a
// state of width len(inputs)+1.  The capacity element carries the input
// length as a domain tag, hence hashes of different arities never collide.
func Hash[F field.Element[F]](params *Params[F], inputs ...F) F {
	if params.t != uint(len(inputs))+1 {
		panic("arity does not match parameter width")
	}
	//
	state := make([]F, params.t)
	// Domain tag.
	state[0] = field.Uint64[F](uint64(len(inputs)))
	// Absorb.
	copy(state[1:], inputs)
	//
	params.Permute(state)
	// Squeeze a single element.
	return state[1]
}

func (p *Params[F]) fullRound(state []F, round uint) {
	// Add round constants.
	for i := range state {
		state[i] = state[i].Add(p.roundConstants[round][i])
	}
	// Apply the sbox to every element.
	for i := range state {
		state[i] = sbox(state[i])
	}
	// Mix.
	p.applyMds(state)
}

func (p *Params[F]) partialRound(state []F, round uint) {
	// Add round constants.
	for i := range state {
		state[i] = state[i].Add(p.roundConstants[round][i])
	}
	// Apply the sbox to the first element only.
	state[0] = sbox(state[0])
	// Mix.
	p.applyMds(state)
}

// sbox computes x^5.
func sbox[F field.Element[F]](x F) F {
	x2 := x.Mul(x)
	x4 := x2.Mul(x2)
	//
	return x4.Mul(x)
}

func (p *Params[F]) applyMds(state []F) {
	fresh := make([]F, len(state))
	//
	for i := range fresh {
		acc := field.Zero[F]()
		//
		for j := range state {
			acc = acc.Add(p.mds[i][j].Mul(state[j]))
		}
		//
		fresh[i] = acc
	}
	//
	copy(state, fresh)
}
