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
package gadget

import (
	"fmt"

	"github.com/consensys/go-zkas/pkg/crypto/pasta"
	"github.com/consensys/go-zkas/pkg/crypto/poseidon"
	"github.com/consensys/go-zkas/pkg/schema"
	"github.com/consensys/go-zkas/pkg/vm"
)

// poseidonHash hashes a variable number of base field elements with a
// Poseidon instance of matching width.
func (p *Set) poseidonHash(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	inputs := make([]pasta.Fp, len(args))
	//
	for i, arg := range args {
		fp, err := asBase(arg)
		//
		if err != nil {
			return nil, err
		}
		//
		inputs[i] = fp
	}
	//
	params, ok := p.params[uint(len(inputs))+1]
	//
	if !ok {
		return nil, fmt.Errorf("unsupported poseidon arity %d", len(inputs))
	}
	//
	digest := poseidon.Hash(params, inputs...)
	//
	cs.AssignRegion("poseidon_hash", schema.GATE_POSEIDON,
		append(inputs, digest)...)
	//
	return vm.Base{Inner: digest}, nil
}

// merkleRoot folds a leaf up a depth-32 authentication path, ordering each
// pair by the corresponding bit of the position, and hashing with the
// width-3 Poseidon instance.
func (p *Set) merkleRoot(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	position, err := asUint32(args[0])
	//
	if err != nil {
		return nil, err
	}
	//
	path, err := asMerklePath(args[1])
	//
	if err != nil {
		return nil, err
	}
	//
	leaf, err := asBase(args[2])
	//
	if err != nil {
		return nil, err
	}
	//
	params := p.params[3]
	// Trace records the leaf and every intermediate node up to the root.
	trace := make([]pasta.Fp, 0, vm.MERKLE_DEPTH+1)
	trace = append(trace, leaf)
	//
	current := leaf
	//
	for i := 0; i < vm.MERKLE_DEPTH; i++ {
		var left, right pasta.Fp
		//
		sibling := path[i]
		// Bit i of the position selects which side the current node is on.
		if (position>>i)&1 == 1 {
			left, right = sibling, current
		} else {
			left, right = current, sibling
		}
		//
		current = poseidon.Hash(params, left, right)
		trace = append(trace, current)
	}
	//
	cs.AssignRegion("merkle_root", schema.GATE_MERKLE, trace...)
	//
	return vm.Base{Inner: current}, nil
}
