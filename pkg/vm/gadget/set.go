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

// Package gadget binds each opcode to its pre-wired constraint-building
// sub-circuit over the Pallas curve.  Gadgets are pure functions of their
// inputs into the constraint system: they read no state beyond their
// arguments and write nothing but appends to the accumulator handed in.
package gadget

import (
	"fmt"

	"github.com/consensys/go-zkas/pkg/crypto/pasta"
	"github.com/consensys/go-zkas/pkg/crypto/poseidon"
	"github.com/consensys/go-zkas/pkg/schema"
	"github.com/consensys/go-zkas/pkg/vm"
	"github.com/consensys/go-zkas/pkg/zkas/opcode"
)

// Gadget builds the constraints for one opcode invocation, returning the
// produced heap value (or nil for void opcodes).
type Gadget func(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error)

// Set is the full Pallas gadget set.  It is immutable after construction and
// safe to share between concurrent runs.
type Set struct {
	// Gadget bound to each opcode.
	gadgets map[opcode.Code]Gadget
	// Fixed bases bound to each builtin constant name.
	builtins map[string]pasta.Point
	// Poseidon parameters, one instance per state width.
	params map[uint]*poseidon.Params[pasta.Fp]
}

// NewSet constructs the gadget set, deriving the Poseidon parameters for
// every supported width up front so the set is read-only thereafter.
func NewSet() *Set {
	set := &Set{
		gadgets:  make(map[opcode.Code]Gadget),
		builtins: make(map[string]pasta.Point),
		params:   make(map[uint]*poseidon.Params[pasta.Fp]),
	}
	//
	for t := uint(2); t <= opcode.MAX_POSEIDON_ARITY+1; t++ {
		params, err := poseidon.NewParams[pasta.Fp](t)
		//
		if err != nil {
			panic(err)
		}
		//
		set.params[t] = params
	}
	//
	set.builtins["NULLIFIER_K"] = pasta.NullifierK
	set.builtins["VALUE_COMMIT_VALUE"] = pasta.ValueCommitValue
	set.builtins["VALUE_COMMIT_RANDOM"] = pasta.ValueCommitRandom
	//
	set.gadgets[opcode.EC_ADD] = ecAdd
	set.gadgets[opcode.EC_MUL] = ecMul
	set.gadgets[opcode.EC_MUL_BASE] = ecMulBase
	set.gadgets[opcode.EC_MUL_SHORT] = ecMulShort
	set.gadgets[opcode.EC_MUL_VAR_BASE] = ecMulVarBase
	set.gadgets[opcode.EC_GET_X] = ecGetX
	set.gadgets[opcode.EC_GET_Y] = ecGetY
	set.gadgets[opcode.POSEIDON_HASH] = set.poseidonHash
	set.gadgets[opcode.MERKLE_ROOT] = set.merkleRoot
	set.gadgets[opcode.BASE_ADD] = baseAdd
	set.gadgets[opcode.BASE_MUL] = baseMul
	set.gadgets[opcode.BASE_SUB] = baseSub
	set.gadgets[opcode.WITNESS_BASE] = witnessBase
	set.gadgets[opcode.RANGE_CHECK] = rangeCheck
	set.gadgets[opcode.LESS_THAN_STRICT] = lessThanStrict
	set.gadgets[opcode.LESS_THAN_LOOSE] = lessThanLoose
	set.gadgets[opcode.BOOL_CHECK] = boolCheck
	set.gadgets[opcode.COND_SELECT] = condSelect
	set.gadgets[opcode.ZERO_COND_SELECT] = zeroCondSelect
	set.gadgets[opcode.CONSTRAIN_EQUAL_BASE] = constrainEqualBase
	set.gadgets[opcode.CONSTRAIN_EQUAL_POINT] = constrainEqualPoint
	set.gadgets[opcode.CONSTRAIN_INSTANCE] = constrainInstance
	//
	return set
}

// Builtin implementation for the vm.Dispatcher interface.
func (p *Set) Builtin(name string) (pasta.Point, bool) {
	point, ok := p.builtins[name]
	//
	return point, ok
}

// Dispatch implementation for the vm.Dispatcher interface.
func (p *Set) Dispatch(spec *opcode.Spec, cs *schema.ConstraintSystem,
	args []vm.Value) (vm.Value, error) {
	//
	gadget, ok := p.gadgets[spec.Code]
	//
	if !ok {
		return nil, fmt.Errorf("no gadget bound to opcode \"%s\"", spec.Name)
	}
	//
	return gadget(cs, args)
}
