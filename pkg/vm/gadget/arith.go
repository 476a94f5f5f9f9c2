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
	"github.com/consensys/go-zkas/pkg/crypto/pasta"
	"github.com/consensys/go-zkas/pkg/schema"
	"github.com/consensys/go-zkas/pkg/vm"
)

// baseAdd produces the sum of two base field elements.
func baseAdd(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	return baseArith(cs, "base_add", args, pasta.Fp.Add)
}

// baseMul produces the product of two base field elements.
func baseMul(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	return baseArith(cs, "base_mul", args, pasta.Fp.Mul)
}

// baseSub produces the difference of two base field elements.
func baseSub(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	return baseArith(cs, "base_sub", args, pasta.Fp.Sub)
}

func baseArith(cs *schema.ConstraintSystem, name string, args []vm.Value,
	op func(pasta.Fp, pasta.Fp) pasta.Fp) (vm.Value, error) {
	//
	a, err := asBase(args[0])
	//
	if err != nil {
		return nil, err
	}
	//
	b, err := asBase(args[1])
	//
	if err != nil {
		return nil, err
	}
	//
	r := op(a, b)
	//
	cs.AssignRegion(name, schema.GATE_ARITH, a, b, r)
	//
	return vm.Base{Inner: r}, nil
}

// witnessBase materialises a literal from the literal heap as a base field
// element.  This is the only opcode consuming a literal-kind argument for
// its value rather than as a parameter.
func witnessBase(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	value, err := asUint64(args[0])
	//
	if err != nil {
		return nil, err
	}
	//
	r := pasta.NewFp(value)
	//
	cs.AssignRegion("witness_base", schema.GATE_WITNESS, r)
	//
	return vm.Base{Inner: r}, nil
}
