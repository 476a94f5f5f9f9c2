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
	"github.com/consensys/go-zkas/pkg/schema"
	"github.com/consensys/go-zkas/pkg/vm"
)

// rangeCheck constrains a value to a given number of bits, by witnessing its
// full bit decomposition.
func rangeCheck(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	bits, err := asUint64(args[0])
	//
	if err != nil {
		return nil, err
	}
	//
	if bits != 64 && bits != 253 {
		return nil, fmt.Errorf("unsupported range check width %d", bits)
	}
	//
	value, err := asBase(args[1])
	//
	if err != nil {
		return nil, err
	}
	// Witness the value followed by its decomposition, one cell per bit.
	trace := make([]pasta.Fp, 0, bits+1)
	trace = append(trace, value)
	//
	for i := uint64(0); i < bits; i++ {
		var bit pasta.Fp
		//
		if value.Bit(uint(i)) {
			bit = pasta.NewFp(1)
		}
		//
		trace = append(trace, bit)
	}
	//
	cs.AssignRegion(fmt.Sprintf("range_check_%d", bits), schema.GATE_RANGE, trace...)
	//
	return nil, nil
}

// lessThanStrict enforces a < b.
func lessThanStrict(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	return lessThan(cs, "less_than_strict", args, true)
}

// lessThanLoose enforces a <= b.
func lessThanLoose(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	return lessThan(cs, "less_than_loose", args, false)
}

func lessThan(cs *schema.ConstraintSystem, name string, args []vm.Value,
	strict bool) (vm.Value, error) {
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
	// Witness the difference whose range certifies the comparison: b - a - 1
	// for the strict variant, b - a for the loose one.
	delta := b.Sub(a)
	//
	if strict {
		delta = delta.Sub(pasta.NewFp(1))
	}
	//
	cs.AssignRegion(name, schema.GATE_COMPARE, a, b, delta)
	//
	return nil, nil
}

// boolCheck enforces a in {0, 1}.
func boolCheck(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	a, err := asBase(args[0])
	//
	if err != nil {
		return nil, err
	}
	//
	cs.AssignRegion("bool_check", schema.GATE_BOOL, a)
	//
	return nil, nil
}

// condSelect returns a if c = 1 else b, with c constrained boolean.
func condSelect(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	c, err := asBase(args[0])
	//
	if err != nil {
		return nil, err
	}
	//
	a, err := asBase(args[1])
	//
	if err != nil {
		return nil, err
	}
	//
	b, err := asBase(args[2])
	//
	if err != nil {
		return nil, err
	}
	//
	r := b
	//
	if c.IsOne() {
		r = a
	}
	//
	cs.AssignRegion("cond_select", schema.GATE_SELECT, c, a, b, r)
	//
	return vm.Base{Inner: r}, nil
}

// zeroCondSelect returns a if a = 0 else b.
func zeroCondSelect(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
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
	r := b
	//
	if a.IsZero() {
		r = a
	}
	//
	cs.AssignRegion("zero_cond_select", schema.GATE_SELECT, a, b, r)
	//
	return vm.Base{Inner: r}, nil
}

// constrainEqualBase asserts equality of two base field elements via a copy
// constraint.
func constrainEqualBase(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
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
	cells := cs.AssignRegion("constrain_equal_base", schema.GATE_ARITH, a, b)
	cs.ConstrainEqual(cells[0], cells[1])
	//
	return nil, nil
}

// constrainEqualPoint asserts equality of two points, coordinate-wise.
func constrainEqualPoint(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	a, err := asPoint(args[0])
	//
	if err != nil {
		return nil, err
	}
	//
	b, err := asPoint(args[1])
	//
	if err != nil {
		return nil, err
	}
	//
	cells := cs.AssignRegion("constrain_equal_point", schema.GATE_ARITH,
		a.X(), a.Y(), b.X(), b.Y())
	cs.ConstrainEqual(cells[0], cells[2])
	cs.ConstrainEqual(cells[1], cells[3])
	//
	return nil, nil
}

// constrainInstance emits its argument onto the public input column.  The
// column order is exactly the order of constrain_instance statements in the
// source.
func constrainInstance(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	a, err := asBase(args[0])
	//
	if err != nil {
		return nil, err
	}
	//
	cs.PushInstance(a)
	//
	return nil, nil
}
