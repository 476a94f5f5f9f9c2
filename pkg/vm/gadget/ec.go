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
	"github.com/consensys/go-zkas/pkg/zkas/ast"
)

// ecAdd produces the sum of two variable points under the complete addition
// gate.
func ecAdd(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
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
	r := a.Add(b)
	//
	cs.AssignRegion("ec_add", schema.GATE_EC_ADD,
		a.X(), a.Y(), b.X(), b.Y(), r.X(), r.Y())
	//
	return vm.NewPoint(ast.TYPE_EC_POINT, r), nil
}

// ecMul multiplies a fixed base by a full-width scalar.
func ecMul(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	k, err := asScalar(args[0])
	//
	if err != nil {
		return nil, err
	}
	//
	base, err := asPoint(args[1])
	//
	if err != nil {
		return nil, err
	}
	//
	r := base.ScalarMul(k)
	//
	cs.AssignRegion("ec_mul", schema.GATE_EC_MUL, r.X(), r.Y())
	//
	return vm.NewPoint(ast.TYPE_EC_POINT, r), nil
}

// ecMulBase multiplies a fixed base by a base field element, wrapped through
// the curve's scalar embedding.
func ecMulBase(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	k, err := asBase(args[0])
	//
	if err != nil {
		return nil, err
	}
	//
	base, err := asPoint(args[1])
	//
	if err != nil {
		return nil, err
	}
	//
	r := base.MulBase(k)
	//
	cs.AssignRegion("ec_mul_base", schema.GATE_EC_MUL, k, r.X(), r.Y())
	//
	return vm.NewPoint(ast.TYPE_EC_POINT, r), nil
}

// ecMulShort multiplies a fixed base by a short (64bit) scalar.
func ecMulShort(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	k, err := asUint64(args[0])
	//
	if err != nil {
		return nil, err
	}
	//
	base, err := asPoint(args[1])
	//
	if err != nil {
		return nil, err
	}
	//
	r := base.MulUint64(k)
	//
	cs.AssignRegion("ec_mul_short", schema.GATE_EC_MUL,
		pasta.NewFp(k), r.X(), r.Y())
	//
	return vm.NewPoint(ast.TYPE_EC_POINT, r), nil
}

// ecMulVarBase multiplies a variable (non-identity) point by a base field
// element.
func ecMulVarBase(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	k, err := asBase(args[0])
	//
	if err != nil {
		return nil, err
	}
	//
	base, err := asPoint(args[1])
	//
	if err != nil {
		return nil, err
	}
	//
	r := base.MulBase(k)
	//
	cs.AssignRegion("ec_mul_var_base", schema.GATE_EC_MUL,
		base.X(), base.Y(), k, r.X(), r.Y())
	//
	return vm.NewPoint(ast.TYPE_EC_POINT, r), nil
}

// ecGetX extracts the affine x coordinate of a point.
func ecGetX(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	point, err := asPoint(args[0])
	//
	if err != nil {
		return nil, err
	}
	//
	cs.AssignRegion("ec_get_x", schema.GATE_ARITH, point.X())
	//
	return vm.Base{Inner: point.X()}, nil
}

// ecGetY extracts the affine y coordinate of a point.
func ecGetY(cs *schema.ConstraintSystem, args []vm.Value) (vm.Value, error) {
	point, err := asPoint(args[0])
	//
	if err != nil {
		return nil, err
	}
	//
	cs.AssignRegion("ec_get_y", schema.GATE_ARITH, point.Y())
	//
	return vm.Base{Inner: point.Y()}, nil
}
