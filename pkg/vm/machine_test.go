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
package vm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/go-zkas/pkg/binfile"
	"github.com/consensys/go-zkas/pkg/crypto/pasta"
	"github.com/consensys/go-zkas/pkg/schema"
	"github.com/consensys/go-zkas/pkg/util/field"
	"github.com/consensys/go-zkas/pkg/util/source"
	"github.com/consensys/go-zkas/pkg/vm"
	"github.com/consensys/go-zkas/pkg/vm/gadget"
	"github.com/consensys/go-zkas/pkg/zkas/ast"
	"github.com/consensys/go-zkas/pkg/zkas/compiler"
	"github.com/consensys/go-zkas/pkg/zkas/opcode"
)

// gadgets is shared across tests: the set is immutable and deriving the
// Poseidon parameters is the expensive part of construction.
var gadgets = gadget.NewSet()

// compileAndLoad compiles a source string and round-trips it through the
// bytecode container, exactly as a production caller would.
func compileAndLoad(t *testing.T, input string) *binfile.Program {
	t.Helper()
	//
	analysis, err := compiler.Compile(source.NewSourceFile("test.zk", []byte(input)))
	require.NoError(t, err)
	//
	program, derr := binfile.Decode(compiler.EmitBytes(analysis, false), &field.PALLAS)
	require.Nil(t, derr)
	//
	return program
}

func run(t *testing.T, input string, witnesses []vm.Value) (*schema.ConstraintSystem, *vm.RuntimeError) {
	t.Helper()
	//
	program := compileAndLoad(t, input)
	machine := vm.NewMachine(program, gadgets)
	//
	return machine.Run(witnesses)
}

func TestRunEmptyProgram(t *testing.T) {
	cs, err := run(t,
		`k=11; field="pallas"; constant "N"{} witness "N"{} circuit "N"{}`, nil)
	//
	require.Nil(t, err)
	assert.Empty(t, cs.Regions())
	assert.Empty(t, cs.Instances())
	assert.Equal(t, uint32(11), cs.K())
	assert.Equal(t, "N", cs.Namespace())
}

func TestRunLiteralPlacement(t *testing.T) {
	program := compileAndLoad(t, `k=11; field="pallas";
		constant "N"{} witness "N"{}
		circuit "N"{
			a = witness_base(42);
			range_check(64, a);
			constrain_instance(a);
		}`)
	// The literal heap carries [42, 64] in that order.
	require.Len(t, program.Literals, 2)
	assert.Equal(t, uint64(42), program.Literals[0].Value)
	assert.Equal(t, uint64(64), program.Literals[1].Value)
	// One producing statement, hence one variable heap entry.
	assert.Equal(t, uint(1), program.Producing())
	//
	machine := vm.NewMachine(program, gadgets)
	cs, err := machine.Run(nil)
	//
	require.Nil(t, err)
	// Exactly one public input, holding 42.
	require.Len(t, cs.Instances(), 1)
	assert.Equal(t, pasta.NewFp(42), cs.Instances()[0])
}

func TestRunInstanceOrdering(t *testing.T) {
	cs, err := run(t, `k=11; field="pallas";
		constant "N"{} witness "N"{ Base a, Base b, }
		circuit "N"{
			constrain_instance(b);
			constrain_instance(a);
			constrain_instance(b);
		}`,
		[]vm.Value{
			vm.Base{Inner: pasta.NewFp(10)},
			vm.Base{Inner: pasta.NewFp(20)},
		})
	//
	require.Nil(t, err)
	// Public inputs appear in exactly the order constrained.
	assert.Equal(t, []pasta.Fp{
		pasta.NewFp(20), pasta.NewFp(10), pasta.NewFp(20),
	}, cs.Instances())
}

func TestRunFieldArithmetic(t *testing.T) {
	cs, err := run(t, `k=11; field="pallas";
		constant "N"{} witness "N"{ Base a, Base b, }
		circuit "N"{
			c = base_add(a, b);
			d = base_mul(c, a);
			e = base_sub(d, b);
			constrain_instance(e);
		}`,
		[]vm.Value{
			vm.Base{Inner: pasta.NewFp(3)},
			vm.Base{Inner: pasta.NewFp(4)},
		})
	//
	require.Nil(t, err)
	// (3+4)*3 - 4 = 17
	require.Len(t, cs.Instances(), 1)
	assert.Equal(t, pasta.NewFp(17), cs.Instances()[0])
}

func TestRunPoseidonAndSelects(t *testing.T) {
	cs, err := run(t, `k=11; field="pallas";
		constant "N"{} witness "N"{ Base a, Base b, Base flag, }
		circuit "N"{
			bool_check(flag);
			h = poseidon_hash(a, b);
			s = cond_select(flag, h, a);
			constrain_instance(s);
		}`,
		[]vm.Value{
			vm.Base{Inner: pasta.NewFp(5)},
			vm.Base{Inner: pasta.NewFp(6)},
			vm.Base{Inner: pasta.NewFp(1)},
		})
	//
	require.Nil(t, err)
	require.Len(t, cs.Instances(), 1)
	// flag = 1 selects the hash, which is nonzero and deterministic.
	selected := cs.Instances()[0]
	assert.False(t, selected.IsZero())
	// Re-running yields the identical constraint system.
	again, err := run(t, `k=11; field="pallas";
		constant "N"{} witness "N"{ Base a, Base b, Base flag, }
		circuit "N"{
			bool_check(flag);
			h = poseidon_hash(a, b);
			s = cond_select(flag, h, a);
			constrain_instance(s);
		}`,
		[]vm.Value{
			vm.Base{Inner: pasta.NewFp(5)},
			vm.Base{Inner: pasta.NewFp(6)},
			vm.Base{Inner: pasta.NewFp(1)},
		})
	require.Nil(t, err)
	assert.Equal(t, selected, again.Instances()[0])
}

func TestRunEcOpcodes(t *testing.T) {
	var (
		g = pasta.Generator()
		p = g.ScalarMul(pasta.NewFq(7))
		q = g.ScalarMul(pasta.NewFq(11))
	)
	//
	cs, err := run(t, `k=13; field="pallas";
		constant "N"{ EcFixedPointBase NULLIFIER_K, }
		witness "N"{ EcPoint p, EcPoint q, Base blind, }
		circuit "N"{
			sum = ec_add(p, q);
			x = ec_get_x(sum);
			y = ec_get_y(sum);
			nk = ec_mul_base(blind, NULLIFIER_K);
			nx = ec_get_x(nk);
			constrain_instance(x);
			constrain_instance(y);
			constrain_instance(nx);
		}`,
		[]vm.Value{
			vm.NewPoint(ast.TYPE_EC_POINT, p),
			vm.NewPoint(ast.TYPE_EC_POINT, q),
			vm.Base{Inner: pasta.NewFp(99)},
		})
	//
	require.Nil(t, err)
	// ec_add agrees with the group law: [7]G + [11]G = [18]G.
	expected := g.ScalarMul(pasta.NewFq(18))
	require.Len(t, cs.Instances(), 3)
	assert.Equal(t, expected.X(), cs.Instances()[0])
	assert.Equal(t, expected.Y(), cs.Instances()[1])
	assert.Equal(t, pasta.NullifierK.MulBase(pasta.NewFp(99)).X(), cs.Instances()[2])
}

func TestRunMerkleRoot(t *testing.T) {
	var path vm.MerklePath
	//
	for i := range path.Inner {
		path.Inner[i] = pasta.NewFp(uint64(i + 1))
	}
	//
	src := `k=13; field="pallas";
		constant "N"{} witness "N"{ Uint32 pos, MerklePath path, Base leaf, }
		circuit "N"{
			root = merkle_root(pos, path, leaf);
			constrain_instance(root);
		}`
	//
	cs, err := run(t, src, []vm.Value{
		vm.Uint32{Inner: 5}, path, vm.Base{Inner: pasta.NewFp(77)},
	})
	require.Nil(t, err)
	require.Len(t, cs.Instances(), 1)
	// A different position yields a different root.
	other, err := run(t, src, []vm.Value{
		vm.Uint32{Inner: 6}, path, vm.Base{Inner: pasta.NewFp(77)},
	})
	require.Nil(t, err)
	assert.NotEqual(t, cs.Instances()[0], other.Instances()[0])
}

func TestRunWitnessCountMismatch(t *testing.T) {
	input := `k=11; field="pallas";
		constant "N"{} witness "N"{ Base a, }
		circuit "N"{ constrain_instance(a); }`
	// Supplying zero values where one is declared fails.
	_, err := run(t, input, nil)
	//
	require.NotNil(t, err)
	assert.Equal(t, vm.VmWitnessCountMismatch, err.Kind)
	// Supplying the declared count succeeds.
	cs, err := run(t, input, []vm.Value{vm.Base{Inner: pasta.NewFp(1)}})
	require.Nil(t, err)
	assert.Len(t, cs.Instances(), 1)
}

func TestRunWitnessTypeMismatch(t *testing.T) {
	_, err := run(t, `k=11; field="pallas";
		constant "N"{} witness "N"{ Base a, }
		circuit "N"{ constrain_instance(a); }`,
		[]vm.Value{vm.Uint64{Inner: 1}})
	//
	require.NotNil(t, err)
	assert.Equal(t, vm.VmWitnessTypeMismatch, err.Kind)
}

func TestRunCorruptedBytecodeTypeMismatch(t *testing.T) {
	// Hand-craft a program whose heap references are in bounds but whose
	// types are wrong: base_add over a declared point.  The decoder accepts
	// it (types are a VM invariant), the VM must not.
	program := &binfile.Program{
		K:         11,
		Namespace: "N",
		Witnesses: []ast.Type{ast.TYPE_EC_POINT, ast.TYPE_BASE},
		Statements: []binfile.Statement{
			{Opcode: opcode.BASE_ADD, Args: []binfile.Operand{
				{Kind: ast.HEAP_VARIABLE, Index: 0},
				{Kind: ast.HEAP_VARIABLE, Index: 1},
			}},
		},
	}
	//
	machine := vm.NewMachine(program, gadgets)
	//
	_, err := machine.Run([]vm.Value{
		vm.NewPoint(ast.TYPE_EC_POINT, pasta.Generator()),
		vm.Base{Inner: pasta.NewFp(1)},
	})
	//
	require.NotNil(t, err)
	assert.Equal(t, vm.VmTypeMismatch, err.Kind)
	assert.Equal(t, 0, err.Statement)
}

func TestRunUnknownBuiltin(t *testing.T) {
	program := &binfile.Program{
		K:         11,
		Namespace: "N",
		Constants: []binfile.Constant{
			{Type: ast.TYPE_EC_FIXED_POINT, Name: "NO_SUCH_BASE"},
		},
	}
	//
	machine := vm.NewMachine(program, gadgets)
	//
	_, err := machine.Run(nil)
	//
	require.NotNil(t, err)
	assert.Equal(t, vm.VmUnknownBuiltin, err.Kind)
}

func TestRunRegionGrowth(t *testing.T) {
	// Every statement other than constrain_instance contributes exactly one
	// region, hence the region count tracks those statements.
	cs, err := run(t, `k=11; field="pallas";
		constant "N"{} witness "N"{ Base a, Base b, }
		circuit "N"{
			c = base_add(a, b);
			d = base_mul(a, b);
			constrain_equal_base(c, c);
			constrain_instance(d);
		}`,
		[]vm.Value{
			vm.Base{Inner: pasta.NewFp(2)},
			vm.Base{Inner: pasta.NewFp(3)},
		})
	//
	require.Nil(t, err)
	// constrain_instance appends no region, the other three do.
	assert.Len(t, cs.Regions(), 3)
	assert.Len(t, cs.Copies(), 1)
}
