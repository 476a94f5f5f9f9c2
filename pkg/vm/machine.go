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

// Package vm executes a loaded bytecode program against caller-supplied
// witness values, replaying the opcode stream to build a proof-ready
// constraint system.  Execution is strictly sequential: the opcode stream
// has no branching, and a run owns its heaps and accumulator exclusively.
package vm

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-zkas/pkg/binfile"
	"github.com/consensys/go-zkas/pkg/crypto/pasta"
	"github.com/consensys/go-zkas/pkg/schema"
	"github.com/consensys/go-zkas/pkg/zkas/ast"
	"github.com/consensys/go-zkas/pkg/zkas/opcode"
)

// Dispatcher binds opcodes to their constraint-building gadgets, and builtin
// constant names to their fixed values.  Implementations must be stateless
// across runs: all per-run state lives in the constraint system passed by
// reference.
type Dispatcher interface {
	// Builtin resolves a builtin constant name to its fixed curve point.
	Builtin(name string) (pasta.Point, bool)
	// Dispatch invokes the gadget bound to a given opcode with resolved
	// arguments, appending to the given constraint system and returning the
	// produced value (or nil for void opcodes).
	Dispatch(spec *opcode.Spec, cs *schema.ConstraintSystem, args []Value) (Value, error)
}

// Machine executes one bytecode program.  A machine may be reused across
// runs; each run owns its own heaps and constraint system.
type Machine struct {
	program    *binfile.Program
	dispatcher Dispatcher
}

// NewMachine constructs a machine for a given program and gadget dispatcher.
func NewMachine(program *binfile.Program, dispatcher Dispatcher) *Machine {
	return &Machine{program, dispatcher}
}

// Run executes the opcode stream against the given witness values, returning
// the finalized constraint system (whose instance column holds the public
// inputs in emission order).  The first error aborts the run, returning no
// constraint system at all.
func (p *Machine) Run(witnesses []Value) (*schema.ConstraintSystem, *RuntimeError) {
	var (
		program = p.program
		cs      = schema.NewConstraintSystem(program.K, program.Namespace)
	)
	// Initialise the variable heap: constants, then witnesses.
	heap, err := p.initialiseHeap(witnesses)
	//
	if err != nil {
		return nil, err
	}
	// Execute each statement in order.
	for i, stmt := range program.Statements {
		spec, ok := opcode.LookupCode(uint8(stmt.Opcode))
		//
		if !ok {
			return nil, &RuntimeError{VmUnknownOpcode, i,
				fmt.Sprintf("unknown opcode 0x%02x", uint8(stmt.Opcode))}
		}
		//
		args, err := p.resolveArgs(i, spec, stmt, heap)
		//
		if err != nil {
			return nil, err
		}
		//
		result, gerr := p.dispatcher.Dispatch(spec, cs, args)
		//
		if gerr != nil {
			return nil, &RuntimeError{VmTypeMismatch, i, gerr.Error()}
		}
		// Producing opcodes append to the heap; the heap never shrinks.
		if spec.HasOutput() {
			heap = append(heap, result)
		}
	}
	//
	log.Debugf("executed \"%s\": heap %d, %s", program.Namespace, len(heap), cs)
	//
	return cs, nil
}

// initialiseHeap validates the witness values against the witness section and
// lays out the initial variable heap: constants in declaration order, then
// witnesses in declaration order.
func (p *Machine) initialiseHeap(witnesses []Value) ([]Value, *RuntimeError) {
	var (
		program = p.program
		heap    = make([]Value, 0, program.HeapSize())
	)
	//
	if len(witnesses) != len(program.Witnesses) {
		return nil, &RuntimeError{VmWitnessCountMismatch, -1,
			fmt.Sprintf("expected %d witness values, found %d",
				len(program.Witnesses), len(witnesses))}
	}
	//
	for i, declared := range program.Witnesses {
		if witnesses[i].Type() != declared {
			return nil, &RuntimeError{VmWitnessTypeMismatch, -1,
				fmt.Sprintf("witness %d expects %s, found %s",
					i, declared, witnesses[i].Type())}
		}
	}
	//
	for _, c := range program.Constants {
		point, ok := p.dispatcher.Builtin(c.Name)
		//
		if !ok {
			return nil, &RuntimeError{VmUnknownBuiltin, -1,
				fmt.Sprintf("unknown builtin constant \"%s\"", c.Name)}
		}
		//
		heap = append(heap, NewPoint(c.Type, point))
	}
	//
	return append(heap, witnesses...), nil
}

// resolveArgs dereferences each heap reference of a statement, re-checking
// the retrieved value's type against the opcode signature.  These checks are
// redundant with the analyzer but retained as a runtime invariant; they only
// fire on corrupted or hand-crafted bytecode.
func (p *Machine) resolveArgs(stmt int, spec *opcode.Spec, statement binfile.Statement,
	heap []Value) ([]Value, *RuntimeError) {
	//
	args := make([]Value, len(statement.Args))
	//
	for i, operand := range statement.Args {
		var value Value
		//
		switch operand.Kind {
		case ast.HEAP_VARIABLE:
			if operand.Index >= uint64(len(heap)) {
				return nil, &RuntimeError{VmHeapIndexOutOfRange, stmt,
					fmt.Sprintf("variable heap index %d exceeds heap size %d",
						operand.Index, len(heap))}
			}
			//
			value = heap[operand.Index]
		case ast.HEAP_LITERAL:
			if operand.Index >= uint64(len(p.program.Literals)) {
				return nil, &RuntimeError{VmHeapIndexOutOfRange, stmt,
					fmt.Sprintf("literal heap index %d exceeds heap size %d",
						operand.Index, len(p.program.Literals))}
			}
			//
			value = Uint64{p.program.Literals[operand.Index].Value}
		default:
			return nil, &RuntimeError{VmHeapIndexOutOfRange, stmt,
				fmt.Sprintf("unknown heap kind 0x%02x", uint8(operand.Kind))}
		}
		// Determine the expected type at this position.
		var expected ast.Type
		//
		if spec.Variadic {
			expected = spec.Inputs[0]
		} else if i < len(spec.Inputs) {
			expected = spec.Inputs[i]
		} else {
			return nil, &RuntimeError{VmTypeMismatch, stmt,
				fmt.Sprintf("opcode \"%s\" expects %d arguments, found %d",
					spec.Name, len(spec.Inputs), len(statement.Args))}
		}
		//
		if value.Type() != expected {
			return nil, &RuntimeError{VmTypeMismatch, stmt,
				fmt.Sprintf("argument %d of \"%s\" expects %s, found %s",
					i, spec.Name, expected, value.Type())}
		}
		//
		args[i] = value
	}
	// Variadic opcodes aside, short argument lists are also malformed.
	if !spec.Variadic && len(args) != len(spec.Inputs) {
		return nil, &RuntimeError{VmTypeMismatch, stmt,
			fmt.Sprintf("opcode \"%s\" expects %d arguments, found %d",
				spec.Name, len(spec.Inputs), len(args))}
	}
	//
	return args, nil
}
