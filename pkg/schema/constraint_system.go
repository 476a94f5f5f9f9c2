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

// Package schema provides the constraint system accumulator: the PLONKish
// trace a circuit execution builds up, one gadget region at a time.  The
// accumulator is append-only and owned exclusively by a single execution;
// the proving backend consumes it wholesale afterwards.
package schema

import (
	"fmt"

	"github.com/consensys/go-zkas/pkg/crypto/pasta"
)

// Gate identifies the custom gate a region activates.
type Gate uint8

const (
	// GATE_EC_ADD is the complete point addition gate.
	GATE_EC_ADD Gate = iota
	// GATE_EC_MUL is the scalar multiplication gate.
	GATE_EC_MUL
	// GATE_POSEIDON is the Poseidon permutation gate.
	GATE_POSEIDON
	// GATE_MERKLE is the Merkle path gate.
	GATE_MERKLE
	// GATE_ARITH is the base field arithmetic gate.
	GATE_ARITH
	// GATE_RANGE is the bit decomposition / range gate.
	GATE_RANGE
	// GATE_COMPARE is the strict/loose comparison gate.
	GATE_COMPARE
	// GATE_BOOL is the booleanity gate.
	GATE_BOOL
	// GATE_SELECT is the conditional selection gate.
	GATE_SELECT
	// GATE_WITNESS is the bare witness assignment gate.
	GATE_WITNESS
)

// Cell identifies one assigned cell of the trace.
type Cell struct {
	// Region this cell belongs to.
	Region uint
	// Offset of the cell within its region.
	Offset uint
}

// Region is a contiguous block of assigned cells activating a single gate.
type Region struct {
	// Human-readable region name, for debugging the trace.
	Name string
	// Gate activated over this region.
	Gate Gate
	// Assigned witness values, in assignment order.
	Values []pasta.Fp
}

// ConstraintSystem accumulates the trace of one circuit execution: the
// assigned regions, the copy constraints between cells, and the public input
// column in emission order.
type ConstraintSystem struct {
	// Row count exponent: the trace has at most 2^k usable rows.
	k uint32
	// Namespace of the program which produced this trace.
	namespace string
	// Assigned regions, in execution order.
	regions []Region
	// Copy (equality) constraints between cells.
	copies [][2]Cell
	// Public input column, in emission order.
	instances []pasta.Fp
}

// NewConstraintSystem constructs an empty accumulator for a given row count
// exponent and namespace.
func NewConstraintSystem(k uint32, namespace string) *ConstraintSystem {
	return &ConstraintSystem{k: k, namespace: namespace}
}

// K returns the row count exponent.
func (p *ConstraintSystem) K() uint32 {
	return p.k
}

// Namespace returns the namespace of the originating program.
func (p *ConstraintSystem) Namespace() string {
	return p.namespace
}

// AssignRegion appends a region activating a given gate over the given
// witness values, returning the cells assigned (in value order).
func (p *ConstraintSystem) AssignRegion(name string, gate Gate, values ...pasta.Fp) []Cell {
	var (
		region = uint(len(p.regions))
		cells  = make([]Cell, len(values))
	)
	//
	p.regions = append(p.regions, Region{name, gate, values})
	//
	for i := range values {
		cells[i] = Cell{region, uint(i)}
	}
	//
	return cells
}

// ConstrainEqual records a copy constraint between two cells.
func (p *ConstraintSystem) ConstrainEqual(a, b Cell) {
	p.copies = append(p.copies, [2]Cell{a, b})
}

// PushInstance appends a value to the public input column.  The column order
// is the canonical public input order and must never be perturbed.
func (p *ConstraintSystem) PushInstance(value pasta.Fp) {
	p.instances = append(p.instances, value)
}

// Instances returns the public input column in emission order.
func (p *ConstraintSystem) Instances() []pasta.Fp {
	return p.instances
}

// Regions returns the assigned regions in execution order.
func (p *ConstraintSystem) Regions() []Region {
	return p.regions
}

// Copies returns the recorded copy constraints.
func (p *ConstraintSystem) Copies() [][2]Cell {
	return p.copies
}

// Rows determines the total number of assigned rows across all regions.
func (p *ConstraintSystem) Rows() uint {
	var rows uint
	//
	for _, r := range p.regions {
		rows += uint(len(r.Values))
	}
	//
	return rows
}

func (p *ConstraintSystem) String() string {
	return fmt.Sprintf("%s: %d regions, %d copies, %d instances (k=%d)",
		p.namespace, len(p.regions), len(p.copies), len(p.instances), p.k)
}
