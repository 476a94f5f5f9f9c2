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
package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consensys/go-zkas/pkg/crypto/pasta"
)

func TestAssignRegionCells(t *testing.T) {
	cs := NewConstraintSystem(11, "Test")
	//
	cells := cs.AssignRegion("add", GATE_ARITH,
		pasta.NewFp(1), pasta.NewFp(2), pasta.NewFp(3))
	//
	assert.Len(t, cells, 3)
	assert.Equal(t, Cell{0, 0}, cells[0])
	assert.Equal(t, Cell{0, 2}, cells[2])
	assert.Equal(t, uint(3), cs.Rows())
	// A second region lands at the next region index.
	cells = cs.AssignRegion("bool", GATE_BOOL, pasta.NewFp(1))
	assert.Equal(t, Cell{1, 0}, cells[0])
}

func TestInstanceOrdering(t *testing.T) {
	cs := NewConstraintSystem(11, "Test")
	//
	for i := uint64(0); i < 5; i++ {
		cs.PushInstance(pasta.NewFp(i * 7))
	}
	//
	instances := cs.Instances()
	assert.Len(t, instances, 5)
	//
	for i, instance := range instances {
		assert.Equal(t, pasta.NewFp(uint64(i)*7), instance)
	}
}

func TestConstrainEqual(t *testing.T) {
	cs := NewConstraintSystem(11, "Test")
	//
	cells := cs.AssignRegion("eq", GATE_ARITH, pasta.NewFp(4), pasta.NewFp(4))
	cs.ConstrainEqual(cells[0], cells[1])
	//
	assert.Len(t, cs.Copies(), 1)
	assert.Equal(t, [2]Cell{cells[0], cells[1]}, cs.Copies()[0])
}
