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
package field

// PALLAS is the base field of the Pallas curve, and the default field for
// circuit arithmetisation.
var PALLAS = Config{"pallas", 32}

// VESTA is the scalar field of the Pallas curve (equivalently, the base field
// of the Vesta curve).
var VESTA = Config{"vesta", 32}

// FIELD_CONFIGS determines the set of supported fields.
var FIELD_CONFIGS = []Config{
	PALLAS,
	VESTA,
}

// Config provides a simple mechanism for configuring field-specific limits
// without hard-coding them throughout the pipeline.
type Config struct {
	// Name suitable for identifying the config.  This is only really used for
	// improving error reporting, etc.
	Name string
	// TwoAdicity of the field, which bounds the PLONKish row-count exponent k
	// (i.e. valid circuits have 0 < k < TwoAdicity).
	TwoAdicity uint
}

// MaxK returns the largest permitted row-count exponent for this field.
func (p *Config) MaxK() uint {
	return p.TwoAdicity - 1
}

// GetConfig returns the field configuration corresponding with the given
// name, or nil no such config exists.
func GetConfig(name string) *Config {
	for i := range FIELD_CONFIGS {
		if FIELD_CONFIGS[i].Name == name {
			return &FIELD_CONFIGS[i]
		}
	}
	//
	return nil
}
