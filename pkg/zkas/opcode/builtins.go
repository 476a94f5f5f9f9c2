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
package opcode

// BUILTIN_CONSTANTS is the closed set of constant names recognised by the
// host.  Each denotes a fixed curve base whose value is supplied by the
// gadget layer at execution time.
var BUILTIN_CONSTANTS = []string{
	"VALUE_COMMIT_VALUE",
	"VALUE_COMMIT_RANDOM",
	"NULLIFIER_K",
}

// IsBuiltin checks whether a given constant name is recognised by the host.
func IsBuiltin(name string) bool {
	for _, n := range BUILTIN_CONSTANTS {
		if n == name {
			return true
		}
	}
	//
	return false
}
