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
	"github.com/consensys/go-zkas/pkg/vm"
)

// asBase unwraps a base field element from a heap value.
func asBase(value vm.Value) (pasta.Fp, error) {
	if base, ok := value.(vm.Base); ok {
		return base.Inner, nil
	}
	//
	return pasta.Fp{}, fmt.Errorf("expected Base, found %s", value.Type())
}

// asScalar unwraps a scalar field element from a heap value.
func asScalar(value vm.Value) (pasta.Fq, error) {
	if scalar, ok := value.(vm.Scalar); ok {
		return scalar.Inner, nil
	}
	//
	return pasta.Fq{}, fmt.Errorf("expected Scalar, found %s", value.Type())
}

// asPoint unwraps a curve point (of any flavour) from a heap value.
func asPoint(value vm.Value) (pasta.Point, error) {
	if point, ok := value.(vm.Point); ok {
		return point.Inner, nil
	}
	//
	return pasta.Point{}, fmt.Errorf("expected a curve point, found %s", value.Type())
}

// asUint32 unwraps an unsigned 32bit integer from a heap value.
func asUint32(value vm.Value) (uint32, error) {
	if v, ok := value.(vm.Uint32); ok {
		return v.Inner, nil
	}
	//
	return 0, fmt.Errorf("expected Uint32, found %s", value.Type())
}

// asUint64 unwraps an unsigned 64bit integer from a heap value.
func asUint64(value vm.Value) (uint64, error) {
	if v, ok := value.(vm.Uint64); ok {
		return v.Inner, nil
	}
	//
	return 0, fmt.Errorf("expected Uint64, found %s", value.Type())
}

// asMerklePath unwraps an authentication path from a heap value.
func asMerklePath(value vm.Value) ([vm.MERKLE_DEPTH]pasta.Fp, error) {
	if path, ok := value.(vm.MerklePath); ok {
		return path.Inner, nil
	}
	//
	return [vm.MERKLE_DEPTH]pasta.Fp{}, fmt.Errorf("expected MerklePath, found %s", value.Type())
}
