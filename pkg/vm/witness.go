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
package vm

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/consensys/go-zkas/pkg/crypto/pasta"
	"github.com/consensys/go-zkas/pkg/zkas/ast"
)

// witnessEntry is the JSON shape of a single witness value.  Which fields
// apply depends on the type: scalars and field elements use "value", points
// use "x"/"y", arrays and paths use "values".
type witnessEntry struct {
	Type   string   `json:"type"`
	Value  string   `json:"value,omitempty"`
	X      string   `json:"x,omitempty"`
	Y      string   `json:"y,omitempty"`
	Values []string `json:"values,omitempty"`
}

// ParseWitnessJSON parses a JSON array of typed witness values, as accepted
// by the run command.  Field elements are written as decimal or 0x-prefixed
// hexadecimal strings.
func ParseWitnessJSON(data []byte) ([]Value, error) {
	var entries []witnessEntry
	//
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	//
	witnesses := make([]Value, len(entries))
	//
	for i, entry := range entries {
		value, err := entry.toValue()
		//
		if err != nil {
			return nil, fmt.Errorf("witness %d: %w", i, err)
		}
		//
		witnesses[i] = value
	}
	//
	return witnesses, nil
}

func (p *witnessEntry) toValue() (Value, error) {
	typ, ok := ast.ParseType(p.Type)
	//
	if !ok {
		return nil, fmt.Errorf("unknown type \"%s\"", p.Type)
	}
	//
	switch typ {
	case ast.TYPE_BASE:
		fp, err := parseFp(p.Value)
		return Base{fp}, err
	case ast.TYPE_SCALAR:
		fq, err := parseFq(p.Value)
		return Scalar{fq}, err
	case ast.TYPE_UINT32:
		v, err := strconv.ParseUint(p.Value, 0, 32)
		return Uint32{uint32(v)}, err
	case ast.TYPE_UINT64:
		v, err := strconv.ParseUint(p.Value, 0, 64)
		return Uint64{v}, err
	case ast.TYPE_BASE_ARRAY:
		values, err := parseFpList(p.Values)
		return BaseArray{values}, err
	case ast.TYPE_SCALAR_ARRAY:
		values := make([]pasta.Fq, len(p.Values))
		//
		for i, s := range p.Values {
			fq, err := parseFq(s)
			//
			if err != nil {
				return nil, err
			}
			//
			values[i] = fq
		}
		//
		return ScalarArray{values}, nil
	case ast.TYPE_MERKLE_PATH:
		values, err := parseFpList(p.Values)
		//
		if err != nil {
			return nil, err
		} else if len(values) != MERKLE_DEPTH {
			return nil, fmt.Errorf("merkle path expects %d elements, found %d",
				MERKLE_DEPTH, len(values))
		}
		//
		var path MerklePath
		copy(path.Inner[:], values)
		//
		return path, nil
	case ast.TYPE_EC_POINT, ast.TYPE_EC_NI_POINT:
		x, err := parseFp(p.X)
		//
		if err != nil {
			return nil, err
		}
		//
		y, err := parseFp(p.Y)
		//
		if err != nil {
			return nil, err
		}
		//
		point := pasta.NewPoint(x, y)
		//
		if !point.IsOnCurve() {
			return nil, fmt.Errorf("point is not on the curve")
		}
		//
		return NewPoint(typ, point), nil
	}
	//
	return nil, fmt.Errorf("type %s cannot be witnessed", typ)
}

func parseFp(s string) (pasta.Fp, error) {
	var fp pasta.Fp
	//
	value, ok := new(big.Int).SetString(s, 0)
	//
	if !ok || value.Sign() < 0 {
		return fp, fmt.Errorf("malformed field element \"%s\"", s)
	}
	//
	return fp.SetBytes(value.Bytes()), nil
}

func parseFq(s string) (pasta.Fq, error) {
	var fq pasta.Fq
	//
	value, ok := new(big.Int).SetString(s, 0)
	//
	if !ok || value.Sign() < 0 {
		return fq, fmt.Errorf("malformed field element \"%s\"", s)
	}
	//
	return fq.SetBytes(value.Bytes()), nil
}

func parseFpList(strings []string) ([]pasta.Fp, error) {
	values := make([]pasta.Fp, len(strings))
	//
	for i, s := range strings {
		fp, err := parseFp(s)
		//
		if err != nil {
			return nil, err
		}
		//
		values[i] = fp
	}
	//
	return values, nil
}
