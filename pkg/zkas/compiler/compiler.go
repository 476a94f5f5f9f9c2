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

// Package compiler turns a circuit source file into a deterministic bytecode
// artifact, through the usual pipeline: lexing, parsing, semantic analysis
// and emission.  Every pass aborts on its first error.
package compiler

import (
	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-zkas/pkg/util/source"
)

// Compile runs the full pipeline over a given source file, producing an
// analyzed program ready for emission.  The error (if any) is one of
// LexError, ParseError or AnalyzeError, all of which render as a localised
// "file:line:col: message" diagnostic.
func Compile(srcfile *source.File) (*Analysis, error) {
	program, parseErr := Parse(srcfile)
	//
	if parseErr != nil {
		return nil, parseErr
	}
	//
	log.Debugf("parsed \"%s\": %d constants, %d witnesses, %d statements",
		program.Namespace, len(program.Constants), len(program.Witnesses), len(program.Statements))
	//
	analysis, analyzeErr := Analyze(program)
	//
	if analyzeErr != nil {
		return nil, analyzeErr
	}
	//
	return analysis, nil
}
