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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/consensys/go-zkas/pkg/binfile"
	"github.com/consensys/go-zkas/pkg/zkas/ast"
	"github.com/consensys/go-zkas/pkg/zkas/opcode"
)

// writeDisassembly prints a human-readable decoding of an emitted program,
// section by section.
func writeDisassembly(program *binfile.Program) {
	rule := strings.Repeat("-", terminalWidth())
	//
	fmt.Println(rule)
	fmt.Printf("k = %d, namespace = %q\n", program.K, program.Namespace)
	//
	fmt.Println(".constant")
	//
	for i, c := range program.Constants {
		fmt.Printf("  [%d]\t%s %s\n", i, c.Type, c.Name)
	}
	//
	fmt.Println(".literal")
	//
	for i, l := range program.Literals {
		fmt.Printf("  [%d]\t%s %d\n", i, l.Kind, l.Value)
	}
	//
	fmt.Println(".witness")
	//
	for i, w := range program.Witnesses {
		fmt.Printf("  [%d]\t%s\n", i, w)
	}
	//
	fmt.Println(".circuit")
	// Variable heap slots start after constants and witnesses.
	slot := len(program.Constants) + len(program.Witnesses)
	//
	for i, stmt := range program.Statements {
		spec, _ := opcode.LookupCode(uint8(stmt.Opcode))
		//
		fmt.Printf("  [%d]\t", i)
		//
		if spec.HasOutput() {
			fmt.Printf("var[%d] = ", slot)
			slot++
		}
		//
		fmt.Printf("%s(", spec.Name)
		//
		for j, arg := range stmt.Args {
			if j != 0 {
				fmt.Printf(", ")
			}
			//
			fmt.Printf("%s[%d]", shortHeapKind(arg), arg.Index)
		}
		//
		fmt.Println(")")
	}
	//
	if program.Debug != nil {
		writeDebugSection(program.Debug)
	}
	//
	fmt.Println(rule)
}

func writeDebugSection(debug *binfile.DebugInfo) {
	fmt.Println(".debug")
	//
	for i, pos := range debug.Positions {
		fmt.Printf("  [%d]\tline %d, col %d\n", i, pos.Line, pos.Column)
	}
	//
	fmt.Printf("  heap:     %s\n", strings.Join(debug.HeapNames, ", "))
	fmt.Printf("  literals: %s\n", strings.Join(debug.LiteralNames, ", "))
}

// writeProgramDump prints the structured program representation.
func writeProgramDump(program *binfile.Program) {
	fmt.Printf("%+v\n", *program)
}

func shortHeapKind(arg binfile.Operand) string {
	if arg.Kind == ast.HEAP_VARIABLE {
		return "var"
	}
	//
	return "lit"
}

// terminalWidth determines the width of the attached terminal, falling back
// to a fixed width when output is redirected.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	//
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil {
			return width
		}
	}
	//
	return 80
}
