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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-zkas/pkg/binfile"
	"github.com/consensys/go-zkas/pkg/util/source"
	"github.com/consensys/go-zkas/pkg/zkas/compiler"
)

// Version is filled when building with make, but *not* when installing via
// "go install".
var Version string

// rootCmd is the compiler driver: it compiles one source file into a
// bytecode artifact.
var rootCmd = &cobra.Command{
	Use:   "zkas [flags] file.zk",
	Short: "A compiler for zero-knowledge circuit descriptions.",
	Long: `Compile a circuit description into its bytecode artifact, ready for
execution by the constraint-generation virtual machine.`,
	Args: cobra.ExactArgs(1),
	Run:  runCompileCmd,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main() and only needs to happen
// once.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func runCompileCmd(cmd *cobra.Command, args []string) {
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	var (
		input   = args[0]
		output  = GetString(cmd, "output")
		inspect = GetFlag(cmd, "inspect")
		examine = GetFlag(cmd, "examine")
		debug   = GetFlag(cmd, "debug")
	)
	//
	if output == "" {
		output = input + ".bin"
	}
	//
	srcfile, err := source.ReadFile(input)
	//
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	// Compile source, reporting the first diagnostic on failure.
	analysis, cerr := compiler.Compile(srcfile)
	//
	if cerr != nil {
		fmt.Fprintln(os.Stderr, cerr)
		os.Exit(1)
	}
	//
	program := compiler.Emit(analysis, debug)
	//
	if examine {
		writeProgramDump(program)
	}
	//
	if inspect {
		writeDisassembly(program)
	}
	//
	if err := os.WriteFile(output, binfile.Encode(program), 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	//
	log.Debugf("wrote %s", output)
}

//nolint:errcheck
func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.Flags().StringP("output", "o", "", "output bytecode path (default: input with .bin appended)")
	rootCmd.Flags().BoolP("inspect", "i", false, "print a human-readable decoding of the emitted bytecode")
	rootCmd.Flags().BoolP("examine", "e", false, "dump the structured program representation")
	rootCmd.Flags().BoolP("debug", "g", false, "include the debug section in the emitted bytecode")
}
