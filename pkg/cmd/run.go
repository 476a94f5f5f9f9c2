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
	"github.com/consensys/go-zkas/pkg/util/field"
	"github.com/consensys/go-zkas/pkg/vm"
	"github.com/consensys/go-zkas/pkg/vm/gadget"
)

// runCmd loads a bytecode artifact and a witness file, executes the virtual
// machine, and reports the resulting public input column.
var runCmd = &cobra.Command{
	Use:   "run [flags] file.zk.bin witness.json",
	Short: "execute a bytecode artifact against a set of witness values.",
	Long: `Decode a bytecode artifact, execute it against the witness values
given in a JSON file, and print the resulting public inputs in emission
order.`,
	Args: cobra.ExactArgs(2),
	Run:  runRunCmd,
}

func runRunCmd(cmd *cobra.Command, args []string) {
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	config := field.GetConfig(GetString(cmd, "field"))
	//
	if config == nil {
		fmt.Fprintf(os.Stderr, "unknown field %q\n", GetString(cmd, "field"))
		os.Exit(2)
	}
	//
	bytecode, err := os.ReadFile(args[0])
	//
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	//
	program, derr := binfile.Decode(bytecode, config)
	//
	if derr != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", args[0], derr)
		os.Exit(1)
	}
	//
	witnessJson, err := os.ReadFile(args[1])
	//
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	//
	witnesses, err := vm.ParseWitnessJSON(witnessJson)
	//
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", args[1], err)
		os.Exit(1)
	}
	//
	machine := vm.NewMachine(program, gadget.NewSet())
	//
	cs, rerr := machine.Run(witnesses)
	//
	if rerr != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", args[0], rerr)
		os.Exit(1)
	}
	//
	fmt.Println(cs)
	//
	for i, instance := range cs.Instances() {
		fmt.Printf("public[%d] = 0x%s\n", i, instance.Text(16))
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("field", "pallas", "prime field to execute over")
}
