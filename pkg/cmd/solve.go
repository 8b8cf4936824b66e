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

	"github.com/consensys/go-wff/pkg/gen"
	"github.com/consensys/go-wff/pkg/wff"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [flags] [premise...] conclusion",
	Short: "search for a derivation.",
	Long: `Search for a proof deriving a conclusion from premises using the rule
catalog.  The target comes either from a YAML problem set, or directly as
formulas on the command line with the conclusion last.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			ansi       = ansiEnabled(cmd)
			limit      = GetUint(cmd, "limit")
			premises   []wff.Formula
			conclusion wff.Formula
		)
		//
		switch {
		case cmd.Flags().Changed("problems"):
			prob := readProblem(cmd)
			premises, conclusion = prob.Premises, prob.Conclusion
		case len(args) >= 1:
			formulas := lexFormulas(args)
			premises = formulas[:len(formulas)-1]
			conclusion = formulas[len(formulas)-1]
		default:
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		prf, err := gen.Solve(premises, conclusion, limit)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		printProof(*prf, ansi)
	},
}

// Lex each formula given on the command line, exiting with a highlighted
// syntax error on the first failure.
func lexFormulas(args []string) []wff.Formula {
	formulas := make([]wff.Formula, len(args))
	//
	for i, arg := range args {
		formula, err := wff.LexString(arg)
		if err != nil {
			printSyntaxError(err)
			os.Exit(1)
		}
		//
		formulas[i] = formula
	}
	//
	return formulas
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().String("problems", "", "solve a problem from this YAML problem set")
	solveCmd.Flags().Uint("problem", 1, "which problem of the set to solve")
	solveCmd.Flags().Uint("limit", 128, "bound the number of formulas derived during search")
}
