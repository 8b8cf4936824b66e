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

	"github.com/consensys/go-wff/pkg/problem"
	"github.com/consensys/go-wff/pkg/proof"
	"github.com/consensys/go-wff/pkg/sem"
	"github.com/consensys/go-wff/pkg/wff"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] proof_file",
	Short: "check a proof against the rule catalog.",
	Long: `Check that every line of a proof follows from earlier lines by the rule it
cites.  When a problem is given as well, additionally check the proof solves
it: premises must be drawn from the problem, and the final line must be its
conclusion.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		ansiEnabled(cmd)
		//
		var (
			prf    = readProofFile(args[0])
			result proof.Result
			prob   *problem.Problem
		)
		//
		if cmd.Flags().Changed("problems") {
			p := readProblem(cmd)
			prob = &p
			result = proof.Solves(p, prf)
		} else {
			result = proof.Validate(prf)
		}
		// Report the verdict
		if result.Valid {
			fmt.Printf("%s %s\n", color.GreenString("✓"), result)
			return
		}
		//
		fmt.Printf("%s %s\n", color.RedString("✗"), result)
		// A failed solution is not always the prover's fault, so determine
		// whether the problem can be solved at all.
		if prob != nil {
			diagnoseProblem(*prob)
		}
		//
		os.Exit(1)
	},
}

// Report when a problem is beyond solving: no proof exists for a conclusion
// its premises do not entail, and the countermodel says why.
func diagnoseProblem(prob problem.Problem) {
	var premises []wff.Node
	//
	for _, premise := range prob.Premises {
		node, err := wff.Parse(premise)
		if err != nil {
			return
		}
		//
		premises = append(premises, node)
	}
	//
	conclusion, err := wff.Parse(prob.Conclusion)
	if err != nil {
		return
	}
	//
	if entailed, counter := sem.Entails(premises, conclusion); !entailed {
		fmt.Printf("note: the problem itself has no solution, since %s refutes it\n", counter)
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().String("problems", "", "check against a problem from this YAML problem set")
	checkCmd.Flags().Uint("problem", 1, "which problem of the set to check against")
}
