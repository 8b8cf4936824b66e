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
	"github.com/consensys/go-wff/pkg/problem"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags]",
	Short: "generate fresh derivation problems.",
	Long: `Generate derivation problems of a requested difficulty.  Every problem has
consistent premises and a conclusion derivable from them using the rule
catalog.  Problems are printed as sequents, or written out as a YAML problem
set when an output file is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			difficulty = GetUint(cmd, "difficulty")
			count      = GetUint(cmd, "count")
			output     = GetString(cmd, "output")
			generator  = gen.NewGenerator(newRand(cmd))
			set        = problem.Set{Name: GetString(cmd, "name")}
		)
		//
		for uint(len(set.Problems)) < count {
			prob, err := generator.Generate(difficulty)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			//
			log.Debugf("generated %s (difficulty %d)", prob, prob.Difficulty)
			set.Problems = append(set.Problems, *prob)
		}
		// Write out, or print as sequents
		if output != "" {
			if err := set.WriteFile(output); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		} else {
			for i, prob := range set.Problems {
				fmt.Printf("%d: %s\n", i+1, prob.String())
			}
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().UintP("difficulty", "d", 3, "set the target difficulty")
	generateCmd.Flags().UintP("count", "n", 1, "number of problems to generate")
	generateCmd.Flags().Uint64("seed", 0, "seed the generator for reproducible output")
	generateCmd.Flags().StringP("output", "o", "", "write problems to a YAML problem set")
	generateCmd.Flags().String("name", "", "name the written problem set")
}
