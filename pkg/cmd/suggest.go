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
	"math/rand/v2"
	"os"
	"strings"

	"github.com/consensys/go-wff/pkg/gen"
	"github.com/consensys/go-wff/pkg/rules"
	"github.com/consensys/go-wff/pkg/util/termio"
	"github.com/consensys/go-wff/pkg/wff"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [flags]",
	Short: "suggest next steps for a derivation.",
	Long: `Suggest derivation steps.  Given premises, list every formula obtainable
from them by a single application of the rule catalog.  Given a goal, list
strategies for working backwards from it instead: premises to grant outright,
plus subgoals which together close the gap.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			ansi     = ansiEnabled(cmd)
			premises = parseFormulas(GetStringArray(cmd, "premise"))
		)
		//
		if cmd.Flags().Changed("goal") {
			goal := parseFormula(GetString(cmd, "goal"))
			suggestBackward(goal, premises, newRand(cmd))
		} else if len(premises) > 0 {
			suggestForward(premises, ansi)
		} else {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
	},
}

// List every formula a single rule application yields from the given
// premises.
func suggestForward(premises []wff.Node, ansi bool) {
	apps := rules.Consequences(premises)
	//
	if len(apps) == 0 {
		fmt.Println("nothing follows in one step")
		return
	}
	//
	tp := termio.NewTablePrinter(3, uint(len(apps)))
	//
	for i, app := range apps {
		tp.SetRow(uint(i), app.Conclusion.Formula().String(), app.Rule.String(), formulaList(app.Premises))
	}
	//
	tp.SetMaxWidths(termio.Width())
	tp.AnsiEscapes(ansi)
	tp.Print()
}

// List strategies for deriving the goal backwards.  Fresh letters are drawn
// outside those already in play, so invented formulas never collide with the
// premises or the goal.
func suggestBackward(goal wff.Node, premises []wff.Node, rng *rand.Rand) {
	vars := gen.NewVarLists()
	// Fence off the letters in play
	vars.Exclude(wff.Variables(goal)...)
	//
	for _, premise := range premises {
		vars.Exclude(wff.Variables(premise)...)
	}
	//
	suggested := 0
	//
	for _, strategy := range rules.BackwardRules() {
		if !strategy.CanApply(goal) {
			continue
		}
		//
		grants, subgoals, err := strategy.Apply(goal, vars, rng)
		if err != nil {
			log.Debugf("skipping %s: %v", strategy.Name(), err)
			continue
		}
		//
		fmt.Printf("%s: grant %s, then derive %s\n", strategy.Name(), formulaList(grants), formulaList(subgoals))
		//
		suggested++
	}
	//
	if suggested == 0 {
		fmt.Println("no strategy applies to this goal")
	}
}

// Parse each formula given on the command line.
func parseFormulas(args []string) []wff.Node {
	nodes := make([]wff.Node, len(args))
	//
	for i, arg := range args {
		nodes[i] = parseFormula(arg)
	}
	//
	return nodes
}

// Render a list of formulas for display.
func formulaList(nodes []wff.Node) string {
	if len(nodes) == 0 {
		return "nothing"
	}
	//
	var parts []string
	//
	for _, node := range nodes {
		parts = append(parts, node.Formula().String())
	}
	//
	return strings.Join(parts, ", ")
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().StringArrayP("premise", "p", nil, "formula already established")
	suggestCmd.Flags().String("goal", "", "formula to work backwards from")
	suggestCmd.Flags().Uint64("seed", 0, "seed fresh-letter choice for reproducible output")
}
