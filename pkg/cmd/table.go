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

	"github.com/consensys/go-wff/pkg/sem"
	"github.com/consensys/go-wff/pkg/util/termio"
	"github.com/consensys/go-wff/pkg/wff"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table [flags] formula",
	Short: "tabulate the truth table of a formula.",
	Long: `Print the truth table of a formula, along with its semantic verdict
(tautology, contradiction or contingent).  With --dimacs, instead print the
refutation query for the formula (any premises, conjoined with the negated
formula) in DIMACS CNF form for an external solver.`,
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
		var (
			ansi = ansiEnabled(cmd)
			node = parseFormula(args[0])
		)
		//
		if GetFlag(cmd, "dimacs") {
			premises := parseFormulas(GetStringArray(cmd, "premise"))
			//
			if err := sem.Dimacs(os.Stdout, premises, node); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			//
			return
		}
		//
		table, err := sem.TruthTable(node)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		printTable(node, table, ansi)
		// Report the verdict
		switch {
		case sem.Tautology(node):
			fmt.Println(color.GreenString("tautology"))
		case sem.Contradiction(node):
			fmt.Println(color.RedString("contradiction"))
		default:
			fmt.Println("contingent")
		}
	},
}

// Print a truth table with one column per sentence letter, the formula's
// outcome last.
func printTable(node wff.Node, table sem.Table, ansi bool) {
	var (
		width = uint(len(table.Vars)) + 1
		tp    = termio.NewTablePrinter(width, uint(len(table.Rows))+1)
		green = termio.NewAnsiEscape().FgColour(termio.TERM_GREEN).Build()
		red   = termio.NewAnsiEscape().FgColour(termio.TERM_RED).Build()
	)
	// Header row
	header := make([]string, width)
	//
	for i, v := range table.Vars {
		header[i] = string(v)
	}
	//
	header[width-1] = node.Formula().String()
	tp.SetRow(0, header...)
	// Value rows
	for i, row := range table.Rows {
		cells := make([]string, width)
		//
		for j, input := range row.Inputs {
			cells[j] = truthSymbol(input)
		}
		//
		cells[width-1] = truthSymbol(row.Value)
		tp.SetRow(uint(i)+1, cells...)
		// Colour the outcome
		if row.Value {
			tp.SetEscape(width-1, uint(i)+1, green)
		} else {
			tp.SetEscape(width-1, uint(i)+1, red)
		}
	}
	//
	tp.AnsiEscapes(ansi)
	tp.Print()
}

func truthSymbol(value bool) string {
	if value {
		return "⊤"
	}
	//
	return "⊥"
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().Bool("dimacs", false, "print the refutation query in DIMACS CNF form")
	tableCmd.Flags().StringArrayP("premise", "p", nil, "premise of the refutation query")
}
