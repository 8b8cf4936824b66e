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

	"github.com/consensys/go-wff/pkg/problem"
	"github.com/consensys/go-wff/pkg/proof"
	"github.com/consensys/go-wff/pkg/util/source"
	"github.com/consensys/go-wff/pkg/util/termio"
	"github.com/consensys/go-wff/pkg/wff"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exit if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetInt gets an expected int flag, or exit if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected uint flag, or exit if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint64 gets an expected uint64 flag, or exit if an error arises.
func GetUint64(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string flag, or exit if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetStringArray gets an expected string array flag, or exit if an error
// arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Determine whether ANSI escapes should be used on stdout, honouring both the
// --no-ansi flag and redirected output.  The colour package is kept in
// agreement, so verdicts and tables degrade together.
func ansiEnabled(cmd *cobra.Command) bool {
	enable := !GetFlag(cmd, "no-ansi") && isatty.IsTerminal(os.Stdout.Fd())
	//
	color.NoColor = !enable
	//
	return enable
}

// Construct the random source backing a command, seeded deterministically
// when --seed is given so runs can be reproduced.
func newRand(cmd *cobra.Command) *rand.Rand {
	if cmd.Flags().Changed("seed") {
		return rand.New(rand.NewPCG(GetUint64(cmd, "seed"), 0))
	}
	//
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Read and parse a proof file, reporting any syntax error and exiting
// directly.
func readProofFile(filename string) proof.Proof {
	srcfile, err := source.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	prf, serr := proof.ParseProof(srcfile)
	if serr != nil {
		printSyntaxError(serr)
		os.Exit(1)
	}
	//
	return prf
}

// Select a problem out of a problem-set file, as identified by the --problems
// and --problem flags, exiting directly on any failure.
func readProblem(cmd *cobra.Command) problem.Problem {
	var (
		filename = GetString(cmd, "problems")
		k        = GetUint(cmd, "problem")
	)
	//
	set, err := problem.ReadSetFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	prob, err := set.Problem(k)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	return prob
}

// Parse a formula given on the command line, exiting with a highlighted
// syntax error when it is ill-formed.
func parseFormula(text string) wff.Node {
	node, err := wff.ParseString(text)
	if err != nil {
		printSyntaxError(err)
		os.Exit(1)
	}
	//
	return node
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	var (
		srcfile = err.SourceFile()
		line    = err.FirstEnclosingLine()
		span    = err.Span()
	)
	// Determine extent of highlight within the line
	start := span.Start() - line.Start()
	width := max(1, min(span.Length(), len(line.String())-start))
	// Print error + line number
	fmt.Printf("%s:%d: %s\n", srcfile.Filename(), line.Number(), err.Message())
	// Print line
	fmt.Println(line.String())
	// Print highlight
	fmt.Print(strings.Repeat(" ", start))
	fmt.Println(strings.Repeat("^", width))
}

// Print a proof as an aligned table of numbered lines.
func printProof(prf proof.Proof, ansi bool) {
	tp := termio.NewTablePrinter(3, uint(len(prf.Lines)))
	//
	for i, line := range prf.Lines {
		tp.SetRow(uint(i), fmt.Sprintf("%d.", line.Number), line.Formula.String(), line.Justification.String())
	}
	//
	tp.SetAlignment(0, termio.AlignRight)
	tp.SetMaxWidths(termio.Width())
	tp.AnsiEscapes(ansi)
	tp.Print()
}
