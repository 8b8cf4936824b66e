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
package proof

import (
	"fmt"

	"github.com/consensys/go-wff/pkg/problem"
	"github.com/consensys/go-wff/pkg/rules"
	"github.com/consensys/go-wff/pkg/wff"
)

// Result reports the outcome of validating a proof: either every line
// checked out, or the number of the first offending line together with a
// diagnostic.
type Result struct {
	// Valid signals that every line checked out.
	Valid bool
	// Line is the first offending line, when invalid.
	Line uint
	// Message is the diagnostic for the offending line, when invalid.
	Message string
}

// String returns a one-line rendering of this result.
func (p Result) String() string {
	if p.Valid {
		return "valid"
	}
	//
	return fmt.Sprintf("line %d: %s", p.Line, p.Message)
}

// Validate checks a proof line by line, stopping at the first failure.  A
// line passes when it is numbered in sequence, sits at the top level, holds
// a well-formed formula, and its justification genuinely yields that formula
// from strictly earlier lines.
func Validate(prf Proof) Result {
	trees := make([]wff.Node, len(prf.Lines))
	//
	for i, line := range prf.Lines {
		number := uint(i) + 1
		//
		if line.Number != number {
			return invalid(number, "numbered %d, out of sequence", line.Number)
		}
		//
		if line.Depth != 0 {
			return invalid(number, "subproofs are not supported")
		}
		//
		tree, err := wff.Parse(line.Formula)
		if err != nil {
			return invalid(number, "not a well-formed formula (%s)", err.Message())
		}
		//
		trees[i] = tree
		//
		if result := checkJustification(trees, number, line.Justification); !result.Valid {
			return result
		}
	}
	//
	return valid()
}

// Solves checks that a proof constitutes a solution to a given problem: it
// validates, every premise line draws from the problem's premises, nothing
// is assumed, and the final line is the problem's conclusion.  Formulas are
// compared as parsed trees, so redundant parentheses never separate a
// solution from its problem.
func Solves(prob problem.Problem, prf Proof) Result {
	if result := Validate(prf); !result.Valid {
		return result
	}
	//
	if len(prf.Lines) == 0 {
		return invalid(0, "the proof is empty")
	}
	//
	premises := parseable(prob.Premises)
	//
	for _, line := range prf.Lines {
		switch line.Justification.(type) {
		case *Premise:
			// Cannot fail, since Validate already parsed every line.
			tree, _ := wff.Parse(line.Formula)
			//
			if !containsTree(premises, tree) {
				return invalid(line.Number, "%s is not amongst the problem's premises", line.Formula.String())
			}
		case *Assumption:
			return invalid(line.Number, "solutions cannot assume")
		}
	}
	//
	final, _ := prf.Final()
	tree, _ := wff.Parse(final)
	conclusion, err := wff.Parse(prob.Conclusion)
	//
	if err != nil || !tree.Equals(conclusion) {
		return invalid(uint(len(prf.Lines)), "concludes %s, not %s", final.String(), prob.Conclusion.String())
	}
	//
	return valid()
}

// ============================================================================
// Helpers
// ============================================================================

// Check the justification of the latest line, whose parsed formula sits last
// in trees.
func checkJustification(trees []wff.Node, number uint, justification Justification) Result {
	conclusion := trees[number-1]
	//
	switch j := justification.(type) {
	case *Premise, *Assumption:
		return valid()
	case *Inference:
		return checkInference(trees, number, j, conclusion)
	case *Replacement:
		return checkReplacement(trees, number, j, conclusion)
	case *Reiteration:
		return checkReiteration(trees, number, j, conclusion)
	case *ImplicationIntroduction:
		return invalid(number, "conditional proof is not supported")
	case *ReductioAdAbsurdum:
		return invalid(number, "indirect proof is not supported")
	}
	//
	return invalid(number, "missing justification")
}

func checkInference(trees []wff.Node, number uint, j *Inference, conclusion wff.Node) Result {
	if uint(len(j.Lines)) != j.Rule.Citations() {
		return invalid(number, "%s cites %d lines, not %d", j.Rule.Mnemonic(), j.Rule.Citations(), len(j.Lines))
	}
	//
	cited, result := citedTrees(trees, number, j.Lines)
	if !result.Valid {
		return result
	}
	//
	if !rules.IsValidInference(j.Rule, cited, conclusion) {
		return invalid(number, "does not follow from the cited lines by %s", j.Rule)
	}
	//
	return valid()
}

func checkReplacement(trees []wff.Node, number uint, j *Replacement, conclusion wff.Node) Result {
	cited, result := citedTrees(trees, number, []uint{j.Line})
	if !result.Valid {
		return result
	}
	//
	if !rules.IsValidReplacement(j.Rule, cited[0], conclusion) {
		return invalid(number, "is not obtained from line %d by %s", j.Line, j.Rule)
	}
	//
	return valid()
}

func checkReiteration(trees []wff.Node, number uint, j *Reiteration, conclusion wff.Node) Result {
	cited, result := citedTrees(trees, number, []uint{j.Line})
	if !result.Valid {
		return result
	}
	//
	if !cited[0].Equals(conclusion) {
		return invalid(number, "does not repeat line %d", j.Line)
	}
	//
	return valid()
}

// Resolve cited line numbers into their parsed formulas, insisting each is
// strictly earlier than the current line.
func citedTrees(trees []wff.Node, number uint, citations []uint) ([]wff.Node, Result) {
	var cited []wff.Node
	//
	for _, citation := range citations {
		if citation == 0 || citation >= number {
			return nil, invalid(number, "cites line %d, which is not strictly earlier", citation)
		}
		//
		cited = append(cited, trees[citation-1])
	}
	//
	return cited, valid()
}

// Parse whichever of the given formulas are well formed.
func parseable(formulas []wff.Formula) []wff.Node {
	var trees []wff.Node
	//
	for _, formula := range formulas {
		if tree, err := wff.Parse(formula); err == nil {
			trees = append(trees, tree)
		}
	}
	//
	return trees
}

func containsTree(trees []wff.Node, tree wff.Node) bool {
	for _, t := range trees {
		if t.Equals(tree) {
			return true
		}
	}
	//
	return false
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(line uint, format string, args ...any) Result {
	return Result{false, line, fmt.Sprintf(format, args...)}
}
