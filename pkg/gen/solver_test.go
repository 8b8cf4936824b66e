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
package gen

import (
	"testing"

	"github.com/consensys/go-wff/pkg/problem"
	"github.com/consensys/go-wff/pkg/proof"
	"github.com/consensys/go-wff/pkg/wff"
)

func TestSolve_0(t *testing.T) {
	prob := NewProblem(t, "q", "p→q", "p")
	//
	CheckSolvable(t, prob, 64)
}

func TestSolve_1(t *testing.T) {
	prob := NewProblem(t, "r", "p→q", "q→r", "p")
	//
	CheckSolvable(t, prob, 64)
}

func TestSolve_2(t *testing.T) {
	// A conclusion amongst the premises is simply repeated.
	prob := NewProblem(t, "q", "p", "q")
	//
	prf := CheckSolvable(t, prob, 64)
	//
	last := prf.Lines[len(prf.Lines)-1]
	//
	if _, ok := last.Justification.(*proof.Reiteration); !ok {
		t.Errorf("expected a reiteration, got %s", last.Justification)
	}
}

func TestSolve_3(t *testing.T) {
	// A dilemma whose conjunction of implications is nowhere given: the
	// derivation must interpose it.
	prob := NewProblem(t, "q∨s", "p→q", "r→s", "p∨r")
	//
	prf := CheckSolvable(t, prob, 64)
	//
	CheckDerives(t, prf, "(p→q)∧(r→s)")
}

func TestSolve_4(t *testing.T) {
	// The drawn disjunct occurs only in the conclusion.
	prob := NewProblem(t, "p∨q", "p")
	//
	CheckSolvable(t, prob, 64)
}

func TestSolve_5(t *testing.T) {
	// Here even the dilemma's disjunction must be assembled, out of the two
	// implication antecedents.
	prob := NewProblem(t, "q∨s", "p→q", "r→s", "p")
	//
	CheckSolvable(t, prob, 64)
}

func TestSolve_6(t *testing.T) {
	prob := NewProblem(t, "p∧r", "p∧q", "q→r")
	//
	CheckSolvable(t, prob, 64)
}

func TestSolve_7(t *testing.T) {
	prob := NewProblem(t, "¬p", "p→q", "¬q")
	//
	CheckSolvable(t, prob, 64)
}

func TestSolve_8(t *testing.T) {
	prob := NewProblem(t, "q", "p∨q", "¬p")
	//
	CheckSolvable(t, prob, 64)
}

// ============================================================================
// Negative tests
// ============================================================================

func TestSolveErr_0(t *testing.T) {
	prob := NewProblem(t, "q", "p")
	//
	if _, err := Solve(prob.Premises, prob.Conclusion, 64); err == nil {
		t.Error("should not find a derivation")
	}
}

func TestSolveErr_1(t *testing.T) {
	// The limit has already been hit by the premises alone.
	prob := NewProblem(t, "q", "p→q", "p")
	//
	if _, err := Solve(prob.Premises, prob.Conclusion, 2); err == nil {
		t.Error("should not find a derivation within the limit")
	}
}

func TestSolveErr_2(t *testing.T) {
	premises := []wff.Formula{MustLex(t, "p∧")}
	//
	if _, err := Solve(premises, MustLex(t, "p"), 64); err == nil {
		t.Error("an ill-formed premise should fail")
	}
}

// ============================================================================
// Helpers
// ============================================================================

func MustLex(t *testing.T, text string) wff.Formula {
	t.Helper()
	//
	formula, err := wff.LexString(text)
	if err != nil {
		t.Fatalf("lexing %s: %v", text, err)
	}
	//
	return formula
}

func NewProblem(t *testing.T, conclusion string, premises ...string) problem.Problem {
	prob := problem.Problem{Conclusion: MustLex(t, conclusion)}
	//
	for _, premise := range premises {
		prob.Premises = append(prob.Premises, MustLex(t, premise))
	}
	//
	return prob
}

// Check a problem is solvable, and that the resulting derivation genuinely
// solves it, returning the derivation for further inspection.
func CheckSolvable(t *testing.T, prob problem.Problem, limit uint) proof.Proof {
	t.Helper()
	//
	prf, err := Solve(prob.Premises, prob.Conclusion, limit)
	if err != nil {
		t.Fatalf("solving %s: %v", prob.String(), err)
	}
	//
	if result := proof.Solves(prob, *prf); !result.Valid {
		t.Fatalf("solving %s produced a bad derivation (%s):\n%s", prob.String(), result.String(), prf.String())
	}
	//
	return *prf
}

// Check some line of a derivation holds the given formula.
func CheckDerives(t *testing.T, prf proof.Proof, text string) {
	t.Helper()
	//
	expected := MustParse(t, text)
	//
	for _, line := range prf.Lines {
		if tree, err := wff.Parse(line.Formula); err == nil && tree.Equals(expected) {
			return
		}
	}
	//
	t.Errorf("no line derives %s:\n%s", text, prf.String())
}
