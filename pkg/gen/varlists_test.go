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
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-wff/pkg/wff"
)

func TestVars_0(t *testing.T) {
	vars := NewVarLists()
	//
	CheckAsserts(t, vars, "p")
	CheckRefuses(t, vars, "¬p")
	// The failed assertion must not have disturbed the commitment.
	CheckAsserts(t, vars, "p")
}

func TestVars_1(t *testing.T) {
	vars := NewVarLists()
	//
	CheckAsserts(t, vars, "¬q")
	CheckAsserts(t, vars, "¬q")
	CheckRefuses(t, vars, "q")
}

func TestVars_2(t *testing.T) {
	vars := NewVarLists()
	// Only literals can be asserted.
	CheckRefuses(t, vars, "(p∧q)")
	CheckRefuses(t, vars, "¬(p∨q)")
}

func TestVars_3(t *testing.T) {
	vars := NewVarLists()
	// Stacked negations cancel pairwise.
	CheckAsserts(t, vars, "¬¬p")
	CheckAsserts(t, vars, "p")
	CheckRefuses(t, vars, "¬p")
	CheckRefuses(t, vars, "¬¬¬p")
}

func TestVars_4(t *testing.T) {
	var (
		vars = NewVarLists()
		rng  = rand.New(rand.NewPCG(0, 0))
		seen = make(map[rune]bool)
	)
	// The whole alphabet comes out, each letter once.
	for range Alphabet {
		letter, ok := vars.Draw(rng)
		//
		if !ok {
			t.Fatal("alphabet exhausted early")
		} else if seen[letter] {
			t.Fatalf("'%c' drawn twice", letter)
		}
		//
		seen[letter] = true
	}
	//
	if _, ok := vars.Draw(rng); ok {
		t.Error("draw should fail once the alphabet is exhausted")
	}
}

func TestVars_5(t *testing.T) {
	var (
		vars = NewVarLists()
		rng  = rand.New(rand.NewPCG(0, 0))
	)
	//
	vars.Exclude(Alphabet[1:]...)
	//
	if letter, ok := vars.Draw(rng); !ok || letter != Alphabet[0] {
		t.Errorf("expected '%c' to remain available", Alphabet[0])
	}
	//
	if _, ok := vars.Draw(rng); ok {
		t.Error("nothing should remain available")
	}
}

func TestVars_6(t *testing.T) {
	var (
		vars = NewVarLists()
		rng  = rand.New(rand.NewPCG(0, 0))
	)
	// A drawn letter can still be committed with either polarity.
	letter, ok := vars.Draw(rng)
	if !ok {
		t.Fatal("draw failed on a full alphabet")
	}
	//
	literal := wff.Not(wff.NewVariable(letter))
	//
	if _, err := vars.UseAtomicAssertion(literal); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}
}

// ============================================================================
// Atomic assertion decomposition
// ============================================================================

func TestAssertions_0(t *testing.T) {
	CheckAssertions(t, "(¬p∧q)∨r", "¬p", "q", "r")
}

func TestAssertions_1(t *testing.T) {
	CheckAssertions(t, "p∧(q∧¬r)", "p", "q", "¬r")
}

func TestAssertions_2(t *testing.T) {
	// Implications, biconditionals and compound negations assert nothing.
	CheckAssertions(t, "p→q")
	CheckAssertions(t, "p↔q")
	CheckAssertions(t, "¬(p∧q)")
	CheckAssertions(t, "(p→q)∧r", "r")
}

func TestAssertions_3(t *testing.T) {
	CheckAssertions(t, "¬¬p", "¬¬p")
}

// ============================================================================
// Premise scanning
// ============================================================================

func TestCheckPremises_0(t *testing.T) {
	err := CheckPremises(MustParseAll(t, "p", "q∨r", "¬p"))
	//
	if err == nil {
		t.Fatal("contradictory premises should not pass")
	}
}

func TestCheckPremises_1(t *testing.T) {
	err := CheckPremises(MustParseAll(t, "p", "¬q∧r", "p→¬p"))
	//
	if err != nil {
		t.Errorf("unexpected failure: %v", err)
	}
}

func TestCheckPremises_2(t *testing.T) {
	// The scan is global, not pairwise.
	err := CheckPremises(MustParseAll(t, "p∨q", "r", "¬q∧s"))
	//
	if err == nil {
		t.Fatal("contradictory premises should not pass")
	}
}

// ============================================================================
// Helpers
// ============================================================================

func MustParse(t *testing.T, text string) wff.Node {
	t.Helper()
	//
	node, err := wff.ParseString(text)
	if err != nil {
		t.Fatalf("parsing %s: %v", text, err)
	}
	//
	return node
}

func MustParseAll(t *testing.T, texts ...string) []wff.Node {
	nodes := make([]wff.Node, len(texts))
	//
	for i, text := range texts {
		nodes[i] = MustParse(t, text)
	}
	//
	return nodes
}

func CheckAsserts(t *testing.T, vars *VarLists, text string) {
	t.Helper()
	//
	if _, err := vars.UseAtomicAssertion(MustParse(t, text)); err != nil {
		t.Errorf("asserting %s: %v", text, err)
	}
}

func CheckRefuses(t *testing.T, vars *VarLists, text string) {
	t.Helper()
	//
	if _, err := vars.UseAtomicAssertion(MustParse(t, text)); err == nil {
		t.Errorf("asserting %s should fail", text)
	}
}

func CheckAssertions(t *testing.T, text string, expected ...string) {
	t.Helper()
	//
	literals := AtomicAssertions(MustParse(t, text))
	//
	if len(literals) != len(expected) {
		t.Fatalf("%s asserts %d literals, expected %d", text, len(literals), len(expected))
	}
	//
	for i, literal := range literals {
		if literal.Formula().String() != expected[i] {
			t.Errorf("%s asserts %s, expected %s", text, literal.Formula().String(), expected[i])
		}
	}
}
