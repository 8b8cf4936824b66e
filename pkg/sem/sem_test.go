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
package sem

import (
	"strings"
	"testing"

	"github.com/consensys/go-wff/pkg/wff"
	"github.com/google/go-cmp/cmp"
)

func TestEntails_0(t *testing.T) {
	entailed, model := Entails(MustParseAll(t, "p→q", "p"), MustParse(t, "q"))
	//
	if !entailed {
		t.Errorf("entailment should hold, countermodel %s", model)
	}
}

func TestEntails_1(t *testing.T) {
	entailed, model := Entails(MustParseAll(t, "p→q"), MustParse(t, "p"))
	//
	if entailed {
		t.Fatal("entailment should not hold")
	}
	//
	CheckModels(t, model, "p→q", true)
	CheckModels(t, model, "p", false)
}

func TestEntails_2(t *testing.T) {
	// Affirming the consequent.
	entailed, model := Entails(MustParseAll(t, "p→q", "q"), MustParse(t, "p"))
	//
	if entailed {
		t.Fatal("entailment should not hold")
	}
	//
	CheckModels(t, model, "(p→q)∧q", true)
	CheckModels(t, model, "p", false)
}

func TestEntails_3(t *testing.T) {
	// With no premises, entailment is just validity.
	if entailed, _ := Entails(nil, MustParse(t, "p∨¬p")); !entailed {
		t.Error("a tautology follows from nothing")
	}
	//
	if entailed, _ := Entails(nil, MustParse(t, "p")); entailed {
		t.Error("a contingent formula follows from nothing")
	}
}

func TestEntails_4(t *testing.T) {
	if entailed, _ := Entails(MustParseAll(t, "p↔q", "¬q"), MustParse(t, "¬p")); !entailed {
		t.Error("entailment should hold")
	}
}

// ============================================================================
// Consistency
// ============================================================================

func TestConsistent_0(t *testing.T) {
	consistent, model := Consistent(MustParseAll(t, "p", "p→q"))
	//
	if !consistent {
		t.Fatal("premises should be consistent")
	}
	//
	CheckModels(t, model, "p∧q", true)
}

func TestConsistent_1(t *testing.T) {
	if consistent, _ := Consistent(MustParseAll(t, "p", "¬p")); consistent {
		t.Error("premises should be inconsistent")
	}
}

func TestConsistent_2(t *testing.T) {
	consistent, model := Consistent(MustParseAll(t, "p∨q", "¬p"))
	//
	if !consistent {
		t.Fatal("premises should be consistent")
	}
	//
	CheckModels(t, model, "q∧¬p", true)
}

func TestConsistent_3(t *testing.T) {
	if consistent, _ := Consistent(nil); !consistent {
		t.Error("an empty premise set is consistent")
	}
}

func TestConsistent_4(t *testing.T) {
	// Inconsistency the literal-level scan cannot see.
	if consistent, _ := Consistent(MustParseAll(t, "p→q", "p→¬q", "p")); consistent {
		t.Error("premises should be inconsistent")
	}
}

// ============================================================================
// Truth tables
// ============================================================================

func TestTable_0(t *testing.T) {
	table := MustTable(t, "p∧q")
	//
	if string(table.Vars) != "pq" {
		t.Errorf("unexpected columns %s", string(table.Vars))
	}
	//
	CheckRows(t, table, true, false, false, false)
}

func TestTable_1(t *testing.T) {
	CheckRows(t, MustTable(t, "p→q"), true, false, true, true)
}

func TestTable_2(t *testing.T) {
	CheckRows(t, MustTable(t, "p↔q"), true, false, false, true)
}

func TestTable_3(t *testing.T) {
	// Rows enumerate assignments with the first letter slowest, ⊤ first.
	var inputs [][]bool
	//
	for _, row := range MustTable(t, "p∨q").Rows {
		inputs = append(inputs, row.Inputs)
	}
	//
	expected := [][]bool{{true, true}, {true, false}, {false, true}, {false, false}}
	//
	if diff := cmp.Diff(expected, inputs); diff != "" {
		t.Errorf("unexpected enumeration order (-want +got):\n%s", diff)
	}
}

func TestTable_4(t *testing.T) {
	var node wff.Node = wff.NewVariable('a')
	// Pile on letters until the table becomes intractable.
	for _, letter := range "bcdefghij" {
		node = wff.Or(node, wff.NewVariable(letter))
	}
	//
	if _, err := TruthTable(node); err == nil {
		t.Error("tabulating 10 letters should fail")
	}
}

func TestTautology_0(t *testing.T) {
	if !Tautology(MustParse(t, "p∨¬p")) {
		t.Error("excluded middle is a tautology")
	}
	//
	if Tautology(MustParse(t, "p")) || Contradiction(MustParse(t, "p")) {
		t.Error("a contingent formula is neither tautology nor contradiction")
	}
	//
	if !Contradiction(MustParse(t, "p∧¬p")) {
		t.Error("a contradiction should be recognized")
	}
}

func TestDimacs_0(t *testing.T) {
	var builder strings.Builder
	//
	err := Dimacs(&builder, MustParseAll(t, "p→q", "p"), MustParse(t, "q"))
	//
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
	//
	if !strings.Contains(builder.String(), "p cnf ") {
		t.Errorf("missing problem header:\n%s", builder.String())
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

func MustTable(t *testing.T, text string) Table {
	t.Helper()
	//
	table, err := TruthTable(MustParse(t, text))
	if err != nil {
		t.Fatalf("tabulating %s: %v", text, err)
	}
	//
	return table
}

// Check an assignment gives a formula an expected value.
func CheckModels(t *testing.T, assignment Assignment, text string, expected bool) {
	t.Helper()
	//
	model := make(map[string]bool, len(assignment))
	//
	for letter, value := range assignment {
		model[string(letter)] = value
	}
	//
	if translate(MustParse(t, text)).Eval(model) != expected {
		t.Errorf("%s should evaluate to %t under %s", text, expected, assignment)
	}
}

func CheckRows(t *testing.T, table Table, expected ...bool) {
	t.Helper()
	//
	if len(table.Rows) != len(expected) {
		t.Fatalf("got %d rows, expected %d", len(table.Rows), len(expected))
	}
	//
	for i, row := range table.Rows {
		if row.Value != expected[i] {
			t.Errorf("row %d evaluates to %t, expected %t", i, row.Value, expected[i])
		}
	}
}
