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
	"io"

	"github.com/consensys/go-wff/pkg/wff"
	"github.com/crillab/gophersat/bf"
	"github.com/pkg/errors"
)

// Cap on the number of sentence letters a truth table enumerates.
const maxTableVars = 8

// Table is the truth table of one formula: the letters heading its columns,
// in alphabetical order, and one row per assignment.
type Table struct {
	Vars []rune
	Rows []Row
}

// Row is one line of a truth table: the truth values of the letters, in
// column order, and the value the formula takes under them.
type Row struct {
	Inputs []bool
	Value  bool
}

// TruthTable enumerates a formula's value under every assignment of its
// letters, true rows first in the leftmost column.  Fails when the formula
// has too many letters to tabulate.
func TruthTable(node wff.Node) (Table, error) {
	letters := wff.Variables(node)
	//
	if len(letters) > maxTableVars {
		return Table{}, errors.Errorf("%d sentence letters is too many to tabulate", len(letters))
	}
	//
	var (
		formula = translate(node)
		n       = len(letters)
		table   = Table{Vars: letters}
	)
	//
	for mask := 0; mask < 1<<n; mask++ {
		var (
			inputs = make([]bool, n)
			model  = make(map[string]bool, n)
		)
		//
		for i, letter := range letters {
			inputs[i] = mask>>(n-1-i)&1 == 0
			model[string(letter)] = inputs[i]
		}
		//
		table.Rows = append(table.Rows, Row{inputs, formula.Eval(model)})
	}
	//
	return table, nil
}

// Tautology checks whether a formula holds under every assignment, by asking
// the solver for a falsifying one.
func Tautology(node wff.Node) bool {
	return bf.Solve(bf.Not(translate(node))) == nil
}

// Contradiction checks whether a formula holds under no assignment.
func Contradiction(node wff.Node) bool {
	return bf.Solve(translate(node)) == nil
}

// Dimacs writes the clausal form of the query "do the premises entail the
// conclusion" to a writer in DIMACS format; the query is unsatisfiable
// exactly when the entailment holds.
func Dimacs(w io.Writer, premises []wff.Node, conclusion wff.Node) error {
	parts := make([]bf.Formula, 0, len(premises)+1)
	//
	for _, premise := range premises {
		parts = append(parts, translate(premise))
	}
	//
	parts = append(parts, bf.Not(translate(conclusion)))
	//
	return bf.Dimacs(bf.And(parts...), w)
}

// Translate a formula for the clausal solver, naming each letter after
// itself.
func translate(node wff.Node) bf.Formula {
	switch n := node.(type) {
	case *wff.Var:
		return bf.Var(string(n.Name))
	case *wff.Unary:
		return bf.Not(translate(n.Child))
	case *wff.Binary:
		lhs, rhs := translate(n.Left), translate(n.Right)
		//
		switch n.Op {
		case wff.AND:
			return bf.And(lhs, rhs)
		case wff.OR:
			return bf.Or(lhs, rhs)
		case wff.IMPLIES:
			return bf.Implies(lhs, rhs)
		default:
			return bf.Eq(lhs, rhs)
		}
	}
	//
	panic("unreachable")
}
