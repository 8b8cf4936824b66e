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

// Package sem answers semantic questions about formulas by lowering them
// into a SAT solver: whether a premise set entails a conclusion, whether it
// is satisfiable at all, and what a formula's truth table looks like.  The
// derivation machinery never needs any of this; it exists to diagnose
// hand-written problems and to let users interrogate formulas directly.
package sem

import (
	"sort"
	"strings"

	"github.com/consensys/go-wff/pkg/wff"
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Assignment maps sentence letters to truth values, reporting a model or
// countermodel found by the solver.
type Assignment map[rune]bool

// String renders an assignment with its letters in alphabetical order.
func (p Assignment) String() string {
	letters := make([]rune, 0, len(p))
	//
	for letter := range p {
		letters = append(letters, letter)
	}
	//
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	//
	var builder strings.Builder
	//
	for i, letter := range letters {
		if i != 0 {
			builder.WriteString(" ")
		}
		//
		builder.WriteRune(letter)
		builder.WriteString("=")
		builder.WriteString(symbolOf(p[letter]))
	}
	//
	return builder.String()
}

// Entails checks whether the premises semantically entail the conclusion,
// i.e. whether premises ∧ ¬conclusion is unsatisfiable.  When they do not, a
// countermodel is returned.
func Entails(premises []wff.Node, conclusion wff.Node) (bool, Assignment) {
	var (
		circ  = newCircuit()
		query = make([]z.Lit, 0, len(premises)+1)
	)
	//
	for _, premise := range premises {
		query = append(query, circ.lower(premise))
	}
	//
	query = append(query, circ.lower(conclusion).Not())
	//
	if model, ok := circ.solve(query); ok {
		return false, model
	}
	//
	return true, nil
}

// Consistent checks whether the premises are simultaneously satisfiable,
// returning a witnessing model when they are.
func Consistent(premises []wff.Node) (bool, Assignment) {
	if len(premises) == 0 {
		return true, Assignment{}
	}
	//
	var (
		circ  = newCircuit()
		query = make([]z.Lit, len(premises))
	)
	//
	for i, premise := range premises {
		query[i] = circ.lower(premise)
	}
	//
	if model, ok := circ.solve(query); ok {
		return true, model
	}
	//
	return false, nil
}

// ============================================================================
// Circuit lowering
// ============================================================================

// circuit accumulates formulas lowered into an and-inverter graph, mapping
// each sentence letter to one circuit input.
type circuit struct {
	c    *logic.C
	vars map[rune]z.Lit
}

func newCircuit() *circuit {
	return &circuit{logic.NewC(), make(map[rune]z.Lit)}
}

// Lower a formula to the literal representing it in the circuit.
func (p *circuit) lower(node wff.Node) z.Lit {
	switch n := node.(type) {
	case *wff.Var:
		lit, ok := p.vars[n.Name]
		//
		if !ok {
			lit = p.c.Lit()
			p.vars[n.Name] = lit
		}
		//
		return lit
	case *wff.Unary:
		return p.lower(n.Child).Not()
	case *wff.Binary:
		lhs, rhs := p.lower(n.Left), p.lower(n.Right)
		//
		switch n.Op {
		case wff.AND:
			return p.c.And(lhs, rhs)
		case wff.OR:
			return p.c.Or(lhs, rhs)
		case wff.IMPLIES:
			return p.c.Implies(lhs, rhs)
		default:
			return p.c.Xor(lhs, rhs).Not()
		}
	}
	//
	panic("unreachable")
}

// Check whether the conjunction of the given literals is satisfiable in the
// circuit, extracting the letter assignment when it is.  The root must be
// built before the circuit is clausified, or its definition never reaches
// the solver.
func (p *circuit) solve(query []z.Lit) (Assignment, bool) {
	root := p.c.Ands(query...)
	solver := gini.New()
	//
	p.c.ToCnf(solver)
	solver.Assume(root)
	//
	if solver.Solve() != 1 {
		return nil, false
	}
	//
	assignment := make(Assignment, len(p.vars))
	//
	for letter, lit := range p.vars {
		assignment[letter] = solver.Value(lit)
	}
	//
	return assignment, true
}

func symbolOf(value bool) string {
	if value {
		return "⊤"
	}
	//
	return "⊥"
}
