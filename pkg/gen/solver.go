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
	"slices"

	"github.com/consensys/go-wff/pkg/proof"
	"github.com/consensys/go-wff/pkg/rules"
	"github.com/consensys/go-wff/pkg/wff"
	"github.com/pkg/errors"
)

// Solve searches for a derivation of the conclusion from the premises,
// closing the premise set forwards under the rule catalog until the
// conclusion appears, the pool stops growing, or the pool reaches the given
// limit.  On success the derivation is returned as a checkable proof:
// premise lines first, then just the inference lines the conclusion actually
// depends on, with citations in each rule's pattern order.
func Solve(premises []wff.Formula, conclusion wff.Formula, limit uint) (*proof.Proof, error) {
	goal, serr := wff.Parse(conclusion)
	if serr != nil {
		return nil, errors.Wrap(serr, "conclusion")
	}
	//
	var search searcher
	//
	search.init(goal)
	//
	for i, premise := range premises {
		node, serr := wff.Parse(premise)
		if serr != nil {
			return nil, errors.Wrapf(serr, "premise %d", i+1)
		}
		//
		search.add(node, 0, nil)
	}
	//
	npremises := len(search.items)
	//
	found := search.close(goal, limit)
	if found < 0 {
		return nil, errors.New("no derivation found within the search limit")
	}
	//
	prf := search.reconstruct(found, npremises)
	//
	return &prf, nil
}

// ============================================================================
// Search state
// ============================================================================

// One formula in the search pool, together with the rule application that
// produced it.  Premises carry no supports; for derived entries, supports
// index the pool in the producing rule's pattern order.
type item struct {
	formula  wff.Node
	rule     rules.Rule
	supports []int
}

// searcher holds the growing pool plus the relevance machinery that keeps
// the pool-inflating rules in check: conjunction and addition may only
// conclude formulas the problem itself mentions, except that addition may
// also assemble a disjunction of two implication antecedents, which is the
// fodder a constructive dilemma strikes.
type searcher struct {
	items []item
	// Map from canonical text to pool index.
	index map[string]int
	// Canonical texts of every subformula seen so far.
	relevant map[string]bool
	// Canonical texts of the antecedents of every implication seen so far.
	antes map[string]bool
	// Formulas addition may draw as its unasserted disjunct beyond the pool
	// itself: the goal's subformulas plus every implication antecedent.
	// Nothing here is ever cited, since a drawn disjunct carries no truth.
	material []wff.Node
	drawn    map[string]bool
}

func (p *searcher) init(goal wff.Node) {
	p.index = make(map[string]int)
	p.relevant = make(map[string]bool)
	p.antes = make(map[string]bool)
	p.drawn = make(map[string]bool)
	// Steer the search towards the conclusion's material.
	p.admitSubformulas(goal)
}

// Append a formula to the pool unless already present, feeding the relevance
// sets as a side effect.  Reports whether the pool grew.
func (p *searcher) add(formula wff.Node, rule rules.Rule, supports []int) bool {
	key := canon(formula)
	//
	if _, ok := p.index[key]; ok {
		return false
	}
	//
	p.index[key] = len(p.items)
	p.items = append(p.items, item{formula, rule, supports})
	//
	p.admitSubformulas(formula)
	p.admitAntecedents(formula)
	//
	return true
}

func (p *searcher) formulas() []wff.Node {
	formulas := make([]wff.Node, len(p.items))
	//
	for i, it := range p.items {
		formulas[i] = it.formula
	}
	//
	return formulas
}

// Close the pool under the rule catalog, pass by pass, until the goal turns
// up (returning its pool index), nothing new can be derived, or the pool
// hits the limit (returning negative).
func (p *searcher) close(goal wff.Node, limit uint) int {
	target := canon(goal)
	//
	if index, ok := p.index[target]; ok {
		return index
	}
	//
	for uint(len(p.items)) < limit {
		progress := false
		known := p.formulas()
		// Addition alone may reach beyond the pool for its drawn disjunct.
		extended := append(slices.Clone(known), p.material...)
		//
		for _, engine := range rules.ForwardRules() {
			pool := known
			//
			if engine.Rule() == rules.Addition {
				pool = extended
			}
			//
			for _, app := range engine.Generate(pool) {
				if uint(len(p.items)) >= limit {
					return -1
				}
				//
				if !p.admits(app) {
					continue
				}
				//
				if p.add(app.Conclusion, app.Rule, p.supportsOf(app)) {
					progress = true
					//
					if canon(app.Conclusion) == target {
						return len(p.items) - 1
					}
				}
			}
		}
		//
		if !progress {
			break
		}
	}
	//
	return -1
}

// Check whether a rule application is worth pooling.  The detachment-style
// rules never inflate the pool, so they pass unconditionally; conjunction
// and addition can grow formulas without bound, so they are held to the
// relevance sets.
func (p *searcher) admits(app rules.Application) bool {
	if app.Conclusion.Formula().Len() > maxTiles {
		return false
	}
	//
	switch app.Rule {
	case rules.Conjunction:
		return p.relevant[canon(app.Conclusion)]
	case rules.Addition:
		// The asserted disjunct must actually be in the pool; the drawn one
		// may have come from the extended material.
		if _, ok := p.index[canon(app.Premises[0])]; !ok {
			return false
		} else if p.relevant[canon(app.Conclusion)] {
			return true
		}
		//
		lhs, rhs, ok := wff.MatchBinary(app.Conclusion, wff.OR)
		//
		return ok && p.antes[canon(lhs)] && p.antes[canon(rhs)]
	default:
		return true
	}
}

// Resolve an application's premises to pool indices, in pattern order.  An
// addition depends only on its asserted disjunct.
func (p *searcher) supportsOf(app rules.Application) []int {
	premises := app.Premises
	//
	if app.Rule == rules.Addition {
		premises = premises[:1]
	}
	//
	supports := make([]int, len(premises))
	//
	for i, premise := range premises {
		supports[i] = p.index[canon(premise)]
	}
	//
	return supports
}

// ============================================================================
// Proof reconstruction
// ============================================================================

// Rebuild a checkable proof from the pool: every premise gets a line, then
// the derived entries the goal transitively depends on follow in pool order,
// so citations always point strictly backwards.  A dilemma derived straight
// from two implications gets its conjunction line interposed, since the rule
// cites the conjoined form.
func (p *searcher) reconstruct(found int, npremises int) proof.Proof {
	var (
		prf    proof.Proof
		needed = make([]bool, len(p.items))
		// Map from canonical text to emitted line number.
		lines = make(map[string]uint)
	)
	//
	p.mark(found, needed)
	//
	for i := 0; i < npremises; i++ {
		formula := p.items[i].formula
		lines[canon(formula)] = prf.Append(formula.Formula(), &proof.Premise{})
	}
	// The goal may itself be a premise, in which case it is repeated.
	if found < npremises {
		formula := p.items[found].formula
		prf.Append(formula.Formula(), &proof.Reiteration{Line: lines[canon(formula)]})
		//
		return prf
	}
	//
	for i := npremises; i < len(p.items); i++ {
		if !needed[i] {
			continue
		}
		//
		it := p.items[i]
		//
		if it.rule == rules.ConstructiveDilemma && len(it.supports) == 3 {
			p.appendDilemma(&prf, it, lines)
			continue
		}
		//
		citations := make([]uint, len(it.supports))
		//
		for j, support := range it.supports {
			citations[j] = lines[canon(p.items[support].formula)]
		}
		//
		lines[canon(it.formula)] = prf.Append(it.formula.Formula(), &proof.Inference{Rule: it.rule, Lines: citations})
	}
	//
	return prf
}

// Emit a dilemma derived straight from two implications: first the
// conjunction of the implications (unless some earlier line already holds
// it), then the dilemma citing that conjunction and the disjunction.
func (p *searcher) appendDilemma(prf *proof.Proof, it item, lines map[string]uint) {
	var (
		first       = p.items[it.supports[0]].formula
		second      = p.items[it.supports[1]].formula
		disjunction = p.items[it.supports[2]].formula
		conjunction = wff.And(first, second)
	)
	//
	number, ok := lines[canon(conjunction)]
	//
	if !ok {
		citations := []uint{lines[canon(first)], lines[canon(second)]}
		number = prf.Append(conjunction.Formula(), &proof.Inference{Rule: rules.Conjunction, Lines: citations})
		lines[canon(conjunction)] = number
	}
	//
	citations := []uint{number, lines[canon(disjunction)]}
	lines[canon(it.formula)] = prf.Append(it.formula.Formula(), &proof.Inference{Rule: rules.ConstructiveDilemma, Lines: citations})
}

// Mark an entry and, transitively, everything it depends on.
func (p *searcher) mark(index int, needed []bool) {
	if needed[index] {
		return
	}
	//
	needed[index] = true
	//
	for _, support := range p.items[index].supports {
		p.mark(support, needed)
	}
}

// ============================================================================
// Relevance sets
// ============================================================================

// Record the canonical text of a formula and all its subformulas, which also
// become drawable disjunct material.
func (p *searcher) admitSubformulas(node wff.Node) {
	p.relevant[canon(node)] = true
	p.admitMaterial(node)
	//
	switch n := node.(type) {
	case *wff.Unary:
		p.admitSubformulas(n.Child)
	case *wff.Binary:
		p.admitSubformulas(n.Left)
		p.admitSubformulas(n.Right)
	}
}

// Record the antecedent of an implication, descending through conjunctions
// so the components of a conjoined pair of implications count too.
func (p *searcher) admitAntecedents(node wff.Node) {
	if lhs, _, ok := wff.MatchBinary(node, wff.IMPLIES); ok {
		p.antes[canon(lhs)] = true
		p.admitMaterial(lhs)
		//
		return
	}
	//
	if lhs, rhs, ok := wff.MatchBinary(node, wff.AND); ok {
		p.admitAntecedents(lhs)
		p.admitAntecedents(rhs)
	}
}

func (p *searcher) admitMaterial(node wff.Node) {
	key := canon(node)
	//
	if !p.drawn[key] {
		p.drawn[key] = true
		p.material = append(p.material, node)
	}
}

func canon(node wff.Node) string {
	return node.Formula().String()
}
