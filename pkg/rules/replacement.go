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
package rules

import (
	"strings"

	"github.com/consensys/go-wff/pkg/wff"
)

// Equivalence identifies a replacement rule from the fixed catalog.  Unlike
// inference rules, replacement rules are bidirectional and may be applied to
// any single subformula occurrence, not just whole lines.
type Equivalence uint8

const (
	// DoubleNegation: A ⇔ ¬¬A.
	DoubleNegation Equivalence = iota
	// DeMorgan: ¬(A∧B) ⇔ (¬A∨¬B) and ¬(A∨B) ⇔ (¬A∧¬B).
	DeMorgan
	// Commutation: (A∧B) ⇔ (B∧A) and (A∨B) ⇔ (B∨A).
	Commutation
	// Association: ((A∧B)∧C) ⇔ (A∧(B∧C)) and likewise for disjunction.
	Association
	// Distribution: (A∧(B∨C)) ⇔ ((A∧B)∨(A∧C)) and (A∨(B∧C)) ⇔ ((A∨B)∧(A∨C)).
	Distribution
	// Transposition: (A→B) ⇔ (¬B→¬A).
	Transposition
	// MaterialImplication: (A→B) ⇔ (¬A∨B).
	MaterialImplication
	// MaterialEquivalence: (A↔B) ⇔ ((A→B)∧(B→A)) ⇔ ((A∧B)∨(¬A∧¬B)).
	MaterialEquivalence
	// Exportation: ((A∧B)→C) ⇔ (A→(B→C)).
	Exportation
	// Tautology: A ⇔ (A∨A) and A ⇔ (A∧A).
	Tautology
)

// Equivalences returns the replacement rule catalog in canonical order.
func Equivalences() []Equivalence {
	return []Equivalence{
		DoubleNegation,
		DeMorgan,
		Commutation,
		Association,
		Distribution,
		Transposition,
		MaterialImplication,
		MaterialEquivalence,
		Exportation,
		Tautology,
	}
}

// String returns the customary name of this equivalence.
func (e Equivalence) String() string {
	switch e {
	case DoubleNegation:
		return "Double Negation"
	case DeMorgan:
		return "De Morgan's Theorem"
	case Commutation:
		return "Commutation"
	case Association:
		return "Association"
	case Distribution:
		return "Distribution"
	case Transposition:
		return "Transposition"
	case MaterialImplication:
		return "Material Implication"
	case MaterialEquivalence:
		return "Material Equivalence"
	case Exportation:
		return "Exportation"
	case Tautology:
		return "Tautology"
	}
	//
	panic("unknown equivalence")
}

// Mnemonic returns the customary abbreviation of this equivalence, as used
// when citing it within a proof.
func (e Equivalence) Mnemonic() string {
	switch e {
	case DoubleNegation:
		return "DN"
	case DeMorgan:
		return "DeM"
	case Commutation:
		return "Com"
	case Association:
		return "Assoc"
	case Distribution:
		return "Dist"
	case Transposition:
		return "Trans"
	case MaterialImplication:
		return "Impl"
	case MaterialEquivalence:
		return "Equiv"
	case Exportation:
		return "Exp"
	case Tautology:
		return "Taut"
	}
	//
	panic("unknown equivalence")
}

// ParseEquivalence identifies a replacement rule from its abbreviation,
// ignoring case.
func ParseEquivalence(mnemonic string) (Equivalence, bool) {
	for _, e := range Equivalences() {
		if strings.EqualFold(mnemonic, e.Mnemonic()) {
			return e, true
		}
	}
	//
	return 0, false
}

// ReplacementRule is the engine behind an equivalence.  It enumerates the
// formulas obtainable by rewriting a given formula at its root, in either
// direction.
type ReplacementRule interface {
	// Equivalence returns the equivalence this engine implements.
	Equivalence() Equivalence
	// Rewrites enumerates the formulas obtainable from a given formula by one
	// application of this equivalence at its root.
	Rewrites(node wff.Node) []wff.Node
}

// Replacement returns the engine implementing a given equivalence.
func Replacement(equivalence Equivalence) ReplacementRule {
	switch equivalence {
	case DoubleNegation:
		return &doubleNegation{}
	case DeMorgan:
		return &deMorgan{}
	case Commutation:
		return &commutation{}
	case Association:
		return &association{}
	case Distribution:
		return &distribution{}
	case Transposition:
		return &transposition{}
	case MaterialImplication:
		return &materialImplication{}
	case MaterialEquivalence:
		return &materialEquivalence{}
	case Exportation:
		return &exportation{}
	case Tautology:
		return &tautology{}
	}
	//
	panic("unknown equivalence")
}

// Replacements returns engines for the entire replacement catalog, in
// canonical order.
func Replacements() []ReplacementRule {
	var engines []ReplacementRule
	//
	for _, equivalence := range Equivalences() {
		engines = append(engines, Replacement(equivalence))
	}
	//
	return engines
}

// IsValidReplacement checks a single claimed replacement, as cited within a
// proof: is the conclusion obtainable from the cited formula by one
// application of the given equivalence, at any single position?
func IsValidReplacement(equivalence Equivalence, cited wff.Node, conclusion wff.Node) bool {
	return EquivalentUnder(Replacement(equivalence), cited, conclusion)
}

// EquivalentUnder determines whether one formula is obtainable from another
// by a single application of the given equivalence, at any one subformula
// position.
func EquivalentUnder(rule ReplacementRule, from wff.Node, to wff.Node) bool {
	// Rewrite applied at the root.
	for _, rewrite := range rule.Rewrites(from) {
		if rewrite.Equals(to) {
			return true
		}
	}
	// Otherwise the rewrite occurred beneath a common root.
	switch f := from.(type) {
	case *wff.Unary:
		if t, ok := to.(*wff.Unary); ok && f.Op == t.Op {
			return EquivalentUnder(rule, f.Child, t.Child)
		}
	case *wff.Binary:
		if t, ok := to.(*wff.Binary); ok && f.Op == t.Op {
			// When one side already agrees, the rewrite must sit on the
			// other.  Equal sides still recurse, since a rewrite can map a
			// subformula onto itself (e.g. commuting p∧p).
			if f.Left.Equals(t.Left) && EquivalentUnder(rule, f.Right, t.Right) {
				return true
			}
			//
			if f.Right.Equals(t.Right) && EquivalentUnder(rule, f.Left, t.Left) {
				return true
			}
		}
	}
	//
	return false
}

// RewritesWithin enumerates every formula obtainable from a given formula by
// one application of the given equivalence, at any single position.
func RewritesWithin(rule ReplacementRule, node wff.Node) []wff.Node {
	results := rule.Rewrites(node)
	//
	switch n := node.(type) {
	case *wff.Unary:
		for _, child := range RewritesWithin(rule, n.Child) {
			results = append(results, wff.Not(child))
		}
	case *wff.Binary:
		for _, left := range RewritesWithin(rule, n.Left) {
			results = append(results, wff.NewBinary(n.Op, left, n.Right))
		}
		//
		for _, right := range RewritesWithin(rule, n.Right) {
			results = append(results, wff.NewBinary(n.Op, n.Left, right))
		}
	}
	//
	return dedupNodes(results)
}

// ============================================================================
// Double Negation
// ============================================================================

type doubleNegation struct{}

// Equivalence implementation for ReplacementRule interface.
func (p *doubleNegation) Equivalence() Equivalence {
	return DoubleNegation
}

// Rewrites implementation for ReplacementRule interface.
func (p *doubleNegation) Rewrites(node wff.Node) []wff.Node {
	// Expansion applies to anything.
	results := []wff.Node{wff.Not(wff.Not(node))}
	//
	if inner, ok := wff.MatchNegation(node); ok {
		if stripped, ok := wff.MatchNegation(inner); ok {
			results = append(results, stripped)
		}
	}
	//
	return results
}

// ============================================================================
// De Morgan's Theorem
// ============================================================================

type deMorgan struct{}

// Equivalence implementation for ReplacementRule interface.
func (p *deMorgan) Equivalence() Equivalence {
	return DeMorgan
}

// Rewrites implementation for ReplacementRule interface.
func (p *deMorgan) Rewrites(node wff.Node) []wff.Node {
	var results []wff.Node
	// Push a negation inwards.
	if inner, ok := wff.MatchNegation(node); ok {
		if a, b, ok := wff.MatchBinary(inner, wff.AND); ok {
			results = append(results, wff.Or(wff.Not(a), wff.Not(b)))
		}
		//
		if a, b, ok := wff.MatchBinary(inner, wff.OR); ok {
			results = append(results, wff.And(wff.Not(a), wff.Not(b)))
		}
	}
	// Pull a pair of negations outwards.
	if a, b, ok := wff.MatchBinary(node, wff.OR); ok {
		if na, nb, ok := matchNegations(a, b); ok {
			results = append(results, wff.Not(wff.And(na, nb)))
		}
	}
	//
	if a, b, ok := wff.MatchBinary(node, wff.AND); ok {
		if na, nb, ok := matchNegations(a, b); ok {
			results = append(results, wff.Not(wff.Or(na, nb)))
		}
	}
	//
	return results
}

// ============================================================================
// Commutation
// ============================================================================

type commutation struct{}

// Equivalence implementation for ReplacementRule interface.
func (p *commutation) Equivalence() Equivalence {
	return Commutation
}

// Rewrites implementation for ReplacementRule interface.
func (p *commutation) Rewrites(node wff.Node) []wff.Node {
	var results []wff.Node
	//
	for _, op := range []uint{wff.AND, wff.OR} {
		if a, b, ok := wff.MatchBinary(node, op); ok {
			results = append(results, wff.NewBinary(op, b, a))
		}
	}
	//
	return results
}

// ============================================================================
// Association
// ============================================================================

type association struct{}

// Equivalence implementation for ReplacementRule interface.
func (p *association) Equivalence() Equivalence {
	return Association
}

// Rewrites implementation for ReplacementRule interface.
func (p *association) Rewrites(node wff.Node) []wff.Node {
	var results []wff.Node
	//
	for _, op := range []uint{wff.AND, wff.OR} {
		lhs, rhs, ok := wff.MatchBinary(node, op)
		if !ok {
			continue
		}
		// Rotate rightwards: ((A∧B)∧C) becomes (A∧(B∧C)).
		if a, b, ok := wff.MatchBinary(lhs, op); ok {
			results = append(results, wff.NewBinary(op, a, wff.NewBinary(op, b, rhs)))
		}
		// Rotate leftwards: (A∧(B∧C)) becomes ((A∧B)∧C).
		if b, c, ok := wff.MatchBinary(rhs, op); ok {
			results = append(results, wff.NewBinary(op, wff.NewBinary(op, lhs, b), c))
		}
	}
	//
	return results
}

// ============================================================================
// Distribution
// ============================================================================

type distribution struct{}

// Equivalence implementation for ReplacementRule interface.
func (p *distribution) Equivalence() Equivalence {
	return Distribution
}

// Rewrites implementation for ReplacementRule interface.
func (p *distribution) Rewrites(node wff.Node) []wff.Node {
	results := distribute(node, wff.AND, wff.OR)
	//
	return append(results, distribute(node, wff.OR, wff.AND)...)
}

// Distribute one connective over another: (A⊗(B⊕C)) ⇔ ((A⊗B)⊕(A⊗C)).
func distribute(node wff.Node, outer uint, inner uint) []wff.Node {
	var results []wff.Node
	// Distribute inwards.
	if a, bc, ok := wff.MatchBinary(node, outer); ok {
		if b, c, ok := wff.MatchBinary(bc, inner); ok {
			lhs := wff.NewBinary(outer, a, b)
			rhs := wff.NewBinary(outer, a, c)
			results = append(results, wff.NewBinary(inner, lhs, rhs))
		}
	}
	// Factor outwards, provided both occurrences agree.
	if lhs, rhs, ok := wff.MatchBinary(node, inner); ok {
		a1, b, ok1 := wff.MatchBinary(lhs, outer)
		a2, c, ok2 := wff.MatchBinary(rhs, outer)
		//
		if ok1 && ok2 && a1.Equals(a2) {
			results = append(results, wff.NewBinary(outer, a1, wff.NewBinary(inner, b, c)))
		}
	}
	//
	return results
}

// ============================================================================
// Transposition
// ============================================================================

type transposition struct{}

// Equivalence implementation for ReplacementRule interface.
func (p *transposition) Equivalence() Equivalence {
	return Transposition
}

// Rewrites implementation for ReplacementRule interface.
func (p *transposition) Rewrites(node wff.Node) []wff.Node {
	var results []wff.Node
	//
	if a, b, ok := wff.MatchBinary(node, wff.IMPLIES); ok {
		results = append(results, wff.Implies(wff.Not(b), wff.Not(a)))
		// Contract when both sides are already negated.
		if na, nb, ok := matchNegations(a, b); ok {
			results = append(results, wff.Implies(nb, na))
		}
	}
	//
	return results
}

// ============================================================================
// Material Implication
// ============================================================================

type materialImplication struct{}

// Equivalence implementation for ReplacementRule interface.
func (p *materialImplication) Equivalence() Equivalence {
	return MaterialImplication
}

// Rewrites implementation for ReplacementRule interface.
func (p *materialImplication) Rewrites(node wff.Node) []wff.Node {
	var results []wff.Node
	//
	if a, b, ok := wff.MatchBinary(node, wff.IMPLIES); ok {
		results = append(results, wff.Or(wff.Not(a), b))
	}
	//
	if a, b, ok := wff.MatchBinary(node, wff.OR); ok {
		if na, ok := wff.MatchNegation(a); ok {
			results = append(results, wff.Implies(na, b))
		}
	}
	//
	return results
}

// ============================================================================
// Material Equivalence
// ============================================================================

type materialEquivalence struct{}

// Equivalence implementation for ReplacementRule interface.
func (p *materialEquivalence) Equivalence() Equivalence {
	return MaterialEquivalence
}

// Rewrites implementation for ReplacementRule interface.
func (p *materialEquivalence) Rewrites(node wff.Node) []wff.Node {
	var results []wff.Node
	//
	if a, b, ok := wff.MatchBinary(node, wff.IFF); ok {
		results = append(results,
			wff.And(wff.Implies(a, b), wff.Implies(b, a)),
			wff.Or(wff.And(a, b), wff.And(wff.Not(a), wff.Not(b))))
	}
	// Contract a conjunction of converse implications.
	if lhs, rhs, ok := wff.MatchBinary(node, wff.AND); ok {
		a1, b1, ok1 := wff.MatchBinary(lhs, wff.IMPLIES)
		b2, a2, ok2 := wff.MatchBinary(rhs, wff.IMPLIES)
		//
		if ok1 && ok2 && a1.Equals(a2) && b1.Equals(b2) {
			results = append(results, wff.Iff(a1, b1))
		}
	}
	// Contract a disjunction of agreement cases.
	if lhs, rhs, ok := wff.MatchBinary(node, wff.OR); ok {
		a1, b1, ok1 := wff.MatchBinary(lhs, wff.AND)
		na, nb, ok2 := wff.MatchBinary(rhs, wff.AND)
		//
		if ok1 && ok2 {
			if a2, b2, ok := matchNegations(na, nb); ok && a1.Equals(a2) && b1.Equals(b2) {
				results = append(results, wff.Iff(a1, b1))
			}
		}
	}
	//
	return results
}

// ============================================================================
// Exportation
// ============================================================================

type exportation struct{}

// Equivalence implementation for ReplacementRule interface.
func (p *exportation) Equivalence() Equivalence {
	return Exportation
}

// Rewrites implementation for ReplacementRule interface.
func (p *exportation) Rewrites(node wff.Node) []wff.Node {
	var results []wff.Node
	//
	if lhs, rhs, ok := wff.MatchBinary(node, wff.IMPLIES); ok {
		// Export: ((A∧B)→C) becomes (A→(B→C)).
		if a, b, ok := wff.MatchBinary(lhs, wff.AND); ok {
			results = append(results, wff.Implies(a, wff.Implies(b, rhs)))
		}
		// Import: (A→(B→C)) becomes ((A∧B)→C).
		if b, c, ok := wff.MatchBinary(rhs, wff.IMPLIES); ok {
			results = append(results, wff.Implies(wff.And(lhs, b), c))
		}
	}
	//
	return results
}

// ============================================================================
// Tautology
// ============================================================================

type tautology struct{}

// Equivalence implementation for ReplacementRule interface.
func (p *tautology) Equivalence() Equivalence {
	return Tautology
}

// Rewrites implementation for ReplacementRule interface.
func (p *tautology) Rewrites(node wff.Node) []wff.Node {
	// Expansion applies to anything.
	results := []wff.Node{wff.Or(node, node), wff.And(node, node)}
	//
	for _, op := range []uint{wff.OR, wff.AND} {
		if a, b, ok := wff.MatchBinary(node, op); ok && a.Equals(b) {
			results = append(results, a)
		}
	}
	//
	return results
}

// ============================================================================
// Helpers
// ============================================================================

// Match a pair of formulas which are both negations, yielding their operands.
func matchNegations(lhs wff.Node, rhs wff.Node) (wff.Node, wff.Node, bool) {
	if a, ok := wff.MatchNegation(lhs); ok {
		if b, ok := wff.MatchNegation(rhs); ok {
			return a, b, true
		}
	}
	//
	return nil, nil, false
}

// Drop nodes which duplicate an earlier one, keeping the first.
func dedupNodes(nodes []wff.Node) []wff.Node {
	var unique []wff.Node
	//
	for _, node := range nodes {
		fresh := true
		//
		for _, u := range unique {
			if u.Equals(node) {
				fresh = false
				break
			}
		}
		//
		if fresh {
			unique = append(unique, node)
		}
	}
	//
	return unique
}
