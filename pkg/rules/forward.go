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
	"github.com/consensys/go-wff/pkg/wff"
)

// ForwardRule is the engine behind an inference rule.  It can enumerate every
// way its rule fires over a pool of known formulas, and it can check a single
// claimed application, as cited within a proof.
type ForwardRule interface {
	// Rule returns the rule this engine implements.
	Rule() Rule
	// CanApply determines whether this rule fires at all over the given pool
	// of known formulas.
	CanApply(known []wff.Node) bool
	// Generate enumerates the applications of this rule over the given pool
	// of known formulas.  Applications are de-duplicated on their conclusion,
	// so no two returned applications conclude structurally equal formulas.
	Generate(known []wff.Node) []Application
	// Matches checks a single claimed application of this rule: given the
	// cited formulas, in the order the rule's pattern expects them, does the
	// conclusion follow?
	Matches(cited []wff.Node, conclusion wff.Node) bool
}

// Forward returns the engine implementing a given rule.
func Forward(rule Rule) ForwardRule {
	switch rule {
	case ModusPonens:
		return &modusPonens{}
	case ModusTollens:
		return &modusTollens{}
	case HypotheticalSyllogism:
		return &hypotheticalSyllogism{}
	case DisjunctiveSyllogism:
		return &disjunctiveSyllogism{}
	case Conjunction:
		return &conjunction{}
	case Simplification:
		return &simplification{}
	case Addition:
		return &addition{}
	case Absorption:
		return &absorption{}
	case ConstructiveDilemma:
		return &constructiveDilemma{}
	}
	//
	panic("unknown rule")
}

// ForwardRules returns engines for the entire inference catalog, in canonical
// order.
func ForwardRules() []ForwardRule {
	var engines []ForwardRule
	//
	for _, rule := range Rules() {
		engines = append(engines, Forward(rule))
	}
	//
	return engines
}

// IsValidInference checks a single claimed rule application, as cited within
// a proof: given the cited formulas in pattern order, does the conclusion
// follow by the given rule?
func IsValidInference(rule Rule, cited []wff.Node, conclusion wff.Node) bool {
	return Forward(rule).Matches(cited, conclusion)
}

// Consequences enumerates the applications of every rule in the catalog over
// the given pool of known formulas.
func Consequences(known []wff.Node) []Application {
	var apps []Application
	//
	for _, engine := range ForwardRules() {
		apps = append(apps, engine.Generate(known)...)
	}
	//
	return apps
}

// ============================================================================
// Modus Ponens
// ============================================================================

type modusPonens struct{}

// Rule implementation for ForwardRule interface.
func (p *modusPonens) Rule() Rule {
	return ModusPonens
}

// CanApply implementation for ForwardRule interface.
func (p *modusPonens) CanApply(known []wff.Node) bool {
	return len(p.Generate(known)) != 0
}

// Generate implementation for ForwardRule interface.
func (p *modusPonens) Generate(known []wff.Node) []Application {
	var apps []Application
	//
	for _, f := range known {
		lhs, rhs, ok := wff.MatchBinary(f, wff.IMPLIES)
		if !ok {
			continue
		}
		// Look for the antecedent amongst the knowns.
		for _, g := range known {
			if g.Equals(lhs) {
				apps = append(apps, Application{ModusPonens, []wff.Node{f, g}, rhs})
			}
		}
	}
	//
	return dedupApplications(apps)
}

// Matches implementation for ForwardRule interface.
func (p *modusPonens) Matches(cited []wff.Node, conclusion wff.Node) bool {
	if len(cited) != 2 {
		return false
	}
	//
	lhs, rhs, ok := wff.MatchBinary(cited[0], wff.IMPLIES)
	//
	return ok && cited[1].Equals(lhs) && conclusion.Equals(rhs)
}

// ============================================================================
// Modus Tollens
// ============================================================================

type modusTollens struct{}

// Rule implementation for ForwardRule interface.
func (p *modusTollens) Rule() Rule {
	return ModusTollens
}

// CanApply implementation for ForwardRule interface.
func (p *modusTollens) CanApply(known []wff.Node) bool {
	return len(p.Generate(known)) != 0
}

// Generate implementation for ForwardRule interface.
func (p *modusTollens) Generate(known []wff.Node) []Application {
	var apps []Application
	//
	for _, f := range known {
		lhs, rhs, ok := wff.MatchBinary(f, wff.IMPLIES)
		if !ok {
			continue
		}
		// Look for the negated consequent amongst the knowns.
		for _, g := range known {
			if neg, ok := wff.MatchNegation(g); ok && neg.Equals(rhs) {
				apps = append(apps, Application{ModusTollens, []wff.Node{f, g}, wff.Not(lhs)})
			}
		}
	}
	//
	return dedupApplications(apps)
}

// Matches implementation for ForwardRule interface.
func (p *modusTollens) Matches(cited []wff.Node, conclusion wff.Node) bool {
	if len(cited) != 2 {
		return false
	}
	//
	lhs, rhs, ok := wff.MatchBinary(cited[0], wff.IMPLIES)
	if !ok {
		return false
	} else if neg, ok := wff.MatchNegation(cited[1]); !ok || !neg.Equals(rhs) {
		return false
	}
	//
	return conclusion.Equals(wff.Not(lhs))
}

// ============================================================================
// Hypothetical Syllogism
// ============================================================================

type hypotheticalSyllogism struct{}

// Rule implementation for ForwardRule interface.
func (p *hypotheticalSyllogism) Rule() Rule {
	return HypotheticalSyllogism
}

// CanApply implementation for ForwardRule interface.
func (p *hypotheticalSyllogism) CanApply(known []wff.Node) bool {
	return len(p.Generate(known)) != 0
}

// Generate implementation for ForwardRule interface.
func (p *hypotheticalSyllogism) Generate(known []wff.Node) []Application {
	var apps []Application
	//
	for _, f := range known {
		lhs, mid, ok := wff.MatchBinary(f, wff.IMPLIES)
		if !ok {
			continue
		}
		// Look for an implication chaining from the consequent.
		for _, g := range known {
			if mid2, rhs, ok := wff.MatchBinary(g, wff.IMPLIES); ok && mid2.Equals(mid) {
				conclusion := wff.Implies(lhs, rhs)
				apps = append(apps, Application{HypotheticalSyllogism, []wff.Node{f, g}, conclusion})
			}
		}
	}
	//
	return dedupApplications(apps)
}

// Matches implementation for ForwardRule interface.
func (p *hypotheticalSyllogism) Matches(cited []wff.Node, conclusion wff.Node) bool {
	if len(cited) != 2 {
		return false
	}
	//
	lhs, mid, ok1 := wff.MatchBinary(cited[0], wff.IMPLIES)
	mid2, rhs, ok2 := wff.MatchBinary(cited[1], wff.IMPLIES)
	//
	if !ok1 || !ok2 || !mid2.Equals(mid) {
		return false
	}
	//
	return conclusion.Equals(wff.Implies(lhs, rhs))
}

// ============================================================================
// Disjunctive Syllogism
// ============================================================================

type disjunctiveSyllogism struct{}

// Rule implementation for ForwardRule interface.
func (p *disjunctiveSyllogism) Rule() Rule {
	return DisjunctiveSyllogism
}

// CanApply implementation for ForwardRule interface.
func (p *disjunctiveSyllogism) CanApply(known []wff.Node) bool {
	return len(p.Generate(known)) != 0
}

// Generate implementation for ForwardRule interface.
func (p *disjunctiveSyllogism) Generate(known []wff.Node) []Application {
	var apps []Application
	//
	for _, f := range known {
		lhs, rhs, ok := wff.MatchBinary(f, wff.OR)
		if !ok {
			continue
		}
		// Look for the negation of either disjunct amongst the knowns.
		for _, g := range known {
			neg, ok := wff.MatchNegation(g)
			if !ok {
				continue
			}
			//
			if neg.Equals(lhs) {
				apps = append(apps, Application{DisjunctiveSyllogism, []wff.Node{f, g}, rhs})
			}
			//
			if neg.Equals(rhs) {
				apps = append(apps, Application{DisjunctiveSyllogism, []wff.Node{f, g}, lhs})
			}
		}
	}
	//
	return dedupApplications(apps)
}

// Matches implementation for ForwardRule interface.
func (p *disjunctiveSyllogism) Matches(cited []wff.Node, conclusion wff.Node) bool {
	if len(cited) != 2 {
		return false
	}
	//
	lhs, rhs, ok := wff.MatchBinary(cited[0], wff.OR)
	if !ok {
		return false
	}
	//
	neg, ok := wff.MatchNegation(cited[1])
	if !ok {
		return false
	}
	//
	switch {
	case neg.Equals(lhs):
		return conclusion.Equals(rhs)
	case neg.Equals(rhs):
		return conclusion.Equals(lhs)
	}
	//
	return false
}

// ============================================================================
// Conjunction
// ============================================================================

type conjunction struct{}

// Rule implementation for ForwardRule interface.
func (p *conjunction) Rule() Rule {
	return Conjunction
}

// CanApply implementation for ForwardRule interface.
func (p *conjunction) CanApply(known []wff.Node) bool {
	return len(p.Generate(known)) != 0
}

// Generate implementation for ForwardRule interface.
func (p *conjunction) Generate(known []wff.Node) []Application {
	var apps []Application
	// Enumerate ordered pairs, so both conjunct orders arise.
	for i, f := range known {
		for j, g := range known {
			if i != j {
				apps = append(apps, Application{Conjunction, []wff.Node{f, g}, wff.And(f, g)})
			}
		}
	}
	//
	return dedupApplications(apps)
}

// Matches implementation for ForwardRule interface.  Conjunction is the one
// two-premise rule insensitive to citation order.
func (p *conjunction) Matches(cited []wff.Node, conclusion wff.Node) bool {
	if len(cited) != 2 {
		return false
	}
	//
	lhs, rhs, ok := wff.MatchBinary(conclusion, wff.AND)
	if !ok {
		return false
	}
	//
	if lhs.Equals(cited[0]) && rhs.Equals(cited[1]) {
		return true
	}
	//
	return lhs.Equals(cited[1]) && rhs.Equals(cited[0])
}

// ============================================================================
// Simplification
// ============================================================================

type simplification struct{}

// Rule implementation for ForwardRule interface.
func (p *simplification) Rule() Rule {
	return Simplification
}

// CanApply implementation for ForwardRule interface.
func (p *simplification) CanApply(known []wff.Node) bool {
	return len(p.Generate(known)) != 0
}

// Generate implementation for ForwardRule interface.
func (p *simplification) Generate(known []wff.Node) []Application {
	var apps []Application
	//
	for _, f := range known {
		if lhs, rhs, ok := wff.MatchBinary(f, wff.AND); ok {
			apps = append(apps,
				Application{Simplification, []wff.Node{f}, lhs},
				Application{Simplification, []wff.Node{f}, rhs})
		}
	}
	//
	return dedupApplications(apps)
}

// Matches implementation for ForwardRule interface.
func (p *simplification) Matches(cited []wff.Node, conclusion wff.Node) bool {
	if len(cited) != 1 {
		return false
	}
	//
	lhs, rhs, ok := wff.MatchBinary(cited[0], wff.AND)
	//
	return ok && (conclusion.Equals(lhs) || conclusion.Equals(rhs))
}

// ============================================================================
// Addition
// ============================================================================

type addition struct{}

// Rule implementation for ForwardRule interface.
func (p *addition) Rule() Rule {
	return Addition
}

// CanApply implementation for ForwardRule interface.
func (p *addition) CanApply(known []wff.Node) bool {
	return len(p.Generate(known)) != 0
}

// Generate implementation for ForwardRule interface.  The drawn disjunct is
// restricted to other formulas in the pool, which keeps enumeration finite.
// The asserted formula always appears first in an application's premises,
// since it alone would be cited within a proof.
func (p *addition) Generate(known []wff.Node) []Application {
	var apps []Application
	//
	for i, f := range known {
		for j, g := range known {
			if i != j {
				apps = append(apps,
					Application{Addition, []wff.Node{f, g}, wff.Or(f, g)},
					Application{Addition, []wff.Node{f, g}, wff.Or(g, f)})
			}
		}
	}
	//
	return dedupApplications(apps)
}

// Matches implementation for ForwardRule interface.  The uncited disjunct is
// wholly unconstrained.
func (p *addition) Matches(cited []wff.Node, conclusion wff.Node) bool {
	if len(cited) != 1 {
		return false
	}
	//
	lhs, rhs, ok := wff.MatchBinary(conclusion, wff.OR)
	//
	return ok && (lhs.Equals(cited[0]) || rhs.Equals(cited[0]))
}

// ============================================================================
// Absorption
// ============================================================================

type absorption struct{}

// Rule implementation for ForwardRule interface.
func (p *absorption) Rule() Rule {
	return Absorption
}

// CanApply implementation for ForwardRule interface.
func (p *absorption) CanApply(known []wff.Node) bool {
	return len(p.Generate(known)) != 0
}

// Generate implementation for ForwardRule interface.
func (p *absorption) Generate(known []wff.Node) []Application {
	var apps []Application
	//
	for _, f := range known {
		if lhs, rhs, ok := wff.MatchBinary(f, wff.IMPLIES); ok {
			conclusion := wff.Implies(lhs, wff.And(lhs, rhs))
			apps = append(apps, Application{Absorption, []wff.Node{f}, conclusion})
		}
	}
	//
	return dedupApplications(apps)
}

// Matches implementation for ForwardRule interface.
func (p *absorption) Matches(cited []wff.Node, conclusion wff.Node) bool {
	if len(cited) != 1 {
		return false
	}
	//
	lhs, rhs, ok := wff.MatchBinary(cited[0], wff.IMPLIES)
	if !ok {
		return false
	}
	//
	return conclusion.Equals(wff.Implies(lhs, wff.And(lhs, rhs)))
}

// ============================================================================
// Constructive Dilemma
// ============================================================================

type constructiveDilemma struct{}

// Rule implementation for ForwardRule interface.
func (p *constructiveDilemma) Rule() Rule {
	return ConstructiveDilemma
}

// CanApply implementation for ForwardRule interface.
func (p *constructiveDilemma) CanApply(known []wff.Node) bool {
	return len(p.Generate(known)) != 0
}

// Generate implementation for ForwardRule interface.  Applications arise in
// two shapes: from a known conjunction of implications, and from two known
// implications which, when conjoined, would complete the pattern.  The latter
// carries three premises; turning it into proof lines requires an explicit
// Conjunction step.
func (p *constructiveDilemma) Generate(known []wff.Node) []Application {
	var apps []Application
	//
	for _, f := range known {
		car, cdr, ok := wff.MatchBinary(f, wff.AND)
		if !ok {
			continue
		}
		//
		a, b, ok1 := wff.MatchBinary(car, wff.IMPLIES)
		c, d, ok2 := wff.MatchBinary(cdr, wff.IMPLIES)
		//
		if !ok1 || !ok2 {
			continue
		}
		// Look for the matching disjunction of antecedents.
		for _, g := range known {
			if x, y, ok := wff.MatchBinary(g, wff.OR); ok && x.Equals(a) && y.Equals(c) {
				conclusion := wff.Or(b, d)
				apps = append(apps, Application{ConstructiveDilemma, []wff.Node{f, g}, conclusion})
			}
		}
	}
	// Synthesized shape: two separate implications plus the disjunction of
	// their antecedents.
	for i, f := range known {
		a, b, ok := wff.MatchBinary(f, wff.IMPLIES)
		if !ok {
			continue
		}
		//
		for j, g := range known {
			c, d, ok := wff.MatchBinary(g, wff.IMPLIES)
			if !ok || i == j {
				continue
			}
			//
			for _, h := range known {
				if x, y, ok := wff.MatchBinary(h, wff.OR); ok && x.Equals(a) && y.Equals(c) {
					conclusion := wff.Or(b, d)
					apps = append(apps, Application{ConstructiveDilemma, []wff.Node{f, g, h}, conclusion})
				}
			}
		}
	}
	//
	return dedupApplications(apps)
}

// Matches implementation for ForwardRule interface.  Proofs cite the rule in
// its classical two-premise shape only.
func (p *constructiveDilemma) Matches(cited []wff.Node, conclusion wff.Node) bool {
	if len(cited) != 2 {
		return false
	}
	//
	car, cdr, ok := wff.MatchBinary(cited[0], wff.AND)
	if !ok {
		return false
	}
	//
	a, b, ok1 := wff.MatchBinary(car, wff.IMPLIES)
	c, d, ok2 := wff.MatchBinary(cdr, wff.IMPLIES)
	//
	if !ok1 || !ok2 {
		return false
	}
	//
	if x, y, ok := wff.MatchBinary(cited[1], wff.OR); !ok || !x.Equals(a) || !y.Equals(c) {
		return false
	}
	//
	return conclusion.Equals(wff.Or(b, d))
}

// ============================================================================
// Helpers
// ============================================================================

// Drop applications whose conclusion duplicates that of an earlier one,
// keeping the first.
func dedupApplications(apps []Application) []Application {
	var unique []Application
	//
	for _, app := range apps {
		fresh := true
		//
		for _, u := range unique {
			if u.Conclusion.Equals(app.Conclusion) {
				fresh = false
				break
			}
		}
		//
		if fresh {
			unique = append(unique, app)
		}
	}
	//
	return unique
}
