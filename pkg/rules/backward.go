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
	"math/rand/v2"

	"github.com/consensys/go-wff/pkg/wff"
	"github.com/pkg/errors"
)

// VarSource supplies fresh sentence letters to backward strategies which must
// invent formulas.  Drawing is destructive: a drawn letter is never offered
// again.
type VarSource interface {
	// Draw removes and returns a letter not yet in use, failing when none
	// remain.
	Draw(rng *rand.Rand) (rune, bool)
}

// BackwardRule is a strategy for working a derivation backwards: it
// decomposes a goal formula into premises to grant outright, plus subgoals to
// derive in turn.  Granting all premises and deriving all subgoals yields the
// goal by a single forward rule.
type BackwardRule interface {
	// Name returns a descriptive name for this strategy.
	Name() string
	// CanApply determines whether this strategy applies to a given goal.
	CanApply(goal wff.Node) bool
	// Apply decomposes the goal.  Strategies which invent formulas draw fresh
	// letters from the given source, and fail once it is exhausted.
	Apply(goal wff.Node, vars VarSource, rng *rand.Rand) ([]wff.Node, []wff.Node, error)
}

// BackwardRules returns the backward strategy catalog.
func BackwardRules() []BackwardRule {
	return []BackwardRule{
		&splitConjunction{},
		&chainImplications{},
		&detachAntecedent{},
		&strikeDisjunct{},
	}
}

// ============================================================================
// Split Conjunction
// ============================================================================

// To derive (A∧B), derive each conjunct separately.  Conjunction then closes
// the gap.
type splitConjunction struct{}

// Name implementation for BackwardRule interface.
func (p *splitConjunction) Name() string {
	return "split conjunction"
}

// CanApply implementation for BackwardRule interface.
func (p *splitConjunction) CanApply(goal wff.Node) bool {
	_, _, ok := wff.MatchBinary(goal, wff.AND)
	return ok
}

// Apply implementation for BackwardRule interface.
func (p *splitConjunction) Apply(goal wff.Node, _ VarSource, _ *rand.Rand) ([]wff.Node, []wff.Node, error) {
	lhs, rhs, ok := wff.MatchBinary(goal, wff.AND)
	//
	if !ok {
		return nil, nil, errors.New("goal is not a conjunction")
	}
	//
	return nil, []wff.Node{lhs, rhs}, nil
}

// ============================================================================
// Chain Implications
// ============================================================================

// To derive (A→C), invent a fresh middle term B and derive (A→B) and (B→C).
// Hypothetical Syllogism then closes the gap.
type chainImplications struct{}

// Name implementation for BackwardRule interface.
func (p *chainImplications) Name() string {
	return "chain implications"
}

// CanApply implementation for BackwardRule interface.
func (p *chainImplications) CanApply(goal wff.Node) bool {
	_, _, ok := wff.MatchBinary(goal, wff.IMPLIES)
	return ok
}

// Apply implementation for BackwardRule interface.
func (p *chainImplications) Apply(goal wff.Node, vars VarSource, rng *rand.Rand) ([]wff.Node, []wff.Node, error) {
	lhs, rhs, ok := wff.MatchBinary(goal, wff.IMPLIES)
	//
	if !ok {
		return nil, nil, errors.New("goal is not an implication")
	}
	//
	letter, ok := vars.Draw(rng)
	if !ok {
		return nil, nil, errors.New("no fresh sentence letters remain")
	}
	//
	mid := wff.NewVariable(letter)
	//
	return nil, []wff.Node{wff.Implies(lhs, mid), wff.Implies(mid, rhs)}, nil
}

// ============================================================================
// Detach Antecedent
// ============================================================================

// To derive any goal Q, invent a fresh antecedent P, grant (P→Q) as a premise
// and derive P.  Modus Ponens then closes the gap.
type detachAntecedent struct{}

// Name implementation for BackwardRule interface.
func (p *detachAntecedent) Name() string {
	return "detach an antecedent"
}

// CanApply implementation for BackwardRule interface.
func (p *detachAntecedent) CanApply(goal wff.Node) bool {
	return true
}

// Apply implementation for BackwardRule interface.
func (p *detachAntecedent) Apply(goal wff.Node, vars VarSource, rng *rand.Rand) ([]wff.Node, []wff.Node, error) {
	letter, ok := vars.Draw(rng)
	if !ok {
		return nil, nil, errors.New("no fresh sentence letters remain")
	}
	//
	antecedent := wff.NewVariable(letter)
	//
	return []wff.Node{wff.Implies(antecedent, goal)}, []wff.Node{antecedent}, nil
}

// ============================================================================
// Strike Disjunct
// ============================================================================

// To derive any goal Q, invent a fresh disjunct P, grant (P∨Q) as a premise
// and derive ¬P.  Disjunctive Syllogism then closes the gap.
type strikeDisjunct struct{}

// Name implementation for BackwardRule interface.
func (p *strikeDisjunct) Name() string {
	return "strike a disjunct"
}

// CanApply implementation for BackwardRule interface.
func (p *strikeDisjunct) CanApply(goal wff.Node) bool {
	return true
}

// Apply implementation for BackwardRule interface.
func (p *strikeDisjunct) Apply(goal wff.Node, vars VarSource, rng *rand.Rand) ([]wff.Node, []wff.Node, error) {
	letter, ok := vars.Draw(rng)
	if !ok {
		return nil, nil, errors.New("no fresh sentence letters remain")
	}
	//
	disjunct := wff.NewVariable(letter)
	//
	return []wff.Node{wff.Or(disjunct, goal)}, []wff.Node{wff.Not(disjunct)}, nil
}
