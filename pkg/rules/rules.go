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

// Package rules implements the rule catalog of a propositional natural
// deduction system: the nine elementary inference rules, the ten equivalence
// (replacement) rules, and four backward strategies for decomposing goals
// into subgoals.  Inference rules are directional and consume whole lines;
// replacement rules rewrite a single subformula occurrence and work in both
// directions.
package rules

import (
	"strings"

	"github.com/consensys/go-wff/pkg/wff"
)

// Rule identifies an elementary inference rule from the fixed catalog.
type Rule uint8

const (
	// ModusPonens: from (A→B) and A, conclude B.
	ModusPonens Rule = iota
	// ModusTollens: from (A→B) and ¬B, conclude ¬A.
	ModusTollens
	// HypotheticalSyllogism: from (A→B) and (B→C), conclude (A→C).
	HypotheticalSyllogism
	// DisjunctiveSyllogism: from (A∨B) and the negation of either disjunct,
	// conclude the other disjunct.
	DisjunctiveSyllogism
	// Conjunction: from A and B, conclude (A∧B) or (B∧A).
	Conjunction
	// Simplification: from (A∧B), conclude either conjunct.
	Simplification
	// Addition: from A, conclude the disjunction of A with anything.
	Addition
	// Absorption: from (A→B), conclude (A→(A∧B)).
	Absorption
	// ConstructiveDilemma: from ((A→B)∧(C→D)) and (A∨C), conclude (B∨D).
	ConstructiveDilemma
)

// Rules returns the inference rule catalog in canonical order.
func Rules() []Rule {
	return []Rule{
		ModusPonens,
		ModusTollens,
		HypotheticalSyllogism,
		DisjunctiveSyllogism,
		Conjunction,
		Simplification,
		Addition,
		Absorption,
		ConstructiveDilemma,
	}
}

// String returns the customary name of this rule.
func (r Rule) String() string {
	switch r {
	case ModusPonens:
		return "Modus Ponens"
	case ModusTollens:
		return "Modus Tollens"
	case HypotheticalSyllogism:
		return "Hypothetical Syllogism"
	case DisjunctiveSyllogism:
		return "Disjunctive Syllogism"
	case Conjunction:
		return "Conjunction"
	case Simplification:
		return "Simplification"
	case Addition:
		return "Addition"
	case Absorption:
		return "Absorption"
	case ConstructiveDilemma:
		return "Constructive Dilemma"
	}
	//
	panic("unknown rule")
}

// Mnemonic returns the customary abbreviation of this rule, as used when
// citing it within a proof.
func (r Rule) Mnemonic() string {
	switch r {
	case ModusPonens:
		return "MP"
	case ModusTollens:
		return "MT"
	case HypotheticalSyllogism:
		return "HS"
	case DisjunctiveSyllogism:
		return "DS"
	case Conjunction:
		return "Conj"
	case Simplification:
		return "Simp"
	case Addition:
		return "Add"
	case Absorption:
		return "Abs"
	case ConstructiveDilemma:
		return "CD"
	}
	//
	panic("unknown rule")
}

// Citations returns the number of lines a proof must cite when applying this
// rule.
func (r Rule) Citations() uint {
	switch r {
	case Simplification, Addition, Absorption:
		return 1
	default:
		return 2
	}
}

// ParseRule identifies an inference rule from its abbreviation, ignoring
// case.
func ParseRule(mnemonic string) (Rule, bool) {
	for _, r := range Rules() {
		if strings.EqualFold(mnemonic, r.Mnemonic()) {
			return r, true
		}
	}
	//
	return 0, false
}

// Application describes one way a rule can fire over a pool of known
// formulas: the known formulas consumed, and the conclusion produced.  The
// premises include every known formula the conclusion depends upon; for
// Addition this means both the asserted disjunct and the chosen one, even
// though a proof citing the rule would cite the former alone.
type Application struct {
	Rule       Rule
	Premises   []wff.Node
	Conclusion wff.Node
}
