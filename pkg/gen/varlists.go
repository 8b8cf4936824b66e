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
	"slices"

	"github.com/consensys/go-wff/pkg/util"
	"github.com/consensys/go-wff/pkg/wff"
	"github.com/pkg/errors"
)

// Alphabet gives the sentence letters available to a generation attempt, in
// the order problems conventionally introduce them.
var Alphabet = []rune{'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'a', 'b', 'c', 'd'}

// VarLists partitions the sentence-letter alphabet into letters still
// available for drawing and letters already committed with a polarity.  One
// instance belongs to exactly one generation attempt; a letter committed with
// one polarity can never be committed with the other on the same instance.
type VarLists struct {
	// Letters not yet drawn or committed.
	available []rune
	// Committed letters, mapped to true when asserted under negation.
	used map[rune]bool
}

// NewVarLists constructs an allocator with the whole alphabet available.
func NewVarLists() *VarLists {
	return &VarLists{
		available: slices.Clone(Alphabet),
		used:      make(map[rune]bool),
	}
}

// Draw removes and returns a random available letter.  This is the source
// backward strategies pull fresh letters from; it fails only once the
// alphabet is exhausted.
func (p *VarLists) Draw(rng *rand.Rand) (rune, bool) {
	if len(p.available) == 0 {
		return 0, false
	}
	//
	index := rng.IntN(len(p.available))
	letter := p.available[index]
	//
	p.available = append(p.available[:index], p.available[index+1:]...)
	//
	return letter, true
}

// Exclude removes the given letters from the available bucket, without
// committing them to any polarity.  Callers working against formulas already
// in play exclude their letters so nothing drawn afterwards collides.
func (p *VarLists) Exclude(letters ...rune) {
	p.available = util.RemoveMatching(p.available, func(letter rune) bool {
		return slices.Contains(letters, letter)
	})
}

// UseAtomicAssertion commits the polarity of a literal.  Committing a letter
// with its already-committed polarity succeeds idempotently; committing it
// with the opposite polarity fails, leaving the allocator untouched.  The
// literal is returned on success.
func (p *VarLists) UseAtomicAssertion(node wff.Node) (wff.Node, error) {
	letter, negated, ok := literalOf(node)
	//
	if !ok {
		return nil, errors.Errorf("%s is not a literal", node.Formula().String())
	} else if committed, ok := p.used[letter]; ok && committed != negated {
		return nil, errors.Errorf("'%c' is already asserted with the opposite polarity", letter)
	}
	//
	p.used[letter] = negated
	//
	p.available = util.RemoveMatching(p.available, func(available rune) bool {
		return available == letter
	})
	//
	return node, nil
}

// AtomicAssertions decomposes a formula into its maximal independent literal
// set under its top connective, recursing through conjunctions and
// disjunctions.  For example, (¬p∧q)∨r yields {¬p, q, r}.  Formulas built
// from other connectives assert no literals and yield nothing.
func AtomicAssertions(node wff.Node) []wff.Node {
	if _, _, ok := literalOf(node); ok {
		return []wff.Node{node}
	}
	//
	for _, op := range []uint{wff.AND, wff.OR} {
		if lhs, rhs, ok := wff.MatchBinary(node, op); ok {
			return append(AtomicAssertions(lhs), AtomicAssertions(rhs)...)
		}
	}
	//
	return nil
}

// CheckPremises scans an entire premise list for a letter asserted with both
// polarities, using a scratch allocator so the caller's buckets are
// untouched.  The scan is deliberately literal-level: it catches the latent
// contradictions generation can introduce, not every unsatisfiable set.
func CheckPremises(premises []wff.Node) error {
	scratch := NewVarLists()
	//
	for i, premise := range premises {
		for _, literal := range AtomicAssertions(premise) {
			if _, err := scratch.UseAtomicAssertion(literal); err != nil {
				return errors.Wrapf(err, "premise %d (%s)", i+1, premise.Formula().String())
			}
		}
	}
	//
	return nil
}

// Determine the letter and polarity of a literal, striding over any stacked
// negations.  Fails when the tree is not a negated chain over a letter.
func literalOf(node wff.Node) (rune, bool, bool) {
	var negated bool
	//
	for {
		if child, ok := wff.MatchNegation(node); ok {
			negated = !negated
			node = child
			//
			continue
		}
		//
		letter, ok := wff.MatchVariable(node)
		//
		return letter, negated, ok
	}
}
