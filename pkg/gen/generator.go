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

// Package gen constructs derivation problems by growing a random derivation
// graph forwards from seeded premises, then cutting the graph so that a
// difficulty-sized chain of steps is hidden between the surviving premises
// and the conclusion.  A solver over the same rule catalog reconstructs
// derivations, both for checking generated problems and for answering
// queries about hand-written ones.
package gen

import (
	"math/rand/v2"

	"github.com/consensys/go-wff/pkg/problem"
	"github.com/consensys/go-wff/pkg/rules"
	"github.com/consensys/go-wff/pkg/wff"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// Number of times Generate retries a discarded attempt before giving up.
	maxAttempts = 32
	// Cap on the tile length of any formula admitted to the graph, keeping
	// grown formulas legible.
	maxTiles = 24
)

// Generator constructs derivation problems of a requested difficulty.  All
// randomness flows through the injected source, so a seeded generator is
// fully reproducible.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator constructs a generator drawing from a given random source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng}
}

// Generate constructs a problem whose solution hides roughly difficulty
// derivation steps.  Attempts whose premises fail the atomic-assertion scan
// (or which stall before deriving anything) are discarded wholesale and
// retried with fresh state, up to a bounded retry count.
func (p *Generator) Generate(difficulty uint) (*problem.Problem, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		prob, err := p.generate(difficulty)
		//
		if err != nil {
			log.Debugf("discarding generation attempt %d: %v", attempt, err)
			continue
		}
		//
		return prob, nil
	}
	//
	return nil, errors.Errorf("no consistent problem found in %d attempts", maxAttempts)
}

// Run a single generation attempt over fresh state.
func (p *Generator) generate(difficulty uint) (*problem.Problem, error) {
	var (
		vars  = NewVarLists()
		graph = NewGraph()
	)
	//
	if err := p.seed(difficulty, vars, graph); err != nil {
		return nil, err
	}
	//
	if err := p.grow(difficulty, graph); err != nil {
		return nil, err
	}
	//
	premises, conclusion, hidden := p.cut(difficulty, graph)
	//
	if err := CheckPremises(premises); err != nil {
		return nil, err
	}
	//
	prob := &problem.Problem{
		Conclusion: conclusion.Formula(),
		Difficulty: hidden,
	}
	//
	for _, premise := range premises {
		prob.Premises = append(prob.Premises, premise.Formula())
	}
	//
	return prob, nil
}

// ============================================================================
// Phase 1a: seeding
// ============================================================================

// Seed the graph with parentless leaves: committed atomic literals first,
// then compound axioms shaped to feed the rule catalog.  Every literal
// polarity is committed through the allocator, and every axiom is arranged
// to hold under those commitments, so the premise pool stays consistent no
// matter which leaves survive the cut.
func (p *Generator) seed(difficulty uint, vars *VarLists, graph *Graph) error {
	var (
		nletters = 3 + min(difficulty, 3)
		naxioms  = 2 + difficulty/2
		// Literal leaves, each committed with its polarity.
		literals []wff.Node
		// The negated subset of the literal leaves.
		negatives []wff.Node
		// Letters committed negative whose refutation an axiom sets up.
		refutable []rune
	)
	//
	for i := uint(0); i < nletters; i++ {
		letter, ok := vars.Draw(p.rng)
		if !ok {
			break
		}
		//
		literal := wff.Node(wff.NewVariable(letter))
		//
		if p.rng.IntN(3) == 0 {
			literal = wff.Not(literal)
			negatives = append(negatives, literal)
		}
		//
		if _, err := vars.UseAtomicAssertion(literal); err != nil {
			return err
		}
		//
		graph.AddLeaf(literal)
		literals = append(literals, literal)
	}
	//
	for i := uint(0); i < naxioms; i++ {
		axiom, err := p.axiom(vars, literals, negatives, &refutable)
		if err != nil {
			return err
		}
		//
		graph.AddLeaf(axiom)
	}
	//
	return nil
}

// Construct one compound axiom over the committed literals.  Every shape is
// true whenever the committed literals are, which keeps the eventual premise
// pool satisfiable: implications either chain committed literals or carry a
// refuted antecedent, and conjunctions and disjunctions only ever assert
// committed forms.
func (p *Generator) axiom(vars *VarLists, literals, negatives []wff.Node, refutable *[]rune) (wff.Node, error) {
	shape := p.rng.IntN(5)
	//
	// The last two shapes need material that may not exist yet.
	if shape == 3 && len(negatives) == 0 {
		shape = 0
	}
	//
	if shape == 4 && len(*refutable) == 0 {
		shape = 1
	}
	//
	lhs, rhs := p.pair(literals)
	//
	switch shape {
	case 0:
		// Chained implication, feeding detachment and chaining.
		return wff.Implies(lhs, rhs), nil
	case 1:
		// Disjunction of committed literals, feeding the disjunction rules.
		return wff.Or(lhs, rhs), nil
	case 2:
		// Conjunction of committed literals, feeding simplification.
		return wff.And(lhs, rhs), nil
	case 3:
		// An implication whose consequent is already refuted: draw a fresh
		// letter, commit its negation (without leaving a leaf), and point it
		// at the bare consequent so striking the consequent refutes it.
		letter, ok := vars.Draw(p.rng)
		if !ok {
			return wff.Implies(lhs, rhs), nil
		}
		//
		antecedent := wff.NewVariable(letter)
		//
		if _, err := vars.UseAtomicAssertion(wff.Not(antecedent)); err != nil {
			return nil, err
		}
		//
		negative := negatives[p.rng.IntN(len(negatives))]
		consequent, _ := wff.MatchNegation(negative)
		//
		*refutable = append(*refutable, letter)
		//
		return wff.Implies(antecedent, consequent), nil
	default:
		// A disjunction guarded by a refuted letter: once the letter's
		// negation is derived, striking it uncovers the other disjunct.
		letter := (*refutable)[p.rng.IntN(len(*refutable))]
		uncovered := wff.Node(wff.Implies(lhs, rhs))
		//
		if p.rng.IntN(2) == 0 {
			return wff.Or(wff.NewVariable(letter), uncovered), nil
		}
		//
		return wff.Or(uncovered, wff.NewVariable(letter)), nil
	}
}

// Pick two distinct committed literals.
func (p *Generator) pair(literals []wff.Node) (wff.Node, wff.Node) {
	i := p.rng.IntN(len(literals))
	j := p.rng.IntN(len(literals) - 1)
	//
	if j >= i {
		j++
	}
	//
	return literals[i], literals[j]
}

// ============================================================================
// Phase 1b: growing
// ============================================================================

// Grow the graph by applying catalog rules to the pool until enough steps
// accumulate.  Each step picks a rule uniformly amongst those with something
// new to say, preferring applications that consume the newest node so depth
// tracks the step count, then appends the conclusion with parent edges.
func (p *Generator) grow(difficulty uint, graph *Graph) error {
	var (
		target = difficulty + 2
		seeds  = graph.Len()
	)
	//
	for steps := uint(0); steps < target; steps++ {
		var options [][]rules.Application
		//
		known := graph.Formulas()
		//
		for _, engine := range rules.ForwardRules() {
			if apps := p.admissible(engine.Generate(known), graph); len(apps) > 0 {
				options = append(options, apps)
			}
		}
		//
		if len(options) == 0 {
			break
		}
		//
		apps := options[p.rng.IntN(len(options))]
		newest := known[len(known)-1]
		//
		if preferred := consuming(apps, newest); len(preferred) > 0 {
			apps = preferred
		}
		//
		app := apps[p.rng.IntN(len(apps))]
		graph.Add(app.Conclusion, app.Rule, p.parentsOf(app, graph))
	}
	//
	if graph.Len() == seeds {
		return errors.New("nothing derivable from the seeded pool")
	}
	//
	return nil
}

// Filter rule applications down to those worth a graph node: novel
// conclusions of manageable size.
func (p *Generator) admissible(apps []rules.Application, graph *Graph) []rules.Application {
	var admissible []rules.Application
	//
	for _, app := range apps {
		if !graph.Contains(app.Conclusion) && app.Conclusion.Formula().Len() <= maxTiles {
			admissible = append(admissible, app)
		}
	}
	//
	return admissible
}

// Select the applications consuming a given formula.
func consuming(apps []rules.Application, formula wff.Node) []rules.Application {
	var selected []rules.Application
	//
	for _, app := range apps {
		for _, premise := range app.Premises {
			if premise.Equals(formula) {
				selected = append(selected, app)
				break
			}
		}
	}
	//
	return selected
}

// Determine the parent edges for an application.  An addition depends only
// on its asserted disjunct, since the drawn disjunct contributes no truth;
// every other rule depends on all its premises.
func (p *Generator) parentsOf(app rules.Application, graph *Graph) []uint {
	premises := app.Premises
	//
	if app.Rule == rules.Addition {
		premises = premises[:1]
	}
	//
	parents := make([]uint, len(premises))
	//
	for i, premise := range premises {
		id, ok := graph.Id(premise)
		if !ok {
			panic("application premise missing from derivation graph")
		}
		//
		parents[i] = id
	}
	//
	return parents
}

// ============================================================================
// Phase 2: cutting
// ============================================================================

// Cut the graph backwards from the conclusion (the newest node): walk the
// parent edges with a first-in first-out frontier, hiding derived nodes
// while budget remains and fixing everything else as a premise.  Returns the
// premise pool, the conclusion, and the number of hidden steps (the
// recorded difficulty).
func (p *Generator) cut(difficulty uint, graph *Graph) ([]wff.Node, wff.Node, uint) {
	var (
		conclusion = graph.Len() - 1
		budget     = min(max(difficulty, 1), graph.Depth(conclusion))
		seen       = make([]bool, graph.Len())
		queue      = []uint{conclusion}
		premises   []wff.Node
		hidden     uint
	)
	//
	seen[conclusion] = true
	//
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		//
		if graph.IsLeaf(id) || budget == 0 {
			premises = append(premises, graph.Node(id).Formula)
			continue
		}
		// Hide this step behind the cut.
		budget--
		hidden++
		//
		for _, parent := range graph.Node(id).Parents {
			if !seen[parent] {
				seen[parent] = true
				queue = append(queue, parent)
			}
		}
	}
	//
	return premises, graph.Node(conclusion).Formula, hidden
}
