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
package wff

import "slices"

// Node is the expression-tree form of a well-formed formula: a sentence
// letter, a unary compound or a binary compound.  The set of implementations
// is closed, hence consumers can switch exhaustively over the three variants.
// Nodes are immutable; operations which change a tree always build new nodes.
type Node interface {
	// Formula serializes this tree into its canonical, fully parenthesized
	// token form.  Parsing the result yields a structurally identical tree.
	Formula() Formula
	// Equals determines whether two trees are structurally equal.
	Equals(other Node) bool
	// String returns the canonical text of this tree.
	String() string
	// Append the canonical tiles of this tree.  Implementable only within
	// this package, which is what keeps the variant set closed.
	tiles(dst []Tile) []Tile
}

// ============================================================================
// Variable
// ============================================================================

// Var is a node holding a single sentence letter.
type Var struct {
	Name rune
}

// NewVariable constructs a node for a given sentence letter.
func NewVariable(name rune) *Var {
	return &Var{name}
}

// Formula implementation for Node interface.
func (p *Var) Formula() Formula {
	return Formula{p.tiles(nil)}
}

// Equals implementation for Node interface.
func (p *Var) Equals(other Node) bool {
	if o, ok := other.(*Var); ok {
		return p.Name == o.Name
	}
	//
	return false
}

func (p *Var) String() string {
	return string(p.Name)
}

func (p *Var) tiles(dst []Tile) []Tile {
	return append(dst, VariableTile(p.Name))
}

// ============================================================================
// Unary compounds
// ============================================================================

// Unary is a node applying a unary connective (negation) to a subformula.
type Unary struct {
	Op    uint
	Child Node
}

// Not constructs the negation of a given subformula.
func Not(child Node) *Unary {
	return &Unary{NOT, child}
}

// Formula implementation for Node interface.
func (p *Unary) Formula() Formula {
	return Formula{p.tiles(nil)}
}

// Equals implementation for Node interface.
func (p *Unary) Equals(other Node) bool {
	if o, ok := other.(*Unary); ok {
		return p.Op == o.Op && p.Child.Equals(o.Child)
	}
	//
	return false
}

func (p *Unary) String() string {
	return p.Formula().String()
}

func (p *Unary) tiles(dst []Tile) []Tile {
	dst = append(dst, ConnectiveTile(p.Op))
	return p.Child.tiles(dst)
}

// ============================================================================
// Binary compounds
// ============================================================================

// Binary is a node joining two subformulas with a binary connective.  Its
// canonical form is always parenthesized.
type Binary struct {
	Op    uint
	Left  Node
	Right Node
}

// NewBinary constructs a binary compound with a given connective.
func NewBinary(op uint, left Node, right Node) *Binary {
	return &Binary{op, left, right}
}

// And constructs the conjunction of two subformulas.
func And(left Node, right Node) *Binary {
	return &Binary{AND, left, right}
}

// Or constructs the disjunction of two subformulas.
func Or(left Node, right Node) *Binary {
	return &Binary{OR, left, right}
}

// Implies constructs the implication of two subformulas.
func Implies(left Node, right Node) *Binary {
	return &Binary{IMPLIES, left, right}
}

// Iff constructs the equivalence of two subformulas.
func Iff(left Node, right Node) *Binary {
	return &Binary{IFF, left, right}
}

// Formula implementation for Node interface.
func (p *Binary) Formula() Formula {
	return Formula{p.tiles(nil)}
}

// Equals implementation for Node interface.
func (p *Binary) Equals(other Node) bool {
	if o, ok := other.(*Binary); ok {
		return p.Op == o.Op && p.Left.Equals(o.Left) && p.Right.Equals(o.Right)
	}
	//
	return false
}

func (p *Binary) String() string {
	return p.Formula().String()
}

func (p *Binary) tiles(dst []Tile) []Tile {
	dst = append(dst, LParenTile())
	dst = p.Left.tiles(dst)
	dst = append(dst, ConnectiveTile(p.Op))
	dst = p.Right.tiles(dst)
	//
	return append(dst, RParenTile())
}

// ============================================================================
// Destructuring helpers
// ============================================================================

// MatchVariable checks whether a given node is a sentence letter and, if so,
// returns its name.
func MatchVariable(node Node) (rune, bool) {
	if v, ok := node.(*Var); ok {
		return v.Name, true
	}
	//
	return 0, false
}

// MatchNegation checks whether a given node is a negation and, if so, returns
// the negated subformula.
func MatchNegation(node Node) (Node, bool) {
	if u, ok := node.(*Unary); ok && u.Op == NOT {
		return u.Child, true
	}
	//
	return nil, false
}

// MatchBinary checks whether a given node is a binary compound with a given
// connective and, if so, returns its two subformulas.
func MatchBinary(node Node, op uint) (Node, Node, bool) {
	if b, ok := node.(*Binary); ok && b.Op == op {
		return b.Left, b.Right, true
	}
	//
	return nil, nil, false
}

// Variables returns the distinct sentence letters occurring in a tree, in
// alphabetical order.
func Variables(node Node) []rune {
	var (
		seen    = make(map[rune]bool)
		letters []rune
	)
	//
	collectVariables(node, seen)
	//
	for letter := range seen {
		letters = append(letters, letter)
	}
	//
	slices.Sort(letters)
	//
	return letters
}

func collectVariables(node Node, seen map[rune]bool) {
	switch n := node.(type) {
	case *Var:
		seen[n.Name] = true
	case *Unary:
		collectVariables(n.Child, seen)
	case *Binary:
		collectVariables(n.Left, seen)
		collectVariables(n.Right, seen)
	}
}
