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
	"github.com/consensys/go-wff/pkg/rules"
	"github.com/consensys/go-wff/pkg/wff"
)

// GraphNode is one formula in a derivation graph, together with how it got
// there.  Leaves have no parents; for derived nodes, Rule names the inference
// whose premises the parent edges point at.
type GraphNode struct {
	// Formula derived at this node.
	Formula wff.Node
	// Rule used to derive this node.  Meaningful only when Parents is
	// non-empty.
	Rule rules.Rule
	// Identifiers of the nodes this one was derived from, always strictly
	// smaller than this node's own identifier.
	Parents []uint
}

// Graph is an arena of derivation steps, addressed by integer identifier in
// insertion order.  Each distinct formula appears at most once, keyed by its
// canonical text.
type Graph struct {
	nodes []GraphNode
	// Map from canonical formula text to node identifier.
	ids map[string]uint
}

// NewGraph constructs an empty derivation graph.
func NewGraph() *Graph {
	return &Graph{ids: make(map[string]uint)}
}

// Len returns the number of nodes in this graph.
func (p *Graph) Len() uint {
	return uint(len(p.nodes))
}

// Node returns the node with a given identifier.
func (p *Graph) Node(id uint) GraphNode {
	return p.nodes[id]
}

// Formulas returns every formula in the graph, in identifier order.  This is
// the pool the forward rule engines run over during generation.
func (p *Graph) Formulas() []wff.Node {
	formulas := make([]wff.Node, len(p.nodes))
	//
	for i, node := range p.nodes {
		formulas[i] = node.Formula
	}
	//
	return formulas
}

// Contains checks whether a formula already has a node in this graph.
func (p *Graph) Contains(formula wff.Node) bool {
	_, ok := p.Id(formula)
	//
	return ok
}

// Id returns the identifier of the node holding a given formula, if any.
func (p *Graph) Id(formula wff.Node) (uint, bool) {
	id, ok := p.ids[formula.Formula().String()]
	//
	return id, ok
}

// AddLeaf appends a parentless node (a seed of the generation attempt),
// returning its identifier.  Adding a formula already present returns the
// existing identifier instead.
func (p *Graph) AddLeaf(formula wff.Node) uint {
	return p.Add(formula, 0, nil)
}

// Add appends a node derived from the given parents, returning its
// identifier.  Adding a formula already present returns the existing
// identifier instead.
func (p *Graph) Add(formula wff.Node, rule rules.Rule, parents []uint) uint {
	key := formula.Formula().String()
	//
	if id, ok := p.ids[key]; ok {
		return id
	}
	//
	id := uint(len(p.nodes))
	p.nodes = append(p.nodes, GraphNode{formula, rule, parents})
	p.ids[key] = id
	//
	return id
}

// IsLeaf checks whether a given node has no parents.
func (p *Graph) IsLeaf(id uint) bool {
	return len(p.nodes[id].Parents) == 0
}

// Depth returns the length of the longest derivation chain beneath a given
// node; leaves sit at depth zero.  Since parent identifiers are always
// strictly smaller, one pass in identifier order suffices.
func (p *Graph) Depth(id uint) uint {
	depths := make([]uint, id+1)
	//
	for i := uint(0); i <= id; i++ {
		for _, parent := range p.nodes[i].Parents {
			depths[i] = max(depths[i], depths[parent]+1)
		}
	}
	//
	return depths[id]
}
