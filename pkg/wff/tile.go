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

import "fmt"

// END_OF signals "end of input".  It never occurs within a formula, being
// appended internally during parsing.
const END_OF uint = 0

// WHITESPACE signals whitespace.  Whitespace is accepted when reading a
// formula from text, but is dropped before the tiles are assembled.
const WHITESPACE uint = 1

// LBRACE signals "left parenthesis"
const LBRACE uint = 2

// RBRACE signals "right parenthesis"
const RBRACE uint = 3

// VARIABLE signals a sentence letter (a lowercase variable).
const VARIABLE uint = 4

// NOT represents logical negation
const NOT uint = 5

// AND represents logical conjunction
const AND uint = 6

// OR represents logical disjunction
const OR uint = 7

// IMPLIES represents material implication
const IMPLIES uint = 8

// IFF represents material equivalence
const IFF uint = 9

// BINARY captures the set of binary connectives.
var BINARY = []uint{AND, OR, IMPLIES, IFF}

// Tile is an atomic token of the formula language: a sentence letter, a
// connective or a parenthesis.  Tiles always carry the canonical symbol for
// their kind, regardless of how they were originally spelt.
type Tile struct {
	Symbol rune
	Kind   uint
}

// NewTile constructs a tile of a given kind carrying a given symbol.
func NewTile(kind uint, symbol rune) Tile {
	return Tile{symbol, kind}
}

// VariableTile constructs a tile for a given sentence letter.
func VariableTile(name rune) Tile {
	if name < 'a' || name > 'z' {
		panic(fmt.Sprintf("invalid variable '%c'", name))
	}
	//
	return Tile{name, VARIABLE}
}

// ConnectiveTile constructs a tile for a given connective kind.
func ConnectiveTile(kind uint) Tile {
	return Tile{SymbolOf(kind), kind}
}

// LParenTile constructs a left parenthesis tile.
func LParenTile() Tile {
	return Tile{'(', LBRACE}
}

// RParenTile constructs a right parenthesis tile.
func RParenTile() Tile {
	return Tile{')', RBRACE}
}

// IsBinary checks whether this tile is a binary connective.
func (p Tile) IsBinary() bool {
	return p.Kind == AND || p.Kind == OR || p.Kind == IMPLIES || p.Kind == IFF
}

// String returns the symbol of this tile.
func (p Tile) String() string {
	return string(p.Symbol)
}

// SymbolOf returns the canonical symbol for a given connective or parenthesis
// kind.
func SymbolOf(kind uint) rune {
	switch kind {
	case LBRACE:
		return '('
	case RBRACE:
		return ')'
	case NOT:
		return '¬'
	case AND:
		return '∧'
	case OR:
		return '∨'
	case IMPLIES:
		return '→'
	case IFF:
		return '↔'
	}
	//
	panic(fmt.Sprintf("kind %d has no canonical symbol", kind))
}
