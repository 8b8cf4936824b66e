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

import (
	"slices"
	"strings"
)

// Formula is the token-sequence form of a formula: an ordered, immutable
// sequence of tiles.  A Formula is not necessarily well formed; whether it is
// can be determined by parsing it.  Two formulas are considered equal exactly
// when their parsed trees are structurally equal, hence "p∧q" and "(p∧q)"
// denote the same formula.
type Formula struct {
	tiles []Tile
}

// NewFormula constructs a formula from a given sequence of tiles.
func NewFormula(tiles ...Tile) Formula {
	return Formula{tiles}
}

// Tiles returns the tiles making up this formula.  The returned array must
// not be modified.
func (p Formula) Tiles() []Tile {
	return p.tiles
}

// Len returns the number of tiles in this formula.
func (p Formula) Len() uint {
	return uint(len(p.tiles))
}

// IsEmpty checks whether this formula contains any tiles at all.
func (p Formula) IsEmpty() bool {
	return len(p.tiles) == 0
}

// String returns the concatenated symbols of this formula.
func (p Formula) String() string {
	var builder strings.Builder
	//
	for _, t := range p.tiles {
		builder.WriteRune(t.Symbol)
	}
	//
	return builder.String()
}

// Equals determines whether two formulas denote the same well-formed formula.
// Formulas which fail to parse are compared tile for tile.
func (p Formula) Equals(other Formula) bool {
	lhs, errl := Parse(p)
	rhs, errr := Parse(other)
	// Compare parse trees where possible
	if errl == nil && errr == nil {
		return lhs.Equals(rhs)
	} else if errl != nil && errr != nil {
		return slices.Equal(p.tiles, other.tiles)
	}
	//
	return false
}
