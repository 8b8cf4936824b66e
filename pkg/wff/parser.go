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
	"github.com/consensys/go-wff/pkg/util"
	"github.com/consensys/go-wff/pkg/util/source"
	"github.com/consensys/go-wff/pkg/util/source/lex"
)

// Grammar accepted here is that of fully parenthesized formulas: a formula is
// a sentence letter, a negation of a formula, or two formulas joined by a
// binary connective.  Binary compounds are always parenthesized, except that
// the outermost parentheses of a formula may be omitted.  Thus "p∧q" and
// "(p∧q)∨r" are well formed, whilst "p∧q∨r" is not.

// Rule for describing whitespace
var whitespace lex.Scanner = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t')))

// Lexing rules for the formula alphabet.  Each connective accepts its
// canonical symbol and the common ASCII spellings.  The rule for "<->" must
// precede that for "->" so the longer spelling wins.
var rules []lex.LexRule = []lex.LexRule{
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Or(lex.Unit('¬'), lex.Unit('~'), lex.Unit('!')), NOT),
	lex.Rule(lex.Or(lex.Unit('∧'), lex.Unit('&')), AND),
	lex.Rule(lex.Or(lex.Unit('∨'), lex.Unit('|')), OR),
	lex.Rule(lex.Or(lex.Unit('↔'), lex.Str("<->")), IFF),
	lex.Rule(lex.Or(lex.Unit('→'), lex.Str("->")), IMPLIES),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(lex.Within('a', 'z'), VARIABLE),
	lex.Rule(lex.Eof(), END_OF),
}

// LexString reads a formula from text, producing its tile sequence.  Both
// canonical connective symbols and ASCII spellings (~ ! & | -> <->) are
// accepted; tiles always hold the canonical symbol.  Whitespace is dropped.
// Note the result is a token sequence which has not been checked for well
// formedness; for that, see Parse.
func LexString(input string) (Formula, *source.SyntaxError) {
	var (
		srcfile = source.NewSourceFile("formula", []byte(input))
		lexer   = lex.NewLexer(srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		return Formula{}, srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown character encountered")
	}
	// Remove any whitespace
	tokens = util.RemoveMatching(tokens, func(t lex.Token) bool {
		return t.Kind == WHITESPACE || t.Kind == END_OF
	})
	// Assemble tiles, canonicalising symbols as we go.
	tiles := make([]Tile, len(tokens))
	//
	for i, t := range tokens {
		if t.Kind == VARIABLE {
			tiles[i] = VariableTile(srcfile.Contents()[t.Span.Start()])
		} else {
			tiles[i] = NewTile(t.Kind, SymbolOf(t.Kind))
		}
	}
	//
	return NewFormula(tiles...), nil
}

// ParseString reads a formula from text and parses it into its expression
// tree in one go.
func ParseString(input string) (Node, *source.SyntaxError) {
	formula, err := LexString(input)
	if err != nil {
		return nil, err
	}
	//
	return Parse(formula)
}

// Parse a given formula into its expression tree, or fail if it is not well
// formed.  Since well-formed formulas serialize back to themselves (up to
// redundant parentheses), Parse and Node.Formula are mutually inverse.
func Parse(formula Formula) (Node, *source.SyntaxError) {
	// Reconstruct the text so errors can report a position within it.  Every
	// tile occupies exactly one character.
	srcfile := source.NewSourceFile("formula", []byte(formula.String()))
	//
	if formula.IsEmpty() {
		return nil, srcfile.SyntaxError(source.NewSpan(0, 0), "empty formula")
	}
	// Append end-of-input sentinel, so lookahead always exists.
	tiles := make([]Tile, 0, formula.Len()+1)
	tiles = append(tiles, formula.tiles...)
	tiles = append(tiles, Tile{0, END_OF})
	//
	parser := &parser{srcfile, tiles, 0}
	// Parse formula
	node, err := parser.parseFormula()
	// Check all tiles were consumed
	if err == nil && !parser.done() {
		return nil, parser.syntaxError("unexpected trailing tokens")
	} else if err != nil {
		return nil, err
	}
	//
	return node, nil
}

// ============================================================================
// Parser
// ============================================================================

type parser struct {
	srcfile *source.File
	tiles   []Tile
	// Position within the tiles
	index int
}

// Done determines whether or not the parser has consumed all tiles.
func (p *parser) done() bool {
	return p.lookahead().Kind == END_OF
}

// formula := unit (binop unit)?
//
// Observe that, at any given nesting level, at most one binary connective can
// occur.  Anything more requires explicit parentheses.
func (p *parser) parseFormula() (Node, *source.SyntaxError) {
	lhs, err := p.parseUnit()
	//
	if err != nil || !p.lookahead().IsBinary() {
		return lhs, err
	}
	// Consume connective
	op := p.expect(p.lookahead().Kind)
	// Parse rhs
	rhs, err := p.parseUnit()
	if err != nil {
		return nil, err
	}
	//
	return NewBinary(op.Kind, lhs, rhs), nil
}

// unit := variable | '¬' unit | '(' formula ')'
func (p *parser) parseUnit() (Node, *source.SyntaxError) {
	token := p.lookahead()
	//
	switch token.Kind {
	case VARIABLE:
		p.expect(VARIABLE)
		return NewVariable(token.Symbol), nil
	case NOT:
		p.expect(NOT)
		//
		child, err := p.parseUnit()
		if err != nil {
			return nil, err
		}
		//
		return Not(child), nil
	case LBRACE:
		return p.parseBracketedFormula()
	}
	//
	return nil, p.syntaxError("expected formula")
}

func (p *parser) parseBracketedFormula() (Node, *source.SyntaxError) {
	p.expect(LBRACE)
	//
	node, err := p.parseFormula()
	//
	if err == nil && !p.match(RBRACE) {
		return nil, p.syntaxError("expected ')'")
	}
	//
	return node, err
}

// Lookahead returns the next tile.  This must exist because the end-of-input
// sentinel is always appended to the tile stream.
func (p *parser) lookahead() Tile {
	return p.tiles[p.index]
}

func (p *parser) expect(kind uint) Tile {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	tile := p.tiles[p.index]
	p.index++
	//
	return tile
}

func (p *parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

// Construct a syntax error at the current position.  Since every tile
// occupies one character, tile indices are character indices.
func (p *parser) syntaxError(msg string) *source.SyntaxError {
	var (
		start = p.index
		end   = min(p.index+1, len(p.tiles)-1)
	)
	//
	return p.srcfile.SyntaxError(source.NewSpan(start, end), msg)
}
