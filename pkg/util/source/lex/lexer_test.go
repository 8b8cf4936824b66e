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
package lex

import (
	"slices"
	"testing"

	"github.com/consensys/go-wff/pkg/util/source"
)

func TestLexer_00(t *testing.T) {
	var tokens = []Token{
		{END_OF, source.NewSpan(0, 0)},
	}

	checkLexer(t, "", 0, tokens...)
}

func TestLexer_01(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{END_OF, source.NewSpan(1, 1)},
	}

	checkLexer(t, "(", 0, tokens...)
}

func TestLexer_02(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{RBRACE, source.NewSpan(1, 2)},
		{END_OF, source.NewSpan(2, 2)},
	}

	checkLexer(t, "()", 0, tokens...)
}

func TestLexer_03(t *testing.T) {
	var tokens = []Token{}

	checkLexer(t, "9", 1, tokens...)
}

func TestLexer_04(t *testing.T) {
	var tokens = []Token{
		{VAR, source.NewSpan(0, 1)},
		{WSPACE, source.NewSpan(1, 2)},
		{AND, source.NewSpan(2, 3)},
		{WSPACE, source.NewSpan(3, 4)},
		{VAR, source.NewSpan(4, 5)},
		{END_OF, source.NewSpan(5, 5)},
	}

	checkLexer(t, "p ∧ q", 0, tokens...)
}

func TestLexer_05(t *testing.T) {
	var tokens = []Token{
		{VAR, source.NewSpan(0, 1)},
		{WSPACE, source.NewSpan(1, 3)},
		{OR, source.NewSpan(3, 4)},
		{VAR, source.NewSpan(4, 5)},
		{END_OF, source.NewSpan(5, 5)},
	}

	checkLexer(t, "p  |q", 0, tokens...)
}

func TestLexer_06(t *testing.T) {
	var tokens = []Token{
		{NOT, source.NewSpan(0, 1)},
		{VAR, source.NewSpan(1, 2)},
		{END_OF, source.NewSpan(2, 2)},
	}

	checkLexer(t, "¬p", 0, tokens...)
}

func TestLexer_07(t *testing.T) {
	// Longest match: "<->" must not lex as "<" followed by "->".
	var tokens = []Token{
		{VAR, source.NewSpan(0, 1)},
		{IFF, source.NewSpan(1, 4)},
		{VAR, source.NewSpan(4, 5)},
		{END_OF, source.NewSpan(5, 5)},
	}

	checkLexer(t, "p<->q", 0, tokens...)
}

func TestLexer_08(t *testing.T) {
	var tokens = []Token{
		{VAR, source.NewSpan(0, 1)},
		{IMPLIES, source.NewSpan(1, 3)},
		{VAR, source.NewSpan(3, 4)},
		{END_OF, source.NewSpan(4, 4)},
	}

	checkLexer(t, "p->q", 0, tokens...)
}

func TestLexer_09(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{VAR, source.NewSpan(1, 2)},
		{IMPLIES, source.NewSpan(2, 3)},
		{VAR, source.NewSpan(3, 4)},
		{RBRACE, source.NewSpan(4, 5)},
		{END_OF, source.NewSpan(5, 5)},
	}

	checkLexer(t, "(p→q)", 0, tokens...)
}

// ==================================================================
// Framework
// ==================================================================

const END_OF uint = 0
const WSPACE uint = 1
const LBRACE uint = 2
const RBRACE uint = 3
const VAR uint = 4
const NOT uint = 5
const AND uint = 6
const OR uint = 7
const IMPLIES uint = 8
const IFF uint = 9

// Rule for describing whitespace
var whitespace Scanner = Many(Or(Unit(' '), Unit('\t')))

// lexing rules
var rules []LexRule = []LexRule{
	Rule(Unit('('), LBRACE),
	Rule(Unit(')'), RBRACE),
	Rule(Or(Unit('¬'), Unit('~'), Unit('!')), NOT),
	Rule(Or(Unit('∧'), Unit('&')), AND),
	Rule(Or(Unit('∨'), Unit('|')), OR),
	Rule(Or(Unit('↔'), Str("<->")), IFF),
	Rule(Or(Unit('→'), Str("->")), IMPLIES),
	Rule(whitespace, WSPACE),
	Rule(Within('a', 'z'), VAR),
	Rule(Eof(), END_OF),
}

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	items := []rune(input)
	// Construct text lexer
	lexer := NewLexer(items, rules...)
	// Apply lexer
	tokens := lexer.Collect()
	// Keep scanning
	if !slices.Equal(tokens, expected) {
		t.Errorf("got %v, expected %v", tokens, expected)
	} else if lexer.Remaining() != remainder {
		n := len(items) - int(lexer.Remaining())
		t.Errorf("unmatched items: %v", items[n:])
	}
}
