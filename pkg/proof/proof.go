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
package proof

import (
	"strings"

	"github.com/consensys/go-wff/pkg/wff"
)

// Line is a single line of a proof: a numbered formula together with its
// justification.
type Line struct {
	// Number of this line, counting from 1.
	Number uint
	// Formula claimed at this line.
	Formula wff.Formula
	// Justification records why the formula is claimed to hold.
	Justification Justification
	// Depth is the nesting depth of the enclosing subproof.  Top-level lines
	// sit at depth zero, and the validator currently admits nothing deeper.
	Depth uint
}

// Proof is a sequence of lines intended to derive its final formula from
// granted premises.
type Proof struct {
	Lines []Line
}

// Append adds a line holding a given formula and justification, numbering it
// automatically.  The assigned number is returned.
func (p *Proof) Append(formula wff.Formula, justification Justification) uint {
	number := uint(len(p.Lines)) + 1
	p.Lines = append(p.Lines, Line{number, formula, justification, 0})
	//
	return number
}

// Line returns a line by number.
func (p *Proof) Line(number uint) (Line, bool) {
	if number == 0 || number > uint(len(p.Lines)) {
		return Line{}, false
	}
	//
	return p.Lines[number-1], true
}

// Final returns the formula of the last line, which is what the proof
// derives overall.
func (p *Proof) Final() (wff.Formula, bool) {
	if len(p.Lines) == 0 {
		return wff.Formula{}, false
	}
	//
	return p.Lines[len(p.Lines)-1].Formula, true
}

// String returns the textual form of this proof, line per line.  The result
// parses back via ParseProof, provided every justification has a textual
// form.
func (p *Proof) String() string {
	var builder strings.Builder
	//
	for _, line := range p.Lines {
		builder.WriteString(line.Formula.String())
		builder.WriteString("  ")
		builder.WriteString(textOf(line.Justification))
		builder.WriteString("\n")
	}
	//
	return builder.String()
}
