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

// Package proof provides the representation of natural deduction proofs, a
// line-oriented textual format for them, and a validator which checks a
// proof line by line against the rule catalog.
package proof

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-wff/pkg/rules"
)

// Justification records why a proof line is claimed to hold.  The set of
// implementations is closed, hence the validator can switch exhaustively
// over the variants.
type Justification interface {
	// Citations returns the line numbers this justification refers to.
	Citations() []uint
	// String returns the customary rendering, e.g. "MP 1, 2".
	String() string
	// Seals the variant set.
	isJustification()
}

// ============================================================================
// Premise
// ============================================================================

// Premise marks a line granted as part of the problem.
type Premise struct{}

// Citations implementation for Justification interface.
func (p *Premise) Citations() []uint {
	return nil
}

// String implementation for Justification interface.
func (p *Premise) String() string {
	return "Premise"
}

func (p *Premise) isJustification() {}

// ============================================================================
// Assumption
// ============================================================================

// Assumption marks a line assumed for the sake of argument, as the opening
// line of a subproof.
type Assumption struct{}

// Citations implementation for Justification interface.
func (p *Assumption) Citations() []uint {
	return nil
}

// String implementation for Justification interface.
func (p *Assumption) String() string {
	return "Assumption"
}

func (p *Assumption) isJustification() {}

// ============================================================================
// Inference
// ============================================================================

// Inference justifies a line by a forward rule applied to cited earlier
// lines, in the order the rule's pattern expects them.
type Inference struct {
	// Rule being applied.
	Rule rules.Rule
	// Lines cited, in pattern order.
	Lines []uint
}

// Citations implementation for Justification interface.
func (p *Inference) Citations() []uint {
	return p.Lines
}

// String implementation for Justification interface.
func (p *Inference) String() string {
	return fmt.Sprintf("%s %s", p.Rule.Mnemonic(), formatCitations(p.Lines))
}

func (p *Inference) isJustification() {}

// ============================================================================
// Replacement
// ============================================================================

// Replacement justifies a line as an equivalence rewrite of a single cited
// earlier line.
type Replacement struct {
	// Rule being applied.
	Rule rules.Equivalence
	// Line cited.
	Line uint
}

// Citations implementation for Justification interface.
func (p *Replacement) Citations() []uint {
	return []uint{p.Line}
}

// String implementation for Justification interface.
func (p *Replacement) String() string {
	return fmt.Sprintf("%s %d", p.Rule.Mnemonic(), p.Line)
}

func (p *Replacement) isJustification() {}

// ============================================================================
// Reiteration
// ============================================================================

// Reiteration repeats an earlier line verbatim.
type Reiteration struct {
	// Line cited.
	Line uint
}

// Citations implementation for Justification interface.
func (p *Reiteration) Citations() []uint {
	return []uint{p.Line}
}

// String implementation for Justification interface.
func (p *Reiteration) String() string {
	return fmt.Sprintf("Reit %d", p.Line)
}

func (p *Reiteration) isJustification() {}

// ============================================================================
// Implication Introduction
// ============================================================================

// ImplicationIntroduction discharges a conditional subproof running between
// two lines.  The variant is reserved: the validator rejects it until
// subproof scoping exists.
type ImplicationIntroduction struct {
	// First line of the subproof.
	First uint
	// Last line of the subproof.
	Last uint
}

// Citations implementation for Justification interface.
func (p *ImplicationIntroduction) Citations() []uint {
	return []uint{p.First, p.Last}
}

// String implementation for Justification interface.
func (p *ImplicationIntroduction) String() string {
	return fmt.Sprintf("CP %d-%d", p.First, p.Last)
}

func (p *ImplicationIntroduction) isJustification() {}

// ============================================================================
// Reductio Ad Absurdum
// ============================================================================

// ReductioAdAbsurdum discharges an indirect subproof running between two
// lines.  The variant is reserved: the validator rejects it until subproof
// scoping exists.
type ReductioAdAbsurdum struct {
	// First line of the subproof.
	First uint
	// Last line of the subproof.
	Last uint
}

// Citations implementation for Justification interface.
func (p *ReductioAdAbsurdum) Citations() []uint {
	return []uint{p.First, p.Last}
}

// String implementation for Justification interface.
func (p *ReductioAdAbsurdum) String() string {
	return fmt.Sprintf("RAA %d-%d", p.First, p.Last)
}

func (p *ReductioAdAbsurdum) isJustification() {}

// ============================================================================
// Helpers
// ============================================================================

func formatCitations(lines []uint) string {
	var parts []string
	//
	for _, line := range lines {
		parts = append(parts, strconv.FormatUint(uint64(line), 10))
	}
	//
	return strings.Join(parts, ", ")
}
