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
	"strconv"
	"strings"

	"github.com/consensys/go-wff/pkg/rules"
	"github.com/consensys/go-wff/pkg/util/source"
	"github.com/consensys/go-wff/pkg/wff"
)

// ParseProof parses the textual form of a proof.  Each non-blank line holds
// one formula (without interior whitespace), a justification keyword and any
// cited line numbers, all separated by whitespace; '#' starts a comment
// running to the end of the physical line.  Proof lines are numbered
// implicitly, counting from 1.
//
// Parsing is tile-level only: a line whose formula lexes but does not parse
// is accepted here and rejected by the validator, which reports it against
// its proof line number.
func ParseProof(srcfile *source.File) (Proof, *source.SyntaxError) {
	var (
		prf      Proof
		contents = srcfile.Contents()
		start    = 0
	)
	//
	for start <= len(contents) {
		end := scanLine(contents, start)
		//
		fields := splitFields(contents, start, end)
		if len(fields) > 0 {
			formula, justification, err := parseProofLine(srcfile, fields)
			if err != nil {
				return Proof{}, err
			}
			//
			prf.Append(formula, justification)
		}
		//
		start = end + 1
	}
	//
	return prf, nil
}

// Parse a single proof line, already split into its fields.
func parseProofLine(srcfile *source.File, fields []field) (wff.Formula, Justification, *source.SyntaxError) {
	formula, err := wff.LexString(fields[0].text)
	if err != nil {
		// Reanchor the error against the proof file.
		return wff.Formula{}, nil, srcfile.SyntaxError(shift(err.Span(), fields[0].span.Start()), err.Message())
	}
	//
	if len(fields) == 1 {
		return wff.Formula{}, nil, srcfile.SyntaxError(fields[0].span, "missing justification")
	}
	//
	justification, serr := parseJustification(srcfile, fields[1], fields[2:])
	if serr != nil {
		return wff.Formula{}, nil, serr
	}
	//
	return formula, justification, nil
}

// Parse a justification keyword along with its cited line numbers.
func parseJustification(srcfile *source.File, keyword field, rest []field) (Justification, *source.SyntaxError) {
	switch {
	case strings.EqualFold(keyword.text, "premise"):
		if len(rest) != 0 {
			return nil, srcfile.SyntaxError(rest[0].span, "premises cite nothing")
		}
		//
		return &Premise{}, nil
	case strings.EqualFold(keyword.text, "assume"):
		if len(rest) != 0 {
			return nil, srcfile.SyntaxError(rest[0].span, "assumptions cite nothing")
		}
		//
		return &Assumption{}, nil
	}
	// Remaining keywords all carry citations.
	citations, serr := parseCitations(srcfile, rest)
	//
	switch rule, ok := rules.ParseRule(keyword.text); {
	case serr != nil && knownKeyword(keyword.text):
		return nil, serr
	case strings.EqualFold(keyword.text, "reit"):
		if len(citations) != 1 {
			return nil, srcfile.SyntaxError(keyword.span, "reit cites exactly one line")
		}
		//
		return &Reiteration{citations[0]}, nil
	case ok:
		// Citation counts are checked by the validator, which reports them
		// against the proof line.
		return &Inference{rule, citations}, nil
	}
	//
	if equivalence, ok := rules.ParseEquivalence(keyword.text); ok {
		if len(citations) != 1 {
			return nil, srcfile.SyntaxError(keyword.span, keyword.text+" cites exactly one line")
		}
		//
		return &Replacement{equivalence, citations[0]}, nil
	}
	//
	return nil, srcfile.SyntaxError(keyword.span, "unknown justification \""+keyword.text+"\"")
}

// Check whether a keyword names some justification, ignoring its citations.
func knownKeyword(keyword string) bool {
	if strings.EqualFold(keyword, "reit") {
		return true
	} else if _, ok := rules.ParseRule(keyword); ok {
		return true
	}
	//
	_, ok := rules.ParseEquivalence(keyword)
	//
	return ok
}

func parseCitations(srcfile *source.File, fields []field) ([]uint, *source.SyntaxError) {
	var citations []uint
	//
	for _, f := range fields {
		number, err := strconv.ParseUint(f.text, 10, 32)
		if err != nil {
			return nil, srcfile.SyntaxError(f.span, "expected a line number")
		}
		//
		citations = append(citations, uint(number))
	}
	//
	return citations, nil
}

// ============================================================================
// Serialization
// ============================================================================

// Render a justification in the keyword form ParseProof accepts.
func textOf(justification Justification) string {
	var keyword string
	//
	switch j := justification.(type) {
	case *Premise:
		return "premise"
	case *Assumption:
		return "assume"
	case *Reiteration:
		keyword = "reit"
	case *Inference:
		keyword = strings.ToLower(j.Rule.Mnemonic())
	case *Replacement:
		keyword = strings.ToLower(j.Rule.Mnemonic())
	default:
		// Reserved variants have no textual form.
		return strings.ToLower(justification.String())
	}
	//
	parts := []string{keyword}
	//
	for _, citation := range justification.Citations() {
		parts = append(parts, strconv.FormatUint(uint64(citation), 10))
	}
	//
	return strings.Join(parts, " ")
}

// ============================================================================
// Helpers
// ============================================================================

// field is a whitespace-delimited chunk of a physical line, with its span in
// the original input.
type field struct {
	text string
	span source.Span
}

// Find the end of the physical line starting at a given index, i.e. the
// index of the next newline (or the end of input).
func scanLine(contents []rune, start int) int {
	for i := start; i < len(contents); i++ {
		if contents[i] == '\n' {
			return i
		}
	}
	//
	return len(contents)
}

// Split a physical line into its fields, dropping any comment.
func splitFields(contents []rune, start int, end int) []field {
	var fields []field
	//
	for i := start; i < end; {
		// Skip leading whitespace.
		for i < end && isSpace(contents[i]) {
			i++
		}
		// Comments run to the end of the line.
		if i < end && contents[i] == '#' {
			break
		}
		//
		j := i
		for j < end && !isSpace(contents[j]) && contents[j] != '#' {
			j++
		}
		//
		if j > i {
			fields = append(fields, field{string(contents[i:j]), source.NewSpan(i, j)})
		}
		//
		i = j
	}
	//
	return fields
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

// Shift a span rightwards, reanchoring it within an enclosing input.
func shift(span source.Span, offset int) source.Span {
	return source.NewSpan(span.Start()+offset, span.End()+offset)
}
