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
package termio

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// AlignLeft indicates the contents of a column should be left aligned.
const AlignLeft = uint(0)

// AlignRight indicates the contents of a column should be right aligned.
const AlignRight = uint(1)

// TablePrinter is useful for printing tables to the terminal.
type TablePrinter struct {
	widths        []uint
	aligns        []uint
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs a new table with given dimensions.  Initially,
// all columns are left aligned.
func NewTablePrinter(width uint, height uint) *TablePrinter {
	var (
		widths  = make([]uint, width)
		aligns  = make([]uint, width)
		rows    = make([][]string, height)
		escapes = make([][]string, height)
	)
	// Construct the table
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
		escapes[i] = make([]string, width)
	}

	return &TablePrinter{widths, aligns, rows, escapes, true}
}

// Set the contents of a given cell in this table
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], uint(utf8.RuneCountInString(val)))
	p.rows[row][col] = val
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// Height returns the height of this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetRow sets the contents of an entire row in this table
func (p *TablePrinter) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = max(p.widths[i], uint(utf8.RuneCountInString(vals[i])))
	}
	// Done
	p.rows[row] = vals
}

// SetAlignment determines how the contents of a given column are aligned.
func (p *TablePrinter) SetAlignment(col uint, align uint) {
	p.aligns[col] = align
}

// SetEscape set the colour to use when printing the contents of a given cell
func (p *TablePrinter) SetEscape(col uint, row uint, escape string) {
	p.escapes[row][col] = escape
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// them as, otherwise, you get a lot of visible escape characters being
// printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetMaxWidths puts an upper bound on the width of every column.
func (p *TablePrinter) SetMaxWidths(width uint) {
	for i := uint(0); i < uint(len(p.widths)); i++ {
		p.SetMaxWidth(i, width)
	}
}

// SetMaxWidth puts an upper bound on the width of a given column.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], width)
}

// Print the table to stdout.
func (p *TablePrinter) Print() {
	p.Fprint(os.Stdout)
}

// Fprint prints the table to a given writer.
func (p *TablePrinter) Fprint(w io.Writer) {
	for i := 0; i < len(p.rows); i++ {
		row := p.rows[i]
		escapes := p.escapes[i]
		//
		for j, col := range row {
			jth := col
			jthWidth := p.widths[j]
			jthEscape := escapes[j]
			// Clip cell contents if necessary
			if uint(utf8.RuneCountInString(jth)) > jthWidth {
				runes := []rune(jth)
				jth = string(runes[0:jthWidth-2]) + ".."
			}
			// Print colour (if applicable)
			if p.enableEscapes && jthEscape != "" {
				fmt.Fprint(w, jthEscape)
			}
			// Print data
			if p.aligns[j] == AlignRight {
				fmt.Fprintf(w, " %s%s", pad(jth, jthWidth), jth)
			} else {
				fmt.Fprintf(w, " %s%s", jth, pad(jth, jthWidth))
			}
			// Cancel colour (if applicable)
			if p.enableEscapes && jthEscape != "" {
				fmt.Fprint(w, ResetAnsiEscape().Build())
			}

			fmt.Fprint(w, " |")
		}

		fmt.Fprintln(w)
	}
}

// Construct padding to bring a given cell up to the column width.  Padding is
// computed over runes, not bytes, since formulas are not ASCII.
func pad(val string, width uint) string {
	var (
		n     = uint(utf8.RuneCountInString(val))
		bytes []byte
	)
	//
	for ; n < width; n++ {
		bytes = append(bytes, ' ')
	}
	//
	return string(bytes)
}
