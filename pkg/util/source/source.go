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
package source

import (
	"fmt"
	"os"
)

// Span represents a contiguous slice of an original input string.  Rather than
// holding the text itself, it retains the physical indices so that enclosing
// lines (etc) can be determined later for error reporting.
type Span struct {
	// Index of the first character of this span.
	start int
	// One past the final character of this span.
	end int
}

// NewSpan constructs a span whilst checking its internal invariant.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}
	//
	return Span{start, end}
}

// Start returns the index of the first character of this span.
func (p Span) Start() int {
	return p.start
}

// End returns one past the final character of this span.
func (p Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span.
func (p Span) Length() int {
	return p.end - p.start
}

// File represents a given input under a given name.  The input is usually a
// file stored on disk but can equally be, for example, a formula passed on the
// command line.
type File struct {
	// Name of this input (e.g. its filename).
	filename string
	// Characters making up this input.
	contents []rune
}

// NewSourceFile constructs a source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	return &File{filename, []rune(string(bytes))}
}

// ReadFile reads a source file from disk, or produces an error.
func ReadFile(filename string) (*File, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	return NewSourceFile(filename, bytes), nil
}

// Filename returns the name associated with this input.
func (p *File) Filename() string {
	return p.filename
}

// Contents returns the characters making up this input.
func (p *File) Contents() []rune {
	return p.contents
}

// Text returns the text enclosed by a given span of this input.
func (p *File) Text(span Span) string {
	return string(p.contents[span.start:span.end])
}

// SyntaxError constructs a syntax error over a given span of this input with a
// given message.
func (p *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{p, span, msg}
}

// EnclosingLine determines the line which encloses the start of a given span.
// If the span starts beyond the bounds of the input then the last physical
// line is returned.
func (p *File) EnclosingLine(span Span) Line {
	var (
		index = span.start
		num   = 1
		start = 0
	)
	//
	for i := 0; i < len(p.contents); i++ {
		if i == index {
			return Line{p, Span{start, endOfLine(index, p.contents)}, num}
		} else if p.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	return Line{p, Span{start, len(p.contents)}, num}
}

// Line provides information about a given line within an input.  This includes
// its line number (counting from 1) and its span within the original text.
type Line struct {
	file *File
	span Span
	// Line number, counting from 1.
	number int
}

// String returns the text of this line.
func (p Line) String() string {
	return p.file.Text(p.span)
}

// Number returns the line number of this line, counting from 1.
func (p Line) Number() int {
	return p.number
}

// Start returns the starting index of this line in the original input.
func (p Line) Start() int {
	return p.span.start
}

// SyntaxError is a structured error which retains the position within the
// original input where the error arose, along with a message.
type SyntaxError struct {
	srcfile *File
	// Span of the input on which this error is reported.
	span Span
	// Message being reported.
	msg string
}

// SourceFile returns the input to which this error relates.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original input on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message being reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface, reporting the position as
// "name:line:column".
func (p *SyntaxError) Error() string {
	line := p.srcfile.EnclosingLine(p.span)
	col := p.span.start - line.Start()
	//
	return fmt.Sprintf("%s:%d:%d: %s", p.srcfile.filename, line.Number(), col+1, p.msg)
}

// FirstEnclosingLine determines the line on which this error begins.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.EnclosingLine(p.span)
}

// Find the end of the line enclosing a given index.
func endOfLine(index int, text []rune) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	// No end in sight!
	return len(text)
}
