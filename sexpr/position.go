// Copyright 2026 The Kanata Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sexpr implements a lexer and parser for the s-expression
// configuration syntax used to declare a zippychord block and its
// options. It has no dependency on the chord engine itself.
package sexpr

import "fmt"

// Position tracks a byte offset into a source file along with the
// line it falls on and the byte offset of that line's start, so spans
// can be rendered as "file:line" without rescanning the source.
type Position struct {
	Absolute     int
	Line         int // 1-based
	LineBeginning int
}

// Span covers a half-open byte range [Start, End) of FileContent,
// named by FileName for diagnostics.
type Span struct {
	Start, End  Position
	FileName    string
	FileContent string
}

// Text returns the source text the span covers.
func (s Span) Text() string {
	return s.FileContent[s.Start.Absolute:s.End.Absolute]
}

// String renders "file:line" for use in error messages.
func (s Span) String() string {
	return fmt.Sprintf("%s:%d", s.FileName, s.Start.Line)
}

// Spanned pairs a value with the source span it was parsed from.
type Spanned[T any] struct {
	Value T
	Span  Span
}
