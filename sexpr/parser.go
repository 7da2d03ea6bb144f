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

package sexpr

// SExprKind distinguishes an atom leaf from a nested list.
type SExprKind uint8

const (
	AtomExpr SExprKind = iota
	ListExpr
)

// SExpr is either a leaf Atom(text) or a List of child SExprs, each
// carrying the Span it was parsed from.
type SExpr struct {
	Kind     SExprKind
	Text     string
	Children []SExpr
	Span     Span
}

// Atom reports the atom text and true if e is an atom.
func (e SExpr) Atom() (string, bool) {
	if e.Kind == AtomExpr {
		return e.Text, true
	}
	return "", false
}

// List reports the child list and true if e is a list.
func (e SExpr) List() ([]SExpr, bool) {
	if e.Kind == ListExpr {
		return e.Children, true
	}
	return nil, false
}

// ParseError reports a structural problem (mismatched parens, a
// top-level atom) found while folding tokens into SExprs.
type ParseError struct {
	Span    Span
	Message string
}

func (e *ParseError) Error() string {
	return e.Span.String() + ": " + e.Message
}

type frame struct {
	children []SExpr
	start    Position
}

// Parse lexes and parses src in one call, discarding comments and
// whitespace. Every top-level form must be a list; an error is
// returned for a misplaced paren or a top-level atom.
func Parse(fileName, src string) ([]SExpr, error) {
	lexer := NewLexer(fileName, src)
	tokens, err := lexer.Tokens()
	if err != nil {
		return nil, err
	}
	return ParseTokens(fileName, src, tokens)
}

// ParseTokens folds an already-lexed token stream into top-level
// SExprs, as Parse does.
func ParseTokens(fileName, src string, tokens []Token) ([]SExpr, error) {
	var stack []frame
	var top []SExpr

	for _, tok := range tokens {
		switch tok.Kind {
		case Whitespace, LineComment, BlockComment:
			continue
		case Open:
			stack = append(stack, frame{start: tok.Span.Start})
		case Close:
			if len(stack) == 0 {
				return nil, &ParseError{Span: tok.Span, Message: "Unexpected closing parenthesis"}
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			list := SExpr{
				Kind:     ListExpr,
				Children: f.children,
				Span:     Span{Start: f.start, End: tok.Span.End, FileName: fileName, FileContent: src},
			}
			if len(stack) == 0 {
				top = append(top, list)
			} else {
				stack[len(stack)-1].children = append(stack[len(stack)-1].children, list)
			}
		case Atom:
			atom := SExpr{Kind: AtomExpr, Text: tok.Text, Span: tok.Span}
			if len(stack) == 0 {
				return nil, &ParseError{Span: tok.Span, Message: "Everything must be in a list"}
			}
			stack[len(stack)-1].children = append(stack[len(stack)-1].children, atom)
		}
	}

	if len(stack) > 0 {
		f := stack[len(stack)-1]
		return nil, &ParseError{
			Span:    Span{Start: f.start, End: f.start, FileName: fileName, FileContent: src},
			Message: "Unclosed opening parenthesis",
		}
	}
	return top, nil
}
