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

package kanata

// OutputKind tags which modifier combination an Output synthesizes.
type OutputKind uint8

const (
	Lowercase OutputKind = iota
	Uppercase
	AltGr
	ShiftAltGr
)

// Output is one synthesized keystroke: a key code plus the modifier
// combination the ChordEngine must wrap it in. A Output carrying
// KeyBackspace is never wrapped in a modifier regardless of Kind; it is
// always emitted as a bare press/release (see ChordEngine.activate).
type Output struct {
	Kind OutputKind
	Key  KeyCode
}

// NewLowercase, NewUppercase, NewAltGr and NewShiftAltGr build an Output
// of the matching kind. These mirror the four ZchOutput variants of the
// dictionary's output-character model.
func NewLowercase(k KeyCode) Output   { return Output{Kind: Lowercase, Key: k} }
func NewUppercase(k KeyCode) Output   { return Output{Kind: Uppercase, Key: k} }
func NewAltGr(k KeyCode) Output       { return Output{Kind: AltGr, Key: k} }
func NewShiftAltGr(k KeyCode) Output  { return Output{Kind: ShiftAltGr, Key: k} }

// IsBackspace reports whether o represents a literal backspace
// keystroke, which display-length accounting and smart-space erasure
// treat specially.
func (o Output) IsBackspace() bool {
	return o.Key == KeyBackspace
}

// DisplayLen returns the contribution o makes to an activation's
// display length: -1 for a backspace (it erases one already-displayed
// character), +1 for anything else (it adds one visible grapheme).
func (o Output) DisplayLen() int {
	if o.IsBackspace() {
		return -1
	}
	return 1
}

// DisplayLen sums DisplayLen over a sequence of outputs, as recorded
// after every chord activation for later smart-space erasure.
func DisplayLen(outputs []Output) int {
	total := 0
	for _, o := range outputs {
		total += o.DisplayLen()
	}
	return total
}
