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

package zippy

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nightscape/kanata"
)

// zchBackspace and zchExplicitSpace are the two literal escape
// characters a dictionary's output column may contain: a backspace
// glyph requesting erasure of one already-displayed character, and an
// open-box glyph forcing a space even mid-word.
const (
	zchBackspace     = '⌫'
	zchExplicitSpace = '␣'
)

var lowerCaser = cases.Lower(language.Und)

// ZippyFileLoader parses a tab-separated chord dictionary into a
// kanata.ChordMap, consulting a ZippyConfig for the character→Output
// mapping.
type ZippyFileLoader struct {
	Config ZippyConfig
	Log    logrus.FieldLogger
}

// NewZippyFileLoader builds a loader over cfg. A nil logger falls back
// to a discard logger.
func NewZippyFileLoader(cfg ZippyConfig, log logrus.FieldLogger) *ZippyFileLoader {
	if log == nil {
		discard := logrus.New()
		discard.Out = discardWriter{}
		log = discard
	}
	return &ZippyFileLoader{Config: cfg, Log: log}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// Load parses fileName's contents into a ChordMap. Blank lines and
// lines starting with "//" are skipped.
func (l *ZippyFileLoader) Load(fileName, content string) (*kanata.ChordMap, error) {
	root := kanata.NewChordMap()
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")

	chords := 0
	for lineNo, line := range lines {
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if err := l.loadLine(root, fileName, lineNo+1, line); err != nil {
			return nil, err
		}
		chords++
	}
	l.Log.WithFields(logrus.Fields{"file": fileName, "chords": chords}).Info("zippy: dictionary loaded")
	return root, nil
}

func (l *ZippyFileLoader) loadLine(root *kanata.ChordMap, fileName string, lineNo int, line string) error {
	tabIdx := strings.IndexByte(line, '\t')
	if tabIdx < 0 {
		return &DictionaryError{File: fileName, Line: lineNo, Message: "missing tab separating input from output"}
	}
	input, output := line[:tabIdx], line[tabIdx+1:]
	if input == "" {
		return &DictionaryError{File: fileName, Line: lineNo, Message: "empty input"}
	}

	outputs, err := l.translateOutput(fileName, lineNo, output)
	if err != nil {
		return err
	}

	steps, err := splitSteps(fileName, lineNo, input)
	if err != nil {
		return err
	}

	m := root
	for i, step := range steps {
		keys := kanata.NewSortedKeySet()
		for _, ch := range step {
			k, ok := l.keyForRune(ch)
			if !ok {
				return &DictionaryError{File: fileName, Line: lineNo, Message: "unknown key name for character " + string(ch)}
			}
			keys.Insert(k)
		}
		sorted := keys.Keys()

		if i == len(steps)-1 {
			if err := m.InsertSorted(sorted, &kanata.ChordNode{Output: outputs}); err != nil {
				return &DictionaryError{File: fileName, Line: lineNo, Message: "duplicate input chord"}
			}
			return nil
		}

		result := m.QuerySorted(sorted)
		if result.Kind == kanata.Hit {
			m = result.Node.GetOrCreateFollowups()
			continue
		}
		node := &kanata.ChordNode{}
		if err := m.InsertSorted(sorted, node); err != nil {
			return &DictionaryError{File: fileName, Line: lineNo, Message: "duplicate input chord"}
		}
		m = node.GetOrCreateFollowups()
	}
	return nil
}

// splitSteps peels the space-separated chord steps out of input. A
// leading space in a step means SPACE is part of that step.
func splitSteps(fileName string, lineNo int, input string) ([]string, error) {
	var steps []string
	rest := input
	for len(rest) > 0 {
		if rest[0] == ' ' {
			rest = rest[1:]
			next := strings.IndexByte(rest, ' ')
			if next < 0 {
				steps = append(steps, " "+rest)
				rest = ""
			} else {
				steps = append(steps, " "+rest[:next])
				rest = rest[next+1:]
			}
			continue
		}
		next := strings.IndexByte(rest, ' ')
		if next < 0 {
			steps = append(steps, rest)
			rest = ""
		} else {
			steps = append(steps, rest[:next])
			rest = rest[next+1:]
		}
	}
	if len(steps) == 0 {
		return nil, &DictionaryError{File: fileName, Line: lineNo, Message: "empty input"}
	}
	return steps, nil
}

// keyForRune resolves one chord-step character to a KeyCode: a literal
// space maps to KeySpace directly, everything else goes through the
// default name table (characters are looked up by their single-rune
// string form, case-insensitively).
func (l *ZippyFileLoader) keyForRune(ch rune) (kanata.KeyCode, bool) {
	if ch == ' ' {
		return kanata.KeySpace, true
	}
	return kanata.KeyCodeByName(string(unicode.ToLower(ch)))
}

// translateOutput maps an output string, character by character, to a
// sequence of Outputs: a user char_to_output entry wins; otherwise the
// character is lowercased and looked up in the default key-name table,
// tagged Uppercase if the source character was upper case. The literal
// escapes ⌫ and ␣ are recognized ahead of char_to_output since they are
// not expected to appear in user mapping tables.
func (l *ZippyFileLoader) translateOutput(fileName string, lineNo int, output string) ([]kanata.Output, error) {
	var outs []kanata.Output
	for _, ch := range output {
		switch ch {
		case zchBackspace:
			outs = append(outs, kanata.NewLowercase(kanata.KeyBackspace))
			continue
		case zchExplicitSpace:
			outs = append(outs, kanata.NewLowercase(kanata.KeySpace))
			continue
		}
		if mapped, ok := l.Config.CharToOutput[ch]; ok {
			outs = append(outs, mapped)
			continue
		}
		if runewidth.RuneWidth(ch) == 0 {
			return nil, &DictionaryError{File: fileName, Line: lineNo, Message: "output character is not a visible grapheme: " + string(ch)}
		}
		lower := []rune(lowerCaser.String(string(ch)))
		if len(lower) != 1 {
			return nil, &DictionaryError{File: fileName, Line: lineNo, Message: "unsupported output character " + string(ch)}
		}
		key, ok := kanata.KeyCodeByName(string(lower[0]))
		if !ok {
			return nil, &DictionaryError{File: fileName, Line: lineNo, Message: "unknown output character " + string(ch)}
		}
		if unicode.IsUpper(ch) {
			outs = append(outs, kanata.NewUppercase(key))
		} else {
			outs = append(outs, kanata.NewLowercase(key))
		}
	}
	return outs, nil
}
