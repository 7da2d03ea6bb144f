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
	"strconv"
	"strings"

	"github.com/nightscape/kanata"
	"github.com/nightscape/kanata/sexpr"
)

// SmartSpaceMode mirrors kanata.SmartSpaceMode for the parsed config
// surface, decoupling the sexpr-facing option names from the engine's
// own enum spellings.
type SmartSpaceMode = kanata.SmartSpaceMode

// ZippyConfig holds every (defzippy-experimental ...) tunable, parsed
// from its s-expression option block.
type ZippyConfig struct {
	IdleReactivateTicks     uint16
	FirstPressDeadlineTicks uint16
	SmartSpace              SmartSpaceMode
	SmartSpacePunctuation   []rune
	CharToOutput            map[rune]kanata.Output
}

// DefaultZippyConfig returns the documented defaults: 500-tick
// deadlines, smart-space disabled, punctuation {. , ;}.
func DefaultZippyConfig() ZippyConfig {
	return ZippyConfig{
		IdleReactivateTicks:     500,
		FirstPressDeadlineTicks: 500,
		SmartSpace:              kanata.SmartSpaceDisabled,
		SmartSpacePunctuation:   []rune{'.', ',', ';'},
		CharToOutput:            map[rune]kanata.Output{},
	}
}

// ParseConfig walks the flat option-name/value sequence following the
// dictionary file path atom in a (defzippy-experimental "file" ...)
// form and produces a ZippyConfig. Each option may appear at most
// once; unknown options are a ConfigError.
func ParseConfig(items []sexpr.SExpr) (ZippyConfig, error) {
	cfg := DefaultZippyConfig()
	seen := map[string]bool{}

	i := 0
	for i < len(items) {
		name, ok := items[i].Atom()
		if !ok {
			return cfg, &ConfigError{Span: items[i].Span, Message: "expected an option name atom"}
		}
		if i+1 >= len(items) {
			return cfg, &ConfigError{Span: items[i].Span, Message: "option " + name + " is missing a value"}
		}
		value := items[i+1]
		if seen[name] {
			return cfg, &ConfigError{Span: value.Span, Message: "duplicate option " + name}
		}
		seen[name] = true

		switch name {
		case "idle-reactivate-time":
			n, err := parseU16(value)
			if err != nil {
				return cfg, err
			}
			cfg.IdleReactivateTicks = n
		case "on-first-press-chord-deadline":
			n, err := parseU16(value)
			if err != nil {
				return cfg, err
			}
			cfg.FirstPressDeadlineTicks = n
		case "smart-space":
			mode, err := parseSmartSpace(value)
			if err != nil {
				return cfg, err
			}
			cfg.SmartSpace = mode
		case "smart-space-punctuation":
			puncs, err := parsePunctuationList(value)
			if err != nil {
				return cfg, err
			}
			cfg.SmartSpacePunctuation = puncs
		case "output-character-mappings":
			mappings, err := parseCharToOutput(value)
			if err != nil {
				return cfg, err
			}
			cfg.CharToOutput = mappings
		default:
			return cfg, &ConfigError{Span: items[i].Span, Message: "unknown option " + name}
		}
		i += 2
	}
	return cfg, nil
}

func parseU16(v sexpr.SExpr) (uint16, error) {
	text, ok := v.Atom()
	if !ok {
		return 0, &ConfigError{Span: v.Span, Message: "expected an integer"}
	}
	n, err := strconv.ParseUint(text, 10, 16)
	if err != nil {
		return 0, &ConfigError{Span: v.Span, Message: "expected an integer, got " + text}
	}
	return uint16(n), nil
}

func parseSmartSpace(v sexpr.SExpr) (SmartSpaceMode, error) {
	text, ok := v.Atom()
	if !ok {
		return 0, &ConfigError{Span: v.Span, Message: "expected none, add-space-only, or full"}
	}
	switch text {
	case "none":
		return kanata.SmartSpaceDisabled, nil
	case "add-space-only":
		return kanata.SmartSpaceAddSpaceOnly, nil
	case "full":
		return kanata.SmartSpaceFull, nil
	default:
		return 0, &ConfigError{Span: v.Span, Message: "unknown smart-space mode " + text}
	}
}

func parsePunctuationList(v sexpr.SExpr) ([]rune, error) {
	children, ok := v.List()
	if !ok {
		return nil, &ConfigError{Span: v.Span, Message: "smart-space-punctuation expects a list"}
	}
	out := make([]rune, 0, len(children))
	for _, c := range children {
		text, ok := c.Atom()
		if !ok || len([]rune(text)) != 1 {
			return nil, &ConfigError{Span: c.Span, Message: "smart-space-punctuation entries must be single characters"}
		}
		out = append(out, []rune(text)[0])
	}
	return out, nil
}

// parseCharToOutput parses the even-length (<char> <keydesc> ...)
// list. Each keydesc is a key name optionally prefixed with "S-"
// (Shift), "AG-" (AltGr), or both ("S-AG-"/"AG-S-"); both shifts at
// once is forbidden, as is any other prefix.
func parseCharToOutput(v sexpr.SExpr) (map[rune]kanata.Output, error) {
	children, ok := v.List()
	if !ok {
		return nil, &ConfigError{Span: v.Span, Message: "output-character-mappings expects a list"}
	}
	if len(children)%2 != 0 {
		return nil, &ConfigError{Span: v.Span, Message: "output-character-mappings has an odd number of items"}
	}
	out := map[rune]kanata.Output{}
	for i := 0; i < len(children); i += 2 {
		charExpr, keyExpr := children[i], children[i+1]
		charText, ok := charExpr.Atom()
		if !ok || len([]rune(charText)) != 1 {
			return nil, &ConfigError{Span: charExpr.Span, Message: "output-character-mappings key must be a single character"}
		}
		ch := []rune(charText)[0]
		if _, dup := out[ch]; dup {
			return nil, &ConfigError{Span: charExpr.Span, Message: "duplicate output-character-mappings entry for " + charText}
		}
		keyText, ok := keyExpr.Atom()
		if !ok {
			return nil, &ConfigError{Span: keyExpr.Span, Message: "output-character-mappings value must be a key descriptor"}
		}
		output, err := parseKeyDesc(keyExpr.Span, keyText)
		if err != nil {
			return nil, err
		}
		out[ch] = output
	}
	return out, nil
}

func parseKeyDesc(span sexpr.Span, text string) (kanata.Output, error) {
	shift := false
	altgr := false
	rest := text
	for {
		switch {
		case strings.HasPrefix(rest, "S-"):
			if shift {
				return kanata.Output{}, &ConfigError{Span: span, Message: "duplicate Shift prefix in " + text}
			}
			shift = true
			rest = rest[2:]
		case strings.HasPrefix(rest, "AG-"):
			if altgr {
				return kanata.Output{}, &ConfigError{Span: span, Message: "duplicate AltGr prefix in " + text}
			}
			altgr = true
			rest = rest[3:]
		default:
			goto done
		}
	}
done:
	key, ok := kanata.KeyCodeByName(rest)
	if !ok {
		return kanata.Output{}, &ConfigError{Span: span, Message: "unknown key name " + rest}
	}
	switch {
	case shift && altgr:
		return kanata.NewShiftAltGr(key), nil
	case shift:
		return kanata.NewUppercase(key), nil
	case altgr:
		return kanata.NewAltGr(key), nil
	default:
		return kanata.NewLowercase(key), nil
	}
}

// ToEngineConfig projects a ZippyConfig onto the runtime
// kanata.EngineConfig a ChordEngine is constructed with, resolving the
// punctuation set to KeyCodes via CharToOutput then the default
// key-name table, matching the fallback order zippychord.rs uses for
// smart_space_punctuation_val_expr.
func (c ZippyConfig) ToEngineConfig() kanata.EngineConfig {
	punct := map[kanata.KeyCode]bool{}
	for _, r := range c.SmartSpacePunctuation {
		if out, ok := c.CharToOutput[r]; ok {
			punct[out.Key] = true
			continue
		}
		if k, ok := kanata.KeyCodeByName(string(r)); ok {
			punct[k] = true
		}
	}
	return kanata.EngineConfig{
		IdleReactivateTicks:     c.IdleReactivateTicks,
		FirstPressDeadlineTicks: c.FirstPressDeadlineTicks,
		SmartSpace:              c.SmartSpace,
		SmartSpacePunctuation:   punct,
	}
}
