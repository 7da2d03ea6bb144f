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
	"github.com/sirupsen/logrus"

	"github.com/nightscape/kanata"
	"github.com/nightscape/kanata/sexpr"
)

// FileContentProvider resolves the dictionary file path named in a
// defzippy-experimental form to its raw contents, letting the host
// configuration compiler own file-reading policy (relative paths,
// sandboxing, embedded filesystems, ...).
type FileContentProvider func(path string) (string, error)

// Compile is the single entry point a host configuration compiler
// calls after parsing a top-level (defzippy-experimental "file" ...)
// form with sexpr: it resolves the dictionary, parses the option
// block, and builds the resulting ChordMap.
func Compile(form sexpr.SExpr, provider FileContentProvider, log logrus.FieldLogger) (*kanata.ChordMap, ZippyConfig, error) {
	children, ok := form.List()
	if !ok {
		return nil, ZippyConfig{}, &ConfigError{Span: form.Span, Message: "defzippy-experimental must be a list"}
	}
	if len(children) < 2 {
		return nil, ZippyConfig{}, &ConfigError{Span: form.Span, Message: "defzippy-experimental requires a dictionary file path"}
	}
	pathExpr := children[1]
	path, ok := pathExpr.Atom()
	if !ok {
		return nil, ZippyConfig{}, &ConfigError{Span: pathExpr.Span, Message: "dictionary file path must be a string atom"}
	}

	cfg, err := ParseConfig(children[2:])
	if err != nil {
		return nil, ZippyConfig{}, err
	}

	content, err := provider(path)
	if err != nil {
		return nil, cfg, err
	}

	loader := NewZippyFileLoader(cfg, log)
	chordMap, err := loader.Load(path, content)
	if err != nil {
		return nil, cfg, err
	}
	return chordMap, cfg, nil
}
