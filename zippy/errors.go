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

// Package zippy parses a defzippy-experimental configuration block and
// its referenced dictionary file into a kanata.ChordMap and
// kanata.EngineConfig.
package zippy

import (
	"fmt"

	"github.com/nightscape/kanata/sexpr"
)

// ConfigError reports a problem in the (defzippy-experimental ...)
// option block: an unknown or duplicate option, a value of the wrong
// type, a duplicate mapping character, or a forbidden modifier
// combination.
type ConfigError struct {
	Span    sexpr.Span
	Message string
}

func (e *ConfigError) Error() string {
	return e.Span.String() + ": " + e.Message
}

// DictionaryError reports a problem in a chord dictionary file: a
// missing tab, empty input, an unknown key name, or a duplicate chord.
type DictionaryError struct {
	File string
	Line int
	Message string
}

func (e *DictionaryError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
}
