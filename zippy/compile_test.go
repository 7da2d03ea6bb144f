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
	"testing"

	"github.com/nightscape/kanata"
	"github.com/nightscape/kanata/sexpr"
)

func TestCompileEndToEnd(t *testing.T) {
	forms, err := sexpr.Parse("config.kbd", `(defzippy-experimental "dict.txt" smart-space full)`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	provider := func(path string) (string, error) {
		if path != "dict.txt" {
			t.Fatalf("unexpected path requested: %q", path)
		}
		return "dy\tday\n", nil
	}

	chordMap, cfg, err := Compile(forms[0], provider, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SmartSpace != kanata.SmartSpaceFull {
		t.Fatalf("expected smart-space full to be parsed, got %v", cfg.SmartSpace)
	}
	keys := kanata.NewSortedKeySet(kanata.KeyD, kanata.KeyY).Keys()
	if chordMap.QuerySorted(keys).Kind != kanata.Hit {
		t.Fatalf("expected the compiled dictionary to recognize dy")
	}
}

func TestCompileRejectsNonListForm(t *testing.T) {
	forms, err := sexpr.Parse("config.kbd", `(atom)`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	atomForm := forms[0].Children[0]
	_, _, err = Compile(atomForm, nil, nil)
	if err == nil {
		t.Fatalf("expected an error for a non-list form")
	}
}

func TestCompilePropagatesProviderError(t *testing.T) {
	forms, err := sexpr.Parse("config.kbd", `(defzippy-experimental "missing.txt")`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	wantErr := &DictionaryError{File: "missing.txt", Line: 0, Message: "file not found"}
	provider := func(path string) (string, error) { return "", wantErr }
	_, _, err = Compile(forms[0], provider, nil)
	if err != wantErr {
		t.Fatalf("expected the provider error to propagate, got %v", err)
	}
}
