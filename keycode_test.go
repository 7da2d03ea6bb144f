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

import "testing"

func TestKeyCodeByNameIsCaseInsensitive(t *testing.T) {
	lower, ok := KeyCodeByName("spc")
	if !ok {
		t.Fatalf("expected spc to resolve")
	}
	upper, ok := KeyCodeByName("SPC")
	if !ok {
		t.Fatalf("expected SPC to resolve")
	}
	if lower != upper || lower != KeySpace {
		t.Fatalf("expected both spellings to resolve to KeySpace, got %v and %v", lower, upper)
	}
}

func TestKeyCodeByNameSingleCharAliases(t *testing.T) {
	cases := map[string]KeyCode{
		";":  KeySemicolon,
		"'":  KeyApostrophe,
		"`":  KeyGrave,
		"\\": KeyBackslash,
		",":  KeyComma,
		".":  KeyDot,
		"/":  KeySlash,
		" ":  KeySpace,
	}
	for name, want := range cases {
		got, ok := KeyCodeByName(name)
		if !ok {
			t.Fatalf("expected %q to resolve", name)
		}
		if got != want {
			t.Fatalf("%q: got %v want %v", name, got, want)
		}
	}
}

func TestKeyCodeByNameUnknown(t *testing.T) {
	if _, ok := KeyCodeByName("not-a-key"); ok {
		t.Fatalf("expected unknown key name to fail lookup")
	}
}

func TestKeyCodeStringRoundTrip(t *testing.T) {
	for name, code := range keyNames {
		s := code.String()
		got, ok := KeyCodeByName(s)
		if !ok {
			t.Fatalf("String() of key named %q produced %q, which does not resolve back", name, s)
		}
		if got != code {
			t.Fatalf("round trip mismatch for %q: got %v want %v", name, got, code)
		}
	}
}

func TestKeyCodeStringFallback(t *testing.T) {
	unknown := KeyCode(9999)
	if got := unknown.String(); got != "KeyCode(9999)" {
		t.Fatalf("expected numeric fallback, got %q", got)
	}
}
