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

import (
	"strings"
	"testing"
	"unicode"
)

// outputsForWord builds a lowercase/uppercase Output sequence for a
// plain word, detecting case per rune, for building test dictionaries
// without going through the zippy loader.
func outputsForWord(word string) []Output {
	var outs []Output
	for _, ch := range word {
		key, ok := KeyCodeByName(strings.ToLower(string(ch)))
		if !ok {
			panic("outputsForWord: no key for " + string(ch))
		}
		if unicode.IsUpper(ch) {
			outs = append(outs, NewUppercase(key))
		} else {
			outs = append(outs, NewLowercase(key))
		}
	}
	return outs
}

// buildSampleDict constructs the chord dictionary used throughout
// spec scenario testing: dy->day, dy 1->Monday, " abc"->Alphabet,
// pr->pre<SPC><BS>, pra->partner, "pr q"->pull request,
// " w  a"->Washington, "r df"->different.
func buildSampleDict() *ChordMap {
	root := NewChordMap()

	dyKeys := NewSortedKeySet(KeyD, KeyY).Keys()
	dyNode := &ChordNode{Output: outputsForWord("day")}
	must(root.InsertSorted(dyKeys, dyNode))

	monFollowups := dyNode.GetOrCreateFollowups()
	must(monFollowups.InsertSorted(NewSortedKeySet(Key1).Keys(), &ChordNode{Output: outputsForWord("Monday")}))

	abcKeys := NewSortedKeySet(KeySpace, KeyA, KeyB, KeyC).Keys()
	must(root.InsertSorted(abcKeys, &ChordNode{Output: outputsForWord("Alphabet")}))

	prKeys := NewSortedKeySet(KeyP, KeyR).Keys()
	prNode := &ChordNode{Output: []Output{
		NewLowercase(KeyP), NewLowercase(KeyR), NewLowercase(KeyE),
		NewLowercase(KeySpace), NewLowercase(KeyBackspace),
	}}
	must(root.InsertSorted(prKeys, prNode))

	praKeys := NewSortedKeySet(KeyP, KeyR, KeyA).Keys()
	must(root.InsertSorted(praKeys, &ChordNode{Output: outputsForWord("partner")}))

	prFollowups := prNode.GetOrCreateFollowups()
	must(prFollowups.InsertSorted(NewSortedKeySet(KeyQ).Keys(), &ChordNode{Output: outputsForWord("pull request")}))

	step1Keys := NewSortedKeySet(KeySpace, KeyW).Keys()
	step1Node := &ChordNode{}
	must(root.InsertSorted(step1Keys, step1Node))
	step2Keys := NewSortedKeySet(KeySpace, KeyA).Keys()
	must(step1Node.GetOrCreateFollowups().InsertSorted(step2Keys, &ChordNode{Output: outputsForWord("Washington")}))

	rKeys := NewSortedKeySet(KeyR).Keys()
	rNode := &ChordNode{}
	must(root.InsertSorted(rKeys, rNode))
	dfKeys := NewSortedKeySet(KeyD, KeyF).Keys()
	must(rNode.GetOrCreateFollowups().InsertSorted(dfKeys, &ChordNode{Output: outputsForWord("different")}))

	return root
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func TestScenario1SimpleChord(t *testing.T) {
	sim := NewSimulator(buildSampleDict(), DefaultEngineConfig())
	sim.Run("d:d d:y")
	got := sim.Sink.Keystrokes()
	want := "dn:d dn:bspc up:bspc dn:d up:d dn:a up:a dn:y up:y"
	if got != want {
		t.Fatalf("scenario 1: got %q want %q", got, want)
	}
}

func TestScenario2Followup(t *testing.T) {
	sim := NewSimulator(buildSampleDict(), DefaultEngineConfig())
	sim.Run("d:d d:y u:d u:y d:1 u:1")
	got := sim.Sink.Keystrokes()
	want := "dn:d" +
		" dn:bspc up:bspc dn:d up:d dn:a up:a dn:y up:y" +
		" up:d up:y" +
		" dn:bspc up:bspc dn:bspc up:bspc dn:bspc up:bspc" +
		" dn:lsft dn:m up:m up:lsft dn:o up:o dn:n up:n dn:d up:d dn:a up:a dn:y up:y" +
		" up:1"
	if got != want {
		t.Fatalf("scenario 2: got %q want %q", got, want)
	}
}

func TestScenario3SpaceStartingChord(t *testing.T) {
	sim := NewSimulator(buildSampleDict(), DefaultEngineConfig())
	sim.Run("d:spc d:w u:spc u:w d:spc d:a")
	got := sim.Sink.Keystrokes()
	want := "dn:spc" +
		" dn:w" +
		" up:spc up:w" +
		" dn:spc" +
		" dn:bspc up:bspc dn:bspc up:bspc dn:bspc up:bspc" +
		" dn:lsft dn:w up:w up:lsft dn:a up:a dn:s up:s dn:h up:h dn:i up:i dn:n up:n dn:g up:g dn:t up:t dn:o up:o dn:n up:n"
	if got != want {
		t.Fatalf("scenario 3: got %q want %q", got, want)
	}
}

// TestScenario7FollowupFromSingleKeyFirstStep covers a multi-step chord
// whose first step is a single key with no output of its own (like
// "r df"): the triggering key must be pressed through immediately, the
// same as any other Prefix key, rather than withheld until the whole
// chord completes.
func TestScenario7FollowupFromSingleKeyFirstStep(t *testing.T) {
	sim := NewSimulator(buildSampleDict(), DefaultEngineConfig())
	sim.Run("d:r u:r d:d d:f")
	got := sim.Sink.Keystrokes()
	want := "dn:r" +
		" up:r" +
		" dn:d" +
		" dn:bspc up:bspc dn:bspc up:bspc" +
		" dn:d up:d dn:i up:i dn:f up:f dn:f up:f dn:e up:e dn:r up:r dn:e up:e dn:n up:n dn:t up:t"
	if got != want {
		t.Fatalf("scenario 7: got %q want %q", got, want)
	}
}

func TestScenario4PrefixChordWithBackspaceOutput(t *testing.T) {
	sim := NewSimulator(buildSampleDict(), DefaultEngineConfig())
	sim.Run("d:p d:r d:a")
	got := sim.Sink.Keystrokes()
	want := "dn:p" +
		" dn:bspc up:bspc" +
		" dn:p up:p dn:r up:r dn:e up:e dn:spc up:spc dn:bspc up:bspc" +
		" dn:bspc up:bspc dn:bspc up:bspc dn:bspc up:bspc" +
		" dn:p up:p dn:a up:a dn:r up:r dn:t up:t dn:n up:n dn:e up:e dn:r up:r"
	if got != want {
		t.Fatalf("scenario 4: got %q want %q", got, want)
	}
}

func TestScenario5DisabledByPlainTyping(t *testing.T) {
	sim := NewSimulator(buildSampleDict(), DefaultEngineConfig())
	sim.Run("d:v u:v d:d d:y")
	got := sim.Sink.Keystrokes()
	want := "dn:v up:v dn:d dn:y"
	if got != want {
		t.Fatalf("scenario 5: got %q want %q", got, want)
	}
	if sim.Engine.State() != Disabled {
		t.Fatalf("scenario 5: expected Disabled state, got %v", sim.Engine.State())
	}
}

func TestScenario6SmartSpacePunctuation(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.SmartSpace = SmartSpaceFull
	cfg.SmartSpacePunctuation = map[KeyCode]bool{KeyDot: true}
	sim := NewSimulator(buildSampleDict(), cfg)
	sim.Run("d:d d:y u:d u:y d:dot")
	got := sim.Sink.Keystrokes()
	want := "dn:d" +
		" dn:bspc up:bspc dn:d up:d dn:a up:a dn:y up:y dn:spc up:spc" +
		" up:d up:y" +
		" dn:bspc up:bspc dn:dot"
	if got != want {
		t.Fatalf("scenario 6: got %q want %q", got, want)
	}
}

func TestReleaseOfUnheldKeyIsNoop(t *testing.T) {
	sim := NewSimulator(buildSampleDict(), DefaultEngineConfig())
	sim.Run("u:z")
	if len(sim.Sink.Events) == 0 {
		t.Fatalf("releasing an unheld key should still pass through, got no events")
	}
	if sim.Engine.State() != Idle {
		t.Fatalf("expected Idle after a no-op release, got %v", sim.Engine.State())
	}
}

func TestDeadlineFlushesBufferedKeys(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.FirstPressDeadlineTicks = 5
	sim := NewSimulator(buildSampleDict(), cfg)
	sim.Run("d:d t:10")
	if sim.Engine.State() != Disabled {
		t.Fatalf("expected Disabled after deadline elapses, got %v", sim.Engine.State())
	}
}

func TestIdleReactivateReturnsToIdle(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.IdleReactivateTicks = 5
	sim := NewSimulator(buildSampleDict(), cfg)
	sim.Run("d:v t:10")
	if sim.Engine.State() != Idle {
		t.Fatalf("expected Idle after idle-reactivate window, got %v", sim.Engine.State())
	}
}
