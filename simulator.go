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
	"fmt"
	"strconv"
	"strings"
)

// RecordingSink is an OutputSink that appends every call to a log of
// "dn:<key>" / "up:<key>" entries (key in its canonical config-file
// spelling), for assertions in tests.
type RecordingSink struct {
	Events []string
}

func (r *RecordingSink) Press(k KeyCode)   { r.Events = append(r.Events, "dn:"+k.String()) }
func (r *RecordingSink) Release(k KeyCode) { r.Events = append(r.Events, "up:"+k.String()) }

// Keystrokes renders the recorded events as a space-separated string,
// e.g. "dn:d up:d dn:a up:a", for compact test assertions.
func (r *RecordingSink) Keystrokes() string {
	return strings.Join(r.Events, " ")
}

// Simulator drives a ChordEngine from a scripted sequence of events,
// in the spirit of a press/release/tick DSL: each token is one of
// "d:<key>" (press/down), "u:<key>" (release/up), or "t:<n>" (advance
// n ticks), separated by spaces.
type Simulator struct {
	Engine *ChordEngine
	Sink   *RecordingSink
	tick   uint64
}

// NewSimulator builds a Simulator over a fresh ChordEngine constructed
// from root/config, recording output on a RecordingSink.
func NewSimulator(root *ChordMap, config EngineConfig) *Simulator {
	sink := &RecordingSink{}
	return &Simulator{
		Engine: NewChordEngine(root, config, sink, nil),
		Sink:   sink,
	}
}

// Run executes a scripted event sequence. Unrecognized tokens panic,
// since a malformed test script is a bug in the test itself.
func (s *Simulator) Run(script string) {
	for _, tok := range strings.Fields(script) {
		parts := strings.SplitN(tok, ":", 2)
		if len(parts) != 2 {
			panic(fmt.Sprintf("kanata: malformed simulator token %q", tok))
		}
		switch parts[0] {
		case "d":
			k, ok := KeyCodeByName(parts[1])
			if !ok {
				panic(fmt.Sprintf("kanata: unknown key name %q", parts[1]))
			}
			s.Engine.Press(k, s.tick)
		case "u":
			k, ok := KeyCodeByName(parts[1])
			if !ok {
				panic(fmt.Sprintf("kanata: unknown key name %q", parts[1]))
			}
			s.Engine.Release(k, s.tick)
		case "t":
			n, err := strconv.Atoi(parts[1])
			if err != nil {
				panic(fmt.Sprintf("kanata: malformed tick count %q", parts[1]))
			}
			for i := 0; i < n; i++ {
				s.tick++
				s.Engine.Tick(s.tick)
			}
		default:
			panic(fmt.Sprintf("kanata: unknown simulator token kind %q", parts[0]))
		}
	}
}
