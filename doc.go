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

// Package kanata implements the zippychord chord-recognition and
// expansion engine: a live, order-independent set of held keys matched
// against a prefix-closed trie of chord definitions, emitting
// synthesized backspace-then-retype keystroke sequences.
//
// OS-level key capture and synthesis, layers, tap-hold, macros, and the
// rest of a full keyboard remapper are external collaborators; this
// package only knows how to turn a stream of press/release/tick events
// into a stream of OutputSink calls.
package kanata
