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
	"errors"
	"strconv"
	"strings"
)

// ErrDuplicateChord is returned by ChordMap.InsertSorted when the exact
// same key set is already bound to a ChordNode.
var ErrDuplicateChord = errors.New("kanata: duplicate chord for key set")

// ChordNode is the value bound to a complete chord: the keystrokes it
// produces on activation, plus an optional nested dictionary consulted
// for the next chord step (a follow-up).
type ChordNode struct {
	Output    []Output
	Followups *ChordMap
}

// QueryKind is the three-valued result of looking up a key set in a
// ChordMap.
type QueryKind uint8

const (
	// Miss: no stored chord starts with this key set.
	Miss QueryKind = iota
	// Prefix: this key set is a strict subset of at least one stored
	// chord; more keys could still complete a match.
	Prefix
	// Hit: this key set exactly matches a stored chord.
	Hit
)

// QueryResult carries the outcome of ChordMap.QuerySorted.
type QueryResult struct {
	Kind QueryKind
	Node *ChordNode
}

// ChordMap is a SubsetTrie: a map from SortedKeySet to ChordNode,
// supporting Hit/Prefix/Miss lookups. Because chord keys can be
// pressed in any physical order, a query's sorted key set is not
// necessarily a sorted-order prefix of a stored chord's key set (e.g.
// pressing the second-smallest key of a chord first) — so lookups are
// done by genuine subset test, not by walking a trie level-by-level in
// sorted-key order. An index from each KeyCode to the chords that
// contain it keeps a query to roughly the size of the smallest such
// list rather than a full scan of every stored chord.
type ChordMap struct {
	exact map[string]*chordEntry
	byKey map[KeyCode][]*chordEntry
}

type chordEntry struct {
	keys []KeyCode // ascending, as produced by SortedKeySet.Keys
	node *ChordNode
}

// NewChordMap returns an empty ChordMap ready for insertion.
func NewChordMap() *ChordMap {
	return &ChordMap{
		exact: map[string]*chordEntry{},
		byKey: map[KeyCode][]*chordEntry{},
	}
}

func signature(keys []KeyCode) string {
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(k)))
	}
	return sb.String()
}

// InsertSorted binds keys (already in ascending order, as produced by
// SortedKeySet.Keys) to node. It returns ErrDuplicateChord if an exact
// match for keys is already bound.
func (m *ChordMap) InsertSorted(keys []KeyCode, node *ChordNode) error {
	sig := signature(keys)
	if _, exists := m.exact[sig]; exists {
		return ErrDuplicateChord
	}
	e := &chordEntry{keys: append([]KeyCode(nil), keys...), node: node}
	m.exact[sig] = e
	for _, k := range keys {
		m.byKey[k] = append(m.byKey[k], e)
	}
	return nil
}

// QuerySorted looks up keys (ascending order) and reports whether it's
// an exact Hit, a Prefix of some longer stored chord, or a Miss.
func (m *ChordMap) QuerySorted(keys []KeyCode) QueryResult {
	if len(keys) == 0 {
		return QueryResult{Kind: Miss}
	}
	if e, ok := m.exact[signature(keys)]; ok {
		return QueryResult{Kind: Hit, Node: e.node}
	}

	smallest := keys[0]
	for _, k := range keys {
		if len(m.byKey[k]) < len(m.byKey[smallest]) {
			smallest = k
		}
	}

	for _, e := range m.byKey[smallest] {
		if len(e.keys) <= len(keys) {
			continue
		}
		if containsAllSorted(e.keys, keys) {
			return QueryResult{Kind: Prefix}
		}
	}
	return QueryResult{Kind: Miss}
}

// containsAllSorted reports whether every element of small appears in
// big, given both are sorted ascending.
func containsAllSorted(big, small []KeyCode) bool {
	i := 0
	for _, s := range small {
		for i < len(big) && big[i] < s {
			i++
		}
		if i >= len(big) || big[i] != s {
			return false
		}
		i++
	}
	return true
}

// GetOrCreateFollowups returns node's Followups map, allocating an
// empty one in place if absent. Used by the dictionary loader when
// descending through an intermediate chord step that has no follow-up
// dictionary yet.
func (n *ChordNode) GetOrCreateFollowups() *ChordMap {
	if n.Followups == nil {
		n.Followups = NewChordMap()
	}
	return n.Followups
}
