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

import "sort"

// SortedKeySet is an order-independent set of KeyCodes kept in
// ascending numeric order, so that the press order of a chord's keys
// never affects its identity as a lookup key.
type SortedKeySet struct {
	keys []KeyCode
}

// NewSortedKeySet builds a SortedKeySet from an arbitrary slice of
// keys, deduplicating and sorting them.
func NewSortedKeySet(keys ...KeyCode) *SortedKeySet {
	s := &SortedKeySet{}
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

// Insert adds k if not already present, keeping keys in ascending
// order. No-op if k is already a member.
func (s *SortedKeySet) Insert(k KeyCode) {
	i := sort.Search(len(s.keys), func(i int) bool { return s.keys[i] >= k })
	if i < len(s.keys) && s.keys[i] == k {
		return
	}
	s.keys = append(s.keys, 0)
	copy(s.keys[i+1:], s.keys[i:])
	s.keys[i] = k
}

// Remove deletes k if present; no-op otherwise.
func (s *SortedKeySet) Remove(k KeyCode) {
	i := sort.Search(len(s.keys), func(i int) bool { return s.keys[i] >= k })
	if i < len(s.keys) && s.keys[i] == k {
		s.keys = append(s.keys[:i], s.keys[i+1:]...)
	}
}

// Clear empties the set in place.
func (s *SortedKeySet) Clear() {
	s.keys = s.keys[:0]
}

// Contains reports whether k is a member.
func (s *SortedKeySet) Contains(k KeyCode) bool {
	i := sort.Search(len(s.keys), func(i int) bool { return s.keys[i] >= k })
	return i < len(s.keys) && s.keys[i] == k
}

// Len reports the number of members.
func (s *SortedKeySet) Len() int {
	return len(s.keys)
}

// Keys returns the members in ascending order. The returned slice is
// owned by the caller; mutating it does not affect s.
func (s *SortedKeySet) Keys() []KeyCode {
	out := make([]KeyCode, len(s.keys))
	copy(out, s.keys)
	return out
}

// Clone returns an independent copy of s.
func (s *SortedKeySet) Clone() *SortedKeySet {
	c := &SortedKeySet{keys: make([]KeyCode, len(s.keys))}
	copy(c.keys, s.keys)
	return c
}

// Equal reports whether s and other contain exactly the same keys.
func (s *SortedKeySet) Equal(other *SortedKeySet) bool {
	if len(s.keys) != len(other.keys) {
		return false
	}
	for i, k := range s.keys {
		if other.keys[i] != k {
			return false
		}
	}
	return true
}
