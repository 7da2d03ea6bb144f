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
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestChordMapSubsetQueries(t *testing.T) {
	Convey("Given a ChordMap holding a two-key and a three-key chord sharing a prefix", t, func() {
		m := NewChordMap()
		prNode := &ChordNode{Output: []Output{NewLowercase(KeyP), NewLowercase(KeyR)}}
		So(m.InsertSorted(NewSortedKeySet(KeyP, KeyR).Keys(), prNode), ShouldBeNil)
		So(m.InsertSorted(NewSortedKeySet(KeyP, KeyR, KeyA).Keys(), &ChordNode{Output: []Output{NewLowercase(KeyA)}}), ShouldBeNil)

		Convey("querying either single key alone reports Prefix", func() {
			So(m.QuerySorted(NewSortedKeySet(KeyP).Keys()).Kind, ShouldEqual, Prefix)
			So(m.QuerySorted(NewSortedKeySet(KeyR).Keys()).Kind, ShouldEqual, Prefix)
		})

		Convey("querying the two-key set in either physical press order reports the same Hit", func() {
			r1 := m.QuerySorted(NewSortedKeySet(KeyP, KeyR).Keys())
			r2 := m.QuerySorted(NewSortedKeySet(KeyR, KeyP).Keys())
			So(r1.Kind, ShouldEqual, Hit)
			So(r2.Kind, ShouldEqual, Hit)
			So(r1.Node, ShouldEqual, prNode)
			So(r2.Node, ShouldEqual, r1.Node)
		})

		Convey("querying the three-key set reports Hit, not Prefix, even though it is also a superset", func() {
			So(m.QuerySorted(NewSortedKeySet(KeyP, KeyR, KeyA).Keys()).Kind, ShouldEqual, Hit)
		})

		Convey("querying an unrelated key reports Miss", func() {
			So(m.QuerySorted(NewSortedKeySet(KeyV).Keys()).Kind, ShouldEqual, Miss)
		})

		Convey("querying a superset the map has no chord for reports Miss", func() {
			So(m.QuerySorted(NewSortedKeySet(KeyP, KeyR, KeyA, KeyV).Keys()).Kind, ShouldEqual, Miss)
		})

		Convey("inserting the same key set twice fails with ErrDuplicateChord", func() {
			err := m.InsertSorted(NewSortedKeySet(KeyP, KeyR).Keys(), &ChordNode{})
			So(err, ShouldEqual, ErrDuplicateChord)
		})
	})
}

func TestChordMapEmptyQueryIsMiss(t *testing.T) {
	m := NewChordMap()
	must(m.InsertSorted(NewSortedKeySet(KeyA).Keys(), &ChordNode{}))
	if got := m.QuerySorted(nil).Kind; got != Miss {
		t.Fatalf("expected Miss for an empty query, got %v", got)
	}
}

func TestChordNodeGetOrCreateFollowupsIsIdempotent(t *testing.T) {
	n := &ChordNode{}
	first := n.GetOrCreateFollowups()
	second := n.GetOrCreateFollowups()
	if first != second {
		t.Fatalf("expected GetOrCreateFollowups to return the same map on repeated calls")
	}
}
