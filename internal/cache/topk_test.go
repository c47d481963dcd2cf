// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"math/rand"
	"sort"
	"testing"
)

type scored struct {
	id    int
	score float64
}

// better ranks by score descending, then id ascending.
func better(a, b scored) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	return a.id < b.id
}

func TestTopK_MatchesFullSort(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	items := make([]scored, 500)
	for i := range items {
		// Few distinct scores so ties are common.
		items[i] = scored{id: i, score: float64(rng.Intn(20)) / 10}
	}

	want := append([]scored(nil), items...)
	sort.Slice(want, func(i, j int) bool { return better(want[i], want[j]) })

	for _, k := range []int{1, 5, 50, 499, 500, 800} {
		top := NewTopK(k, better)
		for _, it := range items {
			top.Push(it)
		}
		got := top.Sorted()

		n := k
		if n > len(items) {
			n = len(items)
		}
		if len(got) != n {
			t.Fatalf("k=%d: got %d items, want %d", k, len(got), n)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("k=%d: item %d = %+v, want %+v", k, i, got[i], want[i])
			}
		}
	}
}

func TestTopK_ZeroK(t *testing.T) {
	t.Parallel()

	top := NewTopK(0, better)
	top.Push(scored{id: 1, score: 1})
	if top.Len() != 0 || len(top.Sorted()) != 0 {
		t.Error("k=0 selector kept an item")
	}
}

func TestTopK_SortedResets(t *testing.T) {
	t.Parallel()

	top := NewTopK(2, better)
	top.Push(scored{id: 1, score: 0.5})
	top.Push(scored{id: 2, score: 0.9})
	top.Push(scored{id: 3, score: 0.1})

	got := top.Sorted()
	if len(got) != 2 || got[0].id != 2 || got[1].id != 1 {
		t.Errorf("Sorted = %+v, want ids [2 1]", got)
	}
	if top.Len() != 0 {
		t.Errorf("Len after Sorted = %d, want 0", top.Len())
	}
}
