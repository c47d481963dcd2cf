// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import "sort"

// TopK selects the k best items pushed into it.
//
// better(a, b) reports whether a ranks ahead of b. It must be a strict
// total order for the result to be deterministic. TopK is not safe for
// concurrent use.
type TopK[T any] struct {
	k      int
	better func(a, b T) bool

	// heap is a min-heap by rank: heap[0] is the worst item kept.
	heap []T
}

// NewTopK creates a selector keeping at most k items. k below 1 keeps none.
func NewTopK[T any](k int, better func(a, b T) bool) *TopK[T] {
	if k < 0 {
		k = 0
	}
	return &TopK[T]{
		k:      k,
		better: better,
		heap:   make([]T, 0, k),
	}
}

// Push offers item. It is kept if fewer than k items are held or it ranks
// ahead of the worst item held.
func (t *TopK[T]) Push(item T) {
	if t.k == 0 {
		return
	}
	if len(t.heap) < t.k {
		t.heap = append(t.heap, item)
		t.bubbleUp(len(t.heap) - 1)
		return
	}
	if t.better(item, t.heap[0]) {
		t.heap[0] = item
		t.bubbleDown(0)
	}
}

// Len returns the number of items held.
func (t *TopK[T]) Len() int { return len(t.heap) }

// Sorted returns the held items best first. The selector is left empty.
func (t *TopK[T]) Sorted() []T {
	out := t.heap
	t.heap = make([]T, 0, t.k)
	sort.Slice(out, func(i, j int) bool { return t.better(out[i], out[j]) })
	return out
}

// worse orders the heap so the lowest-ranked item is at the root.
func (t *TopK[T]) worse(i, j int) bool {
	return t.better(t.heap[j], t.heap[i])
}

func (t *TopK[T]) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !t.worse(i, parent) {
			return
		}
		t.heap[i], t.heap[parent] = t.heap[parent], t.heap[i]
		i = parent
	}
}

func (t *TopK[T]) bubbleDown(i int) {
	n := len(t.heap)
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < n && t.worse(left, smallest) {
			smallest = left
		}
		if right < n && t.worse(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		t.heap[i], t.heap[smallest] = t.heap[smallest], t.heap[i]
		i = smallest
	}
}
