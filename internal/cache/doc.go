// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package cache provides the in-memory data structures behind recommendation
ranking: a bounded LRU map and a top-k selector.

# LRU

LRU is a thread-safe least recently used map with O(1) Get and Add. Entries
never expire; the similarity index is immutable, so a cached ranking stays
valid for the life of the process.

	rankings := cache.NewLRU[int, []Match](1024)
	if m, ok := rankings.Get(pos); ok {
	    return m
	}
	rankings.Add(pos, computed)

# TopK

TopK keeps the k best items seen so far in a bounded min-heap, so selecting
the best k of n candidates costs O(n log k) instead of a full sort:

	top := cache.NewTopK(k, func(a, b Match) bool { return a.Score > b.Score })
	for _, m := range candidates {
	    top.Push(m)
	}
	best := top.Sorted()
*/
package cache
