// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/catalog"
)

var (
	// ErrNotFound is returned when a title does not match any catalog entry.
	ErrNotFound = errors.New("title not found")

	// ErrCatalogTooLarge is returned by Build when the catalog exceeds
	// Config.MaxCatalogSize.
	ErrCatalogTooLarge = errors.New("catalog too large for similarity index")

	// ErrEmptyCorpus is returned by Build when there are no documents.
	ErrEmptyCorpus = errors.New("no documents to index")
)

// Document is one catalog entry as seen by the index.
type Document struct {
	Title string
	Text  string
}

// Match is a ranked candidate.
type Match struct {
	Position int     `json:"position"`
	Title    string  `json:"title"`
	Score    float64 `json:"score"`
}

// Index answers recommendation queries from a precomputed similarity matrix.
// Its contents are immutable after Build; the ranking cache is safe for
// concurrent use.
type Index struct {
	cfg           Config
	titles        []string
	byTitle       map[string]int
	vocab         *Vocabulary
	matrix        *Matrix
	buildDuration time.Duration
	logger        zerolog.Logger

	// rankings holds the best MaxK matches per position. Nil when disabled.
	rankings *cache.LRU[int, []Match]
}

// Build vectorizes docs and computes the full similarity matrix.
// Positions in the index are positions in docs.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Build(ctx context.Context, docs []Document, cfg Config, logger zerolog.Logger) (*Index, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommend config: %w", err)
	}
	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}
	if cfg.MaxCatalogSize > 0 && len(docs) > cfg.MaxCatalogSize {
		return nil, fmt.Errorf("%w: %d entries, limit %d", ErrCatalogTooLarge, len(docs), cfg.MaxCatalogSize)
	}

	logger = logger.With().Str("component", "recommend").Logger()
	start := time.Now()

	texts := make([]string, len(docs))
	titles := make([]string, len(docs))
	byTitle := make(map[string]int, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
		titles[i] = d.Title
		key := catalog.TitleKey(d.Title)
		if _, exists := byTitle[key]; !exists {
			byTitle[key] = i
		}
	}

	vocab, vectors := FitTransform(texts)
	logger.Debug().
		Int("documents", len(docs)).
		Int("vocabulary", vocab.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("Vocabulary fitted")

	workers := cfg.workers()
	matrix, err := ComputeMatrix(ctx, vectors, workers)
	if err != nil {
		return nil, err
	}

	idx := &Index{
		cfg:           cfg,
		titles:        titles,
		byTitle:       byTitle,
		vocab:         vocab,
		matrix:        matrix,
		buildDuration: time.Since(start),
		logger:        logger,
	}
	if cfg.CacheSize > 0 {
		idx.rankings = cache.NewLRU[int, []Match](cfg.CacheSize)
	}

	logger.Info().
		Int("documents", len(docs)).
		Int("vocabulary", vocab.Len()).
		Int("workers", workers).
		Dur("elapsed", idx.buildDuration).
		Msg("Similarity index built")

	return idx, nil
}

// Len returns the number of indexed entries. A nil Index is empty.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.titles)
}

// VocabularySize returns the number of distinct terms.
func (x *Index) VocabularySize() int { return x.vocab.Len() }

// BuildDuration returns how long Build took.
func (x *Index) BuildDuration() time.Duration { return x.buildDuration }

// Config returns the configuration the index was built with.
func (x *Index) Config() Config { return x.cfg }

// Title returns the title at position.
func (x *Index) Title(position int) string { return x.titles[position] }

// Similarity returns the similarity of the entries at positions i and j.
func (x *Index) Similarity(i, j int) float64 { return x.matrix.At(i, j) }

// Resolve returns the position of the first entry whose title matches title,
// ignoring case and surrounding whitespace.
func (x *Index) Resolve(title string) (int, bool) {
	pos, ok := x.byTitle[catalog.TitleKey(title)]
	return pos, ok
}

// Recommend returns up to TopK titles most similar to title, most similar
// first. It returns ErrNotFound when title is not in the catalog.
func (x *Index) Recommend(ctx context.Context, title string) ([]string, error) {
	matches, err := x.Similar(ctx, title, x.cfg.TopK)
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(matches))
	for i, m := range matches {
		titles[i] = m.Title
	}
	return titles, nil
}

// Similar returns up to k ranked matches for title with their scores.
// k is clamped to [1, MaxK].
func (x *Index) Similar(ctx context.Context, title string, k int) ([]Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pos, ok := x.Resolve(title)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, title)
	}

	k = x.clampK(k)
	ranked := x.ranking(pos)
	if k > len(ranked) {
		k = len(ranked)
	}
	matches := make([]Match, k)
	copy(matches, ranked[:k])

	x.logger.Debug().
		Str("title", title).
		Int("position", pos).
		Int("k", k).
		Int("results", len(matches)).
		Msg("Similar titles ranked")

	return matches, nil
}

func (x *Index) clampK(k int) int {
	if k < 1 {
		return 1
	}
	if k > x.cfg.MaxK {
		return x.cfg.MaxK
	}
	return k
}

// CacheStats returns ranking cache hits, misses and size. All zero when the
// cache is disabled.
func (x *Index) CacheStats() (hits, misses int64, size int) {
	if x.rankings == nil {
		return 0, 0, 0
	}
	return x.rankings.Stats()
}

// ranking returns the best MaxK matches for pos, from the cache when present.
// The returned slice is shared and must not be modified.
func (x *Index) ranking(pos int) []Match {
	if x.rankings == nil {
		return x.rank(pos, x.cfg.MaxK)
	}
	if ranked, ok := x.rankings.Get(pos); ok {
		return ranked
	}
	ranked := x.rank(pos, x.cfg.MaxK)
	x.rankings.Add(pos, ranked)
	return ranked
}

// betterMatch orders by descending score, breaking ties by ascending position.
func betterMatch(a, b Match) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Position < b.Position
}

// rank selects the k entries most similar to pos, excluding pos itself.
func (x *Index) rank(pos, k int) []Match {
	top := cache.NewTopK(k, betterMatch)
	for j, score := range x.matrix.Row(pos) {
		if j == pos {
			continue
		}
		top.Push(Match{Position: j, Title: x.titles[j], Score: score})
	}
	return top.Sorted()
}
