// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenRunes is the shortest token kept by Tokenize.
const minTokenRunes = 2

// Term is one non-zero vector component.
type Term struct {
	Index  int
	Weight float64
}

// Vector is a sparse document vector with terms sorted by Index.
type Vector []Term

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, t := range v {
		sum += t.Weight * t.Weight
	}
	return math.Sqrt(sum)
}

// Dot returns the inner product of two sorted vectors.
func (v Vector) Dot(o Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v) && j < len(o) {
		switch {
		case v[i].Index == o[j].Index:
			sum += v[i].Weight * o[j].Weight
			i++
			j++
		case v[i].Index < o[j].Index:
			i++
		default:
			j++
		}
	}
	return sum
}

// Vocabulary maps terms to column indices and holds their IDF weights.
type Vocabulary struct {
	terms []string
	index map[string]int
	idf   []float64
}

// Len returns the number of distinct terms.
func (v *Vocabulary) Len() int { return len(v.terms) }

// Terms returns the terms in column order. The slice must not be modified.
func (v *Vocabulary) Terms() []string { return v.terms }

// Lookup returns the column index of term.
func (v *Vocabulary) Lookup(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// IDF returns the inverse document frequency of column i.
func (v *Vocabulary) IDF(i int) float64 { return v.idf[i] }

// Tokenize lower-cases text and splits it on every rune that is not a letter
// or digit. Tokens shorter than two runes are dropped.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTokenRunes {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Fit builds a vocabulary from docs. Column indices follow lexical term order.
// IDF is smoothed: ln((1+n)/(1+df)) + 1.
func Fit(docs []string) *Vocabulary {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, tok := range Tokenize(doc) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	vocab := &Vocabulary{
		terms: terms,
		index: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	for i, term := range terms {
		vocab.index[term] = i
		vocab.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return vocab
}

// Transform returns the L2-normalized TF-IDF vector of doc.
// Terms outside the vocabulary are ignored; a document with no known terms
// yields an empty vector.
func (v *Vocabulary) Transform(doc string) Vector {
	counts := make(map[int]int)
	for _, tok := range Tokenize(doc) {
		if i, ok := v.index[tok]; ok {
			counts[i]++
		}
	}
	if len(counts) == 0 {
		return Vector{}
	}

	vec := make(Vector, 0, len(counts))
	for i, c := range counts {
		vec = append(vec, Term{Index: i, Weight: float64(c) * v.idf[i]})
	}
	sort.Slice(vec, func(a, b int) bool { return vec[a].Index < vec[b].Index })

	if norm := vec.Norm(); norm > 0 {
		for k := range vec {
			vec[k].Weight /= norm
		}
	}
	return vec
}

// FitTransform fits a vocabulary on docs and returns one vector per document,
// aligned with docs.
func FitTransform(docs []string) (*Vocabulary, []Vector) {
	vocab := Fit(docs)
	vectors := make([]Vector, len(docs))
	for i, doc := range docs {
		vectors[i] = vocab.Transform(doc)
	}
	return vocab, vectors
}
