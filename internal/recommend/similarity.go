// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"fmt"
	"sync"
)

// cancelCheckInterval is how many rows a worker computes between context checks.
const cancelCheckInterval = 64

// Matrix is a symmetric similarity matrix stored as a packed upper triangle.
// Entries lie in [0,1] and the diagonal is 1.
type Matrix struct {
	n     int
	cells []float32
}

// Len returns the matrix dimension.
func (m *Matrix) Len() int { return m.n }

// offset returns the cell index of (i, j) for i <= j.
func (m *Matrix) offset(i, j int) int {
	return i*m.n - i*(i-1)/2 + (j - i)
}

// At returns the similarity of entries i and j. It panics if either index is
// out of range.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		panic(fmt.Sprintf("recommend: matrix index (%d, %d) out of range [0, %d)", i, j, m.n))
	}
	if i > j {
		i, j = j, i
	}
	return float64(m.cells[m.offset(i, j)])
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	row := make([]float64, m.n)
	for j := range row {
		row[j] = m.At(i, j)
	}
	return row
}

// Cosine returns the cosine similarity of a and b clamped to [0,1], or 0
// when either vector has zero magnitude.
func Cosine(a, b Vector) float64 {
	return clampedCosine(a, b, a.Norm(), b.Norm())
}

func clampedCosine(a, b Vector, na, nb float64) float64 {
	if na == 0 || nb == 0 {
		return 0
	}
	s := a.Dot(b) / (na * nb)
	switch {
	case s < 0:
		return 0
	case s > 1:
		return 1
	default:
		return s
	}
}

// ComputeMatrix computes pairwise cosine similarity for vectors.
// Rows are striped across workers goroutines; only cells with i <= j are
// computed. Cancelling ctx aborts the build and returns ctx.Err().
func ComputeMatrix(ctx context.Context, vectors []Vector, workers int) (*Matrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("similarity matrix: %w", err)
	}

	n := len(vectors)
	m := &Matrix{n: n, cells: make([]float32, n*(n+1)/2)}
	if n == 0 {
		return m, nil
	}

	if workers <= 0 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	// Norms are computed once; every row reuses them.
	norms := make([]float64, n)
	for i, v := range vectors {
		norms[i] = v.Norm()
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(first int) {
			defer wg.Done()

			computed := 0
			for i := first; i < n; i += workers {
				if computed%cancelCheckInterval == 0 && ctx.Err() != nil {
					return
				}
				computed++
				m.fillRow(i, vectors, norms)
			}
		}(w)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("similarity matrix: %w", err)
	}
	return m, nil
}

// fillRow writes cells (i, j) for j >= i. Each row owns a disjoint cell range.
func (m *Matrix) fillRow(i int, vectors []Vector, norms []float64) {
	base := m.offset(i, i)
	m.cells[base] = 1

	a, na := vectors[i], norms[i]
	for j := i + 1; j < m.n; j++ {
		m.cells[base+(j-i)] = float32(clampedCosine(a, vectors[j], na, norms[j]))
	}
}
