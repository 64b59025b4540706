// SPDX-License-Identifier: MIT
// Package matrix: the Dense storage type and its accessors.

package matrix

import "math"

// Dense is a row-major matrix backed by a single flat []float64.
// Element (i,j) lives at data[i*c+j]. Zero value is unusable; construct
// through NewDense / NewDenseFromRows / Identity.
//
// Complexity notes: all accessors are O(1) except Clone and Row (O(r*c)
// and O(c) respectively).
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates an r×c zero matrix.
//
// Inputs:
//   - r, c: positive dimensions.
//
// Errors:
//   - ErrBadShape when r<=0 or c<=0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(r, c int) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: r, c: c, data: make([]float64, r*c)}, nil
}

// NewDenseFromRows builds a Dense from a rectangular [][]float64.
// The input is copied; the result does not alias rows.
//
// Errors:
//   - ErrBadShape          when rows is empty or the first row is empty.
//   - ErrDimensionMismatch when rows have differing lengths.
//   - ErrNaNInf            when any entry is NaN or ±Inf.
//
// Determinism: fixed i→j copy order.
// Complexity: Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrDimensionMismatch
		}
		for j = 0; j < c; j++ {
			v := rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
//
// Errors:
//   - ErrBadShape when n<=0.
//
// Complexity: Time O(n²), Space O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// Rows returns the number of rows. O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. O(1).
func (m *Dense) Cols() int { return m.c }

// At retrieves the element at (i,j).
// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols(). O(1).
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, ErrOutOfRange
	}

	return m.data[i*m.c+j], nil
}

// Set assigns v at (i,j). NaN/Inf values are rejected so that invalid
// numbers cannot enter a matrix silently.
// Returns ErrOutOfRange on bad indices, ErrNaNInf on non-finite v. O(1).
func (m *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return ErrOutOfRange
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	m.data[i*m.c+j] = v

	return nil
}

// Row returns a copy of row i.
// Returns ErrOutOfRange on a bad index. O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, ErrOutOfRange
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy, independent of the original. O(r*c).
func (m *Dense) Clone() *Dense {
	cp := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(cp.data, m.data)

	return cp
}
