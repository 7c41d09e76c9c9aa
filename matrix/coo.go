// SPDX-License-Identifier: MIT

// Package matrix: COO type, sentinel errors, constructors and accessors.
package matrix

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBadShape is returned when a non-positive dimension is requested.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates coordinates outside the matrix shape.
	// Public entry points MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are
	// required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// Entry is one stored (row, col, value) triplet.
type Entry struct {
	Row, Col int
	Val      float64
}

// COO is an r×c sparse matrix in coordinate-triplet form.
// Entries are kept in insertion order; positions not listed are zero.
type COO struct {
	r, c    int
	entries []Entry
}

// NewCOO creates an empty r×c sparse matrix.
// Returns ErrBadShape if r <= 0 or c <= 0.
func NewCOO(r, c int) (*COO, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, r, c)
	}

	return &COO{r: r, c: c}, nil
}

// Append adds one entry. Duplicate coordinates are not merged here; the
// entity encoder decides whether they are legal for its structural role.
// Returns ErrOutOfRange or ErrNaNInf.
func (m *COO) Append(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, m.r, m.c)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: at (%d,%d)", ErrNaNInf, i, j)
	}
	m.entries = append(m.entries, Entry{Row: i, Col: j, Val: v})

	return nil
}

// Dims returns the matrix shape.
func (m *COO) Dims() (r, c int) { return m.r, m.c }

// NNZ returns the number of stored entries.
func (m *COO) NNZ() int { return len(m.entries) }

// Entries returns a copy of the stored triplets in insertion order.
func (m *COO) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)

	return out
}
