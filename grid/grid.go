// SPDX-License-Identifier: MIT

// Package grid - generic row-major storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Hot loops in sibling packages read Data() directly and compute offsets themselves.
//   - Use Clone before mutating a grid you did not allocate.
package grid

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxWindow = "Window"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Number is the set of element kinds a Grid can hold.
type Number interface {
	~uint8 | ~uint16 | ~uint32 | ~int | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// gridErrorf wraps an error with a uniform Grid context and callsite indices.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is a concrete row-major matrix of T.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Grid[T Number] struct {
	r, c int // row and column counts (>0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid[float64])(nil)

// New creates an r×c zero grid.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Grid[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromSlice builds an r×c grid from a row-major buffer. The buffer is copied,
// so later writes to data do not leak into the grid.
// Returns ErrInvalidDimensions for non-positive shapes and ErrDimensionMismatch
// when len(data) != rows*cols.
func FromSlice[T Number](rows, cols int, data []T) (*Grid[T], error) {
	g, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("FromSlice: len %d for %dx%d: %w", len(data), rows, cols, ErrDimensionMismatch)
	}
	copy(g.data, data)

	return g, nil
}

// FromRows builds a grid from a non-empty rectangular 2D slice (deep copy).
// Returns ErrInvalidDimensions if values has no rows or no columns and
// ErrNonRectangular if any row length differs.
// Complexity: O(r*c).
func FromRows[T Number](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	for i, row := range values {
		copy(g.data[i*cols:(i+1)*cols], row)
	}

	return g, nil
}

// Rows returns the number of rows (image height).
func (g *Grid[T]) Rows() int { return g.r }

// Cols returns the number of columns (image width).
func (g *Grid[T]) Cols() int { return g.c }

// Shape returns (rows, cols).
func (g *Grid[T]) Shape() (rows, cols int) { return g.r, g.c }

// Len returns rows*cols.
func (g *Grid[T]) Len() int { return len(g.data) }

// InBounds reports whether (row, col) addresses a cell of g.
// Complexity: O(1).
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.r && col >= 0 && col < g.c
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (g *Grid[T]) indexOf(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*g.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
// Complexity: O(1).
func (g *Grid[T]) At(row, col int) (T, error) {
	off, err := g.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, gridErrorf(ctxAt, row, col, err)
	}

	return g.data[off], nil
}

// Set assigns v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (g *Grid[T]) Set(row, col int, v T) error {
	off, err := g.indexOf(row, col)
	if err != nil {
		return gridErrorf(ctxSet, row, col, err)
	}
	g.data[off] = v

	return nil
}

// Data exposes the row-major backing slice (len == Rows()*Cols()).
// The slice is shared with g: callers that did not allocate g must treat it
// as read-only.
func (g *Grid[T]) Data() []T { return g.data }

// Row returns a copy of row i, or ErrOutOfRange.
func (g *Grid[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= g.r {
		return nil, gridErrorf(ctxAt, i, 0, ErrOutOfRange)
	}
	out := make([]T, g.c)
	copy(out, g.data[i*g.c:(i+1)*g.c])

	return out, nil
}

// Clone returns a deep copy of g.
// Complexity: O(r*c).
func (g *Grid[T]) Clone() *Grid[T] {
	cp := make([]T, len(g.data))
	copy(cp, g.data)

	return &Grid[T]{r: g.r, c: g.c, data: cp}
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Window copies the h×w block whose top-left corner is (r0, c0) into dst in
// row-major order and returns dst[:h*w]. dst is grown when too small.
// The block must lie entirely inside g; otherwise ErrOutOfRange.
// Complexity: O(h*w).
func (g *Grid[T]) Window(r0, c0, h, w int, dst []T) ([]T, error) {
	if h <= 0 || w <= 0 {
		return nil, gridErrorf(ctxWindow, r0, c0, ErrInvalidDimensions)
	}
	if !g.InBounds(r0, c0) || !g.InBounds(r0+h-1, c0+w-1) {
		return nil, gridErrorf(ctxWindow, r0, c0, ErrOutOfRange)
	}
	if cap(dst) < h*w {
		dst = make([]T, h*w)
	}
	dst = dst[:h*w]
	for i := 0; i < h; i++ {
		base := (r0+i)*g.c + c0
		copy(dst[i*w:(i+1)*w], g.data[base:base+w])
	}

	return dst, nil
}

// ZeroBorder sets every cell within width cells of any edge to zero.
// A width covering the whole grid zeroes everything; width <= 0 is a no-op.
// Complexity: O(r*c) worst case.
func (g *Grid[T]) ZeroBorder(width int) {
	if width <= 0 {
		return
	}
	var zero T
	for i := 0; i < g.r; i++ {
		base := i * g.c
		if i < width || i >= g.r-width {
			for j := 0; j < g.c; j++ {
				g.data[base+j] = zero
			}
			continue
		}
		for j := 0; j < width && j < g.c; j++ {
			g.data[base+j] = zero
			g.data[base+g.c-1-j] = zero
		}
	}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (g *Grid[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < g.r; i++ {
		base = i * g.c
		for j = 0; j < g.c; j++ {
			if !f(i, j, g.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major order.
func (g *Grid[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < g.r; i++ {
		base = i * g.c
		for j = 0; j < g.c; j++ {
			g.data[base+j] = f(i, j, g.data[base+j])
		}
	}
}

// Max returns the largest value and its first (row-major) position.
func (g *Grid[T]) Max() (v T, row, col int) {
	v = g.data[0]
	for off, x := range g.data {
		if x > v {
			v, row, col = x, off/g.c, off%g.c
		}
	}

	return v, row, col
}

// String renders the grid one bracketed row per line.
func (g *Grid[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < g.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * g.c
		for j = 0; j < g.c; j++ {
			fmt.Fprintf(&b, "%v", g.data[base+j])
			if j+1 < g.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
