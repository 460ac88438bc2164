// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Dense is an r×c matrix stored row-major in one flat buffer; entry (i,j)
// lives at data[i*c+j]. Accessors return errors instead of panicking.
type Dense struct {
	r, c int
	data []float64
}

var _ fmt.Stringer = (*Dense)(nil)

func indexErr(op string, i, j int) error {
	return fmt.Errorf("%s(%d,%d): %w", op, i, j, ErrOutOfRange)
}

// NewDense returns a zeroed rows×cols matrix.
//
// Errors: ErrInvalidDimensions when either side is < 1.
//
// Complexity: O(rows·cols) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseData wraps a row-major buffer of length rows*cols without copying.
// The caller must not retain data.
//
// Errors: ErrInvalidDimensions, ErrDimensionMismatch when len(data) != rows*cols.
//
// Complexity: O(1); the buffer is adopted as is.
func NewDenseData(rows, cols int, data []float64) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseData: len %d, want %d: %w", len(data), rows*cols, ErrDimensionMismatch)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFromRows copies rows into a new matrix.
//
// Implementation:
//   - Stage 1: take the column count from the first row.
//   - Stage 2: append each row to one flat buffer, rejecting ragged rows.
//
// Errors: ErrInvalidDimensions for an empty input or empty first row,
// ErrRagged when row lengths differ.
//
// Complexity: O(r·c) time and memory.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	// Stage 1
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: %w", ErrInvalidDimensions)
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)

	// Stage 2
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d values, want %d: %w", i, len(row), c, ErrRagged)
		}
		data = append(data, row...)
	}

	return &Dense{r: len(rows), c: c, data: data}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (int, int) { return m.r, m.c }

// inside reports whether (i,j) addresses a stored entry.
func (m *Dense) inside(i, j int) bool {
	return i >= 0 && i < m.r && j >= 0 && j < m.c
}

// At returns entry (i,j).
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	if !m.inside(i, j) {
		return 0, indexErr("At", i, j)
	}

	return m.data[i*m.c+j], nil
}

// Set writes v at (i,j).
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(i, j int, v float64) error {
	if !m.inside(i, j) {
		return indexErr("Set", i, j)
	}
	m.data[i*m.c+j] = v // row-major offset

	return nil
}

// Clone returns an independent copy; mutating one never affects the other.
// Complexity: O(r·c).
func (m *Dense) Clone() *Dense {
	return &Dense{r: m.r, c: m.c, data: m.Elements()}
}

// Row returns a copy of row i.
//
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, indexErr("Row", i, 0)
	}

	return append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...), nil
}

// ToRows returns the matrix as freshly allocated rows.
// Complexity: O(r·c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// Elements returns a copy of the row-major buffer.
// Complexity: O(r·c).
func (m *Dense) Elements() []float64 {
	return append([]float64(nil), m.data...)
}

// String prints one bracketed row per line, e.g. "[1, 0.5]\n[0.5, 1]\n".
// Values use the shortest 'g' form that round-trips.
//
// Complexity: O(r·c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
