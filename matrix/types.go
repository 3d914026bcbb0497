// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that a row or column index is outside the grid.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilComparator indicates that Build was called without comparator.
	ErrNilComparator = errors.New("matrix: comparator is nil")
)

// matrixErrorf wraps err with MatchMatrix method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("MatchMatrix.%s(%d,%d): %w", method, row, col, err)
}

// Cell is one grid entry.
type Cell struct {
	Present bool
	Rank    int
}

// Coordinate addresses a present cell.
type Coordinate struct {
	Row    int
	Column int
	Rank   int
}

// SameRow reports whether c and o lie on the same row.
func (c Coordinate) SameRow(o Coordinate) bool { return c.Row == o.Row }

// SameColumn reports whether c and o lie in the same column.
func (c Coordinate) SameColumn(o Coordinate) bool { return c.Column == o.Column }

// Compare orders coordinates by column, then row, then rank.
// It returns a negative number, zero or a positive number.
func (c Coordinate) Compare(o Coordinate) int {
	if c.Column != o.Column {
		return c.Column - o.Column
	}
	if c.Row != o.Row {
		return c.Row - o.Row
	}

	return c.Rank - o.Rank
}

// String implements fmt.Stringer as (row,column,rank).
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.Row, c.Column, c.Rank)
}
