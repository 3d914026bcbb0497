// SPDX-License-Identifier: MIT

package island

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvcollate/matrix"
)

// BordersOn reports whether two coordinates are diagonal neighbours: their
// ranks and their rows each differ by exactly one. Columns are not compared.
func BordersOn(a, b matrix.Coordinate) bool {
	return abs(a.Rank-b.Rank) == 1 && abs(a.Row-b.Row) == 1
}

// Island is an ordered, non-empty run of coordinates on one diagonal.
// The zero value is an empty island ready for Add.
type Island struct {
	coords    []matrix.Coordinate
	direction int
}

// New returns an island seeded with coordinates, added in order. Coordinates
// the island rejects are skipped.
func New(coords ...matrix.Coordinate) *Island {
	isl := &Island{}
	for _, c := range coords {
		isl.Add(c)
	}

	return isl
}

// NewRun builds the straight run from first to last, stepping row, column
// and rank by one. last must lie on first's forward diagonal; otherwise the
// run stops at first.
func NewRun(first, last matrix.Coordinate) *Island {
	isl := &Island{}
	isl.Add(first)
	steps := last.Column - first.Column
	if steps <= 0 || last.Row-first.Row != steps || last.Rank-first.Rank != steps {
		return isl
	}
	for c := first; c != last; {
		c = matrix.Coordinate{Row: c.Row + 1, Column: c.Column + 1, Rank: c.Rank + 1}
		isl.Add(c)
	}

	return isl
}

// Add appends c and reports whether it was accepted.
//
// The first coordinate is always accepted. Any later one must not be a
// member, must border a member, must not share a row or a column with a
// member and must lie in the island's direction as seen from the first
// member. The first accepted neighbour fixes the direction.
func (isl *Island) Add(c matrix.Coordinate) bool {
	// 1. Seed
	if len(isl.coords) == 0 {
		isl.coords = append(isl.coords, c)
		return true
	}

	// 2. Membership, adjacency and row/column exclusivity
	if !isl.Neighbour(c) {
		return false
	}
	for _, m := range isl.coords {
		if m.SameRow(c) || m.SameColumn(c) {
			return false
		}
	}

	// 3. Direction from the first member (truncating division)
	first := isl.coords[0]
	dc := first.Column - c.Column
	if dc == 0 {
		return false
	}
	d := sign((first.Row - c.Row) / dc)
	if d == 0 || (isl.direction != 0 && d != isl.direction) {
		return false
	}
	isl.direction = d
	isl.coords = append(isl.coords, c)

	return true
}

// Filter returns a copy holding only the members keep accepts, in order.
// The copy keeps the direction of isl and may have holes; Detect its
// coordinates to split it into valid islands again.
func (isl *Island) Filter(keep func(c matrix.Coordinate) bool) *Island {
	out := &Island{direction: isl.direction}
	for _, c := range isl.coords {
		if keep(c) {
			out.coords = append(out.coords, c)
		}
	}
	if len(out.coords) < 2 {
		out.direction = 0
	}

	return out
}

// Contains reports whether c is a member.
func (isl *Island) Contains(c matrix.Coordinate) bool { return slices.Contains(isl.coords, c) }

// Neighbour reports whether c is not a member and borders some member.
func (isl *Island) Neighbour(c matrix.Coordinate) bool {
	if isl.Contains(c) {
		return false
	}
	for _, m := range isl.coords {
		if BordersOn(c, m) {
			return true
		}
	}

	return false
}

// Coordinates returns a copy of the members in insertion order.
func (isl *Island) Coordinates() []matrix.Coordinate { return slices.Clone(isl.coords) }

// Size returns the number of members.
func (isl *Island) Size() int { return len(isl.coords) }

// Direction returns -1, 0 or +1.
func (isl *Island) Direction() int { return isl.direction }

// Value scores the island: size below two cells, direction + size² otherwise.
func (isl *Island) Value() int {
	n := len(isl.coords)
	if n < 2 {
		return n
	}

	return isl.direction + n*n
}

// LeftEnd returns the member with the smallest column; ties keep the
// earliest member. It reports false for an empty island.
func (isl *Island) LeftEnd() (matrix.Coordinate, bool) {
	return isl.end(func(c, best matrix.Coordinate) bool { return c.Column < best.Column })
}

// RightEnd returns the member with the largest column; ties keep the
// earliest member. It reports false for an empty island.
func (isl *Island) RightEnd() (matrix.Coordinate, bool) {
	return isl.end(func(c, best matrix.Coordinate) bool { return c.Column > best.Column })
}

func (isl *Island) end(better func(c, best matrix.Coordinate) bool) (matrix.Coordinate, bool) {
	if len(isl.coords) == 0 {
		return matrix.Coordinate{}, false
	}
	best := isl.coords[0]
	for _, c := range isl.coords[1:] {
		if better(c, best) {
			best = c
		}
	}

	return best, true
}

// CoordinateOnRow returns the member on row, if any.
func (isl *Island) CoordinateOnRow(row int) (matrix.Coordinate, bool) {
	for _, c := range isl.coords {
		if c.Row == row {
			return c, true
		}
	}

	return matrix.Coordinate{}, false
}

// CoordinateOnColumn returns the member in column col, if any.
func (isl *Island) CoordinateOnColumn(col int) (matrix.Coordinate, bool) {
	for _, c := range isl.coords {
		if c.Column == col {
			return c, true
		}
	}

	return matrix.Coordinate{}, false
}

// Equal reports whether both islands hold the same coordinates, in any order.
func (isl *Island) Equal(o *Island) bool {
	if o == nil || len(isl.coords) != len(o.coords) {
		return false
	}
	for _, c := range o.coords {
		if !isl.Contains(c) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy.
func (isl *Island) Clone() *Island {
	return &Island{coords: slices.Clone(isl.coords), direction: isl.direction}
}

// String implements fmt.Stringer.
func (isl *Island) String() string {
	if len(isl.coords) == 0 {
		return "Island (empty)"
	}

	return fmt.Sprintf("Island (%s-%s) size: %d", isl.coords[0], isl.coords[len(isl.coords)-1], len(isl.coords))
}

// Detect groups coords into islands with a greedy single pass.
// Islands are returned in creation order.
func Detect(coords []matrix.Coordinate) []*Island {
	var islands []*Island
	for _, c := range coords {
		joined := false
		for _, isl := range islands {
			if isl.Add(c) {
				joined = true
				break
			}
		}
		if !joined {
			islands = append(islands, New(c))
		}
	}

	return islands
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
