// SPDX-License-Identifier: MIT

package archipelago

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/lvcollate/island"
	"github.com/katalvlaran/lvcollate/matrix"
)

// IsCompetitor reports whether a and b share a row or a column.
func IsCompetitor(a, b *island.Island) bool {
	for _, c := range b.Coordinates() {
		if _, ok := a.CoordinateOnRow(c.Row); ok {
			return true
		}
		if _, ok := a.CoordinateOnColumn(c.Column); ok {
			return true
		}
	}

	return false
}

// Overlap reports whether some coordinate of b is a member or a neighbour
// of a.
func Overlap(a, b *island.Island) bool {
	for _, c := range b.Coordinates() {
		if a.Contains(c) || a.Neighbour(c) {
			return true
		}
	}

	return false
}

// RemovePoints returns a copy of isl without the coordinates that share a
// row or a column with other. The result may have holes.
func RemovePoints(isl, other *island.Island) *island.Island {
	return isl.Filter(func(c matrix.Coordinate) bool {
		_, onRow := other.CoordinateOnRow(c.Row)
		_, onCol := other.CoordinateOnColumn(c.Column)

		return !onRow && !onCol
	})
}

// Archipelago is an unordered collection of islands of one match matrix.
type Archipelago struct {
	islands []*island.Island
}

// New returns an archipelago holding islands.
func New(islands ...*island.Island) *Archipelago {
	a := &Archipelago{}
	for _, isl := range islands {
		a.Add(isl)
	}

	return a
}

// Add appends isl. Nil and empty islands are ignored.
func (a *Archipelago) Add(isl *island.Island) {
	if isl == nil || isl.Size() == 0 {
		return
	}
	a.islands = append(a.islands, isl)
}

// Islands returns the islands in insertion order.
func (a *Archipelago) Islands() []*island.Island { return slices.Clone(a.islands) }

// Size returns the number of islands.
func (a *Archipelago) Size() int { return len(a.islands) }

// CompetitorPairs returns the index pairs (i < j) of competing islands.
func (a *Archipelago) CompetitorPairs() [][2]int {
	var out [][2]int
	for i := range a.islands {
		for j := i + 1; j < len(a.islands); j++ {
			if IsCompetitor(a.islands[i], a.islands[j]) {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

// pending is an island waiting in the priority tree.
type pending struct {
	isl   *island.Island
	value int
	seq   int
}

// byValue orders higher values first, then earlier sequence numbers.
func byValue(a, b pending) bool {
	if a.value != b.value {
		return a.value > b.value
	}

	return a.seq < b.seq
}

// CreateFirstVersion selects a competitor-free subset of the islands.
// The archipelago itself is not modified.
func (a *Archipelago) CreateFirstVersion() *Version {
	// 1. Seed the priority tree
	queue := btree.NewBTreeG[pending](byValue)
	seq := 0
	push := func(isl *island.Island) {
		queue.Set(pending{isl: isl, value: isl.Value(), seq: seq})
		seq++
	}
	for _, isl := range a.islands {
		push(isl.Clone())
	}

	// 2. Pop the best island, keep or prune it
	v := &Version{}
	for queue.Len() > 0 {
		best, _ := queue.PopMin()
		if !v.competes(best.isl) {
			v.islands = append(v.islands, best.isl)
			continue
		}
		pruned := best.isl
		for _, kept := range v.islands {
			pruned = RemovePoints(pruned, kept)
		}
		for _, frag := range island.Detect(pruned.Coordinates()) {
			push(frag)
		}
	}

	return v
}

// Version is a competitor-free selection of islands.
type Version struct {
	islands []*island.Island
}

func (v *Version) competes(isl *island.Island) bool {
	for _, kept := range v.islands {
		if IsCompetitor(kept, isl) {
			return true
		}
	}

	return false
}

// Islands returns the kept islands in selection order.
func (v *Version) Islands() []*island.Island { return slices.Clone(v.islands) }

// Size returns the number of kept islands.
func (v *Version) Size() int { return len(v.islands) }

// Value returns the summed value of the kept islands.
func (v *Version) Value() int {
	total := 0
	for _, isl := range v.islands {
		total += isl.Value()
	}

	return total
}

// Coordinates returns every kept coordinate ordered by matrix.Coordinate.Compare.
func (v *Version) Coordinates() []matrix.Coordinate {
	var out []matrix.Coordinate
	for _, isl := range v.islands {
		out = append(out, isl.Coordinates()...)
	}
	slices.SortFunc(out, matrix.Coordinate.Compare)

	return out
}

// String implements fmt.Stringer.
func (v *Version) String() string {
	parts := make([]string, len(v.islands))
	for i, isl := range v.islands {
		parts[i] = isl.String()
	}

	return fmt.Sprintf("Version[%s]", strings.Join(parts, ", "))
}
