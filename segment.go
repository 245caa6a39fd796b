// seehuhn.de/go/occupancy - grid occupancy of moving geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package occupancy

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// AddSegment adds all cells which overlap the closed segment [a, b] to s.
// A segment of length zero adds the single cell containing a.
func AddSegment(s *CellSet, a, b vec.Vec2) error {
	if err := checkPoint(a); err != nil {
		return err
	}
	if err := checkPoint(b); err != nil {
		return err
	}
	addSegment(s, a, b)
	return nil
}

// addSegment implements AddSegment for validated input.
//
// Every crossing of a vertical grid line marks the two cells left and
// right of the crossing, and every crossing of a horizontal grid line
// marks the cells below and above.  Both scans are needed: the first
// misses cells along steep segments, the second along shallow ones.
func addSegment(s *CellSet, a, b vec.Vec2) {
	// A segment which crosses no grid line lies inside a single cell.
	s.Add(CellOf(a))
	s.Add(CellOf(b))

	addCrossingsX(s, a, b, identity)
	addCrossingsX(s, swap(a), swap(b), Cell.Swap)
}

// addCrossingsX marks the cells on both sides of every vertical grid line
// crossed by [a, b].  The cells are passed through place before insertion,
// which allows to run the same scan on swapped coordinates.
func addCrossingsX(s *CellSet, a, b vec.Vec2, place func(Cell) Cell) {
	if a.X == b.X {
		// Either no grid line is crossed, or the segment runs along a
		// grid line and the crossings are found by the other scan.
		return
	}
	if a.X > b.X {
		// fixed orientation, so that [a, b] and [b, a] round identically
		a, b = b, a
	}

	xMin := int(math.Ceil(a.X))
	xMax := int(math.Floor(b.X))
	for x := xMin; x <= xMax; x++ {
		t := (float64(x) - a.X) / (b.X - a.X)
		t = max(0, min(1, t))

		y := int(math.Floor(a.Y + (b.Y-a.Y)*t))
		s.Add(place(Cell{X: x - 1, Y: y}))
		s.Add(place(Cell{X: x, Y: y}))
	}
}

func identity(c Cell) Cell {
	return c
}
