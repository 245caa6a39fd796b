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
	"fmt"
	"maps"
	"slices"
)

// Fill adds all holes of s to s, so that afterwards s has no holes.
//
// The set must be connected, where each cell has eight neighbours (sides
// and diagonals).  Sets with more than one connected component are
// rejected with ErrTopology and left unchanged.
//
// Fill traces the outer boundary of s and then fills every column between
// pairs of boundary crossings (even-odd rule).  Holes are never traced
// individually.
func Fill(s *CellSet) error {
	if s.Len() == 0 {
		return nil
	}
	if err := checkConnected(s); err != nil {
		return err
	}

	crossings, err := traceBoundary(s)
	if err != nil {
		return err
	}

	columns := slices.Sorted(maps.Keys(crossings))
	for _, x := range columns {
		if n := len(crossings[x]); n%2 != 0 {
			return fmt.Errorf("%w: %d boundary crossings in column %d", ErrTopology, n, x)
		}
	}
	for _, x := range columns {
		ys := crossings[x]
		slices.Sort(ys)
		for i := 0; i < len(ys); i += 2 {
			for y := ys[i]; y < ys[i+1]; y++ {
				s.Add(Cell{X: x, Y: y})
			}
		}
	}
	return nil
}

// Directions of travel along the boundary.
var (
	east = Cell{X: 1, Y: 0}
	west = Cell{X: -1, Y: 0}
)

// traceBoundary walks around the outer boundary of s, keeping the occupied
// cells on the left.  Positions are grid vertices: vertex (x, y) is the
// lower-left corner of cell (x, y).  The result maps each column to the y
// coordinates of the horizontal boundary edges in this column.
func traceBoundary(s *CellSet) (map[int][]int, error) {
	// The lowest cell of any column has free space below it, all the way
	// down.  Its lower edge is therefore part of the outer boundary.
	first := s.order[0]
	start := first
	for _, c := range s.order {
		if c.X == start.X && c.Y < start.Y {
			start = c
		}
	}

	crossings := map[int][]int{
		start.X: {start.Y},
	}
	pos := start.Add(east)
	dir := east

	limit := 4*s.Len() + 4 // no cell has more than four boundary edges
	for steps := 1; ; steps++ {
		left := s.Contains(aheadCell(pos, dir.Add(dir.RotateLeft())))
		right := s.Contains(aheadCell(pos, dir.Add(dir.RotateRight())))
		switch {
		case right:
			dir = dir.RotateRight()
		case !left:
			dir = dir.RotateLeft()
		}

		// The boundary can visit a vertex twice where two cells touch
		// diagonally.  The walk is complete only when the first edge
		// is about to be repeated.
		if pos == start && dir == east {
			break
		}
		if steps >= limit {
			return nil, fmt.Errorf("%w: boundary walk from %v does not close", ErrTopology, start)
		}

		switch dir {
		case east:
			crossings[pos.X] = append(crossings[pos.X], pos.Y)
		case west:
			crossings[pos.X-1] = append(crossings[pos.X-1], pos.Y)
		}
		pos = pos.Add(dir)
	}
	return crossings, nil
}

// aheadCell returns the cell which touches the vertex pos in the diagonal
// direction diag.  Both components of diag must be ±1.
func aheadCell(pos, diag Cell) Cell {
	return Cell{X: pos.X + half(diag.X), Y: pos.Y + half(diag.Y)}
}

// half maps +1 to 0 and -1 to -1, i.e. it computes ⌊v/2⌋ for v = ±1.
func half(v int) int {
	if v < 0 {
		return -1
	}
	return 0
}

// checkConnected verifies that s forms a single 8-connected component.
func checkConnected(s *CellSet) error {
	first := s.order[0]
	seen := map[Cell]struct{}{first: {}}
	todo := []Cell{first}
	for len(todo) > 0 {
		c := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				n := Cell{X: c.X + dx, Y: c.Y + dy}
				if !s.Contains(n) {
					continue
				}
				if _, ok := seen[n]; ok {
					continue
				}
				seen[n] = struct{}{}
				todo = append(todo, n)
			}
		}
	}
	if len(seen) != s.Len() {
		return fmt.Errorf("%w: %d of %d cells are not connected to %v",
			ErrTopology, s.Len()-len(seen), s.Len(), first)
	}
	return nil
}
