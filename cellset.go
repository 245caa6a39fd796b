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
	"image"
	"iter"
	"slices"
)

// CellSet is a set of grid cells.
// Iteration visits the cells in the order in which they were first added,
// so that results are reproducible between runs.
//
// A CellSet is not safe for concurrent use.
type CellSet struct {
	index map[Cell]struct{}
	order []Cell
}

// NewCellSet returns an empty set with room for n cells.
func NewCellSet(n int) *CellSet {
	return &CellSet{
		index: make(map[Cell]struct{}, n),
		order: make([]Cell, 0, n),
	}
}

// Add inserts c into the set.  It reports whether c was not yet present.
func (s *CellSet) Add(c Cell) bool {
	if s.index == nil {
		s.index = make(map[Cell]struct{})
	}
	if _, ok := s.index[c]; ok {
		return false
	}
	s.index[c] = struct{}{}
	s.order = append(s.order, c)
	return true
}

// Contains reports whether c is in the set.
func (s *CellSet) Contains(c Cell) bool {
	_, ok := s.index[c]
	return ok
}

// Len returns the number of cells in the set.
func (s *CellSet) Len() int {
	return len(s.order)
}

// All iterates over the cells in insertion order.
// The set must not be modified during the iteration.
func (s *CellSet) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, c := range s.order {
			if !yield(c) {
				return
			}
		}
	}
}

// Cells returns a copy of the cells in insertion order.
func (s *CellSet) Cells() []Cell {
	return slices.Clone(s.order)
}

// Union adds all cells of other to s.
func (s *CellSet) Union(other *CellSet) {
	for _, c := range other.order {
		s.Add(c)
	}
}

// Clone returns an independent copy of s.
func (s *CellSet) Clone() *CellSet {
	res := NewCellSet(s.Len())
	res.Union(s)
	return res
}

// Bounds returns the smallest rectangle containing all cells.
// The rectangle is empty if the set is empty.
func (s *CellSet) Bounds() image.Rectangle {
	if len(s.order) == 0 {
		return image.Rectangle{}
	}
	first := s.order[0]
	b := image.Rect(first.X, first.Y, first.X+1, first.Y+1)
	for _, c := range s.order[1:] {
		b.Min.X = min(b.Min.X, c.X)
		b.Min.Y = min(b.Min.Y, c.Y)
		b.Max.X = max(b.Max.X, c.X+1)
		b.Max.Y = max(b.Max.Y, c.Y+1)
	}
	return b
}
