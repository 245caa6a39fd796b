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
	"encoding/binary"
	"iter"
	"slices"
	"sync"
)

// Cell32 is a grid cell in the exported, fixed-width representation.
type Cell32 struct {
	X, Y int32
}

// Buffer holds the cells computed by a Rasteriser.
//
// The caller owns the buffer and must call Release exactly once when the
// cells are no longer needed.  The storage is then reused for later
// results.
type Buffer struct {
	cells    []Cell32
	released bool
}

var cellPool = sync.Pool{
	New: func() any { return new([]Cell32) },
}

// newBuffer returns an empty buffer with room for at least n cells.
func newBuffer(n int) *Buffer {
	p := cellPool.Get().(*[]Cell32)
	return &Buffer{cells: slices.Grow((*p)[:0], n)}
}

// Len returns the number of cells in the buffer.
func (b *Buffer) Len() int {
	return len(b.cells)
}

// Cells returns the cells in the buffer.  The order is stable between
// runs but otherwise unspecified.  The returned slice must not be used
// after the buffer has been released.
func (b *Buffer) Cells() []Cell32 {
	return b.cells
}

// All iterates over the cells in the buffer.
func (b *Buffer) All() iter.Seq[Cell32] {
	return slices.Values(b.cells)
}

// Release returns the storage of the buffer for reuse.
// After Release, the buffer is empty.
func (b *Buffer) Release() error {
	if b.released {
		return ErrReleased
	}
	b.released = true

	cells := b.cells[:0]
	b.cells = nil
	cellPool.Put(&cells)
	return nil
}

// MarshalBinary encodes the buffer in the count-prefixed wire format:
// a little-endian uint32 cell count, followed by the x and y coordinate
// of every cell as little-endian int32 values.
func (b *Buffer) MarshalBinary() ([]byte, error) {
	if b.released {
		return nil, ErrReleased
	}
	data := make([]byte, 0, 4+8*len(b.cells))
	data = binary.LittleEndian.AppendUint32(data, uint32(len(b.cells)))
	for _, c := range b.cells {
		data = binary.LittleEndian.AppendUint32(data, uint32(c.X))
		data = binary.LittleEndian.AppendUint32(data, uint32(c.Y))
	}
	return data, nil
}
