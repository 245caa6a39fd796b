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
	"math"

	"seehuhn.de/go/geom/vec"
)

// fullTurn is the period of an angle in radians.
const fullTurn = 2 * math.Pi

// maxCoord bounds the absolute value of input coordinates in grid units.
// Sweeps can reach roughly three times this distance from the origin,
// which still fits into the int32 range of the exported cells.
const maxCoord = 1 << 29

// Cell is a unit square of the grid, identified by its lower-left corner.
// Cell{X, Y} covers [X, X+1) × [Y, Y+1).
type Cell struct {
	X, Y int
}

// CellOf returns the cell containing p.
func CellOf(p vec.Vec2) Cell {
	return Cell{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// Add returns the component-wise sum of c and d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Swap exchanges the x and y coordinates.
func (c Cell) Swap() Cell {
	return Cell{X: c.Y, Y: c.X}
}

// RotateLeft rotates c by 90° counter-clockwise about the origin.
func (c Cell) RotateLeft() Cell {
	return Cell{X: -c.Y, Y: c.X}
}

// RotateRight rotates c by 90° clockwise about the origin.
func (c Cell) RotateRight() Cell {
	return Cell{X: c.Y, Y: -c.X}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// rotate rotates p about the origin by phi radians.
// The result is computed from magnitude and argument, so that all points
// rotated from the same vector keep exactly the same radius.
func rotate(p vec.Vec2, phi float64) vec.Vec2 {
	return fromPolar(p.Length(), argument(p)+phi)
}

// fromPolar returns the point with magnitude r and argument phi.
func fromPolar(r, phi float64) vec.Vec2 {
	return vec.Vec2{X: r * math.Cos(phi), Y: r * math.Sin(phi)}
}

// argument returns the angle of p in (-π, π].
func argument(p vec.Vec2) float64 {
	return math.Atan2(p.Y, p.X)
}

// swap exchanges the x and y coordinates of p.
// Swapping axes mirrors the plane, so sweep angles change sign.
func swap(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: p.Y, Y: p.X}
}

// pointCells adds every cell whose closed square contains p.
func pointCells(s *CellSet, p vec.Vec2) {
	c := CellOf(p)
	s.Add(c)
	onX := float64(c.X) == p.X
	onY := float64(c.Y) == p.Y
	if onX {
		s.Add(Cell{X: c.X - 1, Y: c.Y})
	}
	if onY {
		s.Add(Cell{X: c.X, Y: c.Y - 1})
	}
	if onX && onY {
		s.Add(Cell{X: c.X - 1, Y: c.Y - 1})
	}
}

// checkPoint verifies that p can be rasterised.
func checkPoint(p vec.Vec2) error {
	for _, v := range [2]float64{p.X, p.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite coordinate in (%g, %g)", ErrInvalidGeometry, p.X, p.Y)
		}
		if math.Abs(v) > maxCoord {
			return fmt.Errorf("%w: coordinate out of range in (%g, %g)", ErrInvalidGeometry, p.X, p.Y)
		}
	}
	return nil
}
