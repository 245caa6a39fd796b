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

// AddArc adds all cells which overlap a circular arc to s.
// The arc is traced by the point a as it rotates about the centre o by
// delta radians (positive = counter-clockwise).  If |delta| is 2π or
// more, the full circle is added.
//
// The point a must differ from o.
func AddArc(s *CellSet, o, a vec.Vec2, delta float64) error {
	if err := checkPoint(o); err != nil {
		return err
	}
	if err := checkPoint(a); err != nil {
		return err
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return fmt.Errorf("%w: non-finite sweep angle %g", ErrInvalidGeometry, delta)
	}
	if a == o {
		return fmt.Errorf("%w: arc of radius zero at (%g, %g)", ErrInvalidGeometry, o.X, o.Y)
	}
	addArc(s, o, a, delta)
	return nil
}

// addArc implements AddArc for validated input.
func addArc(s *CellSet, o, a vec.Vec2, delta float64) {
	// Crossings exactly at the end points can be lost to rounding, so the
	// end points are added explicitly.
	pointCells(s, a)
	pointCells(s, o.Add(rotate(a.Sub(o), delta)))

	addArcCrossingsX(s, o, a, delta, identity)
	addArcCrossingsX(s, swap(o), swap(a), -delta, Cell.Swap)
}

// addArcCrossingsX marks the cells on both sides of every vertical grid
// line crossed by the arc.  The cells are passed through place before
// insertion.
func addArcCrossingsX(s *CellSet, o, a vec.Vec2, delta float64, place func(Cell) Cell) {
	ra := a.Sub(o)
	b := o.Add(rotate(ra, delta))
	r := ra.Length()
	start := argument(ra)

	// Away from the angles 0 and π, x is monotonic along the circle.
	xMin := int(math.Ceil(min(a.X, b.X)))
	xMax := int(math.Floor(max(a.X, b.X)))
	if InRotation(start, delta, 0) {
		xMax = int(math.Floor(o.X + r))
	}
	if InRotation(start, delta, math.Pi) {
		xMin = int(math.Ceil(o.X - r))
	}

	for x := xMin; x <= xMax; x++ {
		cos := (float64(x) - o.X) / r
		phi := math.Acos(max(-1, min(1, cos)))

		// The grid line meets the circle at the angles ±phi.
		for _, psi := range [2]float64{phi, -phi} {
			if !InRotation(start, delta, psi) {
				continue
			}
			p := o.Add(fromPolar(r, psi))
			y := int(math.Floor(p.Y))
			if yr := math.Round(p.Y); math.Abs(p.Y-yr) <= vertexTolerance*max(1, r) {
				// The circle passes through a grid vertex, and p.Y may
				// have been rounded to the wrong side.
				y = int(yr) - 1
				s.Add(place(Cell{X: x - 1, Y: y + 1}))
				s.Add(place(Cell{X: x, Y: y + 1}))
			}
			s.Add(place(Cell{X: x - 1, Y: y}))
			s.Add(place(Cell{X: x, Y: y}))
		}
	}
}

// vertexTolerance is the relative distance from a grid vertex below which
// an arc crossing is treated as passing through the vertex.
const vertexTolerance = 1e-9
