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

// MotionBorder returns the cells on the border of the area swept by a
// planar manipulator.
//
// The manipulator is the chain of links points[i]→points[i+1].  The links
// starting at or after the pivot joint points[pivot] rotate rigidly about
// this joint by angle radians; the links before the pivot stay in place.
// The result contains the initial and final positions of all links and
// the arcs traced by the joints, and in general it has holes.
func MotionBorder(points []vec.Vec2, pivot int, angle float64) (*CellSet, error) {
	if err := checkChain(points, pivot, angle); err != nil {
		return nil, err
	}

	s := NewCellSet(0)
	for i := range pivot {
		addSegment(s, points[i], points[i+1])
	}

	if angle == 0 {
		for i := pivot; i < len(points)-1; i++ {
			addSegment(s, points[i], points[i+1])
		}
		return s, nil
	}

	o := points[pivot]
	chain := refineChain(o, points[pivot:])
	for i := range len(chain) - 1 {
		p, q := chain[i], chain[i+1]
		p1 := o.Add(rotate(p.Sub(o), angle))
		q1 := o.Add(rotate(q.Sub(o), angle))

		addSegment(s, p, q)
		addSegment(s, p1, q1)
		if p != o {
			addArc(s, o, p, angle)
		}
		if q != o {
			addArc(s, o, q, angle)
		}
	}
	return s, nil
}

// MotionCells returns all cells covered at some time while a planar
// manipulator rotates.  The arguments are the same as for MotionBorder.
func MotionCells(points []vec.Vec2, pivot int, angle float64) (*CellSet, error) {
	s, err := MotionBorder(points, pivot, angle)
	if err != nil {
		return nil, err
	}
	if err := Fill(s); err != nil {
		return nil, err
	}
	return s, nil
}

// refineChain returns the joints of the rotating chain, with the point
// closest to o inserted into every link which has this point in its
// interior.  The distance from o is monotonic between consecutive points
// of the result, so the sweep of each piece is bounded by the arcs traced
// by its end points.  The first point of chain must be o.
func refineChain(o vec.Vec2, chain []vec.Vec2) []vec.Vec2 {
	res := make([]vec.Vec2, 0, 2*len(chain))
	res = append(res, chain[0])
	for i := range len(chain) - 1 {
		a, b := chain[i], chain[i+1]
		ab := b.Sub(a)
		t := ab.Dot(o.Sub(a)) / ab.Dot(ab)
		if 0 < t && t < 1 { // false for NaN, i.e. for a == b
			res = append(res, a.Add(ab.Mul(t)))
		}
		res = append(res, b)
	}
	return res
}

// checkChain validates the arguments of MotionBorder.
func checkChain(points []vec.Vec2, pivot int, angle float64) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: manipulator needs at least two joints, got %d",
			ErrInvalidGeometry, len(points))
	}
	if pivot < 0 || pivot >= len(points)-1 {
		return fmt.Errorf("%w: pivot %d outside [0, %d)",
			ErrInvalidGeometry, pivot, len(points)-1)
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return fmt.Errorf("%w: non-finite rotation angle %g", ErrInvalidGeometry, angle)
	}
	for _, p := range points {
		if err := checkPoint(p); err != nil {
			return err
		}
	}
	return nil
}
