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

package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single occupancy test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Points []vec.Vec2    // polyline or joint chain, for Static and Sweep
	Path   path.Path     // outline, for Outline
	Op     Operation     // how the geometry is turned into cells
	CTM    matrix.Matrix // user space to grid (zero-value means no transform)
}

// Operation is the occupancy computation to apply to the geometry.
type Operation interface {
	isOperation()
}

// Static specifies the occupancy of the polyline through Points.
type Static struct{}

func (Static) isOperation() {}

// Sweep specifies the area covered while the joints Points[Pivot:]
// rotate about Points[Pivot] by Angle radians.
type Sweep struct {
	Pivot int
	Angle float64
}

func (Sweep) isOperation() {}

// Outline specifies the occupancy of the outline of Path.
type Outline struct{}

func (Outline) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
