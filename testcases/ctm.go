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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Points: []vec.Vec2{pt(0, 0), pt(4, 0)},
		Op:     Sweep{Pivot: 0, Angle: math.Pi / 2},
		CTM:    matrix.Scale(2, 2).Translate(10, 10),
	},
	{
		Name:   "rotate_30deg",
		Points: []vec.Vec2{pt(0, 0), pt(5, 0), pt(5, 3)},
		Op:     Sweep{Pivot: 0, Angle: math.Pi / 3},
		CTM:    matrix.RotateDeg(30).Translate(20, 20),
	},
	{
		// y axis pointing down, as for screen coordinates
		Name:   "flip_y",
		Points: []vec.Vec2{pt(0, 0), pt(5, 0), pt(5, 3)},
		Op:     Sweep{Pivot: 0, Angle: math.Pi / 3},
		CTM:    matrix.Scale(1, -1).Translate(0, 20),
	},
	{
		Name:   "static_scale_3x",
		Points: fivePointStar(4, 4, 3),
		Op:     Static{},
		CTM:    matrix.Scale(3, 3),
	},
}
