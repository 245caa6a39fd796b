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

import "math"

// InRotation reports whether a rotation which starts at angle start and
// turns by delta passes through angle.
//
// All angles are in radians.  Angles which differ by a multiple of 2π are
// considered equal, but delta is taken literally: a rotation by 2π or
// more passes through every angle.  The start and end angles are included,
// with a tolerance which absorbs the rounding error of the normalisation.
func InRotation(start, delta, angle float64) bool {
	start /= fullTurn
	delta /= fullTurn
	angle /= fullTurn

	start -= math.Floor(start)
	angle -= math.Floor(angle)

	end := start + delta
	if end < start {
		start, end = end, start
	}

	// One end of the interval lies in [0, 1) and angle lies in [0, 1),
	// so if any translate of angle is inside, one of these three is.
	start -= turnTolerance
	end += turnTolerance
	for _, a := range [3]float64{angle, angle - 1, angle + 1} {
		if start <= a && a <= end {
			return true
		}
	}
	return false
}

// turnTolerance widens the tested interval, in units of full turns.
const turnTolerance = 1e-9
