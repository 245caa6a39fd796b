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

// Package occupancy computes the exact set of unit grid cells occupied by
// continuous geometry: line segments, circular arcs, and the swept
// footprint of a planar manipulator rotating about one of its joints.
//
// Cell (x, y) denotes the half-open square [x, x+1) × [y, y+1).  All
// rasterisers are conservative: every cell which the continuous shape
// overlaps with positive area is reported, and a few neighbouring cells
// may be reported in addition.
//
// The low-level functions [AddSegment], [AddArc], [Fill] and
// [MotionBorder] work directly on a [CellSet].  The [Rasteriser] type
// adds a user-space to grid transformation, clipping and an owned result
// [Buffer] on top of these.
package occupancy

//go:generate go run ./testcases/export
