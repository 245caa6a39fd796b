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

import "errors"

var (
	// ErrInvalidGeometry is returned when the caller violates the
	// geometric preconditions of an operation, for example by requesting
	// an arc of radius zero or a pivot joint which does not exist.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrTopology is returned by the boundary tracer when a cell set does
	// not have a single closed outer boundary.  This indicates malformed
	// input, such as a set with more than one connected component.
	ErrTopology = errors.New("unexpected cell set topology")

	// ErrReleased is returned when a Buffer is released more than once.
	ErrReleased = errors.New("buffer already released")
)
