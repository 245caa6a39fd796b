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
	"log/slog"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rasteriser converts geometry given in user space to the set of grid
// cells it occupies.  A configured Rasteriser has no mutable state, so it
// can be used by several goroutines at once, as long as its fields are
// not modified.
type Rasteriser struct {
	// CTM transforms from user space to grid coordinates, where cell
	// (x, y) is the unit square [x, x+1) × [y, y+1).  The zero value is
	// treated as the identity.  For sweeps, CTM must be a similarity
	// (rotation, uniform scaling, translation, optionally a reflection),
	// so that circles are mapped to circles.
	CTM matrix.Matrix

	// Clip restricts the reported cells to those which overlap this
	// rectangle in grid coordinates.  The zero rectangle means that the
	// grid is unbounded.  Holes are filled before clipping.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in grid cells, used by
	// PathCells.  Must be positive.
	Flatness float64

	// Logger, if set, receives a debug record for every computed result.
	Logger *slog.Logger
}

// NewRasteriser returns a Rasteriser with an identity transformation, no
// clipping and the default flatness.
func NewRasteriser() *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
	}
}

// Reset restores the default values of all parameters.
func (r *Rasteriser) Reset() {
	r.CTM = matrix.Identity
	r.Clip = rect.Rect{}
	r.Flatness = defaultFlatness
	r.Logger = nil
}

// StaticCells returns the cells occupied by the polyline through the
// given points.  K+1 points describe K segments; a single point has no
// segments and gives an empty result.
func (r *Rasteriser) StaticCells(points []vec.Vec2) (*Buffer, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: empty polyline", ErrInvalidGeometry)
	}

	s := NewCellSet(0)
	prev := r.toGrid(points[0])
	if err := checkPoint(prev); err != nil {
		return nil, err
	}
	for _, p := range points[1:] {
		next := r.toGrid(p)
		if err := AddSegment(s, prev, next); err != nil {
			return nil, err
		}
		prev = next
	}

	r.debug("static path", "points", len(points), "cells", s.Len())
	return r.export(s)
}

// SweepCells returns the cells covered at some time while the links of a
// manipulator starting at joint points[pivot] rotate about this joint by
// angle radians (positive = counter-clockwise in user space).  The
// result has no holes.  See MotionBorder for details.
func (r *Rasteriser) SweepCells(points []vec.Vec2, pivot int, angle float64) (*Buffer, error) {
	m := r.ctm()
	switch similarity(m) {
	case orientationKept:
		// pass
	case orientationReversed:
		angle = -angle
	default:
		return nil, fmt.Errorf("%w: transformation %v does not preserve circles",
			ErrInvalidGeometry, m)
	}

	grid := make([]vec.Vec2, len(points))
	for i, p := range points {
		grid[i] = r.toGrid(p)
	}

	border, err := MotionBorder(grid, pivot, angle)
	if err != nil {
		return nil, err
	}
	nBorder := border.Len()
	if err := Fill(border); err != nil {
		return nil, err
	}

	r.debug("sweep",
		"joints", len(points),
		"pivot", pivot,
		"angle", angle,
		"border", nBorder,
		"cells", border.Len())
	return r.export(border)
}

// PathCells returns the cells occupied by the outline of a path.
// Curves are approximated by line segments, with a maximal deviation of
// Flatness grid cells.
func (r *Rasteriser) PathCells(p path.Path) (*Buffer, error) {
	if !(r.Flatness > 0) {
		return nil, fmt.Errorf("%w: flatness %g is not positive", ErrInvalidGeometry, r.Flatness)
	}

	s := NewCellSet(0)
	var err error
	addEdge := func(from, to vec.Vec2) {
		if err == nil {
			err = AddSegment(s, r.toGrid(from), r.toGrid(to))
		}
	}

	var current vec.Vec2 // current point (user space)
	var subpath vec.Vec2 // subpath start (user space)
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			subpath = current
		case path.CmdLineTo:
			addEdge(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1], addEdge)
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], addEdge)
			current = pts[2]
		case path.CmdClose:
			if current != subpath {
				addEdge(current, subpath)
			}
			current = subpath
		}
		if err != nil {
			return nil, err
		}
	}

	r.debug("path", "cells", s.Len())
	return r.export(s)
}

// export clips the cells in s and copies them into a new Buffer.
func (r *Rasteriser) export(s *CellSet) (*Buffer, error) {
	clip := r.Clip != (rect.Rect{})

	buf := newBuffer(s.Len())
	for c := range s.All() {
		if clip && !overlaps(c, r.Clip) {
			continue
		}
		if c.X < math.MinInt32 || c.X > math.MaxInt32 || c.Y < math.MinInt32 || c.Y > math.MaxInt32 {
			_ = buf.Release()
			return nil, fmt.Errorf("%w: cell %v outside the int32 range", ErrInvalidGeometry, c)
		}
		buf.cells = append(buf.cells, Cell32{X: int32(c.X), Y: int32(c.Y)})
	}
	return buf, nil
}

// overlaps reports whether the interior of cell c intersects the clip
// rectangle.
func overlaps(c Cell, clip rect.Rect) bool {
	x, y := float64(c.X), float64(c.Y)
	return x+1 > clip.LLx && x < clip.URx && y+1 > clip.LLy && y < clip.URy
}

func (r *Rasteriser) debug(msg string, args ...any) {
	if r.Logger != nil {
		r.Logger.Debug(msg, args...)
	}
}

// ctm returns the effective user space to grid transformation.
func (r *Rasteriser) ctm() matrix.Matrix {
	if r.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return r.CTM
}

// toGrid maps a point from user space to grid coordinates.
func (r *Rasteriser) toGrid(p vec.Vec2) vec.Vec2 {
	m := r.ctm()
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// gridLength returns the length of the user space vector v after mapping
// it to the grid.  Translations do not affect vectors.
func (r *Rasteriser) gridLength(v vec.Vec2) float64 {
	m := r.ctm()
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

// flattenQuadratic approximates the quadratic Bézier curve from p0 via the
// control point p1 to p2 by a polyline whose vertices lie on the curve.
// The chords deviate from the curve by at most Flatness grid cells.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// The chord of a piece with parameter length 1/n deviates by |p0-2p1+p2|/(4n²).
	dev := r.gridLength(p0.Sub(p1.Mul(2)).Add(p2)) / 4
	n := pieces(dev, r.Flatness)

	polyline(n, p0, emit, func(t float64) vec.Vec2 {
		s := 1 - t
		return p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
	})
}

// flattenCubic is the cubic counterpart of flattenQuadratic, with control
// points p1 and p2.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	// Wang's bound on the second differences.
	d := max(r.gridLength(p0.Sub(p1.Mul(2)).Add(p2)), r.gridLength(p1.Sub(p2.Mul(2)).Add(p3)))
	n := pieces(3*d/4, r.Flatness)

	polyline(n, p0, emit, func(t float64) vec.Vec2 {
		s := 1 - t
		return p0.Mul(s * s * s).Add(p1.Mul(3 * s * s * t)).Add(p2.Mul(3 * s * t * t)).Add(p3.Mul(t * t * t))
	})
}

// pieces returns the number of equal parameter steps needed so that
// dev/n² does not exceed tol.
func pieces(dev, tol float64) int {
	if dev <= tol {
		return 1
	}
	return int(math.Ceil(math.Sqrt(dev / tol)))
}

// polyline evaluates at at n equal parameter steps and calls emit for
// every chord, starting from p0.
func polyline(n int, p0 vec.Vec2, emit func(from, to vec.Vec2), at func(t float64) vec.Vec2) {
	prev := p0
	for i := 1; i <= n; i++ {
		next := at(float64(i) / float64(n))
		emit(prev, next)
		prev = next
	}
}

// orientation classifies a linear map with respect to circles.
type orientation int

const (
	notSimilar orientation = iota
	orientationKept
	orientationReversed
)

// similarity determines whether m maps circles to circles, and whether it
// reverses the direction of rotations.
func similarity(m matrix.Matrix) orientation {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return notSimilar
	}
	tol := similarityTolerance * math.Sqrt(math.Abs(det))
	switch {
	case math.Abs(m[0]-m[3]) <= tol && math.Abs(m[1]+m[2]) <= tol:
		return orientationKept
	case math.Abs(m[0]+m[3]) <= tol && math.Abs(m[1]-m[2]) <= tol:
		return orientationReversed
	default:
		return notSimilar
	}
}

// Default values for rasteriser parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in grid
	// cells.
	defaultFlatness = 0.1
)

// Numerical tolerances for the rasteriser.
const (
	// similarityTolerance is the relative tolerance used to decide whether
	// the CTM is a similarity transformation.
	similarityTolerance = 1e-9
)
