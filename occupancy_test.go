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
	"cmp"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// sortedCells returns the cells of s in a canonical order, for comparisons.
func sortedCells(s *CellSet) []Cell {
	cells := s.Cells()
	slices.SortFunc(cells, func(a, b Cell) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return cells
}

// setOf returns a set containing the given cells.
func setOf(cells ...Cell) *CellSet {
	s := NewCellSet(len(cells))
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// block returns the w×h rectangle of cells with lower-left cell (x0, y0).
func block(x0, y0, w, h int) *CellSet {
	s := NewCellSet(w * h)
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			s.Add(Cell{X: x, Y: y})
		}
	}
	return s
}

// ring returns the w×h rectangle of cells with the interior removed.
func ring(x0, y0, w, h int) *CellSet {
	s := NewCellSet(0)
	for c := range block(x0, y0, w, h).All() {
		if c.X == x0 || c.X == x0+w-1 || c.Y == y0 || c.Y == y0+h-1 {
			s.Add(c)
		}
	}
	return s
}

// nearGridLine reports whether p is so close to a grid line that the
// cell containing p depends on rounding.
func nearGridLine(p vec.Vec2) bool {
	const eps = 1e-6
	return math.Abs(p.X-math.Round(p.X)) < eps || math.Abs(p.Y-math.Round(p.Y)) < eps
}

// checkCovers reports an error for every sample point whose cell is
// missing from s.
func checkCovers(t *testing.T, name string, s *CellSet, samples []vec.Vec2) {
	t.Helper()
	missing := 0
	for _, p := range samples {
		if nearGridLine(p) {
			continue
		}
		if c := CellOf(p); !s.Contains(c) {
			if missing < 5 {
				t.Errorf("%s: cell %v of point (%g, %g) is missing", name, c, p.X, p.Y)
			}
			missing++
		}
	}
	if missing > 0 {
		t.Errorf("%s: %d of %d sample points not covered", name, missing, len(samples))
		_ = writeDebugImage(name, s, samples)
	}
}

// segmentSamples returns n+1 equally spaced points on [a, b].
func segmentSamples(a, b vec.Vec2, n int) []vec.Vec2 {
	res := make([]vec.Vec2, 0, n+1)
	for i := range n + 1 {
		t := float64(i) / float64(n)
		res = append(res, a.Add(b.Sub(a).Mul(t)))
	}
	return res
}

// arcSamples returns n+1 equally spaced points on the arc traced by a
// rotating about o by delta.
func arcSamples(o, a vec.Vec2, delta float64, n int) []vec.Vec2 {
	res := make([]vec.Vec2, 0, n+1)
	for i := range n + 1 {
		phi := delta * float64(i) / float64(n)
		res = append(res, o.Add(rotate(a.Sub(o), phi)))
	}
	return res
}

// writeDebugImage writes an image of the cells in s (grey) and the
// sample points (red) to the debug directory.
func writeDebugImage(name string, s *CellSet, samples []vec.Vec2) (err error) {
	const scale = 8

	b := s.Bounds()
	for _, p := range samples {
		b = b.Union(image.Rectangle{Min: image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y))), Max: image.Pt(int(math.Floor(p.X))+1, int(math.Floor(p.Y))+1)})
	}
	b = b.Inset(-1)
	w, h := b.Dx()*scale, b.Dy()*scale

	// Image rows run downwards, grid rows upwards.
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for c := range s.All() {
		x0 := (c.X - b.Min.X) * scale
		y0 := h - (c.Y-b.Min.Y+1)*scale
		for y := y0; y < y0+scale; y++ {
			for x := x0; x < x0+scale; x++ {
				img.Set(x, y, color.RGBA{R: 160, G: 160, B: 160, A: 255})
			}
		}
	}
	for _, p := range samples {
		x := int((p.X - float64(b.Min.X)) * scale)
		y := h - 1 - int((p.Y-float64(b.Min.Y))*scale)
		img.Set(x, y, color.RGBA{R: 255, A: 255})
	}

	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
