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
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"
)

// TestSweepAgainstVector compares the cells of a rotating link with the
// pixels covered by the same sector, as filled by x/image/vector.
func TestSweepAgainstVector(t *testing.T) {
	const (
		size   = 82
		cx, cy = 40.3, 40.7
		radius = 30.2
		start  = 0.4

		// Pixels with less coverage may be caused by float32 rounding
		// at the sector boundary.
		minAlpha = 4
	)

	for _, delta := range []float64{math.Pi / 2, 2 * math.Pi / 3, -1, 3 * math.Pi / 2, 2 * math.Pi} {
		t.Run(fmt.Sprintf("%.3f", delta), func(t *testing.T) {
			o := vec.Vec2{X: cx, Y: cy}
			a := o.Add(fromPolar(radius, start))
			r := NewRasteriser()
			buf, err := r.SweepCells([]vec.Vec2{o, a}, 0, delta)
			if err != nil {
				t.Fatal(err)
			}
			defer buf.Release()
			s := bufferSet(buf)

			z := vector.NewRasterizer(size, size)
			addSectorToVector(z, cx, cy, radius, start, delta)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			z.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{255}), image.Point{})

			// Pixel (x, y) covers the same square as cell (x, y).
			missing := 0
			for y := range size {
				for x := range size {
					if dst.AlphaAt(x, y).A >= minAlpha && !s.Contains(Cell{x, y}) {
						if missing < 5 {
							t.Errorf("pixel (%d, %d) with alpha %d is not covered",
								x, y, dst.AlphaAt(x, y).A)
						}
						missing++
					}
				}
			}
			if missing > 0 {
				t.Errorf("%d pixels not covered", missing)
			}

			// Cells away from the sector must not be reported.
			for c := range s.All() {
				near := false
				for dy := -1; dy <= 1 && !near; dy++ {
					for dx := -1; dx <= 1 && !near; dx++ {
						near = dst.AlphaAt(c.X+dx, c.Y+dy).A > 0
					}
				}
				if !near {
					t.Errorf("cell %v is not adjacent to the sector", c)
				}
			}
		})
	}
}
