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

// Command genpdf draws every test case as a PDF file, for visual
// inspection.  The occupied cells are shown as grey squares, with the
// geometry drawn on top.  Run from the module root directory.
package main

import (
	"fmt"
	"image"
	"log/slog"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/occupancy"
	"seehuhn.de/go/occupancy/testcases"
)

const (
	outDir   = "debug/cases"
	cellSize = 12.0 // points per grid cell
	margin   = 24.0 // points around the drawing
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := os.MkdirAll(outDir, 0755); err != nil {
		logger.Error("cannot create output directory", "error", err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				logger.Error("cannot draw test case", "case", name, "error", err)
				os.Exit(1)
			}
			logger.Info("wrote", "file", pdfPath)
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	cells, err := computeCells(tc)
	if err != nil {
		return err
	}
	bounds := cellBounds(cells)

	paper := &pdf.Rectangle{
		URx: float64(bounds.Dx())*cellSize + 2*margin,
		URy: float64(bounds.Dy())*cellSize + 2*margin,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// From here on, all coordinates are grid coordinates.
	page.Transform(matrix.Matrix{
		cellSize, 0, 0, cellSize,
		margin - float64(bounds.Min.X)*cellSize,
		margin - float64(bounds.Min.Y)*cellSize,
	})

	// occupied cells
	page.SetFillColor(color.DeviceGray(0.75))
	for _, c := range cells {
		page.Rectangle(float64(c.X), float64(c.Y), 1, 1)
	}
	page.Fill()

	// grid lines
	page.SetStrokeColor(color.DeviceGray(0.5))
	page.SetLineWidth(0.5 / cellSize)
	for x := bounds.Min.X; x <= bounds.Max.X; x++ {
		page.MoveTo(float64(x), float64(bounds.Min.Y))
		page.LineTo(float64(x), float64(bounds.Max.Y))
	}
	for y := bounds.Min.Y; y <= bounds.Max.Y; y++ {
		page.MoveTo(float64(bounds.Min.X), float64(y))
		page.LineTo(float64(bounds.Max.X), float64(y))
	}
	page.Stroke()

	// From here on, all coordinates are user space coordinates.
	ctm := tc.CTM
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	page.Transform(ctm)
	scale := math.Sqrt(math.Abs(ctm[0]*ctm[3] - ctm[1]*ctm[2]))

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1.5 / (cellSize * scale))
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	switch op := tc.Op.(type) {
	case testcases.Static:
		drawPolyline(page, tc.Points)
	case testcases.Sweep:
		drawPolyline(page, tc.Points)
		drawPolyline(page, rotateChain(tc.Points, op.Pivot, op.Angle))
	case testcases.Outline:
		drawPath(page, tc.Path)
	}
	page.Stroke()

	return page.Close()
}

// computeCells runs the occupancy computation for a test case.
func computeCells(tc testcases.TestCase) ([]occupancy.Cell32, error) {
	r := occupancy.NewRasteriser()
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}

	var buf *occupancy.Buffer
	var err error
	switch op := tc.Op.(type) {
	case testcases.Static:
		buf, err = r.StaticCells(tc.Points)
	case testcases.Sweep:
		buf, err = r.SweepCells(tc.Points, op.Pivot, op.Angle)
	case testcases.Outline:
		buf, err = r.PathCells(tc.Path)
	default:
		err = fmt.Errorf("unknown operation %T", tc.Op)
	}
	if err != nil {
		return nil, err
	}

	cells := slices.Clone(buf.Cells())
	if err := buf.Release(); err != nil {
		return nil, err
	}
	return cells, nil
}

// cellBounds returns the bounding box of the cells, with one extra cell
// on every side.
func cellBounds(cells []occupancy.Cell32) image.Rectangle {
	var b image.Rectangle
	for i, c := range cells {
		r := image.Rect(int(c.X), int(c.Y), int(c.X)+1, int(c.Y)+1)
		if i == 0 {
			b = r
		} else {
			b = b.Union(r)
		}
	}
	return b.Inset(-1)
}

// rotateChain returns the joints after the links starting at joint pivot
// have been rotated by angle.
func rotateChain(points []vec.Vec2, pivot int, angle float64) []vec.Vec2 {
	o := points[pivot]
	sin, cos := math.Sincos(angle)
	res := slices.Clone(points)
	for i := pivot + 1; i < len(res); i++ {
		d := res[i].Sub(o)
		res[i] = o.Add(vec.Vec2{X: d.X*cos - d.Y*sin, Y: d.X*sin + d.Y*cos})
	}
	return res
}

type drawer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

func drawPolyline(page drawer, points []vec.Vec2) {
	for i, p := range points {
		if i == 0 {
			page.MoveTo(p.X, p.Y)
		} else {
			page.LineTo(p.X, p.Y)
		}
	}
}

// drawPath draws a path; quadratic curves are converted to cubic ones,
// since PDF does not support them.
func drawPath(page drawer, p path.Path) {
	var current vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
			current = pts[0]
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
			current = pts[0]
		case path.CmdQuadTo:
			c1 := current.Add(pts[0].Sub(current).Mul(2.0 / 3.0))
			c2 := pts[1].Add(pts[0].Sub(pts[1]).Mul(2.0 / 3.0))
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, pts[1].X, pts[1].Y)
			current = pts[1]
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			current = pts[2]
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
