package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var outlineCases = []TestCase{
	{
		Name: "rectangle",
		Path: rectangle(1.5, 1.5, 12.5, 8.5),
		Op:   Outline{},
	},
	{
		Name: "mixed_lines_curves",
		Path: mixedLinesCurves(),
		Op:   Outline{},
	},
	{
		Name: "spiral",
		Path: spiralPath(16, 16, 2, 14, 3),
		Op:   Outline{},
	},
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x1, Y: y2}}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// mixedLinesCurves builds a path combining line segments and Bezier curves.
func mixedLinesCurves() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: 2.5, Y: 12.5}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: 5, Y: 7.5}}) {
			return
		}
		if !yield(path.CmdQuadTo, []vec.Vec2{{X: 8, Y: 2.5}, {X: 11, Y: 7.5}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: 13.5, Y: 12.5}}) {
			return
		}
		if !yield(path.CmdCubeTo, []vec.Vec2{{X: 12, Y: 15}, {X: 4, Y: 15}, {X: 2.5, Y: 12.5}}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// spiralPath builds an Archimedean spiral, approximated by line segments.
func spiralPath(cx, cy, rMin, rMax float64, turns float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		steps := max(int(turns*32), 8) // 32 segments per turn

		totalAngle := turns * 2 * math.Pi
		rGrowth := (rMax - rMin) / totalAngle

		if !yield(path.CmdMoveTo, []vec.Vec2{{X: cx + rMin, Y: cy}}) {
			return
		}
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps)
			angle := t * totalAngle
			r := rMin + rGrowth*angle

			x := cx + r*math.Cos(angle)
			y := cy + r*math.Sin(angle)
			if !yield(path.CmdLineTo, []vec.Vec2{{X: x, Y: y}}) {
				return
			}
		}
	}
}
