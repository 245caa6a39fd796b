package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var staticCases = []TestCase{
	{
		Name:   "horizontal",
		Points: []vec.Vec2{pt(0.5, 2.5), pt(9.5, 2.5)},
		Op:     Static{},
	},
	{
		Name:   "vertical",
		Points: []vec.Vec2{pt(3.5, 0.5), pt(3.5, 8.5)},
		Op:     Static{},
	},
	{
		Name:   "diagonal",
		Points: []vec.Vec2{pt(0.3, 0.7), pt(7.9, 6.2)},
		Op:     Static{},
	},
	{
		Name:   "steep",
		Points: []vec.Vec2{pt(1.1, 0.2), pt(2.3, 9.7)},
		Op:     Static{},
	},
	{
		Name:   "grid_line",
		Points: []vec.Vec2{pt(0, 0), pt(6, 0)},
		Op:     Static{},
	},
	{
		Name:   "grid_corners",
		Points: []vec.Vec2{pt(0, 0), pt(5, 5)},
		Op:     Static{},
	},
	{
		Name:   "inside_cell",
		Points: []vec.Vec2{pt(2.2, 3.3), pt(2.7, 3.9)},
		Op:     Static{},
	},
	{
		Name:   "point",
		Points: []vec.Vec2{pt(4.5, 4.5), pt(4.5, 4.5)},
		Op:     Static{},
	},
	{
		Name:   "negative",
		Points: []vec.Vec2{pt(-5.5, -2.2), pt(3.1, -7.9)},
		Op:     Static{},
	},
	{
		Name: "zigzag",
		Points: []vec.Vec2{
			pt(0.5, 0.5), pt(3.2, 4.7), pt(5.9, 0.8), pt(8.4, 5.1), pt(11.6, 1.3),
		},
		Op: Static{},
	},
	{
		Name:   "star",
		Points: fivePointStar(10, 10, 8),
		Op:     Static{},
	},
}

// fivePointStar returns the closed polyline of a five-pointed star
// (self-intersecting).
func fivePointStar(cx, cy, r float64) []vec.Vec2 {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	var res []vec.Vec2
	for _, i := range []int{0, 2, 4, 1, 3, 0} {
		res = append(res, pts[i])
	}
	return res
}
