package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var sweepCases = []TestCase{
	{
		Name:   "quarter_link",
		Points: []vec.Vec2{pt(0, 0), pt(4, 0)},
		Op:     Sweep{Pivot: 0, Angle: math.Pi / 2},
	},
	{
		Name:   "elbow",
		Points: []vec.Vec2{pt(0, 0), pt(5, 0), pt(5, 3)},
		Op:     Sweep{Pivot: 0, Angle: math.Pi / 3},
	},
	{
		Name:   "elbow_middle",
		Points: []vec.Vec2{pt(0, 0), pt(5, 0), pt(8, 2)},
		Op:     Sweep{Pivot: 1, Angle: -math.Pi / 2},
	},
	{
		// the second link passes closest to the pivot at (2, 6)
		Name:   "closest_point",
		Points: []vec.Vec2{pt(2, 2), pt(-3, 6), pt(8, 6)},
		Op:     Sweep{Pivot: 0, Angle: 2 * math.Pi / 3},
	},
	{
		Name:   "zero_angle",
		Points: []vec.Vec2{pt(0.5, 0.5), pt(6.2, 3.1), pt(9, 0.4)},
		Op:     Sweep{Pivot: 0, Angle: 0},
	},
	{
		Name:   "off_grid",
		Points: []vec.Vec2{pt(1.37, 2.71), pt(7.13, 4.19), pt(9.77, 1.05)},
		Op:     Sweep{Pivot: 0, Angle: 1.234},
	},
	{
		Name:   "three_links",
		Points: []vec.Vec2{pt(0, 0), pt(3, 1), pt(6, 0), pt(8, 3)},
		Op:     Sweep{Pivot: 1, Angle: 0.8},
	},
	{
		Name:   "negative_coords",
		Points: []vec.Vec2{pt(-3.3, -4.4), pt(-9.1, -1.2)},
		Op:     Sweep{Pivot: 0, Angle: -2.1},
	},
}

var turnCases = []TestCase{
	{
		Name:   "full_turn",
		Points: []vec.Vec2{pt(0.5, 0.5), pt(5.5, 2.5)},
		Op:     Sweep{Pivot: 0, Angle: 2 * math.Pi},
	},
	{
		Name:   "two_and_a_half",
		Points: []vec.Vec2{pt(0, 0), pt(3, 0), pt(3, 3)},
		Op:     Sweep{Pivot: 0, Angle: 5 * math.Pi},
	},
	{
		Name:   "backwards",
		Points: []vec.Vec2{pt(1, 1), pt(1, 6), pt(4, 6)},
		Op:     Sweep{Pivot: 0, Angle: -3 * math.Pi},
	},
	{
		Name:   "last_link",
		Points: []vec.Vec2{pt(0, 0), pt(4, 4), pt(6, 4)},
		Op:     Sweep{Pivot: 1, Angle: 7},
	},
}
