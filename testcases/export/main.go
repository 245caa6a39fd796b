// Command export writes the test cases, together with the cells computed
// for them, to JSON.  Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/occupancy"
	"seehuhn.de/go/occupancy/testcases"
)

const outFile = "testdata/testcases.json"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if err := run(logger); err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			jtc, err := toJSON(name, tc, logger.With("case", name))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		return err
	}
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(out)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	logger.Info("wrote test cases", "file", outFile, "count", len(out.TestCases))
	return nil
}

type jsonTestCase struct {
	Name   string      `json:"name"`
	Op     string      `json:"op"`
	Points [][]float64 `json:"points,omitempty"`
	Pivot  int         `json:"pivot,omitempty"`
	Angle  float64     `json:"angle,omitempty"`
	CTM    []float64   `json:"ctm,omitempty"`
	Cells  [][2]int32  `json:"cells"`
}

func toJSON(name string, tc testcases.TestCase, logger *slog.Logger) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   name,
		Points: pointsToJSON(tc.Points),
	}
	if tc.CTM != (matrix.Matrix{}) {
		jtc.CTM = tc.CTM[:]
	}

	r := occupancy.NewRasteriser()
	r.Logger = logger
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}

	var buf *occupancy.Buffer
	var err error
	switch op := tc.Op.(type) {
	case testcases.Static:
		jtc.Op = "static"
		buf, err = r.StaticCells(tc.Points)
	case testcases.Sweep:
		jtc.Op = "sweep"
		jtc.Pivot = op.Pivot
		jtc.Angle = op.Angle
		buf, err = r.SweepCells(tc.Points, op.Pivot, op.Angle)
	case testcases.Outline:
		jtc.Op = "outline"
		buf, err = r.PathCells(tc.Path)
	default:
		return jtc, fmt.Errorf("unknown operation %T", tc.Op)
	}
	if err != nil {
		return jtc, err
	}

	jtc.Cells = make([][2]int32, 0, buf.Len())
	for c := range buf.All() {
		jtc.Cells = append(jtc.Cells, [2]int32{c.X, c.Y})
	}
	if err := buf.Release(); err != nil {
		return jtc, err
	}
	return jtc, nil
}

func pointsToJSON(pts []vec.Vec2) [][]float64 {
	var res [][]float64
	for _, p := range pts {
		res = append(res, []float64{p.X, p.Y})
	}
	return res
}
