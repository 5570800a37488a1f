// seehuhn.de/go/pocket - pocket milling toolpaths
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

// Package pocket generates 2.5-axis toolpaths which clear the inside of a
// closed boundary with a flat end mill.
//
// A [Generator] combines an [Operation] (tool, depths, feeds and clearing
// [Strategy]) with optional circular keep-out [Island] regions. Its
// RectangularPocket, CircularPocket and PolygonPocket methods return one
// continuous [Toolpath] per Z pass.
package pocket

//go:generate go run ./testcases/export

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pocket/testcases"
)

// GenerateExample generates the toolpaths for a test case.
// Zero parameters in the test case are replaced by defaults.
func GenerateExample(tc testcases.TestCase) ([]Toolpath, error) {
	g := NewGenerator(ExampleOperation(tc))
	for _, is := range tc.Islands {
		g.AddCircularIsland(is.Center, is.Radius)
	}

	switch s := tc.Shape.(type) {
	case testcases.Rectangle:
		return g.RectangularPocket(s.Center, s.Width, s.Height)
	case testcases.Circle:
		return g.CircularPocket(s.Center, s.Radius)
	case testcases.Outline:
		var pts []vec.Vec2
		if s.Path != nil {
			if b := PathBoundaries(s.Path.Iter()); len(b) > 0 {
				pts = b[0]
			}
		}
		return g.PolygonPocket(pts)
	}
	return nil, nil
}

// ExampleOperation returns the machining parameters of a test case.
func ExampleOperation(tc testcases.TestCase) Operation {
	op := DefaultOperation()
	if tc.Tool > 0 {
		op.ToolDiameter = tc.Tool
	}
	op.Stepover = op.ToolDiameter / 2
	if tc.Stepover > 0 {
		op.Stepover = tc.Stepover
	}
	if tc.Depth > 0 {
		op.Depth = tc.Depth
	}
	op.StepDown = tc.StepDown
	op.RampAngle = tc.RampAngle
	if tc.FillRatio > 0 {
		op.FillRatio = tc.FillRatio
	}
	op.Climb = !tc.Conv

	switch s := tc.Strategy.(type) {
	case testcases.Raster:
		op.Strategy = Raster{Angle: s.Angle, Bidirectional: s.Bidirectional}
	case testcases.Adaptive:
		op.Strategy = Adaptive{}
	default:
		op.Strategy = ContourParallel{}
	}
	return op
}
