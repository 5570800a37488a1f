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

package testcases

import "seehuhn.de/go/geom/path"

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:     "circle_path",
		Shape:    Outline{Path: circle(30, 30, 25)},
		Strategy: Contour{},
		Width:    60,
		Height:   60,
	},
	{
		Name:     "ellipse_raster",
		Shape:    Outline{Path: ellipse(40, 25, 35, 20)},
		Strategy: Raster{Angle: 90, Bidirectional: true},
		Width:    80,
		Height:   50,
	},
	{
		Name:     "ellipse_adaptive",
		Shape:    Outline{Path: ellipse(40, 25, 35, 20)},
		Strategy: Adaptive{},
		Width:    80,
		Height:   50,
	},
	{
		Name:     "quadratic_lens",
		Shape:    Outline{Path: quadraticCurve(5, 20, 40, 60, 75, 20)},
		Strategy: Contour{},
		Tool:     4,
		Width:    80,
		Height:   50,
	},
	{
		Name:     "cubic_bulb",
		Shape:    Outline{Path: cubicCurve(10, 10, -10, 70, 90, 70, 70, 10)},
		Strategy: Raster{Angle: 15},
		Tool:     4,
		Width:    80,
		Height:   60,
	},
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// cubicCurve builds a closed shape with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}
