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

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var polygonCases = []TestCase{
	{
		Name:     "triangle_contour",
		Shape:    Outline{Path: triangle(5, 5, 75, 10, 35, 65)},
		Strategy: Contour{},
		Width:    80,
		Height:   70,
	},
	{
		Name:     "triangle_raster",
		Shape:    Outline{Path: triangle(5, 5, 75, 10, 35, 65)},
		Strategy: Raster{Angle: 45, Bidirectional: true},
		Width:    80,
		Height:   70,
	},
	{
		Name:     "star_contour",
		Shape:    Outline{Path: star(40, 40, 35, 15)},
		Strategy: Contour{},
		Tool:     3,
		Width:    80,
		Height:   80,
	},
	{
		Name:     "star_adaptive",
		Shape:    Outline{Path: star(40, 40, 35, 15)},
		Strategy: Adaptive{},
		Tool:     3,
		Width:    80,
		Height:   80,
	},
	{
		Name:     "l_shape_raster",
		Shape:    Outline{Path: lShape(5, 5, 70, 60, 25)},
		Strategy: Raster{Bidirectional: true},
		Width:    80,
		Height:   70,
	},
	{
		Name:     "l_shape_contour",
		Shape:    Outline{Path: lShape(5, 5, 70, 60, 25)},
		Strategy: Contour{},
		Width:    80,
		Height:   70,
	},
	{
		Name:     "collinear",
		Shape:    Outline{Path: triangle(5, 5, 40, 5, 75, 5)},
		Strategy: Contour{},
		Width:    80,
		Height:   10,
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// star builds a five-pointed star outline with alternating outer and inner
// vertices. The outline does not intersect itself.
func star(cx, cy, rOuter, rInner float64) *path.Data {
	p := &path.Data{}
	for i := range 10 {
		r := rOuter
		if i%2 == 1 {
			r = rInner
		}
		angle := float64(i)*math.Pi/5 + math.Pi/2
		v := vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
		if i == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p.Close()
}

// lShape builds an L-shaped outline in the box from (x1, y1) to (x2, y2),
// with legs of the given width along the bottom and left sides.
func lShape(x1, y1, x2, y2, leg float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y1+leg)).
		LineTo(pt(x1+leg, y1+leg)).
		LineTo(pt(x1+leg, y2)).
		LineTo(pt(x1, y2)).
		Close()
}
