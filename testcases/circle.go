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

var circleCases = []TestCase{
	{
		Name:     "contour",
		Shape:    Circle{Center: pt(30, 30), Radius: 25},
		Strategy: Contour{},
		Width:    60,
		Height:   60,
	},
	{
		Name:     "raster",
		Shape:    Circle{Center: pt(30, 30), Radius: 20},
		Strategy: Raster{Bidirectional: true},
		Tool:     4,
		Stepover: 8,
		Width:    60,
		Height:   60,
	},
	{
		Name:     "adaptive",
		Shape:    Circle{Center: pt(30, 30), Radius: 25},
		Strategy: Adaptive{},
		Width:    60,
		Height:   60,
	},
	{
		Name:      "helix_entry",
		Shape:     Circle{Center: pt(30, 30), Radius: 25},
		Strategy:  Contour{},
		RampAngle: 5,
		Width:     60,
		Height:    60,
	},
	{
		Name:     "small_tool",
		Shape:    Circle{Center: pt(15, 15), Radius: 12},
		Strategy: Contour{},
		Tool:     1,
		Stepover: 0.8,
		Width:    30,
		Height:   30,
	},
}
