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

var rectangleCases = []TestCase{
	{
		Name:     "contour",
		Shape:    Rectangle{Center: pt(50, 50), Width: 100, Height: 100},
		Strategy: Contour{},
		Width:    100,
		Height:   100,
	},
	{
		Name:     "contour_conventional",
		Shape:    Rectangle{Center: pt(50, 30), Width: 80, Height: 40},
		Strategy: Contour{},
		Conv:     true,
		Width:    100,
		Height:   60,
	},
	{
		Name:     "raster_bidirectional",
		Shape:    Rectangle{Center: pt(40, 25), Width: 60, Height: 30},
		Strategy: Raster{Bidirectional: true},
		Width:    80,
		Height:   50,
	},
	{
		Name:     "raster_oneway",
		Shape:    Rectangle{Center: pt(40, 25), Width: 60, Height: 30},
		Strategy: Raster{},
		Width:    80,
		Height:   50,
	},
	{
		Name:     "raster_rotated",
		Shape:    Rectangle{Center: pt(40, 40), Width: 60, Height: 60},
		Strategy: Raster{Angle: 30, Bidirectional: true},
		Width:    80,
		Height:   80,
	},
	{
		Name:      "raster_half_fill",
		Shape:     Rectangle{Center: pt(40, 25), Width: 60, Height: 30},
		Strategy:  Raster{Bidirectional: true},
		FillRatio: 0.5,
		Width:     80,
		Height:    50,
	},
	{
		Name:     "adaptive",
		Shape:    Rectangle{Center: pt(40, 30), Width: 60, Height: 40},
		Strategy: Adaptive{},
		Width:    80,
		Height:   60,
	},
	{
		Name:     "narrow_slot",
		Shape:    Rectangle{Center: pt(40, 10), Width: 60, Height: 8},
		Strategy: Contour{},
		Width:    80,
		Height:   20,
	},
}
