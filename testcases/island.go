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

var islandCases = []TestCase{
	{
		Name:     "raster_center",
		Shape:    Rectangle{Center: pt(40, 40), Width: 70, Height: 70},
		Islands:  []Island{{Center: pt(40, 40), Radius: 10}},
		Strategy: Raster{Bidirectional: true},
		Width:    80,
		Height:   80,
	},
	{
		Name:     "contour_center",
		Shape:    Rectangle{Center: pt(40, 40), Width: 70, Height: 70},
		Islands:  []Island{{Center: pt(40, 40), Radius: 10}},
		Strategy: Contour{},
		Width:    80,
		Height:   80,
	},
	{
		Name:  "adaptive_two",
		Shape: Circle{Center: pt(40, 40), Radius: 35},
		Islands: []Island{
			{Center: pt(25, 40), Radius: 6},
			{Center: pt(55, 40), Radius: 6},
		},
		Strategy: Adaptive{},
		Width:    80,
		Height:   80,
	},
	{
		Name:  "raster_grid",
		Shape: Rectangle{Center: pt(50, 35), Width: 90, Height: 60},
		Islands: []Island{
			{Center: pt(25, 20), Radius: 4},
			{Center: pt(50, 20), Radius: 4},
			{Center: pt(75, 20), Radius: 4},
			{Center: pt(25, 50), Radius: 4},
			{Center: pt(50, 50), Radius: 4},
			{Center: pt(75, 50), Radius: 4},
		},
		Strategy:  Raster{Angle: 45, Bidirectional: true},
		RampAngle: 3,
		Width:     100,
		Height:    70,
	},
}
