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

var multipassCases = []TestCase{
	{
		Name:     "contour_three_passes",
		Shape:    Rectangle{Center: pt(30, 20), Width: 50, Height: 30},
		Strategy: Contour{},
		Depth:    5,
		StepDown: 2,
		Width:    60,
		Height:   40,
	},
	{
		Name:      "raster_ramped",
		Shape:     Circle{Center: pt(30, 30), Radius: 25},
		Strategy:  Raster{Bidirectional: true},
		Depth:     6,
		StepDown:  1.5,
		RampAngle: 3,
		Width:     60,
		Height:    60,
	},
	{
		Name:      "adaptive_ramped",
		Shape:     Outline{Path: star(40, 40, 35, 18)},
		Strategy:  Adaptive{},
		Tool:      4,
		Depth:     4,
		StepDown:  1,
		RampAngle: 5,
		Width:     80,
		Height:    80,
	},
}
