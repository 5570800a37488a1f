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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single pocketing scenario.
//
// Zero values for the machining parameters select the defaults listed in
// the field comments.
type TestCase struct {
	Name     string   // lowercase a-z, 0-9 and _ only
	Shape    Shape    // the pocket outline
	Islands  []Island // keep-out regions
	Strategy Strategy // clearing strategy

	Tool      float64 // tool diameter (6)
	Stepover  float64 // lateral step (half the tool diameter)
	Depth     float64 // total pocket depth (5)
	StepDown  float64 // depth per pass (full depth)
	RampAngle float64 // helix angle in degrees (plunge)
	FillRatio float64 // raster stroke fraction (1)
	Conv      bool    // conventional instead of climb milling

	Width, Height float64 // plot area, with the origin at the lower left
}

// Shape is a pocket outline.
type Shape interface {
	isShape()
}

// Rectangle is an axis-aligned rectangular pocket.
type Rectangle struct {
	Center        vec.Vec2
	Width, Height float64
}

// Circle is a circular pocket.
type Circle struct {
	Center vec.Vec2
	Radius float64
}

// Outline is a pocket given by a closed path. Only the first subpath is
// used; curves are flattened.
type Outline struct {
	Path *path.Data
}

func (Rectangle) isShape() {}
func (Circle) isShape()    {}
func (Outline) isShape()   {}

// Island is a circular keep-out region.
type Island struct {
	Center vec.Vec2
	Radius float64
}

// Strategy is the clearing strategy of a test case.
type Strategy interface {
	isStrategy()
}

// Raster clears with parallel scan lines.
type Raster struct {
	Angle         float64 // degrees
	Bidirectional bool
}

// Contour clears with offset rings from the outside in.
type Contour struct{}

// Adaptive clears with offset rings from the inside out.
type Adaptive struct{}

func (Raster) isStrategy()   {}
func (Contour) isStrategy()  {}
func (Adaptive) isStrategy() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
