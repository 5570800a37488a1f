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

package pocket

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// bulgeArc recovers the circular arc from a to b described by bulge, the
// tangent of a quarter of the included angle. Positive bulges turn
// counter-clockwise. The returned sweep is the signed included angle.
//
// ok is false if the edge should be treated as a straight line: the bulge
// is (nearly) zero or the chord is too short to define a circle.
func bulgeArc(a, b vec.Vec2, bulge float64) (center vec.Vec2, sweep float64, ok bool) {
	if math.Abs(bulge) < bulgeTolerance {
		return vec.Vec2{}, 0, false
	}
	d := b.Sub(a)
	chord := d.Length()
	if chord < chordTolerance {
		return vec.Vec2{}, 0, false
	}

	// Distance from the chord midpoint to the centre, measured along the
	// left normal of the chord.
	h := chord / 2 * (1 - bulge*bulge) / (2 * bulge)
	u := d.Mul(1 / chord)
	n := vec.Vec2{X: -u.Y, Y: u.X}
	center = a.Add(d.Mul(0.5)).Add(n.Mul(h))
	return center, 4 * math.Atan(bulge), true
}

// appendEdge appends the points of the edge from a to b to pts, not
// including a itself. Arcs are subdivided into arcSegments straight pieces;
// the final point is always exactly b.
func appendEdge(pts []vec.Vec2, a, b vec.Vec2, bulge float64) []vec.Vec2 {
	center, sweep, ok := bulgeArc(a, b, bulge)
	if !ok {
		return append(pts, b)
	}
	r := a.Sub(center).Length()
	if r < chordTolerance {
		return append(pts, b)
	}
	a0 := math.Atan2(a.Y-center.Y, a.X-center.X)
	for i := 1; i < arcSegments; i++ {
		t := a0 + sweep*float64(i)/arcSegments
		pts = append(pts, center.Add(vec.Vec2{X: r * math.Cos(t), Y: r * math.Sin(t)}))
	}
	return append(pts, b)
}

const (
	// arcSegments is the number of straight pieces used for each bulged
	// ring edge.
	arcSegments = 16

	bulgeTolerance = 1e-9
	chordTolerance = 1e-9
)
