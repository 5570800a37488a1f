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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Prepare converts a raw vertex list into a clockwise boundary suitable for
// offsetting. Consecutive points closer than vertexTolerance are merged and
// a final point coinciding with the first is dropped.
//
// Prepare returns nil if fewer than three distinct points remain or the
// polygon encloses no area. Callers treat this as "nothing to cut".
func Prepare(pts []vec.Vec2) []vec.Vec2 {
	res := make([]vec.Vec2, 0, len(pts))
	for _, p := range pts {
		if len(res) > 0 && res[len(res)-1].Sub(p).Length() < vertexTolerance {
			continue
		}
		res = append(res, p)
	}
	for len(res) > 1 && res[len(res)-1].Sub(res[0]).Length() < vertexTolerance {
		res = res[:len(res)-1]
	}
	if len(res) < 3 {
		return nil
	}

	area := SignedArea(res)
	if math.Abs(area) < areaTolerance {
		return nil
	}
	if area > 0 {
		slices.Reverse(res)
	}
	return res
}

// SignedArea returns the area enclosed by the polygon, using the shoelace
// formula. The result is positive for counter-clockwise polygons.
func SignedArea(pts []vec.Vec2) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var a float64
	for i := range n {
		p, q := pts[i], pts[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Centroid returns the area centroid of the polygon. For polygons without
// area the mean of the vertices is returned.
func Centroid(pts []vec.Vec2) vec.Vec2 {
	n := len(pts)
	if n == 0 {
		return vec.Vec2{}
	}
	if n > 1 && near(pts[0], pts[n-1]) {
		n--
		pts = pts[:n]
	}

	area := SignedArea(pts)
	if math.Abs(area) < areaTolerance {
		var sum vec.Vec2
		for _, p := range pts {
			sum = sum.Add(p)
		}
		return sum.Mul(1 / float64(n))
	}

	var cx, cy float64
	for i := range n {
		p, q := pts[i], pts[(i+1)%n]
		cross := p.X*q.Y - q.X*p.Y
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	k := 1 / (6 * area)
	return vec.Vec2{X: cx * k, Y: cy * k}
}

// contains reports whether p lies inside the polygon, using the even-odd
// rule. Points on the boundary may be classified either way.
func contains(poly []vec.Vec2, p vec.Vec2) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// crossesBoundary reports whether the open segment a-b properly intersects
// any edge of the polygon.
func crossesBoundary(poly []vec.Vec2, a, b vec.Vec2) bool {
	n := len(poly)
	for i := range n {
		c, d := poly[i], poly[(i+1)%n]
		if segmentsIntersect(a, b, c, d) {
			return true
		}
	}
	return false
}

func segmentsIntersect(a, b, c, d vec.Vec2) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// cross returns the z component of (b-a)×(p-a).
func cross(a, b, p vec.Vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// boundaryDistance returns the distance from p to the nearest edge of the
// polygon.
func boundaryDistance(poly []vec.Vec2, p vec.Vec2) float64 {
	best := math.Inf(1)
	n := len(poly)
	for i := range n {
		a, b := poly[i], poly[(i+1)%n]
		d := b.Sub(a)
		t := 0.0
		if dd := d.Dot(d); dd > 0 {
			t = max(0, min(1, p.Sub(a).Dot(d)/dd))
		}
		best = min(best, p.Sub(a.Add(d.Mul(t))).Length())
	}
	return best
}

// bounds returns the bounding box of the points.
func bounds(pts []vec.Vec2) rect.Rect {
	if len(pts) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{LLx: pts[0].X, LLy: pts[0].Y, URx: pts[0].X, URy: pts[0].Y}
	for _, p := range pts[1:] {
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	return r
}

// RectanglePolygon returns the four corners of an axis-aligned rectangle,
// counter-clockwise starting at the lower left corner.
func RectanglePolygon(center vec.Vec2, width, height float64) []vec.Vec2 {
	hw, hh := width/2, height/2
	return []vec.Vec2{
		{X: center.X - hw, Y: center.Y - hh},
		{X: center.X + hw, Y: center.Y - hh},
		{X: center.X + hw, Y: center.Y + hh},
		{X: center.X - hw, Y: center.Y + hh},
	}
}

// CirclePolygon approximates a circle by a regular n-gon,
// counter-clockwise starting on the positive X axis.
func CirclePolygon(center vec.Vec2, radius float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vec.Vec2{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	return pts
}

// PathBoundaries converts the subpaths of p into vertex lists. Curves are
// flattened into curveSteps line segments. Subpaths with fewer than three
// vertices are omitted; the results are not yet prepared.
func PathBoundaries(p path.Path) [][]vec.Vec2 {
	var res [][]vec.Vec2
	var cur []vec.Vec2
	flush := func() {
		if len(cur) >= 3 {
			res = append(res, cur)
		}
		cur = nil
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			cur = append(cur, pts[0])
		case path.CmdLineTo:
			cur = append(cur, pts[0])
		case path.CmdQuadTo:
			if len(cur) == 0 {
				continue
			}
			p0 := cur[len(cur)-1]
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				omt := 1 - t
				cur = append(cur, p0.Mul(omt*omt).Add(pts[0].Mul(2*omt*t)).Add(pts[1].Mul(t*t)))
			}
		case path.CmdCubeTo:
			if len(cur) == 0 {
				continue
			}
			p0 := cur[len(cur)-1]
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				omt := 1 - t
				cur = append(cur, p0.Mul(omt*omt*omt).
					Add(pts[0].Mul(3*omt*omt*t)).
					Add(pts[1].Mul(3*omt*t*t)).
					Add(pts[2].Mul(t*t*t)))
			}
		case path.CmdClose:
			flush()
		}
	}
	flush()
	return res
}

// Geometric tolerances.
const (
	// vertexTolerance is the distance below which consecutive input
	// vertices are merged.
	vertexTolerance = 0.01

	// pointTolerance is the distance below which two tool positions are
	// considered equal.
	pointTolerance = 1e-6

	// areaTolerance is the minimum enclosed area of a usable polygon or
	// ring.
	areaTolerance = 1e-9

	// depthTolerance absorbs rounding in the Z pass count.
	depthTolerance = 1e-9

	// curveSteps is the number of line segments used for each curve in
	// PathBoundaries.
	curveSteps = 16

	// previewArcSteps is the number of line segments used for each arc in
	// Toolpath.Path.
	previewArcSteps = 16
)
