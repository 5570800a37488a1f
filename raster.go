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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// edge represents a boundary edge in scan coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

// stroke is a single straight cutting move of a raster pattern.
type stroke struct {
	a, b vec.Vec2
}

// scanner intersects a polygon with horizontal lines after rotating it so
// that the requested scan direction becomes the X axis.
type scanner struct {
	toScan   matrix.Matrix // rotation into scan coordinates
	fromScan matrix.Matrix // rotation back to user coordinates

	poly  []vec.Vec2 // boundary in scan coordinates
	edges []edge

	// Span trimming parameters.
	radius float64
	fill   float64

	xs []float64 // crossing buffer, reused for every scan line
}

func newScanner(boundary []vec.Vec2, angle, radius, fill float64) *scanner {
	s := &scanner{
		toScan:   matrix.RotateDeg(-angle),
		fromScan: matrix.RotateDeg(angle),
		radius:   radius,
		fill:     fill,
	}

	s.poly = make([]vec.Vec2, len(boundary))
	for i, p := range boundary {
		s.poly[i] = apply(s.toScan, p)
	}

	n := len(s.poly)
	for i := range n {
		p0, p1 := s.poly[i], s.poly[(i+1)%n]

		// Skip horizontal edges
		dy := p1.Y - p0.Y
		if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
			continue
		}
		s.edges = append(s.edges, edge{
			x0: p0.X, y0: p0.Y,
			x1: p1.X, y1: p1.Y,
			dxdy: (p1.X - p0.X) / dy,
		})
	}
	return s
}

// lines returns the scan line positions in scan coordinates. The first and
// last lines keep the tool radius plus a quarter stepover away from the
// extreme points of the boundary.
func (s *scanner) lines(stepover float64) []float64 {
	bb := bounds(s.poly)
	inset := rasterInset * stepover
	first := bb.LLy + s.radius + inset
	last := bb.URy - s.radius - inset

	var ys []float64
	for i := 0; i < maxScanLines; i++ {
		y := first + float64(i)*stepover
		if y > last+pointTolerance {
			break
		}
		ys = append(ys, y)
	}
	return ys
}

// spans returns the parts of the scan line at height y which the tool
// centre can follow, from left to right, in scan coordinates.
//
// Crossings with the boundary are paired into spans. Each span is shortened
// by the tool radius at both ends and then trimmed symmetrically so that
// only the fraction s.fill of it remains. Spans with both end points
// outside the boundary are discarded.
func (s *scanner) spans(y float64) [][2]float64 {
	s.xs = s.xs[:0]
	for i := range s.edges {
		e := &s.edges[i]
		yMin, yMax := min(e.y0, e.y1), max(e.y0, e.y1)
		if y < yMin || y >= yMax {
			continue
		}
		s.xs = append(s.xs, e.x0+e.dxdy*(y-e.y0))
	}
	slices.Sort(s.xs)

	var res [][2]float64
	for i := 0; i+1 < len(s.xs); i += 2 {
		a := s.xs[i] + s.radius
		b := s.xs[i+1] - s.radius
		if b-a <= pointTolerance {
			continue
		}
		if s.fill < 1 {
			trim := (b - a) * (1 - s.fill) / 2
			a += trim
			b -= trim
		}
		if !contains(s.poly, vec.Vec2{X: a, Y: y}) && !contains(s.poly, vec.Vec2{X: b, Y: y}) {
			continue
		}
		res = append(res, [2]float64{a, b})
	}
	return res
}

// strokes returns the raster pattern in user coordinates, in machining
// order. With bidirectional set, the direction alternates from one scan
// line to the next; otherwise all strokes run in the scan direction.
func (s *scanner) strokes(stepover float64, bidirectional bool) []stroke {
	var res []stroke
	forward := true
	for _, y := range s.lines(stepover) {
		spans := s.spans(y)
		if bidirectional && !forward {
			slices.Reverse(spans)
		}
		for _, sp := range spans {
			a := vec.Vec2{X: sp[0], Y: y}
			b := vec.Vec2{X: sp[1], Y: y}
			if bidirectional && !forward {
				a, b = b, a
			}
			res = append(res, stroke{a: apply(s.fromScan, a), b: apply(s.fromScan, b)})
		}
		forward = !forward
	}
	return res
}

// rasterToolpath clears one Z pass with a raster pattern.
func rasterToolpath(boundary []vec.Vec2, islands []Island, r Raster, op *Operation, pass zPass) []Segment {
	s := newScanner(boundary, r.Angle, op.toolRadius(), op.FillRatio)
	c := newCutter(op, islands, boundary, pass)

	linkDist := rasterLinkFactor * op.ToolDiameter
	for i, st := range s.strokes(op.Stepover, r.Bidirectional) {
		link := r.Bidirectional && i > 0 && st.a.Sub(c.pen).Length() <= linkDist
		c.moveTo(st.a, link)
		c.lineTo(st.b)
	}
	return c.finish()
}

// apply transforms p by the matrix m.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Raster pattern parameters.
const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to produce scan line crossings. Edges with |y1 - y0| below this
	// threshold are skipped as horizontal.
	horizontalEdgeThreshold = 1e-10

	// rasterInset keeps the first and last scan lines this fraction of the
	// stepover away from the walls.
	rasterInset = 0.25

	// rasterLinkFactor, multiplied by the tool diameter, is the largest
	// gap between strokes that is bridged without retracting.
	rasterLinkFactor = 1.5

	// maxScanLines bounds the number of scan lines for pathological
	// stepovers.
	maxScanLines = 100000
)
