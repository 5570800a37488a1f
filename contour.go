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

import "seehuhn.de/go/geom/vec"

// contourToolpath clears one Z pass by following the offset rings from the
// outside in. Every ring is entered with a ramp or plunge at its first
// vertex. The centre left inside the last ring is cleaned up afterwards.
func contourToolpath(levels [][]Ring, boundary []vec.Vec2, islands []Island, op *Operation, pass zPass) []Segment {
	c := newCutter(op, islands, boundary, pass)

	var last []vec.Vec2
	for _, level := range levels {
		for _, ring := range level {
			pts := ring.oriented(op.Climb).Points()
			if len(pts) < 4 {
				continue
			}
			c.moveTo(pts[0], false)
			for _, p := range pts[1:] {
				c.lineTo(p)
			}
			last = pts
		}
	}

	if last != nil {
		cleanup(c, Centroid(last), op, pass.z)
	}
	return c.finish()
}

// adaptiveToolpath clears one Z pass by following the offset rings from the
// inside out. The tool ramps into the innermost ring; later rings are joined
// by a cutting move when they start next to the end of the previous one and
// entered with a rapid move otherwise.
func adaptiveToolpath(levels [][]Ring, boundary []vec.Vec2, islands []Island, op *Operation, pass zPass) []Segment {
	c := newCutter(op, islands, boundary, pass)

	var innermost []vec.Vec2
	for i := len(levels) - 1; i >= 0; i-- {
		for _, ring := range levels[i] {
			pts := ring.oriented(op.Climb).Points()
			if len(pts) < 4 {
				continue
			}
			link := innermost != nil && pts[0].Sub(c.pen).Length() <= adaptiveLinkGap
			c.moveTo(pts[0], link)
			for _, p := range pts[1:] {
				c.lineTo(p)
			}
			if innermost == nil {
				innermost = pts
			}
		}
	}

	if innermost != nil {
		// The pattern is run twice on purpose.
		center := Centroid(innermost)
		cleanup(c, center, op, pass.z)
		cleanup(c, center, op, pass.z)
	}
	return c.finish()
}

// cleanup runs the centre cleanup pattern at center. The pattern is shrunk
// where its full size would take the tool through the pocket wall, and
// omitted if not even the smallest pattern fits.
func cleanup(c *cutter, center vec.Vec2, op *Operation, z float64) {
	d := op.ToolDiameter
	if c.boundary != nil {
		if !contains(c.boundary, center) {
			return
		}
		room := boundaryDistance(c.boundary, center) - op.toolRadius()
		if room < minCleanupRadius {
			return
		}
		d = min(d, 2*room)
	}
	c.moveTo(center, true)
	c.follow(CenterCleanup(center, d, z, op.FeedRate, op.SpindleSpeed))
}

// RectangleLoops returns the tool centre loops for clearing an axis-aligned
// rectangle from the outside in. The first loop is inset by toolRadius, each
// further loop by another stepover, as long as the loop keeps a positive
// size. Each loop is closed: it has five points and ends where it starts.
func RectangleLoops(center vec.Vec2, width, height, toolRadius, stepover float64) [][]vec.Vec2 {
	if !(stepover > 0) {
		return nil
	}
	var loops [][]vec.Vec2
	for i := 0; i < maxOffsetIterations; i++ {
		offset := toolRadius + float64(i)*stepover
		w := width - 2*offset
		h := height - 2*offset
		if w <= 0 || h <= 0 {
			break
		}
		corners := RectanglePolygon(center, w, h)
		loops = append(loops, append(corners, corners[0]))
	}
	return loops
}

// CircleLoops returns the tool centre loops for clearing a circle from the
// outside in, as closed regular polygons with circleLoopSides sides.
func CircleLoops(center vec.Vec2, radius, toolRadius, stepover float64) [][]vec.Vec2 {
	if !(stepover > 0) {
		return nil
	}
	var loops [][]vec.Vec2
	for i := 0; i < maxOffsetIterations; i++ {
		r := radius - toolRadius - float64(i)*stepover
		if r <= 0 {
			break
		}
		pts := CirclePolygon(center, r, circleLoopSides)
		loops = append(loops, append(pts, pts[0]))
	}
	return loops
}

// loopLevels converts closed loops into single-ring offset levels.
func loopLevels(loops [][]vec.Vec2) [][]Ring {
	levels := make([][]Ring, 0, len(loops))
	for _, loop := range loops {
		ring := make(Ring, len(loop)-1)
		for i := range ring {
			ring[i] = Vertex{Pt: loop[i]}
		}
		levels = append(levels, []Ring{ring})
	}
	return levels
}

const (
	// adaptiveLinkGap is the largest distance between consecutive rings of
	// the adaptive strategy which is bridged without a rapid move.
	adaptiveLinkGap = 0.1

	// circleLoopSides is the number of sides of the closed-form circular
	// loops.
	circleLoopSides = 36

	// circlePolygonSides is the number of sides used when a circle is
	// treated as a general polygon.
	circlePolygonSides = 64
)
