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

// cutter turns a pattern of moves at cutting depth into a continuous
// toolpath for one Z pass. It inserts retracts, rapid traverses and ramp
// entries where the pattern is not contiguous, and removes the parts of
// straight moves which would come too close to an island.
//
// The pattern is described through moveTo, lineTo and arcTo, relative to a
// "pen" which may differ from the tool position while a move is suppressed.
type cutter struct {
	op       *Operation
	islands  []Island
	boundary []vec.Vec2 // links and ramps must stay inside; nil disables the check
	top, z   float64

	segs   []Segment
	pos    vec.Vec2 // tool position
	posZ   float64
	placed bool // pos and posZ are valid
	inCut  bool // the tool is at cutting depth at pos

	pen      vec.Vec2
	linkNext bool // the next gap may be bridged by a cutting move
}

func newCutter(op *Operation, islands []Island, boundary []vec.Vec2, pass zPass) *cutter {
	return &cutter{
		op:       op,
		islands:  islands,
		boundary: boundary,
		top:      pass.top,
		z:        pass.z,
	}
}

// moveTo starts a new part of the pattern at p. If link is set and the tool
// is already cutting, the gap may be bridged by a straight cut instead of a
// rapid move.
func (c *cutter) moveTo(p vec.Vec2, link bool) {
	c.pen = p
	c.linkNext = link
}

// lineTo cuts a straight line from the pen to p.
func (c *cutter) lineTo(p vec.Vec2) {
	for _, pc := range clipIslands(c.pen, p, c.islands, c.op.toolRadius()) {
		c.travel(pc.a, c.linkNext)
		c.linkNext = true
		c.cut(pc.b)
	}
	c.pen = p
}

// arcTo cuts an arc around center from the pen to p. Arcs which would
// come too close to an island are skipped.
func (c *cutter) arcTo(kind SegmentKind, center, p vec.Vec2) {
	r := c.pen.Sub(center).Length()
	if circleClear(center, r, c.islands, c.op.toolRadius()) {
		c.travel(c.pen, c.linkNext)
		c.linkNext = true
		c.add(Segment{
			Kind:    kind,
			Start:   c.pos,
			End:     p,
			Center:  center,
			StartZ:  c.z,
			EndZ:    c.z,
			Feed:    c.op.FeedRate,
			Spindle: c.op.SpindleSpeed,
		})
	}
	c.pen = p
}

// follow traces a pattern given as segments, starting from the pen.
// Only the XY geometry of the segments is used.
func (c *cutter) follow(segs []Segment) {
	for i := range segs {
		seg := &segs[i]
		if seg.Kind.IsArc() {
			c.arcTo(seg.Kind, seg.Center, seg.End)
		} else {
			c.lineTo(seg.End)
		}
	}
}

// finish retracts the tool and returns the collected segments.
func (c *cutter) finish() []Segment {
	c.retract()
	return c.segs
}

// travel brings the tool to p at cutting depth.
func (c *cutter) travel(p vec.Vec2, link bool) {
	if c.inCut && near(c.pos, p) {
		return
	}
	if c.inCut && link && c.linkClear(c.pos, p) {
		c.cut(p)
		return
	}
	c.enter(p)
}

// enter retracts, traverses and ramps or plunges into the material at p.
func (c *cutter) enter(p vec.Vec2) {
	start, ramp := c.entryMoves(p)

	c.retract()
	if !c.placed {
		c.pos, c.posZ, c.placed = start, c.op.SafeHeight, true
	} else {
		c.rapid(start, c.op.SafeHeight)
	}
	if c.top < c.posZ {
		c.rapid(start, c.top)
	}
	for _, seg := range ramp {
		c.add(seg)
	}
	c.inCut = true
}

// entryMoves returns the ramp into the material at p. The helical ramp is
// used only where the helix keeps the tool clear of the walls and islands;
// otherwise the tool plunges straight down.
func (c *cutter) entryMoves(p vec.Vec2) (vec.Vec2, []Segment) {
	if c.op.RampAngle > 0 {
		helix := c.op.ToolDiameter / 4
		ok := circleClear(p, helix, c.islands, c.op.toolRadius())
		if ok && c.boundary != nil {
			ok = contains(c.boundary, p) &&
				boundaryDistance(c.boundary, p) >= helix+c.op.toolRadius()-pointTolerance
		}
		if ok {
			return HelicalRamp(p, c.top, c.z, c.op)
		}
	}

	op := *c.op
	op.RampAngle = 0
	return HelicalRamp(p, c.top, c.z, &op)
}

// linkClear reports whether the tool can cut straight from a to b.
func (c *cutter) linkClear(a, b vec.Vec2) bool {
	pieces := clipIslands(a, b, c.islands, c.op.toolRadius())
	if len(pieces) != 1 || pieces[0].a != a || pieces[0].b != b {
		return false
	}
	if c.boundary != nil {
		if !contains(c.boundary, a.Add(b).Mul(0.5)) || crossesBoundary(c.boundary, a, b) {
			return false
		}
	}
	return true
}

func (c *cutter) cut(p vec.Vec2) {
	if near(c.pos, p) {
		return
	}
	c.add(Segment{
		Kind:    LinearMove,
		Start:   c.pos,
		End:     p,
		StartZ:  c.z,
		EndZ:    c.z,
		Feed:    c.op.FeedRate,
		Spindle: c.op.SpindleSpeed,
	})
}

func (c *cutter) rapid(p vec.Vec2, z float64) {
	if near(c.pos, p) && c.posZ == z {
		return
	}
	c.add(Segment{
		Kind:    RapidMove,
		Start:   c.pos,
		End:     p,
		StartZ:  c.posZ,
		EndZ:    z,
		Feed:    c.op.RapidFeedRate,
		Spindle: c.op.SpindleSpeed,
	})
}

func (c *cutter) retract() {
	if c.placed && c.posZ < c.op.SafeHeight {
		c.rapid(c.pos, c.op.SafeHeight)
	}
	c.inCut = false
}

func (c *cutter) add(seg Segment) {
	c.segs = append(c.segs, seg)
	c.pos, c.posZ = seg.End, seg.EndZ
}
