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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// SegmentKind identifies the type of motion a Segment describes.
type SegmentKind int

const (
	// RapidMove is a non-cutting positioning move at rapid feed.
	RapidMove SegmentKind = iota

	// LinearMove is a straight cutting move.
	LinearMove

	// ArcCW is a clockwise circular cutting move around Segment.Center.
	ArcCW

	// ArcCCW is a counter-clockwise circular cutting move around
	// Segment.Center.
	ArcCCW
)

func (k SegmentKind) String() string {
	switch k {
	case RapidMove:
		return "rapid"
	case LinearMove:
		return "linear"
	case ArcCW:
		return "arc_cw"
	case ArcCCW:
		return "arc_ccw"
	default:
		return "unknown"
	}
}

// IsArc reports whether k is one of the arc kinds.
func (k SegmentKind) IsArc() bool {
	return k == ArcCW || k == ArcCCW
}

// Segment is a single motion of the tool centre.
//
// Z is always resolved: a move at constant depth has StartZ == EndZ.
type Segment struct {
	Kind       SegmentKind
	Start, End vec.Vec2
	Center     vec.Vec2 // arc centre, only meaningful for ArcCW and ArcCCW

	StartZ, EndZ float64

	Feed    float64 // feed rate in units per minute
	Spindle float64 // spindle speed in RPM
}

// Length returns the 3D length of the motion.
func (s *Segment) Length() float64 {
	dz := s.EndZ - s.StartZ
	var xy float64
	if s.Kind.IsArc() {
		xy = s.arcRadius() * math.Abs(s.sweep())
	} else {
		xy = s.End.Sub(s.Start).Length()
	}
	return math.Hypot(xy, dz)
}

func (s *Segment) arcRadius() float64 {
	return s.Start.Sub(s.Center).Length()
}

// sweep returns the signed angle swept by an arc segment, positive for
// counter-clockwise motion. Coincident start and end points denote a full
// circle.
func (s *Segment) sweep() float64 {
	a0 := math.Atan2(s.Start.Y-s.Center.Y, s.Start.X-s.Center.X)
	a1 := math.Atan2(s.End.Y-s.Center.Y, s.End.X-s.Center.X)
	d := a1 - a0
	if s.Kind == ArcCCW {
		for d <= 0 {
			d += 2 * math.Pi
		}
	} else {
		for d >= 0 {
			d -= 2 * math.Pi
		}
	}
	return d
}

// Role distinguishes the toolpaths produced for one Z pass.
type Role int

const (
	// RoleClearing is the main output of the selected strategy.
	RoleClearing Role = iota

	// RoleVoidSweep is the raster sweep emitted ahead of ring based
	// strategies to catch material left between rings.
	RoleVoidSweep
)

func (r Role) String() string {
	switch r {
	case RoleClearing:
		return "clearing"
	case RoleVoidSweep:
		return "void_sweep"
	default:
		return "unknown"
	}
}

// Toolpath is the motion for one Z pass.
//
// Every segment starts where the previous one ended. Cutting moves never
// rise in Z; only rapid moves return the tool to the safe height.
type Toolpath struct {
	Role     Role
	Z        float64 // cutting depth of this pass
	Segments []Segment
}

// Empty reports whether the toolpath contains no cutting moves.
func (tp *Toolpath) Empty() bool {
	for i := range tp.Segments {
		if tp.Segments[i].Kind != RapidMove {
			return false
		}
	}
	return true
}

// Length returns the total travel distance, including rapids.
func (tp *Toolpath) Length() float64 {
	total := 0.0
	for i := range tp.Segments {
		total += tp.Segments[i].Length()
	}
	return total
}

// CycleTime estimates the machining time in seconds from the segment
// lengths and feed rates. Segments without a feed rate are not counted.
func (tp *Toolpath) CycleTime() float64 {
	t := 0.0
	for i := range tp.Segments {
		seg := &tp.Segments[i]
		if seg.Feed <= 0 {
			continue
		}
		t += 60 * seg.Length() / seg.Feed
	}
	return t
}

// Path returns the XY projection of the cutting moves. Rapid moves start a
// new subpath; arcs are approximated by straight lines.
func (tp *Toolpath) Path() *path.Data {
	p := &path.Data{}
	var pen vec.Vec2
	open := false
	for i := range tp.Segments {
		seg := &tp.Segments[i]
		if seg.Kind == RapidMove {
			open = false
			continue
		}
		if !open || !near(pen, seg.Start) {
			p = p.MoveTo(seg.Start)
			open = true
		}
		if seg.Kind.IsArc() {
			for _, pt := range arcPoints(seg, previewArcSteps)[1:] {
				p = p.LineTo(pt)
			}
		} else {
			p = p.LineTo(seg.End)
		}
		pen = seg.End
	}
	return p
}

// Bounds returns the XY bounding box of all segment end points and arc
// centres. The result is the zero rectangle for an empty toolpath.
func (tp *Toolpath) Bounds() rect.Rect {
	var pts []vec.Vec2
	for i := range tp.Segments {
		seg := &tp.Segments[i]
		pts = append(pts, seg.Start, seg.End)
		if seg.Kind.IsArc() {
			r := seg.arcRadius()
			pts = append(pts,
				seg.Center.Add(vec.Vec2{X: r, Y: r}),
				seg.Center.Sub(vec.Vec2{X: r, Y: r}))
		}
	}
	return bounds(pts)
}

// arcPoints samples an arc segment at n+1 evenly spaced points, including
// both end points.
func arcPoints(seg *Segment, n int) []vec.Vec2 {
	r := seg.arcRadius()
	a0 := math.Atan2(seg.Start.Y-seg.Center.Y, seg.Start.X-seg.Center.X)
	sweep := seg.sweep()
	pts := make([]vec.Vec2, 0, n+1)
	pts = append(pts, seg.Start)
	for i := 1; i < n; i++ {
		a := a0 + sweep*float64(i)/float64(n)
		pts = append(pts, seg.Center.Add(vec.Vec2{X: r * math.Cos(a), Y: r * math.Sin(a)}))
	}
	return append(pts, seg.End)
}

// near reports whether two points coincide within pointTolerance.
func near(a, b vec.Vec2) bool {
	return a.Sub(b).Length() <= pointTolerance
}
