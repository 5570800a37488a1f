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
	"errors"
	"fmt"
	"math"
	"slices"

	clipper "github.com/ctessum/go.clipper"
	"seehuhn.de/go/geom/vec"
)

// ErrOffsetFailed is reported when the offset kernel aborts.
var ErrOffsetFailed = errors.New("polygon offset failed")

// Vertex is a ring vertex. A non-zero Bulge marks the edge to the next
// vertex as a circular arc; the bulge is the tangent of a quarter of the
// included angle, positive for counter-clockwise arcs.
type Vertex struct {
	Pt    vec.Vec2
	Bulge float64
}

// Ring is a closed offset contour. The edge from the last vertex back to
// the first is implied.
type Ring []Vertex

// Points returns the vertices of the ring with arcs subdivided, closed by
// repeating the first point at the end.
func (r Ring) Points() []vec.Vec2 {
	n := len(r)
	if n == 0 {
		return nil
	}
	pts := make([]vec.Vec2, 0, n+1)
	pts = append(pts, r[0].Pt)
	for i := range n {
		pts = appendEdge(pts, r[i].Pt, r[(i+1)%n].Pt, r[i].Bulge)
	}
	return pts
}

// Reversed returns the ring traversed in the opposite direction.
func (r Ring) Reversed() Ring {
	n := len(r)
	res := make(Ring, n)
	for i := range n {
		// The edge from r[i] to r[i+1] becomes the edge from r[i+1] to r[i],
		// so its bulge moves to the new owner and changes sign.
		res[n-1-i] = Vertex{Pt: r[i].Pt, Bulge: -r[(i+n-1)%n].Bulge}
	}
	return res
}

// area returns the signed area of the ring with arcs subdivided.
func (r Ring) area() float64 {
	pts := r.Points()
	if len(pts) > 0 {
		pts = pts[:len(pts)-1]
	}
	return SignedArea(pts)
}

// oriented returns the ring with counter-clockwise orientation if ccw is
// set, clockwise otherwise.
func (r Ring) oriented(ccw bool) Ring {
	if (r.area() > 0) != ccw {
		return r.Reversed()
	}
	return r
}

// Offsetter is a polygon offset kernel. Offset grows the boundary by delta
// (shrinks it for negative delta) and returns the resulting contours.
// Implementations may panic on degenerate input; callers isolate such
// failures.
type Offsetter interface {
	Offset(boundary []vec.Vec2, delta float64) ([]Ring, error)
}

// ClipperOffsetter offsets polygons using the Clipper library.
// Coordinates are converted to integers by multiplying with Scale.
type ClipperOffsetter struct {
	// Scale is the number of integer units per unit of length.
	Scale float64

	// ArcTolerance is the maximum deviation of round joins from the true
	// arc, in units of length.
	ArcTolerance float64
}

// NewClipperOffsetter returns a kernel with micrometre resolution for
// millimetre coordinates.
func NewClipperOffsetter() *ClipperOffsetter {
	return &ClipperOffsetter{
		Scale:        defaultClipperScale,
		ArcTolerance: defaultArcTolerance,
	}
}

// Offset implements the Offsetter interface.
func (c *ClipperOffsetter) Offset(boundary []vec.Vec2, delta float64) ([]Ring, error) {
	if len(boundary) < 3 {
		return nil, nil
	}

	src := make(clipper.Path, len(boundary))
	for i, p := range boundary {
		src[i] = &clipper.IntPoint{
			X: clipper.CInt(math.Round(p.X * c.Scale)),
			Y: clipper.CInt(math.Round(p.Y * c.Scale)),
		}
	}

	co := clipper.NewClipperOffset()
	co.ArcTolerance = c.ArcTolerance * c.Scale
	co.AddPath(src, clipper.JtRound, clipper.EtClosedPolygon)
	solution := co.Execute(delta * c.Scale)

	rings := make([]Ring, 0, len(solution))
	for _, poly := range solution {
		if len(poly) < 3 {
			continue
		}
		ring := make(Ring, len(poly))
		for i, ip := range poly {
			ring[i] = Vertex{Pt: vec.Vec2{
				X: float64(ip.X) / c.Scale,
				Y: float64(ip.Y) / c.Scale,
			}}
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

// safeOffset calls the kernel and converts a panic into ErrOffsetFailed.
func safeOffset(k Offsetter, boundary []vec.Vec2, delta float64) (rings []Ring, err error) {
	defer func() {
		if r := recover(); r != nil {
			rings = nil
			err = fmt.Errorf("%w at delta %g: %v", ErrOffsetFailed, delta, r)
		}
	}()
	return k.Offset(boundary, delta)
}

// offsetLevels shrinks the prepared boundary in steps of stepover, starting
// at toolRadius, and returns the rings found at each distance, outermost
// first.
//
// The loop stops at the first distance without rings. If bounded is set it
// also stops once the distance exceeds half the smaller side of the
// boundary's bounding box. A failing kernel call counts as a distance
// without rings.
func offsetLevels(k Offsetter, boundary []vec.Vec2, toolRadius, stepover float64, bounded bool) [][]Ring {
	if len(boundary) < 3 || !(stepover > 0) {
		return nil
	}

	bb := bounds(boundary)
	limit := min(bb.URx-bb.LLx, bb.URy-bb.LLy) / 2

	var levels [][]Ring
	offset := toolRadius
	for iter := 0; iter < maxOffsetIterations; iter++ {
		if bounded && offset > limit {
			break
		}

		rings, err := safeOffset(k, boundary, -offset)
		if err != nil {
			logger().Warn("offset kernel failed", "offset", offset, "error", err)
			rings = nil
		}
		rings = slices.DeleteFunc(rings, func(r Ring) bool {
			return len(r) < 3 || math.Abs(r.area()) < areaTolerance
		})
		if len(rings) == 0 {
			break
		}

		levels = append(levels, rings)
		offset += stepover
	}
	return levels
}

const (
	defaultClipperScale = 1000
	defaultArcTolerance = 0.005

	// maxOffsetIterations bounds the ring loop for pathological stepovers.
	maxOffsetIterations = 10000
)
