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
	"context"
	"fmt"
	"log/slog"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Generator produces pocket clearing toolpaths for one Operation.
//
// A Generator may be reused for several pockets. Generating toolpaths only
// reads the generator state, but islands must not be changed while a
// generation call is running.
type Generator struct {
	// Op holds the machining parameters. It is validated on every call.
	Op Operation

	// Kernel computes polygon offsets. If nil, a ClipperOffsetter with
	// default settings is used.
	Kernel Offsetter

	islands []Island
}

// NewGenerator returns a Generator for the given operation, without islands.
func NewGenerator(op Operation) *Generator {
	return &Generator{Op: op}
}

// AddIsland adds a keep-out region. Tool centre positions closer than the
// island radius plus the tool radius to the island centre are never cut.
func (g *Generator) AddIsland(is Island) {
	g.islands = append(g.islands, is)
}

// AddCircularIsland adds a circular keep-out region.
func (g *Generator) AddCircularIsland(center vec.Vec2, radius float64) {
	g.AddIsland(Island{Center: center, Radius: radius})
}

// ClearIslands removes all islands.
func (g *Generator) ClearIslands() {
	g.islands = nil
}

// Islands returns a copy of the current islands.
func (g *Generator) Islands() []Island {
	return slices.Clone(g.islands)
}

// RectangularPocket clears an axis-aligned rectangle.
//
// The result holds one Toolpath per Z pass, and for the ring based
// strategies an additional void sweep before each of them. An error is
// returned only if the operation is invalid; a rectangle without area
// gives an empty result.
func (g *Generator) RectangularPocket(center vec.Vec2, width, height float64) ([]Toolpath, error) {
	op, err := g.operation()
	if err != nil {
		return nil, err
	}
	boundary := Prepare(RectanglePolygon(center, width, height))
	if boundary == nil {
		return nil, nil
	}

	if _, ok := op.strategy().(ContourParallel); ok {
		loops := RectangleLoops(center, width, height, op.toolRadius(), op.Stepover)
		return g.ringPasses(op, boundary, loopLevels(loops), contourToolpath), nil
	}
	return g.pocket(op, boundary), nil
}

// CircularPocket clears a circle. See RectangularPocket for the layout of
// the result.
func (g *Generator) CircularPocket(center vec.Vec2, radius float64) ([]Toolpath, error) {
	op, err := g.operation()
	if err != nil {
		return nil, err
	}
	if !(radius > 0) {
		return nil, nil
	}

	if _, ok := op.strategy().(ContourParallel); ok {
		boundary := Prepare(CirclePolygon(center, radius, circleLoopSides))
		loops := CircleLoops(center, radius, op.toolRadius(), op.Stepover)
		return g.ringPasses(op, boundary, loopLevels(loops), contourToolpath), nil
	}
	boundary := Prepare(CirclePolygon(center, radius, circlePolygonSides))
	if boundary == nil {
		return nil, nil
	}
	return g.pocket(op, boundary), nil
}

// PolygonPocket clears the inside of a closed polygon. The vertices may be
// given in either orientation, and the last vertex may repeat the first.
// See RectangularPocket for the layout of the result.
func (g *Generator) PolygonPocket(pts []vec.Vec2) ([]Toolpath, error) {
	op, err := g.operation()
	if err != nil {
		return nil, err
	}
	boundary := Prepare(pts)
	if boundary == nil {
		logger().Debug("degenerate pocket boundary", "vertices", len(pts))
		return nil, nil
	}
	return g.pocket(op, boundary), nil
}

// operation returns a validated copy of the generator's operation.
func (g *Generator) operation() (*Operation, error) {
	op := g.Op
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return &op, nil
}

func (g *Generator) kernel() Offsetter {
	if g.Kernel == nil {
		return NewClipperOffsetter()
	}
	return g.Kernel
}

// pocket dispatches a prepared boundary to the selected strategy.
func (g *Generator) pocket(op *Operation, boundary []vec.Vec2) []Toolpath {
	switch s := op.strategy().(type) {
	case Raster:
		var res []Toolpath
		for _, pass := range op.passes() {
			segs := rasterToolpath(boundary, g.islands, s, op, pass)
			res = appendToolpath(res, RoleClearing, pass.z, segs)
		}
		g.logSummary(op, res)
		return res
	case ContourParallel:
		levels := offsetLevels(g.kernel(), boundary, op.toolRadius(), op.Stepover, true)
		return g.ringPasses(op, boundary, levels, contourToolpath)
	case Adaptive:
		levels := offsetLevels(g.kernel(), boundary, op.toolRadius(), op.Stepover, false)
		return g.ringPasses(op, boundary, levels, adaptiveToolpath)
	default:
		panic(fmt.Sprintf("pocket: unknown strategy %T", s))
	}
}

type ringBuilder func(levels [][]Ring, boundary []vec.Vec2, islands []Island, op *Operation, pass zPass) []Segment

// ringPasses emits, for every Z pass, a raster void sweep followed by the
// ring clearing toolpath.
func (g *Generator) ringPasses(op *Operation, boundary []vec.Vec2, levels [][]Ring, build ringBuilder) []Toolpath {
	if boundary == nil {
		return nil
	}

	sweepOp := *op
	sweepOp.FillRatio = 1
	sweep := Raster{Angle: 0, Bidirectional: true}

	logger().Debug("offset levels", "levels", len(levels), "rings", countRings(levels))

	var res []Toolpath
	for _, pass := range op.passes() {
		segs := rasterToolpath(boundary, g.islands, sweep, &sweepOp, pass)
		res = appendToolpath(res, RoleVoidSweep, pass.z, segs)
		segs = build(levels, boundary, g.islands, op, pass)
		res = appendToolpath(res, RoleClearing, pass.z, segs)
	}
	g.logSummary(op, res)
	return res
}

// appendToolpath appends a toolpath unless it contains no cutting moves.
func appendToolpath(res []Toolpath, role Role, z float64, segs []Segment) []Toolpath {
	tp := Toolpath{Role: role, Z: z, Segments: segs}
	if tp.Empty() {
		return res
	}
	return append(res, tp)
}

func (g *Generator) logSummary(op *Operation, res []Toolpath) {
	log := logger()
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	segs := 0
	for i := range res {
		segs += len(res[i].Segments)
	}
	log.Debug("pocket generated",
		"strategy", fmt.Sprintf("%T", op.strategy()),
		"passes", len(op.passes()),
		"islands", len(g.islands),
		"toolpaths", len(res),
		"segments", segs)
}

func countRings(levels [][]Ring) int {
	n := 0
	for _, level := range levels {
		n += len(level)
	}
	return n
}
