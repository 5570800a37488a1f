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
	"bytes"
	"errors"
	"log/slog"
	"maps"
	"math"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pocket/testcases"
)

func TestAllTestCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				op := ExampleOperation(tc)
				res, err := GenerateExample(tc)
				if err != nil {
					t.Fatal(err)
				}
				if len(res) == 0 {
					if name != "polygon_collinear" {
						t.Fatal("no toolpaths")
					}
					return
				}

				var islands []Island
				for _, is := range tc.Islands {
					islands = append(islands, Island{Center: is.Center, Radius: is.Radius})
				}

				_, ringBased := tc.Strategy.(testcases.Raster)
				ringBased = !ringBased
				passes := op.passes()
				if ringBased && len(res) > 2*len(passes) || !ringBased && len(res) > len(passes) {
					t.Errorf("too many toolpaths: %d for %d passes", len(res), len(passes))
				}

				for i := range res {
					tp := &res[i]
					checkSegments(t, tp.Segments, &op)
					checkIslands(t, tp.Segments, islands, op.toolRadius())
					if tp.Role == RoleVoidSweep && !ringBased {
						t.Errorf("toolpath %d: void sweep for a raster strategy", i)
					}
					for _, seg := range tp.Segments {
						if seg.Kind != RapidMove && seg.EndZ < tp.Z-1e-9 {
							t.Errorf("toolpath %d cuts below its pass depth", i)
							break
						}
					}
				}
				if last := res[len(res)-1]; last.Role != RoleClearing {
					t.Errorf("last toolpath is a %s", last.Role)
				}
			})
		}
	}
}

func TestRectangleContour(t *testing.T) {
	op := DefaultOperation()
	op.ToolDiameter = 6
	op.Stepover = 3
	op.Depth = 5
	op.StepDown = 0
	op.RampAngle = 0
	op.Strategy = ContourParallel{}
	center := vec.Vec2{X: 50, Y: 50}

	loops := RectangleLoops(center, 100, 100, op.toolRadius(), op.Stepover)
	if len(loops) != 16 {
		t.Fatalf("expected 16 loops, got %d", len(loops))
	}
	for i, loop := range loops {
		if len(loop) != 5 {
			t.Errorf("loop %d has %d points", i, len(loop))
		}
		if loop[0] != loop[len(loop)-1] {
			t.Errorf("loop %d is not closed", i)
		}
	}

	g := NewGenerator(op)
	res, err := g.RectangularPocket(center, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 {
		t.Fatalf("expected 2 toolpaths, got %d", len(res))
	}
	if res[0].Role != RoleVoidSweep || res[1].Role != RoleClearing {
		t.Errorf("unexpected roles %s, %s", res[0].Role, res[1].Role)
	}
	clearing := res[1]
	if clearing.Z != -5 {
		t.Errorf("expected the pass at z=-5, got %g", clearing.Z)
	}
	checkSegments(t, clearing.Segments, &op)

	if n := countEntries(clearing.Segments); n != 16 {
		t.Errorf("expected 16 ring entries, got %d", n)
	}
	for i, loop := range loops {
		for _, p := range loop {
			if !slices.ContainsFunc(clearing.Segments, func(seg Segment) bool {
				return seg.Kind == LinearMove && near(seg.End, p) && seg.EndZ == -5
			}) {
				t.Errorf("loop %d: corner %v is not visited", i, p)
			}
		}
	}
}

func TestCircleLoops(t *testing.T) {
	center := vec.Vec2{X: 30, Y: 30}
	loops := CircleLoops(center, 25, 3, 3)
	if len(loops) != 8 {
		t.Fatalf("expected 8 loops, got %d", len(loops))
	}
	for i, loop := range loops {
		if len(loop) != circleLoopSides+1 || loop[0] != loop[len(loop)-1] {
			t.Errorf("loop %d is not a closed %d-gon", i, circleLoopSides)
		}
		want := 22 - 3*float64(i)
		if d := loop[0].Sub(center).Length(); math.Abs(d-want) > 1e-9 {
			t.Errorf("loop %d has radius %g, expected %g", i, d, want)
		}
	}
}

func TestPassDepths(t *testing.T) {
	cases := []struct {
		name     string
		depth    float64
		stepDown float64
		want     []float64
	}{
		{"three_passes", 5, 2, []float64{-2, -4, -5}},
		{"exact", 4, 2, []float64{-2, -4}},
		{"single", 3, 0, []float64{-3}},
		{"large_step", 3, 10, []float64{-3}},
		{"no_depth", 0, 1, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			op := DefaultOperation()
			op.Depth = tc.depth
			op.StepDown = tc.stepDown
			op.Strategy = Raster{Bidirectional: true}

			res, err := NewGenerator(op).RectangularPocket(vec.Vec2{}, 30, 20)
			if err != nil {
				t.Fatal(err)
			}
			var got []float64
			top := op.StartDepth
			for _, tp := range res {
				got = append(got, tp.Z)
				for _, seg := range tp.Segments {
					if seg.Kind != RapidMove && seg.StartZ > top+1e-9 {
						t.Errorf("pass at z=%g cuts above %g", tp.Z, top)
						break
					}
				}
				top = tp.Z
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("expected passes %v, got %v", tc.want, got)
			}
		})
	}
}

func TestVoidSweepOrder(t *testing.T) {
	for _, strategy := range []Strategy{ContourParallel{}, Adaptive{}} {
		op := DefaultOperation()
		op.Depth = 4
		op.StepDown = 2
		op.Strategy = strategy

		res, err := NewGenerator(op).PolygonPocket(CirclePolygon(vec.Vec2{}, 20, 40))
		if err != nil {
			t.Fatal(err)
		}
		if len(res) != 4 {
			t.Fatalf("%T: expected 4 toolpaths, got %d", strategy, len(res))
		}
		for i, tp := range res {
			want := RoleVoidSweep
			if i%2 == 1 {
				want = RoleClearing
			}
			if tp.Role != want {
				t.Errorf("%T: toolpath %d is a %s", strategy, i, tp.Role)
			}
		}
		if res[1].Z != -2 || res[3].Z != -4 {
			t.Errorf("%T: unexpected pass depths %g, %g", strategy, res[1].Z, res[3].Z)
		}
	}
}

func TestAdaptiveDoubleCleanup(t *testing.T) {
	op := DefaultOperation()
	op.Depth = 1
	op.RampAngle = 0
	op.Strategy = Adaptive{}

	res, err := NewGenerator(op).RectangularPocket(vec.Vec2{X: 20, Y: 20}, 40, 40)
	if err != nil {
		t.Fatal(err)
	}
	clearing := res[len(res)-1]

	arcs := 0
	for _, seg := range clearing.Segments {
		if seg.Kind == ArcCCW && near(seg.Center, vec.Vec2{X: 20, Y: 20}) &&
			math.Abs(seg.arcRadius()-op.toolRadius()) < 1e-6 {
			arcs++
		}
	}
	if arcs != 8 {
		t.Errorf("expected two cleanup circles (8 arcs), got %d arcs", arcs)
	}
}

func TestMillingDirection(t *testing.T) {
	for _, climb := range []bool{true, false} {
		op := DefaultOperation()
		op.Depth = 1
		op.RampAngle = 0
		op.Climb = climb

		res, err := NewGenerator(op).RectangularPocket(vec.Vec2{}, 40, 30)
		if err != nil {
			t.Fatal(err)
		}
		segs := res[len(res)-1].Segments

		// The first ring follows the first plunge.
		start := slices.IndexFunc(segs, func(seg Segment) bool {
			return seg.Kind == LinearMove && seg.StartZ > seg.EndZ
		})
		if start < 0 || start+4 >= len(segs) {
			t.Fatal("first ring not found")
		}
		var ring []vec.Vec2
		for _, seg := range segs[start+1 : start+5] {
			ring = append(ring, seg.Start)
		}
		if ccw := SignedArea(ring) > 0; ccw != climb {
			t.Errorf("climb=%t: ring runs counter-clockwise=%t", climb, ccw)
		}
	}
}

func TestIslandExclusion(t *testing.T) {
	islands := []Island{
		{Center: vec.Vec2{X: 30, Y: 30}, Radius: 6},
		{Center: vec.Vec2{X: 10, Y: 12}, Radius: 2},
	}

	for _, strategy := range []Strategy{Raster{Bidirectional: true}, Raster{Angle: 60}, ContourParallel{}, Adaptive{}} {
		op := DefaultOperation()
		op.Depth = 3
		op.StepDown = 1.5
		op.RampAngle = 4
		op.Strategy = strategy

		g := NewGenerator(op)
		for _, is := range islands {
			g.AddIsland(is)
		}
		res, err := g.PolygonPocket(RectanglePolygon(vec.Vec2{X: 30, Y: 30}, 56, 50))
		if err != nil {
			t.Fatal(err)
		}
		if len(res) == 0 {
			t.Fatalf("%T: no toolpaths", strategy)
		}
		for _, tp := range res {
			checkSegments(t, tp.Segments, &op)
			checkIslands(t, tp.Segments, islands, op.toolRadius())
		}
	}
}

func TestIslandManagement(t *testing.T) {
	g := NewGenerator(DefaultOperation())
	g.AddCircularIsland(vec.Vec2{X: 1, Y: 2}, 3)
	g.AddIsland(Island{Center: vec.Vec2{X: 4, Y: 5}, Radius: 6})

	islands := g.Islands()
	if len(islands) != 2 || islands[0].Radius != 3 || islands[1].Center.X != 4 {
		t.Errorf("unexpected islands %v", islands)
	}
	islands[0].Radius = 100
	if g.Islands()[0].Radius != 3 {
		t.Error("Islands does not return a copy")
	}
	if !islands[1].Contains(vec.Vec2{X: 4, Y: 6}) || islands[1].Contains(vec.Vec2{X: 4, Y: 11}) {
		t.Error("Island.Contains is wrong")
	}

	g.ClearIslands()
	if len(g.Islands()) != 0 {
		t.Error("islands not cleared")
	}
}

func TestInvalidOperation(t *testing.T) {
	cases := []struct {
		name   string
		modify func(op *Operation)
	}{
		{"zero_tool", func(op *Operation) { op.ToolDiameter = 0 }},
		{"negative_stepover", func(op *Operation) { op.Stepover = -1 }},
		{"nan_stepover", func(op *Operation) { op.Stepover = math.NaN() }},
		{"negative_depth", func(op *Operation) { op.Depth = -1 }},
		{"low_safe_height", func(op *Operation) { op.SafeHeight = op.StartDepth }},
		{"zero_fill", func(op *Operation) { op.FillRatio = 0 }},
		{"large_fill", func(op *Operation) { op.FillRatio = 1.5 }},
		{"steep_ramp", func(op *Operation) { op.RampAngle = 90 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			op := DefaultOperation()
			tc.modify(&op)
			g := NewGenerator(op)

			if _, err := g.RectangularPocket(vec.Vec2{}, 10, 10); !errors.Is(err, ErrInvalidOperation) {
				t.Errorf("RectangularPocket: expected ErrInvalidOperation, got %v", err)
			}
			if _, err := g.CircularPocket(vec.Vec2{}, 10); !errors.Is(err, ErrInvalidOperation) {
				t.Errorf("CircularPocket: expected ErrInvalidOperation, got %v", err)
			}
			if _, err := g.PolygonPocket(RectanglePolygon(vec.Vec2{}, 10, 10)); !errors.Is(err, ErrInvalidOperation) {
				t.Errorf("PolygonPocket: expected ErrInvalidOperation, got %v", err)
			}
		})
	}
}

func TestDegenerateInput(t *testing.T) {
	g := NewGenerator(DefaultOperation())

	check := func(name string, res []Toolpath, err error) {
		t.Helper()
		if err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		}
		if len(res) != 0 {
			t.Errorf("%s: expected no toolpaths, got %d", name, len(res))
		}
	}

	res, err := g.RectangularPocket(vec.Vec2{}, 0, 10)
	check("flat rectangle", res, err)
	res, err = g.RectangularPocket(vec.Vec2{}, 4, 4)
	check("rectangle smaller than the tool", res, err)
	res, err = g.CircularPocket(vec.Vec2{}, 0)
	check("zero circle", res, err)
	res, err = g.CircularPocket(vec.Vec2{}, 2)
	check("circle smaller than the tool", res, err)
	res, err = g.PolygonPocket([]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}})
	check("two points", res, err)
	res, err = g.PolygonPocket([]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}})
	check("collinear", res, err)
	res, err = g.PolygonPocket(nil)
	check("nil", res, err)
}

func TestKernelFailureIsLogged(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	op := DefaultOperation()
	op.Depth = 1
	g := NewGenerator(op)
	g.Kernel = panicOffsetter{}

	res, err := g.PolygonPocket(RectanglePolygon(vec.Vec2{}, 30, 30))
	if err != nil {
		t.Fatal(err)
	}
	for _, tp := range res {
		if tp.Role != RoleVoidSweep {
			t.Errorf("unexpected %s toolpath without offset rings", tp.Role)
		}
	}

	out := buf.String()
	if !strings.Contains(out, "offset kernel failed") {
		t.Errorf("kernel failure not logged:\n%s", out)
	}
	if !strings.Contains(out, "pocket generated") {
		t.Errorf("summary not logged:\n%s", out)
	}
}

// checkSegments verifies the continuity and depth invariants of the
// segments of one toolpath.
func checkSegments(t *testing.T, segs []Segment, op *Operation) {
	t.Helper()
	if len(segs) == 0 {
		return
	}

	bottom := op.StartDepth - op.Depth
	if segs[0].StartZ != op.SafeHeight {
		t.Errorf("toolpath starts at z=%g, not at the safe height", segs[0].StartZ)
	}
	if last := segs[len(segs)-1]; last.EndZ != op.SafeHeight {
		t.Errorf("toolpath ends at z=%g, not at the safe height", last.EndZ)
	}

	for i, seg := range segs {
		if i > 0 {
			prev := segs[i-1]
			if !near(prev.End, seg.Start) || prev.EndZ != seg.StartZ {
				t.Errorf("segment %d (%s) does not continue segment %d (%s): %v,%g -> %v,%g",
					i, seg.Kind, i-1, prev.Kind, prev.End, prev.EndZ, seg.Start, seg.StartZ)
				return
			}
		}
		for _, z := range []float64{seg.StartZ, seg.EndZ} {
			if z < bottom-1e-9 || z > op.SafeHeight+1e-9 {
				t.Errorf("segment %d reaches z=%g", i, z)
			}
		}
		if seg.Kind == RapidMove {
			continue
		}
		if seg.EndZ > seg.StartZ+1e-12 {
			t.Errorf("cutting segment %d rises from %g to %g", i, seg.StartZ, seg.EndZ)
		}
		if seg.Feed <= 0 {
			t.Errorf("cutting segment %d has no feed", i)
		}
	}
}

// checkIslands verifies that no cutting move comes closer to an island than
// the island radius plus the tool radius.
func checkIslands(t *testing.T, segs []Segment, islands []Island, toolRadius float64) {
	t.Helper()
	for i := range segs {
		seg := &segs[i]
		if seg.Kind == RapidMove {
			continue
		}
		var pts []vec.Vec2
		if seg.Kind.IsArc() {
			pts = arcPoints(seg, 32)
		} else {
			for k := 0; k <= 16; k++ {
				pts = append(pts, seg.Start.Add(seg.End.Sub(seg.Start).Mul(float64(k)/16)))
			}
		}
		for _, is := range islands {
			for _, p := range pts {
				if d := p.Sub(is.Center).Length(); d < is.Radius+toolRadius-1e-6 {
					t.Errorf("segment %d (%s) comes within %g of island %v", i, seg.Kind, d, is)
					return
				}
			}
		}
	}
}

// countEntries returns the number of times the tool moves into the
// material after a rapid move.
func countEntries(segs []Segment) int {
	n := 0
	for i, seg := range segs {
		if seg.Kind != RapidMove && (i == 0 || segs[i-1].Kind == RapidMove) {
			n++
		}
	}
	return n
}
