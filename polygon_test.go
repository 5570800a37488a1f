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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestPrepare(t *testing.T) {
	square := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	cases := []struct {
		name string
		in   []vec.Vec2
		n    int // expected number of vertices, 0 for nil
	}{
		{"ccw_square", square, 4},
		{"cw_square", []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}, 4},
		{"closed", append(square[:4:4], vec.Vec2{X: 0, Y: 0}), 4},
		{"near_duplicates", []vec.Vec2{
			{X: 0, Y: 0}, {X: 0.001, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10},
			{X: 10.005, Y: 10}, {X: 0, Y: 10}, {X: 0.002, Y: 0.003},
		}, 4},
		{"two_points", []vec.Vec2{{X: 0, Y: 0}, {X: 5, Y: 5}}, 0},
		{"collinear", []vec.Vec2{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}}, 0},
		{"all_same", []vec.Vec2{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}, 0},
		{"empty", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Prepare(tc.in)
			if tc.n == 0 {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if len(got) != tc.n {
				t.Fatalf("expected %d vertices, got %d: %v", tc.n, len(got), got)
			}
			if a := SignedArea(got); a >= 0 {
				t.Errorf("prepared boundary is not clockwise: area %g", a)
			}
			for i := range got {
				j := (i + 1) % len(got)
				if got[i].Sub(got[j]).Length() < vertexTolerance {
					t.Errorf("vertices %d and %d coincide", i, j)
				}
			}
		})
	}
}

func TestSignedArea(t *testing.T) {
	ccw := RectanglePolygon(vec.Vec2{X: 5, Y: 5}, 4, 2)
	if a := SignedArea(ccw); math.Abs(a-8) > 1e-12 {
		t.Errorf("expected area 8, got %g", a)
	}
	cw := Prepare(ccw)
	if a := SignedArea(cw); math.Abs(a+8) > 1e-12 {
		t.Errorf("expected area -8, got %g", a)
	}
}

func TestCentroid(t *testing.T) {
	center := vec.Vec2{X: 3, Y: -7}

	cases := []struct {
		name string
		pts  []vec.Vec2
		want vec.Vec2
	}{
		{"rectangle", RectanglePolygon(center, 6, 2), center},
		{"circle", CirclePolygon(center, 5, 36), center},
		{"closed", append(RectanglePolygon(center, 2, 2), RectanglePolygon(center, 2, 2)[0]), center},
		{"triangle", []vec.Vec2{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 0, Y: 3}}, vec.Vec2{X: 2, Y: 1}},
		{"degenerate", []vec.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0}}, vec.Vec2{X: 2, Y: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Centroid(tc.pts)
			if got.Sub(tc.want).Length() > 1e-9 {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestContains(t *testing.T) {
	// L-shape, missing the upper right quarter
	poly := []vec.Vec2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5},
		{X: 5, Y: 5}, {X: 5, Y: 10}, {X: 0, Y: 10},
	}

	cases := []struct {
		p    vec.Vec2
		want bool
	}{
		{vec.Vec2{X: 2, Y: 2}, true},
		{vec.Vec2{X: 8, Y: 2}, true},
		{vec.Vec2{X: 2, Y: 8}, true},
		{vec.Vec2{X: 8, Y: 8}, false},
		{vec.Vec2{X: -1, Y: 5}, false},
		{vec.Vec2{X: 5, Y: 11}, false},
	}
	for _, tc := range cases {
		if got := contains(poly, tc.p); got != tc.want {
			t.Errorf("contains(%v) = %t, want %t", tc.p, got, tc.want)
		}
	}

	if !crossesBoundary(poly, vec.Vec2{X: 8, Y: 2}, vec.Vec2{X: 2, Y: 8}) {
		t.Error("diagonal through the notch should cross the boundary")
	}
	if crossesBoundary(poly, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 4, Y: 9}) {
		t.Error("segment inside the left leg should not cross the boundary")
	}
	if d := boundaryDistance(poly, vec.Vec2{X: 2, Y: 2}); math.Abs(d-2) > 1e-12 {
		t.Errorf("expected boundary distance 2, got %g", d)
	}
}

func TestPathBoundaries(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 10}).
		Close().
		MoveTo(vec.Vec2{X: 20, Y: 0}).
		LineTo(vec.Vec2{X: 30, Y: 0}).
		MoveTo(vec.Vec2{X: 40, Y: 0}).
		CubeTo(vec.Vec2{X: 40, Y: 10}, vec.Vec2{X: 50, Y: 10}, vec.Vec2{X: 50, Y: 0}).
		Close()

	res := PathBoundaries(p.Iter())
	if len(res) != 2 {
		t.Fatalf("expected 2 boundaries, got %d", len(res))
	}
	if len(res[0]) != 3 {
		t.Errorf("expected 3 vertices for the triangle, got %d", len(res[0]))
	}
	if len(res[1]) != 1+curveSteps {
		t.Errorf("expected %d vertices for the curve, got %d", 1+curveSteps, len(res[1]))
	}
	last := res[1][len(res[1])-1]
	if !near(last, vec.Vec2{X: 50, Y: 0}) {
		t.Errorf("flattened curve ends at %v", last)
	}
	if Prepare(res[1]) == nil {
		t.Error("flattened curve should enclose an area")
	}
}
