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

// Island is a circular region inside a pocket which must not be cut.
type Island struct {
	Center vec.Vec2
	Radius float64
}

// Contains reports whether p lies strictly inside the island.
func (is Island) Contains(p vec.Vec2) bool {
	return p.Sub(is.Center).Length() < is.Radius
}

// piece is a part of a straight move.
type piece struct {
	a, b vec.Vec2
}

// clipIslands removes from the segment a-b all points closer than
// island radius plus clearance to an island centre. The remaining pieces
// are returned in order from a to b.
func clipIslands(a, b vec.Vec2, islands []Island, clearance float64) []piece {
	d := b.Sub(a)
	dd := d.Dot(d)

	// kept holds disjoint parameter intervals [t0, t1] along a-b.
	kept := [][2]float64{{0, 1}}
	for _, is := range islands {
		r := is.Radius + clearance
		if r <= 0 {
			continue
		}
		f := a.Sub(is.Center)
		if dd < chordTolerance*chordTolerance {
			if f.Length() < r {
				return nil
			}
			continue
		}

		// |f + t·d|² = r²
		bq := 2 * f.Dot(d)
		cq := f.Dot(f) - r*r
		disc := bq*bq - 4*dd*cq
		if disc <= 0 {
			continue
		}
		sq := math.Sqrt(disc)
		t0 := (-bq - sq) / (2 * dd)
		t1 := (-bq + sq) / (2 * dd)
		if t1 <= 0 || t0 >= 1 {
			continue
		}

		var next [][2]float64
		for _, iv := range kept {
			if iv[0] < t0 {
				next = append(next, [2]float64{iv[0], min(iv[1], t0)})
			}
			if iv[1] > t1 {
				next = append(next, [2]float64{max(iv[0], t1), iv[1]})
			}
		}
		kept = next
	}

	res := make([]piece, 0, len(kept))
	for _, iv := range kept {
		if (iv[1]-iv[0])*math.Sqrt(dd) <= pointTolerance {
			continue
		}
		p := piece{a: a, b: b}
		if iv[0] > 0 {
			p.a = a.Add(d.Mul(iv[0]))
		}
		if iv[1] < 1 {
			p.b = a.Add(d.Mul(iv[1]))
		}
		res = append(res, p)
	}
	return res
}

// circleClear reports whether a circle of radius r around center keeps at
// least clearance away from every island.
func circleClear(center vec.Vec2, r float64, islands []Island, clearance float64) bool {
	for _, is := range islands {
		if center.Sub(is.Center).Length() < r+is.Radius+clearance {
			return false
		}
	}
	return true
}
