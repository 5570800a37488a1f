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

// HelicalRamp builds the entry moves which take the tool from startZ down to
// endZ, arriving at target. It returns the point where the tool must be
// positioned at startZ before the first segment, and the segments.
//
// The helix has radius ToolDiameter/4 around target and descends at
// op.RampAngle degrees, in whole counter-clockwise revolutions of four
// quarter arcs each. The last segment moves from the helix onto target at
// endZ. If the descent per revolution would be negligible (shallow angle
// or tiny tool) a straight plunge at target is returned instead.
func HelicalRamp(target vec.Vec2, startZ, endZ float64, op *Operation) (vec.Vec2, []Segment) {
	if startZ <= endZ {
		return target, nil
	}

	feed := op.plungeFeed()
	radius := op.ToolDiameter / 4
	drop := 2 * math.Pi * radius * math.Tan(op.RampAngle*math.Pi/180)
	if !(drop >= minHelixDrop) {
		return target, []Segment{{
			Kind:    LinearMove,
			Start:   target,
			End:     target,
			StartZ:  startZ,
			EndZ:    endZ,
			Feed:    feed,
			Spindle: op.SpindleSpeed,
		}}
	}

	total := startZ - endZ
	revs := int(math.Ceil(total / drop))
	drop = total / float64(revs)

	onCircle := func(q int) vec.Vec2 {
		a := float64(q%4) * math.Pi / 2
		return target.Add(vec.Vec2{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
	}

	start := onCircle(0)
	segs := make([]Segment, 0, 4*revs+1)
	z := startZ
	for k := range revs {
		for q := range 4 {
			nextZ := startZ - drop*(float64(k)+float64(q+1)/4)
			if k == revs-1 && q == 3 {
				nextZ = endZ
			}
			segs = append(segs, Segment{
				Kind:    ArcCCW,
				Start:   onCircle(q),
				End:     onCircle(q + 1),
				Center:  target,
				StartZ:  z,
				EndZ:    nextZ,
				Feed:    feed,
				Spindle: op.SpindleSpeed,
			})
			z = nextZ
		}
	}
	segs = append(segs, Segment{
		Kind:    LinearMove,
		Start:   start,
		End:     target,
		StartZ:  endZ,
		EndZ:    endZ,
		Feed:    feed,
		Spindle: op.SpindleSpeed,
	})
	return start, segs
}

// minHelixDrop is the smallest useful descent per helix revolution.
const minHelixDrop = 0.001
