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

// CenterCleanup returns a small pattern at depth z which makes sure that
// center itself is machined: a cross through center with arms of length
// max(toolDiameter/2, 0.25), followed by a counter-clockwise circle of the
// same radius. The pattern starts at center and ends on the circle, east
// of center.
//
// Offset rings of a pocket tend to vanish before they reach the middle;
// this pattern removes what they leave behind.
func CenterCleanup(center vec.Vec2, toolDiameter, z, feed, spindle float64) []Segment {
	r := max(toolDiameter/2, minCleanupRadius)

	east := center.Add(vec.Vec2{X: r})
	west := center.Add(vec.Vec2{X: -r})
	north := center.Add(vec.Vec2{Y: r})
	south := center.Add(vec.Vec2{Y: -r})

	cross := []vec.Vec2{center, east, west, center, north, south, center, east}
	segs := make([]Segment, 0, len(cross)+3)
	for i := 1; i < len(cross); i++ {
		segs = append(segs, Segment{
			Kind:    LinearMove,
			Start:   cross[i-1],
			End:     cross[i],
			StartZ:  z,
			EndZ:    z,
			Feed:    feed,
			Spindle: spindle,
		})
	}

	loop := []vec.Vec2{east, north, west, south, east}
	for i := 1; i < len(loop); i++ {
		segs = append(segs, Segment{
			Kind:    ArcCCW,
			Start:   loop[i-1],
			End:     loop[i],
			Center:  center,
			StartZ:  z,
			EndZ:    z,
			Feed:    feed,
			Spindle: spindle,
		})
	}
	return segs
}

const minCleanupRadius = 0.25
