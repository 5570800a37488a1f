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

// Command export writes the toolpaths of all test cases to JSON, for
// inspection and for comparing results between versions.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/pocket"
	"seehuhn.de/go/pocket/testcases"
)

func main() {
	outPath := flag.String("o", "testdata/toolpaths.json", "output file")
	flag.Parse()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			toolpaths, err := pocket.GenerateExample(tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, toJSON(category, tc, toolpaths))
		}
	}

	f, err := os.Create(*outPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string         `json:"name"`
	Tool      float64        `json:"tool_diameter"`
	Stepover  float64        `json:"stepover"`
	CycleTime float64        `json:"cycle_time"`
	Toolpaths []jsonToolpath `json:"toolpaths"`
}

type jsonToolpath struct {
	Role     string        `json:"role"`
	Z        float64       `json:"z"`
	Length   float64       `json:"length"`
	Segments []jsonSegment `json:"segments"`
}

type jsonSegment struct {
	Kind   string     `json:"kind"`
	Start  [3]float64 `json:"start"`
	End    [3]float64 `json:"end"`
	Center []float64  `json:"center,omitempty"`
	Feed   float64    `json:"feed"`
}

func toJSON(category string, tc testcases.TestCase, toolpaths []pocket.Toolpath) jsonTestCase {
	op := pocket.ExampleOperation(tc)
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Tool:     op.ToolDiameter,
		Stepover: op.Stepover,
	}
	for i := range toolpaths {
		tp := &toolpaths[i]
		jtc.CycleTime += tp.CycleTime()
		jtc.Toolpaths = append(jtc.Toolpaths, toolpathToJSON(tp))
	}
	return jtc
}

func toolpathToJSON(tp *pocket.Toolpath) jsonToolpath {
	jtp := jsonToolpath{
		Role:     tp.Role.String(),
		Z:        tp.Z,
		Length:   tp.Length(),
		Segments: make([]jsonSegment, len(tp.Segments)),
	}
	for i, seg := range tp.Segments {
		js := jsonSegment{
			Kind:  seg.Kind.String(),
			Start: [3]float64{seg.Start.X, seg.Start.Y, seg.StartZ},
			End:   [3]float64{seg.End.X, seg.End.Y, seg.EndZ},
			Feed:  seg.Feed,
		}
		if seg.Kind.IsArc() {
			js.Center = []float64{seg.Center.X, seg.Center.Y}
		}
		jtp.Segments[i] = js
	}
	return jtp
}
