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

// Command genpdf plots the toolpaths of all test cases into PDF files.
//
// Each plot shows the pocket outline, the islands, the area swept by the
// tool (light grey), the path of the tool centre (black) and the rapid
// moves (dashed).
package main

import (
	"flag"
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pocket"
	"seehuhn.de/go/pocket/testcases"
)

// scale is the number of PDF points per unit of length.
const scale = 4

func main() {
	outDir := flag.String("o", "testdata/plots", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")

			toolpaths, err := pocket.GenerateExample(tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePDF(tc, toolpaths, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, toolpaths []pocket.Toolpath, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: tc.Width * scale,
		URy: tc.Height * scale,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.Transform(matrix.Scale(scale, scale))

	// pocket area
	page.SetFillColor(color.DeviceGray(0.9))
	drawShape(page, tc.Shape)
	page.Fill()

	// islands
	page.SetFillColor(color.DeviceGray(0.6))
	for _, is := range tc.Islands {
		drawCircle(page, is.Center.X, is.Center.Y, is.Radius)
		page.Fill()
	}

	op := pocket.ExampleOperation(tc)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	// swept area
	page.SetStrokeColor(color.DeviceGray(0.75))
	page.SetLineWidth(op.ToolDiameter)
	for i := range toolpaths {
		drawPath(page, toolpaths[i].Path())
		page.Stroke()
	}

	// tool centre
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.15)
	for i := range toolpaths {
		drawPath(page, toolpaths[i].Path())
		page.Stroke()
	}

	// rapid moves
	page.SetStrokeColor(color.DeviceGray(0.4))
	page.SetLineDash([]float64{0.5, 0.5}, 0)
	for i := range toolpaths {
		for _, seg := range toolpaths[i].Segments {
			if seg.Kind != pocket.RapidMove || seg.Start == seg.End {
				continue
			}
			page.MoveTo(seg.Start.X, seg.Start.Y)
			page.LineTo(seg.End.X, seg.End.Y)
		}
		page.Stroke()
	}

	return page.Close()
}

func drawShape(page *document.Page, shape testcases.Shape) {
	switch s := shape.(type) {
	case testcases.Rectangle:
		page.Rectangle(s.Center.X-s.Width/2, s.Center.Y-s.Height/2, s.Width, s.Height)
	case testcases.Circle:
		drawCircle(page, s.Center.X, s.Center.Y, s.Radius)
	case testcases.Outline:
		if s.Path != nil {
			drawPath(page, s.Path)
		}
	}
}

// drawPath adds a path to the page - convert quadratic to cubic (PDF
// doesn't support quadratic).
func drawPath(page *document.Page, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// drawCircle adds a circle made of four cubic Bezier curves.
func drawCircle(page *document.Page, cx, cy, r float64) {
	const kappa = 4 * (math.Sqrt2 - 1) / 3
	k := r * kappa
	page.MoveTo(cx+r, cy)
	page.CurveTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	page.CurveTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	page.CurveTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	page.CurveTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	page.ClosePath()
}
