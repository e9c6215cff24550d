package report

import (
	"math"

	friction "github.com/kilickursat/shield-fric/internal/calc/friction"

	"github.com/phpdave11/gofpdf"
)

// drawDiagram renders the primitive list into a fixed box on the current page.
// Diagram coordinates are meters with y up; the page has y down, so the
// vertical axis is flipped during projection.
func drawDiagram(pdf *gofpdf.Fpdf, prims []friction.Primitive) {
	const (
		boxX = 15.0
		boxW = 180.0
		boxH = 120.0
	)
	boxY := pdf.GetY()

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range prims {
		for _, pt := range [][2]float64{
			{p.Origin.X, p.Origin.Y},
			{p.Origin.X + p.Vector.X, p.Origin.Y + p.Vector.Y},
		} {
			minX = math.Min(minX, pt[0])
			maxX = math.Max(maxX, pt[0])
			minY = math.Min(minY, pt[1])
			maxY = math.Max(maxY, pt[1])
		}
	}
	if maxX <= minX || maxY <= minY {
		return
	}
	scale := math.Min(boxW/(maxX-minX), boxH/(maxY-minY))

	px := func(x float64) float64 { return boxX + (x-minX)*scale }
	py := func(y float64) float64 { return boxY + (maxY-y)*scale }

	pdf.SetFont("Helvetica", "", 7)
	for _, p := range prims {
		x0, y0 := px(p.Origin.X), py(p.Origin.Y)
		x1, y1 := px(p.Origin.X+p.Vector.X), py(p.Origin.Y+p.Vector.Y)

		switch p.Shape {
		case "rect":
			pdf.SetDrawColor(60, 60, 60)
			pdf.Rect(math.Min(x0, x1), math.Min(y0, y1), math.Abs(x1-x0), math.Abs(y1-y0), "D")
		case "line":
			pdf.SetDrawColor(120, 120, 120)
			pdf.Line(x0, y0, x1, y1)
		case "arrow":
			pdf.SetDrawColor(200, 0, 0)
			pdf.Line(x0, y0, x1, y1)
			drawArrowHead(pdf, x0, y0, x1, y1)
		}
		if p.Label != "" {
			pdf.SetTextColor(0, 0, 0)
			pdf.Text(x0+1, y0-1, p.Label)
		}
	}
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetY(boxY + boxH + 5)
}

func drawArrowHead(pdf *gofpdf.Fpdf, x0, y0, x1, y1 float64) {
	if x0 == x1 && y0 == y1 {
		return
	}
	const headLen = 2.5
	angle := math.Atan2(y1-y0, x1-x0)
	for _, da := range []float64{math.Pi * 5 / 6, -math.Pi * 5 / 6} {
		pdf.Line(x1, y1, x1+headLen*math.Cos(angle+da), y1+headLen*math.Sin(angle+da))
	}
}
