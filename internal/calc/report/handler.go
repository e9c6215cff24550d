package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	friction "github.com/kilickursat/shield-fric/internal/calc/friction"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string         `json:"project"`
	Author  string         `json:"author"`
	Title   string         `json:"title"`
	Notes   string         `json:"notes"`
	Calc    friction.Input `json:"calc"`
}

type Handler struct{}

// Generate computes the shield friction case and renders a PDF datasheet with
// parameter and result tables plus the force diagram.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "TBM Shield Friction Report"
	}

	res, err := friction.Calculate(input.Calc)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, friction.ErrGeometry) || errors.Is(err, friction.ErrFrictionAngle) ||
			errors.Is(err, friction.ErrTheory) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	writeTable(pdf, "Input Parameters", inputRows(input.Calc))
	writeTable(pdf, "Results", resultRows(res))

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Force Diagram")
	pdf.Ln(10)
	drawDiagram(pdf, friction.Diagram(input.Calc, res))

	if input.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"shield-friction-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

type row struct {
	name  string
	value string
}

func writeTable(pdf *gofpdf.Fpdf, title string, rows []row) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.CellFormat(80, 6, r.name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, r.value, "1", 0, "R", false, 0, "")
		pdf.Ln(6)
	}
	pdf.Ln(4)
}

func inputRows(in friction.Input) []row {
	return []row{
		{"Earth Pressure Theory", string(in.Theory)},
		{"Soil Density (kg/m3)", fmt.Sprintf("%.1f", in.Soil.DensityKgM3)},
		{"Cohesion (Pa)", fmt.Sprintf("%.1f", in.Soil.CohesionPa)},
		{"Friction Angle (deg)", fmt.Sprintf("%.1f", in.Soil.FrictionAngleDeg)},
		{"K0", fmt.Sprintf("%.2f", in.Soil.K0)},
		{"Shield Diameter (m)", fmt.Sprintf("%.2f", in.TBM.DiameterM)},
		{"Shield Length (m)", fmt.Sprintf("%.2f", in.TBM.ShieldLengthM)},
		{"TBM Weight (N)", fmt.Sprintf("%.0f", in.TBM.WeightN)},
		{"Face Pressure (Pa)", fmt.Sprintf("%.0f", in.TBM.FacePressurePa)},
		{"Tunnel Depth (m)", fmt.Sprintf("%.1f", in.Site.TunnelDepthM)},
		{"Water Table Depth (m)", fmt.Sprintf("%.1f", in.Site.WaterTableDepthM)},
		{"Friction Coefficient", fmt.Sprintf("%.2f", in.FrictionCoefficient)},
	}
}

func resultRows(res friction.Result) []row {
	return []row{
		{"Vertical Stress (Pa)", fmt.Sprintf("%.2f", res.VerticalStressPa)},
		{"Pore Water Pressure (Pa)", fmt.Sprintf("%.2f", res.PorePressurePa)},
		{"Horizontal Stress (Pa)", fmt.Sprintf("%.2f", res.HorizontalStressPa)},
		{"Effective Stress (Pa)", fmt.Sprintf("%.2f", res.EffectiveStressPa)},
		{"Normal Force on Shield (N)", fmt.Sprintf("%.2f", res.NormalForceN)},
		{"Shield Friction (N)", fmt.Sprintf("%.2f", res.FrictionForceN)},
		{"Total Resistance (N)", fmt.Sprintf("%.2f", res.TotalResistanceN)},
	}
}
