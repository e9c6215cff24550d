package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	friction "github.com/kilickursat/shield-fric/internal/calc/friction"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int               `json:"count"`
	Skipped int               `json:"skipped"`
	Results []friction.Result `json:"results"`
}

// Friction imports an xlsx sheet with one calculation case per row. Rows that
// cannot be parsed or computed are counted as skipped.
func (h *Handler) Friction(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	out := ImportResult{}
	for i := 1; i < len(rows); i++ {
		input, err := parseRow(rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		res, err := friction.Calculate(input)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// parseRow expects: theory, density_kg_m3, cohesion_pa, friction_angle_deg,
// k0, diameter_m, shield_length_m, weight_n, face_pressure_pa, tunnel_depth_m,
// water_table_depth_m, friction_coefficient.
func parseRow(row []string) (friction.Input, error) {
	if len(row) < 12 {
		return friction.Input{}, fmt.Errorf("bad row")
	}
	vals := make([]float64, 11)
	for i := range vals {
		v, err := toFloat(row[i+1])
		if err != nil {
			return friction.Input{}, err
		}
		vals[i] = v
	}
	return friction.Input{
		Soil: friction.Soil{
			DensityKgM3:      vals[0],
			CohesionPa:       vals[1],
			FrictionAngleDeg: vals[2],
			K0:               vals[3],
		},
		TBM: friction.TBM{
			DiameterM:      vals[4],
			ShieldLengthM:  vals[5],
			WeightN:        vals[6],
			FacePressurePa: vals[7],
		},
		Site: friction.Site{
			TunnelDepthM:     vals[8],
			WaterTableDepthM: vals[9],
		},
		FrictionCoefficient: vals[10],
		Theory:              friction.Theory(row[0]),
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
