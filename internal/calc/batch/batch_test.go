package batch

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	friction "github.com/kilickursat/shield-fric/internal/calc/friction"
)

func caseInput(theory friction.Theory) friction.Input {
	return friction.Input{
		Soil:                friction.Soil{DensityKgM3: 1800, FrictionAngleDeg: 30, K0: 0.5},
		TBM:                 friction.TBM{DiameterM: 8, ShieldLengthM: 10, WeightN: 500000},
		Site:                friction.Site{TunnelDepthM: 20, WaterTableDepthM: 5},
		FrictionCoefficient: 0.3,
		Theory:              theory,
	}
}

func TestCalculateBatch(t *testing.T) {
	in := Input{Items: []friction.Input{
		caseInput(friction.TheoryAtRest),
		caseInput(friction.TheoryActive),
		caseInput(friction.TheoryPassive),
	}}
	out, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if len(out.Results) != 3 {
		t.Fatalf("results = %d; want 3", len(out.Results))
	}
	for i, item := range in.Items {
		want, _ := friction.Calculate(item)
		if out.Results[i] != want {
			t.Errorf("result %d = %+v; want %+v", i, out.Results[i], want)
		}
	}
}

func TestCalculateBatchEmpty(t *testing.T) {
	if _, err := Calculate(Input{}); err == nil {
		t.Error("empty batch accepted")
	}
}

func TestCalculateBatchAbortsOnBadItem(t *testing.T) {
	bad := caseInput(friction.TheoryAtRest)
	bad.TBM.DiameterM = 0
	in := Input{Items: []friction.Input{caseInput(friction.TheoryAtRest), bad}}

	out, err := Calculate(in)
	if err == nil {
		t.Fatal("bad item accepted")
	}
	if len(out.Results) != 0 {
		t.Errorf("partial results returned: %d", len(out.Results))
	}
}

func TestHandlerBatch(t *testing.T) {
	h := &Handler{}
	body, _ := json.Marshal(Input{Items: []friction.Input{caseInput(friction.TheoryAtRest)}})

	req := httptest.NewRequest(http.MethodPost, "/tools/friction/batch", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200; body=%s", rec.Code, rec.Body.String())
	}
	var out Result
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Results) != 1 {
		t.Errorf("results = %d; want 1", len(out.Results))
	}
}
