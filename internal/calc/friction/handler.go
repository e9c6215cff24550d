package friction

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	auth "github.com/kilickursat/shield-fric/internal/auth"
	repo "github.com/kilickursat/shield-fric/internal/repo"
)

// Handler serves friction calculations. When Repo is set, each successful
// authenticated calculation is saved as a history record.
type Handler struct {
	Repo repo.Repository
}

type Response struct {
	Result  Result      `json:"result"`
	Diagram []Primitive `json:"diagram"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrGeometry) || errors.Is(err, ErrFrictionAngle) || errors.Is(err, ErrTheory) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	h.save(r, input, res)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{
		Result:  res,
		Diagram: Diagram(input, res),
	})
}

// save records the calculation for the authenticated caller. History is a
// convenience: failures are logged, never surfaced to the client.
func (h *Handler) save(r *http.Request, input Input, res Result) {
	if h.Repo == nil {
		return
	}
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return
	}
	inJSON, err := json.Marshal(input)
	if err != nil {
		return
	}
	resJSON, err := json.Marshal(res)
	if err != nil {
		return
	}
	if _, err := h.Repo.SaveCalculation(r.Context(), userID, string(input.Theory), inJSON, resJSON); err != nil {
		log.Printf("SaveCalculation error: %v", err)
	}
}
