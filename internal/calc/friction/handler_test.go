package friction

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	auth "github.com/kilickursat/shield-fric/internal/auth"
	repo "github.com/kilickursat/shield-fric/internal/repo"

	"github.com/golang-jwt/jwt/v5"
)

type stubRepo struct {
	savedUser   int
	savedTheory string
}

func (s *stubRepo) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	return 1, nil
}

func (s *stubRepo) GetByLogin(ctx context.Context, login string) (int, string, error) {
	return 0, "", nil
}

func (s *stubRepo) SaveCalculation(ctx context.Context, userID int, theory string, input, result []byte) (int, error) {
	s.savedUser = userID
	s.savedTheory = theory
	return 1, nil
}

func (s *stubRepo) ListCalculations(ctx context.Context, userID, limit int) ([]repo.CalculationRecord, error) {
	return nil, nil
}

func (s *stubRepo) GetCalculation(ctx context.Context, userID, id int) (repo.CalculationRecord, error) {
	return repo.CalculationRecord{}, nil
}

func postCalc(t *testing.T, h http.Handler, body []byte, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/tools/friction/calc", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandlerCalc(t *testing.T) {
	h := &Handler{}
	body, _ := json.Marshal(baseInput())

	rec := postCalc(t, http.HandlerFunc(h.Calc), body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200; body=%s", rec.Code, rec.Body.String())
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want, _ := Calculate(baseInput())
	if resp.Result != want {
		t.Errorf("result = %+v; want %+v", resp.Result, want)
	}
	if len(resp.Diagram) == 0 {
		t.Error("response carries no diagram")
	}
}

func TestHandlerCalcBadPayload(t *testing.T) {
	h := &Handler{}
	rec := postCalc(t, http.HandlerFunc(h.Calc), []byte("{not json"), "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
}

func TestHandlerCalcDomainError(t *testing.T) {
	h := &Handler{}
	in := baseInput()
	in.TBM.DiameterM = 0
	body, _ := json.Marshal(in)

	rec := postCalc(t, http.HandlerFunc(h.Calc), body, "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d; want 422; body=%s", rec.Code, rec.Body.String())
	}
}

func TestHandlerCalcSavesHistory(t *testing.T) {
	key := []byte("test-key")
	stub := &stubRepo{}
	h := &Handler{Repo: stub}
	env := &auth.Env{JWTKey: key, Repo: stub}
	secured := env.AuthMiddleware(http.HandlerFunc(h.Calc))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 42,
		"login":   "engineer",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	body, _ := json.Marshal(baseInput())
	rec := postCalc(t, secured, body, signed)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200; body=%s", rec.Code, rec.Body.String())
	}
	if stub.savedUser != 42 {
		t.Errorf("saved user = %d; want 42", stub.savedUser)
	}
	if stub.savedTheory != string(TheoryAtRest) {
		t.Errorf("saved theory = %q; want %q", stub.savedTheory, TheoryAtRest)
	}
}
