package web

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bitcloud2/pvpoke-sub001/internal/battle"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer("")
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func doRequest(s *Server, method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func TestSpeciesEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(s, http.MethodGet, "/api/species", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out []SpeciesInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	found := false
	for _, sp := range out {
		if sp.Name == "Medicham" {
			found = true
			if len(sp.Types) != 2 {
				t.Errorf("Medicham types = %v, want two", sp.Types)
			}
		}
	}
	if !found {
		t.Error("species list missing Medicham")
	}
}

func TestTypesEndpointSingleMatchup(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(s, http.MethodGet, "/api/types?attacking=electric&defending=water&defending2=flying", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if math.Abs(out["electric"]-2.56) > 1e-9 {
		t.Errorf("electric vs water/flying = %v, want 2.56", out["electric"])
	}
}

func TestTypesEndpointSpread(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(s, http.MethodGet, "/api/types?defending=water", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 18 {
		t.Errorf("spread has %d entries, want 18", len(out))
	}
}

func TestTypesEndpointRejectsBadType(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(s, http.MethodGet, "/api/types?defending=shadow", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSimulateEndpoint(t *testing.T) {
	s := newTestServer(t)
	body, _ := json.Marshal(SimulateRequest{
		Combatants: [2]CombatantSpec{
			{Species: "Medicham"},
			{Species: "Azumarill"},
		},
		Seed:     17,
		Timeline: true,
	})
	rec := doRequest(s, http.MethodPost, "/api/simulate", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp SimulateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID == "" {
		t.Error("response missing simulation id")
	}
	if resp.Result == nil {
		t.Fatal("response missing result")
	}
	if resp.Result.Winner < -1 || resp.Result.Winner > 1 {
		t.Errorf("winner = %d, want -1, 0 or 1", resp.Result.Winner)
	}
	for i, r := range resp.Result.Ratings {
		if r < 0 || r > battle.MaxRating {
			t.Errorf("rating[%d] = %d, outside [0, %d]", i, r, battle.MaxRating)
		}
	}
	if len(resp.Result.Timeline) == 0 {
		t.Error("requested timeline is empty")
	}
	if resp.Combatants[0].CP <= 0 || resp.Combatants[0].MaxHP <= 0 {
		t.Errorf("combatant info not populated: %+v", resp.Combatants[0])
	}
}

func TestSimulateEndpointIsDeterministic(t *testing.T) {
	s := newTestServer(t)
	body, _ := json.Marshal(SimulateRequest{
		Combatants: [2]CombatantSpec{
			{Species: "Registeel"},
			{Species: "Altaria"},
		},
		Seed: 23,
	})

	var results [2]SimulateResponse
	for i := range results {
		rec := doRequest(s, http.MethodPost, "/api/simulate", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &results[i]); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	a, b := results[0].Result, results[1].Result
	if a.Winner != b.Winner || a.Ratings != b.Ratings || a.Turns != b.Turns {
		t.Errorf("same seed diverged: %+v vs %+v", a, b)
	}
}

func TestSimulateEndpointRejectsUnknownSpecies(t *testing.T) {
	s := newTestServer(t)
	body, _ := json.Marshal(SimulateRequest{
		Combatants: [2]CombatantSpec{
			{Species: "Missingno"},
			{Species: "Azumarill"},
		},
	})
	rec := doRequest(s, http.MethodPost, "/api/simulate", body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
