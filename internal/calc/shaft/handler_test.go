package shaft

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Driveline/internal/material"
)

func postCalc(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/tools/shaft/calc", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Calc(w, req)
	return w
}

func TestHandlerCalc(t *testing.T) {
	h := &Handler{Materials: material.Defaults()}
	body := `{"bending_alt_nm":500,"torsion_mean_nm":300,"kf":1.8,"kfs":1.5,
		"se_mpa":210,"sut_mpa":700,"design_factor":2,"criterion":"goodman"}`

	w := postCalc(t, h, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var res Result
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.Criterion != Goodman {
		t.Fatalf("unexpected criterion %q", res.Criterion)
	}
	if res.DiameterMM < 20 || res.DiameterMM > 90 {
		t.Fatalf("unexpected diameter %.2f mm", res.DiameterMM)
	}
}

func TestHandlerMaterialGrade(t *testing.T) {
	h := &Handler{Materials: material.Defaults()}
	body := `{"bending_alt_nm":500,"torsion_mean_nm":300,"kf":1.8,"kfs":1.5,
		"material":"aisi 1045 cd","design_factor":2,"criterion":"morrow"}`

	w := postCalc(t, h, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with grade-resolved sigma_f, got %d: %s", w.Code, w.Body.String())
	}
	var res Result
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if _, ok := res.DiametersMM[Morrow]; !ok {
		t.Fatal("expected Morrow in the table when the grade supplies sigma_f")
	}
	if res.YieldFactor == 0 {
		t.Fatal("expected a yield factor: the grade supplies Sy")
	}
}

func TestHandlerUnknownGrade(t *testing.T) {
	h := &Handler{Materials: material.Defaults()}
	w := postCalc(t, h, `{"material":"unobtainium","criterion":"goodman"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unknown grade, got %d", w.Code)
	}
}

func TestHandlerErrorMapping(t *testing.T) {
	h := &Handler{}
	cases := []struct {
		name string
		body string
		code int
	}{
		{"bad json", `{"bending_alt_nm":`, http.StatusBadRequest},
		{"invalid input", `{"kf":0.2,"kfs":1,"se_mpa":210,"sut_mpa":700,"design_factor":2,"criterion":"goodman"}`, http.StatusBadRequest},
		{"morrow without sigma_f", `{"bending_alt_nm":500,"kf":1.8,"kfs":1.5,"se_mpa":210,"sut_mpa":700,"design_factor":2,"criterion":"morrow"}`, http.StatusUnprocessableEntity},
		{"unsolvable", `{"bending_alt_nm":1e9,"kf":1.8,"kfs":1.5,"se_mpa":210,"sut_mpa":700,"design_factor":2,"criterion":"goodman"}`, http.StatusUnprocessableEntity},
		{"bad geometry", `{"bending_alt_nm":500,"kf":1.8,"kfs":1.5,"se_mpa":210,"sut_mpa":700,"design_factor":2,"criterion":"goodman","segments":[]}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := postCalc(t, h, tc.body)
		if w.Code != tc.code {
			t.Fatalf("%s: expected %d, got %d: %s", tc.name, tc.code, w.Code, w.Body.String())
		}
	}
}
