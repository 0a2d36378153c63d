package shaft

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"Driveline/internal/material"
	"Driveline/internal/records"
	"Driveline/internal/repo"
)

const maxBodySize = 1 << 20

type Handler struct {
	Materials *material.Library
	Records   repo.RecordRepository
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	var input Input
	if err := json.Unmarshal(body, &input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if input.Material != "" && h.Materials != nil {
		grade, ok := h.Materials.Get(input.Material)
		if !ok {
			http.Error(w, "Unknown material grade", http.StatusBadRequest)
			return
		}
		applyGrade(&input, grade)
	}

	res, err := Calculate(input)
	if err != nil {
		writeError(w, err)
		return
	}

	records.SaveIfRequested(r, h.Records, "shaft_sizing", body, res.Outcome())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// applyGrade fills only the strengths the request left unset, so a
// caller can name a grade and still override a single property.
func applyGrade(in *Input, g material.Grade) {
	if in.SeMPa == 0 {
		in.SeMPa = g.SeMPa
	}
	if in.SutMPa == 0 {
		in.SutMPa = g.SutMPa
	}
	if in.SigmaFMPa == 0 {
		in.SigmaFMPa = g.SigmaFMPa
	}
	if in.SyMPa == 0 {
		in.SyMPa = g.SyMPa
	}
}

// writeError maps each failure kind to its own actionable message.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMissingMaterialData):
		http.Error(w, "Selected criterion needs the true fracture strength sigma_f", http.StatusUnprocessableEntity)
	case errors.Is(err, ErrUnsolvable):
		http.Error(w, "Loads too large: no shaft up to 1 m in diameter meets the design factor", http.StatusUnprocessableEntity)
	case errors.Is(err, ErrInvalidGeometry):
		http.Error(w, "Invalid shaft geometry", http.StatusBadRequest)
	default:
		http.Error(w, "Invalid input", http.StatusBadRequest)
	}
}
