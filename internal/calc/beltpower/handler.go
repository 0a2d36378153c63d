package beltpower

import (
	"encoding/json"
	"io"
	"net/http"

	"Driveline/internal/records"
	"Driveline/internal/repo"
)

type Handler struct {
	Records repo.RecordRepository
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	var input Input
	if err := json.Unmarshal(body, &input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	records.SaveIfRequested(r, h.Records, "belt_power", body, res.Outcome())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
