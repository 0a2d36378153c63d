package material

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	Lib *Library
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Lib.Grades())
}
