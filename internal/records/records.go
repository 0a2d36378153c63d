// Package records exposes the per-user history of saved calculation
// results.
package records

import (
	"Driveline/internal/auth"
	outcome "Driveline/internal/calc/outcome"
	"Driveline/internal/repo"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo repo.RecordRepository
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, _ = strconv.Atoi(s)
	}

	recs, err := h.Repo.ListRecords(r.Context(), userID, limit)
	if err != nil {
		log.Printf("ListRecords error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if recs == nil {
		recs = []repo.Record{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recs)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid record id", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteRecord(r.Context(), userID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Record not found", http.StatusNotFound)
			return
		}
		log.Printf("DeleteRecord error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SaveIfRequested persists a calculation outcome when the request asks
// for it with ?save=1 and carries an authenticated user. Storage
// failures are logged, never surfaced; the calculation itself already
// succeeded.
func SaveIfRequested(r *http.Request, store repo.RecordRepository, slug string, input []byte, o outcome.Outcome) {
	if store == nil || r.URL.Query().Get("save") != "1" {
		return
	}
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return
	}
	if !json.Valid(input) {
		input = []byte("{}")
	}
	_, err := store.SaveRecord(r.Context(), repo.Record{
		UserID:      userID,
		Slug:        slug,
		Input:       json.RawMessage(input),
		Title:       o.Title,
		Description: o.Description,
		Value:       o.Value,
		Units:       o.Units,
	})
	if err != nil {
		log.Printf("SaveRecord error (%s): %v", slug, err)
	}
}
