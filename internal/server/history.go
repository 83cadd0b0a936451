package server

import (
	"net/http"
	"rotcheck/internal/db"
)

type historyEntry struct {
	ID uint64 `json:"id"`
	db.Check
}

type history struct {
	store *db.Store
}

// list answers with every recorded check. A read failure panics inside
// Store.All and is answered by the recover middleware.
func (h *history) list(w http.ResponseWriter, r *http.Request) {
	entries := []historyEntry{}
	for id, check := range h.store.All() {
		entries = append(entries, historyEntry{ID: id, Check: check})
	}

	writeJSON(w, r, http.StatusOK, entries)
}

func (h *history) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Stats()
	if err != nil {
		panic(err)
	}

	writeJSON(w, r, http.StatusOK, stats)
}
