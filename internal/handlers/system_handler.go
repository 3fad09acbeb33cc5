package handlers

import (
	"net/http"

	"otbasy/internal/store"
)

// SystemHandler handles health checks and the full data reset
type SystemHandler struct {
	store *store.Store
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(store *store.Store) *SystemHandler {
	return &SystemHandler{store: store}
}

// Health reports whether the store finished loading.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if !h.store.Ready() {
		respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "loading"})
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Reset wipes every stored collection and reseeds the demonstration data.
func (h *SystemHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Reset(r.Context()); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to reset data", "Error wiping storage", err)
		return
	}
	if err := h.store.Init(r.Context()); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to reseed data", "Error reseeding storage", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
