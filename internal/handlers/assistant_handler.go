package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"otbasy/internal/store"
)

// AssistantHandler handles the assistant conversation
type AssistantHandler struct {
	store *store.Store
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(store *store.Store) *AssistantHandler {
	return &AssistantHandler{store: store}
}

// List returns the assistant conversation log.
func (h *AssistantHandler) List(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.store.AIMessages())
}

type askRequest struct {
	Text     string `json:"text"`
	FamilyID string `json:"familyId"`
}

// Ask records a question for the assistant. The answer appears in the log
// after the configured delay.
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	question, err := h.store.SendAIMessage(r.Context(), req.FamilyID, req.Text)
	if err != nil {
		if errors.Is(err, store.ErrEmptyMessage) {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to record question", "Error recording assistant question", err)
		return
	}
	respondWithJSON(w, http.StatusAccepted, question)
}

// Clear drops the assistant conversation.
func (h *AssistantHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearAIHistory(r.Context()); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to clear history", "Error clearing assistant history", err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}
