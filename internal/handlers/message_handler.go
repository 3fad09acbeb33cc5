package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"otbasy/internal/chat"
	"otbasy/internal/models"
	"otbasy/internal/store"
)

// MessageHandler handles family chat history and the live stream
type MessageHandler struct {
	store *store.Store
	hub   *chat.Hub
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(store *store.Store, hub *chat.Hub) *MessageHandler {
	return &MessageHandler{store: store, hub: hub}
}

// List returns one family's chat history, oldest first.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages := h.store.MessagesForFamily(r.PathValue("id"))
	if messages == nil {
		messages = []models.Message{}
	}
	respondWithJSON(w, http.StatusOK, messages)
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

// Send posts a chat message to one family as the session user.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	sent, err := h.store.SendMessage(r.Context(), r.PathValue("id"), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyMessage):
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		case errors.Is(err, store.ErrNotAuthenticated):
			respondWithError(w, http.StatusUnauthorized, "Not logged in", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to send message", "Error sending message", err)
		}
		return
	}
	respondWithJSON(w, http.StatusCreated, sent)
}

// Stream upgrades to a websocket subscribed to one family's chat.
func (h *MessageHandler) Stream(w http.ResponseWriter, r *http.Request) {
	chat.ServeWS(h.hub, h.store, r.PathValue("id"), w, r)
}
