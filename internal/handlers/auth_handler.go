package handlers

import (
	"encoding/json"
	"net/http"

	"otbasy/internal/service"
	"otbasy/internal/store"
)

// AuthHandler handles session-related HTTP requests
type AuthHandler struct {
	store    *store.Store
	sessions *service.SessionService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(store *store.Store, sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{store: store, sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login establishes a session and returns its token with the session user.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	if !h.store.Login(r.Context(), req.Email, req.Password) {
		respondWithError(w, http.StatusUnauthorized, "Email and password are required", "", nil)
		return
	}

	user := h.store.User()
	token, err := h.sessions.IssueToken(user.ID, user.Email)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create session", "Error signing session token", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Logout clears the session user.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Logout(r.Context()); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to log out", "Error clearing session", err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

// Me returns the current session user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.store.User()
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Not logged in", "", nil)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}
