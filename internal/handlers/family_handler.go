package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"otbasy/internal/models"
	"otbasy/internal/service"
	"otbasy/internal/store"
)

// FamilyHandler handles family CRUD and invitations
type FamilyHandler struct {
	store *store.Store
	email *service.EmailService
}

// NewFamilyHandler creates a new family handler
func NewFamilyHandler(store *store.Store, email *service.EmailService) *FamilyHandler {
	return &FamilyHandler{store: store, email: email}
}

// List returns every family.
func (h *FamilyHandler) List(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.store.Families())
}

// Get returns one family.
func (h *FamilyHandler) Get(w http.ResponseWriter, r *http.Request) {
	family, ok := h.store.FamilyByID(r.PathValue("id"))
	if !ok {
		respondWithError(w, http.StatusNotFound, "Family not found", "", nil)
		return
	}
	respondWithJSON(w, http.StatusOK, family)
}

// Create adds a new family.
func (h *FamilyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var family models.Family
	if err := json.NewDecoder(r.Body).Decode(&family); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	created, err := h.store.AddFamily(r.Context(), family)
	if err != nil {
		if errors.Is(err, models.ErrFamilyNameRequired) {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to create family", "Error adding family", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// AddMember appends a member to a family.
func (h *FamilyHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var member models.FamilyMember
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	added, err := h.store.AddFamilyMember(r.Context(), r.PathValue("id"), member)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrFamilyNotFound):
			respondWithError(w, http.StatusNotFound, "Family not found", "", nil)
		case errors.Is(err, models.ErrMemberNameRequired):
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to add member", "Error adding family member", err)
		}
		return
	}
	respondWithJSON(w, http.StatusCreated, added)
}

// GenerateCode returns a fresh join code without attaching it to a family.
func (h *FamilyHandler) GenerateCode(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"code": h.store.GenerateFamilyCode()})
}

type inviteRequest struct {
	Email string `json:"email"`
}

// Invite mails a family's join code to a prospective member.
func (h *FamilyHandler) Invite(w http.ResponseWriter, r *http.Request) {
	family, ok := h.store.FamilyByID(r.PathValue("id"))
	if !ok {
		respondWithError(w, http.StatusNotFound, "Family not found", "", nil)
		return
	}

	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		respondWithError(w, http.StatusBadRequest, "Recipient email is required", "", err)
		return
	}

	if err := h.email.SendFamilyInviteEmail(r.Context(), req.Email, family.Name, family.Code); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to send invitation", "Error sending invite email", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"sent": h.email.IsEnabled()})
}
