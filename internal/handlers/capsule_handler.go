package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"otbasy/internal/models"
	"otbasy/internal/store"
)

// CapsuleHandler handles time capsule CRUD and manual delivery
type CapsuleHandler struct {
	store *store.Store
}

// NewCapsuleHandler creates a new capsule handler
func NewCapsuleHandler(store *store.Store) *CapsuleHandler {
	return &CapsuleHandler{store: store}
}

// List returns every time capsule.
func (h *CapsuleHandler) List(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.store.TimeCapsules())
}

// Create adds a new time capsule.
func (h *CapsuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var capsule models.TimeCapsule
	if err := json.NewDecoder(r.Body).Decode(&capsule); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	created, err := h.store.AddTimeCapsule(r.Context(), capsule)
	if err != nil {
		if errors.Is(err, models.ErrCapsuleTitleRequired) ||
			errors.Is(err, models.ErrCapsuleMessageRequired) ||
			errors.Is(err, models.ErrInvalidMediaType) {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to create capsule", "Error adding capsule", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// capsulePatch carries the fields a capsule update may change. The
// delivered flag is not patchable.
type capsulePatch struct {
	Title        *string           `json:"title"`
	Message      *string           `json:"message"`
	MediaURL     *string           `json:"mediaUrl"`
	MediaType    *models.MediaType `json:"mediaType"`
	DeliveryDate *time.Time        `json:"deliveryDate"`
	Recipients   *[]string         `json:"recipients"`
}

// Update applies a partial update to one capsule.
func (h *CapsuleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch capsulePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	updated, err := h.store.UpdateTimeCapsule(r.Context(), r.PathValue("id"), func(capsule *models.TimeCapsule) {
		if patch.Title != nil {
			capsule.Title = *patch.Title
		}
		if patch.Message != nil {
			capsule.Message = *patch.Message
		}
		if patch.MediaURL != nil {
			capsule.MediaURL = *patch.MediaURL
		}
		if patch.MediaType != nil {
			capsule.MediaType = *patch.MediaType
		}
		if patch.DeliveryDate != nil {
			capsule.DeliveryDate = *patch.DeliveryDate
		}
		if patch.Recipients != nil {
			capsule.Recipients = *patch.Recipients
		}
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrCapsuleNotFound):
			respondWithError(w, http.StatusNotFound, "Capsule not found", "", nil)
		case errors.Is(err, models.ErrCapsuleTitleRequired),
			errors.Is(err, models.ErrCapsuleMessageRequired),
			errors.Is(err, models.ErrInvalidMediaType):
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to update capsule", "Error updating capsule", err)
		}
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

// Delete removes one capsule.
func (h *CapsuleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteTimeCapsule(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrCapsuleNotFound) {
			respondWithError(w, http.StatusNotFound, "Capsule not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to delete capsule", "Error deleting capsule", err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

// Deliver posts one capsule into its family's chat ahead of schedule.
func (h *CapsuleHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeliverTimeCapsule(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrCapsuleNotFound) {
			respondWithError(w, http.StatusNotFound, "Capsule not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to deliver capsule", "Error delivering capsule", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"delivered": true})
}
