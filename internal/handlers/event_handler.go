package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"otbasy/internal/models"
	"otbasy/internal/store"
)

// EventHandler handles calendar event CRUD
type EventHandler struct {
	store *store.Store
}

// NewEventHandler creates a new event handler
func NewEventHandler(store *store.Store) *EventHandler {
	return &EventHandler{store: store}
}

// List returns every calendar event.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.store.Events())
}

// Create adds a new calendar event.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var event models.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	created, err := h.store.AddEvent(r.Context(), event)
	if err != nil {
		if errors.Is(err, models.ErrEventTitleRequired) || errors.Is(err, models.ErrInvalidEventDate) {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to create event", "Error adding event", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// eventPatch carries the fields an event update may change.
type eventPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
}

// Update applies a partial update to one event.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch eventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	updated, err := h.store.UpdateEvent(r.Context(), r.PathValue("id"), func(event *models.Event) {
		if patch.Title != nil {
			event.Title = *patch.Title
		}
		if patch.Description != nil {
			event.Description = *patch.Description
		}
		if patch.Date != nil {
			event.Date = *patch.Date
		}
		if patch.Time != nil {
			event.Time = *patch.Time
		}
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEventNotFound):
			respondWithError(w, http.StatusNotFound, "Event not found", "", nil)
		case errors.Is(err, models.ErrEventTitleRequired), errors.Is(err, models.ErrInvalidEventDate):
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to update event", "Error updating event", err)
		}
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

// Delete removes one event.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteEvent(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			respondWithError(w, http.StatusNotFound, "Event not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to delete event", "Error deleting event", err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}
