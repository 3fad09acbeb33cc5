package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"otbasy/internal/models"
	"otbasy/internal/store"
)

// TaskHandler handles task CRUD
type TaskHandler struct {
	store *store.Store
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(store *store.Store) *TaskHandler {
	return &TaskHandler{store: store}
}

// List returns every task.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.store.Tasks())
}

// Create adds a new task.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	created, err := h.store.AddTask(r.Context(), task)
	if err != nil {
		if errors.Is(err, models.ErrTaskTitleRequired) || errors.Is(err, models.ErrInvalidPriority) {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to create task", "Error adding task", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// taskPatch carries the fields a task update may change. Absent fields keep
// their current values.
type taskPatch struct {
	Title          *string          `json:"title"`
	Description    *string          `json:"description"`
	Completed      *bool            `json:"completed"`
	Priority       *models.Priority `json:"priority"`
	AssignedTo     *string          `json:"assignedTo"`
	AssignedToName *string          `json:"assignedToName"`
	DueDate        *time.Time       `json:"dueDate"`
}

// Update applies a partial update to one task.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch taskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	updated, err := h.store.UpdateTask(r.Context(), r.PathValue("id"), func(task *models.Task) {
		if patch.Title != nil {
			task.Title = *patch.Title
		}
		if patch.Description != nil {
			task.Description = *patch.Description
		}
		if patch.Completed != nil {
			task.Completed = *patch.Completed
		}
		if patch.Priority != nil {
			task.Priority = *patch.Priority
		}
		if patch.AssignedTo != nil {
			task.AssignedTo = *patch.AssignedTo
		}
		if patch.AssignedToName != nil {
			task.AssignedToName = *patch.AssignedToName
		}
		if patch.DueDate != nil {
			task.DueDate = patch.DueDate
		}
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrTaskNotFound):
			respondWithError(w, http.StatusNotFound, "Task not found", "", nil)
		case errors.Is(err, models.ErrTaskTitleRequired), errors.Is(err, models.ErrInvalidPriority):
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to update task", "Error updating task", err)
		}
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

// Toggle inverts one task's completion flag.
func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	toggled, err := h.store.ToggleTaskComplete(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			respondWithError(w, http.StatusNotFound, "Task not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to toggle task", "Error toggling task", err)
		return
	}
	respondWithJSON(w, http.StatusOK, toggled)
}

// Delete removes one task.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteTask(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			respondWithError(w, http.StatusNotFound, "Task not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to delete task", "Error deleting task", err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}
