package models

import (
	"errors"
	"time"
)

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var (
	ErrTaskTitleRequired = errors.New("task title is required")
	ErrInvalidPriority   = errors.New("priority must be low, medium or high")
)

// Task is a family to-do item, optionally assigned to a member.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Completed      bool       `json:"completed"`
	Priority       Priority   `json:"priority"`
	AssignedTo     string     `json:"assignedTo,omitempty"`
	AssignedToName string     `json:"assignedToName,omitempty"`
	FamilyID       string     `json:"familyId"`
	FamilyName     string     `json:"familyName"`
	CreatedBy      string     `json:"createdBy"`
	CreatedAt      time.Time  `json:"createdAt"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
}

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Validate checks the fields a task must carry before it is stored.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrTaskTitleRequired
	}
	if !t.Priority.Valid() {
		return ErrInvalidPriority
	}
	return nil
}
