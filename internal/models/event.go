package models

import (
	"errors"
	"time"
)

var (
	ErrEventTitleRequired = errors.New("event title is required")
	ErrInvalidEventDate   = errors.New("event date must be YYYY-MM-DD")
)

// Event is a calendar entry for a family. Date and time stay as the plain
// strings the calendar works with; no timezone math happens on them.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	FamilyID    string `json:"familyId"`
	FamilyName  string `json:"familyName"`
	CreatedBy   string `json:"createdBy"`
}

// Validate checks the fields an event must carry before it is stored.
func (e *Event) Validate() error {
	if e.Title == "" {
		return ErrEventTitleRequired
	}
	if e.Date != "" {
		if _, err := time.Parse("2006-01-02", e.Date); err != nil {
			return ErrInvalidEventDate
		}
	}
	return nil
}
