package models

import (
	"errors"
	"time"
)

// MediaType identifies the kind of media attached to a time capsule.
type MediaType string

const (
	MediaPhoto MediaType = "photo"
	MediaVideo MediaType = "video"
)

var (
	ErrCapsuleTitleRequired   = errors.New("capsule title is required")
	ErrCapsuleMessageRequired = errors.New("capsule message is required")
	ErrInvalidMediaType       = errors.New("media type must be photo or video")
)

// TimeCapsule is a message authored now and rendered as a normal chat
// message only after its delivery time is reached. Delivered goes
// false -> true exactly once.
type TimeCapsule struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	MediaURL      string    `json:"mediaUrl,omitempty"`
	MediaType     MediaType `json:"mediaType,omitempty"`
	FamilyID      string    `json:"familyId"`
	FamilyName    string    `json:"familyName"`
	CreatedBy     string    `json:"createdBy"`
	CreatedByName string    `json:"createdByName"`
	CreatedAt     time.Time `json:"createdAt"`
	DeliveryDate  time.Time `json:"deliveryDate"`
	IsDelivered   bool      `json:"isDelivered"`
	Recipients    []string  `json:"recipients,omitempty"`
}

// IsDue reports whether the capsule should be delivered as of now.
func (c *TimeCapsule) IsDue(now time.Time) bool {
	return !c.IsDelivered && !now.Before(c.DeliveryDate)
}

// Validate checks the fields a capsule must carry before it is stored.
func (c *TimeCapsule) Validate() error {
	if c.Title == "" {
		return ErrCapsuleTitleRequired
	}
	if c.Message == "" {
		return ErrCapsuleMessageRequired
	}
	if c.MediaType != "" && c.MediaType != MediaPhoto && c.MediaType != MediaVideo {
		return ErrInvalidMediaType
	}
	return nil
}
