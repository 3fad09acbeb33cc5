package models

import "time"

// Message is one chat message in a family. Messages are append-only: once
// created they are never mutated.
type Message struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Timestamp  time.Time `json:"timestamp"`
	FamilyID   string    `json:"familyId"`
}
