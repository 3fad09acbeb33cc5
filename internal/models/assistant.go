package models

import "time"

// AIMessage is one entry in the assistant conversation log. The log is flat
// and chronological, not threaded per family; FamilyID only records which
// family the question was asked about, when any.
type AIMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
	FamilyID  string    `json:"familyId,omitempty"`
}
