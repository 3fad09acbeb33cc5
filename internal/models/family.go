package models

import (
	"errors"
	"time"
)

// CodeLength is the number of characters in a family join code.
const CodeLength = 6

// CodeAlphabet is the character set join codes are drawn from.
const CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	ErrFamilyNameRequired = errors.New("family name is required")
	ErrMemberNameRequired = errors.New("member name is required")
)

// Family is a named group of members sharing one chat, one task list and one
// set of time capsules.
type Family struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Code        string         `json:"code"`
	Members     []FamilyMember `json:"members"`
	LastMessage *Message       `json:"lastMessage,omitempty"`
	UnreadCount int            `json:"unreadCount"`
	Avatar      string         `json:"avatar,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	Description string         `json:"description,omitempty"`
}

// FamilyMember belongs to exactly one family; members are never shared
// across families.
type FamilyMember struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	BirthDate    string `json:"birthDate"`
	Relationship string `json:"relationship"`
	Avatar       string `json:"avatar,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// Validate checks the fields a family must carry before it is stored.
func (f *Family) Validate() error {
	if f.Name == "" {
		return ErrFamilyNameRequired
	}
	return nil
}

// Validate checks the fields a member must carry before it is stored.
func (m *FamilyMember) Validate() error {
	if m.Name == "" {
		return ErrMemberNameRequired
	}
	if m.BirthDate != "" {
		if _, err := time.Parse("2006-01-02", m.BirthDate); err != nil {
			return errors.New("birth date must be YYYY-MM-DD")
		}
	}
	return nil
}
