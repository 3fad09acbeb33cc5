package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"otbasy/internal/models"
)

var (
	ErrNotAuthenticated = errors.New("no authenticated user")
	ErrFamilyNotFound   = errors.New("family not found")
	ErrEmptyMessage     = errors.New("message text is empty")
)

// SendMessage appends a chat message authored by the session user to the
// given family and updates the family's last-message preview. Both changes
// are rolled back if either collection fails to persist.
func (s *Store) SendMessage(ctx context.Context, familyID, text string) (*models.Message, error) {
	if text == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	user, ok := s.currentUser()
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotAuthenticated
	}

	message := models.Message{
		ID:         s.newID(),
		Text:       text,
		SenderID:   user.ID,
		SenderName: user.Name,
		Timestamp:  s.now(),
		FamilyID:   familyID,
	}

	sent, err := s.appendMessageLocked(ctx, message)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.notifyMessage(*sent)
	return sent, nil
}

// appendMessageLocked applies the optimistic append of a chat message and
// the family preview update, persisting both collections. Callers must hold
// s.mu.
func (s *Store) appendMessageLocked(ctx context.Context, message models.Message) (*models.Message, error) {
	prevMessages := s.messages
	prevFamilies := s.families

	s.messages = append(slices.Clone(s.messages), message)

	families := slices.Clone(s.families)
	for i := range families {
		if families[i].ID == message.FamilyID {
			preview := message
			families[i].LastMessage = &preview
			break
		}
	}
	s.families = families

	if err := s.messageRepo.Save(ctx, s.messages); err != nil {
		s.messages, s.families = prevMessages, prevFamilies
		return nil, fmt.Errorf("persisting messages: %w", err)
	}
	if err := s.familyRepo.Save(ctx, s.families); err != nil {
		s.messages, s.families = prevMessages, prevFamilies
		return nil, fmt.Errorf("persisting families: %w", err)
	}
	return &message, nil
}
