package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"otbasy/internal/models"
)

var ErrCapsuleNotFound = errors.New("time capsule not found")

// capsuleMessageFormat renders a delivered capsule as a chat message.
const capsuleMessageFormat = "🕰️ Капсула времени: %s\n\n%s"

// AddTimeCapsule creates a capsule with a fresh id. New capsules start
// undelivered.
func (s *Store) AddTimeCapsule(ctx context.Context, capsule models.TimeCapsule) (*models.TimeCapsule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.currentUser()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	capsule.ID = s.newID()
	capsule.CreatedAt = s.now()
	capsule.IsDelivered = false
	if capsule.CreatedBy == "" {
		capsule.CreatedBy = user.ID
	}
	if err := capsule.Validate(); err != nil {
		return nil, err
	}

	prev := s.capsules
	s.capsules = append(slices.Clone(s.capsules), capsule)

	if err := s.capsuleRepo.Save(ctx, s.capsules); err != nil {
		s.capsules = prev
		return nil, fmt.Errorf("persisting capsules: %w", err)
	}
	return &capsule, nil
}

// UpdateTimeCapsule applies a partial update to one capsule, preserving its
// id, creator and creation timestamp.
func (s *Store) UpdateTimeCapsule(ctx context.Context, capsuleID string, apply func(*models.TimeCapsule)) (*models.TimeCapsule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.capsules
	capsules := slices.Clone(s.capsules)
	index := -1
	for i := range capsules {
		if capsules[i].ID == capsuleID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrCapsuleNotFound
	}

	id, createdBy, createdAt := capsules[index].ID, capsules[index].CreatedBy, capsules[index].CreatedAt
	delivered := capsules[index].IsDelivered
	apply(&capsules[index])
	capsules[index].ID = id
	capsules[index].CreatedBy = createdBy
	capsules[index].CreatedAt = createdAt
	// The delivered flag is one-way and only DeliverTimeCapsule sets it.
	if delivered {
		capsules[index].IsDelivered = true
	}
	if err := capsules[index].Validate(); err != nil {
		return nil, err
	}
	s.capsules = capsules

	if err := s.capsuleRepo.Save(ctx, s.capsules); err != nil {
		s.capsules = prev
		return nil, fmt.Errorf("persisting capsules: %w", err)
	}
	updated := capsules[index]
	return &updated, nil
}

// DeleteTimeCapsule removes one capsule.
func (s *Store) DeleteTimeCapsule(ctx context.Context, capsuleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.capsules
	capsules := slices.Clone(s.capsules)
	filtered := capsules[:0]
	for _, capsule := range capsules {
		if capsule.ID != capsuleID {
			filtered = append(filtered, capsule)
		}
	}
	if len(filtered) == len(capsules) {
		return ErrCapsuleNotFound
	}
	s.capsules = slices.Clone(filtered)

	if err := s.capsuleRepo.Save(ctx, s.capsules); err != nil {
		s.capsules = prev
		return fmt.Errorf("persisting capsules: %w", err)
	}
	return nil
}

// DeliverTimeCapsule posts a capsule's content into the owning family's
// chat and marks the capsule delivered. The message is attributed to the
// capsule's creator, so delivery works with or without a session user and
// the background scheduler keeps running after logout. A capsule already
// delivered is left untouched.
func (s *Store) DeliverTimeCapsule(ctx context.Context, capsuleID string) error {
	s.mu.Lock()

	index := -1
	for i := range s.capsules {
		if s.capsules[i].ID == capsuleID {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return ErrCapsuleNotFound
	}
	if s.capsules[index].IsDelivered {
		s.mu.Unlock()
		return nil
	}

	capsule := s.capsules[index]
	message := models.Message{
		ID:         s.newID(),
		Text:       fmt.Sprintf(capsuleMessageFormat, capsule.Title, capsule.Message),
		SenderID:   capsule.CreatedBy,
		SenderName: capsule.CreatedByName,
		Timestamp:  s.now(),
		FamilyID:   capsule.FamilyID,
	}

	sent, err := s.appendMessageLocked(ctx, message)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	prev := s.capsules
	capsules := slices.Clone(s.capsules)
	capsules[index].IsDelivered = true
	s.capsules = capsules

	if err := s.capsuleRepo.Save(ctx, s.capsules); err != nil {
		s.capsules = prev
		s.mu.Unlock()
		return fmt.Errorf("persisting capsules: %w", err)
	}
	s.mu.Unlock()

	s.notifyMessage(*sent)
	return nil
}

// DueCapsules returns the capsules whose delivery date has passed but are
// still undelivered, as of the given instant.
func (s *Store) DueCapsules(now time.Time) []models.TimeCapsule {
	s.mu.Lock()
	defer s.mu.Unlock()
	var due []models.TimeCapsule
	for _, capsule := range s.capsules {
		if capsule.IsDue(now) {
			due = append(due, capsule)
		}
	}
	return due
}
