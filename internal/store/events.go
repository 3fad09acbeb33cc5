package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"otbasy/internal/models"
)

var ErrEventNotFound = errors.New("event not found")

// AddEvent creates a calendar event with a fresh id.
func (s *Store) AddEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.currentUser()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	event.ID = s.newID()
	if event.CreatedBy == "" {
		event.CreatedBy = user.ID
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}

	prev := s.events
	s.events = append(slices.Clone(s.events), event)

	if err := s.eventRepo.Save(ctx, s.events); err != nil {
		s.events = prev
		return nil, fmt.Errorf("persisting events: %w", err)
	}
	return &event, nil
}

// UpdateEvent applies a partial update to one event, preserving its id and
// creator.
func (s *Store) UpdateEvent(ctx context.Context, eventID string, apply func(*models.Event)) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.events
	events := slices.Clone(s.events)
	index := -1
	for i := range events {
		if events[i].ID == eventID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrEventNotFound
	}

	id, createdBy := events[index].ID, events[index].CreatedBy
	apply(&events[index])
	events[index].ID = id
	events[index].CreatedBy = createdBy
	if err := events[index].Validate(); err != nil {
		return nil, err
	}
	s.events = events

	if err := s.eventRepo.Save(ctx, s.events); err != nil {
		s.events = prev
		return nil, fmt.Errorf("persisting events: %w", err)
	}
	updated := events[index]
	return &updated, nil
}

// DeleteEvent removes one event.
func (s *Store) DeleteEvent(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.events
	events := slices.Clone(s.events)
	filtered := events[:0]
	for _, event := range events {
		if event.ID != eventID {
			filtered = append(filtered, event)
		}
	}
	if len(filtered) == len(events) {
		return ErrEventNotFound
	}
	s.events = slices.Clone(filtered)

	if err := s.eventRepo.Save(ctx, s.events); err != nil {
		s.events = prev
		return fmt.Errorf("persisting events: %w", err)
	}
	return nil
}
