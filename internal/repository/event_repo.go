package repository

import (
	"context"

	"otbasy/internal/models"
	"otbasy/internal/storage"
)

// EventRepository persists the calendar event collection.
type EventRepository struct {
	kv storage.Store
}

// NewEventRepository creates a new event repository
func NewEventRepository(kv storage.Store) *EventRepository {
	return &EventRepository{kv: kv}
}

// Load returns all events; absent or unreadable storage yields an empty
// collection.
func (r *EventRepository) Load(ctx context.Context) []models.Event {
	return loadCollection[models.Event](ctx, r.kv, storage.KeyEvents)
}

// Save persists the whole event collection.
func (r *EventRepository) Save(ctx context.Context, events []models.Event) error {
	return saveCollection(ctx, r.kv, storage.KeyEvents, events)
}

// Add appends one event and persists the collection.
func (r *EventRepository) Add(ctx context.Context, event models.Event) error {
	events := r.Load(ctx)
	events = append(events, event)
	return r.Save(ctx, events)
}

// Update applies a mutation to the event with the given id and persists the
// collection. Updating an unknown id is a no-op.
func (r *EventRepository) Update(ctx context.Context, eventID string, apply func(*models.Event)) error {
	events := r.Load(ctx)
	for i := range events {
		if events[i].ID == eventID {
			apply(&events[i])
			return r.Save(ctx, events)
		}
	}
	return nil
}

// Delete removes the event with the given id and persists the collection.
func (r *EventRepository) Delete(ctx context.Context, eventID string) error {
	events := r.Load(ctx)
	filtered := events[:0]
	for _, event := range events {
		if event.ID != eventID {
			filtered = append(filtered, event)
		}
	}
	return r.Save(ctx, filtered)
}
