package repository

import (
	"context"

	"otbasy/internal/models"
	"otbasy/internal/storage"
)

// MessageRepository persists the chat message log. Messages are append-only;
// there is no update or delete.
type MessageRepository struct {
	kv storage.Store
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(kv storage.Store) *MessageRepository {
	return &MessageRepository{kv: kv}
}

// Load returns all messages; absent or unreadable storage yields an empty
// collection.
func (r *MessageRepository) Load(ctx context.Context) []models.Message {
	return loadCollection[models.Message](ctx, r.kv, storage.KeyMessages)
}

// Save persists the whole message log.
func (r *MessageRepository) Save(ctx context.Context, messages []models.Message) error {
	return saveCollection(ctx, r.kv, storage.KeyMessages, messages)
}

// Add appends one message and persists the log.
func (r *MessageRepository) Add(ctx context.Context, message models.Message) error {
	messages := r.Load(ctx)
	messages = append(messages, message)
	return r.Save(ctx, messages)
}
