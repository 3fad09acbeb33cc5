package repository

import (
	"context"

	"otbasy/internal/models"
	"otbasy/internal/storage"
)

// AIMessageRepository persists the assistant conversation log.
type AIMessageRepository struct {
	kv storage.Store
}

// NewAIMessageRepository creates a new assistant message repository
func NewAIMessageRepository(kv storage.Store) *AIMessageRepository {
	return &AIMessageRepository{kv: kv}
}

// Load returns the conversation log; absent or unreadable storage yields an
// empty collection.
func (r *AIMessageRepository) Load(ctx context.Context) []models.AIMessage {
	return loadCollection[models.AIMessage](ctx, r.kv, storage.KeyAIMessages)
}

// Save persists the whole conversation log.
func (r *AIMessageRepository) Save(ctx context.Context, messages []models.AIMessage) error {
	return saveCollection(ctx, r.kv, storage.KeyAIMessages, messages)
}

// Add appends one message and persists the log.
func (r *AIMessageRepository) Add(ctx context.Context, message models.AIMessage) error {
	messages := r.Load(ctx)
	messages = append(messages, message)
	return r.Save(ctx, messages)
}

// Clear removes the whole conversation log from storage.
func (r *AIMessageRepository) Clear(ctx context.Context) error {
	return r.kv.Remove(ctx, storage.KeyAIMessages)
}
