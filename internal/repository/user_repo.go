package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"otbasy/internal/models"
	"otbasy/internal/storage"
)

// UserRepository persists the single session user.
type UserRepository struct {
	kv storage.Store
}

// NewUserRepository creates a new user repository
func NewUserRepository(kv storage.Store) *UserRepository {
	return &UserRepository{kv: kv}
}

// Load returns the persisted user, or nil when none is stored or the slot
// cannot be decoded.
func (r *UserRepository) Load(ctx context.Context) *models.User {
	raw, ok := r.kv.Get(ctx, storage.KeyUser)
	if !ok {
		return nil
	}
	user := &models.User{}
	if err := json.Unmarshal([]byte(raw), user); err != nil {
		log.Printf("repository: corrupt %s slot, treating as absent: %v", storage.KeyUser, err)
		return nil
	}
	return user
}

// Save persists the user.
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return r.kv.Set(ctx, storage.KeyUser, string(data))
}

// Clear removes the persisted user. Clearing an absent user is not an error.
func (r *UserRepository) Clear(ctx context.Context) error {
	return r.kv.Remove(ctx, storage.KeyUser)
}
