package repository

import (
	"context"

	"otbasy/internal/models"
	"otbasy/internal/storage"
)

// CapsuleRepository persists the time capsule collection.
type CapsuleRepository struct {
	kv storage.Store
}

// NewCapsuleRepository creates a new capsule repository
func NewCapsuleRepository(kv storage.Store) *CapsuleRepository {
	return &CapsuleRepository{kv: kv}
}

// Load returns all capsules; absent or unreadable storage yields an empty
// collection.
func (r *CapsuleRepository) Load(ctx context.Context) []models.TimeCapsule {
	return loadCollection[models.TimeCapsule](ctx, r.kv, storage.KeyTimeCapsules)
}

// Save persists the whole capsule collection.
func (r *CapsuleRepository) Save(ctx context.Context, capsules []models.TimeCapsule) error {
	return saveCollection(ctx, r.kv, storage.KeyTimeCapsules, capsules)
}

// Add appends one capsule and persists the collection.
func (r *CapsuleRepository) Add(ctx context.Context, capsule models.TimeCapsule) error {
	capsules := r.Load(ctx)
	capsules = append(capsules, capsule)
	return r.Save(ctx, capsules)
}

// Update applies a mutation to the capsule with the given id and persists
// the collection. Updating an unknown id is a no-op.
func (r *CapsuleRepository) Update(ctx context.Context, capsuleID string, apply func(*models.TimeCapsule)) error {
	capsules := r.Load(ctx)
	for i := range capsules {
		if capsules[i].ID == capsuleID {
			apply(&capsules[i])
			return r.Save(ctx, capsules)
		}
	}
	return nil
}

// Delete removes the capsule with the given id and persists the collection.
func (r *CapsuleRepository) Delete(ctx context.Context, capsuleID string) error {
	capsules := r.Load(ctx)
	filtered := capsules[:0]
	for _, capsule := range capsules {
		if capsule.ID != capsuleID {
			filtered = append(filtered, capsule)
		}
	}
	return r.Save(ctx, filtered)
}
