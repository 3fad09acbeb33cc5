package repository

import (
	"context"

	"otbasy/internal/models"
	"otbasy/internal/storage"
)

// FamilyRepository persists the family collection.
type FamilyRepository struct {
	kv storage.Store
}

// NewFamilyRepository creates a new family repository
func NewFamilyRepository(kv storage.Store) *FamilyRepository {
	return &FamilyRepository{kv: kv}
}

// Load returns all families; absent or unreadable storage yields an empty
// collection.
func (r *FamilyRepository) Load(ctx context.Context) []models.Family {
	return loadCollection[models.Family](ctx, r.kv, storage.KeyFamilies)
}

// Save persists the whole family collection.
func (r *FamilyRepository) Save(ctx context.Context, families []models.Family) error {
	return saveCollection(ctx, r.kv, storage.KeyFamilies, families)
}

// Add appends one family and persists the collection.
func (r *FamilyRepository) Add(ctx context.Context, family models.Family) error {
	families := r.Load(ctx)
	families = append(families, family)
	return r.Save(ctx, families)
}

// Update applies a mutation to the family with the given id and persists the
// collection. Updating an unknown id is a no-op.
func (r *FamilyRepository) Update(ctx context.Context, familyID string, apply func(*models.Family)) error {
	families := r.Load(ctx)
	for i := range families {
		if families[i].ID == familyID {
			apply(&families[i])
			return r.Save(ctx, families)
		}
	}
	return nil
}
