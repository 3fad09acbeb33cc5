// Package repository serializes each entity collection to its storage slot
// and back. Reads are tolerant: a missing slot, a backend failure or corrupt
// JSON all decode to an empty collection so the application always starts
// from a valid state. Writes propagate failures to the caller.
//
// Mutation helpers follow read-modify-write of the whole collection, which
// is O(collection size) per mutation. Acceptable at the volumes this system
// holds (tens of entities); a known limitation, not a defect.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"otbasy/internal/storage"
)

// loadCollection decodes the JSON array stored in a slot. Absent or corrupt
// slots decode to an empty collection.
func loadCollection[T any](ctx context.Context, kv storage.Store, key string) []T {
	raw, ok := kv.Get(ctx, key)
	if !ok {
		return nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("repository: corrupt %s slot, starting empty: %v", key, err)
		return nil
	}
	return items
}

// saveCollection encodes the whole collection into its slot. A nil
// collection is stored as an empty JSON array, never "null".
func saveCollection[T any](ctx context.Context, kv storage.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return kv.Set(ctx, key, string(data))
}
