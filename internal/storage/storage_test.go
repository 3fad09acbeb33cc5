package storage

import (
	"context"
	"testing"
)

func TestMemoryStoreContract(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("get absent slot", func(t *testing.T) {
		if _, ok := store.Get(ctx, KeyUser); ok {
			t.Error("Get() on absent slot should report ok=false")
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := store.Set(ctx, KeyUser, `{"id":"1"}`); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		value, ok := store.Get(ctx, KeyUser)
		if !ok || value != `{"id":"1"}` {
			t.Errorf("Get() = %q, %v; want stored value", value, ok)
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		if err := store.Set(ctx, KeyUser, `{"id":"2"}`); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if value, _ := store.Get(ctx, KeyUser); value != `{"id":"2"}` {
			t.Errorf("Get() after overwrite = %q, want new value", value)
		}
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		if err := store.Remove(ctx, KeyUser); err != nil {
			t.Fatalf("Remove() error = %v", err)
		}
		if err := store.Remove(ctx, KeyUser); err != nil {
			t.Errorf("Remove() on absent slot error = %v, want nil", err)
		}
		if _, ok := store.Get(ctx, KeyUser); ok {
			t.Error("Get() after Remove() should report ok=false")
		}
	})

	t.Run("remove many", func(t *testing.T) {
		for _, key := range AllKeys() {
			if err := store.Set(ctx, key, "[]"); err != nil {
				t.Fatalf("Set(%s) error = %v", key, err)
			}
		}
		if err := store.RemoveMany(ctx, AllKeys()); err != nil {
			t.Fatalf("RemoveMany() error = %v", err)
		}
		for _, key := range AllKeys() {
			if _, ok := store.Get(ctx, key); ok {
				t.Errorf("slot %s should be gone after RemoveMany()", key)
			}
		}
	})
}

func TestAllKeysCoversEveryCollection(t *testing.T) {
	keys := AllKeys()
	want := []string{
		KeyUser, KeyFamilies, KeyMessages, KeyTasks,
		KeyAIMessages, KeyEvents, KeyTimeCapsules, KeySettings,
	}
	if len(keys) != len(want) {
		t.Fatalf("AllKeys() returned %d keys, want %d", len(keys), len(want))
	}
	for i, key := range want {
		if keys[i] != key {
			t.Errorf("AllKeys()[%d] = %s, want %s", i, keys[i], key)
		}
	}
}
