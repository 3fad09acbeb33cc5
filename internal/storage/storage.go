package storage

import (
	"context"
	"fmt"
	"strings"

	"otbasy/internal/config"
)

// Slot keys. Each entity collection persists as one slot; the layout is
// fixed and shared by every backend.
const (
	KeyUser         = "@user"
	KeyFamilies     = "@families"
	KeyMessages     = "@messages"
	KeyTasks        = "@tasks"
	KeyAIMessages   = "@ai_messages"
	KeyEvents       = "@events"
	KeyTimeCapsules = "@time_capsules"
	KeySettings     = "@settings"
)

// AllKeys returns every known slot key, used by full data reset.
func AllKeys() []string {
	return []string{
		KeyUser,
		KeyFamilies,
		KeyMessages,
		KeyTasks,
		KeyAIMessages,
		KeyEvents,
		KeyTimeCapsules,
		KeySettings,
	}
}

// Store is durable string-keyed slot storage.
//
// Get tolerates failure: an absent slot and a backend error both report
// ok=false, and backend errors are logged rather than propagated, so readers
// always have a valid (possibly empty) starting state. Set propagates
// failures to the caller, which is expected to roll back its optimistic
// in-memory change. Remove is idempotent. There are no transactional
// guarantees across slots.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	RemoveMany(ctx context.Context, keys []string) error
	Close() error
}

// Open creates the slot store selected by config.
func Open(cfg *config.Config) (Store, error) {
	switch strings.ToLower(cfg.StorageType) {
	case "postgres", "postgresql":
		return openSQL(NewPostgresDialect(), DialectConfig{URL: cfg.DatabaseURL})
	case "mysql":
		return openSQL(NewMySQLDialect(), DialectConfig{URL: cfg.DatabaseURL})
	case "redis":
		return OpenRedis(cfg.RedisAddr)
	case "memory":
		return NewMemoryStore(), nil
	case "sqlite", "sqlite3", "":
		return openSQL(NewSQLiteDialect(), DialectConfig{Path: cfg.DatabasePath})
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
}
