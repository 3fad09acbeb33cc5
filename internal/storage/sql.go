package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
)

// SQLStore is the slot store backed by a relational database. One row per
// slot in a single table; the dialect supplies the driver, the upsert
// statement and placeholder syntax.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

func openSQL(dialect Dialect, cfg DialectConfig) (*SQLStore, error) {
	db, err := sql.Open(dialect.DriverName(), dialect.DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Apply dialect-specific configuration
	if err := dialect.ConfigureConnection(db); err != nil {
		return nil, fmt.Errorf("failed to configure connection: %w", err)
	}

	if _, err := db.Exec(dialect.CreateSlotsTableQuery()); err != nil {
		return nil, fmt.Errorf("failed to create slots table: %w", err)
	}

	return &SQLStore{db: db, dialect: dialect}, nil
}

// Get reads one slot. Absent slots and query failures both report ok=false;
// failures are logged, never returned.
func (s *SQLStore) Get(ctx context.Context, key string) (string, bool) {
	query := s.dialect.RewriteQuery("SELECT value FROM slots WHERE name = ?")

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		log.Printf("storage: failed to read slot %s: %v", key, err)
		return "", false
	}
	return value, true
}

// Set overwrites one slot. Failures propagate to the caller.
func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	query := s.dialect.RewriteQuery(s.dialect.UpsertSlotQuery())
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}

// Remove deletes one slot. Deleting an absent slot is not an error.
func (s *SQLStore) Remove(ctx context.Context, key string) error {
	query := s.dialect.RewriteQuery("DELETE FROM slots WHERE name = ?")
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to remove slot %s: %w", key, err)
	}
	return nil
}

// RemoveMany deletes a set of slots. Used only by full data reset; there is
// no transaction across slots.
func (s *SQLStore) RemoveMany(ctx context.Context, keys []string) error {
	for _, key := range keys {
		if err := s.Remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}
