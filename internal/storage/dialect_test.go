package storage

import (
	"strings"
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "sqlite3"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "SELECT value FROM slots WHERE name = ?"
		if result := dialect.RewriteQuery(query); result != query {
			t.Errorf("RewriteQuery() = %v, want unchanged query", result)
		}
	})

	t.Run("UpsertSlotQuery", func(t *testing.T) {
		query := dialect.UpsertSlotQuery()
		if !strings.Contains(query, "ON CONFLICT(name)") {
			t.Errorf("UpsertSlotQuery() = %v, want ON CONFLICT clause", query)
		}
	})
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "postgres"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		result := dialect.RewriteQuery("INSERT INTO slots (name, value) VALUES (?, ?)")
		expected := "INSERT INTO slots (name, value) VALUES ($1, $2)"
		if result != expected {
			t.Errorf("RewriteQuery() = %v, want %v", result, expected)
		}
	})

	t.Run("UpsertSlotQuery", func(t *testing.T) {
		query := dialect.UpsertSlotQuery()
		if !strings.Contains(query, "ON CONFLICT (name)") {
			t.Errorf("UpsertSlotQuery() = %v, want ON CONFLICT clause", query)
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "mysql"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "DELETE FROM slots WHERE name = ?"
		if result := dialect.RewriteQuery(query); result != query {
			t.Errorf("RewriteQuery() = %v, want unchanged query", result)
		}
	})

	t.Run("UpsertSlotQuery", func(t *testing.T) {
		query := dialect.UpsertSlotQuery()
		if !strings.Contains(query, "ON DUPLICATE KEY UPDATE") {
			t.Errorf("UpsertSlotQuery() = %v, want ON DUPLICATE KEY clause", query)
		}
	})
}

func TestRewritePlaceholdersToNumbered(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "no placeholders",
			query:    "SELECT value FROM slots",
			expected: "SELECT value FROM slots",
		},
		{
			name:     "single placeholder",
			query:    "DELETE FROM slots WHERE name = ?",
			expected: "DELETE FROM slots WHERE name = $1",
		},
		{
			name:     "multiple placeholders",
			query:    "INSERT INTO slots (name, value) VALUES (?, ?)",
			expected: "INSERT INTO slots (name, value) VALUES ($1, $2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rewritePlaceholdersToNumbered(tt.query)
			if result != tt.expected {
				t.Errorf("rewritePlaceholdersToNumbered() = %v, want %v", result, tt.expected)
			}
		})
	}
}
