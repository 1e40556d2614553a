package database

import (
	"path/filepath"
	"testing"

	"boardshelf/backend/internal/config"
	"boardshelf/backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	s, err := Open(&config.Config{StoreDriver: config.DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &storage.MemoryStore{}, s)
}

func TestOpen_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelf.db")
	s, err := Open(&config.Config{StoreDriver: config.DriverSQLite, StorePath: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	sq, ok := s.(*storage.SQLiteStore)
	require.True(t, ok)
	assert.Equal(t, path, sq.Path())
}

func TestOpen_PostgresNeedsURL(t *testing.T) {
	_, err := Open(&config.Config{StoreDriver: config.DriverPostgres})
	assert.Error(t, err)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(&config.Config{StoreDriver: "redis"})
	assert.ErrorContains(t, err, "redis")
}
