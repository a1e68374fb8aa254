package service

import (
	"path/filepath"
	"testing"

	"poseidon/database"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/require"

	"poseidon/logger"
)

func init() {
	logger.InitLogger(logging.ERROR)
}

// setupTestDB points the shared database handle at a throwaway SQLite file.
func setupTestDB(t *testing.T) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "poseidon-test.db")
	require.NoError(t, database.InitDB(dbPath))
	t.Cleanup(func() {
		_ = database.CloseDB()
	})
}
