package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	apperrors "task-tracker/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleDatabaseError(t *testing.T) {
	originalErr := errors.New("database connection failed")
	result := HandleDatabaseError("test operation", originalErr)

	assert.NotNil(t, result)
	assert.Contains(t, result.Error(), "test operation")
	assert.Contains(t, result.Error(), "database connection failed")
	assert.True(t, apperrors.IsErrorType(result, apperrors.ErrorTypeDatabase))
}

func TestHandleDatabaseError_Deadline(t *testing.T) {
	result := HandleDatabaseError("query tasks", fmt.Errorf("exec: %w", context.DeadlineExceeded))
	assert.True(t, apperrors.IsErrorType(result, apperrors.ErrorTypeTimeout))
}

func TestIsUniqueViolation(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "unique.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE t (name TEXT UNIQUE, other TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO t (name, other) VALUES ('a', 'x')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO t (name, other) VALUES ('a', 'y')`)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	_, err = db.Exec(`INSERT INTO t (name) VALUES ('b')`)
	require.Error(t, err)
	assert.False(t, IsUniqueViolation(err), "NOT NULL failures are not uniqueness failures")

	assert.False(t, IsUniqueViolation(errors.New("UNIQUE constraint failed")))
	assert.False(t, IsUniqueViolation(nil))
}
