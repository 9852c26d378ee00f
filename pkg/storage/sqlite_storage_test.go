package storage

import (
	"context"
	"testing"

	"github.com/memocal/memocal/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLiteStorage(t *testing.T) *SQLiteStorage {
	db := test_utils.SetupTestDB(t)
	return NewSQLiteStorage(db)
}

func TestSQLiteStorage_ReadMissingKey(t *testing.T) {
	s := setupSQLiteStorage(t)

	value, err := s.Read(context.Background(), "calendar-events")

	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestSQLiteStorage_WriteThenRead(t *testing.T) {
	s := setupSQLiteStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "calendar-events", `[{"id":"a"}]`))

	value, err := s.Read(ctx, "calendar-events")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, `[{"id":"a"}]`, *value)
}

func TestSQLiteStorage_WriteOverwrites(t *testing.T) {
	s := setupSQLiteStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "calendar-events", "first"))
	require.NoError(t, s.Write(ctx, "calendar-events", "second"))

	value, err := s.Read(ctx, "calendar-events")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "second", *value)
}

func TestSQLiteStorage_KeysAreIndependent(t *testing.T) {
	s := setupSQLiteStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "calendar-events", "events"))
	require.NoError(t, s.Write(ctx, "other", "other value"))

	value, err := s.Read(ctx, "calendar-events")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "events", *value)
}
