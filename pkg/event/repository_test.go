package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/memocal/memocal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStorageKey = "calendar-events"

func setupRepositoryTest() (*StorageRepository, *storage.StorageStub) {
	stub := storage.NewStorageStub()
	repo := NewStorageRepository(stub, testStorageKey)
	return repo, stub
}

func TestStorageRepository_LoadMissingKey(t *testing.T) {
	repo, _ := setupRepositoryTest()

	events, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NotNil(t, events)
}

func TestStorageRepository_RoundTrip(t *testing.T) {
	repo, _ := setupRepositoryTest()
	ctx := context.Background()

	stored := []Event{
		{ID: "a", Title: "First", Date: "2024-06-03", Time: "09:00", Duration: 30, Recurrence: RecurrenceDaily},
		{ID: "b", Title: "Second", Description: "with notes", Date: "2024-06-04", Time: "14:30", Duration: 60, Recurrence: RecurrenceNone, Color: "#ef4444"},
		{ID: "c", Title: "Third", Date: "2024-06-05", Time: "08:15", Duration: 45, Recurrence: RecurrenceWeekly},
	}

	require.NoError(t, repo.SaveAll(ctx, stored))
	loaded, err := repo.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, loaded, "order-preserving round trip")

	// Saving what was loaded changes nothing.
	require.NoError(t, repo.SaveAll(ctx, loaded))
	reloaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, reloaded)
}

func TestStorageRepository_PersistedFieldNames(t *testing.T) {
	repo, stub := setupRepositoryTest()

	require.NoError(t, repo.SaveAll(context.Background(), []Event{
		{ID: "a", Title: "First", Date: "2024-06-03", Time: "09:00", Duration: 30, Recurrence: RecurrenceDaily},
	}))

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stub.Get(testStorageKey)), &records))
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "a", record["id"])
	assert.Equal(t, "First", record["title"])
	assert.Equal(t, "2024-06-03", record["date"])
	assert.Equal(t, "09:00", record["time"])
	assert.Equal(t, float64(30), record["duration"])
	assert.Equal(t, "daily", record["recurrence"])
	assert.NotContains(t, record, "description", "optional fields are omitted")
	assert.NotContains(t, record, "color")
}

func TestStorageRepository_LoadCorruptData(t *testing.T) {
	repo, stub := setupRepositoryTest()
	stub.Set(testStorageKey, "{not json")

	events, err := repo.Load(context.Background())

	require.NoError(t, err, "corrupt data fails soft")
	assert.Empty(t, events)
}

func TestStorageRepository_LoadReadError(t *testing.T) {
	repo, stub := setupRepositoryTest()
	stub.ReadErr = errors.New("medium unavailable")

	_, err := repo.Load(context.Background())

	assert.Error(t, err)
}

func TestStorageRepository_SaveAllWriteError(t *testing.T) {
	repo, stub := setupRepositoryTest()
	stub.WriteErr = errors.New("disk full")

	err := repo.SaveAll(context.Background(), []Event{{ID: "a", Title: "First"}})

	assert.Error(t, err)
}

func TestStorageRepository_SaveAllNilList(t *testing.T) {
	repo, stub := setupRepositoryTest()

	require.NoError(t, repo.SaveAll(context.Background(), nil))
	assert.Equal(t, "[]", stub.Get(testStorageKey))
}
