package event

import (
	"context"
	"errors"
	"testing"

	"github.com/memocal/memocal/internal/event_bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStoreTest() (*Store, *RepositoryStub) {
	repo := NewRepositoryStub()
	store := NewStore(repo, event_bus.NewEventBus())
	return store, repo
}

func TestStore_CreateAssignsUniqueIds(t *testing.T) {
	store, _ := setupStoreTest()
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		_, err := store.Create(ctx, validDraft())
		require.NoError(t, err)
	}

	seen := make(map[string]bool)
	for _, e := range store.Events() {
		assert.NotEmpty(t, e.ID)
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
	assert.Len(t, seen, 50)
}

func TestStore_CreatePersistsFullList(t *testing.T) {
	store, repo := setupStoreTest()
	ctx := context.Background()

	created, err := store.Create(ctx, validDraft())

	require.NoError(t, err)
	assert.Equal(t, "Standup", created.Title)
	assert.Equal(t, 1, repo.SaveCalls)
	require.Len(t, repo.Saved, 1)
	assert.Equal(t, created, repo.Saved[0])
}

func TestStore_CreateKeepsInsertionOrder(t *testing.T) {
	store, _ := setupStoreTest()
	ctx := context.Background()

	first := validDraft()
	first.Title = "First"
	second := validDraft()
	second.Title = "Second"

	_, err := store.Create(ctx, first)
	require.NoError(t, err)
	_, err = store.Create(ctx, second)
	require.NoError(t, err)

	events := store.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "First", events[0].Title)
	assert.Equal(t, "Second", events[1].Title)
}

func TestStore_UpdateReplacesRecord(t *testing.T) {
	store, repo := setupStoreTest()
	ctx := context.Background()

	created, err := store.Create(ctx, validDraft())
	require.NoError(t, err)

	updated := created
	updated.Title = "Renamed standup"
	require.NoError(t, store.Update(ctx, updated))

	events := store.Events()
	require.Len(t, events, 1)
	assert.Equal(t, created.ID, events[0].ID)
	assert.Equal(t, "Renamed standup", events[0].Title)
	assert.Equal(t, 2, repo.SaveCalls, "update re-persists the whole list")
}

func TestStore_UpdateUnknownId(t *testing.T) {
	store, repo := setupStoreTest()
	ctx := context.Background()

	_, err := store.Create(ctx, validDraft())
	require.NoError(t, err)

	err = store.Update(ctx, Event{ID: "missing", Title: "Ghost"})

	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.Len(t, store.Events(), 1)
	assert.Equal(t, 1, repo.SaveCalls, "nothing re-persisted")
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	store, repo := setupStoreTest()
	ctx := context.Background()

	created, err := store.Create(ctx, validDraft())
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))
	assert.Empty(t, store.Events())
	saveCallsAfterFirst := repo.SaveCalls

	// The second delete is a no-op.
	require.NoError(t, store.Delete(ctx, created.ID))
	assert.Empty(t, store.Events())
	assert.Equal(t, saveCallsAfterFirst, repo.SaveCalls)
}

func TestStore_DeleteUnknownId(t *testing.T) {
	store, _ := setupStoreTest()
	ctx := context.Background()

	created, err := store.Create(ctx, validDraft())
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "never-existed"))

	events := store.Events()
	require.Len(t, events, 1)
	assert.Equal(t, created.ID, events[0].ID)
}

func TestStore_CreateSurvivesWriteFailure(t *testing.T) {
	store, repo := setupStoreTest()
	repo.SaveErr = errors.New("disk full")
	ctx := context.Background()

	created, err := store.Create(ctx, validDraft())

	assert.Error(t, err, "write failure is propagated")
	assert.NotEmpty(t, created.ID)
	require.Len(t, store.Events(), 1, "in-memory state keeps the event")
	assert.Equal(t, created.ID, store.Events()[0].ID)
}

func TestStore_LoadFailsSoft(t *testing.T) {
	store, repo := setupStoreTest()
	repo.LoadErr = errors.New("medium unavailable")

	store.Load(context.Background())

	assert.Empty(t, store.Events())
}

func TestStore_LoadReplacesState(t *testing.T) {
	repo := NewRepositoryStub()
	repo.Saved = []Event{
		{ID: "a", Title: "Persisted", Date: "2024-06-03", Time: "09:00", Duration: 30, Recurrence: RecurrenceNone},
	}
	store := NewStore(repo, event_bus.NewEventBus())

	store.Load(context.Background())

	events := store.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Persisted", events[0].Title)
}

func TestStore_MutationsPublishBusEvents(t *testing.T) {
	repo := NewRepositoryStub()
	bus := event_bus.NewEventBus()
	store := NewStore(repo, bus)
	ctx := context.Background()

	var created, updated, deleted int
	event_bus.SubscribeTyped[event_bus.CalendarEventCreated](bus, event_bus.CalendarEventCreatedType,
		func(e event_bus.EventT[event_bus.CalendarEventCreated]) error {
			created++
			return nil
		})
	event_bus.SubscribeTyped[event_bus.CalendarEventUpdated](bus, event_bus.CalendarEventUpdatedType,
		func(e event_bus.EventT[event_bus.CalendarEventUpdated]) error {
			updated++
			return nil
		})
	event_bus.SubscribeTyped[event_bus.CalendarEventDeleted](bus, event_bus.CalendarEventDeletedType,
		func(e event_bus.EventT[event_bus.CalendarEventDeleted]) error {
			deleted++
			return nil
		})

	e, err := store.Create(ctx, validDraft())
	require.NoError(t, err)
	require.NoError(t, store.Update(ctx, e))
	require.NoError(t, store.Delete(ctx, e.ID))
	require.NoError(t, store.Delete(ctx, e.ID), "no event published for a no-op delete")

	assert.Equal(t, 1, created)
	assert.Equal(t, 1, updated)
	assert.Equal(t, 1, deleted)
}
