package event

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/memocal/memocal/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

var ErrEventNotFound = errors.New("event not found")

// Store owns the canonical in-memory event sequence. Every mutation rewrites
// the whole persisted list through the repository. A failed write leaves the
// in-memory mutation in place; the error is returned so the caller can warn.
type Store struct {
	mu     sync.RWMutex
	repo   Repository
	bus    *event_bus.EventBus
	newId  func() string
	events []Event
}

func NewStore(repo Repository, bus *event_bus.EventBus) *Store {
	return &Store{
		repo:   repo,
		bus:    bus,
		newId:  uuid.NewString,
		events: []Event{},
	}
}

// Load replaces the in-memory sequence with the persisted one. Read failures
// are recovered to an empty calendar and never surface to the caller.
func (s *Store) Load(ctx context.Context) {
	events, err := s.repo.Load(ctx)
	if err != nil {
		log.Warnf("could not load persisted events, starting empty: %v", err)
		events = []Event{}
	}

	s.mu.Lock()
	s.events = events
	s.mu.Unlock()

	log.Infof("loaded %d calendar event(s)", len(events))
}

// Events returns a snapshot of the event sequence in insertion order.
// Display order is the presenters' concern, not the store's.
func (s *Store) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]Event, len(s.events))
	copy(snapshot, s.events)
	return snapshot
}

// Get returns the event with the given id.
func (s *Store) Get(id string) (Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.ID == id {
			return e, nil
		}
	}
	return Event{}, ErrEventNotFound
}

// Create allocates a fresh id, appends the event, and re-persists the list.
// The created event is returned even when persisting fails.
func (s *Store) Create(ctx context.Context, draft Draft) (Event, error) {
	created := Event{
		ID:          s.newId(),
		Title:       draft.Title,
		Description: draft.Description,
		Date:        draft.Date,
		Time:        draft.Time,
		Duration:    draft.Duration,
		Recurrence:  draft.Recurrence,
		Color:       draft.Color,
	}

	s.mu.Lock()
	s.events = append(s.events, created)
	s.mu.Unlock()

	s.publish(ctx, event_bus.CalendarEventCreatedType, event_bus.CalendarEventCreated{
		ID:         created.ID,
		Title:      created.Title,
		Date:       created.Date,
		Time:       created.Time,
		Recurrence: string(created.Recurrence),
	})

	return created, s.persist(ctx, "create")
}

// Update replaces the stored record whose id matches. The whole record is
// replaced; there are no partial patches.
func (s *Store) Update(ctx context.Context, updated Event) error {
	s.mu.Lock()
	found := false
	for i, e := range s.events {
		if e.ID == updated.ID {
			s.events[i] = updated
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return ErrEventNotFound
	}

	s.publish(ctx, event_bus.CalendarEventUpdatedType, event_bus.CalendarEventUpdated{
		ID:    updated.ID,
		Title: updated.Title,
	})

	return s.persist(ctx, "update")
}

// Delete removes the record with the given id. Deleting an unknown id is a
// no-op: the list is untouched and nothing is re-persisted.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	found := false
	for i, e := range s.events {
		if e.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		log.Debugf("delete of unknown event id %s ignored", id)
		return nil
	}

	s.publish(ctx, event_bus.CalendarEventDeletedType, event_bus.CalendarEventDeleted{ID: id})

	return s.persist(ctx, "delete")
}

func (s *Store) persist(ctx context.Context, operation string) error {
	if err := s.repo.SaveAll(ctx, s.Events()); err != nil {
		log.Errorf("failed to persist events after %s: %v", operation, err)
		s.publish(ctx, event_bus.PersistenceFailedType, event_bus.PersistenceFailed{
			Operation: operation,
			Reason:    err.Error(),
		})
		return err
	}
	return nil
}

func (s *Store) publish(ctx context.Context, eventType event_bus.EventType, data any) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, data)); err != nil {
		log.Debugf("event bus publish failed for %s: %v", eventType, err)
	}
}
