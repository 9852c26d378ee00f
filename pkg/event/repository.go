package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/memocal/memocal/pkg/storage"
	log "github.com/sirupsen/logrus"
)

// Repository persists the full event sequence as one serialized document.
// There is no incremental persistence: SaveAll always rewrites the whole list.
type Repository interface {
	Load(ctx context.Context) ([]Event, error)
	SaveAll(ctx context.Context, events []Event) error
}

// StorageRepository keeps the event list under a single key of the
// key/value storage medium, serialized as JSON.
type StorageRepository struct {
	storage storage.Storage
	key     string
}

func NewStorageRepository(storage storage.Storage, key string) *StorageRepository {
	return &StorageRepository{storage: storage, key: key}
}

// Load reads the stored event list. A missing key yields an empty list and
// corrupt data is treated the same way: the previous state is unrecoverable
// and the calendar starts over rather than refusing to start. Medium errors
// are propagated so the caller can decide.
func (r *StorageRepository) Load(ctx context.Context) ([]Event, error) {
	raw, err := r.storage.Read(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read events from storage: %w", err)
	}
	if raw == nil {
		return []Event{}, nil
	}

	var events []Event
	if err := json.Unmarshal([]byte(*raw), &events); err != nil {
		log.Warnf("stored event list under %q is not valid JSON, starting empty: %v", r.key, err)
		return []Event{}, nil
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}

func (r *StorageRepository) SaveAll(ctx context.Context, events []Event) error {
	if events == nil {
		events = []Event{}
	}
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to serialize event list: %w", err)
	}
	if err := r.storage.Write(ctx, r.key, string(raw)); err != nil {
		return fmt.Errorf("failed to write events to storage: %w", err)
	}
	return nil
}
