package event

import (
	"context"
	"sync"
)

// RepositoryStub is an in-memory Repository with injectable failures.
type RepositoryStub struct {
	mu        sync.Mutex
	Saved     []Event
	SaveCalls int
	LoadErr   error
	SaveErr   error
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{Saved: []Event{}}
}

func (r *RepositoryStub) Load(ctx context.Context) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	events := make([]Event, len(r.Saved))
	copy(events, r.Saved)
	return events, nil
}

func (r *RepositoryStub) SaveAll(ctx context.Context, events []Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.SaveCalls++
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.Saved = make([]Event, len(events))
	copy(r.Saved, events)
	return nil
}
