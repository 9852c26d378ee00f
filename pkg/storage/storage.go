package storage

import "context"

// Storage is the persistent key/value medium the event repository depends on.
// Read returns nil when the key has never been written.
type Storage interface {
	Read(ctx context.Context, key string) (*string, error)
	Write(ctx context.Context, key string, value string) error
}
