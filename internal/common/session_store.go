package common

import "context"

// SessionStore defines the contract for UI session backends.
// Values are JSON-encoded; every entry expires after the store's TTL.
type SessionStore interface {
	// Load decodes the session stored under id into dest.
	// Returns false with a nil error when there is no such session.
	Load(ctx context.Context, id string, dest any) (bool, error)

	// Save stores value under id and restarts its TTL
	Save(ctx context.Context, id string, value any) error

	Delete(ctx context.Context, id string) error

	// Ping reports whether the backend is reachable
	Ping(ctx context.Context) error

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}
