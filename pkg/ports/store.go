package ports

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrSessionNotFound is returned when a session ID cannot be found in the
// store.
var ErrSessionNotFound = errors.New("session not found")

// Snapshot is the serialized form of a runner session: the model name, the
// control state rendered as a string, and the memory as raw JSON. The
// store never interprets the memory payload.
type Snapshot struct {
	Model  string          `json:"model"`
	State  string          `json:"state"`
	Memory json.RawMessage `json:"memory"`
	Steps  int             `json:"steps"`
}

// SessionStore persists runner session snapshots.
type SessionStore interface {
	// Save persists the snapshot for a given session ID.
	Save(ctx context.Context, sessionID string, snap *Snapshot) error

	// Load retrieves the snapshot for a given session ID.
	// Returns ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*Snapshot, error)

	// Delete removes the snapshot for a given session ID.
	Delete(ctx context.Context, sessionID string) error
}
