package session

import (
	"context"
	"sync"
)

// MemoryDirectory keeps sessions for the lifetime of the process.
type MemoryDirectory struct {
	mu       sync.RWMutex
	sessions map[string]string
}

// NewMemoryDirectory creates an empty in-memory directory.
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{sessions: make(map[string]string)}
}

func (d *MemoryDirectory) Lookup(ctx context.Context, userID string) (string, bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	id, ok := d.sessions[userID]
	return id, ok, nil
}

func (d *MemoryDirectory) Store(ctx context.Context, userID, documentID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sessions[userID] = documentID
	return nil
}

// Len returns the number of cached sessions.
func (d *MemoryDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.sessions)
}
