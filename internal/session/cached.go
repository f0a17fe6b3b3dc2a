package session

import (
	"context"
	"log"
)

// CachedDirectory serves lookups from an in-memory front directory and falls
// back to a durable one, warming the front on a hit.
type CachedDirectory struct {
	front *MemoryDirectory
	back  Directory
}

// NewCachedDirectory layers an in-memory cache over back.
func NewCachedDirectory(back Directory) *CachedDirectory {
	return &CachedDirectory{front: NewMemoryDirectory(), back: back}
}

func (d *CachedDirectory) Lookup(ctx context.Context, userID string) (string, bool, error) {
	if id, ok, _ := d.front.Lookup(ctx, userID); ok {
		return id, true, nil
	}
	id, ok, err := d.back.Lookup(ctx, userID)
	if err != nil || !ok {
		return "", false, err
	}
	_ = d.front.Store(ctx, userID, id)
	return id, true, nil
}

// Store writes through to the durable directory. A durable write failure is
// logged and the in-memory entry is still kept.
func (d *CachedDirectory) Store(ctx context.Context, userID, documentID string) error {
	_ = d.front.Store(ctx, userID, documentID)
	if err := d.back.Store(ctx, userID, documentID); err != nil {
		log.Printf("[Session] Failed to persist session for user %s: %v", userID, err)
	}
	return nil
}
