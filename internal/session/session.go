// Package session maps messaging users to their ledger documents.
package session

import "context"

// Directory is the user id -> ledger document id mapping shared by every
// request. Implementations must be safe for concurrent use.
type Directory interface {
	// Lookup returns the document id for userID, or ok=false if unknown.
	Lookup(ctx context.Context, userID string) (documentID string, ok bool, err error)
	// Store records documentID for userID, replacing any previous value.
	Store(ctx context.Context, userID, documentID string) error
}
