package session

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const sessionsCollection = "ledgerSessions"

// record is the Firestore shape of a session.
type record struct {
	DocumentID string    `firestore:"documentId"`
	UpdatedAt  time.Time `firestore:"updatedAt"`
}

// FirestoreDirectory persists sessions so they survive restarts.
type FirestoreDirectory struct {
	client *firestore.Client
}

// NewFirestoreDirectory creates a Firestore-backed directory
func NewFirestoreDirectory(client *firestore.Client) *FirestoreDirectory {
	return &FirestoreDirectory{client: client}
}

func (d *FirestoreDirectory) Lookup(ctx context.Context, userID string) (string, bool, error) {
	doc, err := d.client.Collection(sessionsCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get session %s: %w", userID, err)
	}

	var rec record
	if err := doc.DataTo(&rec); err != nil {
		return "", false, fmt.Errorf("failed to parse session %s: %w", userID, err)
	}
	if rec.DocumentID == "" {
		return "", false, nil
	}
	return rec.DocumentID, true, nil
}

func (d *FirestoreDirectory) Store(ctx context.Context, userID, documentID string) error {
	_, err := d.client.Collection(sessionsCollection).Doc(userID).Set(ctx, record{
		DocumentID: documentID,
		UpdatedAt:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("set session %s: %w", userID, err)
	}
	return nil
}
