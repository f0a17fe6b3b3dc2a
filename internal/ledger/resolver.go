package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/castlemilk/budgetbot/internal/session"
	"github.com/castlemilk/budgetbot/internal/store"
)

// DocumentName is the deterministic document name for a user.
func DocumentName(userID string) string {
	return "Budget_" + userID
}

// Decoration reports the outcome of the best-effort steps run on a new
// document. A nil field means the step succeeded or was not attempted.
type Decoration struct {
	Chart      error
	Relocation error
}

// OK reports whether every attempted step succeeded.
func (d Decoration) OK() bool {
	return d.Chart == nil && d.Relocation == nil
}

// Resolver finds or creates the ledger document for a user.
type Resolver struct {
	store     store.Store
	decorator store.Decorator
	sessions  session.Directory
}

// NewResolver creates a resolver. decorator may be nil.
func NewResolver(s store.Store, decorator store.Decorator, sessions session.Directory) *Resolver {
	return &Resolver{store: s, decorator: decorator, sessions: sessions}
}

// Resolve returns the user's document: the cached session, then a lookup by
// name, then a freshly initialized one. The result is cached before returning.
func (r *Resolver) Resolve(ctx context.Context, userID string) (*store.Document, error) {
	if id, ok, err := r.sessions.Lookup(ctx, userID); err != nil {
		log.Printf("[Resolver] Session lookup failed for user %s: %v", userID, err)
	} else if ok {
		doc, err := r.store.OpenDocument(ctx, id)
		if err == nil {
			return doc, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("open document %s: %w", id, err)
		}
		log.Printf("[Resolver] Cached document %s for user %s is gone, resolving by name", id, userID)
	}

	name := DocumentName(userID)
	doc, err := r.store.FindDocument(ctx, name)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		doc, err = r.Create(ctx, name)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("find document %s: %w", name, err)
	}

	r.remember(ctx, userID, doc.ID)
	return doc, nil
}

// Reset deletes the user's existing document, if one can be found by name,
// and replaces it with a fresh one.
func (r *Resolver) Reset(ctx context.Context, userID string) (*store.Document, error) {
	name := DocumentName(userID)
	if old, err := r.store.FindDocument(ctx, name); err == nil {
		if err := r.store.DeleteDocument(ctx, old.ID); err != nil {
			log.Printf("[Resolver] Failed to delete document %s for user %s: %v", old.ID, userID, err)
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("[Resolver] Failed to look up document %s: %v", name, err)
	}

	doc, err := r.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	r.remember(ctx, userID, doc.ID)
	return doc, nil
}

// Create makes and initializes a new document: shared read-only by link,
// resized, header and a zero budget marker written, then decorated.
func (r *Resolver) Create(ctx context.Context, name string) (*store.Document, error) {
	doc, err := r.store.CreateDocument(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create document %s: %w", name, err)
	}
	if err := r.store.ShareDocument(ctx, doc.ID); err != nil {
		log.Printf("[Resolver] Failed to share document %s: %v", doc.ID, err)
	}
	if err := r.store.Resize(ctx, doc.ID, InitialRows, InitialCols); err != nil {
		log.Printf("[Resolver] Failed to resize document %s: %v", doc.ID, err)
	}
	if err := r.store.UpdateRow(ctx, doc.ID, 0, Header); err != nil {
		return nil, fmt.Errorf("write header to %s: %w", doc.ID, err)
	}
	if err := r.store.AppendRow(ctx, doc.ID, MarkerCells("0")); err != nil {
		return nil, fmt.Errorf("write budget marker to %s: %w", doc.ID, err)
	}

	if d := r.decorate(ctx, doc.ID); !d.OK() {
		if d.Chart != nil {
			log.Printf("[Resolver] Error creating chart tab for %s: %v", doc.ID, d.Chart)
		}
		if d.Relocation != nil {
			log.Printf("[Resolver] Error moving %s to folder: %v", doc.ID, d.Relocation)
		}
	}

	log.Printf("[Resolver] Initialized document %s (%s)", doc.ID, name)
	return doc, nil
}

func (r *Resolver) decorate(ctx context.Context, id string) Decoration {
	var d Decoration
	if r.decorator == nil {
		return d
	}
	d.Chart = r.decorator.AddSummaryChart(ctx, id)
	d.Relocation = r.decorator.MoveToFolder(ctx, id)
	return d
}

func (r *Resolver) remember(ctx context.Context, userID, documentID string) {
	if err := r.sessions.Store(ctx, userID, documentID); err != nil {
		log.Printf("[Resolver] Failed to cache session for user %s: %v", userID, err)
	}
}
