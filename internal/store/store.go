package store

import (
	"context"
	"errors"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// ErrNotFound is returned when a document lookup matches nothing.
var ErrNotFound = errors.New("document not found")

// Document identifies a ledger document in the backing store.
type Document struct {
	ID   string
	Name string
}

// Store defines the row-level operations the ledger needs from a spreadsheet
// backend. Row and column indexes are zero-based; row 0 is the header.
type Store interface {
	// Document operations
	CreateDocument(ctx context.Context, name string) (*Document, error)
	FindDocument(ctx context.Context, name string) (*Document, error)
	OpenDocument(ctx context.Context, id string) (*Document, error)
	ListDocuments(ctx context.Context, name string) ([]*Document, error)
	DeleteDocument(ctx context.Context, id string) error
	ShareDocument(ctx context.Context, id string) error
	DocumentURL(id string) string

	// Row operations
	ReadRows(ctx context.Context, id string) ([][]string, error)
	AppendRow(ctx context.Context, id string, cells []string) error
	InsertRow(ctx context.Context, id string, index int, cells []string) error
	UpdateRow(ctx context.Context, id string, index int, cells []string) error
	UpdateCell(ctx context.Context, id string, row, col int, value string) error
	DeleteRow(ctx context.Context, id string, index int) error
	Resize(ctx context.Context, id string, rows, cols int) error
}

// Decorator performs best-effort work on a freshly created document. Failures
// are reported to the caller but never make the document unusable.
type Decorator interface {
	AddSummaryChart(ctx context.Context, id string) error
	MoveToFolder(ctx context.Context, id string) error
}
