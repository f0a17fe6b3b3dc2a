package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type memoryDocument struct {
	name   string
	shared bool
	rows   [][]string
}

// MemoryStore implements Store interface with in-memory storage
type MemoryStore struct {
	mu sync.RWMutex

	documents map[string]*memoryDocument
	baseURL   string
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		documents: make(map[string]*memoryDocument),
		baseURL:   "http://localhost:8111/ledger",
	}
}

// Document operations

func (m *MemoryStore) CreateDocument(ctx context.Context, name string) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	m.documents[id] = &memoryDocument{name: name, rows: [][]string{}}
	return &Document{ID: id, Name: name}, nil
}

func (m *MemoryStore) FindDocument(ctx context.Context, name string) (*Document, error) {
	docs, err := m.ListDocuments(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return docs[0], nil
}

func (m *MemoryStore) OpenDocument(ctx context.Context, id string) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.documents[id]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", id, ErrNotFound)
	}
	return &Document{ID: id, Name: doc.name}, nil
}

func (m *MemoryStore) ListDocuments(ctx context.Context, name string) ([]*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var docs []*Document
	for id, doc := range m.documents {
		if name == "" || doc.name == name {
			docs = append(docs, &Document{ID: id, Name: doc.name})
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (m *MemoryStore) DeleteDocument(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.documents[id]; !ok {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	delete(m.documents, id)
	return nil
}

func (m *MemoryStore) ShareDocument(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.documents[id]
	if !ok {
		return fmt.Errorf("share %s: %w", id, ErrNotFound)
	}
	doc.shared = true
	return nil
}

func (m *MemoryStore) DocumentURL(id string) string {
	return fmt.Sprintf("%s/%s/edit", m.baseURL, id)
}

// Row operations

func (m *MemoryStore) ReadRows(ctx context.Context, id string) ([][]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.documents[id]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", id, ErrNotFound)
	}
	rows := make([][]string, len(doc.rows))
	for i, row := range doc.rows {
		rows[i] = append([]string(nil), row...)
	}
	return rows, nil
}

func (m *MemoryStore) AppendRow(ctx context.Context, id string, cells []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.documents[id]
	if !ok {
		return fmt.Errorf("append %s: %w", id, ErrNotFound)
	}
	doc.rows = append(doc.rows, append([]string(nil), cells...))
	return nil
}

func (m *MemoryStore) InsertRow(ctx context.Context, id string, index int, cells []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.documents[id]
	if !ok {
		return fmt.Errorf("insert %s: %w", id, ErrNotFound)
	}
	if index < 0 || index > len(doc.rows) {
		return &Error{Code: CodeInvalid, Op: "insert", Cause: fmt.Errorf("row %d out of range", index)}
	}
	doc.rows = append(doc.rows, nil)
	copy(doc.rows[index+1:], doc.rows[index:])
	doc.rows[index] = append([]string(nil), cells...)
	return nil
}

func (m *MemoryStore) UpdateRow(ctx context.Context, id string, index int, cells []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.documents[id]
	if !ok {
		return fmt.Errorf("update %s: %w", id, ErrNotFound)
	}
	// Writing past the end grows the sheet, the same as a range update.
	for len(doc.rows) <= index {
		doc.rows = append(doc.rows, []string{})
	}
	doc.rows[index] = append([]string(nil), cells...)
	return nil
}

func (m *MemoryStore) UpdateCell(ctx context.Context, id string, row, col int, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.documents[id]
	if !ok {
		return fmt.Errorf("update cell %s: %w", id, ErrNotFound)
	}
	if row < 0 || col < 0 {
		return &Error{Code: CodeInvalid, Op: "update cell", Cause: fmt.Errorf("cell (%d,%d) out of range", row, col)}
	}
	for len(doc.rows) <= row {
		doc.rows = append(doc.rows, []string{})
	}
	for len(doc.rows[row]) <= col {
		doc.rows[row] = append(doc.rows[row], "")
	}
	doc.rows[row][col] = value
	return nil
}

func (m *MemoryStore) DeleteRow(ctx context.Context, id string, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.documents[id]
	if !ok {
		return fmt.Errorf("delete row %s: %w", id, ErrNotFound)
	}
	if index < 0 || index >= len(doc.rows) {
		return &Error{Code: CodeInvalid, Op: "delete row", Cause: fmt.Errorf("row %d out of range", index)}
	}
	doc.rows = append(doc.rows[:index], doc.rows[index+1:]...)
	return nil
}

// Resize only validates the document; memory rows grow on demand.
func (m *MemoryStore) Resize(ctx context.Context, id string, rows, cols int) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.documents[id]; !ok {
		return fmt.Errorf("resize %s: %w", id, ErrNotFound)
	}
	return nil
}

// IsShared reports whether ShareDocument was called for id.
func (m *MemoryStore) IsShared(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.documents[id]
	return ok && doc.shared
}
