package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/castlemilk/budgetbot/internal/session"
	"github.com/castlemilk/budgetbot/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolve_CreatesAndInitializes(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	sessions := session.NewMemoryDirectory()
	r := NewResolver(mem, nil, sessions)

	doc, err := r.Resolve(ctx, "919800000001")
	require.NoError(t, err)
	assert.Equal(t, "Budget_919800000001", doc.Name)
	assert.True(t, mem.IsShared(doc.ID))

	rows, err := mem.ReadRows(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, MarkerCells("0"), rows[1])

	id, ok, _ := sessions.Lookup(ctx, "919800000001")
	assert.True(t, ok)
	assert.Equal(t, doc.ID, id)

	again, err := r.Resolve(ctx, "919800000001")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, again.ID)
}

func TestResolve_RehydratesByName(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()

	first, err := NewResolver(mem, nil, session.NewMemoryDirectory()).Resolve(ctx, "42")
	require.NoError(t, err)

	// A restarted process starts with an empty directory.
	sessions := session.NewMemoryDirectory()
	doc, err := NewResolver(mem, nil, sessions).Resolve(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, first.ID, doc.ID)

	docs, _ := mem.ListDocuments(ctx, "Budget_42")
	assert.Len(t, docs, 1)
	id, ok, _ := sessions.Lookup(ctx, "42")
	assert.True(t, ok)
	assert.Equal(t, first.ID, id)
}

func TestResolve_StaleSessionFallsBackToName(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	sessions := session.NewMemoryDirectory()
	require.NoError(t, sessions.Store(ctx, "7", "deleted-doc"))

	doc, err := NewResolver(mem, nil, sessions).Resolve(ctx, "7")
	require.NoError(t, err)
	assert.NotEqual(t, "deleted-doc", doc.ID)

	id, _, _ := sessions.Lookup(ctx, "7")
	assert.Equal(t, doc.ID, id)
}

func TestReset_ReplacesDocument(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	sessions := session.NewMemoryDirectory()
	r := NewResolver(mem, nil, sessions)

	old, err := r.Resolve(ctx, "55")
	require.NoError(t, err)
	require.NoError(t, mem.AppendRow(ctx, old.ID, []string{"t", "Food", "100", ""}))

	fresh, err := r.Reset(ctx, "55")
	require.NoError(t, err)
	assert.NotEqual(t, old.ID, fresh.ID)

	_, err = mem.OpenDocument(ctx, old.ID)
	assert.True(t, errors.Is(err, store.ErrNotFound))

	found, err := mem.FindDocument(ctx, "Budget_55")
	require.NoError(t, err)
	assert.Equal(t, fresh.ID, found.ID)

	rows, err := mem.ReadRows(ctx, fresh.ID)
	require.NoError(t, err)
	l := Parse(rows)
	assert.Empty(t, l.Entries)
	require.NotNil(t, l.Marker)
	assert.Equal(t, "0", l.Marker.Raw)

	id, _, _ := sessions.Lookup(ctx, "55")
	assert.Equal(t, fresh.ID, id)
}

func TestCreate_DecorationFailuresAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mem := store.NewMemoryStore()
	decorator := store.NewMockDecorator(ctrl)

	decorator.EXPECT().AddSummaryChart(ctx, gomock.Any()).Return(errors.New("chart quota exceeded"))
	decorator.EXPECT().MoveToFolder(ctx, gomock.Any()).Return(errors.New("folder missing"))

	r := NewResolver(mem, decorator, session.NewMemoryDirectory())
	doc, err := r.Resolve(ctx, "99")
	require.NoError(t, err)

	rows, err := mem.ReadRows(ctx, doc.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestCreate_HeaderFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockStore := store.NewMockStore(ctrl)

	mockStore.EXPECT().FindDocument(ctx, "Budget_1").Return(nil, store.ErrNotFound)
	mockStore.EXPECT().CreateDocument(ctx, "Budget_1").Return(&store.Document{ID: "d1", Name: "Budget_1"}, nil)
	mockStore.EXPECT().ShareDocument(ctx, "d1").Return(errors.New("sharing disabled"))
	mockStore.EXPECT().Resize(ctx, "d1", InitialRows, InitialCols).Return(nil)
	mockStore.EXPECT().UpdateRow(ctx, "d1", 0, Header).Return(&store.Error{Code: store.CodeUnavailable, Op: "values.update"})

	sessions := session.NewMemoryDirectory()
	_, err := NewResolver(mockStore, nil, sessions).Resolve(ctx, "1")
	require.Error(t, err)
	assert.Equal(t, 0, sessions.Len())
}
