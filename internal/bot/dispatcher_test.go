package bot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/castlemilk/budgetbot/internal/ledger"
	"github.com/castlemilk/budgetbot/internal/session"
	"github.com/castlemilk/budgetbot/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUser = "919812345678"

var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

type harness struct {
	store    *store.MemoryStore
	sessions *session.MemoryDirectory
	bot      *Dispatcher
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	mem := store.NewMemoryStore()
	sessions := session.NewMemoryDirectory()
	resolver := ledger.NewResolver(mem, nil, sessions)
	return &harness{
		store:    mem,
		sessions: sessions,
		bot:      NewDispatcher(mem, resolver, WithClock(func() time.Time { return fixedNow })),
	}
}

func (h *harness) send(t *testing.T, text string) string {
	t.Helper()
	reply, err := h.bot.Handle(context.Background(), testUser, text)
	require.NoError(t, err)
	require.NotEmpty(t, reply)
	return reply
}

func (h *harness) ledger(t *testing.T) *ledger.Ledger {
	t.Helper()
	id, ok, _ := h.sessions.Lookup(context.Background(), testUser)
	require.True(t, ok)
	rows, err := h.store.ReadRows(context.Background(), id)
	require.NoError(t, err)
	return ledger.Parse(rows)
}

func TestHandle_AddThenTotal(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.send(t, "total"), "Total spent: ₹0")

	reply := h.send(t, "Grocery 200")
	assert.Equal(t, "✅ *Added:*\nGrocery ₹200", reply)

	h.send(t, "Fuel 150")
	assert.Contains(t, h.send(t, "total"), "Total spent: ₹350")

	entries := h.ledger(t).Entries
	require.Len(t, entries, 2)
	assert.Equal(t, "2024-05-01 09:30:00", entries[0].Timestamp)
	assert.Equal(t, "", entries[0].Note)
}

func TestHandle_DeleteLastRemovesMostRecent(t *testing.T) {
	h := newHarness(t)
	h.send(t, "Food 100\nTravel 30")
	h.send(t, "Books 70")

	assert.Equal(t, "🗑️ Deleted last entry.", h.send(t, "delete last"))
	assert.Contains(t, h.send(t, "total"), "Total spent: ₹130")
}

func TestHandle_DeleteByPosition(t *testing.T) {
	h := newHarness(t)
	h.send(t, "A 1\nB 2\nC 3")

	assert.Equal(t, "🗑️ Deleted entry #2.", h.send(t, "delete 2"))

	entries := h.ledger(t).Entries
	require.Len(t, entries, 2)
	assert.Equal(t, "A", entries[0].Category)
	assert.Equal(t, "C", entries[1].Category)
}

func TestHandle_DeleteOutOfRangeLeavesEntries(t *testing.T) {
	h := newHarness(t)
	h.send(t, "A 1\nB 2\nC 3")

	assert.Equal(t, "❌ Invalid entry number.", h.send(t, "delete 99"))
	assert.Equal(t, "❌ Invalid entry number.", h.send(t, "delete 0"))
	assert.Len(t, h.ledger(t).Entries, 3)
}

func TestHandle_DeleteErrors(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "⚠️ No entries to delete.", h.send(t, "delete last"))
	assert.Equal(t, "⚠️ No entries to delete.", h.send(t, "delete everything"))

	h.send(t, "A 1")
	assert.Equal(t, "❗ Use: `delete last` or `delete 3`", h.send(t, "delete everything"))
	assert.Len(t, h.ledger(t).Entries, 1)
}

func TestHandle_BudgetExceeded(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "✅ Budget set to ₹500", h.send(t, "set budget 500"))
	h.send(t, "Rent 400")

	reply := h.send(t, "total")
	assert.Contains(t, reply, "📌 Budget: ₹500")
	assert.NotContains(t, reply, "Budget exceeded")

	reply = h.send(t, "Food 200")
	assert.Contains(t, reply, "⚠️ *Budget exceeded!*\nBudget: ₹500 | Spent: ₹600")
	assert.Contains(t, h.send(t, "total"), "⚠️ Budget exceeded!")
}

func TestHandle_BudgetExceededWithHugeAmounts(t *testing.T) {
	h := newHarness(t)
	h.send(t, "set budget 100")

	reply := h.send(t, "A 9223372036854775807\nB 9223372036854775807")
	assert.Contains(t, reply, "*Budget exceeded!*")
	assert.Contains(t, reply, "Spent: ₹9223372036854775807")

	total := h.send(t, "total")
	assert.Contains(t, total, "Total spent: ₹9223372036854775807")
	assert.Contains(t, total, "Budget exceeded!")
	assert.NotContains(t, total, "₹-")
}

func TestHandle_SetBudgetInvalid(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "⚠️ Invalid format. Use: set budget 5000", h.send(t, "set budget"))
	assert.Equal(t, "⚠️ Invalid format. Use: set budget 5000", h.send(t, "set budget abc"))

	l := h.ledger(t)
	require.NotNil(t, l.Marker)
	assert.Equal(t, "0", l.Marker.Raw)
}

func TestHandle_SetBudgetWithoutMarkerInsertsOne(t *testing.T) {
	h := newHarness(t)
	h.send(t, "help")

	id, _, _ := h.sessions.Lookup(context.Background(), testUser)
	require.NoError(t, h.store.DeleteRow(context.Background(), id, 1))
	h.send(t, "Food 100")
	assert.Equal(t, 1, h.ledger(t).Offset())

	h.send(t, "set budget 50")

	l := h.ledger(t)
	assert.Equal(t, 2, l.Offset())
	budget, ok := l.Budget()
	assert.True(t, ok)
	assert.Equal(t, int64(50), budget)
	require.Len(t, l.Entries, 1)
	assert.Equal(t, "Food", l.Entries[0].Category)
}

func TestHandle_Summary(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "📊 No expenses yet.", h.send(t, "summary"))

	h.send(t, "Food 100\nFood 50\nTravel 30")
	assert.Equal(t, "📊 Summary:\nFood: ₹150\nTravel: ₹30", h.send(t, "summary"))
}

func TestHandle_MixedLines(t *testing.T) {
	h := newHarness(t)

	reply := h.send(t, "Milk 40\nBadLine\nSnacks 50")
	assert.Equal(t, "✅ *Added:*\nMilk ₹40\nSnacks ₹50\n\n⚠️ *Skipped invalid lines:*\nBadLine", reply)
	assert.Len(t, h.ledger(t).Entries, 2)
	assert.Equal(t, int64(90), h.ledger(t).Total())
}

func TestHandle_NothingUnderstood(t *testing.T) {
	h := newHarness(t)
	reply := h.send(t, "what is this")
	assert.True(t, strings.HasPrefix(reply, fallbackMessage))
	assert.Empty(t, h.ledger(t).Entries)
}

func TestHandle_GetSheetAndHelp(t *testing.T) {
	h := newHarness(t)

	reply := h.send(t, "get sheet")
	id, _, _ := h.sessions.Lookup(context.Background(), testUser)
	assert.Equal(t, "📄 Here's your personal sheet: "+h.store.DocumentURL(id), reply)

	assert.Equal(t, helpMessage, h.send(t, "HELP"))
}

func TestHandle_Reset(t *testing.T) {
	h := newHarness(t)
	h.send(t, "Food 100")
	oldID, _, _ := h.sessions.Lookup(context.Background(), testUser)

	reply := h.send(t, "reset")
	newID, _, _ := h.sessions.Lookup(context.Background(), testUser)
	assert.NotEqual(t, oldID, newID)
	assert.Equal(t, "🧹 Sheet reset done!\n📄 New Sheet: "+h.store.DocumentURL(newID), reply)

	_, err := h.store.OpenDocument(context.Background(), oldID)
	assert.True(t, errors.Is(err, store.ErrNotFound))

	l := h.ledger(t)
	assert.Empty(t, l.Entries)
	require.NotNil(t, l.Marker)
	assert.Equal(t, "0", l.Marker.Raw)
}

func TestHandle_CurrencyOption(t *testing.T) {
	mem := store.NewMemoryStore()
	d := NewDispatcher(mem, ledger.NewResolver(mem, nil, session.NewMemoryDirectory()), WithCurrency("$"))

	reply, err := d.Handle(context.Background(), testUser, "Coffee 4")
	require.NoError(t, err)
	assert.Equal(t, "✅ *Added:*\nCoffee $4", reply)
}

func TestHandle_StoreFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockStore := store.NewMockStore(ctrl)
	sessions := session.NewMemoryDirectory()
	require.NoError(t, sessions.Store(ctx, testUser, "doc-1"))
	d := NewDispatcher(mockStore, ledger.NewResolver(mockStore, nil, sessions))

	rows := [][]string{ledger.Header, ledger.MarkerCells("0"), {"t", "Food", "10", ""}}
	mockStore.EXPECT().OpenDocument(ctx, "doc-1").Return(&store.Document{ID: "doc-1"}, nil).Times(3)
	mockStore.EXPECT().ReadRows(ctx, "doc-1").Return(rows, nil).Times(3)

	// Out-of-range delete never touches the store.
	reply, err := d.Handle(ctx, testUser, "delete 5")
	require.NoError(t, err)
	assert.Equal(t, "❌ Invalid entry number.", reply)

	mockStore.EXPECT().UpdateCell(ctx, "doc-1", 1, ledger.ColBudget, "900").
		Return(&store.Error{Code: store.CodeUnavailable, Op: "values.update"})
	_, err = d.Handle(ctx, testUser, "set budget 900")
	require.Error(t, err)

	// The first append failing is a hard error; nothing was committed.
	mockStore.EXPECT().AppendRow(ctx, "doc-1", gomock.Any()).Return(errors.New("quota exceeded"))
	_, err = d.Handle(ctx, testUser, "Milk 40\nBread 30")
	require.Error(t, err)
}

func TestHandle_PartialAppendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockStore := store.NewMockStore(ctrl)
	sessions := session.NewMemoryDirectory()
	require.NoError(t, sessions.Store(ctx, testUser, "doc-1"))
	d := NewDispatcher(mockStore, ledger.NewResolver(mockStore, nil, sessions), WithClock(func() time.Time { return fixedNow }))

	mockStore.EXPECT().OpenDocument(ctx, "doc-1").Return(&store.Document{ID: "doc-1"}, nil)
	mockStore.EXPECT().ReadRows(ctx, "doc-1").Return([][]string{ledger.Header, ledger.MarkerCells("0")}, nil)
	gomock.InOrder(
		mockStore.EXPECT().AppendRow(ctx, "doc-1", []string{"2024-05-01 09:30:00", "Milk", "40", ""}).Return(nil),
		mockStore.EXPECT().AppendRow(ctx, "doc-1", []string{"2024-05-01 09:30:00", "Bread", "30", ""}).Return(errors.New("quota exceeded")),
	)

	reply, err := d.Handle(ctx, testUser, "Milk 40\nBread 30")
	require.NoError(t, err)
	assert.Equal(t, "✅ *Added:*\nMilk ₹40\n\n⚠️ *Skipped invalid lines:*\nBread 30", reply)
}
