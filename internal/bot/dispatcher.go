// Package bot turns chat messages into ledger reads and writes and builds
// the text reply for each one.
package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/castlemilk/budgetbot/internal/ledger"
	"github.com/castlemilk/budgetbot/internal/store"
)

// DefaultCurrency prefixes every amount in replies.
const DefaultCurrency = "₹"

// Dispatcher executes commands against a user's ledger document.
//
// Requests for different users may run concurrently. Two requests for the
// same user are not serialized and can race on the marker row or on entry
// positions.
type Dispatcher struct {
	store    store.Store
	resolver *ledger.Resolver
	format   Formatter
	now      func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithCurrency sets the currency symbol used in replies.
func WithCurrency(symbol string) Option {
	return func(d *Dispatcher) { d.format.Currency = symbol }
}

// WithClock overrides the entry timestamp source.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// NewDispatcher creates a dispatcher over s, resolving documents with r.
func NewDispatcher(s store.Store, r *ledger.Resolver, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:    s,
		resolver: r,
		format:   Formatter{Currency: DefaultCurrency},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle resolves the user's document, reads it in full, runs the command
// in text and returns the reply. User input problems are replies, not errors;
// an error means the store failed and no reply could be built.
func (d *Dispatcher) Handle(ctx context.Context, userID, text string) (string, error) {
	doc, err := d.resolver.Resolve(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("resolve ledger for %s: %w", userID, err)
	}
	rows, err := d.store.ReadRows(ctx, doc.ID)
	if err != nil {
		return "", fmt.Errorf("read ledger %s: %w", doc.ID, err)
	}

	reply, err := d.execute(ctx, userID, doc, ledger.Parse(rows), Parse(text))
	if err != nil {
		return "", err
	}
	return reply.String(), nil
}

func (d *Dispatcher) execute(ctx context.Context, userID string, doc *store.Document, l *ledger.Ledger, cmd Command) (Reply, error) {
	switch c := cmd.(type) {
	case GetSheet:
		return d.format.Sheet(d.store.DocumentURL(doc.ID)), nil
	case Reset:
		return d.reset(ctx, userID)
	case Help:
		return d.format.Help(), nil
	case SetBudget:
		return d.setBudget(ctx, doc, l, c.Amount)
	case InvalidBudget:
		return d.format.BudgetFormatError(), nil
	case Total:
		budget, ok := l.Budget()
		return d.format.Total(l.Total(), budget, ok), nil
	case Summary:
		return d.format.Summary(l.Summary()), nil
	case DeleteLast, DeleteAt, DeleteUsage:
		return d.delete(ctx, doc, l, c)
	case AddExpenses:
		return d.addExpenses(ctx, doc, l, c)
	default:
		return Reply{}, fmt.Errorf("unhandled command %T", cmd)
	}
}

func (d *Dispatcher) reset(ctx context.Context, userID string) (Reply, error) {
	fresh, err := d.resolver.Reset(ctx, userID)
	if err != nil {
		return Reply{}, fmt.Errorf("reset ledger for %s: %w", userID, err)
	}
	log.Printf("[Bot] Reset ledger for user %s: %s", userID, fresh.ID)
	return d.format.ResetDone(d.store.DocumentURL(fresh.ID)), nil
}

func (d *Dispatcher) setBudget(ctx context.Context, doc *store.Document, l *ledger.Ledger, amount int64) (Reply, error) {
	raw := fmt.Sprint(amount)
	var err error
	if l.Marker == nil {
		// Row 1 holds an entry; insert the marker above it instead of overwriting.
		err = d.store.InsertRow(ctx, doc.ID, 1, ledger.MarkerCells(raw))
	} else {
		err = d.store.UpdateCell(ctx, doc.ID, 1, ledger.ColBudget, raw)
	}
	if err != nil {
		return Reply{}, fmt.Errorf("set budget on %s: %w", doc.ID, err)
	}
	return d.format.BudgetSet(amount), nil
}

func (d *Dispatcher) delete(ctx context.Context, doc *store.Document, l *ledger.Ledger, cmd Command) (Reply, error) {
	if len(l.Entries) == 0 {
		return d.format.NoEntries(), nil
	}

	var (
		row   int
		reply Reply
	)
	switch c := cmd.(type) {
	case DeleteLast:
		row, _ = l.RowIndex(len(l.Entries))
		reply = d.format.DeletedLast()
	case DeleteAt:
		var ok bool
		row, ok = l.RowIndex(c.Position)
		if !ok {
			return d.format.InvalidEntryNumber(), nil
		}
		reply = d.format.DeletedAt(c.Position)
	default:
		return d.format.DeleteUsage(), nil
	}

	if err := d.store.DeleteRow(ctx, doc.ID, row); err != nil {
		return Reply{}, fmt.Errorf("delete row %d of %s: %w", row, doc.ID, err)
	}
	return reply, nil
}

func (d *Dispatcher) addExpenses(ctx context.Context, doc *store.Document, l *ledger.Ledger, cmd AddExpenses) (Reply, error) {
	var added []ExpenseLine
	var newTotal int64
	skipped := cmd.Skipped
	for i, line := range cmd.Lines {
		entry := ledger.NewEntry(d.now(), line.Category, line.Amount)
		if err := d.store.AppendRow(ctx, doc.ID, entry.Cells()); err != nil {
			if len(added) == 0 {
				return Reply{}, fmt.Errorf("append entry to %s: %w", doc.ID, err)
			}
			// Earlier lines are committed; the rest are reported as skipped.
			log.Printf("[Bot] Failed to append entry to %s after %d lines: %v", doc.ID, len(added), err)
			for _, rest := range cmd.Lines[i:] {
				skipped = append(skipped, fmt.Sprintf("%s %d", rest.Category, rest.Amount))
			}
			break
		}
		added = append(added, line)
		newTotal = ledger.AddAmounts(newTotal, line.Amount)
	}

	budget, ok := l.Budget()
	return d.format.Added(added, skipped, ledger.AddAmounts(l.Total(), newTotal), budget, ok), nil
}
