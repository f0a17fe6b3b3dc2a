// Package ledger models the rows of a per-user expense document and resolves
// which document belongs to which messaging user.
//
// A document is laid out as:
//
//	row 0   Timestamp | Category | Amount | Note
//	row 1   #BUDGET   | <amount>            (optional marker row)
//	row N   <timestamp> | <category> | <amount> | <note>
//
// Cells are strings only at the store boundary; Parse converts them into a
// Ledger with typed amounts.
package ledger

import (
	"math"
	"strconv"
	"time"
)

// BudgetTag marks the budget row in the first cell.
const BudgetTag = "#BUDGET"

// TimestampLayout is the format of entry timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Header is the fixed first row of every ledger document.
var Header = []string{"Timestamp", "Category", "Amount", "Note"}

// Column indexes within a row.
const (
	ColTimestamp = iota
	ColCategory
	ColAmount
	ColNote

	// ColBudget holds the amount in the marker row.
	ColBudget = 1
)

// Grid size applied to new documents.
const (
	InitialRows = 100
	InitialCols = 4
)

// Entry is one recorded expense. Valid is false when the amount cell does not
// hold a non-negative integer; such rows still occupy a position.
type Entry struct {
	Timestamp string
	Category  string
	Amount    int64
	Note      string
	Valid     bool
}

// NewEntry builds a valid entry stamped at t.
func NewEntry(t time.Time, category string, amount int64) Entry {
	return Entry{
		Timestamp: t.Format(TimestampLayout),
		Category:  category,
		Amount:    amount,
		Valid:     true,
	}
}

// Cells converts the entry to store cells.
func (e Entry) Cells() []string {
	return []string{e.Timestamp, e.Category, strconv.FormatInt(e.Amount, 10), e.Note}
}

// Marker is the budget marker row. Raw is the stored amount cell, which may
// be empty or malformed.
type Marker struct {
	Raw string
}

// MarkerCells returns the cells of a marker row holding amount.
func MarkerCells(amount string) []string {
	return []string{BudgetTag, amount, "", ""}
}

// Ledger is a parsed snapshot of a document.
type Ledger struct {
	Marker  *Marker
	Entries []Entry
}

// CategoryTotal is one line of a summary.
type CategoryTotal struct {
	Category string
	Amount   int64
}

// Parse reads a full-scan row snapshot. The header row is skipped, row 1 is a
// marker if its first cell is BudgetTag, and the rest are entries.
func Parse(rows [][]string) *Ledger {
	l := &Ledger{}
	offset := Offset(rows)
	if offset == 2 {
		l.Marker = &Marker{Raw: cell(rows[1], ColBudget)}
	}
	for i := offset; i < len(rows); i++ {
		l.Entries = append(l.Entries, parseEntry(rows[i]))
	}
	return l
}

// Offset is the row index of the first entry: 2 if row 1 is a budget marker,
// otherwise 1. It must be computed from a fresh read.
func Offset(rows [][]string) int {
	if len(rows) > 1 && cell(rows[1], 0) == BudgetTag {
		return 2
	}
	return 1
}

func parseEntry(row []string) Entry {
	e := Entry{
		Timestamp: cell(row, ColTimestamp),
		Category:  cell(row, ColCategory),
		Note:      cell(row, ColNote),
	}
	e.Amount, e.Valid = ParseAmount(cell(row, ColAmount))
	return e
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// ParseAmount accepts a non-empty run of ASCII digits.
func ParseAmount(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// AddAmounts adds two non-negative amounts, saturating at math.MaxInt64.
func AddAmounts(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// Offset returns the row index of the first entry.
func (l *Ledger) Offset() int {
	if l.Marker != nil {
		return 2
	}
	return 1
}

// Budget returns the budget amount. A missing marker, a malformed amount and
// zero all mean no budget is set.
func (l *Ledger) Budget() (int64, bool) {
	if l.Marker == nil {
		return 0, false
	}
	n, ok := ParseAmount(l.Marker.Raw)
	if !ok || n == 0 {
		return 0, false
	}
	return n, true
}

// Total sums the valid entry amounts.
func (l *Ledger) Total() int64 {
	var total int64
	for _, e := range l.Entries {
		if e.Valid {
			total = AddAmounts(total, e.Amount)
		}
	}
	return total
}

// Summary groups valid entries by category in first-seen order.
func (l *Ledger) Summary() []CategoryTotal {
	var out []CategoryTotal
	index := make(map[string]int)
	for _, e := range l.Entries {
		if !e.Valid {
			continue
		}
		i, ok := index[e.Category]
		if !ok {
			i = len(out)
			index[e.Category] = i
			out = append(out, CategoryTotal{Category: e.Category})
		}
		out[i].Amount = AddAmounts(out[i].Amount, e.Amount)
	}
	return out
}

// RowIndex maps a 1-based entry position to its store row index.
func (l *Ledger) RowIndex(position int) (int, bool) {
	if position < 1 || position > len(l.Entries) {
		return 0, false
	}
	return l.Offset() + position - 1, true
}
