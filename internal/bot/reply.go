package bot

import (
	"fmt"
	"strings"

	"github.com/castlemilk/budgetbot/internal/ledger"
)

const fallbackMessage = "⚠️ Couldn't understand your input. Type `help` for commands."

const helpMessage = "💡 *How to use this bot:*\n" +
	"- Add expense: `Grocery 200`\n" +
	"- Add multiple: `Milk 40\\nSnacks 50`\n" +
	"- View total: `total`\n" +
	"- View summary: `summary`\n" +
	"- Set budget: `set budget 5000`\n" +
	"- Delete entry: `delete last` or `delete 3`\n" +
	"- Get your sheet: `get sheet`\n" +
	"- Reset your sheet: `reset`\n" +
	"- Show this message: `help`"

// Reply is the single outbound message for a request. Sections render in a
// fixed order: primary, budget warning, skipped lines.
type Reply struct {
	Primary []string
	Warning string
	Skipped []string
}

// String renders the reply, separating non-empty sections with a blank line.
// It never returns an empty string.
func (r Reply) String() string {
	var sections []string
	if len(r.Primary) > 0 {
		sections = append(sections, strings.Join(r.Primary, "\n"))
	}
	if r.Warning != "" {
		sections = append(sections, r.Warning)
	}
	if len(r.Skipped) > 0 {
		sections = append(sections, "⚠️ *Skipped invalid lines:*\n"+strings.Join(r.Skipped, "\n"))
	}
	if len(sections) == 0 {
		return fallbackMessage
	}
	return strings.Join(sections, "\n\n")
}

// Formatter builds replies for each handler outcome.
type Formatter struct {
	Currency string
}

func (f Formatter) money(n int64) string {
	return fmt.Sprintf("%s%d", f.Currency, n)
}

func text(lines ...string) Reply {
	return Reply{Primary: lines}
}

// Sheet links the user's ledger document.
func (f Formatter) Sheet(url string) Reply {
	return text("📄 Here's your personal sheet: " + url)
}

// ResetDone confirms a reset and links the new document.
func (f Formatter) ResetDone(url string) Reply {
	return text("🧹 Sheet reset done!", "📄 New Sheet: "+url)
}

// Help lists the supported commands.
func (f Formatter) Help() Reply {
	return text(helpMessage)
}

// BudgetSet confirms the new budget amount.
func (f Formatter) BudgetSet(amount int64) Reply {
	return text("✅ Budget set to " + f.money(amount))
}

// BudgetFormatError answers a malformed set budget command.
func (f Formatter) BudgetFormatError() Reply {
	return text("⚠️ Invalid format. Use: set budget 5000")
}

// Total reports the running total and, when a budget is set, whether it has
// been exceeded.
func (f Formatter) Total(total, budget int64, hasBudget bool) Reply {
	lines := []string{"💰 Total spent: " + f.money(total)}
	if !hasBudget {
		return text(append(lines, "(No budget set. Use `set budget 5000`)")...)
	}
	lines = append(lines, "📌 Budget: "+f.money(budget))
	if total > budget {
		lines = append(lines, "⚠️ Budget exceeded!")
	}
	return text(lines...)
}

// Summary lists per-category totals in first-seen order.
func (f Formatter) Summary(totals []ledger.CategoryTotal) Reply {
	if len(totals) == 0 {
		return text("📊 No expenses yet.")
	}
	lines := []string{"📊 Summary:"}
	for _, t := range totals {
		lines = append(lines, fmt.Sprintf("%s: %s", t.Category, f.money(t.Amount)))
	}
	return text(lines...)
}

// NoEntries answers a delete on an empty ledger.
func (f Formatter) NoEntries() Reply {
	return text("⚠️ No entries to delete.")
}

// DeletedLast confirms removal of the most recent entry.
func (f Formatter) DeletedLast() Reply {
	return text("🗑️ Deleted last entry.")
}

// DeletedAt confirms removal of the entry at a 1-based position.
func (f Formatter) DeletedAt(position int) Reply {
	return text(fmt.Sprintf("🗑️ Deleted entry #%d.", position))
}

// InvalidEntryNumber answers a delete whose position is out of range.
func (f Formatter) InvalidEntryNumber() Reply {
	return text("❌ Invalid entry number.")
}

// DeleteUsage answers a delete with an unrecognised argument.
func (f Formatter) DeleteUsage() Reply {
	return text("❗ Use: `delete last` or `delete 3`")
}

// Added lists the committed lines, an overspend warning when spent exceeds a
// set budget, and any skipped lines. With nothing added the primary section
// is the fallback message.
func (f Formatter) Added(added []ExpenseLine, skipped []string, spent, budget int64, hasBudget bool) Reply {
	var r Reply
	r.Skipped = skipped
	if len(added) == 0 {
		r.Primary = []string{fallbackMessage}
		return r
	}
	r.Primary = []string{"✅ *Added:*"}
	for _, line := range added {
		r.Primary = append(r.Primary, fmt.Sprintf("%s %s", line.Category, f.money(line.Amount)))
	}
	if hasBudget && spent > budget {
		r.Warning = fmt.Sprintf("⚠️ *Budget exceeded!*\nBudget: %s | Spent: %s", f.money(budget), f.money(spent))
	}
	return r
}
