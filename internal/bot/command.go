package bot

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/castlemilk/budgetbot/internal/ledger"
)

// Command is the closed set of things a message can ask for. Parse produces
// exactly one variant per message.
type Command interface {
	command()
}

type (
	// GetSheet asks for the shareable document link.
	GetSheet struct{}
	// Reset replaces the user's document with a fresh one.
	Reset struct{}
	// Help asks for the command list.
	Help struct{}
	// SetBudget overwrites the budget marker amount.
	SetBudget struct{ Amount int64 }
	// InvalidBudget is a "set budget" prefix without a usable amount.
	InvalidBudget struct{}
	// Total asks for the sum of all entries.
	Total struct{}
	// Summary asks for per-category sums.
	Summary struct{}
	// DeleteLast removes the final entry.
	DeleteLast struct{}
	// DeleteAt removes the entry at a 1-based position. Position 0 means the
	// number could not be represented and is always out of range.
	DeleteAt struct{ Position int }
	// DeleteUsage is a "delete" prefix with unrecognized arguments.
	DeleteUsage struct{}
	// AddExpenses is the fallback: every line parsed as "<category> <amount>".
	AddExpenses struct {
		Lines   []ExpenseLine
		Skipped []string
	}
)

// ExpenseLine is one valid "<category> <amount>" line.
type ExpenseLine struct {
	Category string
	Amount   int64
}

func (GetSheet) command()      {}
func (Reset) command()         {}
func (Help) command()          {}
func (SetBudget) command()     {}
func (InvalidBudget) command() {}
func (Total) command()         {}
func (Summary) command()       {}
func (DeleteLast) command()    {}
func (DeleteAt) command()      {}
func (DeleteUsage) command()   {}
func (AddExpenses) command()   {}

// Parse classifies a message. Matching is case-insensitive against a
// lower-cased copy; amounts and categories come from the original text.
func Parse(text string) Command {
	text = strings.TrimSpace(text)
	lower := cases.Lower(language.Und).String(text)

	switch {
	case lower == "get sheet":
		return GetSheet{}
	case lower == "reset":
		return Reset{}
	case lower == "help":
		return Help{}
	case strings.HasPrefix(lower, "set budget"):
		return parseSetBudget(text)
	case lower == "total":
		return Total{}
	case lower == "summary":
		return Summary{}
	case strings.HasPrefix(lower, "delete"):
		return parseDelete(lower)
	default:
		return parseExpenses(text)
	}
}

func parseSetBudget(text string) Command {
	parts := strings.Fields(text)
	if len(parts) < 3 {
		return InvalidBudget{}
	}
	n, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || n < 0 {
		return InvalidBudget{}
	}
	return SetBudget{Amount: n}
}

func parseDelete(lower string) Command {
	parts := strings.Fields(lower)
	if len(parts) != 2 {
		return DeleteUsage{}
	}
	if parts[1] == "last" {
		return DeleteLast{}
	}
	if !isDigits(parts[1]) {
		return DeleteUsage{}
	}
	n, ok := ledger.ParseAmount(parts[1])
	if !ok || n > int64(maxInt) {
		return DeleteAt{}
	}
	return DeleteAt{Position: int(n)}
}

const maxInt = int(^uint(0) >> 1)

func parseExpenses(text string) AddExpenses {
	var cmd AddExpenses
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) == 2 {
			if amount, ok := ledger.ParseAmount(parts[1]); ok {
				cmd.Lines = append(cmd.Lines, ExpenseLine{Category: parts[0], Amount: amount})
				continue
			}
		}
		cmd.Skipped = append(cmd.Skipped, line)
	}
	return cmd
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
