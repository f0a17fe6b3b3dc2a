package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Command
	}{
		{"get sheet", "Get Sheet", GetSheet{}},
		{"reset", "  RESET ", Reset{}},
		{"help", "help", Help{}},
		{"set budget", "Set Budget 5000", SetBudget{Amount: 5000}},
		{"set budget zero", "set budget 0", SetBudget{Amount: 0}},
		{"set budget missing amount", "set budget", InvalidBudget{}},
		{"set budget non-integer", "set budget lots", InvalidBudget{}},
		{"set budget negative", "set budget -10", InvalidBudget{}},
		{"total", "Total", Total{}},
		{"summary", "summary", Summary{}},
		{"delete last", "Delete LAST", DeleteLast{}},
		{"delete n", "delete 3", DeleteAt{Position: 3}},
		{"delete huge", "delete 99999999999999999999999", DeleteAt{}},
		{"delete no args", "delete", DeleteUsage{}},
		{"delete words", "delete everything now", DeleteUsage{}},
		{"delete negative", "delete -1", DeleteUsage{}},
		{"total with suffix is an expense attempt", "total 5", AddExpenses{Lines: []ExpenseLine{{Category: "total", Amount: 5}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text))
		})
	}
}

func TestParse_AddExpenses(t *testing.T) {
	cmd, ok := Parse("Milk 40\nBadLine\nSnacks 50").(AddExpenses)
	if !ok {
		t.Fatalf("expected AddExpenses")
	}
	assert.Equal(t, []ExpenseLine{
		{Category: "Milk", Amount: 40},
		{Category: "Snacks", Amount: 50},
	}, cmd.Lines)
	assert.Equal(t, []string{"BadLine"}, cmd.Skipped)
}

func TestParse_AddExpensesPreservesCase(t *testing.T) {
	cmd := Parse("GroceryStore 200").(AddExpenses)
	assert.Equal(t, "GroceryStore", cmd.Lines[0].Category)
}

func TestParse_AddExpensesRejectsMalformedLines(t *testing.T) {
	cmd := Parse("Rent 12.50\nTaxi -5\nCoffee\nLunch at cafe 20\r\n\nBus 15\r").(AddExpenses)
	assert.Equal(t, []ExpenseLine{{Category: "Bus", Amount: 15}}, cmd.Lines)
	assert.Equal(t, []string{"Rent 12.50", "Taxi -5", "Coffee", "Lunch at cafe 20"}, cmd.Skipped)
}
