package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriCalc/internal/action"
	"github.com/Rorical/RoriCalc/ui/styles"
)

var keypadRows = [][]string{
	{"C", "DEL", "%", "/"},
	{"7", "8", "9", "*"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"±", "0", ".", "="},
}

func isOperatorKey(label string) bool {
	switch label {
	case "/", "*", "-", "+", "=":
		return true
	}
	return false
}

// KeyLabel names the keypad key an action corresponds to, or "" if none
func KeyLabel(a action.Action) string {
	switch a := a.(type) {
	case action.Digit:
		return a.Digit
	case action.Decimal:
		return "."
	case action.SetOperation:
		return a.Op.Symbol()
	case action.Equals:
		return "="
	case action.Clear:
		return "C"
	case action.Delete:
		return "DEL"
	case action.ToggleSign:
		return "±"
	case action.Percentage:
		return "%"
	}
	return ""
}

// RenderKeypad draws the button grid, highlighting pressed
func RenderKeypad(pressed string, dark bool) string {
	p := styles.Theme(dark)

	rows := make([]string, len(keypadRows))
	for i, row := range keypadRows {
		keys := make([]string, len(row))
		for j, label := range row {
			keys[j] = styles.KeyStyle(p, isOperatorKey(label), label == pressed).Render(label)
		}
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, keys...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
