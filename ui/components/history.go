package components

import (
	"strings"

	"github.com/Rorical/RoriCalc/internal/calculator"
	"github.com/Rorical/RoriCalc/ui/styles"
)

// HistoryLimit is how many entries the history panel shows
const HistoryLimit = 5

const emptyHistory = "No calculations yet"

// RenderHistory shows the last HistoryLimit entries, most recent first
func RenderHistory(history []calculator.HistoryEntry, width int, dark bool) string {
	p := styles.Theme(dark)
	resultStyle := styles.HistoryResultStyle(p)

	var b strings.Builder
	b.WriteString(styles.HistoryTitleStyle(p).Render("History"))
	b.WriteString("\n")

	recent := calculator.Recent(history, HistoryLimit)
	if len(recent) == 0 {
		b.WriteString(styles.OperationStyle(p).Render(emptyHistory))
	}
	for i, entry := range recent {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(entry.Expression + " = " + resultStyle.Render(entry.Result))
	}

	return styles.HistoryStyle(p, width).Render(b.String())
}
