package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriCalc/ui/styles"
)

// RenderDisplay draws the pending-operation line above the current value
func RenderDisplay(operation, value string, width int, dark bool) string {
	p := styles.Theme(dark)
	// A blank line keeps the box height stable while no operation is pending
	if operation == "" {
		operation = " "
	}
	content := lipgloss.JoinVertical(lipgloss.Right,
		styles.OperationStyle(p).Render(operation),
		styles.ValueStyle(p).Render(value),
	)
	return styles.DisplayStyle(p, width).Render(content)
}
