package components

import (
	"github.com/charmbracelet/bubbles/help"

	"github.com/Rorical/RoriCalc/ui/styles"
)

// RenderError draws the error banner; nothing when message is empty
func RenderError(message string, width int, dark bool) string {
	if message == "" {
		return ""
	}
	return styles.ErrorStyle(styles.Theme(dark), width).Render("! " + message)
}

func RenderStatus(status string, width int, dark bool) string {
	return styles.StatusStyle(styles.Theme(dark), width).Render(status)
}

func RenderHelp(h help.Model, keys help.KeyMap) string {
	return h.View(keys)
}
