package styles

import "github.com/charmbracelet/lipgloss"

// Palette holds the colors of one theme
type Palette struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Operator   lipgloss.Color
	KeyFace    lipgloss.Color
	Pressed    lipgloss.Color
	Error      lipgloss.Color
	StatusFg   lipgloss.Color
	StatusBg   lipgloss.Color
}

var (
	lightPalette = Palette{
		Foreground: lipgloss.Color("235"),
		Muted:      lipgloss.Color("245"),
		Accent:     lipgloss.Color("62"),
		Operator:   lipgloss.Color("166"),
		KeyFace:    lipgloss.Color("254"),
		Pressed:    lipgloss.Color("153"),
		Error:      lipgloss.Color("160"),
		StatusFg:   lipgloss.Color("238"),
		StatusBg:   lipgloss.Color("252"),
	}
	darkPalette = Palette{
		Foreground: lipgloss.Color("252"),
		Muted:      lipgloss.Color("241"),
		Accent:     lipgloss.Color("141"),
		Operator:   lipgloss.Color("214"),
		KeyFace:    lipgloss.Color("237"),
		Pressed:    lipgloss.Color("62"),
		Error:      lipgloss.Color("203"),
		StatusFg:   lipgloss.Color("241"),
		StatusBg:   lipgloss.Color("235"),
	}
)

func Theme(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

func DisplayStyle(p Palette, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 1).
		Width(width).
		Align(lipgloss.Right)
}

func ValueStyle(p Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true)
}

func OperationStyle(p Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Muted)
}

func KeyStyle(p Palette, operator, pressed bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(p.Foreground).
		Background(p.KeyFace).
		Width(5).
		Align(lipgloss.Center).
		Margin(0, 1, 0, 0)
	if operator {
		style = style.Foreground(p.Operator).Bold(true)
	}
	if pressed {
		style = style.Background(p.Pressed)
	}
	return style
}

func HistoryStyle(p Palette, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(p.Accent).
		Padding(0, 1).
		MarginLeft(2).
		Width(width)
}

func HistoryTitleStyle(p Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)
}

func HistoryResultStyle(p Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Operator)
}

func ErrorStyle(p Palette, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true).
		Padding(0, 1).
		Width(width)
}

func StatusStyle(p Palette, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.StatusFg).
		Background(p.StatusBg).
		Padding(0, 1).
		Width(width)
}
