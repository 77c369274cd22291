package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriCalc/internal/update"
	"github.com/Rorical/RoriCalc/ui/components"
)

const (
	displayWidth = 22
	historyWidth = 32
	minWidth     = 40
)

func (m *AppModel) Init() tea.Cmd {
	return m.dispatcher.ListenForCoreEvents()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.help.Width = size.Width
	}

	eventBus := m.dispatcher.GetEventBus()
	cmd := update.HandleUpdateWithEventBus(&m.appModel, msg, m.keys, eventBus, m.config)

	return m, cmd
}

func (m *AppModel) View() string {
	state := m.appModel
	width := state.Width
	if width < minWidth {
		width = minWidth
	}

	calculator := lipgloss.JoinVertical(lipgloss.Left,
		components.RenderDisplay(state.OperationDisplay, state.Display, displayWidth, state.DarkTheme),
		components.RenderKeypad(state.PressedKey, state.DarkTheme),
	)
	if state.ShowHistory {
		calculator = lipgloss.JoinHorizontal(lipgloss.Top,
			calculator,
			components.RenderHistory(state.History, historyWidth, state.DarkTheme),
		)
	}

	var b strings.Builder
	b.WriteString(calculator)
	b.WriteString("\n")
	if banner := components.RenderError(state.Error, width, state.DarkTheme); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}
	b.WriteString(components.RenderStatus(state.Status, width, state.DarkTheme))
	b.WriteString("\n")
	b.WriteString(components.RenderHelp(m.help, m.keys))

	return b.String()
}
