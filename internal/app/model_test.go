package app

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriCalc/internal/action"
	"github.com/Rorical/RoriCalc/internal/config"
	"github.com/Rorical/RoriCalc/internal/core"
	"github.com/Rorical/RoriCalc/internal/dispatcher"
	"github.com/Rorical/RoriCalc/internal/eventbus"
	"github.com/Rorical/RoriCalc/internal/update"
)

// newTestModel wires a model to a running core without a terminal
func newTestModel(t *testing.T) *AppModel {
	t.Helper()
	cfg, err := config.LoadConfigFrom(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)
	service := core.NewCalculatorService(eb)
	service.Start()
	t.Cleanup(func() {
		service.Stop()
		disp.Stop()
	})
	return newAppModel(cfg, disp)
}

// pump delivers the next core event to the model
func pump(t *testing.T, m *AppModel) {
	t.Helper()
	done := make(chan tea.Msg, 1)
	go func() { done <- m.dispatcher.ListenForCoreEvents()() }()

	select {
	case msg := <-done:
		_, ok := msg.(update.CoreEventMsg)
		require.True(t, ok, "unexpected message %T", msg)
		m.Update(msg)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for core event")
	}
}

func press(t *testing.T, m *AppModel, keys ...tea.KeyMsg) {
	t.Helper()
	for _, k := range keys {
		m.Update(k)
		pump(t, m)
	}
}

func runes(s string) []tea.KeyMsg {
	keys := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		keys = append(keys, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return keys
}

func TestModelEndToEnd(t *testing.T) {
	m := newTestModel(t)
	pump(t, m)
	assert.Equal(t, "0", m.appModel.Display)

	press(t, m, runes("5+3*2")...)
	assert.Equal(t, "2", m.appModel.Display)
	assert.Equal(t, "8 *", m.appModel.OperationDisplay)

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "16", m.appModel.Display)
	assert.Empty(t, m.appModel.OperationDisplay)
	assert.Len(t, m.appModel.History, 2)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	view := m.View()
	assert.Contains(t, view, "16")
	assert.Contains(t, view, "8 * 2 = 16")
}

func TestModelShowsDivisionError(t *testing.T) {
	m := newTestModel(t)
	pump(t, m)

	press(t, m, runes("4/0=")...)
	assert.Equal(t, "Division by zero", m.appModel.Error)
	assert.Contains(t, m.View(), "Division by zero")

	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.appModel.Error)
}

func TestApplicationStopWithQueuedActions(t *testing.T) {
	t.Setenv("RORICALC_HOME", t.TempDir())
	application, err := NewApplication()
	require.NoError(t, err)

	application.service.Start()
	for i := 0; i < 50; i++ {
		require.NoError(t, application.eventBus.SendToCore(eventbus.ActionEvent{Action: action.Digit{Digit: "7"}}))
	}

	assert.NotPanics(t, application.Stop)
}
