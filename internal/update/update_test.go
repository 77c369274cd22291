package update

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriCalc/internal/action"
	"github.com/Rorical/RoriCalc/internal/calculator"
	"github.com/Rorical/RoriCalc/internal/config"
	"github.com/Rorical/RoriCalc/internal/eventbus"
	"github.com/Rorical/RoriCalc/internal/models"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyPressSendsAction(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected action.Action
		pressed  string
	}{
		{name: "Digit", msg: runeKey('7'), expected: action.Digit{Digit: "7"}, pressed: "7"},
		{name: "Operator", msg: runeKey('*'), expected: action.SetOperation{Op: calculator.Multiply}, pressed: "*"},
		{name: "Enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, expected: action.Equals{}, pressed: "="},
		{name: "Escape", msg: tea.KeyMsg{Type: tea.KeyEsc}, expected: action.Clear{}, pressed: "C"},
		{name: "Backspace", msg: tea.KeyMsg{Type: tea.KeyBackspace}, expected: action.Delete{}, pressed: "DEL"},
		{name: "Clear history", msg: runeKey('X'), expected: action.ClearHistory{}, pressed: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eb := eventbus.NewEventBus()
			defer eb.Close()
			appModel := &models.AppModel{}

			cmd := HandleUpdateWithEventBus(appModel, tt.msg, DefaultKeyMap(), eb, nil)

			require.Len(t, eb.UIToCore(), 1)
			event := <-eb.UIToCore()
			assert.Equal(t, eventbus.ActionEvent{Action: tt.expected}, event)
			assert.Equal(t, tt.pressed, appModel.PressedKey)
			if tt.pressed == "" {
				assert.Nil(t, cmd)
			} else {
				assert.NotNil(t, cmd)
			}
		})
	}
}

func TestUnmappedKeyIsIgnored(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	appModel := &models.AppModel{}

	cmd := HandleUpdateWithEventBus(appModel, runeKey('z'), DefaultKeyMap(), eb, nil)
	assert.Nil(t, cmd)
	assert.Empty(t, eb.UIToCore())
}

func TestHistoryAndThemeToggles(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	appModel := &models.AppModel{}

	cfg, err := config.LoadConfigFrom(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	HandleUpdateWithEventBus(appModel, runeKey('h'), DefaultKeyMap(), eb, cfg)
	assert.True(t, appModel.ShowHistory)

	HandleUpdateWithEventBus(appModel, runeKey('t'), DefaultKeyMap(), eb, cfg)
	assert.True(t, appModel.DarkTheme)
	assert.Equal(t, "Theme: dark", appModel.Status)

	reloaded, err := config.LoadConfigFrom(cfg.Path())
	require.NoError(t, err)
	assert.True(t, reloaded.DarkTheme)

	assert.Empty(t, eb.UIToCore())
}

func TestCoreEventUpdatesModel(t *testing.T) {
	appModel := &models.AppModel{}

	cmd := HandleCoreEvent(appModel, CoreEventMsg{Event: eventbus.StateUpdateEvent{
		Snapshot: models.Snapshot{
			Display:          "3",
			OperationDisplay: "12 /",
			History:          []calculator.HistoryEntry{{Expression: "6 * 2", Result: "12"}},
		},
	}})
	assert.Nil(t, cmd)
	assert.Equal(t, "3", appModel.Display)
	assert.Equal(t, "12 /", appModel.OperationDisplay)
	assert.Len(t, appModel.History, 1)
}

func TestErrorBannerDismissal(t *testing.T) {
	appModel := &models.AppModel{}

	cmd := HandleCoreEvent(appModel, CoreEventMsg{Event: eventbus.StateUpdateEvent{
		Snapshot: models.Snapshot{Display: "0"},
		Errors:   []string{"Division by zero"},
	}})
	require.NotNil(t, cmd)
	assert.Equal(t, "Division by zero", appModel.Error)
	first := appModel.ErrorSeq

	HandleCoreEvent(appModel, CoreEventMsg{Event: eventbus.StateUpdateEvent{
		Errors: []string{"Division by zero"},
	}})

	// The first timer must not hide the newer banner
	HandleDismissErrorMsg(appModel, DismissErrorMsg{Seq: first})
	assert.Equal(t, "Division by zero", appModel.Error)

	HandleDismissErrorMsg(appModel, DismissErrorMsg{Seq: appModel.ErrorSeq})
	assert.Empty(t, appModel.Error)

	appModel.Error = "stale"
	HandleCoreEvent(appModel, CoreEventMsg{Event: eventbus.StateUpdateEvent{HideError: true}})
	assert.Empty(t, appModel.Error)
}

func TestReleaseKey(t *testing.T) {
	appModel := &models.AppModel{PressedKey: "5", PressedSeq: 2}

	HandleReleaseKeyMsg(appModel, ReleaseKeyMsg{Seq: 1})
	assert.Equal(t, "5", appModel.PressedKey)

	HandleReleaseKeyMsg(appModel, ReleaseKeyMsg{Seq: 2})
	assert.Empty(t, appModel.PressedKey)
}
