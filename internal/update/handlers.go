package update

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriCalc/internal/action"
	"github.com/Rorical/RoriCalc/internal/config"
	"github.com/Rorical/RoriCalc/internal/eventbus"
	"github.com/Rorical/RoriCalc/internal/models"
	"github.com/Rorical/RoriCalc/ui/components"
)

const (
	ErrorTimeout  = 3 * time.Second
	PressDuration = 100 * time.Millisecond
)

// HandleKeyMsgWithEventBus handles keyboard input using event bus
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, keys KeyMap, eb *eventbus.EventBus, cfg *config.Config) tea.Cmd {
	switch {
	case key.Matches(keyMsg, keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, keys.History):
		appModel.ShowHistory = !appModel.ShowHistory
		return nil
	case key.Matches(keyMsg, keys.Theme):
		return toggleTheme(appModel, cfg)
	}

	a, ok := action.FromKey(keyMsg.String())
	if !ok {
		return nil
	}

	// Send event to core via event bus with error handling
	if err := eb.SendToCore(eventbus.ActionEvent{Action: a}); err != nil {
		appModel.Status = "Error sending key: " + err.Error()
		return nil
	}

	label := components.KeyLabel(a)
	if label == "" {
		return nil
	}
	appModel.PressedKey = label
	appModel.PressedSeq++
	return ReleaseKeyCmd(appModel.PressedSeq)
}

func toggleTheme(appModel *models.AppModel, cfg *config.Config) tea.Cmd {
	if cfg == nil {
		appModel.DarkTheme = !appModel.DarkTheme
		return nil
	}
	if err := cfg.ToggleTheme(); err != nil {
		appModel.Status = "Error saving theme: " + err.Error()
	} else {
		appModel.Status = "Theme: " + cfg.Theme()
	}
	appModel.DarkTheme = cfg.DarkTheme
	return nil
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		appModel.Display = event.Snapshot.Display
		appModel.OperationDisplay = event.Snapshot.OperationDisplay
		appModel.History = event.Snapshot.History

		if event.HideError {
			appModel.Error = ""
		}
		if n := len(event.Errors); n > 0 {
			appModel.Error = event.Errors[n-1]
			appModel.ErrorSeq++
			return DismissErrorCmd(appModel.ErrorSeq)
		}
	}

	return nil
}

// DismissErrorMsg hides the error banner if Seq is still the latest error
type DismissErrorMsg struct {
	Seq int
}

// ReleaseKeyMsg ends the keypad highlight if Seq is still the latest press
type ReleaseKeyMsg struct {
	Seq int
}

func DismissErrorCmd(seq int) tea.Cmd {
	return tea.Tick(ErrorTimeout, func(time.Time) tea.Msg {
		return DismissErrorMsg{Seq: seq}
	})
}

func ReleaseKeyCmd(seq int) tea.Cmd {
	return tea.Tick(PressDuration, func(time.Time) tea.Msg {
		return ReleaseKeyMsg{Seq: seq}
	})
}

func HandleDismissErrorMsg(appModel *models.AppModel, msg DismissErrorMsg) {
	if msg.Seq == appModel.ErrorSeq {
		appModel.Error = ""
	}
}

func HandleReleaseKeyMsg(appModel *models.AppModel, msg ReleaseKeyMsg) {
	if msg.Seq == appModel.PressedSeq {
		appModel.PressedKey = ""
	}
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}
