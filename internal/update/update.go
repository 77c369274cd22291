package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriCalc/internal/config"
	"github.com/Rorical/RoriCalc/internal/eventbus"
	"github.com/Rorical/RoriCalc/internal/models"
)

func HandleUpdateWithEventBus(appModel *models.AppModel, msg tea.Msg, keys KeyMap, eb *eventbus.EventBus, cfg *config.Config) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsgWithEventBus(appModel, msg, keys, eb, cfg)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil
	case DismissErrorMsg:
		HandleDismissErrorMsg(appModel, msg)
		return nil
	case ReleaseKeyMsg:
		HandleReleaseKeyMsg(appModel, msg)
		return nil
	case CoreEventMsg:
		return HandleCoreEvent(appModel, msg)
	}
	return nil
}
