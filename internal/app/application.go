package app

import (
	"io"
	"log"
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriCalc/internal/config"
	"github.com/Rorical/RoriCalc/internal/core"
	"github.com/Rorical/RoriCalc/internal/dispatcher"
	"github.com/Rorical/RoriCalc/internal/eventbus"
	"github.com/Rorical/RoriCalc/internal/models"
	"github.com/Rorical/RoriCalc/internal/update"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.CalculatorService
	model      *AppModel
	logFile    io.Closer
}

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
	config     *config.Config
	keys       update.KeyMap
	help       help.Model
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(err eventbus.EventBusError) {
		log.Printf("event bus: %v", err)
	})

	disp := dispatcher.NewEventDispatcher(eb)
	service := core.NewCalculatorService(eb)

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      newAppModel(cfg, disp),
	}, nil
}

func newAppModel(cfg *config.Config, disp *dispatcher.EventDispatcher) *AppModel {
	return &AppModel{
		appModel:   createInitialAppModel(cfg),
		dispatcher: disp,
		config:     cfg,
		keys:       update.DefaultKeyMap(),
		help:       help.New(),
	}
}

func (app *Application) Start() error {
	// Writes to stderr would tear the alternate screen
	if path := os.Getenv("RORICALC_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "roricalc")
		if err != nil {
			return err
		}
		app.logFile = f
	} else {
		log.SetOutput(io.Discard)
	}

	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

// Stop shuts the core down before closing the bus; service.Stop returns only
// once the event loop has exited.
func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
	if app.logFile != nil {
		app.logFile.Close()
	}
}

func createInitialAppModel(cfg *config.Config) models.AppModel {
	// Display values come from the core as single source of truth
	return models.AppModel{
		Status:    "Ready",
		DarkTheme: cfg.DarkTheme,
	}
}
