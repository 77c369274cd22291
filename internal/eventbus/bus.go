package eventbus

import (
	"errors"
	"time"

	"github.com/Rorical/RoriCalc/internal/action"
	"github.com/Rorical/RoriCalc/internal/models"
)

// UIEvent represents events sent from UI to Core
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from Core to UI
type CoreEvent interface {
	CoreEvent()
}

// ActionEvent - UI forwards a key press or button to the core
type ActionEvent struct {
	Action action.Action
}

func (e ActionEvent) UIEvent() {}

// ApplyResult is the reply to an ApplyRequestEvent
type ApplyResult struct {
	Snapshot models.Snapshot
	Errors   []string
}

// ApplyRequestEvent - headless callers run actions and wait for the outcome.
// Reply must be buffered; the core never blocks on it.
type ApplyRequestEvent struct {
	Actions []action.Action
	Reply   chan<- ApplyResult
}

func (e ApplyRequestEvent) UIEvent() {}

// StateUpdateEvent - Core pushes the rendered calculator state to UI
type StateUpdateEvent struct {
	Snapshot  models.Snapshot
	Errors    []string // errors raised by the action, newest last
	HideError bool     // the action asked for the error banner to close
}

func (e StateUpdateEvent) CoreEvent() {}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

func (e EventBusError) Unwrap() error {
	return e.Err
}

var ErrChannelFull = errors.New("channel is full")

// EventBus handles communication between UI and Core
type EventBus struct {
	uiToCore      chan UIEvent
	coreToUI      chan CoreEvent
	errorCallback func(EventBusError)
}

func NewEventBus() *EventBus {
	return NewEventBusWithSize(100)
}

func NewEventBusWithSize(size int) *EventBus {
	return &EventBus{
		uiToCore: make(chan UIEvent, size),
		coreToUI: make(chan CoreEvent, size),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.errorCallback = callback
}

func (eb *EventBus) report(operation string, err error) error {
	busError := EventBusError{
		Operation: operation,
		Err:       err,
		Timestamp: time.Now(),
	}
	if eb.errorCallback != nil {
		eb.errorCallback(busError)
	}
	return busError
}

// SendToCore never blocks; a full queue is reported as ErrChannelFull
func (eb *EventBus) SendToCore(event UIEvent) error {
	select {
	case eb.uiToCore <- event:
		return nil
	default:
		return eb.report("SendToCore", ErrChannelFull)
	}
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	select {
	case eb.coreToUI <- event:
		return nil
	default:
		return eb.report("SendToUI", ErrChannelFull)
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

func (eb *EventBus) Close() {
	close(eb.uiToCore)
	close(eb.coreToUI)
}
