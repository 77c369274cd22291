package core

import (
	"context"
	"fmt"
	"log"

	"github.com/Rorical/RoriCalc/internal/action"
	"github.com/Rorical/RoriCalc/internal/calculator"
	"github.com/Rorical/RoriCalc/internal/controller"
	"github.com/Rorical/RoriCalc/internal/eventbus"
	"github.com/Rorical/RoriCalc/internal/models"
)

// CalculatorService owns the calculator. Only its event loop touches the
// model, so every action runs on one control path.
type CalculatorService struct {
	calc       *calculator.Calculator
	render     *RenderState
	controller *controller.Controller
	eventBus   *eventbus.EventBus
	ctx        context.Context
	cancel     context.CancelFunc
	done       chan struct{} // closed when eventLoop returns
	started    bool
}

func NewCalculatorService(eb *eventbus.EventBus) *CalculatorService {
	calc := calculator.New()
	render := NewRenderState()
	ctx, cancel := context.WithCancel(context.Background())

	return &CalculatorService{
		calc:       calc,
		render:     render,
		controller: controller.New(calc, render),
		eventBus:   eb,
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
}

// Start runs the core logic in a goroutine
func (cs *CalculatorService) Start() {
	// Send initial state to UI immediately
	cs.pushStateToUI()
	cs.started = true
	go cs.eventLoop()
}

// Stop cancels the loop and waits for it to exit, so the event bus can be
// closed safely afterwards. Calling Stop without Start does not block.
func (cs *CalculatorService) Stop() {
	cs.cancel()
	if cs.started {
		<-cs.done
	}
}

func (cs *CalculatorService) eventLoop() {
	defer close(cs.done)
	for {
		select {
		case <-cs.ctx.Done():
			return
		case event, ok := <-cs.eventBus.UIToCore():
			if !ok {
				return
			}
			cs.handleUIEvent(event)
		}
	}
}

func (cs *CalculatorService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.ActionEvent:
		cs.dispatch(e.Action)
		cs.pushStateToUI()
	case eventbus.ApplyRequestEvent:
		for _, a := range e.Actions {
			cs.dispatch(a)
		}
		errors, _ := cs.render.drain()
		e.Reply <- eventbus.ApplyResult{
			Snapshot: cs.render.Snapshot(),
			Errors:   errors,
		}
	}
}

func (cs *CalculatorService) dispatch(a action.Action) {
	if err := cs.controller.Dispatch(a); err != nil {
		log.Printf("action %s: %v", a.Name(), err)
	}
}

func (cs *CalculatorService) pushStateToUI() {
	errors, hideError := cs.render.drain()

	if err := cs.eventBus.SendToUI(eventbus.StateUpdateEvent{
		Snapshot:  cs.render.Snapshot(),
		Errors:    errors,
		HideError: hideError,
	}); err != nil {
		log.Printf("Error sending state to UI: %v", err)
	}
}

// Apply runs actions on the core loop and waits for the rendered result.
func (cs *CalculatorService) Apply(ctx context.Context, actions ...action.Action) (eventbus.ApplyResult, error) {
	if cs.ctx.Err() != nil {
		return eventbus.ApplyResult{}, fmt.Errorf("calculator service stopped")
	}

	reply := make(chan eventbus.ApplyResult, 1)
	if err := cs.eventBus.SendToCore(eventbus.ApplyRequestEvent{Actions: actions, Reply: reply}); err != nil {
		return eventbus.ApplyResult{}, fmt.Errorf("failed to queue actions: %w", err)
	}

	select {
	case result := <-reply:
		return result, nil
	case <-ctx.Done():
		return eventbus.ApplyResult{}, ctx.Err()
	case <-cs.ctx.Done():
		return eventbus.ApplyResult{}, fmt.Errorf("calculator service stopped")
	}
}

// Snapshot applies nothing and returns the current rendering
func (cs *CalculatorService) Snapshot(ctx context.Context) (models.Snapshot, error) {
	result, err := cs.Apply(ctx)
	return result.Snapshot, err
}
