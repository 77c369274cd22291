package core

import (
	"github.com/Rorical/RoriCalc/internal/calculator"
	"github.com/Rorical/RoriCalc/internal/models"
)

// RenderState is the controller's view inside the core. It keeps the last
// rendered values and collects the transient error signals of one action.
type RenderState struct {
	snapshot  models.Snapshot
	errors    []string
	hideError bool
}

func NewRenderState() *RenderState {
	return &RenderState{
		snapshot: models.Snapshot{
			History: make([]calculator.HistoryEntry, 0),
		},
	}
}

func (rs *RenderState) UpdateDisplay(text string) {
	rs.snapshot.Display = text
}

func (rs *RenderState) UpdateOperationDisplay(left, symbol string) {
	rs.snapshot.OperationDisplay = models.OperationText(left, symbol)
}

func (rs *RenderState) UpdateHistory(history []calculator.HistoryEntry) {
	if history == nil {
		history = make([]calculator.HistoryEntry, 0)
	}
	rs.snapshot.History = history
}

func (rs *RenderState) ShowError(message string) {
	rs.errors = append(rs.errors, message)
	rs.hideError = false
}

func (rs *RenderState) HideError() {
	rs.hideError = true
}

// Snapshot returns a copy safe to hand to another goroutine
func (rs *RenderState) Snapshot() models.Snapshot {
	snap := rs.snapshot
	snap.History = make([]calculator.HistoryEntry, len(rs.snapshot.History))
	copy(snap.History, rs.snapshot.History)
	return snap
}

// drain returns and resets the transient signals
func (rs *RenderState) drain() (errors []string, hideError bool) {
	errors, hideError = rs.errors, rs.hideError
	rs.errors = nil
	rs.hideError = false
	return errors, hideError
}
