package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriCalc/internal/action"
	"github.com/Rorical/RoriCalc/internal/calculator"
)

type recordingView struct {
	display   string
	left      string
	symbol    string
	history   []calculator.HistoryEntry
	errors    []string
	errorOpen bool
	hides     int
}

func (v *recordingView) UpdateDisplay(text string) { v.display = text }

func (v *recordingView) UpdateOperationDisplay(left, symbol string) {
	v.left, v.symbol = left, symbol
}

func (v *recordingView) UpdateHistory(history []calculator.HistoryEntry) { v.history = history }

func (v *recordingView) ShowError(message string) {
	v.errors = append(v.errors, message)
	v.errorOpen = true
}

func (v *recordingView) HideError() {
	v.errorOpen = false
	v.hides++
}

func dispatchKeys(t *testing.T, c *Controller, keys string) []error {
	t.Helper()
	actions, err := action.ParseKeys(keys)
	require.NoError(t, err)

	var errs []error
	for _, a := range actions {
		if err := c.Dispatch(a); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func TestNewRendersInitialState(t *testing.T) {
	view := &recordingView{}
	New(calculator.New(), view)

	assert.Equal(t, "0", view.display)
	assert.Empty(t, view.history)
}

func TestDispatchChainedEvaluation(t *testing.T) {
	view := &recordingView{}
	c := New(calculator.New(), view)

	assert.Empty(t, dispatchKeys(t, c, "5 +"))
	assert.Equal(t, "5", view.display)
	assert.Equal(t, "5", view.left)
	assert.Equal(t, "+", view.symbol)

	dispatchKeys(t, c, "3 *")
	assert.Equal(t, "8", view.display)
	assert.Equal(t, "8", view.left)
	assert.Equal(t, "*", view.symbol)
	require.Len(t, view.history, 1)
	assert.Equal(t, "5 + 3 = 8", view.history[0].String())

	dispatchKeys(t, c, "2 =")
	assert.Equal(t, "16", view.display)
	assert.Empty(t, view.left)
	assert.Empty(t, view.symbol)
	require.Len(t, view.history, 2)
	assert.Equal(t, "8 * 2 = 16", view.history[1].String())
}

func TestDispatchDivisionByZero(t *testing.T) {
	view := &recordingView{}
	c := New(calculator.New(), view)

	errs := dispatchKeys(t, c, "5 / 0 =")
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], calculator.ErrDivisionByZero))

	assert.Equal(t, "0", view.display)
	assert.Empty(t, view.symbol)
	assert.Equal(t, []string{"Division by zero"}, view.errors)
	assert.True(t, view.errorOpen)

	dispatchKeys(t, c, "Escape")
	assert.False(t, view.errorOpen)
}

func TestDispatchChainedDivisionByZero(t *testing.T) {
	view := &recordingView{}
	c := New(calculator.New(), view)

	errs := dispatchKeys(t, c, "8 / 0 +")
	require.Len(t, errs, 1)
	assert.Equal(t, "0", view.display)
	assert.Empty(t, view.left)
	assert.Empty(t, view.symbol)
	assert.Equal(t, []string{"Division by zero"}, view.errors)
}

func TestDispatchEntryEditing(t *testing.T) {
	tests := []struct {
		name     string
		keys     string
		expected string
	}{
		{name: "Decimal once", keys: "1 . . 5", expected: "1.5"},
		{name: "Delete last digit", keys: "123 Backspace", expected: "12"},
		{name: "Sign change", keys: "42 sign", expected: "-42"},
		{name: "Percentage", keys: "50 %", expected: "0.5"},
		{name: "Clear", keys: "9 + 1 Escape", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := &recordingView{}
			c := New(calculator.New(), view)
			assert.Empty(t, dispatchKeys(t, c, tt.keys))
			assert.Equal(t, tt.expected, view.display)
		})
	}
}

func TestDispatchClearHistory(t *testing.T) {
	view := &recordingView{}
	calc := calculator.New()
	c := New(calc, view)

	dispatchKeys(t, c, "2 * 21 =")
	require.Len(t, view.history, 1)

	dispatchKeys(t, c, "clear-history")
	assert.Empty(t, view.history)
	assert.Empty(t, calc.History())
	assert.Equal(t, "42", view.display)
}

func TestDispatchInvalidDigit(t *testing.T) {
	view := &recordingView{}
	c := New(calculator.New(), view)

	err := c.Dispatch(action.Digit{Digit: "z"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, calculator.ErrInvalidDigit))
	assert.Len(t, view.errors, 1)
	assert.Equal(t, "0", view.display)
}
