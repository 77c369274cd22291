package calculator

import (
	"fmt"
	"strings"
)

const defaultValue = "0"

// HistoryEntry records one successful evaluation
type HistoryEntry struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

func (h HistoryEntry) String() string {
	return h.Expression + " = " + h.Result
}

// Phase is the operand-entry state derived from the calculator fields
type Phase int

const (
	EnteringFirstOperand Phase = iota
	AwaitingSecondOperand
	EnteringSecondOperand
)

func (p Phase) String() string {
	switch p {
	case AwaitingSecondOperand:
		return "awaiting-second-operand"
	case EnteringSecondOperand:
		return "entering-second-operand"
	}
	return "entering-first-operand"
}

// OperationResult is returned when an operator is selected
type OperationResult struct {
	CurrentValue string
	Operation    Operation
}

// State is a read-only copy of the calculator fields
type State struct {
	CurrentValue       string         `json:"current_value"`
	PreviousValue      string         `json:"previous_value,omitempty"`
	HasPrevious        bool           `json:"has_previous"`
	PendingOperation   Operation      `json:"pending_operation"`
	AwaitingFreshEntry bool           `json:"awaiting_fresh_entry"`
	History            []HistoryEntry `json:"history"`
}

// Calculator holds the numeric-entry state and applies every transition in
// place. It is not safe for concurrent use; callers serialize access.
type Calculator struct {
	currentValue       string
	previousValue      string
	hasPrevious        bool
	pendingOperation   Operation
	awaitingFreshEntry bool
	history            []HistoryEntry
}

func New() *Calculator {
	return &Calculator{
		currentValue: defaultValue,
		history:      make([]HistoryEntry, 0),
	}
}

func (c *Calculator) CurrentValue() string {
	return c.currentValue
}

func (c *Calculator) PreviousValue() (string, bool) {
	return c.previousValue, c.hasPrevious
}

func (c *Calculator) PendingOperation() Operation {
	return c.pendingOperation
}

func (c *Calculator) AwaitingFreshEntry() bool {
	return c.awaitingFreshEntry
}

func (c *Calculator) Phase() Phase {
	switch {
	case c.pendingOperation == OpNone:
		return EnteringFirstOperand
	case c.awaitingFreshEntry:
		return AwaitingSecondOperand
	default:
		return EnteringSecondOperand
	}
}

func (c *Calculator) Snapshot() State {
	return State{
		CurrentValue:       c.currentValue,
		PreviousValue:      c.previousValue,
		HasPrevious:        c.hasPrevious,
		PendingOperation:   c.pendingOperation,
		AwaitingFreshEntry: c.awaitingFreshEntry,
		History:            c.History(),
	}
}

// AppendDigit enters one digit, replacing a lone zero or a finished value.
func (c *Calculator) AppendDigit(digit string) (string, error) {
	if len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
		return c.currentValue, &Error{Kind: KindInvalidDigit, Input: digit}
	}

	if c.currentValue == defaultValue || c.awaitingFreshEntry {
		c.currentValue = digit
		c.awaitingFreshEntry = false
	} else {
		c.currentValue += digit
	}
	return c.currentValue, nil
}

func (c *Calculator) AppendDecimal() string {
	if c.awaitingFreshEntry {
		c.currentValue = "0."
		c.awaitingFreshEntry = false
	} else if !strings.Contains(c.currentValue, ".") {
		c.currentValue += "."
	}
	return c.currentValue
}

// SetOperation selects op. A pending operation is evaluated first so chains
// fold left to right; if that fails the state is reset and op is dropped.
func (c *Calculator) SetOperation(op Operation) (OperationResult, error) {
	if c.hasPrevious {
		if _, err := c.Calculate(); err != nil {
			return OperationResult{CurrentValue: c.currentValue}, err
		}
	}

	c.pendingOperation = op
	c.previousValue = c.currentValue
	c.hasPrevious = true
	c.awaitingFreshEntry = true

	return OperationResult{
		CurrentValue: c.currentValue,
		Operation:    c.pendingOperation,
	}, nil
}

// Calculate applies the pending operation. Without one it returns the
// current value untouched. Any failure resets the state to defaults.
func (c *Calculator) Calculate() (string, error) {
	if !c.hasPrevious || c.pendingOperation == OpNone {
		return c.currentValue, nil
	}

	prev := parseNumber(c.previousValue)
	current := parseNumber(c.currentValue)
	expression := fmt.Sprintf("%s %s %s", c.previousValue, c.pendingOperation.Symbol(), c.currentValue)

	if c.pendingOperation == Divide && current == 0 {
		c.Clear()
		return c.currentValue, &Error{Kind: KindDivisionByZero, Input: expression}
	}

	result, ok := c.pendingOperation.apply(prev, current)
	if !ok {
		return c.currentValue, nil
	}

	c.history = append(c.history, HistoryEntry{
		Expression: expression,
		Result:     numberString(result),
	})

	c.currentValue = FormatResult(result)
	c.pendingOperation = OpNone
	c.previousValue = ""
	c.hasPrevious = false
	c.awaitingFreshEntry = true

	return c.currentValue, nil
}

// Clear resets entry state; history survives.
func (c *Calculator) Clear() string {
	c.currentValue = defaultValue
	c.previousValue = ""
	c.hasPrevious = false
	c.pendingOperation = OpNone
	c.awaitingFreshEntry = false
	return c.currentValue
}

func (c *Calculator) DeleteDigit() string {
	if len(c.currentValue) <= 1 {
		c.currentValue = defaultValue
		return c.currentValue
	}

	c.currentValue = c.currentValue[:len(c.currentValue)-1]
	if c.currentValue == "-" {
		c.currentValue = defaultValue
	}
	return c.currentValue
}

func (c *Calculator) ChangeSign() string {
	c.currentValue = numberString(parseNumber(c.currentValue) * -1)
	return c.currentValue
}

func (c *Calculator) Percentage() string {
	c.currentValue = numberString(parseNumber(c.currentValue) / 100)
	return c.currentValue
}

// History returns a copy in chronological order
func (c *Calculator) History() []HistoryEntry {
	result := make([]HistoryEntry, len(c.history))
	copy(result, c.history)
	return result
}

func (c *Calculator) ClearHistory() {
	c.history = make([]HistoryEntry, 0)
}

// Recent returns up to n entries, most recent first
func Recent(history []HistoryEntry, n int) []HistoryEntry {
	if n <= 0 {
		return []HistoryEntry{}
	}
	if n > len(history) {
		n = len(history)
	}
	result := make([]HistoryEntry, 0, n)
	for i := len(history) - 1; i >= len(history)-n; i-- {
		result = append(result, history[i])
	}
	return result
}
