package action

import "github.com/Rorical/RoriCalc/internal/calculator"

// Action is one user command against the calculator. The set is closed:
// only the variants in this package implement it.
type Action interface {
	action()
	Name() string
}

// Digit enters a single digit 0-9
type Digit struct {
	Digit string
}

// Decimal enters the decimal point
type Decimal struct{}

// SetOperation selects a binary operator
type SetOperation struct {
	Op calculator.Operation
}

type Equals struct{}

type Clear struct{}

// Delete removes the last entered character
type Delete struct{}

type ToggleSign struct{}

type Percentage struct{}

type ClearHistory struct{}

func (Digit) action()        {}
func (Decimal) action()      {}
func (SetOperation) action() {}
func (Equals) action()       {}
func (Clear) action()        {}
func (Delete) action()       {}
func (ToggleSign) action()   {}
func (Percentage) action()   {}
func (ClearHistory) action() {}

func (a Digit) Name() string        { return a.Digit }
func (Decimal) Name() string        { return "decimal" }
func (a SetOperation) Name() string { return a.Op.Symbol() }
func (Equals) Name() string         { return "equals" }
func (Clear) Name() string          { return "clear" }
func (Delete) Name() string         { return "delete" }
func (ToggleSign) Name() string     { return "sign" }
func (Percentage) Name() string     { return "percentage" }
func (ClearHistory) Name() string   { return "clear-history" }
