package controller

import (
	"fmt"

	"github.com/Rorical/RoriCalc/internal/action"
	"github.com/Rorical/RoriCalc/internal/calculator"
)

// View is the rendering boundary. It holds no arithmetic.
type View interface {
	UpdateDisplay(text string)
	// UpdateOperationDisplay shows "<left> <symbol>"; two empty strings clear it.
	UpdateOperationDisplay(left, symbol string)
	UpdateHistory(history []calculator.HistoryEntry)
	ShowError(message string)
	HideError()
}

// Controller relays actions to the calculator and results to the view
type Controller struct {
	calc *calculator.Calculator
	view View
}

func New(calc *calculator.Calculator, view View) *Controller {
	c := &Controller{calc: calc, view: view}
	view.UpdateDisplay(calc.CurrentValue())
	view.UpdateHistory(calc.History())
	return c
}

// Dispatch applies one action. Model errors are shown on the view and
// returned so callers can log or collect them.
func (c *Controller) Dispatch(a action.Action) error {
	switch a := a.(type) {
	case action.Digit:
		return c.handleDigit(a.Digit)
	case action.Decimal:
		c.view.UpdateDisplay(c.calc.AppendDecimal())
	case action.SetOperation:
		return c.handleOperation(a.Op)
	case action.Equals:
		return c.handleEquals()
	case action.Clear:
		c.handleClear()
	case action.Delete:
		c.view.UpdateDisplay(c.calc.DeleteDigit())
	case action.ToggleSign:
		c.view.UpdateDisplay(c.calc.ChangeSign())
	case action.Percentage:
		c.view.UpdateDisplay(c.calc.Percentage())
	case action.ClearHistory:
		c.calc.ClearHistory()
		c.view.UpdateHistory(nil)
	default:
		err := fmt.Errorf("unsupported action %T", a)
		c.view.ShowError(err.Error())
		return err
	}
	return nil
}

func (c *Controller) handleDigit(digit string) error {
	result, err := c.calc.AppendDigit(digit)
	if err != nil {
		c.view.ShowError(err.Error())
		return err
	}
	c.view.UpdateDisplay(result)
	return nil
}

func (c *Controller) handleOperation(op calculator.Operation) error {
	result, err := c.calc.SetOperation(op)
	if err != nil {
		c.resetAfterError()
		c.view.ShowError(err.Error())
		return err
	}

	c.view.UpdateDisplay(result.CurrentValue)
	left, _ := c.calc.PreviousValue()
	c.view.UpdateOperationDisplay(left, result.Operation.Symbol())
	// a chained fold records history too
	c.view.UpdateHistory(c.calc.History())
	return nil
}

func (c *Controller) handleEquals() error {
	result, err := c.calc.Calculate()
	if err != nil {
		c.resetAfterError()
		c.view.ShowError(err.Error())
		return err
	}

	c.view.UpdateDisplay(result)
	c.view.UpdateOperationDisplay("", "")
	c.view.UpdateHistory(c.calc.History())
	return nil
}

func (c *Controller) handleClear() {
	c.view.UpdateDisplay(c.calc.Clear())
	c.view.UpdateOperationDisplay("", "")
	c.view.HideError()
}

func (c *Controller) resetAfterError() {
	c.view.UpdateDisplay(c.calc.CurrentValue())
	c.view.UpdateOperationDisplay("", "")
	c.view.UpdateHistory(c.calc.History())
}
