package calculator

import "strings"

// Operation is a binary operator waiting for its right-hand operand
type Operation int

const (
	OpNone Operation = iota
	Add
	Subtract
	Multiply
	Divide
)

func (op Operation) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	}
	return ""
}

func (op Operation) String() string {
	switch op {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	}
	return "none"
}

// ParseOperation accepts operator symbols and names
func ParseOperation(s string) (Operation, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "add", "plus":
		return Add, true
	case "-", "subtract", "minus":
		return Subtract, true
	case "*", "x", "×", "multiply", "times":
		return Multiply, true
	case "/", "÷", "divide":
		return Divide, true
	}
	return OpNone, false
}

func (op Operation) apply(left, right float64) (float64, bool) {
	switch op {
	case Add:
		return left + right, true
	case Subtract:
		return left - right, true
	case Multiply:
		return left * right, true
	case Divide:
		return left / right, true
	}
	return 0, false
}
