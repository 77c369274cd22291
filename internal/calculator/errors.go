package calculator

import "fmt"

type ErrorKind int

const (
	KindDivisionByZero ErrorKind = iota + 1
	KindInvalidDigit
)

// Error is returned by model operations that the caller has to surface
type Error struct {
	Kind  ErrorKind
	Input string // expression or rejected input that caused the error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindDivisionByZero:
		return "Division by zero"
	case KindInvalidDigit:
		return fmt.Sprintf("Invalid digit: %q", e.Input)
	}
	return "calculator error"
}

// Is matches on Kind so sentinels work with errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrDivisionByZero = &Error{Kind: KindDivisionByZero}
	ErrInvalidDigit   = &Error{Kind: KindInvalidDigit}
)
