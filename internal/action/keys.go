package action

import (
	"fmt"
	"strings"

	"github.com/Rorical/RoriCalc/internal/calculator"
)

// namedKeys covers browser key names, Bubble Tea key strings and the
// spelled-out names accepted on the command line.
var namedKeys = map[string]Action{
	"enter":         Equals{},
	"=":             Equals{},
	"equals":        Equals{},
	"backspace":     Delete{},
	"delete":        Delete{},
	"del":           Delete{},
	"escape":        Clear{},
	"esc":           Clear{},
	"clear":         Clear{},
	"c":             Clear{},
	"%":             Percentage{},
	"percent":       Percentage{},
	"percentage":    Percentage{},
	"n":             ToggleSign{},
	"sign":          ToggleSign{},
	"neg":           ToggleSign{},
	".":             Decimal{},
	"decimal":       Decimal{},
	"clear-history": ClearHistory{},
}

// FromKey maps a single key press to its action.
func FromKey(key string) (Action, bool) {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return Digit{Digit: key}, true
	}
	// Upper-case X is reserved for clearing history; lower-case x multiplies.
	if key == "X" {
		return ClearHistory{}, true
	}
	switch key {
	case "+", "-", "*", "/":
		op, _ := calculator.ParseOperation(key)
		return SetOperation{Op: op}, true
	}
	if a, ok := namedKeys[strings.ToLower(key)]; ok {
		return a, true
	}
	return nil, false
}

// ParseKeys turns a key script such as "12 + 3.5 = sign" into actions.
// Whitespace separates tokens; a token that is not a key name is read one
// character at a time.
func ParseKeys(s string) ([]Action, error) {
	var actions []Action
	for _, token := range strings.Fields(s) {
		if len(token) > 1 {
			if a, ok := namedKeys[strings.ToLower(token)]; ok {
				actions = append(actions, a)
				continue
			}
		}
		for i, r := range token {
			a, ok := FromKey(string(r))
			if !ok {
				return nil, fmt.Errorf("unknown key %q at offset %d of %q", r, i, token)
			}
			actions = append(actions, a)
		}
	}
	return actions, nil
}
