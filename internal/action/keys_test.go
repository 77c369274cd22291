package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriCalc/internal/calculator"
)

func TestFromKey(t *testing.T) {
	tests := []struct {
		key      string
		expected Action
	}{
		{key: "7", expected: Digit{Digit: "7"}},
		{key: ".", expected: Decimal{}},
		{key: "+", expected: SetOperation{Op: calculator.Add}},
		{key: "/", expected: SetOperation{Op: calculator.Divide}},
		{key: "Enter", expected: Equals{}},
		{key: "enter", expected: Equals{}},
		{key: "=", expected: Equals{}},
		{key: "Backspace", expected: Delete{}},
		{key: "delete", expected: Delete{}},
		{key: "Escape", expected: Clear{}},
		{key: "esc", expected: Clear{}},
		{key: "%", expected: Percentage{}},
		{key: "n", expected: ToggleSign{}},
		{key: "X", expected: ClearHistory{}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			a, ok := FromKey(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.expected, a)
		})
	}

	for _, key := range []string{"a", "ctrl+c", "", "x"} {
		_, ok := FromKey(key)
		assert.False(t, ok, "key %q should not map", key)
	}
}

func TestParseKeys(t *testing.T) {
	actions, err := ParseKeys("12 + 3.5 = sign")
	require.NoError(t, err)
	assert.Equal(t, []Action{
		Digit{Digit: "1"},
		Digit{Digit: "2"},
		SetOperation{Op: calculator.Add},
		Digit{Digit: "3"},
		Decimal{},
		Digit{Digit: "5"},
		Equals{},
		ToggleSign{},
	}, actions)

	actions, err = ParseKeys("5+3*2=")
	require.NoError(t, err)
	assert.Len(t, actions, 6)

	actions, err = ParseKeys("clear-history Escape")
	require.NoError(t, err)
	assert.Equal(t, []Action{ClearHistory{}, Clear{}}, actions)

	_, err = ParseKeys("5 ^ 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key")

	actions, err = ParseKeys("   ")
	require.NoError(t, err)
	assert.Empty(t, actions)
}
