package models

import "github.com/Rorical/RoriCalc/internal/calculator"

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Display          string                    // Primary numeric display
	OperationDisplay string                    // "<left> <op>" or empty
	History          []calculator.HistoryEntry // Full history as pushed by core
	ShowHistory      bool                      // History panel toggle
	Error            string                    // Visible error banner text, empty when hidden
	ErrorSeq         int                       // Bumped per error so stale dismiss timers are ignored
	PressedKey       string                    // Keypad label currently highlighted
	PressedSeq       int                       // Same trick for the key highlight
	DarkTheme        bool                      // Theme preference
	Status           string                    // Status bar text
	Width            int                       // Terminal width
	Height           int                       // Terminal height
}
