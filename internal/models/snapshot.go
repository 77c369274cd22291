package models

import "github.com/Rorical/RoriCalc/internal/calculator"

// Snapshot is what the calculator view currently shows
type Snapshot struct {
	Display          string                    `json:"display"`
	OperationDisplay string                    `json:"operation"`
	History          []calculator.HistoryEntry `json:"history"`
}

// OperationText renders the pending-operation line; empty when nothing is pending
func OperationText(left, symbol string) string {
	if left == "" || symbol == "" {
		return ""
	}
	return left + " " + symbol
}
