package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Rorical/RoriCalc/internal/action"
	"github.com/Rorical/RoriCalc/internal/calculator"
	"github.com/Rorical/RoriCalc/internal/core"
)

const (
	Name    = "roricalc"
	Version = "0.1.0"
)

// Tool names
const (
	ToolPress        = "calculator_press"
	ToolHistory      = "calculator_history"
	ToolClearHistory = "calculator_clear_history"
	ToolFormat       = "calculator_format"
)

// recentLimit matches the history panel of the terminal UI
const recentLimit = 5

// CalculatorServer exposes one shared calculator over MCP
type CalculatorServer struct {
	mcpServer *server.MCPServer
	service   *core.CalculatorService
}

// PressResult is the JSON body returned by calculator_press
type PressResult struct {
	Display   string                    `json:"display"`
	Operation string                    `json:"operation"`
	Recent    []calculator.HistoryEntry `json:"recent_history"`
	Errors    []string                  `json:"errors,omitempty"`
}

func NewCalculatorServer(service *core.CalculatorService) *CalculatorServer {
	s := &CalculatorServer{
		mcpServer: server.NewMCPServer(Name, Version, server.WithToolCapabilities(false)),
		service:   service,
	}
	s.registerTools()
	return s
}

// Start serves MCP over stdio until the client disconnects
func (s *CalculatorServer) Start() error {
	log.Printf("Starting %s MCP server %s", Name, Version)

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}
	return nil
}

func (s *CalculatorServer) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool(ToolPress,
		mcp.WithDescription("Press calculator keys in order and return the display. "+
			"Keys: digits, '.', + - * /, = or Enter, Backspace, Escape or clear, %, sign, clear-history. "+
			"Separate named keys with spaces, e.g. '12 + 3 = sign'."),
		mcp.WithString("keys", mcp.Required(), mcp.Description("Key script to press")),
	), s.handlePress)

	s.mcpServer.AddTool(mcp.NewTool(ToolHistory,
		mcp.WithDescription("List every successful calculation in chronological order"),
	), s.handleHistory)

	s.mcpServer.AddTool(mcp.NewTool(ToolClearHistory,
		mcp.WithDescription("Forget the calculation history; the current value is kept"),
	), s.handleClearHistory)

	s.mcpServer.AddTool(mcp.NewTool(ToolFormat,
		mcp.WithDescription("Format a number the way the calculator displays results"),
		mcp.WithNumber("number", mcp.Required(), mcp.Description("Value to format")),
	), s.handleFormat)
}

func (s *CalculatorServer) handlePress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys := mcp.ParseString(req, "keys", "")
	if keys == "" {
		return mcp.NewToolResultError("keys parameter is required"), nil
	}

	actions, err := action.ParseKeys(keys)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.Apply(ctx, actions...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to apply keys: %v", err)), nil
	}

	return jsonResult(PressResult{
		Display:   result.Snapshot.Display,
		Operation: result.Snapshot.OperationDisplay,
		Recent:    calculator.Recent(result.Snapshot.History, recentLimit),
		Errors:    result.Errors,
	})
}

func (s *CalculatorServer) handleHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := s.service.Snapshot(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read history: %v", err)), nil
	}
	return jsonResult(snap.History)
}

func (s *CalculatorServer) handleClearHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := s.service.Apply(ctx, action.ClearHistory{}); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to clear history: %v", err)), nil
	}
	return mcp.NewToolResultText("History cleared"), nil
}

func (s *CalculatorServer) handleFormat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	number := mcp.ParseFloat64(req, "number", math.NaN())
	if math.IsNaN(number) {
		return mcp.NewToolResultError("number parameter is required"), nil
	}
	return mcp.NewToolResultText(calculator.FormatResult(number)), nil
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
