package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriCalc/internal/core"
	"github.com/Rorical/RoriCalc/internal/eventbus"
	"github.com/Rorical/RoriCalc/internal/server"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the calculator as MCP tools over stdio",
	Run: func(cmd *cobra.Command, args []string) {
		// stdout carries the protocol; logs go to stderr
		log.SetOutput(cmd.ErrOrStderr())

		eb := eventbus.NewEventBus()
		service := core.NewCalculatorService(eb)
		service.Start()
		defer service.Stop()

		if err := server.NewCalculatorServer(service).Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	},
}
