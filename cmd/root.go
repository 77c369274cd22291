package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriCalc/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "roricalc",
	Short: "A keyboard-driven terminal calculator",
	Long: `RoriCalc is a terminal calculator with immediate left-to-right evaluation,
a running history and light/dark themes.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: run the calculator UI
		application, err := app.NewApplication()
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()

		if err := application.Start(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(mcpCmd)
}
