package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriCalc/internal/action"
	"github.com/Rorical/RoriCalc/internal/core"
	"github.com/Rorical/RoriCalc/internal/eventbus"
)

var showHistory bool

var evalCmd = &cobra.Command{
	Use:   "eval [keys...]",
	Short: "Press keys without the UI and print the display",
	Long: `Press calculator keys headlessly and print what the display shows.

Keys are read one character at a time unless they form a named key:
Enter, Backspace, Escape, clear, sign, percent, clear-history.

  roricalc eval "5 + 3 * 2 ="       # 16
  roricalc eval 1/3=                 # 0.33333333`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		actions, err := action.ParseKeys(strings.Join(args, " "))
		if err != nil {
			return err
		}

		eb := eventbus.NewEventBus()
		service := core.NewCalculatorService(eb)
		service.Start()
		defer service.Stop()

		result, err := service.Apply(cmd.Context(), actions...)
		if err != nil {
			return fmt.Errorf("failed to evaluate: %w", err)
		}

		out := cmd.OutOrStdout()
		if showHistory {
			for _, entry := range result.Snapshot.History {
				fmt.Fprintln(out, entry.String())
			}
		}
		if result.Snapshot.OperationDisplay != "" {
			fmt.Fprintln(out, result.Snapshot.OperationDisplay)
		}
		fmt.Fprintln(out, result.Snapshot.Display)

		for _, msg := range result.Errors {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", msg)
		}
		if len(result.Errors) > 0 {
			return fmt.Errorf("%d key(s) failed", len(result.Errors))
		}
		return nil
	},
}

func init() {
	evalCmd.Flags().BoolVar(&showHistory, "history", false, "print every calculation before the display")
}
