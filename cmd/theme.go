package cmd

import (
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriCalc/internal/config"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or change the color theme",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var theme string
		if len(args) > 0 {
			theme = args[0]
		} else {
			prompt := promptui.Select{
				Label:     fmt.Sprintf("Select theme (current: %s)", cfg.Theme()),
				Items:     []string{config.ThemeLight, config.ThemeDark},
				CursorPos: boolIndex(cfg.DarkTheme),
			}
			_, theme, err = prompt.Run()
			if err != nil {
				log.Fatalf("Selection failed: %v", err)
			}
		}

		if err := cfg.SetTheme(theme); err != nil {
			log.Fatalf("Invalid theme: %v", err)
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", cfg.Theme())
	},
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
