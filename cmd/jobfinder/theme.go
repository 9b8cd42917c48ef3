package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Print the resolved light/dark preference",
	Long:  "Resolves the theme the way the page does (stored value, then terminal background, then dark) and prints it with its source.",
	RunE:  runTheme,
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip and persist the theme preference",
	RunE:  runThemeToggle,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeToggleCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	logger := setupLogger(os.Stderr, debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	prefs := openStore(cfg, logger)
	defer prefs.Close()

	ctl := setupTheme(prefs, nil, logger)
	t := ctl.Load()
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", t, ctl.Source())
	return nil
}

func runThemeToggle(cmd *cobra.Command, args []string) error {
	logger := setupLogger(os.Stderr, debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	prefs := openStore(cfg, logger)
	defer prefs.Close()

	ctl := setupTheme(prefs, nil, logger)
	from := ctl.Load()
	to := ctl.Toggle()
	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", from, to)
	return nil
}
