package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/jobfinder/internal/content"
	"github.com/amishk599/jobfinder/internal/landing"
	"github.com/amishk599/jobfinder/internal/theme"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Open the landing page (TUI)",
	Long:  "Shows the landing page with the auto-scrolling testimonials. Hover the ticker to pause it, click a tile to expand it, press t to switch theme.",
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	logger := setupLogger(os.Stderr, debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	catalog, err := content.Load(cfg.ContentPath)
	if err != nil {
		logger.Error("failed to load content", "error", err)
		os.Exit(1)
	}

	// Anything written to stdout once the alt screen is up corrupts the display.
	w, closeLog, err := tuiLogWriter(cfg)
	if err != nil {
		logger.Error("failed to open log file", "error", err)
		os.Exit(1)
	}
	defer closeLog()
	logger = setupLogger(w, debug)

	prefs := openStore(cfg, logger)
	defer prefs.Close()

	return landing.RunPage(landing.Options{
		Catalog: catalog,
		Marquee: cfg.Marquee,
		Theme:   setupTheme(prefs, theme.LipglossApplier, logger),
		Logger:  logger,
	})
}
