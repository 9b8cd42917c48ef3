package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/jobfinder/internal/config"
	"github.com/amishk599/jobfinder/internal/model"
	"github.com/amishk599/jobfinder/internal/store"
	"github.com/amishk599/jobfinder/internal/theme"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "jobfinder",
	Short: "Job searching, without the noise",
	Long:  "Job Finder Automation landing page for the terminal: walkthrough, testimonials, and a light/dark theme that sticks.",
	// Default to `show` so that `jobfinder` with no args opens the page.
	RunE:         runShow,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBFINDER_CONFIG env var or ./jobfinder.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > JOBFINDER_CONFIG env var > "./jobfinder.yaml".
// Only the implicit default may be missing.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if env := os.Getenv("JOBFINDER_CONFIG"); env != "" {
		return config.Load(env)
	}
	return config.LoadOrDefault("jobfinder.yaml")
}

func setupLogger(w io.Writer, dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// tuiLogWriter returns where logs go while the TUI owns the terminal: the
// configured log file, or nowhere.
func tuiLogWriter(cfg *config.Config) (io.Writer, func(), error) {
	if cfg.LogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

type preferenceStore interface {
	model.PreferenceStore
	Close() error
}

// openStore picks the preference backend. A store that can't be opened
// degrades to memory: the theme still works for this session.
func openStore(cfg *config.Config, logger *slog.Logger) preferenceStore {
	if !cfg.Theme.Persist {
		logger.Debug("theme persistence disabled")
		return store.NewMemoryStore()
	}
	s, err := store.NewSQLiteStore(cfg.Theme.StorePath)
	if err != nil {
		logger.Warn("preference store unavailable, theme will not persist", "path", cfg.Theme.StorePath, "error", err)
		return store.NewMemoryStore()
	}
	return s
}

func setupTheme(prefs model.PreferenceStore, applier theme.Applier, logger *slog.Logger) *theme.Controller {
	return theme.NewController(prefs, theme.NewTerminalSignal(os.Stdout), applier, logger)
}
