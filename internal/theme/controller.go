// Package theme resolves, applies and persists the light/dark preference.
package theme

import (
	"io"
	"log/slog"

	"github.com/amishk599/jobfinder/internal/model"
)

// StorageKey is the single preference key owned by the controller.
const StorageKey = "theme"

// Default is used when neither storage nor the environment has an opinion.
const Default = model.ThemeDark

// Source says where a resolved preference came from.
type Source int

const (
	SourceDefault Source = iota
	SourceStored
	SourceSignal
	SourceToggle
)

func (s Source) String() string {
	switch s {
	case SourceStored:
		return "stored"
	case SourceSignal:
		return "terminal"
	case SourceToggle:
		return "toggle"
	default:
		return "default"
	}
}

// Applier puts the visual marker for a theme in place.
type Applier interface {
	ApplyTheme(model.Theme)
}

// ApplierFunc adapts a function to Applier.
type ApplierFunc func(model.Theme)

func (f ApplierFunc) ApplyTheme(t model.Theme) { f(t) }

// Controller owns the persisted theme key. Storage and signal failures are
// logged and absorbed; no method returns an error.
type Controller struct {
	store   model.PreferenceStore
	signal  model.ColorSchemeSignal
	applier Applier
	logger  *slog.Logger

	current model.Theme
	source  Source
}

// NewController wires the ports. Any of them may be nil; a nil logger discards.
func NewController(store model.PreferenceStore, signal model.ColorSchemeSignal, applier Applier, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		store:   store,
		signal:  signal,
		applier: applier,
		logger:  logger,
		current: Default,
	}
}

// Load resolves the preference: the stored value if it is one of the two
// known values, else the OS-level signal, else Default. The result becomes
// the current preference.
func (c *Controller) Load() model.Theme {
	c.current, c.source = c.resolve()
	c.logger.Debug("theme resolved", "theme", c.current.String(), "source", c.source.String())
	return c.current
}

func (c *Controller) resolve() (model.Theme, Source) {
	if c.store != nil {
		raw, ok, err := c.store.Get(StorageKey)
		switch {
		case err != nil:
			c.logger.Warn("reading theme preference failed", "error", err)
		case ok:
			if t, valid := model.ParseTheme(raw); valid {
				return t, SourceStored
			}
			c.logger.Debug("ignoring unrecognized theme preference", "value", raw)
		}
	}

	if c.signal != nil {
		if dark, ok := c.signal.PrefersDark(); ok {
			if dark {
				return model.ThemeDark, SourceSignal
			}
			return model.ThemeLight, SourceSignal
		}
	}

	return Default, SourceDefault
}

// Apply hands t to the applier.
func (c *Controller) Apply(t model.Theme) {
	if c.applier != nil {
		c.applier.ApplyTheme(t)
	}
}

// Start resolves the initial preference and applies it.
func (c *Controller) Start() model.Theme {
	t := c.Load()
	c.Apply(t)
	return t
}

// Toggle flips the current preference, persists it and re-applies it. A
// failed write only costs persistence: the new value still governs this session.
func (c *Controller) Toggle() model.Theme {
	c.current = c.current.Opposite()
	c.source = SourceToggle

	if c.store != nil {
		if err := c.store.Set(StorageKey, c.current.String()); err != nil {
			c.logger.Warn("persisting theme preference failed", "theme", c.current.String(), "error", err)
		}
	}

	c.Apply(c.current)
	return c.current
}

// Current returns the preference governing the display.
func (c *Controller) Current() model.Theme { return c.current }

// Source returns where the current preference came from.
func (c *Controller) Source() Source { return c.source }
