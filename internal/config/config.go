package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the landing page.
type Config struct {
	Marquee     MarqueeConfig
	Theme       ThemeConfig
	ContentPath string // optional catalog override; empty uses the embedded catalog
	LogFile     string // where logs go while the TUI owns the terminal
}

// MarqueeConfig controls the testimonial ticker.
type MarqueeConfig struct {
	Velocity      float64       `validate:"gt=0"`     // rows advanced per frame
	FrameInterval time.Duration `validate:"gte=1ms"`  // delay between frames
	Height        int           `validate:"gte=3"`    // visible rows inside the box
	Gap           int           `validate:"gte=0"`    // blank rows between cards
}

// ThemeConfig controls where the light/dark preference lives.
type ThemeConfig struct {
	StorePath string `validate:"required_if=Persist true"`
	Persist   bool
}

const (
	DefaultVelocity      = 0.4
	DefaultFrameInterval = 33 * time.Millisecond
	DefaultHeight        = 14
	DefaultGap           = 1
	DefaultStorePath     = "jobfinder.db"
)

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Marquee: MarqueeConfig{
			Velocity:      DefaultVelocity,
			FrameInterval: DefaultFrameInterval,
			Height:        DefaultHeight,
			Gap:           DefaultGap,
		},
		Theme: ThemeConfig{
			StorePath: DefaultStorePath,
			Persist:   true,
		},
	}
}

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	Marquee     rawMarqueeConfig `yaml:"marquee"`
	Theme       rawThemeConfig   `yaml:"theme"`
	ContentPath string           `yaml:"content_path"`
	LogFile     string           `yaml:"log_file"`
}

type rawMarqueeConfig struct {
	Velocity      *float64 `yaml:"velocity"`
	FrameInterval string   `yaml:"frame_interval"`
	Height        *int     `yaml:"height"`
	Gap           *int     `yaml:"gap"`
}

type rawThemeConfig struct {
	StorePath string `yaml:"store_path"`
	Persist   *bool  `yaml:"persist"`
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
// Unset keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if raw.Marquee.Velocity != nil {
		cfg.Marquee.Velocity = *raw.Marquee.Velocity
	}
	if raw.Marquee.FrameInterval != "" {
		cfg.Marquee.FrameInterval, err = time.ParseDuration(raw.Marquee.FrameInterval)
		if err != nil {
			return nil, fmt.Errorf("parse marquee.frame_interval %q: %w", raw.Marquee.FrameInterval, err)
		}
	}
	if raw.Marquee.Height != nil {
		cfg.Marquee.Height = *raw.Marquee.Height
	}
	if raw.Marquee.Gap != nil {
		cfg.Marquee.Gap = *raw.Marquee.Gap
	}
	if raw.Theme.StorePath != "" {
		cfg.Theme.StorePath = raw.Theme.StorePath
	}
	if raw.Theme.Persist != nil {
		cfg.Theme.Persist = *raw.Theme.Persist
	}
	cfg.ContentPath = raw.ContentPath
	cfg.LogFile = raw.LogFile

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault behaves like Load, except that a missing file yields Default().
// Used for the implicit ./jobfinder.yaml; explicitly named files go through Load.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

var validate = func() func(cfg *Config) error {
	v := validator.New()
	return func(cfg *Config) error {
		if err := v.Struct(cfg); err != nil {
			var ves validator.ValidationErrors
			if errors.As(err, &ves) {
				fe := ves[0]
				return fmt.Errorf("%s failed validation %q (got %v)", yamlishField(fe), fe.Tag(), fe.Value())
			}
			return fmt.Errorf("validate config: %w", err)
		}
		return nil
	}
}()

// yamlishField turns "Config.Marquee.FrameInterval" into "marquee.frame_interval".
func yamlishField(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = snake(p)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
