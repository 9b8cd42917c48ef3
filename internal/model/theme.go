package model

// Theme is the light/dark display preference.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

// String returns the persisted form of the theme.
func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme accepts exactly the two persisted forms. Anything else reports ok=false.
func ParseTheme(s string) (Theme, bool) {
	switch s {
	case "dark":
		return ThemeDark, true
	case "light":
		return ThemeLight, true
	default:
		return ThemeDark, false
	}
}

// PreferenceStore persists string preferences by key.
type PreferenceStore interface {
	// Get returns ok=false when the key has never been written.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// ColorSchemeSignal reports the OS-level color scheme.
// ok=false means the environment can't tell.
type ColorSchemeSignal interface {
	PrefersDark() (dark bool, ok bool)
}
