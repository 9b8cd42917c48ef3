package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/amishk599/jobfinder/internal/model"
)

var _ model.ColorSchemeSignal = (*TerminalSignal)(nil)

// TerminalSignal asks the terminal for its background color. Output that
// isn't a terminal can't answer, so it reports ok=false.
type TerminalSignal struct {
	out *os.File
}

func NewTerminalSignal(out *os.File) *TerminalSignal {
	return &TerminalSignal{out: out}
}

// PrefersDark must be called before a TUI takes over the terminal: the
// query reads the reply from the same tty.
func (s *TerminalSignal) PrefersDark() (bool, bool) {
	if s.out == nil || !term.IsTerminal(int(s.out.Fd())) {
		return false, false
	}
	return lipgloss.HasDarkBackground(), true
}

// LipglossApplier sets the renderer-wide dark background marker, which every
// lipgloss.AdaptiveColor reads when it renders.
var LipglossApplier = ApplierFunc(func(t model.Theme) {
	lipgloss.SetHasDarkBackground(t == model.ThemeDark)
})

// SignalFunc adapts a function to model.ColorSchemeSignal.
type SignalFunc func() (dark, ok bool)

func (f SignalFunc) PrefersDark() (bool, bool) { return f() }
