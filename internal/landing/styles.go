package landing

import "github.com/charmbracelet/lipgloss"

// Palette colors adapt to lipgloss's dark-background marker, which the theme
// controller sets. Light values first.
var (
	colorText   = lipgloss.AdaptiveColor{Light: "235", Dark: "255"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "243", Dark: "245"}
	colorFaint  = lipgloss.AdaptiveColor{Light: "250", Dark: "238"}
	colorAccent = lipgloss.AdaptiveColor{Light: "136", Dark: "220"} // yellow
	colorFocus  = lipgloss.AdaptiveColor{Light: "25", Dark: "39"}   // blue
	colorBar    = lipgloss.AdaptiveColor{Light: "254", Dark: "236"}
	colorShade  = lipgloss.AdaptiveColor{Light: "252", Dark: "234"}
)

var (
	brandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Padding(0, 1)

	navStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	navButtonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(colorFaint).
			Padding(0, 1)

	heroTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	heroHighlightStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)

	heroTaglineStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	heroStyle = lipgloss.NewStyle().
			Padding(1, 2)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText).
				Padding(0, 1)

	sectionSubtitleStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 1)

	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFaint).
			Padding(0, 1)

	focusedTileStyle = tileStyle.
				BorderForeground(colorFocus)

	tileTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	tileTextStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	tileMediaStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Italic(true)

	tickerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFaint)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFaint).
			Padding(0, 1)

	cardQuoteStyle = lipgloss.NewStyle().
			Foreground(colorText)

	cardAuthorStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	fadeStyle = lipgloss.NewStyle().
			Faint(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(colorText).
			Background(colorBar)

	lightboxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFocus).
			Padding(0, 1)

	lightboxTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText)

	lightboxCloseStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)

	lightboxCaptionStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Align(lipgloss.Center, lipgloss.Center)

	backdropStyle = lipgloss.NewStyle().
			Background(colorShade)
)
