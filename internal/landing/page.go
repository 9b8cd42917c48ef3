// Package landing is the interactive landing page. It mounts the marquee,
// theme and lightbox controllers and feeds them terminal events.
package landing

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/jobfinder/internal/config"
	"github.com/amishk599/jobfinder/internal/lightbox"
	"github.com/amishk599/jobfinder/internal/marquee"
	"github.com/amishk599/jobfinder/internal/model"
	"github.com/amishk599/jobfinder/internal/theme"
)

const (
	minColumnWidth = 24
	howLabel       = "How it works"
	githubLabel    = "GitHub"
	closeLabel     = "[x]"
)

// previewMsg is sent when an async image render completes.
type previewMsg struct {
	path string
	out  string
	err  error
}

type preview struct {
	out string
	err error
}

// layout holds the screen rectangles used for hit testing. Recomputed on resize.
type layout struct {
	leftW, rightW int
	bodyTop       int
	how           rect
	github        rect
	tiles         []rect
	ticker        rect
}

// Options configures a landing page.
type Options struct {
	Catalog model.Catalog
	Marquee config.MarqueeConfig
	Theme   *theme.Controller
	Logger  *slog.Logger
}

type pageModel struct {
	catalog model.Catalog
	logger  *slog.Logger

	engine   *marquee.Engine
	track    *marquee.Track
	frames   *frameLoop
	hover    *hoverZone
	ticker   *tickerView
	theme    *theme.Controller
	lightbox *lightbox.Controller
	previews map[string]preview

	keys    keyMap
	help    help.Model
	openURL func(string)

	width  int
	height int
	layout layout
	focus  int // focused tile, -1 for none
	ready  bool
}

// newPage builds the page and mounts the marquee. The theme controller is
// expected to be started by the caller.
func newPage(opts Options) pageModel {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	frames := newFrameLoop(opts.Marquee.FrameInterval)
	hover := newHoverZone()
	ticker := newTickerView(opts.Marquee.Gap, opts.Marquee.Height)
	track := marquee.NewTrack(opts.Catalog.Testimonials, ticker.measure, float64(opts.Marquee.Gap))

	engine := marquee.NewEngine(frames, opts.Marquee.Velocity, opts.Logger)
	engine.Initialize(track, hover)
	ticker.rebuild(track)

	return pageModel{
		catalog:  opts.Catalog,
		logger:   opts.Logger,
		engine:   engine,
		track:    track,
		frames:   frames,
		hover:    hover,
		ticker:   ticker,
		theme:    opts.Theme,
		lightbox: lightbox.NewController(opts.Logger),
		previews: make(map[string]preview),
		keys:     defaultKeyMap(),
		help:     help.New(),
		openURL:  openURL,
		focus:    -1,
	}
}

func (m pageModel) Init() tea.Cmd {
	return m.frames.next()
}

// unmount stops the frame loop and pointer subscription before the track
// goes away. Safe to call more than once.
func (m pageModel) unmount() {
	m.engine.Teardown()
	m.track.Detach()
}

func (m pageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.recalcLayout()
		if ref, ok := m.lightbox.Current(); ok {
			delete(m.previews, ref.Path)
			return m, m.renderPreviewCmd(ref)
		}
		return m, nil

	case frameMsg:
		return m, m.frames.fire(msg)

	case previewMsg:
		m.previews[msg.path] = preview{out: msg.out, err: msg.err}
		if msg.err != nil {
			m.logger.Debug("preview unavailable", "path", msg.path, "error", msg.err)
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m pageModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.unmount()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Close):
		m.lightbox.Close()
		return m, nil
	}

	if m.lightbox.State().IsOpen() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Pause):
		m.engine.SetPaused(!m.engine.Paused())
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.How):
		if len(m.catalog.Steps) > 0 {
			m.focus = 0
		}
	case key.Matches(msg, m.keys.GitHub):
		m.openRepository()
	case key.Matches(msg, m.keys.Open):
		if m.focus >= 0 && m.focus < len(m.catalog.Steps) {
			return m, m.openMedia(m.catalog.Steps[m.focus].Media)
		}
	}
	return m, nil
}

func (m pageModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if m.lightbox.State().IsOpen() {
		// The backdrop covers the whole page, marquee included.
		m.hover.move(-1, -1)
		if press {
			m.lightbox.Click(m.overlayTarget(msg.X, msg.Y))
		}
		return m, nil
	}

	m.hover.move(msg.X, msg.Y)
	if !press {
		return m, nil
	}

	switch {
	case m.layout.github.contains(msg.X, msg.Y):
		m.openRepository()
	case m.layout.how.contains(msg.X, msg.Y):
		if len(m.catalog.Steps) > 0 {
			m.focus = 0
		}
	default:
		for i, r := range m.layout.tiles {
			if r.contains(msg.X, msg.Y) {
				m.focus = i
				return m, m.openMedia(m.catalog.Steps[i].Media)
			}
		}
	}
	return m, nil
}

func (m pageModel) overlayTarget(x, y int) lightbox.Target {
	ov := m.overlayLayout()
	switch {
	case ov.close.contains(x, y):
		return lightbox.TargetCloseButton
	case ov.box.contains(x, y):
		// Clicks anywhere on the framed image stay inside the modal.
		return lightbox.TargetImage
	default:
		return lightbox.TargetBackdrop
	}
}

func (m *pageModel) toggleTheme() {
	if m.theme == nil {
		return
	}
	m.theme.Toggle()
	m.ticker.rebuild(m.track)
	m.engine.Remeasure()
}

func (m *pageModel) moveFocus(delta int) {
	n := len(m.catalog.Steps)
	if n == 0 {
		return
	}
	if m.focus < 0 {
		if delta > 0 {
			m.focus = 0
		} else {
			m.focus = n - 1
		}
		return
	}
	m.focus = (m.focus + delta + n) % n
}

func (m pageModel) openRepository() {
	if m.catalog.Repository != "" {
		m.openURL(m.catalog.Repository)
	}
}

// openMedia expands ref and starts rendering its preview if none is cached.
func (m pageModel) openMedia(ref model.MediaRef) tea.Cmd {
	m.lightbox.Open(ref)
	if _, ok := m.previews[ref.Path]; ok {
		return nil
	}
	return m.renderPreviewCmd(ref)
}

func (m pageModel) renderPreviewCmd(ref model.MediaRef) tea.Cmd {
	cols, rows := m.previewBounds()
	return func() tea.Msg {
		out, err := lightbox.RenderFile(ref.Path, cols, rows)
		return previewMsg{path: ref.Path, out: out, err: err}
	}
}

// previewBounds is the largest image the overlay can show on this screen.
func (m pageModel) previewBounds() (cols, rows int) {
	return max(min(m.width-8, 100), 20), max(m.height-10, 4)
}

func (m *pageModel) recalcLayout() {
	m.layout.leftW = max((m.width-1)/2, minColumnWidth)
	m.layout.rightW = max(m.width-m.layout.leftW-1, minColumnWidth)

	how, github := renderNav()
	m.layout.github = rect{x: m.width - lipgloss.Width(github), y: 0, w: lipgloss.Width(github), h: 1}
	m.layout.how = rect{x: m.layout.github.x - lipgloss.Width(how), y: 0, w: lipgloss.Width(how), h: 1}

	m.layout.bodyTop = 1 + lipgloss.Height(m.renderHero())

	// Left column: section title, then one tile per step.
	m.layout.tiles = m.layout.tiles[:0]
	y := m.layout.bodyTop + 1
	for i, s := range m.catalog.Steps {
		h := lipgloss.Height(renderTile(s, m.layout.leftW, i == m.focus))
		m.layout.tiles = append(m.layout.tiles, rect{x: 0, y: y, w: m.layout.leftW, h: h})
		y += h
	}

	// Right column: title, subtitle, then the bordered ticker box.
	m.layout.ticker = rect{
		x: m.layout.leftW + 1,
		y: m.layout.bodyTop + 2,
		w: m.layout.rightW,
		h: m.ticker.height + 2,
	}
	m.hover.setArea(m.layout.ticker)

	// Box border (2) and card border (2).
	m.ticker.cardWidth = max(m.layout.rightW-4, 8)
	m.ticker.rebuild(m.track)
	// Card heights change with the width, so the offset may no longer fit.
	m.engine.Remeasure()
}

func (m pageModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.lightbox.State().IsOpen() {
		return m.viewLightbox()
	}
	return m.viewPage()
}

func (m pageModel) viewPage() string {
	header := m.renderHeader()
	hero := m.renderHero()

	left := []string{sectionTitleStyle.Render(howLabel)}
	for i, s := range m.catalog.Steps {
		left = append(left, renderTile(s, m.layout.leftW, i == m.focus))
	}
	leftCol := lipgloss.NewStyle().Width(m.layout.leftW).Render(lipgloss.JoinVertical(lipgloss.Left, left...))

	box := tickerBoxStyle.Width(m.layout.rightW - 2).Render(m.ticker.window(m.track.Offset()))
	rightCol := lipgloss.JoinVertical(lipgloss.Left,
		sectionTitleStyle.Render("What developers say"),
		sectionSubtitleStyle.Render("Built for people who prefer signal over noise."),
		box,
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " ", rightCol)
	lines := strings.Split(header+"\n"+hero+"\n"+body, "\n")

	// Footer and status bar take the last two rows.
	avail := max(m.height-2, 0)
	if len(lines) > avail {
		lines = lines[:avail]
	}
	for len(lines) < avail {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n") + "\n" + m.renderFooter() + "\n" + m.renderStatus()
}

func (m pageModel) renderHeader() string {
	marker := "☾ dark"
	if m.theme != nil && m.theme.Current() == model.ThemeLight {
		marker = "☀ light"
	}
	brand := brandStyle.Render(m.catalog.Product) + navStyle.Render(marker)
	how, github := renderNav()
	gap := max(m.width-lipgloss.Width(brand)-lipgloss.Width(how)-lipgloss.Width(github), 1)
	return brand + strings.Repeat(" ", gap) + how + github
}

func renderNav() (how, github string) {
	return navStyle.Render(howLabel), navButtonStyle.Render(githubLabel)
}

func (m pageModel) renderHero() string {
	h := m.catalog.Hero
	var b strings.Builder
	b.WriteString(heroTitleStyle.Render(h.Title))
	if h.Highlight != "" {
		b.WriteString("\n" + heroHighlightStyle.Render(h.Highlight))
	}
	if h.Tagline != "" {
		b.WriteString("\n\n" + heroTaglineStyle.Width(max(min(m.width-4, 72), 20)).Render(h.Tagline))
	}
	return heroStyle.Render(b.String())
}

func renderTile(s model.Step, width int, focused bool) string {
	st := tileStyle
	if focused {
		st = focusedTileStyle
	}
	content := tileTitleStyle.Render(s.Title) + "\n" +
		tileTextStyle.Render(s.Text) + "\n" +
		tileMediaStyle.Render("▶ "+s.Media.Alt)
	return st.Width(max(width-2, 8)).Render(content)
}

func (m pageModel) renderFooter() string {
	f := m.catalog.Footer
	gap := max(m.width-lipgloss.Width(f.Left)-lipgloss.Width(f.Right)-4, 1)
	return footerStyle.Render(f.Left + strings.Repeat(" ", gap) + f.Right)
}

func (m pageModel) renderStatus() string {
	state := fmt.Sprintf("marquee %s", m.engine.State())
	if m.theme != nil {
		state += " · " + m.theme.Current().String()
	}
	h := m.help
	h.Width = max(m.width-lipgloss.Width(state)-3, 10)
	hints := h.ShortHelpView(m.keys.ShortHelp())
	gap := max(m.width-lipgloss.Width(hints)-lipgloss.Width(state)-2, 1)
	return statusBarStyle.Width(m.width).Render(hints + strings.Repeat(" ", gap) + state)
}

// RunPage starts the theme controller, then runs the page until the user quits.
// The marquee is torn down on every exit path.
func RunPage(opts Options) error {
	if opts.Theme != nil {
		opts.Theme.Start()
	}

	m := newPage(opts)
	defer m.unmount()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running landing page: %w", err)
	}
	return nil
}
