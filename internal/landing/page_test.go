package landing

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amishk599/jobfinder/internal/config"
	"github.com/amishk599/jobfinder/internal/content"
	"github.com/amishk599/jobfinder/internal/marquee"
	"github.com/amishk599/jobfinder/internal/model"
	"github.com/amishk599/jobfinder/internal/store"
	"github.com/amishk599/jobfinder/internal/theme"
)

type testPage struct {
	m      pageModel
	prefs  *store.MemoryStore
	opened []string
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPage(t *testing.T) *testPage {
	t.Helper()
	catalog, err := content.Default()
	require.NoError(t, err)

	tp := &testPage{prefs: store.NewMemoryStore()}
	ctl := theme.NewController(tp.prefs, nil, nil, discardLogger())
	ctl.Start()

	tp.m = newPage(Options{
		Catalog: catalog,
		Marquee: config.Default().Marquee,
		Theme:   ctl,
		Logger:  discardLogger(),
	})
	tp.m.openURL = func(u string) { tp.opened = append(tp.opened, u) }
	tp.send(tea.WindowSizeMsg{Width: 120, Height: 50})
	return tp
}

func (tp *testPage) send(msg tea.Msg) tea.Cmd {
	next, cmd := tp.m.Update(msg)
	tp.m = next.(pageModel)
	return cmd
}

func (tp *testPage) frame() tea.Cmd {
	return tp.send(frameMsg{seq: tp.m.frames.seq})
}

func (tp *testPage) moveTo(x, y int) {
	tp.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
}

func (tp *testPage) click(x, y int) tea.Cmd {
	return tp.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func (tp *testPage) press(keys string) tea.Cmd {
	return tp.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
}

func TestMountDuplicatesTrackAndStartsLoop(t *testing.T) {
	tp := newTestPage(t)

	assert.Equal(t, 10, tp.m.track.Len())
	assert.NotNil(t, tp.m.Init(), "first frame is scheduled on mount")
	assert.Equal(t, marquee.Running, tp.m.engine.State())
}

func TestFrameAdvancesMarquee(t *testing.T) {
	tp := newTestPage(t)

	cmd := tp.frame()
	assert.NotNil(t, cmd, "each frame schedules the next")
	assert.InDelta(t, marquee.DefaultVelocity, tp.m.engine.Offset(), 1e-9)

	stale := tp.send(frameMsg{seq: tp.m.frames.seq - 1})
	assert.Nil(t, stale)
	assert.InDelta(t, marquee.DefaultVelocity, tp.m.engine.Offset(), 1e-9)
}

func TestHoverPausesMarquee(t *testing.T) {
	tp := newTestPage(t)
	box := tp.m.layout.ticker
	tp.frame()

	tp.moveTo(box.x+2, box.y+2)
	require.True(t, tp.m.engine.Paused())
	before := tp.m.engine.Offset()
	for i := 0; i < 5; i++ {
		tp.frame()
	}
	assert.Equal(t, before, tp.m.engine.Offset())

	tp.moveTo(0, 0)
	assert.False(t, tp.m.engine.Paused())
	tp.frame()
	assert.Greater(t, tp.m.engine.Offset(), before)
}

func TestPauseKeyToggles(t *testing.T) {
	tp := newTestPage(t)

	tp.press("p")
	assert.True(t, tp.m.engine.Paused())
	tp.press("p")
	assert.False(t, tp.m.engine.Paused())
}

func TestTileClickOpensLightbox(t *testing.T) {
	tp := newTestPage(t)
	require.Len(t, tp.m.layout.tiles, 3)
	tile := tp.m.layout.tiles[1]

	cmd := tp.click(tile.x+3, tile.y+1)

	ref, ok := tp.m.lightbox.Current()
	require.True(t, ok)
	assert.Equal(t, tp.m.catalog.Steps[1].Media, ref)
	require.NotNil(t, cmd, "opening starts a preview render")

	msg, ok := cmd().(previewMsg)
	require.True(t, ok)
	assert.Error(t, msg.err, "media file is not on disk in tests")
	tp.send(msg)
	assert.Contains(t, tp.m.View(), "preview unavailable")
}

func TestLightboxClicks(t *testing.T) {
	tp := newTestPage(t)
	tile := tp.m.layout.tiles[0]
	cmd := tp.click(tile.x+3, tile.y+1)
	tp.send(cmd())

	ov := tp.m.overlayLayout()
	tp.click(ov.image.x, ov.image.y)
	assert.True(t, tp.m.lightbox.State().IsOpen(), "clicks on the image do not reach the backdrop")

	tp.click(0, 0)
	assert.False(t, tp.m.lightbox.State().IsOpen(), "backdrop click closes")
}

func TestLightboxCloseButton(t *testing.T) {
	tp := newTestPage(t)
	tile := tp.m.layout.tiles[2]
	tp.click(tile.x+3, tile.y+1)

	ov := tp.m.overlayLayout()
	tp.click(ov.close.x+1, ov.close.y)
	assert.False(t, tp.m.lightbox.State().IsOpen())
}

func TestKeyboardOpenReplacesAndEscCloses(t *testing.T) {
	tp := newTestPage(t)

	tp.send(tea.KeyMsg{Type: tea.KeyTab})
	tp.send(tea.KeyMsg{Type: tea.KeyEnter})
	first, _ := tp.m.lightbox.Current()
	assert.Equal(t, tp.m.catalog.Steps[0].Media, first)

	// Re-open a different image directly; the second replaces the first.
	tp.m.openMedia(tp.m.catalog.Steps[2].Media)
	second, _ := tp.m.lightbox.Current()
	assert.Equal(t, tp.m.catalog.Steps[2].Media, second)

	tp.send(tea.KeyMsg{Type: tea.KeyEscape})
	_, ok := tp.m.lightbox.Current()
	assert.False(t, ok, "closing does not revert to the first image")

	tp.send(tea.KeyMsg{Type: tea.KeyEscape})
	assert.False(t, tp.m.lightbox.State().IsOpen())
}

func TestHoverIgnoredWhileLightboxOpen(t *testing.T) {
	tp := newTestPage(t)
	box := tp.m.layout.ticker
	tp.m.openMedia(tp.m.catalog.Steps[0].Media)

	tp.moveTo(box.x+2, box.y+2)
	assert.False(t, tp.m.engine.Paused())
}

func TestThemeKeyTogglesAndPersists(t *testing.T) {
	tp := newTestPage(t)
	require.Equal(t, model.ThemeDark, tp.m.theme.Current())

	tp.press("t")

	assert.Equal(t, model.ThemeLight, tp.m.theme.Current())
	v, ok, err := tp.prefs.Get(theme.StorageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
	assert.Contains(t, tp.m.View(), "light")

	tp.press("t")
	v, _, _ = tp.prefs.Get(theme.StorageKey)
	assert.Equal(t, "dark", v)
}

func TestGitHubLink(t *testing.T) {
	tp := newTestPage(t)
	gh := tp.m.layout.github

	tp.click(gh.x+1, gh.y)
	tp.press("g")

	require.Len(t, tp.opened, 2)
	assert.Equal(t, tp.m.catalog.Repository, tp.opened[0])
}

func TestQuitTearsDown(t *testing.T) {
	tp := newTestPage(t)
	tp.frame()
	offset := tp.m.track.Offset()

	cmd := tp.press("q")

	require.NotNil(t, cmd)
	assert.Equal(t, marquee.Stopped, tp.m.engine.State())
	assert.False(t, tp.m.track.Attached())
	assert.Nil(t, tp.m.frames.pending, "no frame left scheduled")
	assert.Nil(t, tp.frame())
	assert.Equal(t, offset, tp.m.track.Offset())
	assert.NotPanics(t, tp.m.unmount)
}

func TestViewRendersPage(t *testing.T) {
	tp := newTestPage(t)

	view := tp.m.View()
	assert.Contains(t, view, "Job Finder Automation")
	assert.Contains(t, view, howLabel)
	assert.Contains(t, view, "What developers say")
	assert.Contains(t, view, "@Aumtk")
	assert.Len(t, strings.Split(view, "\n"), 50)
}

func TestViewBeforeSize(t *testing.T) {
	catalog, err := content.Default()
	require.NoError(t, err)
	m := newPage(Options{Catalog: catalog, Marquee: config.Default().Marquee, Logger: discardLogger()})

	assert.Equal(t, "Initializing...", m.View())
}

func TestTickerWindow(t *testing.T) {
	v := newTickerView(0, 3)
	track := marquee.NewTrack([]model.Testimonial{{Quote: "q", Author: "@a"}}, v.measure, 0)
	v.lines = []string{"a", "b", "c", "d", "e"}

	rows := strings.Split(v.window(-1.7), "\n")
	require.Len(t, rows, 3)
	assert.Contains(t, rows[0], "b")
	assert.Contains(t, rows[1], "c")
	assert.Contains(t, rows[2], "d")

	rows = strings.Split(v.window(-4), "\n")
	assert.Contains(t, rows[0], "e")
	assert.NotContains(t, rows[1], "e", "rows past the track are blank")

	v.rebuild(track)
	assert.Len(t, v.lines, int(track.ScrollHeight()))
}

func TestFrameLoopCancel(t *testing.T) {
	l := newFrameLoop(time.Millisecond)
	ran := 0
	cancel := l.Schedule(func() { ran++ })
	seq := l.seq

	cancel()
	assert.Nil(t, l.next())
	assert.Nil(t, l.fire(frameMsg{seq: seq}))
	assert.Zero(t, ran)

	l.Schedule(func() { ran++ })
	assert.NotNil(t, l.next())
	l.fire(frameMsg{seq: l.seq})
	assert.Equal(t, 1, ran)
}

func TestResizeWhilePausedKeepsOffsetInRange(t *testing.T) {
	tp := newTestPage(t)
	tp.send(tea.WindowSizeMsg{Width: 60, Height: 50})
	for i := 0; i < 150; i++ {
		tp.frame()
	}

	box := tp.m.layout.ticker
	tp.moveTo(box.x+2, box.y+2)
	require.True(t, tp.m.engine.Paused())

	// Wider cards wrap fewer lines, so the track gets shorter.
	tp.send(tea.WindowSizeMsg{Width: 300, Height: 50})

	half := tp.m.track.ScrollHeight() / 2
	assert.True(t, tp.m.engine.Paused(), "resize does not resume")
	assert.GreaterOrEqual(t, tp.m.engine.Offset(), 0.0)
	assert.Less(t, tp.m.engine.Offset(), half)
	assert.InDelta(t, -tp.m.engine.Offset(), tp.m.track.Offset(), 1e-12)
	assert.Len(t, tp.m.ticker.lines, int(tp.m.track.ScrollHeight()))
}

func TestNilLoggerDiscards(t *testing.T) {
	catalog, err := content.Default()
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		m := newPage(Options{Catalog: catalog, Marquee: config.Default().Marquee})
		next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
		m = next.(pageModel)
		m.Update(previewMsg{path: "missing.gif", err: assert.AnError})
		m.lightbox.Open(catalog.Steps[0].Media)
		m.lightbox.Open(catalog.Steps[1].Media)
		m.unmount()
	})
}
