package landing

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/jobfinder/internal/marquee"
	"github.com/amishk599/jobfinder/internal/model"
)

// tickerView renders the marquee track and cuts the visible window out of it.
type tickerView struct {
	cardWidth int // content width of one card, excluding its border
	gap       int
	height    int // visible rows
	lines     []string
}

func newTickerView(gap, height int) *tickerView {
	return &tickerView{cardWidth: 36, gap: gap, height: height}
}

// measure is the track's MeasureFunc. The track adds the gap itself.
func (v *tickerView) measure(t model.Testimonial) float64 {
	return float64(lipgloss.Height(renderCard(t, v.cardWidth)))
}

// rebuild re-renders every card on the track. Needed after a resize, a theme
// change, or duplication.
func (v *tickerView) rebuild(track *marquee.Track) {
	v.lines = v.lines[:0]
	if track == nil {
		return
	}
	for _, t := range track.Items() {
		v.lines = append(v.lines, strings.Split(renderCard(t, v.cardWidth), "\n")...)
		for i := 0; i < v.gap; i++ {
			v.lines = append(v.lines, "")
		}
	}
}

// window returns the visible rows for a track translated by offset (<= 0).
// The first and last rows are dimmed as fade masks.
func (v *tickerView) window(offset float64) string {
	if v.height <= 0 {
		return ""
	}
	start := max(int(math.Floor(-offset)), 0)

	rows := make([]string, v.height)
	for i := range rows {
		if idx := start + i; idx < len(v.lines) {
			rows[i] = v.lines[idx]
		}
	}
	rows[0] = fadeStyle.Render(rows[0])
	if v.height > 1 {
		rows[v.height-1] = fadeStyle.Render(rows[v.height-1])
	}
	return strings.Join(rows, "\n")
}

func renderCard(t model.Testimonial, width int) string {
	return cardStyle.Width(width).Render(
		cardQuoteStyle.Render(t.Quote) + "\n" + cardAuthorStyle.Render(t.Author),
	)
}
