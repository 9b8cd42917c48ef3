package landing

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/jobfinder/internal/model"
)

const minOverlayWidth = 30

// overlay is the lightbox geometry for the current screen and image.
type overlay struct {
	ref    model.MediaRef
	body   string
	innerW int
	box    rect // whole framed box, border included
	image  rect
	close  rect
}

// overlayLayout sizes the box around the current preview (or placeholder)
// and centers it. View and hit testing share it.
func (m pageModel) overlayLayout() overlay {
	ref, _ := m.lightbox.Current()
	cols, rows := m.previewBounds()

	var body string
	p, ok := m.previews[ref.Path]
	switch {
	case !ok:
		body = placeholderStyle.Width(min(cols, 40)).Height(min(rows, 5)).Render("loading preview…")
	case p.err != nil:
		body = placeholderStyle.Width(min(cols, 48)).Height(min(rows, 7)).Render(ref.Alt + "\n\n(preview unavailable)")
	default:
		body = p.out
	}

	bodyW, bodyH := lipgloss.Width(body), lipgloss.Height(body)
	innerW := max(bodyW, minOverlayWidth)

	// Border and padding on each side; title row, body, caption row, two border rows.
	boxW := innerW + 4
	boxH := bodyH + 4
	x0 := max((m.width-boxW)/2, 0)
	y0 := max((m.height-boxH)/2, 0)

	return overlay{
		ref:    ref,
		body:   body,
		innerW: innerW,
		box:    rect{x: x0, y: y0, w: boxW, h: boxH},
		image:  rect{x: x0 + 2, y: y0 + 2, w: bodyW, h: bodyH},
		close:  rect{x: x0 + 2 + innerW - lipgloss.Width(closeLabel), y: y0 + 1, w: lipgloss.Width(closeLabel), h: 1},
	}
}

func (m pageModel) viewLightbox() string {
	ov := m.overlayLayout()

	titleW := ov.innerW - lipgloss.Width(closeLabel)
	title := ov.ref.Alt
	if lipgloss.Width(title) > titleW-1 {
		title = truncate(title, titleW-1)
	}
	titleRow := lightboxTitleStyle.Width(titleW).Render(title) + lightboxCloseStyle.Render(closeLabel)
	caption := lightboxCaptionStyle.Render(truncate(ov.ref.Path+" · esc or click outside to close", ov.innerW))

	box := lightboxStyle.Width(ov.innerW + 2).Render(titleRow + "\n" + ov.body + "\n" + caption)

	placed := lipgloss.NewStyle().
		MarginLeft(ov.box.x).
		MarginTop(ov.box.y).
		MarginBackground(colorShade).
		Render(box)
	return backdropStyle.Width(m.width).Height(m.height).Render(placed)
}

// truncate cuts s to at most w cells, marking the cut with an ellipsis.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= w {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > w {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimRight(string(runes), " ") + "…"
}
