package marquee

import "github.com/amishk599/jobfinder/internal/model"

// MeasureFunc returns the rendered height of one card in rows.
type MeasureFunc func(model.Testimonial) float64

// Track is the ordered list of testimonial cards the engine scrolls.
// It is owned by a single Engine.
type Track struct {
	items      []model.Testimonial
	measure    MeasureFunc
	gap        float64
	duplicated bool
	attached   bool
	offset     float64
}

// NewTrack creates an attached track. measure may be nil, in which case every
// card is one row tall.
func NewTrack(items []model.Testimonial, measure MeasureFunc, gap float64) *Track {
	cp := make([]model.Testimonial, len(items))
	copy(cp, items)
	if measure == nil {
		measure = func(model.Testimonial) float64 { return 1 }
	}
	return &Track{items: cp, measure: measure, gap: gap, attached: true}
}

// Len returns the number of cards currently on the track.
func (t *Track) Len() int { return len(t.items) }

// Items returns a copy of the cards in display order.
func (t *Track) Items() []model.Testimonial {
	cp := make([]model.Testimonial, len(t.items))
	copy(cp, t.items)
	return cp
}

// Duplicated reports whether the content has been doubled for looping.
func (t *Track) Duplicated() bool { return t.duplicated }

// duplicate appends a second copy of the cards. The marker makes repeated calls no-ops.
func (t *Track) duplicate() bool {
	if t.duplicated {
		return false
	}
	t.items = append(t.items, t.items...)
	t.duplicated = true
	return true
}

// SetMeasure swaps the measure function, e.g. after the box is resized.
func (t *Track) SetMeasure(measure MeasureFunc) {
	if measure != nil {
		t.measure = measure
	}
}

// ScrollHeight is the total height of every card on the track plus the gap after each.
func (t *Track) ScrollHeight() float64 {
	var h float64
	for _, it := range t.items {
		h += t.measure(it) + t.gap
	}
	return h
}

// Translate positions the track y rows above its resting position.
func (t *Track) Translate(y float64) { t.offset = -y }

// Offset returns the applied vertical translation (zero or negative).
func (t *Track) Offset() float64 { return t.offset }

// Attached reports whether the track is still mounted.
func (t *Track) Attached() bool { return t.attached }

// Detach marks the track as unmounted. The engine stops mutating it.
func (t *Track) Detach() { t.attached = false }
