package landing

import "github.com/amishk599/jobfinder/internal/marquee"

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type hoverSub struct {
	enter, leave func()
}

// hoverZone turns mouse motion into enter/leave events for one screen area.
type hoverZone struct {
	area   rect
	inside bool
	subs   map[int]hoverSub
	nextID int
}

var _ marquee.PointerSource = (*hoverZone)(nil)

func newHoverZone() *hoverZone {
	return &hoverZone{subs: make(map[int]hoverSub)}
}

func (z *hoverZone) Subscribe(onEnter, onLeave func()) func() {
	id := z.nextID
	z.nextID++
	z.subs[id] = hoverSub{enter: onEnter, leave: onLeave}
	return func() { delete(z.subs, id) }
}

func (z *hoverZone) setArea(r rect) { z.area = r }

// move reports the pointer position; (-1, -1) means "not over the page".
func (z *hoverZone) move(x, y int) {
	in := z.area.contains(x, y)
	if in == z.inside {
		return
	}
	z.inside = in
	for _, s := range z.subs {
		if in && s.enter != nil {
			s.enter()
		} else if !in && s.leave != nil {
			s.leave()
		}
	}
}
