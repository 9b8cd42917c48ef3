package landing

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amishk599/jobfinder/internal/marquee"
)

// frameMsg carries the sequence number of the callback it was scheduled for.
// A cancelled or superseded callback leaves its message stale.
type frameMsg struct {
	seq int
}

// frameLoop adapts tea.Tick to marquee.Scheduler. At most one callback is
// pending; it runs on the Update goroutine when its frameMsg arrives.
type frameLoop struct {
	interval time.Duration
	seq      int
	pending  func()
}

var _ marquee.Scheduler = (*frameLoop)(nil)

func newFrameLoop(interval time.Duration) *frameLoop {
	return &frameLoop{interval: interval}
}

func (l *frameLoop) Schedule(fn func()) marquee.CancelFunc {
	l.seq++
	seq := l.seq
	l.pending = fn
	return func() {
		if l.seq == seq {
			l.pending = nil
		}
	}
}

// next returns the tick command for the pending callback, or nil.
func (l *frameLoop) next() tea.Cmd {
	if l.pending == nil {
		return nil
	}
	seq := l.seq
	return tea.Tick(l.interval, func(time.Time) tea.Msg {
		return frameMsg{seq: seq}
	})
}

// fire runs the callback msg was scheduled for and returns the command for
// whatever it scheduled next.
func (l *frameLoop) fire(msg frameMsg) tea.Cmd {
	if msg.seq != l.seq || l.pending == nil {
		return nil
	}
	fn := l.pending
	l.pending = nil
	fn()
	return l.next()
}
