// Package marquee scrolls a duplicated list of testimonial cards in a
// continuous vertical loop, pausing while the pointer hovers the container.
package marquee

import (
	"io"
	"log/slog"
)

// DefaultVelocity is the scroll speed in rows per frame.
const DefaultVelocity = 0.4

// wrapEpsilon absorbs float drift from repeated additions so that an offset
// that should land exactly on the wrap point does wrap.
const wrapEpsilon = 1e-9

// Engine drives one Track. All methods must be called from the goroutine
// that runs the scheduler's callbacks.
type Engine struct {
	sched    Scheduler
	velocity float64
	logger   *slog.Logger

	track       *Track
	y           float64
	state       State
	started     bool
	cancelFrame CancelFunc
	unsubscribe func()
}

// NewEngine creates an engine that advances velocity rows per unpaused frame.
// A non-positive velocity falls back to DefaultVelocity.
func NewEngine(sched Scheduler, velocity float64, logger *slog.Logger) *Engine {
	if velocity <= 0 {
		velocity = DefaultVelocity
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		sched:    sched,
		velocity: velocity,
		logger:   logger,
		state:    Running,
	}
}

// Initialize duplicates the track once, subscribes to pointer events and
// schedules the first frame. A nil track is ignored. Calling Initialize again
// on a started engine does nothing, whatever track it is given.
func (e *Engine) Initialize(track *Track, pointer PointerSource) {
	if track == nil {
		e.logger.Debug("marquee track unavailable, skipping init")
		return
	}
	if e.state == Stopped || e.started {
		return
	}

	if track.duplicate() {
		e.logger.Debug("marquee track duplicated", "cards", track.Len())
	}

	e.track = track
	e.started = true
	if pointer != nil {
		e.unsubscribe = pointer.Subscribe(
			func() { e.SetPaused(true) },
			func() { e.SetPaused(false) },
		)
	}
	if e.sched != nil {
		e.cancelFrame = e.sched.Schedule(e.frame)
	}
}

// frame is the scheduled per-frame callback: tick, then ask for the next frame.
func (e *Engine) frame() {
	if e.state == Stopped {
		return
	}
	e.Tick()
	e.cancelFrame = e.sched.Schedule(e.frame)
}

// Tick advances the offset by one frame unless paused, wrapping to zero at
// half the track's scroll height, and applies it to the track. It does not
// touch a detached track.
func (e *Engine) Tick() {
	if e.state != Running {
		return
	}
	if e.track == nil || !e.track.Attached() {
		return
	}

	e.y += e.velocity
	e.wrap()
	e.track.Translate(e.y)
}

// wrap resets y to zero once it reaches half the scroll height.
func (e *Engine) wrap() {
	if e.y+wrapEpsilon >= e.track.ScrollHeight()/2 {
		e.y = 0
	}
}

// Remeasure re-checks the offset after the track's heights changed. Paused
// or not, an offset that no longer fits in one copy goes back to zero.
func (e *Engine) Remeasure() {
	if e.state == Stopped || e.track == nil || !e.track.Attached() {
		return
	}
	before := e.y
	e.wrap()
	if e.y != before {
		e.logger.Debug("marquee offset reset after remeasure", "from", before)
	}
	e.track.Translate(e.y)
}

// SetPaused pauses (true) or resumes (false) the scroll. The offset is kept.
func (e *Engine) SetPaused(paused bool) {
	if paused {
		e.state = e.state.pointerEnter()
	} else {
		e.state = e.state.pointerLeave()
	}
}

// Teardown cancels the pending frame and drops the pointer subscription.
// It is safe to call more than once; no tick runs afterwards.
func (e *Engine) Teardown() {
	if e.state == Stopped {
		return
	}
	e.state = Stopped
	if e.cancelFrame != nil {
		e.cancelFrame()
		e.cancelFrame = nil
	}
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
	e.logger.Debug("marquee torn down", "offset", e.y)
}

// Offset returns the current scroll offset y.
func (e *Engine) Offset() float64 { return e.y }

// State returns the current hover state.
func (e *Engine) State() State { return e.state }

// Paused reports whether the pause flag is set.
func (e *Engine) Paused() bool { return e.state == Paused }

// Track returns the track the engine is driving, or nil before Initialize.
func (e *Engine) Track() *Track { return e.track }
