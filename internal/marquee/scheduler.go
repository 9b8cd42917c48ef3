package marquee

// CancelFunc cancels a scheduled frame callback. Calling it more than once,
// or after the callback ran, does nothing.
type CancelFunc func()

// Scheduler runs a callback on the next display frame.
type Scheduler interface {
	Schedule(fn func()) CancelFunc
}

// PointerSource delivers pointer-enter and pointer-leave events for the
// marquee's container.
type PointerSource interface {
	Subscribe(onEnter, onLeave func()) (unsubscribe func())
}
