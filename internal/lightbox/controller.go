// Package lightbox shows at most one enlarged image at a time.
package lightbox

import (
	"io"
	"log/slog"

	"github.com/amishk599/jobfinder/internal/model"
)

// State is either Closed or Expanded(image).
type State struct {
	image model.MediaRef
	open  bool
}

// Closed is the empty state.
func Closed() State { return State{} }

// Expanded is the state showing ref.
func Expanded(ref model.MediaRef) State { return State{image: ref, open: true} }

// Open replaces whatever is showing with ref.
func (s State) Open(ref model.MediaRef) State { return Expanded(ref) }

// Close returns to Closed from either state.
func (s State) Close() State { return Closed() }

// Image returns the expanded image, ok=false when closed.
func (s State) Image() (model.MediaRef, bool) { return s.image, s.open }

// IsOpen reports whether an image is expanded.
func (s State) IsOpen() bool { return s.open }

// Target is the part of the overlay a click landed on.
type Target int

const (
	TargetBackdrop Target = iota
	TargetImage
	TargetCloseButton
)

// Controller holds the modal state for one page.
type Controller struct {
	state  State
	logger *slog.Logger
}

func NewController(logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{state: Closed(), logger: logger}
}

// Open expands ref, replacing any image already shown.
func (c *Controller) Open(ref model.MediaRef) {
	if prev, ok := c.state.Image(); ok {
		c.logger.Debug("lightbox replacing image", "from", prev.Path, "to", ref.Path)
	}
	c.state = c.state.Open(ref)
}

// Close hides the overlay. Closing a closed lightbox does nothing.
func (c *Controller) Close() {
	if !c.state.IsOpen() {
		return
	}
	c.state = c.state.Close()
}

// Click routes a click on the overlay. Clicks on the image itself stop there;
// the backdrop and the close control dismiss. It reports whether the click
// was consumed by an open overlay.
func (c *Controller) Click(target Target) bool {
	if !c.state.IsOpen() {
		return false
	}
	switch target {
	case TargetImage:
	case TargetBackdrop, TargetCloseButton:
		c.Close()
	}
	return true
}

// State returns the current modal state.
func (c *Controller) State() State { return c.state }

// Current returns the expanded image, ok=false when closed.
func (c *Controller) Current() (model.MediaRef, bool) { return c.state.Image() }
