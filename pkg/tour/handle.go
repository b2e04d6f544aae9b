package tour

import "github.com/matzehuels/docent/pkg/errors"

// Handle is the imperative surface handed to host code that wants to
// drive the tour from outside the key bindings, for example a help menu
// entry that restarts the tour.
//
// A Handle is only valid once obtained from a Controller. The zero
// Handle is unbound: reads return zero values and every navigation call
// reports a NO_TOUR usage error instead of silently doing nothing,
// because an unbound handle means the caller skipped the wiring step.
type Handle struct {
	c *Controller
}

// Handle returns the imperative surface for this controller.
func (c *Controller) Handle() Handle { return Handle{c: c} }

// Active reports whether a tour is running. An unbound handle reports
// false.
func (h Handle) Active() bool {
	return h.c != nil && h.c.Running()
}

// CurrentStep returns the active step index, 0 while idle or unbound.
func (h Handle) CurrentStep() int {
	if h.c == nil {
		return 0
	}
	return h.c.StepIndex()
}

// StepCount returns the number of configured steps, 0 when unbound.
func (h Handle) StepCount() int {
	if h.c == nil {
		return 0
	}
	return h.c.machine.StepCount()
}

// Start activates the tour from step 0.
func (h Handle) Start() error {
	if h.c == nil {
		return errNoTour("start")
	}
	h.c.Start()
	return nil
}

// Stop deactivates the tour.
func (h Handle) Stop() error {
	if h.c == nil {
		return errNoTour("stop")
	}
	h.c.Stop()
	return nil
}

// Next advances one step.
func (h Handle) Next() error {
	if h.c == nil {
		return errNoTour("next")
	}
	h.c.Next()
	return nil
}

// Back retreats one step.
func (h Handle) Back() error {
	if h.c == nil {
		return errNoTour("back")
	}
	h.c.Back()
	return nil
}

// GoToStep jumps to the given step index.
func (h Handle) GoToStep(n int) error {
	if h.c == nil {
		return errNoTour("go to step")
	}
	h.c.GoTo(n)
	return nil
}

// Skip ends the tour early through the skip path.
func (h Handle) Skip() error {
	if h.c == nil {
		return errNoTour("skip")
	}
	h.c.Skip()
	return nil
}

func errNoTour(op string) error {
	return errors.New(errors.ErrCodeNoTour, "cannot %s: handle is not bound to a tour", op)
}
