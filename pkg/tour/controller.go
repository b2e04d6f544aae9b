package tour

import (
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/docent/pkg/errors"
	"github.com/matzehuels/docent/pkg/geometry"
	"github.com/matzehuels/docent/pkg/observability"
	"github.com/matzehuels/docent/pkg/tour/overlay"
	"github.com/matzehuels/docent/pkg/tour/placement"
	"github.com/matzehuels/docent/pkg/tour/style"
)

// =============================================================================
// Host Interfaces
// =============================================================================

// TargetResolver looks up the current on-screen rectangle of a named
// region. Lookup happens on every resolution pass; results are never
// cached, so the host is free to move or hide targets between passes.
type TargetResolver interface {
	// Find returns the target's rectangle in viewport coordinates and
	// whether the target currently exists.
	Find(name string) (geometry.Rect, bool)
}

// TargetFunc adapts a plain function to the TargetResolver interface.
type TargetFunc func(name string) (geometry.Rect, bool)

// Find calls f.
func (f TargetFunc) Find(name string) (geometry.Rect, bool) { return f(name) }

// Scroller receives scroll requests for targets outside the viewport.
// Requests are fire-and-forget: the controller computes placement from
// current geometry without waiting, and the host reports back with a
// scrolled notification once its content actually moved.
type Scroller interface {
	// ScrollTo asks the host to bring targetTop to offset cells below the
	// viewport top.
	ScrollTo(targetTop, offset int)
}

// MeasureFunc returns the intrinsic tooltip size for a step within a
// viewport. The default measures the fully rendered tooltip.
type MeasureFunc func(step Step, viewport geometry.Size) geometry.Size

// =============================================================================
// Resolved Layout
// =============================================================================

// ResolvedLayout is the output of one resolution pass. Each pass
// overwrites the previous layout wholesale; fields are never merged
// across passes.
type ResolvedLayout struct {
	// Spotlight is the target rectangle expanded by the configured
	// padding, in viewport coordinates.
	Spotlight geometry.Rect

	// TooltipPosition is the top-left cell of the tooltip box.
	TooltipPosition geometry.Point

	// Placement is the side the resolver settled on.
	Placement placement.Placement

	// ArrowPosition and ArrowRotation locate the connector arrow on the
	// tooltip border. Rotation is in degrees, clockwise from pointing up.
	ArrowPosition geometry.Point
	ArrowRotation int
}

// =============================================================================
// Controller
// =============================================================================

// Controller binds a validated Config to the state machine and runs
// resolution passes. It owns the latest ResolvedLayout and the current
// run identity. Like the machine it drives, a Controller must only be
// used from a single event loop.
type Controller struct {
	cfg      Config
	machine  *Machine
	targets  TargetResolver
	scroller Scroller
	measure  MeasureFunc
	styles   style.Styles

	viewport geometry.Size
	layout   *ResolvedLayout
	runID    string
}

// Option configures optional controller collaborators.
type Option func(*Controller)

// WithTargets sets the target resolver. Required.
func WithTargets(t TargetResolver) Option {
	return func(c *Controller) { c.targets = t }
}

// WithScroller sets the scroll request sink. Without one, scroll
// requests are dropped.
func WithScroller(s Scroller) Option {
	return func(c *Controller) { c.scroller = s }
}

// WithMeasure overrides tooltip measurement. Useful for tests that need
// deterministic geometry independent of rendering.
func WithMeasure(m MeasureFunc) Option {
	return func(c *Controller) { c.measure = m }
}

// NewController validates cfg and builds a controller around it.
func NewController(cfg Config, opts ...Option) (*Controller, error) {
	if err := cfg.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:     cfg,
		machine: NewMachine(len(cfg.Steps)),
		styles:  style.Merge(style.Default(), cfg.Styles),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.targets == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "target resolver is required")
	}
	if c.measure == nil {
		c.measure = c.renderedSize
	}

	c.machine.onStart = func(index int) {
		c.runID = uuid.NewString()
		c.cfg.Logger.Info("tour started", "run_id", c.runID, "steps", c.machine.StepCount())
		observability.Tour().OnTourStart(c.runID, c.machine.StepCount())
		observability.Tour().OnStepChange(c.runID, index)
		c.Recompute()
	}
	c.machine.onChange = func(index int) {
		c.cfg.Logger.Debug("step changed", "run_id", c.runID, "step", index)
		observability.Tour().OnStepChange(c.runID, index)
		c.Recompute()
	}
	c.machine.onStop = func() { c.end(observability.EndReasonStopped, nil) }
	c.machine.onComplete = func() { c.end(observability.EndReasonCompleted, c.cfg.OnComplete) }
	c.machine.onSkip = func() { c.end(observability.EndReasonSkipped, c.cfg.OnSkip) }

	return c, nil
}

func (c *Controller) end(reason string, callback func()) {
	c.layout = nil
	c.cfg.Logger.Info("tour ended", "run_id", c.runID, "reason", reason)
	observability.Tour().OnTourEnd(c.runID, reason)
	if callback != nil {
		callback()
	}
}

// =============================================================================
// Navigation
// =============================================================================

// Start activates the tour at step 0, restarting if already active.
func (c *Controller) Start() { c.machine.Start() }

// Stop deactivates the tour without firing completion or skip callbacks.
func (c *Controller) Stop() { c.machine.Stop() }

// Next advances one step, completing the tour from the last step.
func (c *Controller) Next() { c.machine.Next() }

// Back retreats one step; a no-op on the first step.
func (c *Controller) Back() { c.machine.Back() }

// GoTo jumps to a step index; out-of-range indices are ignored.
func (c *Controller) GoTo(n int) { c.machine.GoTo(n) }

// Skip ends the tour early, firing the skip callback.
func (c *Controller) Skip() { c.machine.Skip() }

// SetRun forces the machine to match an external run signal.
func (c *Controller) SetRun(run bool) { c.machine.SetRun(run) }

// =============================================================================
// State Accessors
// =============================================================================

// Running reports whether the tour is active.
func (c *Controller) Running() bool { return c.machine.Running() }

// StepIndex returns the active step index, 0 while idle.
func (c *Controller) StepIndex() int { return c.machine.Index() }

// CurrentStep returns the active step. ok is false while idle.
func (c *Controller) CurrentStep() (Step, bool) {
	if !c.machine.Running() {
		return Step{}, false
	}
	return c.cfg.Steps[c.machine.Index()], true
}

// Layout returns the output of the most recent resolution pass, or nil
// when no pass has completed since activation.
func (c *Controller) Layout() *ResolvedLayout { return c.layout }

// Styles returns the merged style set (defaults plus config overrides).
func (c *Controller) Styles() style.Styles { return c.styles }

// RunID returns the identifier of the current or most recent run.
func (c *Controller) RunID() string { return c.runID }

// =============================================================================
// Resolution Pass
// =============================================================================

// SetViewport records the host viewport size and reruns resolution, as
// placement depends on the available space.
func (c *Controller) SetViewport(size geometry.Size) {
	c.viewport = size
	c.Recompute()
}

// Viewport returns the last recorded viewport size.
func (c *Controller) Viewport() geometry.Size { return c.viewport }

// Recompute runs one resolution pass for the active step: target lookup,
// spotlight expansion, optional scroll request, then placement. The pass
// replaces the stored layout wholesale. A missing target aborts the pass
// with a warning, keeping the previous layout so the overlay does not
// flicker while the host rebuilds its view.
func (c *Controller) Recompute() {
	if !c.machine.Running() || c.viewport.Width <= 0 || c.viewport.Height <= 0 {
		return
	}

	index := c.machine.Index()
	step := c.cfg.Steps[index]
	start := time.Now()
	observability.Layout().OnResolveStart(step.Target)

	target, ok := c.targets.Find(step.Target)
	if !ok {
		c.cfg.Logger.Warn("tour target not found", "target", step.Target, "step", index)
		observability.Layout().OnTargetMiss(step.Target)
		return
	}

	spotlight := placement.Spotlight(target, c.cfg.SpotlightPadding)

	if c.cfg.ScrollToSteps && c.scroller != nil {
		c.scroller.ScrollTo(target.Top, c.cfg.ScrollOffset)
	}

	size := c.measure(step, c.viewport)
	result := placement.Resolve(target, size, c.viewport, step.Placement)

	c.layout = &ResolvedLayout{
		Spotlight:       spotlight,
		TooltipPosition: result.Position,
		Placement:       result.Placement,
		ArrowPosition:   result.Arrow,
		ArrowRotation:   result.ArrowRotation,
	}

	observability.Layout().OnResolveComplete(step.Target, result.Placement.String(), result.Fallback, time.Since(start))
	c.cfg.Logger.Debug("layout resolved",
		"target", step.Target,
		"placement", result.Placement.String(),
		"fallback", result.Fallback,
	)
}

// tooltipSpec assembles the render description for a step. The footer
// content depends on position in the sequence, so the index is taken
// explicitly rather than read from the machine.
func (c *Controller) tooltipSpec(step Step, index int) overlay.TooltipSpec {
	spec := overlay.TooltipSpec{
		Title:    step.Title,
		Content:  step.Content,
		ShowBack: index > 0,
		ShowSkip: c.cfg.ShowSkipButton,
		IsLast:   index == c.machine.StepCount()-1,
		Styles:   c.styles,
	}
	if c.cfg.ShowProgress {
		spec.Progress = overlay.Progress(index, c.machine.StepCount())
	}
	return spec
}

func (c *Controller) renderedSize(step Step, viewport geometry.Size) geometry.Size {
	return overlay.Measure(c.tooltipSpec(step, c.machine.Index()), viewport)
}
