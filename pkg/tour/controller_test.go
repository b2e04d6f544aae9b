package tour

import (
	"testing"
	"time"

	"github.com/matzehuels/docent/pkg/errors"
	"github.com/matzehuels/docent/pkg/geometry"
	"github.com/matzehuels/docent/pkg/observability"
	"github.com/matzehuels/docent/pkg/tour/placement"
)

// Test fixtures share one geometry: a 100x60 viewport, a 20x5 tooltip,
// and a target near the top of the screen that leaves room below it.
var (
	testViewport = geometry.Size{Width: 100, Height: 60}
	testTooltip  = geometry.Size{Width: 20, Height: 5}
	testTarget   = geometry.Rect{Top: 5, Left: 40, Width: 10, Height: 2}
)

func targetMap(targets map[string]geometry.Rect) TargetResolver {
	return TargetFunc(func(name string) (geometry.Rect, bool) {
		r, ok := targets[name]
		return r, ok
	})
}

func fixedMeasure(size geometry.Size) MeasureFunc {
	return func(Step, geometry.Size) geometry.Size { return size }
}

type scrollRecorder struct {
	tops    []int
	offsets []int
}

func (s *scrollRecorder) ScrollTo(targetTop, offset int) {
	s.tops = append(s.tops, targetTop)
	s.offsets = append(s.offsets, offset)
}

type hookRecorder struct {
	startRuns []string
	steps     []int
	endRuns   []string
	reasons   []string
	misses    []string
	resolved  []string
}

func (h *hookRecorder) OnTourStart(runID string, stepCount int) {
	h.startRuns = append(h.startRuns, runID)
}

func (h *hookRecorder) OnStepChange(runID string, stepIndex int) {
	h.steps = append(h.steps, stepIndex)
}

func (h *hookRecorder) OnTourEnd(runID string, reason string) {
	h.endRuns = append(h.endRuns, runID)
	h.reasons = append(h.reasons, reason)
}

func (h *hookRecorder) OnResolveStart(target string) {}

func (h *hookRecorder) OnResolveComplete(target, placement string, fallback bool, duration time.Duration) {
	h.resolved = append(h.resolved, placement)
}

func (h *hookRecorder) OnTargetMiss(target string) {
	h.misses = append(h.misses, target)
}

func newTestController(t *testing.T, cfg Config, opts ...Option) *Controller {
	t.Helper()
	opts = append([]Option{
		WithTargets(targetMap(map[string]geometry.Rect{"header": testTarget})),
		WithMeasure(fixedMeasure(testTooltip)),
	}, opts...)
	ctrl, err := NewController(cfg, opts...)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	return ctrl
}

func TestNewControllerRequiresTargets(t *testing.T) {
	_, err := NewController(Config{Steps: []Step{{Target: "a"}}})
	if err == nil {
		t.Fatal("expected error without a target resolver")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestNewControllerRejectsInvalidConfig(t *testing.T) {
	_, err := NewController(
		Config{Steps: []Step{{Target: ""}}},
		WithTargets(targetMap(nil)),
	)
	if !errors.Is(err, errors.ErrCodeInvalidStep) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidStep)
	}
}

func TestControllerResolvesLayoutOnStart(t *testing.T) {
	ctrl := newTestController(t, Config{Steps: []Step{{Target: "header"}}})
	ctrl.SetViewport(testViewport)

	ctrl.Start()

	layout := ctrl.Layout()
	if layout == nil {
		t.Fatal("layout should resolve on start")
	}
	wantSpot := testTarget.Expand(DefaultSpotlightPadding)
	if layout.Spotlight != wantSpot {
		t.Errorf("Spotlight = %+v, want %+v", layout.Spotlight, wantSpot)
	}
	if layout.Placement != placement.Bottom {
		t.Errorf("Placement = %v, want %v", layout.Placement, placement.Bottom)
	}
	// Below the target with the standard gap, centered on it.
	wantPos := geometry.Point{Top: 23, Left: 35}
	if layout.TooltipPosition != wantPos {
		t.Errorf("TooltipPosition = %+v, want %+v", layout.TooltipPosition, wantPos)
	}
}

func TestControllerNoLayoutWithoutViewport(t *testing.T) {
	ctrl := newTestController(t, Config{Steps: []Step{{Target: "header"}}})

	ctrl.Start()

	if !ctrl.Running() {
		t.Fatal("tour should run even before the first resize arrives")
	}
	if ctrl.Layout() != nil {
		t.Error("layout should stay nil until a viewport is known")
	}
}

func TestControllerTargetMissKeepsPreviousLayout(t *testing.T) {
	recorder := &hookRecorder{}
	observability.SetLayoutHooks(recorder)
	t.Cleanup(observability.Reset)

	ctrl := newTestController(t, Config{
		Steps: []Step{{Target: "header"}, {Target: "ghost"}},
	})
	ctrl.SetViewport(testViewport)

	ctrl.Start()
	first := ctrl.Layout()
	if first == nil {
		t.Fatal("layout should resolve for the first step")
	}

	ctrl.Next()

	if got := ctrl.Layout(); got == nil || *got != *first {
		t.Errorf("missed target should keep the previous layout, got %+v", got)
	}
	if len(recorder.misses) != 1 || recorder.misses[0] != "ghost" {
		t.Errorf("target misses = %v, want [ghost]", recorder.misses)
	}

	// The miss is retried on the next trigger, not latched.
	ctrl.Back()
	if got := ctrl.Layout(); got == nil || *got != *first {
		t.Errorf("back onto a live target should re-resolve, got %+v", got)
	}
}

func TestControllerScrollRequests(t *testing.T) {
	recorder := &scrollRecorder{}
	ctrl := newTestController(t,
		Config{Steps: []Step{{Target: "header"}}, ScrollToSteps: true},
		WithScroller(recorder),
	)
	ctrl.SetViewport(testViewport)

	ctrl.Start()

	if len(recorder.tops) != 1 {
		t.Fatalf("scroll requests = %d, want 1", len(recorder.tops))
	}
	if recorder.tops[0] != testTarget.Top {
		t.Errorf("scroll target top = %d, want %d", recorder.tops[0], testTarget.Top)
	}
	if recorder.offsets[0] != DefaultScrollOffset {
		t.Errorf("scroll offset = %d, want %d", recorder.offsets[0], DefaultScrollOffset)
	}
}

func TestControllerNoScrollWhenDisabled(t *testing.T) {
	recorder := &scrollRecorder{}
	ctrl := newTestController(t,
		Config{Steps: []Step{{Target: "header"}}},
		WithScroller(recorder),
	)
	ctrl.SetViewport(testViewport)

	ctrl.Start()

	if len(recorder.tops) != 0 {
		t.Errorf("scroll requests = %d, want 0", len(recorder.tops))
	}
}

func TestControllerCompletionCallback(t *testing.T) {
	var completed, skipped int
	ctrl := newTestController(t, Config{
		Steps:      []Step{{Target: "header"}, {Target: "header"}},
		OnComplete: func() { completed++ },
		OnSkip:     func() { skipped++ },
	})
	ctrl.SetViewport(testViewport)

	ctrl.Start()
	ctrl.Next()
	ctrl.Next() // completes
	ctrl.Next() // idle, no effect

	if completed != 1 {
		t.Errorf("OnComplete fired %d times, want 1", completed)
	}
	if skipped != 0 {
		t.Errorf("OnSkip fired %d times, want 0", skipped)
	}
	if ctrl.Layout() != nil {
		t.Error("layout should clear when the tour ends")
	}
}

func TestControllerSkipCallback(t *testing.T) {
	var completed, skipped int
	ctrl := newTestController(t, Config{
		Steps:      []Step{{Target: "header"}, {Target: "header"}},
		OnComplete: func() { completed++ },
		OnSkip:     func() { skipped++ },
	})
	ctrl.SetViewport(testViewport)

	ctrl.Start()
	ctrl.Skip()

	if skipped != 1 {
		t.Errorf("OnSkip fired %d times, want 1", skipped)
	}
	if completed != 0 {
		t.Errorf("OnComplete fired %d times, want 0", completed)
	}
}

func TestControllerHookEvents(t *testing.T) {
	recorder := &hookRecorder{}
	observability.SetTourHooks(recorder)
	t.Cleanup(observability.Reset)

	ctrl := newTestController(t, Config{
		Steps: []Step{{Target: "header"}, {Target: "header"}},
	})
	ctrl.SetViewport(testViewport)

	ctrl.Start()
	ctrl.Next()
	ctrl.Next() // completes

	if len(recorder.startRuns) != 1 {
		t.Fatalf("tour start events = %d, want 1", len(recorder.startRuns))
	}
	runID := recorder.startRuns[0]
	if runID == "" {
		t.Error("run ID should not be empty")
	}
	if ctrl.RunID() != runID {
		t.Errorf("controller run ID = %q, want %q", ctrl.RunID(), runID)
	}

	wantSteps := []int{0, 1}
	if len(recorder.steps) != len(wantSteps) {
		t.Fatalf("step events = %v, want %v", recorder.steps, wantSteps)
	}
	for i := range wantSteps {
		if recorder.steps[i] != wantSteps[i] {
			t.Fatalf("step events = %v, want %v", recorder.steps, wantSteps)
		}
	}

	if len(recorder.reasons) != 1 || recorder.reasons[0] != observability.EndReasonCompleted {
		t.Errorf("end reasons = %v, want [%s]", recorder.reasons, observability.EndReasonCompleted)
	}
	if recorder.endRuns[0] != runID {
		t.Errorf("end run ID = %q, want %q", recorder.endRuns[0], runID)
	}
}

func TestControllerViewportChangeMovesTooltip(t *testing.T) {
	ctrl := newTestController(t, Config{Steps: []Step{{Target: "header"}}})
	ctrl.SetViewport(testViewport)
	ctrl.Start()

	before := ctrl.Layout()
	if before == nil {
		t.Fatal("layout should resolve on start")
	}
	if got := before.TooltipPosition.Left; got != 35 {
		t.Fatalf("initial tooltip left = %d, want 35", got)
	}

	// Narrower viewport: the right clamp bound drops to 60-16-20 = 24.
	ctrl.SetViewport(geometry.Size{Width: 60, Height: 60})

	after := ctrl.Layout()
	if after == nil {
		t.Fatal("layout should survive a resize")
	}
	if got := after.TooltipPosition.Left; got != 24 {
		t.Errorf("tooltip left after resize = %d, want 24", got)
	}
}

func TestControllerCurrentStep(t *testing.T) {
	ctrl := newTestController(t, Config{
		Steps: []Step{{Target: "header", Title: "First"}, {Target: "header", Title: "Second"}},
	})
	ctrl.SetViewport(testViewport)

	if _, ok := ctrl.CurrentStep(); ok {
		t.Error("idle controller should report no current step")
	}

	ctrl.Start()
	ctrl.Next()
	step, ok := ctrl.CurrentStep()
	if !ok {
		t.Fatal("running controller should report a current step")
	}
	if step.Title != "Second" {
		t.Errorf("current step title = %q, want %q", step.Title, "Second")
	}
}
