package tour

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/docent/pkg/geometry"
	"github.com/matzehuels/docent/pkg/tour/overlay"
)

// remeasureDelay is how long after a layout trigger the second
// resolution pass runs. The first pass uses the tooltip size measured
// from provisional content; the deferred pass re-measures once the
// frame has settled, which matters after scroll requests.
const remeasureDelay = 50 * time.Millisecond

// =============================================================================
// Messages
// =============================================================================

// RunMsg flips the external run signal. Send it on signal edges; the
// machine state is forced to match, so a tour stopped by hand restarts
// when the signal goes true again.
type RunMsg struct {
	Run bool
}

// ScrolledMsg tells the tour the host's content moved and target
// geometry is stale. Hosts send it after applying any scroll, including
// scrolls the tour itself requested.
type ScrolledMsg struct{}

// ScrollRequestMsg asks the host to bring a target into view, with
// TargetTop ending up Offset cells below the viewport top. The tour
// emits it as a command and never waits for the result.
type ScrollRequestMsg struct {
	TargetTop int
	Offset    int
}

// remeasureMsg is the deferred re-measure tick. The sequence number
// cancels stale ticks: each new trigger bumps the model's sequence, so
// a tick scheduled before the trigger no-ops instead of writing layout
// for a superseded pass.
type remeasureMsg struct {
	seq int
}

// =============================================================================
// Model
// =============================================================================

// scrollQueue buffers scroll requests raised during a resolution pass
// until the surrounding Update drains them into commands.
type scrollQueue struct {
	requests []ScrollRequestMsg
}

func (q *scrollQueue) ScrollTo(targetTop, offset int) {
	q.requests = append(q.requests, ScrollRequestMsg{TargetTop: targetTop, Offset: offset})
}

func (q *scrollQueue) drain() []ScrollRequestMsg {
	reqs := q.requests
	q.requests = nil
	return reqs
}

// Model is the Bubble Tea component binding a tour controller to a host
// program. The host forwards its messages to Update, asks WantsKey
// before handling key input itself, and wraps its finished view with
// Overlay.
//
//	case tea.KeyMsg:
//	    if app.tour.WantsKey(msg) {
//	        app.tour, cmd = app.tour.Update(msg)
//	        return app, cmd
//	    }
//	    // host key handling
type Model struct {
	ctrl  *Controller
	queue *scrollQueue
	seq   int
}

// NewModel wraps a controller. Unless the controller already has a
// scroller, scroll requests surface as ScrollRequestMsg commands.
func NewModel(ctrl *Controller) Model {
	m := Model{ctrl: ctrl, queue: &scrollQueue{}}
	if ctrl.scroller == nil {
		ctrl.scroller = m.queue
	}
	return m
}

// Handle returns the imperative surface of the underlying controller.
func (m Model) Handle() Handle { return m.ctrl.Handle() }

// Init implements tea.Model. The tour is passive until messages arrive.
func (m Model) Init() tea.Cmd { return nil }

// WantsKey reports whether Update should receive this key. Navigation
// keys always route to an active tour; other keys are captured too
// unless the active step allows interaction. An idle tour wants no keys.
func (m Model) WantsKey(msg tea.KeyMsg) bool {
	if !m.ctrl.Running() {
		return false
	}
	switch msg.String() {
	case "right", "n", "enter", "left", "p", "s", "esc":
		return true
	}
	step, ok := m.ctrl.CurrentStep()
	return ok && !step.AllowInteraction
}

// Update implements tea.Model for the tour component.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ctrl.SetViewport(geometry.Size{Width: msg.Width, Height: msg.Height})
		return m.react()

	case RunMsg:
		m.ctrl.SetRun(msg.Run)
		return m.react()

	case ScrolledMsg:
		m.ctrl.Recompute()
		return m.react()

	case remeasureMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.ctrl.Recompute()
		return m, m.scrollCmds()

	case tea.KeyMsg:
		if !m.ctrl.Running() {
			return m, nil
		}
		switch msg.String() {
		case "right", "n", "enter":
			m.ctrl.Next()
		case "left", "p":
			m.ctrl.Back()
		case "s":
			m.ctrl.Skip()
		case "esc":
			m.ctrl.Stop()
		default:
			return m, nil
		}
		return m.react()
	}
	return m, nil
}

// react finishes a state-changing update: drain queued scroll requests
// into commands, supersede any pending re-measure tick, and schedule a
// fresh one while the tour is active.
func (m Model) react() (Model, tea.Cmd) {
	var cmds []tea.Cmd
	if cmd := m.scrollCmds(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.seq++
	if m.ctrl.Running() {
		seq := m.seq
		cmds = append(cmds, tea.Tick(remeasureDelay, func(time.Time) tea.Msg {
			return remeasureMsg{seq: seq}
		}))
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m Model) scrollCmds() tea.Cmd {
	reqs := m.queue.drain()
	if len(reqs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(reqs))
	for i, req := range reqs {
		req := req
		cmds[i] = func() tea.Msg { return req }
	}
	return tea.Batch(cmds...)
}

// Overlay composites the tour frame over the host's rendered view. With
// no active tour or no resolved layout yet it returns base unchanged.
func (m Model) Overlay(base string) string {
	if !m.ctrl.Running() {
		return base
	}
	layout := m.ctrl.Layout()
	if layout == nil {
		return base
	}
	step, ok := m.ctrl.CurrentStep()
	if !ok {
		return base
	}
	tooltip := overlay.Render(m.ctrl.tooltipSpec(step, m.ctrl.StepIndex()), m.ctrl.Viewport())
	return overlay.Composite(overlay.Frame{
		Base:          base,
		Viewport:      m.ctrl.Viewport(),
		Spotlight:     layout.Spotlight,
		Tooltip:       tooltip,
		TooltipAt:     layout.TooltipPosition,
		Arrow:         layout.ArrowPosition,
		ArrowRotation: layout.ArrowRotation,
		Styles:        m.ctrl.Styles(),
		Dimmed:        !m.ctrl.cfg.DisableOverlay,
	})
}
