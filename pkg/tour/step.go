// Package tour implements the guided-tour engine: the step-progression
// state machine, the resolution controller that turns machine state and
// host geometry into a concrete overlay layout, and the Bubble Tea model
// that binds both to a host application's event loop.
//
// # Architecture
//
// The package splits into four layers:
//
//  1. Machine: the finite-state machine owning running/stepIndex and the
//     navigation operations (start, stop, next, back, goToStep, skip).
//  2. Controller: binds a Config, the machine, a target lookup, and an
//     optional scroller; runs one resolution pass per trigger and owns
//     the last ResolvedLayout.
//  3. Handle: the imperative surface handed to host code. A zero Handle
//     reports a usage error from every navigation call.
//  4. Model: the Bubble Tea adapter translating messages (resize, scroll,
//     keys, run-signal changes, deferred re-measure ticks) into machine
//     operations and recompute calls.
//
// Geometry is delegated to pkg/tour/placement and rendering to
// pkg/tour/overlay; this package owns state and sequencing only.
//
// # Usage
//
//	cfg := tour.Config{
//	    Steps: []tour.Step{
//	        {Target: "sidebar", Title: "Navigation", Content: "Use j/k to move."},
//	        {Target: "table", Title: "Results", Placement: placement.Right},
//	    },
//	    ShowProgress: true,
//	}
//	ctrl, err := tour.NewController(cfg, tour.WithTargets(tour.TargetFunc(find)))
//	if err != nil {
//	    return err
//	}
//	model := tour.NewModel(ctrl)
//	// forward messages to model.Update, composite with model.Overlay
package tour

import "github.com/matzehuels/docent/pkg/tour/placement"

// Step is one stop on a tour. Steps are immutable once a Config is
// supplied and are identified by their position in the sequence.
type Step struct {
	// Target names a region registered by the host. Resolution happens
	// live on every pass; a missing target skips the pass with a warning.
	Target string `json:"target"`

	// Title and Content fill the tooltip body.
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`

	// Placement hints the tooltip side. The zero value lets the resolver
	// choose.
	Placement placement.Placement `json:"placement,omitempty"`

	// AllowInteraction lets non-navigation key input through to the host
	// while this step is active.
	AllowInteraction bool `json:"allow_interaction,omitempty"`
}
