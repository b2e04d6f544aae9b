// Package pkg provides the core libraries for Docent guided tours.
//
// # Overview
//
// Docent overlays guided tours on terminal applications: it spotlights a
// named region of the host's view, dims everything around it, and walks
// the user through a step sequence with positioned tooltips. The pkg
// directory is organized into three areas:
//
//  1. [tour] - The engine (state machine, resolution controller, Bubble Tea model)
//  2. [tourfile] - Tour definitions loaded from TOML, YAML, or JSON
//  3. Shared infrastructure: [errors], [geometry], [observability], [buildinfo]
//
// # Architecture
//
// The flow of one resolution pass:
//
//	Host view (named regions)
//	         ↓
//	    [tour] package (machine state + target lookup)
//	         ↓
//	    [tour/placement] package (spotlight cutout + tooltip position)
//	         ↓
//	    [tour/overlay] package (scrim, spotlight band, tooltip splice)
//	         ↓
//	    Composited frame
//
// Passes run on every trigger (start, navigation, resize, scroll) and
// their results are never cached; geometry is recomputed from the host's
// current state each time.
//
// # Quick Start
//
// Attach a tour to a Bubble Tea program:
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
//
// Forward host messages to model.Update, ask model.WantsKey before
// handling keys yourself, and wrap the finished view with model.Overlay.
//
// # Main Packages
//
// [tour] - The engine: the step-progression state machine, the resolution
// controller that turns machine state and host geometry into an overlay
// layout, the imperative Handle for host code, and the Bubble Tea model.
//
// [tour/placement] - Pure placement math: spotlight expansion and the
// side-selection resolver with its fallback order and viewport clamping.
//
// [tour/overlay] - Rendering: tooltip boxes via lipgloss and ANSI-aware
// string surgery that splices scrim, spotlight, tooltip, and arrow into
// the host's frame.
//
// [tour/style] - Style bags keyed by element name, plus the built-in
// presets (dark, modern, minimal, colorful).
//
// [tourfile] - File loading for tour definitions in TOML, YAML, and JSON
// with a shared schema.
//
// [geometry] - Cell-grid primitives (Point, Size, Rect) shared by
// placement and overlay.
//
// [errors] - Coded errors used across the module.
//
// [observability] - Process-wide hook registries for tour lifecycle and
// layout resolution events.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/tour/...      # Engine only
//	go test -run Example        # Examples only
//
// [tour]: https://pkg.go.dev/github.com/matzehuels/docent/pkg/tour
// [tour/placement]: https://pkg.go.dev/github.com/matzehuels/docent/pkg/tour/placement
// [tour/overlay]: https://pkg.go.dev/github.com/matzehuels/docent/pkg/tour/overlay
// [tour/style]: https://pkg.go.dev/github.com/matzehuels/docent/pkg/tour/style
// [tourfile]: https://pkg.go.dev/github.com/matzehuels/docent/pkg/tourfile
// [geometry]: https://pkg.go.dev/github.com/matzehuels/docent/pkg/geometry
// [errors]: https://pkg.go.dev/github.com/matzehuels/docent/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/docent/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/docent/pkg/buildinfo
package pkg
