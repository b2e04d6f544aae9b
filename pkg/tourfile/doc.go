// Package tourfile loads declarative tour definitions from TOML, YAML,
// or JSON files.
//
// # Overview
//
// A tour file describes a complete tour: the step sequence, display
// flags, and optionally a style preset. Files let applications ship
// tours alongside their binaries and let users author tours without
// touching Go code.
//
// # Format
//
// The canonical format is TOML; YAML and JSON carry the same shape:
//
//	name = "welcome"
//	preset = "dark"
//	show_progress = true
//	show_skip_button = true
//
//	[[steps]]
//	target = "sidebar"
//	title = "Navigation"
//	content = "Use j/k to move through the list."
//	placement = "right"
//
// Top-level fields:
//   - name: Display name for the tour (optional)
//   - preset: Style preset name ("dark", "modern", "minimal", "colorful")
//   - show_progress, show_skip_button, scroll_to_steps, disable_overlay:
//     Display flags, all default false
//   - scroll_offset, spotlight_padding: Cell distances, defaulted when 0
//
// Step fields:
//   - target: Required region name registered by the host
//   - title, content: Tooltip text
//   - placement: "auto", "bottom", "top", "right", or "left" (default auto)
//   - allow_interaction: Pass non-navigation keys through to the host
//
// # Loading
//
// Use [Load] to read a file by path with format detection from the
// extension, or the Read functions to decode from any io.Reader:
//
//	def, err := tourfile.Load("tours/welcome.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ctrl, err := tour.NewController(def.Config, tour.WithTargets(targets))
//
// The returned configuration is fully validated: placements are parsed,
// the preset is resolved into the style set, target names are checked,
// and defaults are filled in. An empty step list is accepted and yields
// an inert tour.
package tourfile
