// Package observability provides hooks for instrumenting tour activity.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about tour runs and layout resolution passes.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// Hooks are invoked from the UI event loop, so implementations must return
// quickly and must not block.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetTourHooks(&myTourHooks{})
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// The library calls hooks to emit events:
//
//	observability.Tour().OnTourStart(runID, stepCount)
//	// ... tour runs ...
//	observability.Tour().OnTourEnd(runID, reason)
package observability

import (
	"sync"
	"time"
)

// Reasons reported by TourHooks.OnTourEnd.
const (
	EndReasonCompleted = "completed"
	EndReasonSkipped   = "skipped"
	EndReasonStopped   = "stopped"
)

// =============================================================================
// Tour Hooks
// =============================================================================

// TourHooks receives events from the tour state machine.
type TourHooks interface {
	// OnTourStart records a tour activation. runID identifies this run
	// across all subsequent events.
	OnTourStart(runID string, stepCount int)

	// OnStepChange records the active step index after any navigation.
	OnStepChange(runID string, stepIndex int)

	// OnTourEnd records a tour deactivation with one of the EndReason
	// constants.
	OnTourEnd(runID string, reason string)
}

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from placement resolution passes.
type LayoutHooks interface {
	// OnResolveStart records the beginning of a resolution pass.
	OnResolveStart(target string)

	// OnResolveComplete records a finished pass. fallback reports whether
	// the doubled-gap last-resort placement was used.
	OnResolveComplete(target string, placement string, fallback bool, duration time.Duration)

	// OnTargetMiss records a pass aborted because the target selector
	// matched nothing.
	OnTargetMiss(target string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopTourHooks is a no-op implementation of TourHooks.
type NoopTourHooks struct{}

func (NoopTourHooks) OnTourStart(string, int)  {}
func (NoopTourHooks) OnStepChange(string, int) {}
func (NoopTourHooks) OnTourEnd(string, string) {}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnResolveStart(string)                                 {}
func (NoopLayoutHooks) OnResolveComplete(string, string, bool, time.Duration) {}
func (NoopLayoutHooks) OnTargetMiss(string)                                   {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	tourHooks   TourHooks   = NoopTourHooks{}
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	hooksMu     sync.RWMutex
)

// SetTourHooks registers custom tour hooks.
// This should be called once at application startup before any tour runs.
func SetTourHooks(h TourHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		tourHooks = h
	}
}

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any tour runs.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// Tour returns the registered tour hooks.
func Tour() TourHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return tourHooks
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	tourHooks = NoopTourHooks{}
	layoutHooks = NoopLayoutHooks{}
}
