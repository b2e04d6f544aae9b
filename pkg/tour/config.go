package tour

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/matzehuels/docent/pkg/errors"
	"github.com/matzehuels/docent/pkg/tour/placement"
	"github.com/matzehuels/docent/pkg/tour/style"
)

// Default values for tour configuration
const (
	// DefaultScrollOffset is the gap in cells kept between the top of the
	// viewport and a scrolled-to target.
	DefaultScrollOffset = 100

	// DefaultSpotlightPadding is the padding in cells added around a
	// target when cutting the spotlight.
	DefaultSpotlightPadding = 8
)

// Config configures a tour: the step sequence plus behavior flags. The
// zero value is inert but valid; call ValidateAndSetDefaults before use.
type Config struct {
	// Steps is the ordered step sequence. An empty sequence is accepted
	// and produces a tour that never activates.
	Steps []Step `json:"steps"`

	// ShowProgress renders a "current/total" counter in the tooltip.
	ShowProgress bool `json:"show_progress,omitempty"`

	// ShowSkipButton renders the skip hint in the tooltip footer.
	ShowSkipButton bool `json:"show_skip_button,omitempty"`

	// ScrollToSteps requests that the host scroll each step's target into
	// view when the step activates.
	ScrollToSteps bool `json:"scroll_to_steps,omitempty"`

	// ScrollOffset is the desired distance in cells between the viewport
	// top and a scrolled-to target. Zero means DefaultScrollOffset.
	ScrollOffset int `json:"scroll_offset,omitempty"`

	// SpotlightPadding is the padding in cells around the target cutout.
	// Zero means DefaultSpotlightPadding.
	SpotlightPadding int `json:"spotlight_padding,omitempty"`

	// DisableOverlay suppresses the dimmed backdrop; the tooltip and
	// spotlight frame still render.
	DisableOverlay bool `json:"disable_overlay,omitempty"`

	// Styles overrides individual elements of the default style set.
	// Entries merge over style.Default; absent elements keep defaults.
	Styles style.Styles `json:"-"`

	// Runtime options (not serialized)
	OnComplete func()      `json:"-"`
	OnSkip     func()      `json:"-"`
	Logger     *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults validates the configuration and fills in
// defaults. It is idempotent.
func (c *Config) ValidateAndSetDefaults() error {
	if c.validated {
		return nil
	}

	for i, step := range c.Steps {
		if err := errors.ValidateTargetName(step.Target); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidStep, err, "step %d", i)
		}
		if step.Placement < placement.Auto || step.Placement > placement.Left {
			return errors.New(errors.ErrCodeInvalidPlacement, "step %d: placement out of range", i)
		}
	}

	if c.ScrollOffset < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scroll offset cannot be negative")
	}
	if c.ScrollOffset == 0 {
		c.ScrollOffset = DefaultScrollOffset
	}

	if c.SpotlightPadding < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "spotlight padding cannot be negative")
	}
	if c.SpotlightPadding == 0 {
		c.SpotlightPadding = DefaultSpotlightPadding
	}

	if c.Logger == nil {
		c.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	c.validated = true
	return nil
}
