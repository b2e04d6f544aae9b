package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/docent/pkg/geometry"
	"github.com/matzehuels/docent/pkg/tour/style"
)

var testView = geometry.Size{Width: 80, Height: 24}

func TestProgress(t *testing.T) {
	tests := []struct {
		index int
		total int
		want  string
	}{
		{0, 5, "1/5"},
		{4, 5, "5/5"},
		{1, 2, "2/2"},
	}
	for _, tt := range tests {
		if got := Progress(tt.index, tt.total); got != tt.want {
			t.Errorf("Progress(%d, %d) = %q, want %q", tt.index, tt.total, got, tt.want)
		}
	}
}

func TestRenderContainsSections(t *testing.T) {
	spec := TooltipSpec{
		Title:    "Search bar",
		Content:  "Type to filter the result list.",
		Progress: "2/5",
		ShowBack: true,
		ShowSkip: true,
		Styles:   style.Default(),
	}

	plain := ansi.Strip(Render(spec, testView))

	for _, want := range []string{"Search bar", "Type to filter", "2/5", "← back", "→ next", "s skip"} {
		if !strings.Contains(plain, want) {
			t.Errorf("rendered tooltip missing %q:\n%s", want, plain)
		}
	}
}

func TestRenderLastStepShowsDone(t *testing.T) {
	spec := TooltipSpec{
		Title:  "Finish",
		IsLast: true,
		Styles: style.Default(),
	}

	plain := ansi.Strip(Render(spec, testView))

	if !strings.Contains(plain, "→ done") {
		t.Errorf("last step should render a done hint:\n%s", plain)
	}
	if strings.Contains(plain, "→ next") {
		t.Errorf("last step should not render a next hint:\n%s", plain)
	}
}

func TestRenderFirstStepHidesBack(t *testing.T) {
	spec := TooltipSpec{Title: "Intro", Styles: style.Default()}

	plain := ansi.Strip(Render(spec, testView))

	if strings.Contains(plain, "← back") {
		t.Errorf("first step should not render a back hint:\n%s", plain)
	}
}

func TestRenderWidthBounds(t *testing.T) {
	long := strings.Repeat("wide content keeps wrapping ", 10)

	tests := []struct {
		name     string
		viewport geometry.Size
		maxWidth int
	}{
		{"spacious viewport caps at max", geometry.Size{Width: 200, Height: 50}, MaxTooltipWidth},
		{"narrow viewport caps below max", geometry.Size{Width: 30, Height: 20}, 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Render(TooltipSpec{Title: "T", Content: long, Styles: style.Default()}, tt.viewport)
			if w := lipgloss.Width(out); w > tt.maxWidth {
				t.Errorf("tooltip width = %d, want <= %d", w, tt.maxWidth)
			}
		})
	}
}

func TestRenderWithoutTooltipStyle(t *testing.T) {
	// An empty style set falls back to a plain bordered box instead of
	// rendering borderless mush.
	out := Render(TooltipSpec{Title: "Bare", Styles: style.Styles{}}, testView)

	if lipgloss.Height(out) < 3 {
		t.Errorf("fallback box should have a border, got height %d", lipgloss.Height(out))
	}
	if !strings.Contains(ansi.Strip(out), "Bare") {
		t.Error("fallback box should contain the title")
	}
}

func TestMeasureMatchesRender(t *testing.T) {
	spec := TooltipSpec{
		Title:    "Measure me",
		Content:  "The resolver positions the box using exactly this size.",
		Progress: "1/3",
		ShowSkip: true,
		Styles:   style.Default(),
	}

	rendered := Render(spec, testView)
	size := Measure(spec, testView)

	if size.Width != lipgloss.Width(rendered) || size.Height != lipgloss.Height(rendered) {
		t.Errorf("Measure = %+v, rendered = %dx%d",
			size, lipgloss.Width(rendered), lipgloss.Height(rendered))
	}
}
