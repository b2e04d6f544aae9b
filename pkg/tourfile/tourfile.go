package tourfile

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/docent/pkg/errors"
	"github.com/matzehuels/docent/pkg/tour"
	"github.com/matzehuels/docent/pkg/tour/placement"
	"github.com/matzehuels/docent/pkg/tour/style"
)

// Tour is a loaded tour definition: the validated runtime configuration
// plus the file-level metadata that has no runtime behavior.
type Tour struct {
	Name   string
	Preset string
	Config tour.Config
}

// Raw decode forms. All three formats share one shape, so each field
// carries every tag.
type file struct {
	Name             string `toml:"name" yaml:"name" json:"name"`
	Preset           string `toml:"preset" yaml:"preset" json:"preset"`
	ShowProgress     bool   `toml:"show_progress" yaml:"show_progress" json:"show_progress"`
	ShowSkipButton   bool   `toml:"show_skip_button" yaml:"show_skip_button" json:"show_skip_button"`
	ScrollToSteps    bool   `toml:"scroll_to_steps" yaml:"scroll_to_steps" json:"scroll_to_steps"`
	ScrollOffset     int    `toml:"scroll_offset" yaml:"scroll_offset" json:"scroll_offset"`
	SpotlightPadding int    `toml:"spotlight_padding" yaml:"spotlight_padding" json:"spotlight_padding"`
	DisableOverlay   bool   `toml:"disable_overlay" yaml:"disable_overlay" json:"disable_overlay"`
	Steps            []step `toml:"steps" yaml:"steps" json:"steps"`
}

type step struct {
	Target           string `toml:"target" yaml:"target" json:"target"`
	Title            string `toml:"title" yaml:"title" json:"title"`
	Content          string `toml:"content" yaml:"content" json:"content"`
	Placement        string `toml:"placement" yaml:"placement" json:"placement"`
	AllowInteraction bool   `toml:"allow_interaction" yaml:"allow_interaction" json:"allow_interaction"`
}

// ReadTOML decodes a TOML tour definition from r.
func ReadTOML(r io.Reader) (*Tour, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTourFile, err, "read")
	}
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTourFile, err, "decode toml")
	}
	return convert(f)
}

// ReadYAML decodes a YAML tour definition from r.
func ReadYAML(r io.Reader) (*Tour, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTourFile, err, "read")
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTourFile, err, "decode yaml")
	}
	return convert(f)
}

// ReadJSON decodes a JSON tour definition from r.
func ReadJSON(r io.Reader) (*Tour, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTourFile, err, "read")
	}
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTourFile, err, "decode json")
	}
	return convert(f)
}

// Load reads the tour definition at path, picking the decoder from the
// file extension: .toml, .yaml, .yml, or .json.
func Load(path string) (*Tour, error) {
	var read func(io.Reader) (*Tour, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		read = ReadTOML
	case ".yaml", ".yml":
		read = ReadYAML
	case ".json":
		read = ReadJSON
	default:
		return nil, errors.New(errors.ErrCodeUnsupported,
			"unsupported tour file extension %q (use .toml, .yaml, .yml, or .json)", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	t, err := read(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTourFile, err, "load %s", path)
	}
	return t, nil
}

// convert turns a raw decode into a validated Tour.
func convert(f file) (*Tour, error) {
	cfg := tour.Config{
		ShowProgress:     f.ShowProgress,
		ShowSkipButton:   f.ShowSkipButton,
		ScrollToSteps:    f.ScrollToSteps,
		ScrollOffset:     f.ScrollOffset,
		SpotlightPadding: f.SpotlightPadding,
		DisableOverlay:   f.DisableOverlay,
	}

	for i, s := range f.Steps {
		side, err := placement.Parse(s.Placement)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTourFile, err, "step %d", i)
		}
		cfg.Steps = append(cfg.Steps, tour.Step{
			Target:           s.Target,
			Title:            s.Title,
			Content:          s.Content,
			Placement:        side,
			AllowInteraction: s.AllowInteraction,
		})
	}

	if f.Preset != "" {
		styles, err := style.Preset(f.Preset)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTourFile, err, "preset %q", f.Preset)
		}
		cfg.Styles = styles
	}

	if err := cfg.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	return &Tour{Name: f.Name, Preset: f.Preset, Config: cfg}, nil
}
