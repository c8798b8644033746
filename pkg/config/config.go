// Package config loads survey report definitions from TOML.
//
// A report file names the data table, describes the questions (titles and
// optional categories), declares custom scales with their colors and lists the
// charts to produce:
//
//	data       = "survey.csv"
//	output_dir = "figures"
//	formats    = ["png", "svg"]
//
//	[scales.quality]
//	labels  = ["Very poor", "Poor", "Fair", "Good", "Very good"]
//	palette = "PuOr"
//
//	[questions.requirements_rel]
//	title    = "In your view, how relevant are requirements engineering practices?"
//	short    = "Requirements engineering"
//	category = "Model development"
//
//	[[charts]]
//	kind      = "diverging"
//	scale     = "relevant"
//	questions = ["requirements_rel", "open_rel"]
//	file      = "relevance"
//
// Built-in scales (agree, likely, relevant) can be referenced without being
// declared; declaring a scale with the same name overrides the built-in.
package config

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/surveyplot/pkg/errors"
	"github.com/matzehuels/surveyplot/pkg/palette"
	"github.com/matzehuels/surveyplot/pkg/survey"
)

const (
	// DefaultOutputDir is where charts are written when output_dir is unset.
	DefaultOutputDir = "figures"

	// DefaultFormat is the output format used when formats is unset.
	DefaultFormat = "png"
)

// DefaultMissing lists the cell values treated as missing answers.
var DefaultMissing = []string{"", "NA", "N/A", "nan", "NaN"}

// Config is a complete report definition.
type Config struct {
	Data      string   `toml:"data"`
	Sheet     string   `toml:"sheet"` // XLSX sheet, first sheet when empty
	Missing   []string `toml:"missing"`
	OutputDir string   `toml:"output_dir"`
	Formats   []string `toml:"formats"`

	Scales    map[string]Scale    `toml:"scales"`
	Questions map[string]Question `toml:"questions"`
	Charts    []Chart             `toml:"charts"`

	// dir is the directory of the loaded file; relative paths resolve against it.
	dir string
}

// Scale declares a custom response scale.
type Scale struct {
	Labels  []string `toml:"labels"`
	Palette string   `toml:"palette"`
	Colors  []string `toml:"colors"`
}

// Question holds display metadata for one column.
type Question struct {
	Title    string `toml:"title"`
	Short    string `toml:"short"`
	Category string `toml:"category"`
}

// Chart describes one figure of the report.
type Chart struct {
	Kind      string   `toml:"kind"`
	Questions []string `toml:"questions"`
	Scale     string   `toml:"scale"`
	File      string   `toml:"file"`
	XLabel    string   `toml:"xlabel"`
	Separator string   `toml:"separator"`  // split charts only
	Percent   bool     `toml:"percent"`    // split charts only
	Short     bool     `toml:"short"`      // use short question titles
	BoldFirst bool     `toml:"bold_first"` // bold title on the first Likert panel
	Color     string   `toml:"color"`      // bar color for single-series charts

	Width     float64 `toml:"width"`      // inches
	BarHeight float64 `toml:"bar_height"` // inches per bar or panel
	TickWidth int     `toml:"tick_width"` // wrap width for category labels
}

// Load reads and validates a TOML report file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes TOML data, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if len(c.Formats) == 0 {
		c.Formats = []string{DefaultFormat}
	}
	if c.Missing == nil {
		c.Missing = slices.Clone(DefaultMissing)
	}
}

// Validate checks the structure of the report; chart kinds and formats are
// checked by the pipeline that interprets them.
func (c *Config) Validate() error {
	for name, s := range c.Scales {
		if len(s.Labels) == 0 {
			return errors.New(errors.ErrCodeEmptyScale, "scale %q has no labels", name)
		}
		if len(s.Colors) > 0 && len(s.Colors) != len(s.Labels) {
			return errors.New(errors.ErrCodeColorCountMismatch,
				"scale %q has %d labels but %d colors", name, len(s.Labels), len(s.Colors))
		}
	}
	for i, ch := range c.Charts {
		if ch.Kind == "" {
			return errors.New(errors.ErrCodeInvalidChart, "chart %d: kind is required", i+1)
		}
		if len(ch.Questions) == 0 {
			return errors.New(errors.ErrCodeInvalidChart, "chart %d: at least one question is required", i+1)
		}
		for _, q := range ch.Questions {
			if err := errors.ValidateColumnName(q); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidChart, err, "chart %d", i+1)
			}
		}
		if ch.File != "" {
			if err := errors.ValidateFileName(ch.File); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidChart, err, "chart %d", i+1)
			}
		}
		if ch.Scale != "" {
			if _, _, err := c.Scale(ch.Scale); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidChart, err, "chart %d", i+1)
			}
		}
	}
	return nil
}

// DataPath returns the data file path resolved against the config directory.
func (c *Config) DataPath() string {
	return c.resolve(c.Data)
}

// OutputPath returns the output directory resolved against the config directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.OutputDir)
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

// Scale looks up a declared or built-in scale together with its colors.
func (c *Config) Scale(name string) (survey.Scale, palette.Spec, error) {
	if s, ok := c.Scales[name]; ok {
		spec := palette.Spec{Name: s.Palette, Colors: slices.Clone(s.Colors)}
		if spec.IsZero() {
			spec = palette.DefaultFor(name)
		}
		return survey.NewScale(name, s.Labels...), spec, nil
	}
	if s, ok := survey.BuiltinScales[name]; ok {
		return s, palette.DefaultFor(name), nil
	}
	return survey.Scale{}, palette.Spec{}, errors.New(errors.ErrCodeUnknownScale, "unknown scale %q", name)
}

// Title returns the display title of a question. Short titles fall back to
// the long title, which falls back to the column name.
func (c *Config) Title(question string, short bool) string {
	q := c.Questions[question]
	if short && q.Short != "" {
		return q.Short
	}
	if q.Title != "" {
		return q.Title
	}
	return question
}

// Category returns the category of a question, if any.
func (c *Config) Category(question string) string {
	return c.Questions[question].Category
}
