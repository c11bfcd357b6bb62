// Package config holds the editor's styling and behavior settings.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"

	"coedit/internal/node"
	"coedit/internal/shape"
)

type Padding struct {
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
	Top    float64 `toml:"top"`
	Bottom float64 `toml:"bottom"`
}

// Config is decoded from TOML on top of Default.
type Config struct {
	HandleRadius      float64 `toml:"handle_radius"`
	LineWidth         float64 `toml:"line_width"`
	Padding           Padding `toml:"padding"`
	HandleColor       string  `toml:"handle_color"`
	HandleBorderColor string  `toml:"handle_border_color"`
	HistogramsColor   string  `toml:"histograms_color"`

	BackgroundShape   shape.Mode `toml:"background_shape"`
	BackgroundOpacity bool       `toml:"background_opacity"`
	ShowHistograms    bool       `toml:"show_histograms"`
	ShowLine          bool       `toml:"show_line"`

	Bins         int  `toml:"bins"`
	LogHistogram bool `toml:"log_histogram"`

	Colormap  string                `toml:"colormap"`
	Colormaps map[string][]node.RGB `toml:"colormaps"`
}

// Default mirrors the settings of the reference volume viewer.
func Default() Config {
	return Config{
		HandleRadius:      7,
		LineWidth:         2,
		Padding:           Padding{Left: 8, Right: 8, Top: 8, Bottom: 8},
		HandleColor:       "#202020",
		HandleBorderColor: "#bfbfbf",
		HistogramsColor:   "#000000",
		BackgroundShape:   shape.Histograms,
		ShowLine:          true,
		Bins:              251,
		LogHistogram:      true,
		Colormap:          "RBG",
		Colormaps: map[string][]node.RGB{
			"RBG": {{1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
			"WB":  {{1, 1, 1}, {0, 0, 0}},
			"viridis": {
				{0.267004, 0.004874, 0.329415},
				{0.229739, 0.322361, 0.545706},
				{0.127568, 0.566949, 0.550556},
				{0.369214, 0.788888, 0.382914},
				{0.993248, 0.906157, 0.143936},
			},
			"plasma": {
				{0.050383, 0.029803, 0.527975},
				{0.494877, 0.011990, 0.657865},
				{0.798216, 0.280197, 0.469538},
				{0.973416, 0.585761, 0.251540},
				{0.940015, 0.975158, 0.131326},
			},
		},
	}
}

// Load decodes the TOML file at path over Default. Keys that do not map to
// a field are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.HandleRadius <= 0 {
		errs = append(errs, errors.New("handle_radius must be positive"))
	}
	if c.Bins <= 0 {
		errs = append(errs, errors.New("bins must be positive"))
	}
	for name, s := range map[string]string{
		"handle_color":        c.HandleColor,
		"handle_border_color": c.HandleBorderColor,
		"histograms_color":    c.HistogramsColor,
	} {
		if _, err := colorful.Hex(s); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if _, ok := c.Colormaps[c.Colormap]; !ok {
		errs = append(errs, fmt.Errorf("colormap %q is not defined", c.Colormap))
	}
	for name, rgbs := range c.Colormaps {
		if len(rgbs) == 0 {
			errs = append(errs, fmt.Errorf("colormap %q is empty", name))
		}
	}
	return errors.Join(errs...)
}

func (c Config) NodePadding() node.Padding {
	return node.Padding{Left: c.Padding.Left, Right: c.Padding.Right, Top: c.Padding.Top, Bottom: c.Padding.Bottom}
}

// ColormapNames returns the preset names in sorted order.
func (c Config) ColormapNames() []string {
	names := make([]string, 0, len(c.Colormaps))
	for name := range c.Colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Color parses a hex color setting. Invalid values fall back to black;
// Validate reports them.
func Color(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
