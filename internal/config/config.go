package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// HexColor is a 24-bit packed RGB value parsed from a "#RRGGBB" string.
type HexColor uint32

// ParseHexColor parses "#RRGGBB" (leading # optional) into a packed value.
func ParseHexColor(s string) (HexColor, error) {
	t := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(t) != 6 {
		return 0, fmt.Errorf("invalid color %q: expected #RRGGBB", s)
	}
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return HexColor(v), nil
}

func (c *HexColor) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c HexColor) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

func (c HexColor) String() string {
	return fmt.Sprintf("#%06X", uint32(c))
}

// Config holds the color catalog and geometry thresholds used by the window
// resolver and the scanner. It is injected rather than compiled in so tests
// can substitute synthetic palettes and geometries.
type Config struct {
	StripHeight     int        `yaml:"strip_height"`     // tab strip height in px from the window top
	ProximityRadius int        `yaml:"proximity_radius"` // pre-check radius around the cursor column
	Background      HexColor   `yaml:"background"`
	Targets         []HexColor `yaml:"targets"`
	Browsers        []string   `yaml:"browsers"`        // app-name markers for supported browsers
	PopupProcesses  []string   `yaml:"popup_processes"` // process markers for transient popups
	PopupMaxYOffset int        `yaml:"popup_max_y_offset"`
	PopupXTolerance int        `yaml:"popup_x_tolerance"`
}

// Default returns the built-in catalog: the Edge/Chrome tab-group palette
// on the dark tab-strip background.
func Default() Config {
	return Config{
		StripHeight:     60,
		ProximityRadius: 2,
		Background:      0x202020,
		Targets: []HexColor{
			0xEE5FB7, 0x4A89BA, 0xCF87DA, 0x69A1FA,
			0x84817E, 0x4CB4B7, 0xDF8E64, 0xC1A256,
		},
		Browsers:        []string{"edge", "chrome"},
		PopupProcesses:  []string{"msedge"},
		PopupMaxYOffset: 50,
		PopupXTolerance: 50,
	}
}

// Load reads a YAML config file over the defaults; keys absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the invariants the scanner and resolver depend on.
func (c Config) Validate() error {
	if c.StripHeight <= 0 {
		return fmt.Errorf("strip_height must be positive, got %d", c.StripHeight)
	}
	if c.ProximityRadius < 0 {
		return fmt.Errorf("proximity_radius must not be negative, got %d", c.ProximityRadius)
	}
	if len(c.Targets) == 0 {
		return fmt.Errorf("targets must list at least one color")
	}
	if len(c.Browsers) == 0 {
		return fmt.Errorf("browsers must list at least one marker")
	}
	for _, t := range c.Targets {
		if t == c.Background {
			return fmt.Errorf("target color %s equals the background", t)
		}
	}
	return nil
}
