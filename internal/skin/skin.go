// Package skin holds the chrome colors of the dashboard. Chart colors are
// fixed by the catalog; a skin only changes backgrounds, borders and text.
package skin

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Skin is a set of hex colors for the layout shell.
type Skin struct {
	Name       string `yaml:"name" toml:"name" json:"name"`
	Background string `yaml:"background" toml:"background" json:"background"`
	Surface    string `yaml:"surface" toml:"surface" json:"surface"`
	Border     string `yaml:"border" toml:"border" json:"border"`
	Text       string `yaml:"text" toml:"text" json:"text"`
	Muted      string `yaml:"muted" toml:"muted" json:"muted"`
	Accent     string `yaml:"accent" toml:"accent" json:"accent"`
	Overlay    string `yaml:"overlay" toml:"overlay" json:"overlay"`
}

// ErrNotFound is returned when no built-in skin or skin file matches a name.
var ErrNotFound = errors.New("skin not found")

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

var builtins = map[string]Skin{
	"default": {
		Name:       "default",
		Background: "#111827",
		Surface:    "#1f2937",
		Border:     "#374151",
		Text:       "#f9fafb",
		Muted:      "#9ca3af",
		Accent:     "#3b82f6",
		Overlay:    "#4b5563",
	},
	"light": {
		Name:       "light",
		Background: "#f3f4f6",
		Surface:    "#ffffff",
		Border:     "#e5e7eb",
		Text:       "#1f2937",
		Muted:      "#6b7280",
		Accent:     "#2563eb",
		Overlay:    "#9ca3af",
	},
}

// Default returns the built-in dark skin.
func Default() Skin {
	return builtins["default"]
}

// Names lists the built-in skins.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load resolves a skin by name. A file <dir>/<name>.yml, .yaml or .toml wins
// over a built-in of the same name. Missing fields inherit from the default
// skin. On any error the default skin is returned alongside it, so callers
// can warn and carry on.
func Load(name, dir string) (Skin, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "default"
	}

	if dir != "" {
		for _, ext := range []string{".yml", ".yaml", ".toml"} {
			path := filepath.Join(dir, name+ext)
			data, err := os.ReadFile(path)
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			if err != nil {
				return Default(), fmt.Errorf("read skin %s: %w", path, err)
			}
			s, err := Parse(data, ext)
			if err != nil {
				return Default(), fmt.Errorf("skin %s: %w", path, err)
			}
			if s.Name == "" {
				s.Name = name
			}
			return s, nil
		}
	}

	if s, ok := builtins[name]; ok {
		return s, nil
	}
	return Default(), fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Parse decodes a skin document. ext selects the format: ".toml" for TOML,
// anything else is read as YAML.
func Parse(data []byte, ext string) (Skin, error) {
	var s Skin
	switch ext {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
			return Skin{}, fmt.Errorf("parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Skin{}, fmt.Errorf("parse YAML: %w", err)
		}
	}

	s = s.withDefaults(Default())
	if err := s.Validate(); err != nil {
		return Skin{}, err
	}
	return s, nil
}

func (s Skin) withDefaults(base Skin) Skin {
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&s.Background, base.Background)
	fill(&s.Surface, base.Surface)
	fill(&s.Border, base.Border)
	fill(&s.Text, base.Text)
	fill(&s.Muted, base.Muted)
	fill(&s.Accent, base.Accent)
	fill(&s.Overlay, base.Overlay)
	return s
}

// Validate checks that every color is a #rrggbb hex value.
func (s Skin) Validate() error {
	fields := []struct {
		name, value string
	}{
		{"background", s.Background},
		{"surface", s.Surface},
		{"border", s.Border},
		{"text", s.Text},
		{"muted", s.Muted},
		{"accent", s.Accent},
		{"overlay", s.Overlay},
	}
	var errs []error
	for _, f := range fields {
		if !hexColor.MatchString(f.value) {
			errs = append(errs, fmt.Errorf("field %q: invalid hex color %q", f.name, f.value))
		}
	}
	return errors.Join(errs...)
}
