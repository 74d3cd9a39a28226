package skin

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_Builtins(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "default", "DEFAULT", " light "} {
		s, err := Load(name, "")
		if err != nil {
			t.Fatalf("Load(%q) error = %v", name, err)
		}
		if err := s.Validate(); err != nil {
			t.Fatalf("Load(%q) returned invalid skin: %v", name, err)
		}
	}
}

func TestLoad_UnknownFallsBack(t *testing.T) {
	t.Parallel()

	s, err := Load("solarized", t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load error = %v, want ErrNotFound", err)
	}
	if diff := cmp.Diff(Default(), s); diff != "" {
		t.Fatalf("fallback skin mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{
		"ocean.yml":   "background: \"#001122\"\naccent: \"#00aaff\"\n",
		"forest.toml": "name = \"Forest\"\nbackground = \"#0b2010\"\ntext = \"#e0ffe0\"\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name string
		want Skin
	}{
		{"ocean", func() Skin {
			s := Default()
			s.Name, s.Background, s.Accent = "ocean", "#001122", "#00aaff"
			return s
		}()},
		{"forest", func() Skin {
			s := Default()
			s.Name, s.Background, s.Text = "Forest", "#0b2010", "#e0ffe0"
			return s
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Load(tt.name, dir)
			if err != nil {
				t.Fatalf("Load(%q) error = %v", tt.name, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("skin mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_FileOverridesBuiltin(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "light.yaml"), []byte("surface: \"#fafafa\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load("light", dir)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if s.Surface != "#fafafa" {
		t.Fatalf("Surface = %q, want file value #fafafa", s.Surface)
	}
}

func TestParse_RejectsBadColors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		ext  string
	}{
		{"yaml short hex", "accent: \"#fff\"\n", ".yml"},
		{"toml named color", "border = \"red\"\n", ".toml"},
		{"malformed yaml", "accent: [\n", ".yaml"},
		{"malformed toml", "accent = \n", ".toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Parse([]byte(tt.data), tt.ext); err == nil {
				t.Fatalf("Parse(%q) = nil error, want failure", tt.data)
			}
		})
	}
}
