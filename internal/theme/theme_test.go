package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#112233", color.RGBA{0x11, 0x22, 0x33, 0xFF}},
		{"#11223380", color.RGBA{0x11, 0x22, 0x33, 0x80}},
		{"tomato", color.RGBA{0xFF, 0x63, 0x47, 0xFF}},
		{" White ", color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	for _, bad := range []string{"#12", "#GGGGGG", "crisps", ""} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) succeeded", bad)
		}
	}
}

func TestFormatColorRoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{{1, 2, 3, 255}, {200, 100, 50, 128}} {
		got, err := ParseColor(FormatColor(c))
		if err != nil || got != c {
			t.Errorf("round trip %v -> %q -> %v (%v)", c, FormatColor(c), got, err)
		}
	}
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	th, err := Parse(strings.NewReader("Name: Mine\n// comment\nbuttonactive: #010203\nUnknown: #FFFFFF\n"))
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "Mine" {
		t.Errorf("name %q", th.Name)
	}
	if th.ButtonActive != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("ButtonActive %v", th.ButtonActive)
	}
	if th.Background != Default().Background {
		t.Errorf("Background changed to %v", th.Background)
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Background: #XYZ\n")); err == nil {
		t.Fatal("expected error")
	}
}

func TestEmbeddedThemesParse(t *testing.T) {
	names := Embedded()
	if len(names) < 3 {
		t.Fatalf("embedded themes %v", names)
	}
	l := &Loader{}
	for _, name := range names {
		if _, err := l.Load(name); err != nil {
			t.Errorf("load %s: %v", name, err)
		}
	}
}

func TestLoaderOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "salt.theme"), []byte("Name: Salt\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: dir, Custom: map[string]*Theme{"inline": {Name: "Inline"}}}

	if th, err := l.Load("salt"); err != nil || th.Name != "Salt" {
		t.Errorf("config dir theme: %v %v", th, err)
	}
	if th, err := l.Load(filepath.Join(dir, "salt.theme")); err != nil || th.Name != "Salt" {
		t.Errorf("path theme: %v %v", th, err)
	}
	if th, err := l.Load("inline"); err != nil || th.Name != "Inline" {
		t.Errorf("inline theme: %v %v", th, err)
	}
	if th, err := l.Load("dark"); err != nil || th.Name != "Dark" {
		t.Errorf("embedded theme: %v %v", th, err)
	}
	if th, err := l.Load(""); err != nil || th.Name != "Default" {
		t.Errorf("default theme: %v %v", th, err)
	}
	if _, err := l.Load("vinegar"); err == nil {
		t.Error("expected not found")
	}
}

func TestFieldsOrder(t *testing.T) {
	fields := Default().Fields()
	if fields[0].Key != "Background" || fields[len(fields)-1].Key != "BannerError" {
		t.Errorf("unexpected fields %v", fields)
	}
}
