package theme

import (
	"embed"
	"io/fs"
	"strings"
)

//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

// Embedded lists the names of the built-in themes.
func Embedded() []string {
	entries, err := fs.ReadDir(EmbeddedThemes, "defaults")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".theme"))
	}
	return names
}
