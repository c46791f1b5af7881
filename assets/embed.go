// Package assets embeds the default background images.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"
)

//go:embed backgrounds/*.png
var embeddedBackgrounds embed.FS

var (
	loadOnce sync.Once
	loadErr  error

	backgrounds []image.Image
	names       []string
)

// loadBackgrounds decodes backgrounds/bgN.png ordered by N.
func loadBackgrounds() {
	entries, err := fs.ReadDir(embeddedBackgrounds, "backgrounds")
	if err != nil {
		loadErr = err
		return
	}
	type indexed struct {
		idx  int
		name string
		img  image.Image
	}
	var found []indexed
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".png") {
			continue
		}
		base := strings.TrimPrefix(strings.TrimSuffix(name, ".png"), "bg")
		idx, err := strconv.Atoi(base)
		if err != nil {
			continue
		}
		data, err := embeddedBackgrounds.ReadFile(path.Join("backgrounds", name))
		if err != nil {
			loadErr = err
			return
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			loadErr = fmt.Errorf("decode %s: %w", name, err)
			return
		}
		found = append(found, indexed{idx: idx, name: name, img: img})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].idx < found[j].idx })
	for _, f := range found {
		backgrounds = append(backgrounds, f.img)
		names = append(names, f.name)
	}
}

func ensureLoaded() error {
	loadOnce.Do(loadBackgrounds)
	return loadErr
}

// Backgrounds returns the embedded background images in index order.
func Backgrounds() ([]image.Image, error) {
	if err := ensureLoaded(); err != nil {
		return nil, err
	}
	out := make([]image.Image, len(backgrounds))
	copy(out, backgrounds)
	return out, nil
}

// BackgroundNames returns the file names of the embedded backgrounds.
func BackgroundNames() []string {
	if err := ensureLoaded(); err != nil {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}
