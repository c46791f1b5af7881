package background

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true, ".webp": true,
}

// LoadDir decodes every image in dir, sorted by file name. Files with other
// extensions are skipped; a file that fails to decode is an error.
func LoadDir(dir string) ([]image.Image, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read backgrounds dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	imgs := make([]image.Image, 0, len(names))
	for _, name := range names {
		img, err := decodeFile(filepath.Join(dir, name))
		if err != nil {
			return nil, nil, err
		}
		imgs = append(imgs, img)
	}
	if len(imgs) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", dir, ErrNoBackgrounds)
	}
	return imgs, names, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// FromDir builds a set from LoadDir, or the embedded set when dir is empty.
func FromDir(dir string, opts ...Option) (*Set, error) {
	if dir == "" {
		return Embedded(opts...)
	}
	imgs, names, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return New(imgs, append([]Option{WithNames(names)}, opts...)...)
}
