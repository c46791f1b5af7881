package background

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoyouyang/snack-time/internal/render"
	"github.com/leoyouyang/snack-time/internal/surface"
)

func solid(c color.Color, size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		r, g, b, a := c.RGBA()
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)
	}
	return img
}

func fiveSolids() []image.Image {
	out := make([]image.Image, 5)
	for i := range out {
		out[i] = solid(color.RGBA{R: uint8(40 * i), A: 255}, 8)
	}
	return out
}

func TestWrapAround(t *testing.T) {
	s, err := New(fiveSolids())
	require.NoError(t, err)
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 4, s.Previous())
	assert.Equal(t, 0, s.Next())
	s.Select(4)
	assert.Equal(t, 0, s.Next())
	assert.Equal(t, 2, s.Select(-8))
	assert.Equal(t, 1, s.Select(11))
}

func TestAtLeavesSelection(t *testing.T) {
	imgs := fiveSolids()
	s, err := New(imgs)
	require.NoError(t, err)
	assert.Equal(t, imgs[4], s.At(-1))
	assert.Equal(t, imgs[2], s.At(7))
	assert.Equal(t, 0, s.Index())
}

func TestNewEmpty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoBackgrounds)
}

func TestEmbeddedSet(t *testing.T) {
	s, err := Embedded()
	require.NoError(t, err)
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, "bg0.png", s.Name())
	assert.Equal(t, "bg4.png", s.NameAt(-1))
}

func TestSquare(t *testing.T) {
	assert.Equal(t, image.Rect(50, 0, 150, 100), Square(image.Rect(0, 0, 200, 100)))
	assert.Equal(t, image.Rect(0, 30, 80, 110), Square(image.Rect(0, 0, 80, 140)))
	assert.Equal(t, image.Rect(0, 0, 64, 64), Square(image.Rect(0, 0, 64, 64)))
}

func TestRenderCentresAssetOnShortSide(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	s, err := New([]image.Image{solid(red, 8)})
	require.NoError(t, err)
	r := surface.New(200, 100)
	s.Render(r)

	img := r.Image()
	assert.Equal(t, red, img.RGBAAt(100, 50))
	assert.Equal(t, red, img.RGBAAt(51, 1))
	// outside the square only paper remains
	left := img.RGBAAt(10, 50)
	assert.NotEqual(t, red, left)
	assert.Equal(t, uint8(255), left.A)
	assert.Greater(t, left.G, uint8(150))
}

func TestRenderIsRepeatable(t *testing.T) {
	s, err := New(fiveSolids(), WithShadow(render.DefaultShadowOptions()))
	require.NoError(t, err)
	r := surface.New(120, 90)
	s.Render(r)
	snap := r.CaptureSnapshot()
	r.FillFrame(color.Black)
	s.Render(r)
	assert.True(t, r.Matches(snap))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	for i, name := range []string{"b.png", "a.png"} {
		f, err := os.Create(filepath.Join(dir, name))
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, solid(color.RGBA{B: uint8(100 * (i + 1)), A: 255}, 4)))
		require.NoError(t, f.Close())
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	s, err := FromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "a.png", s.Name())
	_, _, _, a := s.Current().At(0, 0).RGBA()
	assert.NotZero(t, a)
}

func TestLoadDirErrors(t *testing.T) {
	_, _, err := LoadDir(t.TempDir())
	assert.ErrorIs(t, err, ErrNoBackgrounds)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.png"), []byte("nope"), 0o644))
	_, _, err = LoadDir(dir)
	assert.ErrorContains(t, err, "broken.png")
}
