package brush

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoyouyang/snack-time/internal/geom"
	"github.com/leoyouyang/snack-time/internal/surface"
)

type call struct {
	kind surface.Shape
	pts  []geom.Point
	size geom.Size
	col  color.Color
}

type recordingCanvas struct{ calls []call }

func (c *recordingCanvas) DrawShape(kind surface.Shape, at geom.Point, size geom.Size, col color.Color) {
	c.calls = append(c.calls, call{kind: kind, pts: []geom.Point{at}, size: size, col: col})
}

func (c *recordingCanvas) FillPolygon(pts []geom.Point, col color.Color) {
	c.calls = append(c.calls, call{kind: surface.Triangle, pts: append([]geom.Point(nil), pts...), col: col})
}

func seeded() *geom.Jitter { return geom.NewJitter(rand.New(rand.NewPCG(3, 4))) }

func within(t *testing.T, p, centre geom.Point, half float64) {
	t.Helper()
	assert.InDelta(t, centre.X, p.X, half)
	assert.InDelta(t, centre.Y, p.Y, half)
}

func TestPringlesStamp(t *testing.T) {
	c := &recordingCanvas{}
	Pringles{J: seeded()}.Stamp(c, geom.Pt(100, 100), DefaultJitter)
	require.Len(t, c.calls, 1)
	got := c.calls[0]
	assert.Equal(t, surface.Ellipse, got.kind)
	assert.Equal(t, geom.Size{W: 25, H: 30}, got.size)
	within(t, got.pts[0], geom.Pt(100, 100), DefaultJitter/2)
	rgba := got.col.(color.RGBA)
	assert.Equal(t, uint8(255), rgba.R)
	assert.Greater(t, rgba.G, rgba.B)
}

func TestCheetosStamp(t *testing.T) {
	c := &recordingCanvas{}
	Cheetos{J: seeded()}.Stamp(c, geom.Pt(50, 50), DefaultJitter)
	require.Len(t, c.calls, crumbs)
	for _, cl := range c.calls {
		assert.Equal(t, surface.Rect, cl.kind)
		assert.Equal(t, geom.Size{W: 2, H: 2}, cl.size)
		within(t, cl.pts[0], geom.Pt(50, 50), DefaultJitter/2)
	}
}

func TestDoritosStamp(t *testing.T) {
	c := &recordingCanvas{}
	Doritos{J: seeded()}.Stamp(c, geom.Pt(0, 0), DefaultJitter)
	require.Len(t, c.calls, 1)
	pts := c.calls[0].pts
	require.Len(t, pts, 3)
	within(t, pts[0], geom.Pt(-30, 30), DefaultJitter/2)
	within(t, pts[1], geom.Pt(30, 30), DefaultJitter/2)
	within(t, pts[2], geom.Pt(0, 30-chipHeight), DefaultJitter/2)
}

func TestZeroJitterIsExact(t *testing.T) {
	c := &recordingCanvas{}
	Pringles{J: seeded()}.Stamp(c, geom.Pt(10, 20), 0)
	assert.Equal(t, geom.Pt(10, 20), c.calls[0].pts[0])
}

func TestStampsPaintRaster(t *testing.T) {
	for _, name := range Names() {
		r := surface.New(120, 120)
		rec, err := New(name, seeded())
		require.NoError(t, err)
		assert.Equal(t, name, rec.Name())
		rec.Stamp(r, geom.Pt(60, 60), DefaultJitter)
		painted := 0
		for i := 3; i < len(r.Image().Pix); i += 4 {
			if r.Image().Pix[i] != 0 {
				painted++
			}
		}
		assert.Positive(t, painted, name)
	}
}

func TestNewUnknown(t *testing.T) {
	_, err := New("kale", nil)
	assert.ErrorIs(t, err, ErrUnknownBrush)
	rec, err := New(" Doritos ", nil)
	require.NoError(t, err)
	assert.Equal(t, "doritos", rec.Name())
}

func TestHSL(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, HSL(0, 1, 0.5))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, HSL(120, 1, 0.5))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, HSL(-120, 1, 0.5))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, HSL(30, 1, 1))
	assert.Equal(t, color.RGBA{255, 204, 51, 255}, HSL(45, 1, 0.6))
}
