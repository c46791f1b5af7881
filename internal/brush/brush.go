// Package brush provides the snack brushes. Each recipe stamps randomized
// shapes at one anchor point.
package brush

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/leoyouyang/snack-time/internal/geom"
	"github.com/leoyouyang/snack-time/internal/surface"
)

// DefaultJitter is the positional randomness applied per stamp in pixels.
const DefaultJitter = 15.0

// ErrUnknownBrush is returned by New for names not in Names().
var ErrUnknownBrush = errors.New("unknown brush")

// Canvas is the part of the raster surface the recipes draw with.
type Canvas interface {
	DrawShape(kind surface.Shape, at geom.Point, size geom.Size, col color.Color)
	FillPolygon(pts []geom.Point, col color.Color)
}

// Recipe stamps one brush impression.
type Recipe interface {
	Name() string
	Stamp(c Canvas, p geom.Point, jitter float64)
}

// Pringles stamps one golden ellipse.
type Pringles struct{ J *geom.Jitter }

func (Pringles) Name() string { return "pringles" }

func (b Pringles) Stamp(c Canvas, p geom.Point, jitter float64) {
	col := HSL(b.J.Range(45, 10), 1, 0.6)
	c.DrawShape(surface.Ellipse, b.J.Offset(p, jitter), geom.Size{W: 25, H: 30}, col)
}

// Cheetos scatters orange crumbs.
type Cheetos struct{ J *geom.Jitter }

// crumbs is the number of squares per Cheetos stamp.
const crumbs = 100

func (Cheetos) Name() string { return "cheetos" }

func (b Cheetos) Stamp(c Canvas, p geom.Point, jitter float64) {
	for i := 0; i < crumbs; i++ {
		col := HSL(b.J.Range(0, 60), 1, 0.6)
		c.DrawShape(surface.Rect, b.J.Offset(p, jitter), geom.Size{W: 2, H: 2}, col)
	}
}

// Doritos stamps a triangle chip with each corner jittered independently.
type Doritos struct{ J *geom.Jitter }

const (
	chipSide = 60.0
	chipHalf = chipSide / 2
)

// chipHeight is the height of the equilateral chip.
var chipHeight = chipSide * math.Cos(math.Pi/6)

func (Doritos) Name() string { return "doritos" }

func (b Doritos) Stamp(c Canvas, p geom.Point, jitter float64) {
	col := HSL(b.J.Range(30, 20), 1, 0.6)
	pts := []geom.Point{
		b.J.Offset(geom.Pt(p.X-chipHalf, p.Y+chipHalf), jitter),
		b.J.Offset(geom.Pt(p.X+chipHalf, p.Y+chipHalf), jitter),
		b.J.Offset(geom.Pt(p.X, p.Y+chipHalf-chipHeight), jitter),
	}
	c.FillPolygon(pts, col)
}

var registry = map[string]func(*geom.Jitter) Recipe{
	"pringles": func(j *geom.Jitter) Recipe { return Pringles{J: j} },
	"cheetos":  func(j *geom.Jitter) Recipe { return Cheetos{J: j} },
	"doritos":  func(j *geom.Jitter) Recipe { return Doritos{J: j} },
}

// order is the toolbar order of the brushes.
var order = []string{"pringles", "cheetos", "doritos"}

// Names lists the available brushes in toolbar order.
func Names() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// New returns the recipe called name using j for its randomness.
func New(name string, j *geom.Jitter) (Recipe, error) {
	mk, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		known := make([]string, 0, len(registry))
		for k := range registry {
			known = append(known, k)
		}
		sort.Strings(known)
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownBrush, name, strings.Join(known, ", "))
	}
	if j == nil {
		j = geom.NewJitter(nil)
	}
	return mk(j), nil
}
