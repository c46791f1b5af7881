// Package geom holds the small value types shared by the stroke engine, the
// raster surface and the brushes.
package geom

import (
	"fmt"
	"image"
	"math"
	"math/rand/v2"
)

// Point is a coordinate in surface pixel space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// FromImage converts an integer image point.
func FromImage(p image.Point) Point { return Point{X: float64(p.X), Y: float64(p.Y)} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(q.X-p.X, q.Y-p.Y) }

// Lerp returns p + t*(q-p).
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + t*(q.X-p.X), p.Y + t*(q.Y-p.Y)}
}

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Image rounds p to the nearest integer pixel.
func (p Point) Image() image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

func (p Point) String() string { return fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y) }

// Size is a width/height pair in pixels.
type Size struct {
	W, H float64
}

// Jitter perturbs stamp positions and colours. It is the only source of
// randomness in a painting session so tests can seed it.
type Jitter struct {
	rng *rand.Rand
}

// NewJitter wraps rng. A nil rng uses a randomly seeded PCG source.
func NewJitter(rng *rand.Rand) *Jitter {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Jitter{rng: rng}
}

// Spread returns a value uniformly distributed in [-size/2, size/2).
func (j *Jitter) Spread(size float64) float64 {
	return (j.rng.Float64() - 0.5) * size
}

// Offset returns p moved by an independent Spread on each axis.
func (j *Jitter) Offset(p Point, size float64) Point {
	return Point{p.X + j.Spread(size), p.Y + j.Spread(size)}
}

// Range returns a value uniformly distributed in [lo, lo+span).
func (j *Jitter) Range(lo, span float64) float64 {
	return lo + j.rng.Float64()*span
}
