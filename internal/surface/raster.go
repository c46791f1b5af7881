// Package surface implements the raster painting surface on an *image.RGBA.
package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/leoyouyang/snack-time/internal/geom"
)

// Shape selects the primitive drawn by DrawShape.
type Shape int

const (
	// Ellipse is centred on the anchor; size holds the x and y radii.
	Ellipse Shape = iota
	// Rect has its top-left corner at the anchor; size is width and height.
	Rect
	// Triangle is isosceles, apex up, inscribed in the size box centred on the anchor.
	Triangle
)

func (s Shape) String() string {
	switch s {
	case Ellipse:
		return "ellipse"
	case Rect:
		return "rect"
	case Triangle:
		return "triangle"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// kappa places cubic control points so four curves approximate a quarter
// ellipse each.
const kappa = 0.5522847498

// maxFree bounds the recycled pixel buffers kept for snapshot captures.
const maxFree = 4

// Raster is a fixed-size RGBA painting surface. It is not safe for
// concurrent use.
type Raster struct {
	img  *image.RGBA
	z    *vector.Rasterizer
	mask *image.Alpha
	free [][]uint8
}

// New returns a transparent w×h surface.
func New(w, h int) *Raster {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Raster{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(1, 1),
	}
}

// Image returns the live pixel buffer.
func (r *Raster) Image() *image.RGBA { return r.img }

// Bounds returns the surface rectangle.
func (r *Raster) Bounds() image.Rectangle { return r.img.Rect }

// Size returns the surface dimensions.
func (r *Raster) Size() geom.Size {
	return geom.Size{W: float64(r.img.Rect.Dx()), H: float64(r.img.Rect.Dy())}
}

// FillFrame paints every pixel with col.
func (r *Raster) FillFrame(col color.Color) {
	draw.Draw(r.img, r.img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawImage scales src into dst, compositing over the existing pixels.
func (r *Raster) DrawImage(src image.Image, dst image.Rectangle) {
	if src == nil || dst.Empty() {
		return
	}
	xdraw.ApproxBiLinear.Scale(r.img, dst, src, src.Bounds(), draw.Over, nil)
}

// DrawShape draws a filled primitive anchored at at.
func (r *Raster) DrawShape(kind Shape, at geom.Point, size geom.Size, col color.Color) {
	switch kind {
	case Ellipse:
		r.fillEllipse(at, size.W, size.H, col)
	case Rect:
		r.fillRect(at, size, col)
	case Triangle:
		r.FillPolygon([]geom.Point{
			{X: at.X, Y: at.Y - size.H/2},
			{X: at.X + size.W/2, Y: at.Y + size.H/2},
			{X: at.X - size.W/2, Y: at.Y + size.H/2},
		}, col)
	}
}

// FillPolygon fills the closed polygon through pts.
func (r *Raster) FillPolygon(pts []geom.Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	minP, maxP := pts[0], pts[0]
	for _, p := range pts[1:] {
		minP.X, minP.Y = math.Min(minP.X, p.X), math.Min(minP.Y, p.Y)
		maxP.X, maxP.Y = math.Max(maxP.X, p.X), math.Max(maxP.Y, p.Y)
	}
	r.fillPath(minP, maxP, col, func(z *vector.Rasterizer, o geom.Point) {
		z.MoveTo(float32(pts[0].X-o.X), float32(pts[0].Y-o.Y))
		for _, p := range pts[1:] {
			z.LineTo(float32(p.X-o.X), float32(p.Y-o.Y))
		}
		z.ClosePath()
	})
}

func (r *Raster) fillEllipse(c geom.Point, rx, ry float64, col color.Color) {
	if !(rx > 0) || !(ry > 0) {
		return
	}
	r.fillPath(geom.Pt(c.X-rx, c.Y-ry), geom.Pt(c.X+rx, c.Y+ry), col, func(z *vector.Rasterizer, o geom.Point) {
		cx, cy := float32(c.X-o.X), float32(c.Y-o.Y)
		ax, ay := float32(rx), float32(ry)
		kx, ky := float32(rx*kappa), float32(ry*kappa)
		z.MoveTo(cx+ax, cy)
		z.CubeTo(cx+ax, cy+ky, cx+kx, cy+ay, cx, cy+ay)
		z.CubeTo(cx-kx, cy+ay, cx-ax, cy+ky, cx-ax, cy)
		z.CubeTo(cx-ax, cy-ky, cx-kx, cy-ay, cx, cy-ay)
		z.CubeTo(cx+kx, cy-ay, cx+ax, cy-ky, cx+ax, cy)
		z.ClosePath()
	})
}

func (r *Raster) fillRect(at geom.Point, size geom.Size, col color.Color) {
	rect := image.Rect(
		int(math.Round(at.X)), int(math.Round(at.Y)),
		int(math.Round(at.X+size.W)), int(math.Round(at.Y+size.H)),
	).Intersect(r.img.Rect)
	if rect.Empty() {
		return
	}
	draw.Draw(r.img, rect, image.NewUniform(col), image.Point{}, draw.Over)
}

// fillPath rasterizes a path whose extent is minP..maxP into a coverage mask
// and composites col through it. trace receives coordinates relative to the
// mask origin.
func (r *Raster) fillPath(minP, maxP geom.Point, col color.Color, trace func(z *vector.Rasterizer, origin geom.Point)) {
	if !minP.Finite() || !maxP.Finite() {
		return
	}
	box := image.Rect(
		int(math.Floor(minP.X))-1, int(math.Floor(minP.Y))-1,
		int(math.Ceil(maxP.X))+1, int(math.Ceil(maxP.Y))+1,
	)
	visible := box.Intersect(r.img.Rect)
	if visible.Empty() {
		return
	}
	w, h := box.Dx(), box.Dy()
	mask := r.maskFor(w, h)
	r.z.Reset(w, h)
	r.z.DrawOp = draw.Over
	trace(r.z, geom.FromImage(box.Min))
	r.z.Draw(mask, mask.Rect, image.Opaque, image.Point{})
	draw.DrawMask(r.img, visible, image.NewUniform(col), image.Point{}, mask, visible.Min.Sub(box.Min), draw.Over)
}

// maskFor returns a cleared w×h coverage mask, reusing the previous buffer
// when it is large enough.
func (r *Raster) maskFor(w, h int) *image.Alpha {
	n := w * h
	if r.mask == nil || cap(r.mask.Pix) < n {
		r.mask = image.NewAlpha(image.Rect(0, 0, w, h))
		return r.mask
	}
	pix := r.mask.Pix[:n]
	clear(pix)
	r.mask.Pix = pix
	r.mask.Stride = w
	r.mask.Rect = image.Rect(0, 0, w, h)
	return r.mask
}
