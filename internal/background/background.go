// Package background implements the cyclic set of background images and
// renders the clean canvas baseline a drawing starts from.
package background

import (
	"errors"
	"image"
	"image/color"
	"strconv"

	"go.uber.org/zap"

	"github.com/leoyouyang/snack-time/assets"
	"github.com/leoyouyang/snack-time/internal/render"
)

// ErrNoBackgrounds is returned when a set would be built from zero images.
var ErrNoBackgrounds = errors.New("background: no images")

// Canvas is what Render paints the baseline onto.
type Canvas interface {
	Bounds() image.Rectangle
	FillFrame(col color.Color)
	DrawImage(src image.Image, dst image.Rectangle)
}

// Set is an index into a fixed, non-empty list of background images. Moving
// past either end wraps around.
type Set struct {
	images []image.Image
	names  []string
	idx    int

	shadow  bool
	shadowO render.ShadowOptions
	shadows []render.ShadowResult

	paperO render.PaperOptions
	paper  *image.RGBA

	log *zap.Logger
}

// Option configures a Set.
type Option func(*Set)

// WithShadow enables a drop shadow behind the asset.
func WithShadow(opts render.ShadowOptions) Option {
	return func(s *Set) {
		s.shadow = true
		s.shadowO = opts
	}
}

// WithPaper overrides the canvas texture.
func WithPaper(opts render.PaperOptions) Option {
	return func(s *Set) { s.paperO = opts }
}

// WithNames labels the images for logs and listings.
func WithNames(names []string) Option {
	return func(s *Set) { s.names = names }
}

// WithLogger sets the logger used for selection changes.
func WithLogger(l *zap.Logger) Option {
	return func(s *Set) { s.log = l }
}

// New builds a set over images. The slice is not copied.
func New(images []image.Image, opts ...Option) (*Set, error) {
	if len(images) == 0 {
		return nil, ErrNoBackgrounds
	}
	s := &Set{
		images: images,
		paperO: render.DefaultPaperOptions(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.names) != len(images) {
		s.names = nil
	}
	if s.shadow {
		s.shadows = make([]render.ShadowResult, len(images))
	}
	return s, nil
}

// Embedded returns a set over the backgrounds shipped with the binary.
func Embedded(opts ...Option) (*Set, error) {
	imgs, err := assets.Backgrounds()
	if err != nil {
		return nil, err
	}
	return New(imgs, append([]Option{WithNames(assets.BackgroundNames())}, opts...)...)
}

// Len reports the number of backgrounds.
func (s *Set) Len() int { return len(s.images) }

// Index reports the current selection.
func (s *Set) Index() int { return s.idx }

// Name returns the label of the current background, or its index.
func (s *Set) Name() string { return s.NameAt(s.idx) }

// NameAt returns the label of background i.
func (s *Set) NameAt(i int) string {
	i = s.wrap(i)
	if s.names != nil {
		return s.names[i]
	}
	return "bg" + strconv.Itoa(i)
}

// At returns image i without changing the selection.
func (s *Set) At(i int) image.Image { return s.images[s.wrap(i)] }

// Current returns the selected image.
func (s *Set) Current() image.Image { return s.images[s.idx] }

// Next advances the selection, wrapping from the last to the first.
func (s *Set) Next() int { return s.Select(s.idx + 1) }

// Previous steps back, wrapping from the first to the last.
func (s *Set) Previous() int { return s.Select(s.idx - 1) }

// Select sets the selection to i modulo Len and returns the new index.
func (s *Set) Select(i int) int {
	s.idx = s.wrap(i)
	s.log.Debug("background selected", zap.Int("index", s.idx), zap.String("name", s.Name()))
	return s.idx
}

func (s *Set) wrap(i int) int {
	n := len(s.images)
	return ((i % n) + n) % n
}

// Square returns the centred square the asset occupies inside frame. Its side
// is the frame's short side.
func Square(frame image.Rectangle) image.Rectangle {
	w, h := frame.Dx(), frame.Dy()
	side := min(w, h)
	origin := frame.Min
	if w > h {
		origin.X += (w - h) / 2
	} else {
		origin.Y += (h - w) / 2
	}
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(side, side))}
}

// Render paints the baseline for the current background: white, then the
// paper texture over the full frame, then the asset centred on the short side.
func (s *Set) Render(dst Canvas) {
	frame := dst.Bounds()
	dst.FillFrame(color.White)
	dst.DrawImage(s.paperFor(frame.Dx(), frame.Dy()), frame)

	sq := Square(frame)
	if !s.shadow {
		dst.DrawImage(s.Current(), sq)
		return
	}
	res := s.shadowFor(s.idx)
	ab := s.Current().Bounds()
	if ab.Dx() == 0 {
		return
	}
	scale := float64(sq.Dx()) / float64(ab.Dx())
	origin := sq.Min.Sub(scalePt(res.Offset, scale))
	size := scalePt(res.Image.Bounds().Size(), scale)
	dst.DrawImage(res.Image, image.Rectangle{Min: origin, Max: origin.Add(size)})
}

func (s *Set) paperFor(w, h int) *image.RGBA {
	if s.paper == nil || s.paper.Rect.Dx() != w || s.paper.Rect.Dy() != h {
		s.paper = render.PaperTexture(w, h, s.paperO)
	}
	return s.paper
}

func (s *Set) shadowFor(i int) render.ShadowResult {
	if s.shadows[i].Image == nil {
		s.shadows[i] = render.ApplyShadow(s.images[i], s.shadowO)
	}
	return s.shadows[i]
}

func scalePt(p image.Point, k float64) image.Point {
	return image.Pt(int(float64(p.X)*k+0.5), int(float64(p.Y)*k+0.5))
}
