// Package board ties the painting engine together: one Board owns the
// surface, its undo history, the background set, the current brush and the
// open stroke. All methods must be called from a single goroutine.
package board

import (
	"errors"
	"fmt"
	"image"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/leoyouyang/snack-time/internal/background"
	"github.com/leoyouyang/snack-time/internal/brush"
	"github.com/leoyouyang/snack-time/internal/geom"
	"github.com/leoyouyang/snack-time/internal/history"
	"github.com/leoyouyang/snack-time/internal/stroke"
	"github.com/leoyouyang/snack-time/internal/surface"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 768
	DefaultBrush  = "pringles"
)

// Board is a painting session.
type Board struct {
	log *zap.Logger

	raster  *surface.Raster
	hist    *history.History[*surface.Snapshot]
	bgs     *background.Set
	session *stroke.Session

	jitter  *geom.Jitter
	amount  float64
	recipe  brush.Recipe
	spacing float64
	saveDir string
	strokes int

	// set by options, consumed by New
	width, height int
	brushName     string
	rng           *rand.Rand
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger shared by the board's components.
func WithLogger(l *zap.Logger) Option { return func(b *Board) { b.log = l } }

// WithSize sets the canvas size in pixels.
func WithSize(w, h int) Option {
	return func(b *Board) { b.width, b.height = w, h }
}

// WithSpacing sets the distance between stamp anchors.
func WithSpacing(spacing float64) Option { return func(b *Board) { b.spacing = spacing } }

// WithJitter sets how far brush stamps scatter around each anchor.
func WithJitter(amount float64) Option { return func(b *Board) { b.amount = amount } }

// WithRand makes stamping deterministic.
func WithRand(rng *rand.Rand) Option { return func(b *Board) { b.rng = rng } }

// WithBrush selects the initial brush by name.
func WithBrush(name string) Option { return func(b *Board) { b.brushName = name } }

// WithBackgrounds replaces the embedded background set.
func WithBackgrounds(s *background.Set) Option { return func(b *Board) { b.bgs = s } }

// WithSaveDir sets where Export writes when given no file name.
func WithSaveDir(dir string) Option { return func(b *Board) { b.saveDir = dir } }

// New creates a board showing the clean baseline of the first background,
// with that baseline as the only history entry.
func New(opts ...Option) (*Board, error) {
	b := &Board{
		log:       zap.NewNop(),
		amount:    brush.DefaultJitter,
		spacing:   stroke.DefaultSpacing,
		width:     DefaultWidth,
		height:    DefaultHeight,
		brushName: DefaultBrush,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.width <= 0 || b.height <= 0 {
		return nil, fmt.Errorf("board: invalid size %dx%d", b.width, b.height)
	}
	if b.bgs == nil {
		set, err := background.Embedded(background.WithLogger(b.log))
		if err != nil {
			return nil, fmt.Errorf("load backgrounds: %w", err)
		}
		b.bgs = set
	}
	b.jitter = geom.NewJitter(b.rng)
	recipe, err := brush.New(b.brushName, b.jitter)
	if err != nil {
		return nil, err
	}
	b.recipe = recipe

	b.raster = surface.New(b.width, b.height)
	b.hist = history.New[*surface.Snapshot](b.raster,
		history.WithBaseline[*surface.Snapshot](b.paintBaseline),
		history.WithLogger[*surface.Snapshot](b.log.Named("history")),
	)
	b.session = stroke.NewSession(painter{b},
		stroke.WithSpacing(b.spacing),
		stroke.WithLogger(b.log.Named("stroke")),
	)
	b.rebaseline()
	b.log.Info("board ready",
		zap.Int("width", b.width), zap.Int("height", b.height),
		zap.String("brush", b.recipe.Name()), zap.String("background", b.bgs.Name()))
	return b, nil
}

// painter receives stroke callbacks so they stay off the Board's API.
type painter struct{ b *Board }

func (p painter) Stamp(points []geom.Point) {
	for _, pt := range points {
		p.b.recipe.Stamp(p.b.raster, pt, p.b.amount)
	}
}

func (p painter) Commit() {
	p.b.hist.Commit()
	p.b.strokes++
	p.b.log.Debug("stroke committed", zap.Int("history", p.b.hist.Len()), zap.Int("strokes", p.b.strokes))
}

func (b *Board) paintBaseline() { b.bgs.Render(b.raster) }

func (b *Board) rebaseline() {
	b.paintBaseline()
	b.hist.Reset()
}

// HandleEvent feeds one pointer event to the stroke session.
func (b *Board) HandleEvent(ev stroke.Event) { b.session.Handle(ev) }

// Stroking reports whether a stroke is open.
func (b *Board) Stroking() bool { return b.session.Active() }

// Undo reverts the most recent stroke. An open stroke is committed first so
// it is the one reverted. Undo with nothing but the baseline repaints it.
func (b *Board) Undo() error {
	b.session.Close()
	if err := b.hist.Undo(); err != nil {
		if errors.Is(err, history.ErrEmpty) {
			b.log.Error("undo with empty history", zap.Error(err))
		}
		return fmt.Errorf("undo: %w", err)
	}
	b.log.Debug("undo", zap.Int("history", b.hist.Len()))
	return nil
}

// Clear repaints the baseline and forgets every stroke.
func (b *Board) Clear() {
	b.session.Close()
	b.rebaseline()
	b.log.Info("canvas cleared")
}

// NextBackground switches to the next background and clears.
func (b *Board) NextBackground() int {
	b.bgs.Next()
	b.Clear()
	return b.bgs.Index()
}

// PreviousBackground switches to the previous background and clears.
func (b *Board) PreviousBackground() int {
	b.bgs.Previous()
	b.Clear()
	return b.bgs.Index()
}

// SelectBackground switches to background i, modulo the set size, and clears.
func (b *Board) SelectBackground(i int) int {
	b.bgs.Select(i)
	b.Clear()
	return b.bgs.Index()
}

// SelectBrush changes the brush. It applies from the next stamp, including
// within an open stroke.
func (b *Board) SelectBrush(name string) error {
	recipe, err := brush.New(name, b.jitter)
	if err != nil {
		return err
	}
	b.recipe = recipe
	b.log.Info("brush selected", zap.String("brush", recipe.Name()))
	return nil
}

// Brush returns the name of the current brush.
func (b *Board) Brush() string { return b.recipe.Name() }

// Background returns the index of the current background.
func (b *Board) Background() int { return b.bgs.Index() }

// BackgroundName returns the label of the current background.
func (b *Board) BackgroundName() string { return b.bgs.Name() }

// Backgrounds returns the number of available backgrounds.
func (b *Board) Backgrounds() int { return b.bgs.Len() }

// HistoryLen returns the number of retained snapshots.
func (b *Board) HistoryLen() int { return b.hist.Len() }

// Size returns the canvas size.
func (b *Board) Size() image.Point { return b.raster.Bounds().Size() }

// Image returns the live canvas. It changes with every subsequent call that
// paints; copy it to keep a frame.
func (b *Board) Image() *image.RGBA { return b.raster.Image() }
