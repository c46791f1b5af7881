// Package ui is the interactive painting window: a toolbar over the canvas,
// mouse drags turned into strokes and keyboard shortcuts for the editing
// actions. Everything runs on the window's event goroutine.
package ui

import (
	"errors"
	"image"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/leoyouyang/snack-time/internal/brush"
	"github.com/leoyouyang/snack-time/internal/theme"
)

// App owns the window for one painting session.
type App struct {
	ctl     *Controller
	theme   *theme.Theme
	keys    Keymap
	title   string
	log     *zap.Logger
	onClose func()
}

// Option configures an App.
type Option func(*App)

// WithTheme sets the toolbar colours.
func WithTheme(t *theme.Theme) Option { return func(a *App) { a.theme = t } }

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(a *App) { a.title = title } }

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option { return func(a *App) { a.log = l } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *App) { a.onClose = fn } }

// New creates an App driving ctl.
func New(ctl *Controller, opts ...Option) *App {
	a := &App{
		ctl:   ctl,
		theme: theme.Default(),
		keys:  DefaultKeymap(brush.Names()),
		title: "Snack Time",
		log:   zap.NewNop(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Run opens the window and blocks until it closes.
func (a *App) Run() error {
	var err error
	driver.Main(func(s screen.Screen) { err = a.Main(s) })
	return err
}

// Main runs the event loop on s.
func (a *App) Main(s screen.Screen) error {
	canvas := a.ctl.Board.Size()
	win := windowSize(canvas)
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: win.X, Height: win.Y, Title: a.title})
	if err != nil {
		return err
	}
	defer w.Release()
	defer func() {
		if a.onClose != nil {
			a.onClose()
		}
	}()

	var buf screen.Buffer
	defer func() {
		if buf != nil {
			buf.Release()
		}
	}()

	toolbar := NewToolbar(a.theme, brush.Names())
	var input Translator
	input.SetCanvas(canvasRect(canvas))
	face := bannerFace(a.log)
	var bannerTimer *time.Timer

	// act runs an action and reports whether the loop should stop.
	act := func(action string) (bool, error) {
		err := a.ctl.Do(action)
		if errors.Is(err, ErrQuit) {
			return true, nil
		}
		if err != nil {
			a.log.Error("action failed", zap.String("action", action), zap.Error(err))
			return true, err
		}
		if msg := a.ctl.Message(); msg.Text != "" {
			if bannerTimer != nil {
				bannerTimer.Stop()
			}
			// repaint once the banner expires
			bannerTimer = time.AfterFunc(time.Until(msg.Until), func() { w.Send(paint.Event{}) })
		}
		w.Send(paint.Event{})
		return false, nil
	}

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				a.ctl.Board.HandleEvent(closeEvent())
				return nil
			}
			if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
				// losing focus mid-drag behaves like leaving the canvas
				if input.Pressed() {
					a.ctl.Board.HandleEvent(closeEvent())
				}
			}
		case size.Event:
			win = e.Size()
			if buf != nil && buf.Size() != win {
				buf.Release()
				buf = nil
			}
			w.Send(paint.Event{})
		case paint.Event:
			if win.X <= 0 || win.Y <= 0 {
				continue
			}
			if buf == nil {
				buf, err = s.NewBuffer(win)
				if err != nil {
					a.log.Error("new buffer", zap.Error(err))
					continue
				}
			}
			drawFrame(buf.RGBA(), frameState{
				canvas:  a.ctl.Board.Image(),
				theme:   a.theme,
				toolbar: toolbar,
				brush:   a.ctl.Board.Brush(),
				bg:      a.ctl.Board.Background(),
				bgs:     a.ctl.Board.Backgrounds(),
				history: a.ctl.Board.HistoryLen(),
				message: a.ctl.Message(),
				now:     time.Now(),
				face:    face,
			})
			w.Upload(image.Point{}, buf, buf.Bounds())
			w.Publish()
		case mouse.Event:
			p := image.Pt(int(e.X), int(e.Y))
			if p.Y < toolbarHeight && !input.Pressed() {
				hit := toolbar.Hit(p)
				if toolbar.SetHover(hit) {
					w.Send(paint.Event{})
				}
				if hit >= 0 && e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
					if stop, err := act(toolbar.Action(hit)); stop {
						return err
					}
				}
				continue
			}
			if toolbar.SetHover(-1) {
				w.Send(paint.Event{})
			}
			if e.Direction == mouse.DirPress && a.ctl.Message().Visible(time.Now()) {
				a.ctl.DismissMessage()
			}
			if ev, ok := input.Translate(e); ok {
				a.ctl.Pointer(ev)
				w.Send(paint.Event{})
			}
		case key.Event:
			action, ok := a.keys.Lookup(e)
			if !ok {
				continue
			}
			if stop, err := act(action); stop {
				return err
			}
		case error:
			a.log.Warn("window event error", zap.Error(e))
		}
	}
}
