package ui

import (
	"image"

	"golang.org/x/mobile/event/mouse"

	"github.com/leoyouyang/snack-time/internal/geom"
	"github.com/leoyouyang/snack-time/internal/stroke"
)

// Translator turns window mouse events into stroke events in canvas space.
// Dragging off the canvas emits Leave once; the stroke does not resume when
// the pointer comes back until the button is pressed again.
type Translator struct {
	canvas  image.Rectangle
	pressed bool
	left    bool
}

// SetCanvas sets where the canvas sits in window coordinates.
func (t *Translator) SetCanvas(r image.Rectangle) { t.canvas = r }

// Pressed reports whether the left button is held since a press on the canvas.
func (t *Translator) Pressed() bool { return t.pressed }

// Translate maps e to a stroke event. ok is false when e means nothing to the
// stroke session.
func (t *Translator) Translate(e mouse.Event) (ev stroke.Event, ok bool) {
	win := image.Pt(int(e.X), int(e.Y))
	at := geom.Pt(float64(e.X)-float64(t.canvas.Min.X), float64(e.Y)-float64(t.canvas.Min.Y))
	inside := win.In(t.canvas)

	switch e.Direction {
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft || !inside {
			return stroke.Event{}, false
		}
		t.pressed, t.left = true, false
		return stroke.Event{Kind: stroke.Down, At: at}, true
	case mouse.DirRelease:
		if e.Button != mouse.ButtonLeft || !t.pressed {
			return stroke.Event{}, false
		}
		t.pressed, t.left = false, false
		return stroke.Event{Kind: stroke.Up, At: at}, true
	case mouse.DirNone:
		if !t.pressed || t.left {
			return stroke.Event{}, false
		}
		if !inside {
			t.left = true
			return stroke.Event{Kind: stroke.Leave, At: at}, true
		}
		return stroke.Event{Kind: stroke.Move, At: at}, true
	}
	return stroke.Event{}, false
}

// closeEvent ends any open stroke; the session ignores it when idle.
func closeEvent() stroke.Event { return stroke.Event{Kind: stroke.Leave} }
