package ui

import (
	"errors"
	"image"
	"image/color"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/leoyouyang/snack-time/internal/background"
	"github.com/leoyouyang/snack-time/internal/board"
	"github.com/leoyouyang/snack-time/internal/brush"
	"github.com/leoyouyang/snack-time/internal/geom"
	"github.com/leoyouyang/snack-time/internal/notify"
	"github.com/leoyouyang/snack-time/internal/platform"
	"github.com/leoyouyang/snack-time/internal/stroke"
	"github.com/leoyouyang/snack-time/internal/theme"
)

func mouseAt(x, y float32, dir mouse.Direction) mouse.Event {
	btn := mouse.ButtonLeft
	if dir == mouse.DirNone {
		btn = mouse.ButtonNone
	}
	return mouse.Event{X: x, Y: y, Button: btn, Direction: dir}
}

func TestTranslatorDragAndLeave(t *testing.T) {
	var tr Translator
	tr.SetCanvas(image.Rect(0, 32, 100, 132))

	_, ok := tr.Translate(mouseAt(10, 40, mouse.DirNone))
	assert.False(t, ok, "hover without press")

	ev, ok := tr.Translate(mouseAt(10, 40, mouse.DirPress))
	require.True(t, ok)
	assert.Equal(t, stroke.Event{Kind: stroke.Down, At: geom.Pt(10, 8)}, ev)

	ev, ok = tr.Translate(mouseAt(50, 60, mouse.DirNone))
	require.True(t, ok)
	assert.Equal(t, stroke.Move, ev.Kind)

	ev, ok = tr.Translate(mouseAt(150, 60, mouse.DirNone))
	require.True(t, ok)
	assert.Equal(t, stroke.Leave, ev.Kind)

	_, ok = tr.Translate(mouseAt(60, 60, mouse.DirNone))
	assert.False(t, ok, "re-entering does not resume the stroke")

	ev, ok = tr.Translate(mouseAt(60, 60, mouse.DirRelease))
	require.True(t, ok)
	assert.Equal(t, stroke.Up, ev.Kind)
	assert.False(t, tr.Pressed())
}

func TestTranslatorIgnoresOtherButtonsAndOutsidePress(t *testing.T) {
	var tr Translator
	tr.SetCanvas(image.Rect(0, 32, 100, 132))
	_, ok := tr.Translate(mouse.Event{X: 10, Y: 40, Button: mouse.ButtonRight, Direction: mouse.DirPress})
	assert.False(t, ok)
	_, ok = tr.Translate(mouseAt(10, 10, mouse.DirPress))
	assert.False(t, ok)
	_, ok = tr.Translate(mouseAt(10, 10, mouse.DirRelease))
	assert.False(t, ok)
}

func TestKeymap(t *testing.T) {
	km := DefaultKeymap(brush.Names())
	cases := []struct {
		ev   key.Event
		want string
	}{
		{key.Event{Rune: '1'}, ActionBrush + "pringles"},
		{key.Event{Rune: '3'}, ActionBrush + "doritos"},
		{key.Event{Rune: 'u'}, ActionUndo},
		{key.Event{Rune: 'U', Modifiers: key.ModShift}, ActionUndo},
		{key.Event{Rune: 'z', Modifiers: key.ModControl}, ActionUndo},
		{key.Event{Rune: 26, Modifiers: key.ModControl}, ActionUndo},
		{key.Event{Rune: 'c'}, ActionClear},
		{key.Event{Rune: 'c', Modifiers: key.ModControl}, ActionCopy},
		{key.Event{Rune: 'C', Modifiers: key.ModControl | key.ModShift}, ActionCopyURI},
		{key.Event{Rune: 's', Modifiers: key.ModControl | key.ModAlt}, ActionSave},
		{key.Event{Rune: -1, Code: key.CodeLeftArrow}, ActionPrev},
		{key.Event{Rune: -1, Code: key.CodeRightArrow}, ActionNext},
		{key.Event{Rune: 'q'}, ActionQuit},
	}
	for _, c := range cases {
		got, ok := km.Lookup(c.ev)
		assert.True(t, ok, "%+v", c.ev)
		assert.Equal(t, c.want, got, "%+v", c.ev)
	}
	_, ok := km.Lookup(key.Event{Rune: 'u', Direction: key.DirRelease})
	assert.False(t, ok)
	_, ok = km.Lookup(key.Event{Rune: 'x'})
	assert.False(t, ok)
	_, ok = km.Lookup(key.Event{Rune: 's'})
	assert.False(t, ok, "save needs ctrl")
}

type fakeClip struct {
	images int
	text   string
	err    error
}

func (f *fakeClip) WriteImage(image.Image) error { f.images++; return f.err }
func (f *fakeClip) WriteText(s string) error      { f.text = s; return f.err }

func testController(t *testing.T, output string) (*Controller, *fakeClip, *[]string) {
	t.Helper()
	imgs := make([]image.Image, 3)
	for i := range imgs {
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		img.Set(0, 0, color.RGBA{R: uint8(80 * i), A: 255})
		imgs[i] = img
	}
	set, err := background.New(imgs)
	require.NoError(t, err)
	b, err := board.New(board.WithSize(80, 60), board.WithBackgrounds(set), board.WithRand(rand.New(rand.NewPCG(5, 6))))
	require.NoError(t, err)

	var notes []string
	n := notify.New(notify.DefaultPreferences(), notify.WithSender(func(title, body string, _ platform.Options) error {
		notes = append(notes, body)
		return nil
	}))
	n.Enable(notify.EventSave, true)
	n.Enable(notify.EventCopy, true)

	ctl := NewController(b, output, n, nil)
	clip := &fakeClip{}
	ctl.Clip = clip
	ctl.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }
	return ctl, clip, &notes
}

func TestControllerActions(t *testing.T) {
	out := filepath.Join(t.TempDir(), "snack.png")
	ctl, clip, notes := testController(t, out)

	ctl.Pointer(stroke.Event{Kind: stroke.Down, At: geom.Pt(20, 20)})
	ctl.Pointer(stroke.Event{Kind: stroke.Up, At: geom.Pt(20, 20)})
	assert.Equal(t, 2, ctl.Board.HistoryLen())

	require.NoError(t, ctl.Do(ActionUndo))
	assert.Equal(t, 1, ctl.Board.HistoryLen())

	require.NoError(t, ctl.Do(ActionBrush+"cheetos"))
	assert.Equal(t, "cheetos", ctl.Board.Brush())
	require.NoError(t, ctl.Do(ActionBrush+"kale"))
	assert.True(t, ctl.Message().Error)

	require.NoError(t, ctl.Do(ActionPrev))
	assert.Equal(t, 2, ctl.Board.Background())
	assert.Equal(t, "background 3/3", ctl.Message().Text)
	require.NoError(t, ctl.Do(ActionNext))
	assert.Equal(t, 0, ctl.Board.Background())

	require.NoError(t, ctl.Do(ActionSave))
	assert.FileExists(t, out)
	assert.Equal(t, "saved "+out, ctl.Message().Text)

	require.NoError(t, ctl.Do(ActionCopy))
	assert.Equal(t, 1, clip.images)
	require.NoError(t, ctl.Do(ActionCopyURI))
	assert.True(t, strings.HasPrefix(clip.text, "data:image/png;base64,"))

	assert.Equal(t, []string{"Saved " + out, "Copied image to clipboard", "Copied data URI to clipboard"}, *notes)
	assert.ErrorIs(t, ctl.Do(ActionQuit), ErrQuit)
}

func TestControllerCopyFailureIsNotFatal(t *testing.T) {
	ctl, clip, notes := testController(t, "")
	clip.err = errors.New("no display")
	require.NoError(t, ctl.Do(ActionCopy))
	msg := ctl.Message()
	assert.True(t, msg.Error)
	assert.Contains(t, msg.Text, "no display")
	assert.Empty(t, *notes)
	assert.True(t, msg.Visible(ctl.now()))
	assert.False(t, msg.Visible(ctl.now().Add(time.Minute)))
	ctl.DismissMessage()
	assert.False(t, ctl.Message().Visible(ctl.now()))
}

func TestDrawFrame(t *testing.T) {
	ctl, _, _ := testController(t, "")
	th := theme.Default()
	tb := NewToolbar(th, brush.Names())
	dst := image.NewRGBA(image.Rect(0, 0, 200, 120))
	canvas := ctl.Board.Image()
	drawFrame(dst, frameState{
		canvas:  canvas,
		theme:   th,
		toolbar: tb,
		brush:   ctl.Board.Brush(),
		bgs:     3,
		history: 1,
		message: Message{Text: "hi", Until: time.Now().Add(time.Hour)},
		now:     time.Now(),
	})
	assert.Equal(t, canvas.RGBAAt(5, 5), dst.RGBAAt(5, toolbarHeight+5))
	assert.Equal(t, th.Background, dst.RGBAAt(150, 100), "outside the canvas")

	first := tb.buttons[0].Rect()
	assert.Equal(t, th.ButtonActive, dst.RGBAAt(first.Min.X+2, first.Max.Y-3), "current brush pressed")
	assert.Equal(t, 0, tb.Hit(first.Min.Add(image.Pt(1, 1))))
	assert.Equal(t, -1, tb.Hit(image.Pt(1, 100)))
	assert.Equal(t, ActionBrush+"pringles", tb.Action(0))
}

func TestLayout(t *testing.T) {
	assert.Equal(t, image.Rect(0, toolbarHeight, 640, 480+toolbarHeight), canvasRect(image.Pt(640, 480)))
	assert.Equal(t, image.Pt(640, 480+toolbarHeight), windowSize(image.Pt(640, 480)))
}
