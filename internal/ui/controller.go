package ui

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/leoyouyang/snack-time/internal/board"
	"github.com/leoyouyang/snack-time/internal/clipboard"
	"github.com/leoyouyang/snack-time/internal/history"
	"github.com/leoyouyang/snack-time/internal/notify"
	"github.com/leoyouyang/snack-time/internal/stroke"
)

// ErrQuit is returned by Do when the user asked to leave.
var ErrQuit = errors.New("quit")

const messageDuration = 2500 * time.Millisecond

// Clipboard publishes images and text.
type Clipboard interface {
	WriteImage(img image.Image) error
	WriteText(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteImage(img image.Image) error { return clipboard.WriteImage(img) }
func (systemClipboard) WriteText(text string) error      { return clipboard.WriteText(text) }

// Message is the transient banner shown over the canvas.
type Message struct {
	Text  string
	Error bool
	Until time.Time
}

// Visible reports whether the banner is still up at t.
func (m Message) Visible(t time.Time) bool { return m.Text != "" && t.Before(m.Until) }

// Controller applies user actions to a board and keeps the banner text.
// It is driven from the window's event goroutine.
type Controller struct {
	Board    *board.Board
	Output   string
	Notifier *notify.Notifier
	Clip     Clipboard
	Log      *zap.Logger

	now     func() time.Time
	message Message
}

// NewController wires a controller to the system clipboard.
func NewController(b *board.Board, output string, n *notify.Notifier, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{Board: b, Output: output, Notifier: n, Clip: systemClipboard{}, Log: log, now: time.Now}
}

// Message returns the current banner.
func (c *Controller) Message() Message { return c.message }

// DismissMessage hides the banner.
func (c *Controller) DismissMessage() { c.message = Message{} }

func (c *Controller) say(format string, args ...any) {
	c.message = Message{Text: fmt.Sprintf(format, args...), Until: c.clock().Add(messageDuration)}
}

func (c *Controller) fail(err error, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	c.Log.Warn(text, zap.Error(err))
	c.message = Message{Text: text + ": " + err.Error(), Error: true, Until: c.clock().Add(messageDuration)}
}

func (c *Controller) clock() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

// Pointer forwards a stroke event to the board.
func (c *Controller) Pointer(ev stroke.Event) { c.Board.HandleEvent(ev) }

// Do runs a named action. It returns ErrQuit for quit and a wrapped
// history.ErrEmpty if undo finds no baseline, which the caller treats as
// fatal. Save and copy failures only set the banner.
func (c *Controller) Do(action string) error {
	if name, ok := strings.CutPrefix(action, ActionBrush); ok {
		if err := c.Board.SelectBrush(name); err != nil {
			c.fail(err, "brush")
			return nil
		}
		c.say("brush: %s", c.Board.Brush())
		return nil
	}
	switch action {
	case ActionUndo:
		if err := c.Board.Undo(); err != nil {
			if errors.Is(err, history.ErrEmpty) {
				return err
			}
			c.fail(err, "undo")
		}
	case ActionClear:
		c.Board.Clear()
		c.say("cleared")
	case ActionNext, ActionPrev:
		var idx int
		if action == ActionNext {
			idx = c.Board.NextBackground()
		} else {
			idx = c.Board.PreviousBackground()
		}
		c.say("background %d/%d", idx+1, c.Board.Backgrounds())
	case ActionSave:
		path, err := c.Board.Export(c.Output)
		if err != nil {
			c.fail(err, "save failed")
			return nil
		}
		c.Notifier.Save(path)
		c.say("saved %s", path)
	case ActionCopy:
		img := c.Board.Image()
		if err := c.Clip.WriteImage(img); err != nil {
			c.fail(err, "copy failed")
			return nil
		}
		c.Notifier.Copy("image", img)
		c.say("copied image")
	case ActionCopyURI:
		uri, err := c.Board.ExportURI()
		if err == nil {
			err = c.Clip.WriteText(uri)
		}
		if err != nil {
			c.fail(err, "copy failed")
			return nil
		}
		c.Notifier.Copy("data URI", nil)
		c.say("copied data URI (%d bytes)", len(uri))
	case ActionQuit:
		return ErrQuit
	default:
		c.Log.Debug("unknown action", zap.String("action", action))
	}
	return nil
}
