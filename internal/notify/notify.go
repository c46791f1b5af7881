// Package notify sends desktop notifications when the canvas is saved or
// copied.
package notify

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/leoyouyang/snack-time/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventSave fires when the canvas is written to disk.
	EventSave Event = "save"
	// EventCopy fires when the canvas is copied to the clipboard.
	EventCopy Event = "copy"
)

// Preferences holds the notification title and per-event body templates.
// Each template takes the event detail as its single %s.
type Preferences struct {
	Title     string
	Templates map[Event]string
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "Snack Time",
		Templates: map[Event]string{
			EventSave: "Saved %s",
			EventCopy: "Copied %s to clipboard",
		},
	}
}

// LoadPreferences applies SNACKTIME_NOTIFY_* overrides to the defaults.
func LoadPreferences(getenv func(string) string) Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(getenv("SNACKTIME_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	for key, event := range map[string]Event{
		"SNACKTIME_NOTIFY_SAVE_TEXT": EventSave,
		"SNACKTIME_NOTIFY_COPY_TEXT": EventCopy,
	} {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			prefs.Templates[event] = v
		}
	}
	return prefs
}

// SendFunc delivers one notification.
type SendFunc func(title, body string, opts platform.Options) error

// Notifier sends notifications for the events enabled on it. A nil Notifier
// sends nothing.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    SendFunc
	log     *zap.Logger
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithSender replaces platform.Notify.
func WithSender(fn SendFunc) Option { return func(n *Notifier) { n.send = fn } }

// WithLogger sets the logger for delivery failures.
func WithLogger(l *zap.Logger) Option { return func(n *Notifier) { n.log = l } }

// New creates a Notifier with every event disabled.
func New(prefs Preferences, opts ...Option) *Notifier {
	n := &Notifier{
		prefs:   Preferences{Title: prefs.Title, Templates: make(map[Event]string, len(prefs.Templates))},
		enabled: make(map[Event]bool),
		send:    platform.Notify,
		log:     zap.NewNop(),
	}
	for k, v := range prefs.Templates {
		n.prefs.Templates[k] = v
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	n.enabled[event] = enabled
}

// Save announces a written file, showing it as the icon when it exists.
func (n *Notifier) Save(path string) {
	if !n.enabledFor(EventSave) {
		return
	}
	detail := strings.TrimSpace(path)
	opts := platform.Options{AppName: n.prefs.Title}
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
		if _, err := os.Stat(abs); err == nil && strings.EqualFold(filepath.Ext(abs), ".png") {
			opts.IconPath = abs
		}
	}
	n.dispatch(EventSave, detail, opts)
}

// Copy announces a clipboard copy. A non-nil img is attached as a preview.
func (n *Notifier) Copy(detail string, img image.Image) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "image"
	}
	opts := platform.Options{AppName: n.prefs.Title}
	if img != nil {
		path, cleanup, err := createPreview(img)
		if err != nil {
			n.log.Warn("notification preview", zap.Error(err))
		} else {
			defer cleanup()
			opts.IconPath = path
		}
	}
	n.dispatch(EventCopy, detail, opts)
}

func (n *Notifier) enabledFor(event Event) bool {
	return n != nil && n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	template := strings.TrimSpace(n.prefs.Templates[event])
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	if err := n.send(n.prefs.Title, body, opts); err != nil {
		n.log.Warn("notification failed", zap.String("event", string(event)), zap.Error(err))
	}
}

func createPreview(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "snacktime-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	return path, func() { _ = os.Remove(path) }, nil
}
