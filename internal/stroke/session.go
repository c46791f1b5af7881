// Package stroke turns a normalized pointer event stream into brush stamp
// anchors and stroke commits.
package stroke

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/leoyouyang/snack-time/internal/geom"
)

// Kind identifies a normalized pointer event.
type Kind int

const (
	Down Kind = iota
	Move
	Up
	Leave
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Leave:
		return "leave"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is a pointer or touch sample independent of the originating device.
type Event struct {
	Kind Kind
	At   geom.Point
}

// State is the session state.
type State int

const (
	Idle State = iota
	Stroking
)

func (s State) String() string {
	if s == Stroking {
		return "stroking"
	}
	return "idle"
}

// Handler receives the output of a Session.
type Handler interface {
	// Stamp is called with the anchors produced by one event. The slice is
	// reused after Stamp returns.
	Stamp(points []geom.Point)
	// Commit is called exactly once per completed stroke.
	Commit()
}

// Session is the idle/stroking state machine for one pointer.
type Session struct {
	handler Handler
	spacing float64
	log     *zap.Logger

	state State
	last  geom.Point
	id    uuid.UUID
	buf   []geom.Point
}

// Option configures a Session.
type Option func(*Session)

// WithSpacing sets the anchor spacing in pixels.
func WithSpacing(spacing float64) Option { return func(s *Session) { s.spacing = spacing } }

// WithLogger sets the logger used for stroke lifecycle messages.
func WithLogger(l *zap.Logger) Option { return func(s *Session) { s.log = l } }

// NewSession creates an idle session delivering to h.
func NewSession(h Handler, opts ...Option) *Session {
	s := &Session{handler: h, spacing: DefaultSpacing, log: zap.NewNop()}
	for _, o := range opts {
		o(s)
	}
	if !(s.spacing > 0) {
		s.spacing = DefaultSpacing
	}
	return s
}

// State reports whether a stroke is open.
func (s *Session) State() State { return s.state }

// Active reports whether a stroke is open.
func (s *Session) Active() bool { return s.state == Stroking }

// Last returns the most recent anchor of the open stroke.
func (s *Session) Last() geom.Point { return s.last }

// Handle advances the state machine by one event.
func (s *Session) Handle(ev Event) {
	switch ev.Kind {
	case Down:
		if s.state == Stroking {
			s.log.Debug("pointer down during stroke, closing previous", zap.Stringer("stroke", s.id))
			s.close()
		}
		s.open(ev.At)
	case Move:
		if s.state != Stroking {
			return
		}
		s.buf = AppendInterpolated(s.buf[:0], s.last, ev.At, s.spacing)
		s.handler.Stamp(s.buf)
		s.last = ev.At
	case Up, Leave:
		if s.state != Stroking {
			return
		}
		s.close()
	}
}

// Close ends an open stroke. Closing an idle session does nothing.
func (s *Session) Close() {
	if s.state == Stroking {
		s.close()
	}
}

func (s *Session) open(p geom.Point) {
	s.state = Stroking
	s.last = p
	s.id = uuid.New()
	s.log.Debug("stroke opened", zap.Stringer("stroke", s.id), zap.Stringer("at", p))
	s.buf = append(s.buf[:0], p)
	s.handler.Stamp(s.buf)
}

func (s *Session) close() {
	s.state = Idle
	s.log.Debug("stroke closed", zap.Stringer("stroke", s.id), zap.Stringer("at", s.last))
	s.id = uuid.Nil
	s.last = geom.Point{}
	s.handler.Commit()
}
