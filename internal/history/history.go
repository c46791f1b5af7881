// Package history keeps a bounded sequence of full-frame snapshots for
// multi-level undo.
//
// Storage is a fixed ring of Capacity slots, so pushing and evicting are O(1)
// and the history never holds more than Capacity frames. Snapshots leaving
// the history are handed back to the surface when it implements Recycler.
package history

import (
	"errors"

	"go.uber.org/zap"
)

// Capacity is the maximum number of snapshots retained.
const Capacity = 30

// ErrEmpty reports an undo against a history with no baseline. It means a
// reset did not push its baseline and is a programming error.
var ErrEmpty = errors.New("history: no baseline snapshot")

// Surface captures and restores complete frames.
type Surface[S any] interface {
	CaptureSnapshot() S
	RestoreSnapshot(S)
}

// Recycler is implemented by surfaces that reuse the storage of snapshots
// the history has dropped. A recycled snapshot is never referenced again.
type Recycler[S any] interface {
	Recycle(S)
}

// History is the ordered, oldest-first snapshot sequence.
type History[S any] struct {
	surface  Surface[S]
	recycler Recycler[S]
	baseline func()
	log      *zap.Logger

	ring  []S
	head  int // index of the oldest snapshot
	count int
}

// Option configures a History.
type Option[S any] func(*History[S])

// WithBaseline sets the function that repaints the clean baseline when undo
// reaches the floor snapshot.
func WithBaseline[S any](fn func()) Option[S] {
	return func(h *History[S]) { h.baseline = fn }
}

// WithCapacity overrides Capacity. Values below 1 are ignored.
func WithCapacity[S any](n int) Option[S] {
	return func(h *History[S]) {
		if n >= 1 {
			h.ring = make([]S, n)
		}
	}
}

// WithLogger sets the logger.
func WithLogger[S any](l *zap.Logger) Option[S] {
	return func(h *History[S]) { h.log = l }
}

// New creates an empty history over surface. Call Reset before the first
// Undo so the floor snapshot exists.
func New[S any](surface Surface[S], opts ...Option[S]) *History[S] {
	h := &History[S]{surface: surface, log: zap.NewNop()}
	if r, ok := surface.(Recycler[S]); ok {
		h.recycler = r
	}
	for _, o := range opts {
		o(h)
	}
	if h.ring == nil {
		h.ring = make([]S, Capacity)
	}
	return h
}

// Len returns the number of retained snapshots.
func (h *History[S]) Len() int { return h.count }

// Capacity returns the maximum number of retained snapshots.
func (h *History[S]) Capacity() int { return len(h.ring) }

// Latest returns the newest snapshot.
func (h *History[S]) Latest() (S, bool) {
	if h.count == 0 {
		var zero S
		return zero, false
	}
	return h.ring[h.slot(h.count-1)], true
}

// Snapshots returns the retained snapshots oldest first.
func (h *History[S]) Snapshots() []S {
	out := make([]S, h.count)
	for i := range out {
		out[i] = h.ring[h.slot(i)]
	}
	return out
}

// Reset drops every snapshot and pushes one capture of the current surface.
// Undo never crosses a reset.
func (h *History[S]) Reset() {
	for h.count > 0 {
		h.recycle(h.popNewest())
	}
	h.head = 0
	h.push(h.surface.CaptureSnapshot())
	h.log.Debug("history reset")
}

// Commit appends a capture of the current surface, evicting the oldest
// snapshot when the history is full.
func (h *History[S]) Commit() {
	if h.count == len(h.ring) {
		h.recycle(h.popOldest())
	}
	h.push(h.surface.CaptureSnapshot())
	h.log.Debug("history commit", zap.Int("len", h.count))
}

// Undo discards the newest snapshot and restores the one before it. At the
// floor snapshot it repaints the baseline and resets instead.
func (h *History[S]) Undo() error {
	switch {
	case h.count == 0:
		return ErrEmpty
	case h.count == 1:
		if h.baseline != nil {
			h.baseline()
		} else {
			floor, _ := h.Latest()
			h.surface.RestoreSnapshot(floor)
		}
		h.Reset()
		h.log.Debug("undo at floor, rebaselined")
		return nil
	}
	h.recycle(h.popNewest())
	latest, _ := h.Latest()
	h.surface.RestoreSnapshot(latest)
	h.log.Debug("undo", zap.Int("len", h.count))
	return nil
}

func (h *History[S]) slot(i int) int { return (h.head + i) % len(h.ring) }

func (h *History[S]) push(s S) {
	h.ring[h.slot(h.count)] = s
	h.count++
}

func (h *History[S]) popNewest() S {
	i := h.slot(h.count - 1)
	s := h.ring[i]
	var zero S
	h.ring[i] = zero
	h.count--
	return s
}

func (h *History[S]) popOldest() S {
	s := h.ring[h.head]
	var zero S
	h.ring[h.head] = zero
	h.head = (h.head + 1) % len(h.ring)
	h.count--
	return s
}

func (h *History[S]) recycle(s S) {
	if h.recycler != nil {
		h.recycler.Recycle(s)
	}
}
