package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSurface models the frame as a single integer. Each capture records the
// current frame value.
type fakeSurface struct {
	frame    int
	captures int
	recycled []int
}

func (f *fakeSurface) CaptureSnapshot() int { f.captures++; return f.frame }
func (f *fakeSurface) RestoreSnapshot(s int) { f.frame = s }
func (f *fakeSurface) Recycle(s int)         { f.recycled = append(f.recycled, s) }

func TestResetPushesBaseline(t *testing.T) {
	s := &fakeSurface{frame: 7}
	h := New[int](s)
	assert.Equal(t, 0, h.Len())
	h.Reset()
	assert.Equal(t, 1, h.Len())
	latest, ok := h.Latest()
	require.True(t, ok)
	assert.Equal(t, 7, latest)

	h.Commit()
	h.Commit()
	h.Reset()
	assert.Equal(t, 1, h.Len())
	assert.Len(t, s.recycled, 3)
}

func TestCommitCapacity(t *testing.T) {
	s := &fakeSurface{}
	h := New[int](s)
	h.Reset()
	for i := 1; i <= 40; i++ {
		s.frame = i
		h.Commit()
		assert.LessOrEqual(t, h.Len(), Capacity)
	}
	require.Equal(t, Capacity, h.Len())
	snaps := h.Snapshots()
	for i, v := range snaps {
		assert.Equal(t, 11+i, v)
	}
	// baseline plus commits 1..10 were evicted
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, s.recycled)
}

func TestUndoRestoresPrevious(t *testing.T) {
	s := &fakeSurface{frame: 100}
	h := New[int](s)
	h.Reset()
	for i := 0; i < 3; i++ {
		s.frame = i
		h.Commit()
	}
	require.Equal(t, 4, h.Len())
	require.NoError(t, h.Undo())
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 1, s.frame)
	assert.Equal(t, []int{100, 0, 1}, h.Snapshots())
	assert.Equal(t, []int{2}, s.recycled)
}

func TestUndoAtFloorRebaselines(t *testing.T) {
	s := &fakeSurface{frame: 5}
	baselines := 0
	h := New[int](s, WithBaseline[int](func() {
		baselines++
		s.frame = -1
	}))
	h.Reset()
	s.frame = 9
	h.Commit()
	require.NoError(t, h.Undo())
	assert.Equal(t, 5, s.frame)

	for i := 0; i < 3; i++ {
		require.NoError(t, h.Undo())
		assert.Equal(t, 1, h.Len())
		assert.Equal(t, -1, s.frame)
		latest, _ := h.Latest()
		assert.Equal(t, -1, latest)
	}
	assert.Equal(t, 3, baselines)
}

func TestUndoAtFloorWithoutBaselineRestoresFloor(t *testing.T) {
	s := &fakeSurface{frame: 3}
	h := New[int](s)
	h.Reset()
	s.frame = 42 // uncommitted paint
	for i := 0; i < 3; i++ {
		require.NoError(t, h.Undo())
		assert.Equal(t, 3, s.frame)
		assert.Equal(t, 1, h.Len())
	}
}

func TestUndoEmptyIsError(t *testing.T) {
	h := New[int](&fakeSurface{})
	assert.ErrorIs(t, h.Undo(), ErrEmpty)
}

func TestFloorInvariantAcrossOperations(t *testing.T) {
	s := &fakeSurface{}
	h := New[int](s, WithCapacity[int](4))
	h.Reset()
	ops := []func(){h.Commit, func() { require.NoError(t, h.Undo()) }, h.Reset}
	for i := 0; i < 60; i++ {
		s.frame = i
		ops[(i*7)%len(ops)]()
		assert.GreaterOrEqual(t, h.Len(), 1)
		assert.LessOrEqual(t, h.Len(), 4)
		latest, _ := h.Latest()
		assert.Equal(t, s.frame, latest)
	}
}

func TestWithCapacityIgnoresInvalid(t *testing.T) {
	h := New[int](&fakeSurface{}, WithCapacity[int](0))
	assert.Equal(t, Capacity, h.Capacity())
}
