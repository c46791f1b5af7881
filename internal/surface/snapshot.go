package surface

import (
	"bytes"
	"image"
	"image/draw"
)

// Snapshot is a copy of every pixel of a Raster. Treat it as immutable.
type Snapshot struct {
	rect   image.Rectangle
	stride int
	pix    []uint8
}

// Bounds returns the rectangle the snapshot was taken from.
func (s *Snapshot) Bounds() image.Rectangle { return s.rect }

// Image returns a fresh RGBA copy of the snapshot.
func (s *Snapshot) Image() *image.RGBA {
	img := &image.RGBA{Rect: s.rect, Stride: s.stride, Pix: make([]uint8, len(s.pix))}
	copy(img.Pix, s.pix)
	return img
}

// CaptureSnapshot copies the current frame, reusing a recycled buffer when
// one is available.
func (r *Raster) CaptureSnapshot() *Snapshot {
	pix := r.takeBuffer(len(r.img.Pix))
	copy(pix, r.img.Pix)
	return &Snapshot{rect: r.img.Rect, stride: r.img.Stride, pix: pix}
}

// RestoreSnapshot replaces the current frame with s.
func (r *Raster) RestoreSnapshot(s *Snapshot) {
	if s == nil {
		return
	}
	if s.rect == r.img.Rect && s.stride == r.img.Stride {
		copy(r.img.Pix, s.pix)
		return
	}
	src := &image.RGBA{Rect: s.rect, Stride: s.stride, Pix: s.pix}
	draw.Draw(r.img, r.img.Rect, image.Transparent, image.Point{}, draw.Src)
	draw.Draw(r.img, s.rect, src, s.rect.Min, draw.Src)
}

// Recycle takes back the pixel storage of a snapshot the caller no longer
// references.
func (r *Raster) Recycle(s *Snapshot) {
	if s == nil || s.pix == nil {
		return
	}
	if len(r.free) < maxFree {
		r.free = append(r.free, s.pix)
	}
	s.pix = nil
}

// Matches reports whether the current frame is pixel-identical to s.
func (r *Raster) Matches(s *Snapshot) bool {
	return s != nil && s.rect == r.img.Rect && bytes.Equal(s.pix, r.img.Pix)
}

func (r *Raster) takeBuffer(n int) []uint8 {
	for len(r.free) > 0 {
		b := r.free[len(r.free)-1]
		r.free = r.free[:len(r.free)-1]
		if cap(b) >= n {
			return b[:n]
		}
	}
	return make([]uint8, n)
}
