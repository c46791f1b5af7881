package render

import (
	"image"
	"image/color"
	"math/rand/v2"
)

// PaperOptions controls the generated canvas texture.
type PaperOptions struct {
	// Tint is the base colour of the paper.
	Tint color.RGBA
	// Grain is the peak darkening of a fibre, 0..255.
	Grain uint8
	// Softness is the blur radius applied to the grain.
	Softness int
	Seed     uint64
}

// DefaultPaperOptions returns a warm off-white with light grain.
func DefaultPaperOptions() PaperOptions {
	return PaperOptions{
		Tint:     color.RGBA{R: 250, G: 246, B: 236, A: 255},
		Grain:    28,
		Softness: 1,
		Seed:     0x5eed,
	}
}

// PaperTexture returns an opaque w×h canvas texture. The same options always
// produce the same pixels.
func PaperTexture(w, h int, opts PaperOptions) *image.RGBA {
	w, h = max(w, 1), max(h, 1)
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	noise := image.NewGray(image.Rect(0, 0, w, h))
	for i := range noise.Pix {
		noise.Pix[i] = uint8(rng.IntN(int(opts.Grain) + 1))
	}
	grain := blurGray(noise, opts.Softness)

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := grain.Pix[y*grain.Stride+x]
			i := out.PixOffset(x, y)
			out.Pix[i+0] = sub(opts.Tint.R, d)
			out.Pix[i+1] = sub(opts.Tint.G, d)
			out.Pix[i+2] = sub(opts.Tint.B, d)
			out.Pix[i+3] = 255
		}
	}
	return out
}

func sub(v, d uint8) uint8 {
	if d > v {
		return 0
	}
	return v - d
}
