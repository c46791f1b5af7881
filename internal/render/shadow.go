// Package render holds the image effects used when painting the background
// baseline: the drop shadow under a background asset and the paper texture.
package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow cast by a background asset.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// ShadowResult is the composited asset with its shadow.
type ShadowResult struct {
	// Image contains the asset drawn over its blurred shadow.
	Image *image.RGBA
	// Offset is where the asset's top-left corner landed inside Image.
	// Callers subtract it from the destination to keep the asset in place.
	Offset image.Point
}

// DefaultShadowOptions returns a soft shadow sized for 256px assets.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  8,
		Offset:  image.Pt(6, 6),
		Opacity: 0.35,
	}
}

// ApplyShadow composites src over a blurred copy of its alpha channel. The
// result has a zero origin. With zero opacity src is returned as an RGBA copy.
func ApplyShadow(src image.Image, opts ShadowOptions) ShadowResult {
	if src == nil {
		return ShadowResult{}
	}
	srcBounds := src.Bounds()
	if srcBounds.Empty() || opts.Opacity <= 0 {
		return ShadowResult{Image: toRGBA(src)}
	}
	opacity := min(opts.Opacity, 1)
	radius := max(opts.Radius, 0)

	padded := srcBounds.Inset(-radius)
	shadowBounds := padded.Add(opts.Offset)
	union := srcBounds.Union(shadowBounds)

	mask := alphaMask(src, padded)
	blurred := blurGray(mask, radius)

	dst := image.NewRGBA(union.Sub(union.Min))
	shadowCol := image.NewUniform(color.RGBA{A: uint8(opacity*255 + 0.5)})
	draw.DrawMask(dst, blurred.Bounds().Add(shadowBounds.Min.Sub(union.Min)), shadowCol, image.Point{}, blurred, blurred.Bounds().Min, draw.Over)
	draw.Draw(dst, srcBounds.Sub(union.Min), src, srcBounds.Min, draw.Over)

	return ShadowResult{Image: dst, Offset: srcBounds.Min.Sub(union.Min)}
}

// alphaMask copies the alpha of src into a zero-origin mask covering padded.
func alphaMask(src image.Image, padded image.Rectangle) *image.Gray {
	b := src.Bounds()
	mask := image.NewGray(padded.Sub(padded.Min))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := src.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			mask.SetGray(x-padded.Min.X, y-padded.Min.Y, color.Gray{Y: uint8(a >> 8)})
		}
	}
	return mask
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		out := image.NewRGBA(rgba.Rect)
		copy(out.Pix, rgba.Pix)
		return out
	}
	b := src.Bounds()
	out := image.NewRGBA(b.Sub(b.Min))
	draw.Draw(out, out.Rect, src, b.Min, draw.Src)
	return out
}

// blurGray is a separable box blur using running sums per row and column.
func blurGray(src *image.Gray, radius int) *image.Gray {
	bounds := src.Bounds()
	out := image.NewGray(bounds)
	if radius <= 0 {
		copy(out.Pix, src.Pix)
		return out
	}
	w, h := bounds.Dx(), bounds.Dy()
	tmp := image.NewGray(bounds)

	prefix := make([]int, max(w, h)+1)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride:]
		for x := 0; x < w; x++ {
			prefix[x+1] = prefix[x] + int(row[x])
		}
		for x := 0; x < w; x++ {
			x0, x1 := max(x-radius, 0), min(x+radius, w-1)
			tmp.Pix[y*tmp.Stride+x] = uint8((prefix[x1+1] - prefix[x0]) / (x1 - x0 + 1))
		}
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			prefix[y+1] = prefix[y] + int(tmp.Pix[y*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			y0, y1 := max(y-radius, 0), min(y+radius, h-1)
			out.Pix[y*out.Stride+x] = uint8((prefix[y1+1] - prefix[y0]) / (y1 - y0 + 1))
		}
	}
	return out
}
