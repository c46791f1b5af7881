package stroke

import (
	"math"

	"github.com/leoyouyang/snack-time/internal/geom"
)

// DefaultSpacing is the stamp interval in pixels.
const DefaultSpacing = 10.0

// MaxSteps bounds the number of segments one motion delta can produce.
const MaxSteps = 1 << 16

// Interpolate returns anchor points on the segment from -> to, starting at
// from and ending at to, with consecutive points at most spacing apart. A
// zero-length segment yields the single point from.
func Interpolate(from, to geom.Point, spacing float64) []geom.Point {
	return AppendInterpolated(nil, from, to, spacing)
}

// AppendInterpolated is Interpolate appending into dst.
func AppendInterpolated(dst []geom.Point, from, to geom.Point, spacing float64) []geom.Point {
	if from == to {
		return append(dst, from)
	}
	if !from.Finite() || !to.Finite() || !(spacing > 0) || math.IsInf(spacing, 1) {
		return append(dst, from, to)
	}
	d := from.Dist(to)
	steps := math.Ceil(d / spacing)
	if steps < 1 {
		steps = 1
	}
	if steps > MaxSteps {
		steps = MaxSteps
	}
	n := int(steps)
	if free := cap(dst) - len(dst); free < n+1 {
		grown := make([]geom.Point, len(dst), len(dst)+n+1)
		copy(grown, dst)
		dst = grown
	}
	for i := 0; i < n; i++ {
		dst = append(dst, from.Lerp(to, float64(i)/steps))
	}
	return append(dst, to)
}
