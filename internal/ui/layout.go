package ui

import (
	"image"
)

const (
	toolbarHeight = 32
	buttonHeight  = 24
	buttonPad     = 6
)

// canvasRect is where the board is drawn inside a window of the given size:
// directly under the toolbar at 1:1 scale.
func canvasRect(canvas image.Point) image.Rectangle {
	return image.Rectangle{Min: image.Pt(0, toolbarHeight), Max: image.Pt(canvas.X, toolbarHeight+canvas.Y)}
}

// windowSize is the initial window size for a canvas.
func windowSize(canvas image.Point) image.Point {
	return image.Pt(canvas.X, canvas.Y+toolbarHeight)
}
