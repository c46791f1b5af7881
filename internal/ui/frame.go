package ui

import (
	"fmt"
	"image"
	"image/draw"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/leoyouyang/snack-time/internal/theme"
)

var (
	faceOnce    sync.Once
	messageFace font.Face = basicfont.Face7x13
)

// bannerFace loads the Go Regular face for the banner, falling back to the
// bitmap face if it cannot be parsed.
func bannerFace(log *zap.Logger) font.Face {
	faceOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			log.Warn("parse font", zap.Error(err))
			return
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 22, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			log.Warn("font face", zap.Error(err))
			return
		}
		messageFace = face
	})
	return messageFace
}

// frameState is everything needed to draw one frame.
type frameState struct {
	canvas  *image.RGBA
	theme   *theme.Theme
	toolbar *Toolbar
	brush   string
	bg, bgs int
	history int
	message Message
	now     time.Time
	face    font.Face
}

// drawFrame renders the toolbar, the canvas at 1:1 and the banner into dst.
func drawFrame(dst *image.RGBA, st frameState) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(st.theme.Background), image.Point{}, draw.Src)
	cr := canvasRect(st.canvas.Bounds().Size())
	draw.Draw(dst, cr, st.canvas, st.canvas.Bounds().Min, draw.Src)

	status := fmt.Sprintf("bg %d/%d  undo %d", st.bg+1, st.bgs, st.history-1)
	st.toolbar.Draw(dst, ActionBrush+st.brush, status)

	if st.message.Visible(st.now) {
		drawBanner(dst, cr.Intersect(dst.Bounds()), st)
	}
}

func drawBanner(dst *image.RGBA, area image.Rectangle, st frameState) {
	face := st.face
	if face == nil {
		face = basicfont.Face7x13
	}
	fg := st.theme.BannerText
	if st.message.Error {
		fg = st.theme.BannerError
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: face}
	w := d.MeasureString(st.message.Text).Ceil()
	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	px := area.Min.X + (area.Dx()-w)/2
	py := area.Max.Y - 16 - descent
	box := image.Rect(px-10, py-ascent-6, px+w+10, py+descent+6)
	draw.Draw(dst, box, image.NewUniform(st.theme.BannerBackground), image.Point{}, draw.Over)
	d.Dot = fixed.P(px, py)
	d.DrawString(st.message.Text)
}
