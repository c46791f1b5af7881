package ui

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/leoyouyang/snack-time/internal/theme"
)

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StateActive
)

// Button is a clickable toolbar element.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Action() string
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		img := image.NewRGBA(cb.Button.Rect())
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

// LabelButton is a bordered text button.
type LabelButton struct {
	label  string
	action string
	theme  *theme.Theme
	rect   image.Rectangle
}

func (b *LabelButton) Draw(dst *image.RGBA, state ButtonState) {
	bg, fg := b.theme.ButtonBackground, b.theme.ButtonText
	switch state {
	case StateHover:
		bg = b.theme.ButtonBackgroundHover
	case StateActive:
		bg, fg = b.theme.ButtonActive, b.theme.ButtonTextActive
	}
	draw.Draw(dst, b.rect, image.NewUniform(bg), image.Point{}, draw.Src)
	strokeRect(dst, b.rect, b.theme.ButtonBorder)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: basicfont.Face7x13,
		Dot: fixed.P(b.rect.Min.X+buttonPad, b.rect.Min.Y+16)}
	d.DrawString(b.label)
}

func (b *LabelButton) Rect() image.Rectangle     { return b.rect }
func (b *LabelButton) SetRect(r image.Rectangle) { b.rect = r }
func (b *LabelButton) Action() string            { return b.action }

func labelWidth(s string) int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	return d.MeasureString(s).Ceil() + 2*buttonPad
}

// Toolbar is the strip of buttons above the canvas.
type Toolbar struct {
	theme   *theme.Theme
	buttons []*CacheButton
	hover   int
}

// NewToolbar lays out one button per brush followed by the editing actions.
func NewToolbar(th *theme.Theme, brushes []string) *Toolbar {
	tb := &Toolbar{theme: th, hover: -1}
	add := func(label, action string) {
		tb.buttons = append(tb.buttons, &CacheButton{Button: &LabelButton{label: label, action: action, theme: th}})
	}
	for i, name := range brushes {
		add(string(rune('1'+i))+":"+name, ActionBrush+name)
	}
	add("<", ActionPrev)
	add(">", ActionNext)
	add("U:undo", ActionUndo)
	add("C:clear", ActionClear)
	add("^S:save", ActionSave)
	add("^C:copy", ActionCopy)

	x := 4
	y := (toolbarHeight - buttonHeight) / 2
	for _, b := range tb.buttons {
		w := labelWidth(b.Button.(*LabelButton).label)
		b.SetRect(image.Rect(x, y, x+w, y+buttonHeight))
		x += w + 4
	}
	return tb
}

// Hit returns the index of the button under p, or -1.
func (tb *Toolbar) Hit(p image.Point) int {
	for i, b := range tb.buttons {
		if p.In(b.Rect()) {
			return i
		}
	}
	return -1
}

// SetHover records the hovered button and reports whether it changed.
func (tb *Toolbar) SetHover(i int) bool {
	changed := tb.hover != i
	tb.hover = i
	return changed
}

// Action returns the action of button i.
func (tb *Toolbar) Action(i int) string { return tb.buttons[i].Action() }

// Draw paints the toolbar across the top of dst. active is the current brush
// action, drawn pressed. status is right-aligned text.
func (tb *Toolbar) Draw(dst *image.RGBA, active, status string) {
	bar := image.Rect(0, 0, dst.Bounds().Dx(), toolbarHeight)
	draw.Draw(dst, bar, image.NewUniform(tb.theme.ToolbarBackground), image.Point{}, draw.Src)
	for i, b := range tb.buttons {
		state := StateDefault
		if b.Action() == active {
			state = StateActive
		} else if i == tb.hover {
			state = StateHover
		}
		b.Draw(dst, state)
	}
	if status == "" {
		return
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(tb.theme.Foreground), Face: basicfont.Face7x13}
	w := d.MeasureString(status).Ceil()
	d.Dot = fixed.P(bar.Max.X-w-8, toolbarHeight/2+5)
	d.DrawString(status)
}

func strokeRect(dst *image.RGBA, r image.Rectangle, col color.Color) {
	u := image.NewUniform(col)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}
