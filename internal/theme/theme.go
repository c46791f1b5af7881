// Package theme defines the colours of the toolbar and window chrome.
package theme

import (
	"image/color"
	"reflect"
)

// Theme defines the color palette for the painting window.
type Theme struct {
	Name string

	Background color.RGBA // window area around the canvas
	Foreground color.RGBA

	ToolbarBackground color.RGBA

	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonActive          color.RGBA // selected brush
	ButtonText            color.RGBA
	ButtonTextActive      color.RGBA
	ButtonBorder          color.RGBA

	BannerBackground color.RGBA
	BannerText       color.RGBA
	BannerError      color.RGBA
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{200, 200, 200, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{232, 228, 220, 255},
		ButtonBackground:      color.RGBA{214, 208, 196, 255},
		ButtonBackgroundHover: color.RGBA{196, 188, 172, 255},
		ButtonActive:          color.RGBA{255, 204, 51, 255},
		ButtonText:            color.RGBA{40, 32, 24, 255},
		ButtonTextActive:      color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{90, 80, 70, 255},
		BannerBackground:      color.RGBA{0, 0, 0, 180},
		BannerText:            color.RGBA{255, 255, 255, 255},
		BannerError:           color.RGBA{255, 120, 100, 255},
	}
}

// Field is one named colour of a theme.
type Field struct {
	Key   string
	Value color.RGBA
}

// Fields lists the theme colours in declaration order.
func (t *Theme) Fields() []Field {
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	var out []Field
	for i := 0; i < typ.NumField(); i++ {
		if c, ok := val.Field(i).Interface().(color.RGBA); ok {
			out = append(out, Field{Key: typ.Field(i).Name, Value: c})
		}
	}
	return out
}
