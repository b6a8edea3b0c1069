package core

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is the foreground color of a screen cell as a "#rrggbb" hex string.
// The zero value means the terminal's default foreground.
type Color string

// Palette used across the game.
const (
	ColorDefault Color = ""
	ColorRed     Color = "#e74c3c"
	ColorOrange  Color = "#f39c12"
	ColorYellow  Color = "#f1c40f"
	ColorBlue    Color = "#3498db"
	ColorPurple  Color = "#9b59b6"
	ColorGreen   Color = "#2ecc71"
	ColorCyan    Color = "#1abc9c"
	ColorWhite   Color = "#ecf0f1"
	ColorGray    Color = "#7f8c8d"
	ColorGrid    Color = "#34495e"
	ColorDark    Color = "#2c3e50"
)

// Background is the color that translucent cells are blended toward.
const Background Color = "#1e272e"

// HSL builds a Color from hue (degrees) and saturation/lightness percentages,
// matching CSS hsl() notation.
func HSL(h, s, l float64) Color {
	s = ClampF(s, 0, 100)
	l = ClampF(l, 0, 100)
	return Color(colorful.Hsl(h, s/100, l/100).Clamped().Hex())
}

// WithAlpha blends c over the background with the given opacity in [0, 1].
func (c Color) WithAlpha(alpha float64) Color {
	if c == ColorDefault {
		return c
	}
	fg, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	bg, err := colorful.Hex(string(Background))
	if err != nil {
		return c
	}
	return Color(bg.BlendRgb(fg, ClampF(alpha, 0, 1)).Clamped().Hex())
}
