package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Skin selects how the snake body is colored.
type Skin string

const (
	SkinDefault Skin = "default"
	SkinRainbow Skin = "rainbow"
	SkinMetal   Skin = "metal"
	SkinPixel   Skin = "pixel"
)

// Skins returns every skin in settings order.
func Skins() []Skin {
	return []Skin{SkinDefault, SkinRainbow, SkinMetal, SkinPixel}
}

// ParseSkin converts a stored or CLI value into a Skin.
func ParseSkin(s string) (Skin, error) {
	for _, skin := range Skins() {
		if string(skin) == s {
			return skin, nil
		}
	}
	return "", fmt.Errorf("unknown skin %q (want default, rainbow, metal or pixel)", s)
}

// Next returns the skin after s, wrapping around.
func (s Skin) Next() Skin {
	skins := Skins()
	for i, skin := range skins {
		if skin == s {
			return skins[(i+1)%len(skins)]
		}
	}
	return SkinDefault
}

// BodyColor returns the color of body segment i (i >= 1).
func (s Skin) BodyColor(i int) core.Color {
	n := float64(i)
	switch s {
	case SkinRainbow:
		return core.HSL(float64((i*20)%360), 70, 50)
	case SkinMetal:
		return core.HSL(220, 10, 40+10*float64(i%3))
	case SkinPixel:
		return core.HSL(120, 60, 40+5*float64(i%5))
	default:
		return core.HSL(120, 70-2*n, 40+0.5*n)
	}
}

// Glyph returns the two-column glyph used for a snake segment.
func (s Skin) Glyph() string {
	if s == SkinPixel {
		return "██"
	}
	return "◖◗"
}
