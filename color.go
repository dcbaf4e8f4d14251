package thicket

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa" into a Color.
// Alpha defaults to 1 when omitted.
func ParseHexColor(s string) (Color, error) {
	alpha := 1.0
	if len(s) == 9 && strings.HasPrefix(s, "#") {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// MustHex is ParseHexColor for package-level color tables. It panics on
// malformed input.
func MustHex(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when not fully opaque.
func (c Color) Hex() string {
	h := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
	if c.A >= 1 {
		return h
	}
	return fmt.Sprintf("%s%02x", h, uint8(clamp01(c.A)*255+0.5))
}

// RGBA converts to a premultiplied 8-bit color for drawing backends.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
