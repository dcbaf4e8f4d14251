package thicket

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorTransparent = Color{}
)

// Lerp returns the per-channel linear blend between c and to at t.
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		R: lerp(c.R, to.R, t),
		G: lerp(c.G, to.G, t),
		B: lerp(c.B, to.B, t),
		A: lerp(c.A, to.A, t),
	}
}

// Vec2 is a 2D vector used for positions, offsets, sizes and scroll deltas.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsPoint is Contains for a Vec2.
func (r Rect) ContainsPoint(p Vec2) bool {
	return r.Contains(p.X, p.Y)
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Insets is a four-sided box offset (padding, margin) in whole pixels.
type Insets struct {
	Left, Right, Top, Bottom int
}

// UniformInsets returns Insets with every side set to v.
func UniformInsets(v int) Insets {
	return Insets{Left: v, Right: v, Top: v, Bottom: v}
}

// Lerp interpolates every side independently and rounds to the nearest pixel.
func (in Insets) Lerp(to Insets, t float64) Insets {
	return Insets{
		Left:   lerpInt(in.Left, to.Left, t),
		Right:  lerpInt(in.Right, to.Right, t),
		Top:    lerpInt(in.Top, to.Top, t),
		Bottom: lerpInt(in.Bottom, to.Bottom, t),
	}
}

// Horizontal returns Left + Right.
func (in Insets) Horizontal() int { return in.Left + in.Right }

// Vertical returns Top + Bottom.
func (in Insets) Vertical() int { return in.Top + in.Bottom }

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// TextAlign controls horizontal text alignment inside an element.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

func (a TextAlign) String() string {
	switch a {
	case TextAlignCenter:
		return "center"
	case TextAlignRight:
		return "right"
	default:
		return "left"
	}
}

// FontStyle selects the font face variant.
type FontStyle uint8

const (
	FontStyleNormal     FontStyle = iota // regular weight, upright
	FontStyleBold                        // bold weight
	FontStyleItalic                      // italic
	FontStyleBoldItalic                  // bold and italic
)

func (f FontStyle) String() string {
	switch f {
	case FontStyleBold:
		return "bold"
	case FontStyleItalic:
		return "italic"
	case FontStyleBoldItalic:
		return "bold-italic"
	default:
		return "normal"
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpInt(a, b int, t float64) int {
	return int(math.Round(lerp(float64(a), float64(b), t)))
}
