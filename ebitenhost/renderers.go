package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/thicket"
)

// Debug font cell size used by ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

var fallbackColor = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}

// canvas is the drawing state shared by the renderers of one Game: the
// frame's target image and the stack of content origins of enclosing boxes.
type canvas struct {
	target  *ebiten.Image
	origins []thicket.Vec2
	last    thicket.Rect
}

func (c *canvas) origin() thicket.Vec2 {
	if len(c.origins) == 0 {
		return thicket.Vec2{}
	}
	return c.origins[len(c.origins)-1]
}

func (c *canvas) place(r thicket.Rect) thicket.Rect {
	o := c.origin()
	r.X += o.X
	r.Y += o.Y
	c.last = r
	return r
}

func (c *canvas) push(x, y float64) { c.origins = append(c.origins, thicket.Vec2{X: x, Y: y}) }
func (c *canvas) pop() { c.origins = c.origins[:len(c.origins)-1] }

// fallback marks the area of the last placed element.
func (c *canvas) fallback(err error, el thicket.Element) {
	if c.target == nil {
		return
	}
	r := c.last
	vector.StrokeRect(c.target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, fallbackColor, false)
	ebitenutil.DebugPrintAt(c.target, "!", int(r.X)+2, int(r.Y))
}

// BoxRenderer draws Box elements and renders their children.
type BoxRenderer struct {
	c *canvas
}

func (r BoxRenderer) Render(m *thicket.Manager, el thicket.Element, style *thicket.ResolvedStyle) error {
	b := el.(*Box)
	var rs thicket.ResolvedStyle
	if style != nil {
		rs = *style
	}
	bounds := b.Bounds
	if bounds.Width == 0 {
		bounds.Width = rs.Width
	}
	if bounds.Height == 0 {
		bounds.Height = rs.Height
	}
	rect := r.c.place(bounds)
	m.ReportBounds(rect)

	if r.c.target != nil {
		x, y, w, h := float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height)
		if rs.BackgroundColor.A > 0 {
			vector.DrawFilledRect(r.c.target, x, y, w, h, rs.BackgroundColor.RGBA(), false)
		}
		if rs.BorderWidth > 0 && rs.BorderColor.A > 0 {
			vector.StrokeRect(r.c.target, x, y, w, h, float32(rs.BorderWidth), rs.BorderColor.RGBA(), false)
		}
	}

	r.c.push(rect.X+float64(rs.Padding.Left), rect.Y+float64(rs.Padding.Top))
	defer r.c.pop()
	return m.RenderChildren(b)
}

func (r BoxRenderer) CalculateSize(_ *thicket.Manager, el thicket.Element, style *thicket.ResolvedStyle) thicket.Vec2 {
	b := el.(*Box)
	size := thicket.Vec2{X: b.Bounds.Width, Y: b.Bounds.Height}
	if style != nil {
		if size.X == 0 {
			size.X = style.Width
		}
		if size.Y == 0 {
			size.Y = style.Height
		}
	}
	return size
}

func (r BoxRenderer) RenderFallback(err error, el thicket.Element) { r.c.fallback(err, el) }

// LabelRenderer draws Label elements with the debug font.
type LabelRenderer struct {
	c *canvas
}

func (r LabelRenderer) Render(m *thicket.Manager, el thicket.Element, style *thicket.ResolvedStyle) error {
	l := el.(*Label)
	size := r.CalculateSize(m, el, style)
	rect := r.c.place(thicket.Rect{X: l.At.X, Y: l.At.Y, Width: size.X, Height: size.Y})
	m.ReportBounds(rect)
	if r.c.target == nil {
		return nil
	}

	textW := float64(len(l.Text) * glyphW)
	x := rect.X
	if style != nil {
		switch style.TextAlign {
		case thicket.TextAlignCenter:
			x += (rect.Width - textW) / 2
		case thicket.TextAlignRight:
			x += rect.Width - textW
		}
	}
	ebitenutil.DebugPrintAt(r.c.target, l.Text, int(x), int(rect.Y))
	return nil
}

func (r LabelRenderer) CalculateSize(_ *thicket.Manager, el thicket.Element, style *thicket.ResolvedStyle) thicket.Vec2 {
	l := el.(*Label)
	size := thicket.Vec2{X: float64(len(l.Text) * glyphW), Y: glyphH}
	if style != nil && style.Width > size.X {
		size.X = style.Width
	}
	return size
}

func (r LabelRenderer) RenderFallback(err error, el thicket.Element) { r.c.fallback(err, el) }

// fpsInterval is how often, in seconds, the FPS text refreshes.
const fpsInterval = 0.5

// FPSRenderer draws FPS elements. It keeps the refresh timer in the
// element's state so several counters can coexist.
type FPSRenderer struct {
	c *canvas
}

func (r FPSRenderer) Render(m *thicket.Manager, el thicket.Element, style *thicket.ResolvedStyle) error {
	return fmt.Errorf("fps counter %q rendered without state", el.(*FPS).Key)
}

func (r FPSRenderer) RenderStateful(m *thicket.Manager, el thicket.Stateful, state any, style *thicket.ResolvedStyle) error {
	f := el.(*FPS)
	st := state.(*fpsState)
	st.elapsed += 1 / float64(ebiten.TPS())
	if st.elapsed >= fpsInterval {
		st.elapsed = 0
		st.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}

	rect := r.c.place(thicket.Rect{X: f.At.X, Y: f.At.Y, Width: 100, Height: 2 * glyphH})
	m.ReportBounds(rect)
	if r.c.target == nil {
		return nil
	}
	vector.DrawFilledRect(r.c.target, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), color.RGBA{A: 128}, false)
	ebitenutil.DebugPrintAt(r.c.target, st.text, int(rect.X), int(rect.Y))
	return nil
}

func (r FPSRenderer) CalculateSize(*thicket.Manager, thicket.Element, *thicket.ResolvedStyle) thicket.Vec2 {
	return thicket.Vec2{X: 100, Y: 2 * glyphH}
}

func (r FPSRenderer) RenderFallback(err error, el thicket.Element) { r.c.fallback(err, el) }
