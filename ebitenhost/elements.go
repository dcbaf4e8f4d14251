package ebitenhost

import (
	"github.com/phanxgames/thicket"
)

// Box is a rectangle at a fixed position. It fills with its background
// color, strokes its border and lays its children out inside its padding.
type Box struct {
	thicket.KeyField
	Bounds   thicket.Rect
	Style    *thicket.Style
	Handlers *thicket.EventHandlers
	Disabled bool
	Content  []thicket.Element
}

func (b *Box) Render() thicket.Element { return nil }
func (b *Box) Children() []thicket.Element { return b.Content }
func (b *Box) ElementStyle() *thicket.Style { return b.Style }
func (b *Box) Events() *thicket.EventHandlers { return b.Handlers }
func (b *Box) IsDisabled() bool { return b.Disabled }

// Label draws a line of text with the debug font. At is relative to the
// enclosing Box's content origin.
type Label struct {
	thicket.KeyField
	Text  string
	At    thicket.Vec2
	Style *thicket.Style
}

func (l *Label) Render() thicket.Element { return nil }
func (l *Label) ElementStyle() *thicket.Style { return l.Style }

// FPS shows the current FPS and TPS, refreshed twice a second.
type FPS struct {
	thicket.KeyField
	At thicket.Vec2
}

type fpsState struct {
	elapsed float64
	text    string
}

func (f *FPS) Render() thicket.Element { return nil }
func (f *FPS) CreateState() any { return &fpsState{elapsed: fpsInterval} }
func (f *FPS) RenderState(any) thicket.Element { return nil }
