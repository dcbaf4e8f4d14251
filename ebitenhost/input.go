package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/thicket"
)

// Sample is the raw pointer state read once per tick.
type Sample struct {
	X, Y           float64
	Left           bool
	Right          bool
	Middle         bool
	WheelX, WheelY float64
	Modifiers      thicket.KeyModifiers
}

// Input turns successive samples into host events.
type Input struct {
	prev    Sample
	started bool
}

// Translate returns the host events implied by the change from the previous
// sample to s: button releases, then presses, then scroll. A sample that
// changes nothing but the pointer position yields a single move.
func (in *Input) Translate(s Sample) []thicket.HostEvent {
	prev := in.prev
	moved := !in.started || prev.X != s.X || prev.Y != s.Y
	in.prev = s
	in.started = true

	pos := thicket.Vec2{X: s.X, Y: s.Y}
	var out []thicket.HostEvent
	buttons := [...]struct {
		was, is bool
		b       thicket.MouseButton
	}{
		{prev.Left, s.Left, thicket.MouseButtonLeft},
		{prev.Right, s.Right, thicket.MouseButtonRight},
		{prev.Middle, s.Middle, thicket.MouseButtonMiddle},
	}
	for _, b := range buttons {
		if b.was && !b.is {
			out = append(out, thicket.HostEvent{Kind: thicket.HostPressUp, Position: pos, Button: b.b, Modifiers: s.Modifiers})
		}
	}
	for _, b := range buttons {
		if !b.was && b.is {
			out = append(out, thicket.HostEvent{Kind: thicket.HostPressDown, Position: pos, Button: b.b, Modifiers: s.Modifiers})
		}
	}
	if s.WheelX != 0 || s.WheelY != 0 {
		out = append(out, thicket.HostEvent{
			Kind:      thicket.HostScroll,
			Position:  pos,
			Scroll:    thicket.Vec2{X: s.WheelX, Y: s.WheelY},
			Modifiers: s.Modifiers,
		})
	}
	if len(out) == 0 && moved {
		out = append(out, thicket.HostEvent{Kind: thicket.HostPointerMove, Position: pos, Modifiers: s.Modifiers})
	}
	return out
}

// ReadSample reads the current mouse and keyboard state from Ebitengine.
func ReadSample() Sample {
	mx, my := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()
	return Sample{
		X:         float64(mx),
		Y:         float64(my),
		Left:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Right:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Middle:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		WheelX:    wx,
		WheelY:    wy,
		Modifiers: readModifiers(),
	}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() thicket.KeyModifiers {
	var mods thicket.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= thicket.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= thicket.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= thicket.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= thicket.ModMeta
	}
	return mods
}
