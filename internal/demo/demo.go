// Package demo builds the counter UI shared by the counter example and the
// replay tool.
package demo

import (
	"fmt"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/thicket"
	"github.com/phanxgames/thicket/ebitenhost"
)

// Theme property names declared by the demo template.
const (
	PropAccent  = "accent"
	PropSurface = "surface"
	PropInk     = "ink"
	PropMuted   = "muted"
)

// Template declares the properties every demo theme provides.
func Template() *thicket.ThemeTemplate {
	tpl := thicket.NewThemeTemplate("demo")
	thicket.DeclareTemplateProperty(tpl, PropAccent, thicket.MustHex("#3b82f6"))
	thicket.DeclareTemplateProperty(tpl, PropSurface, thicket.MustHex("#1f2937"))
	thicket.DeclareTemplateProperty(tpl, PropInk, thicket.ColorWhite)
	thicket.DeclareTemplateProperty(tpl, PropMuted, thicket.MustHex("#6b7280"))
	return tpl
}

// Themes returns a registry holding the "dark" and "light" demo themes,
// with "dark" active.
func Themes() *thicket.ThemeRegistry {
	reg := thicket.NewThemeRegistry()
	reg.Add(newTheme("dark", nil))
	reg.Add(newTheme("light", map[string]thicket.Color{
		PropSurface: thicket.MustHex("#f3f4f6"),
		PropInk:     thicket.ColorBlack,
		PropAccent:  thicket.MustHex("#2563eb"),
	}))
	return reg
}

func newTheme(name string, overrides map[string]thicket.Color) *thicket.Theme {
	t := thicket.NewTheme(name)
	for prop, c := range overrides {
		thicket.SetThemeProperty(t, prop, c)
	}
	t.ApplyTemplate(Template())

	t.AddStyleSet(thicket.NewStyleSet("panel", thicket.Style{
		BackgroundColor: thicket.Ref[thicket.Color](PropSurface),
		Padding:         thicket.Direct(thicket.UniformInsets(12)),
	}))

	button := thicket.NewStyleSet("button", thicket.Style{
		BackgroundColor: thicket.Ref[thicket.Color](PropMuted),
		BorderColor:     thicket.Ref[thicket.Color](PropInk),
		BorderWidth:     thicket.Direct(1.0),
		Padding:         thicket.Direct(thicket.Insets{Left: 8, Right: 8, Top: 2, Bottom: 2}),
	})
	button.With(thicket.PseudoHover, thicket.Style{BackgroundColor: thicket.Ref[thicket.Color](PropAccent)})
	button.With(thicket.PseudoActive, thicket.Style{BackgroundColor: thicket.Ref[thicket.Color](PropInk)})
	button.With(thicket.PseudoDisabled, thicket.Style{
		BackgroundColor: thicket.Direct(thicket.Color{R: 0.3, G: 0.3, B: 0.3, A: 0.5}),
		BorderWidth:     thicket.Direct(0.0),
	})
	button.WithTransition(thicket.TransitionConfig{
		Duration:   150 * time.Millisecond,
		Easing:     ease.OutQuad,
		Properties: []string{thicket.PropBackgroundColor},
	})
	t.AddStyleSet(button)
	return t
}

// Counter is a stateful panel with increment, decrement and lock buttons.
// While locked the +/- buttons are disabled through a DisableScope.
type Counter struct {
	thicket.KeyField
	At thicket.Vec2
}

// CounterState is the Counter's persistent state.
type CounterState struct {
	Count  int
	Locked bool
}

func (c *Counter) Render() thicket.Element { return nil }
func (c *Counter) CreateState() any { return &CounterState{} }

func (c *Counter) RenderState(s any) thicket.Element {
	st := s.(*CounterState)
	lock := "Lock"
	if st.Locked {
		lock = "Unlock"
	}
	return &ebitenhost.Box{
		KeyField: thicket.KeyField{Key: "panel"},
		Bounds:   thicket.Rect{X: c.At.X, Y: c.At.Y, Width: 220, Height: 110},
		Style:    &thicket.Style{StyleSetID: "panel"},
		Content: []thicket.Element{
			&ebitenhost.Label{KeyField: thicket.KeyField{Key: "count"}, Text: fmt.Sprintf("Count: %d", st.Count)},
			&thicket.DisableScope{
				Disabled: st.Locked,
				Reason:   "counter locked",
				Content: &ebitenhost.Box{
					KeyField: thicket.KeyField{Key: "controls"},
					Bounds:   thicket.Rect{Y: 24, Width: 196, Height: 24},
					Content: []thicket.Element{
						Button("dec", "-", thicket.Rect{Width: 40, Height: 20}, func() { st.Count-- }),
						Button("inc", "+", thicket.Rect{X: 50, Width: 40, Height: 20}, func() { st.Count++ }),
					},
				},
			},
			Button("lock", lock, thicket.Rect{Y: 60, Width: 90, Height: 20}, func() { st.Locked = !st.Locked }),
		},
	}
}

// Button returns a themed box that calls onClick when clicked.
func Button(key, text string, bounds thicket.Rect, onClick func()) *ebitenhost.Box {
	return &ebitenhost.Box{
		KeyField: thicket.KeyField{Key: key},
		Bounds:   bounds,
		Style:    &thicket.Style{StyleSetID: "button"},
		Handlers: &thicket.EventHandlers{OnClick: func(thicket.EventContext) { onClick() }},
		Content:  []thicket.Element{&ebitenhost.Label{Text: text}},
	}
}

// UI returns the root element of the demo. FPS adds a frame counter.
func UI(fps bool) thicket.Element {
	children := []thicket.Element{&Counter{KeyField: thicket.KeyField{Key: "counter"}, At: thicket.Vec2{X: 20, Y: 20}}}
	if fps {
		children = append(children, &ebitenhost.FPS{At: thicket.Vec2{X: 20, Y: 150}})
	}
	return &ebitenhost.Box{
		KeyField: thicket.KeyField{Key: "root"},
		Bounds:   thicket.Rect{Width: 640, Height: 480},
		Content:  children,
	}
}
