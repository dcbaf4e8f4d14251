package thicket

import (
	"errors"
	"io"
	"log/slog"
	"time"
)

// ---- Test elements ---------------------------------------------------------

// node is a general-purpose test element: keyed container, styleful,
// eventful and disableable. A zero Rect means "report no bounds".
type node struct {
	KeyField
	rect     Rect
	style    *Style
	handlers *EventHandlers
	disabled bool
	children []Element
}

func (n *node) Render() Element { return nil }
func (n *node) Children() []Element { return n.children }
func (n *node) ElementStyle() *Style { return n.style }
func (n *node) Events() *EventHandlers { return n.handlers }
func (n *node) IsDisabled() bool { return n.disabled }

// leaf is a keyed, styleful, eventful element that is not a container.
type leaf struct {
	KeyField
	rect     Rect
	style    *Style
	handlers *EventHandlers
	disabled bool
}

func (l *leaf) Render() Element { return nil }
func (l *leaf) ElementStyle() *Style { return l.style }
func (l *leaf) Events() *EventHandlers { return l.handlers }
func (l *leaf) IsDisabled() bool { return l.disabled }

// plain is a keyed element with no other capabilities.
type plain struct {
	KeyField
}

func (p *plain) Render() Element { return nil }

// other is a second keyed kind used to test kind changes under one key.
type other struct {
	KeyField
}

func (o *other) Render() Element { return nil }

// wrapper renders into its inner element.
type wrapper struct {
	inner Element
}

func (w *wrapper) Render() Element { return w.inner }

// loop renders into itself forever through fresh wrappers.
type loop struct{}

func (l *loop) Render() Element { return &loop{} }

// counter is a stateful element whose state counts renders.
type counter struct {
	KeyField
	renders *int
}

type counterState struct {
	n int
}

func (c *counter) Render() Element { return nil }
func (c *counter) CreateState() any { return &counterState{} }
func (c *counter) RenderState(s any) Element {
	s.(*counterState).n++
	if c.renders != nil {
		*c.renders++
	}
	return nil
}

// provided is a context value.
type provided struct {
	value   string
	content Element
}

func (p *provided) Render() Element { return nil }
func (p *provided) Child() Element { return p.content }

// ---- Test renderers --------------------------------------------------------

// rectRenderer reports the rect of node and leaf elements, records styles,
// and renders node children.
type rectRenderer struct {
	styles    map[string]ResolvedStyle
	fallbacks []error
	fail      map[string]error
	panics    map[string]any
}

func newRectRenderer() *rectRenderer {
	return &rectRenderer{
		styles: make(map[string]ResolvedStyle),
		fail:   make(map[string]error),
		panics: make(map[string]any),
	}
}

func (r *rectRenderer) Render(m *Manager, el Element, style *ResolvedStyle) error {
	k := el.(Keyed)
	if v, ok := r.panics[k.GetKey()]; ok {
		panic(v)
	}
	if err, ok := r.fail[k.GetKey()]; ok {
		return err
	}
	if style != nil {
		r.styles[k.GetKey()] = *style
	}
	switch e := el.(type) {
	case *node:
		if e.rect != (Rect{}) {
			m.ReportBounds(e.rect)
		}
		return m.RenderChildren(e)
	case *leaf:
		if e.rect != (Rect{}) {
			m.ReportBounds(e.rect)
		}
	}
	return nil
}

func (r *rectRenderer) CalculateSize(_ *Manager, el Element, _ *ResolvedStyle) Vec2 {
	switch e := el.(type) {
	case *node:
		return Vec2{X: e.rect.Width, Y: e.rect.Height}
	case *leaf:
		return Vec2{X: e.rect.Width, Y: e.rect.Height}
	}
	return Vec2{}
}

func (r *rectRenderer) RenderFallback(err error, _ Element) {
	r.fallbacks = append(r.fallbacks, err)
}

// plainRenderer cannot take element state.
type plainRenderer struct {
	calls int
}

func (r *plainRenderer) Render(*Manager, Element, *ResolvedStyle) error { r.calls++; return nil }
func (r *plainRenderer) CalculateSize(*Manager, Element, *ResolvedStyle) Vec2 { return Vec2{} }
func (r *plainRenderer) RenderFallback(error, Element) {}

// statefulRenderer records the state it receives.
type statefulRenderer struct {
	plainRenderer
	states []any
}

func (r *statefulRenderer) RenderStateful(_ *Manager, _ Stateful, state any, _ *ResolvedStyle) error {
	r.states = append(r.states, state)
	return nil
}

// ---- Harness ---------------------------------------------------------------

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

var errBoom = errors.New("boom")

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestManager returns a manager with a fake clock, a discarded log and a
// rectRenderer registered for node and leaf.
func newTestManager(cfg Config) (*Manager, *rectRenderer, *fakeClock) {
	clock := newFakeClock()
	if cfg.Clock == nil {
		cfg.Clock = clock.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = quietLogger()
	}
	if cfg.Registry == nil {
		cfg.Registry = NewRegistry()
	}
	r := newRectRenderer()
	RegisterFor[*node](cfg.Registry, r)
	RegisterFor[*leaf](cfg.Registry, r)
	return NewManager(cfg), r, clock
}

func render(m *Manager, root Element, ev *HostEvent) {
	if err := m.RenderDOM(root, ev); err != nil {
		panic(err)
	}
}

func at(kind HostEventKind, x, y float64) *HostEvent {
	return &HostEvent{Kind: kind, Position: Vec2{X: x, Y: y}, Button: MouseButtonLeft}
}

// eventLog records handler calls as "key:event".
type eventLog []string

func (l *eventLog) handlers(key string) *EventHandlers {
	rec := func(ctx EventContext) { *l = append(*l, key+":"+ctx.Type.String()) }
	return &EventHandlers{
		OnClick: rec, OnPressDown: rec, OnPressUp: rec,
		OnHoverEnter: rec, OnHoverExit: rec,
		OnFocus: rec, OnBlur: rec, OnScroll: rec,
	}
}
