package thicket

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Manager renders element trees. It owns the state tree, the context stack
// and the renderer registry for one UI, and is driven by calling RenderDOM
// once per frame. A Manager is not safe for concurrent use; independent UIs
// use independent Managers.
type Manager struct {
	id       uuid.UUID
	cfg      Config
	logger   *slog.Logger
	metrics  *Metrics
	registry *Registry

	contexts *ContextStack
	root     *StateManagerStorage
	stack    *StateStack
	theme    *Theme

	transitions TransitionProcessor

	// Per-pass state.
	event       *HostEvent
	pointerDown bool
	pass        uint64
	now         time.Time
	depth       int
	rendering   []*ElementState
	stats       passStats
}

// NewManager creates a manager. Zero-valued Config fields take defaults.
func NewManager(cfg Config) *Manager {
	cfg = cfg.withDefaults()
	id := uuid.New()
	m := &Manager{
		id:       id,
		cfg:      cfg,
		logger:   cfg.Logger.With("component", "thicket", "tree", id.String()),
		metrics:  cfg.Metrics,
		registry: cfg.Registry,
		contexts: NewContextStack(),
		theme:    cfg.Theme,
	}
	m.root = m.newStorage()
	m.stack = NewStateStack(m.root)
	return m
}

func (m *Manager) newStorage() *StateManagerStorage {
	if m.cfg.Debug {
		return newLoggedStorage(m.logger)
	}
	return NewStateManagerStorage()
}

// RenderDOM runs one pass over root with ev as the pass's host event (nil
// for none). The end-of-pass state sweep and event reset always run, also
// when rendering panics.
//
// Renderer failures are handled per element and do not surface here. The
// returned error is a *ContractError when a registered renderer cannot serve
// its element.
func (m *Manager) RenderDOM(root Element, ev *HostEvent) error {
	start := time.Now()
	m.pass++
	m.now = m.cfg.Clock()
	m.stats = passStats{pass: m.pass}
	if ev != nil {
		e := *ev
		m.event = &e
		switch e.Kind {
		case HostPressDown:
			m.pointerDown = true
		case HostPressUp:
			m.pointerDown = false
		}
	}
	defer m.endPass(start)

	if root == nil {
		return nil
	}
	return m.RenderElement(root)
}

func (m *Manager) endPass(start time.Time) {
	m.stats.evicted = m.root.ResetAndCleanupUnusedState(m.cfg.FramesToKeep)
	m.event = nil
	m.depth = 0
	m.rendering = m.rendering[:0]
	m.stats.duration = time.Since(start)
	m.metrics.observePass(m.stats)
	m.debugLog(m.stats)
}

// RenderElement renders el and its subtree within the current pass.
// Renderers of container elements call it for each child.
func (m *Manager) RenderElement(el Element) error {
	if el == nil {
		return nil
	}
	if m.depth >= m.cfg.MaxDepth {
		m.logger.Error("skipping element", "element", KindName(el), "err", ErrMaxDepthExceeded, "max", m.cfg.MaxDepth)
		return nil
	}
	m.depth++
	defer func() { m.depth-- }()
	m.stats.elements++

	switch e := el.(type) {
	case ContextProvider:
		return m.renderProvider(e)
	case ContextConsumer:
		return m.RenderElement(e.Consume(contextReader{m.contexts}))
	}
	return m.renderUnified(el)
}

// RenderChildren renders every child of c in order, stopping at the first
// contract error.
func (m *Manager) RenderChildren(c Container) error {
	children := c.Children()
	m.debugCheckChildCount(c, len(children))
	for _, child := range children {
		if err := m.RenderElement(child); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) renderProvider(p ContextProvider) error {
	kind := reflect.TypeOf(p)
	m.contexts.Push(kind, p)
	defer m.contexts.Pop(kind)
	return m.RenderElement(p.Child())
}

func (m *Manager) renderUnified(el Element) error {
	st, err := m.renderScoped(el)
	if err != nil || st == nil || m.event == nil {
		return err
	}
	if ev, ok := el.(Eventful); ok {
		if h := ev.Events(); h.Any() {
			m.dispatchEvents(el, st, h)
		}
	}
	return nil
}

// renderScoped renders el inside its own container scope, if it is a
// container, and returns its state.
func (m *Manager) renderScoped(el Element) (*ElementState, error) {
	if c, ok := el.(Container); ok {
		m.stack.Push(m.GetOrCreateStateManagerStorage(c))
		defer m.stack.Pop()
		m.debugCheckStackDepth(c)
	}

	var st *ElementState
	if k, ok := el.(Keyed); ok {
		st = m.stack.CurrentStateManager().GetOrCreateState(k)
		st.Hover.edge = edgeNone
		if !m.pointerDown {
			st.Pressed = false
		}
		m.applyDisable(el, st)
		m.rendering = append(m.rendering, st)
		defer func() { m.rendering = m.rendering[:len(m.rendering)-1] }()
	}

	var style *ResolvedStyle
	if s, ok := el.(Styleful); ok && st != nil {
		style = m.resolveStyle(s, st)
	}

	handled, err := m.renderRegistered(el, st, style)
	if err != nil || handled {
		return st, err
	}
	return st, m.renderOwn(el, st)
}

// renderRegistered dispatches el to its registered renderer. handled is
// false when no renderer is registered for el's kind.
func (m *Manager) renderRegistered(el Element, st *ElementState, style *ResolvedStyle) (handled bool, err error) {
	rd, ok := m.registry.Lookup(reflect.TypeOf(el))
	if !ok {
		return false, nil
	}

	if s, ok := el.(Stateful); ok && st != nil && st.State != nil {
		sr, ok := rd.(StatefulRenderer)
		if !ok {
			return true, &ContractError{
				Element:  KindName(el),
				Renderer: fmt.Sprintf("%T", rd),
				Err:      ErrStatefulRendererRequired,
			}
		}
		return true, m.guard("render stateful", rd, el, st, func() error {
			return sr.RenderStateful(m, s, st.State, style)
		})
	}
	return true, m.guard("render", rd, el, st, func() error {
		return rd.Render(m, el, style)
	})
}

// guard runs a renderer call, turning errors and panics into a fallback
// drawing for el. Only contract errors from nested elements escape.
func (m *Manager) guard(op string, rd Renderer, el Element, st *ElementState, fn func() error) error {
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = capturePanic(r)
			}
		}()
		return fn()
	}()
	if err == nil {
		return nil
	}
	var ce *ContractError
	if errors.As(err, &ce) {
		return err
	}

	rerr := &RenderError{Op: op, Element: KindName(el), Err: err}
	if st != nil {
		rerr.Key = st.Key
	}
	m.stats.failures++
	m.metrics.observeFailure()
	m.logger.Error("renderer failed", "element", rerr.Element, "key", rerr.Key, "err", err)
	m.fallback(rd, rerr, el)
	return nil
}

func (m *Manager) fallback(rd Renderer, err error, el Element) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("renderer fallback failed", "element", KindName(el), "err", capturePanic(r))
		}
	}()
	rd.RenderFallback(err, el)
}

// renderOwn renders el without a registered renderer: its replacement if it
// returns a different element, otherwise its children if it is a container.
func (m *Manager) renderOwn(el Element, st *ElementState) error {
	var next Element
	if s, ok := el.(Stateful); ok && st != nil {
		next = s.RenderState(st.State)
	} else {
		next = el.Render()
	}
	if next != nil && !sameElement(el, next) {
		return m.RenderElement(next)
	}
	if c, ok := el.(Container); ok {
		return m.RenderChildren(c)
	}
	return nil
}

// GetOrCreateStateManagerStorage returns the storage for c inside the
// current container, synthesizing and writing back c's key if it has none.
func (m *Manager) GetOrCreateStateManagerStorage(c Container) *StateManagerStorage {
	parent := m.stack.Current()
	key := c.GetKey()
	if key == "" {
		key = parent.GenerateChildKey(c)
		c.SetKey(key)
	}
	return parent.GetOrCreateChildStorage(key, m.newStorage)
}

func (m *Manager) applyDisable(el Element, st *ElementState) {
	scope, ambient := ambientDisable(m.contexts)
	reason := ""
	if ambient {
		reason = scope.Reason
	}
	own := false
	if d, ok := el.(Disableable); ok {
		own = d.IsDisabled()
	}
	st.updateDisabled(ambient, reason, own)
}

// ReportBounds records r as the on-screen rectangle of the element currently
// being rendered. Renderers call it after drawing; event dispatch hit-tests
// against it when no BoundsProvider is configured.
func (m *Manager) ReportBounds(r Rect) {
	if st := m.CurrentState(); st != nil {
		st.bounds = r
		st.boundsPass = m.pass
	}
}

// CurrentState returns the state of the innermost keyed element being
// rendered, or nil.
func (m *Manager) CurrentState() *ElementState {
	if len(m.rendering) == 0 {
		return nil
	}
	return m.rendering[len(m.rendering)-1]
}

// CalculateSize asks el's renderer for its size. ok is false when no renderer
// is registered for el's kind.
func (m *Manager) CalculateSize(el Element, style *ResolvedStyle) (size Vec2, ok bool) {
	rd, ok := m.registry.Lookup(reflect.TypeOf(el))
	if !ok {
		return Vec2{}, false
	}
	return rd.CalculateSize(m, el, style), true
}

// ID identifies the manager in logs.
func (m *Manager) ID() uuid.UUID { return m.id }

// Registry returns the renderer registry.
func (m *Manager) Registry() *Registry { return m.registry }

// Contexts returns the context stack.
func (m *Manager) Contexts() ContextReader { return contextReader{m.contexts} }

// StateStack returns the container stack of the pass in flight.
func (m *Manager) StateStack() *StateStack { return m.stack }

// RootStorage returns the root of the state tree.
func (m *Manager) RootStorage() *StateManagerStorage { return m.root }

// Theme returns the manager-wide theme.
func (m *Manager) Theme() *Theme { return m.theme }

// SetTheme replaces the manager-wide theme. It takes effect on the next
// element resolved.
func (m *Manager) SetTheme(t *Theme) { m.theme = t }

// Event returns the host event of the pass in flight, or nil.
func (m *Manager) Event() *HostEvent { return m.event }

// Frame returns the number of passes started so far.
func (m *Manager) Frame() uint64 { return m.pass }

// Now returns the clock reading taken at the start of the current pass.
func (m *Manager) Now() time.Time { return m.now }

// Logger returns the manager's logger.
func (m *Manager) Logger() *slog.Logger { return m.logger }

// contextReader hides the mutating half of a ContextStack from consumers.
type contextReader struct {
	c *ContextStack
}

func (r contextReader) Get(kind reflect.Type, def any) any   { return r.c.Get(kind, def) }
func (r contextReader) TryGet(kind reflect.Type) (any, bool) { return r.c.TryGet(kind) }
func (r contextReader) Has(kind reflect.Type) bool           { return r.c.Has(kind) }
