package thicket

// HostEventKind identifies the kind of host input event driving a pass.
type HostEventKind uint8

const (
	HostPressDown   HostEventKind = iota // a pointer button was pressed
	HostPressUp                          // a pointer button was released
	HostPointerMove                      // the pointer moved with no button change
	HostRepaint                          // idle repaint; carries the current pointer position
	HostScroll                           // scroll wheel
)

func (k HostEventKind) String() string {
	switch k {
	case HostPressDown:
		return "press-down"
	case HostPressUp:
		return "press-up"
	case HostPointerMove:
		return "pointer-move"
	case HostRepaint:
		return "repaint"
	case HostScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// HostEvent is the single input event delivered with a render pass.
type HostEvent struct {
	Kind      HostEventKind
	Position  Vec2
	Button    MouseButton // valid for press events
	Scroll    Vec2        // valid for HostScroll
	Modifiers KeyModifiers
}

// EventType identifies an element interaction event.
type EventType uint8

const (
	EventPressDown  EventType = iota // pointer pressed inside the element
	EventPressUp                     // pointer released inside the element
	EventClick                       // primary button released inside the element
	EventHoverEnter                  // pointer started hovering the element
	EventHoverExit                   // pointer stopped hovering the element
	EventFocus                       // element gained focus
	EventBlur                        // element lost focus
	EventScroll                      // scroll wheel over the element
)

func (t EventType) String() string {
	switch t {
	case EventPressDown:
		return "press-down"
	case EventPressUp:
		return "press-up"
	case EventClick:
		return "click"
	case EventHoverEnter:
		return "hover-enter"
	case EventHoverExit:
		return "hover-exit"
	case EventFocus:
		return "focus"
	case EventBlur:
		return "blur"
	case EventScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// EventContext carries interaction event data to handlers.
type EventContext struct {
	Type    EventType
	Element Element
	State   *ElementState
	Event   HostEvent
	Bounds  Rect
	LocalX  float64
	LocalY  float64
}

// EventHandlers is the bundle of handler slots an Eventful element exposes.
// Nil slots are skipped.
type EventHandlers struct {
	OnClick      func(EventContext)
	OnPressDown  func(EventContext)
	OnPressUp    func(EventContext)
	OnHoverEnter func(EventContext)
	OnHoverExit  func(EventContext)
	OnFocus      func(EventContext)
	OnBlur       func(EventContext)
	OnScroll     func(EventContext)
}

// Any reports whether at least one handler is set.
func (h *EventHandlers) Any() bool {
	return h != nil && (h.OnClick != nil || h.OnPressDown != nil || h.OnPressUp != nil ||
		h.OnHoverEnter != nil || h.OnHoverExit != nil || h.OnFocus != nil ||
		h.OnBlur != nil || h.OnScroll != nil)
}

func (h *EventHandlers) handler(t EventType) func(EventContext) {
	switch t {
	case EventPressDown:
		return h.OnPressDown
	case EventPressUp:
		return h.OnPressUp
	case EventClick:
		return h.OnClick
	case EventHoverEnter:
		return h.OnHoverEnter
	case EventHoverExit:
		return h.OnHoverExit
	case EventFocus:
		return h.OnFocus
	case EventBlur:
		return h.OnBlur
	case EventScroll:
		return h.OnScroll
	}
	return nil
}

// BoundsProvider is the drawing backend's answer to "where is this element
// on screen this pass". ok is false when the element was not laid out.
type BoundsProvider interface {
	Bounds(el Element, st *ElementState) (Rect, bool)
}

// BoundsFunc adapts a function to BoundsProvider.
type BoundsFunc func(el Element, st *ElementState) (Rect, bool)

// Bounds implements BoundsProvider.
func (f BoundsFunc) Bounds(el Element, st *ElementState) (Rect, bool) { return f(el, st) }

// InteractionEvent is the record forwarded to an EventSink for every
// dispatched element event.
type InteractionEvent struct {
	Type      EventType
	Key       string
	Kind      string
	Frame     uint64
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers
	ScrollX   float64
	ScrollY   float64
}

// EventSink receives a copy of every dispatched element event, e.g. to feed
// an ECS world.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// boundsOf returns the element's rectangle for this pass.
func (m *Manager) boundsOf(el Element, st *ElementState) (Rect, bool) {
	if m.cfg.Bounds != nil {
		return m.cfg.Bounds.Bounds(el, st)
	}
	if st.boundsPass == m.pass {
		return st.bounds, true
	}
	return Rect{}, false
}

// dispatchEvents runs the interaction state machine for one element against
// the pass's host event. Disabled elements are not focused, pressed, clicked
// or hovered; they still receive scroll.
func (m *Manager) dispatchEvents(el Element, st *ElementState, h *EventHandlers) {
	ev := m.event
	bounds, ok := m.boundsOf(el, st)
	if !ok {
		return
	}
	now := m.Now()
	inside := bounds.ContainsPoint(ev.Position)
	disabled := st.Disabled.IsDisabled

	fire := func(t EventType) {
		m.fire(t, el, st, h, bounds)
	}

	switch ev.Kind {
	case HostPressDown:
		if inside && !disabled {
			st.Pressed = true
			if !st.Focus.IsFocused {
				st.Focus.focus(now)
				fire(EventFocus)
			}
			fire(EventPressDown)
		} else if !inside && st.Focus.IsFocused {
			st.Focus.blur(now)
			fire(EventBlur)
		}

	case HostPressUp:
		if inside && !disabled {
			fire(EventPressUp)
			if ev.Button == MouseButtonLeft {
				fire(EventClick)
			}
		}

	case HostPointerMove, HostRepaint:
		if inside && !disabled {
			if !st.Hover.IsHovering {
				st.Hover.enter(now)
				fire(EventHoverEnter)
			} else {
				st.Hover.refresh(now)
			}
		} else if ev.Kind == HostRepaint && st.Hover.IsHovering {
			st.Hover.leave(now)
			fire(EventHoverExit)
		}

	case HostScroll:
		if inside {
			fire(EventScroll)
		}
	}
}

func (m *Manager) fire(t EventType, el Element, st *ElementState, h *EventHandlers, bounds Rect) {
	ev := *m.event
	m.stats.events++
	m.metrics.observeEvent(t)
	if fn := h.handler(t); fn != nil {
		fn(EventContext{
			Type:    t,
			Element: el,
			State:   st,
			Event:   ev,
			Bounds:  bounds,
			LocalX:  ev.Position.X - bounds.X,
			LocalY:  ev.Position.Y - bounds.Y,
		})
	}
	if m.cfg.Sink != nil {
		m.cfg.Sink.EmitEvent(InteractionEvent{
			Type:      t,
			Key:       st.Key,
			Kind:      typeName(st.ElementType),
			Frame:     m.pass,
			X:         ev.Position.X,
			Y:         ev.Position.Y,
			Button:    ev.Button,
			Modifiers: ev.Modifiers,
			ScrollX:   ev.Scroll.X,
			ScrollY:   ev.Scroll.Y,
		})
	}
}
