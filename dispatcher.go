package thicket

// Dispatcher feeds a Manager one host event per pass from a queue. Hosts
// and tests inject events; each Step renders one pass with the next event,
// or with a repaint at the last pointer position when the queue is empty.
type Dispatcher struct {
	m       *Manager
	queue   []HostEvent
	pointer Vec2
}

// NewDispatcher creates a dispatcher driving m.
func NewDispatcher(m *Manager) *Dispatcher {
	return &Dispatcher{m: m}
}

// Manager returns the driven manager.
func (d *Dispatcher) Manager() *Manager { return d.m }

// Inject queues ev for a future pass. A pointer move or repaint replaces a
// move or repaint still at the tail of the queue, so hosts that poll faster
// than they render do not fall behind.
func (d *Dispatcher) Inject(ev HostEvent) {
	if n := len(d.queue); n > 0 && isPointerOnly(ev.Kind) && isPointerOnly(d.queue[n-1].Kind) {
		d.queue[n-1] = ev
		return
	}
	d.queue = append(d.queue, ev)
}

func isPointerOnly(k HostEventKind) bool {
	return k == HostPointerMove || k == HostRepaint
}

// InjectPress queues a left-button press at (x, y).
func (d *Dispatcher) InjectPress(x, y float64) {
	d.Inject(HostEvent{Kind: HostPressDown, Position: Vec2{X: x, Y: y}, Button: MouseButtonLeft})
}

// InjectRelease queues a left-button release at (x, y).
func (d *Dispatcher) InjectRelease(x, y float64) {
	d.Inject(HostEvent{Kind: HostPressUp, Position: Vec2{X: x, Y: y}, Button: MouseButtonLeft})
}

// InjectMove queues a pointer move to (x, y).
func (d *Dispatcher) InjectMove(x, y float64) {
	d.Inject(HostEvent{Kind: HostPointerMove, Position: Vec2{X: x, Y: y}})
}

// InjectScroll queues a scroll of (dx, dy) with the pointer at (x, y).
func (d *Dispatcher) InjectScroll(x, y, dx, dy float64) {
	d.Inject(HostEvent{Kind: HostScroll, Position: Vec2{X: x, Y: y}, Scroll: Vec2{X: dx, Y: dy}})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two passes.
func (d *Dispatcher) InjectClick(x, y float64) {
	d.InjectPress(x, y)
	d.InjectRelease(x, y)
}

// InjectHover queues a repaint with the pointer at (x, y). Unlike a move it
// also ends hovering of elements the pointer is not over.
func (d *Dispatcher) InjectHover(x, y float64) {
	d.Inject(HostEvent{Kind: HostRepaint, Position: Vec2{X: x, Y: y}})
}

// Pending returns the number of queued events.
func (d *Dispatcher) Pending() int { return len(d.queue) }

// Step renders one pass of root. consumed reports whether a queued event
// was delivered; otherwise the pass carried a repaint.
func (d *Dispatcher) Step(root Element) (consumed bool, err error) {
	ev := HostEvent{Kind: HostRepaint, Position: d.pointer}
	if len(d.queue) > 0 {
		ev = d.queue[0]
		copy(d.queue, d.queue[1:])
		d.queue = d.queue[:len(d.queue)-1]
		consumed = true
	}
	d.pointer = ev.Position
	return consumed, d.m.RenderDOM(root, &ev)
}
