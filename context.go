package thicket

import "reflect"

// ContextReader is the read-only view of a ContextStack handed to
// ContextConsumer elements.
type ContextReader interface {
	Get(kind reflect.Type, def any) any
	TryGet(kind reflect.Type) (any, bool)
	Has(kind reflect.Type) bool
}

// ContextStack holds one LIFO of provider values per provider kind. Lookups
// return the innermost provider that is currently being rendered.
type ContextStack struct {
	stacks map[reflect.Type][]any
}

// NewContextStack returns an empty stack.
func NewContextStack() *ContextStack {
	return &ContextStack{stacks: make(map[reflect.Type][]any)}
}

// Push makes value the innermost context of the given kind.
func (c *ContextStack) Push(kind reflect.Type, value any) {
	c.stacks[kind] = append(c.stacks[kind], value)
}

// Pop removes the innermost context of the given kind. Popping an empty kind
// is a no-op.
func (c *ContextStack) Pop(kind reflect.Type) {
	s := c.stacks[kind]
	if len(s) == 0 {
		return
	}
	s[len(s)-1] = nil
	s = s[:len(s)-1]
	if len(s) == 0 {
		delete(c.stacks, kind)
		return
	}
	c.stacks[kind] = s
}

// Get returns the innermost context of the given kind, or def.
func (c *ContextStack) Get(kind reflect.Type, def any) any {
	if v, ok := c.TryGet(kind); ok {
		return v
	}
	return def
}

// TryGet returns the innermost context of the given kind.
func (c *ContextStack) TryGet(kind reflect.Type) (any, bool) {
	s := c.stacks[kind]
	if len(s) == 0 {
		return nil, false
	}
	return s[len(s)-1], true
}

// Has reports whether any provider of the given kind is active.
func (c *ContextStack) Has(kind reflect.Type) bool {
	return len(c.stacks[kind]) > 0
}

// Depth returns how many providers of the given kind are active.
func (c *ContextStack) Depth(kind reflect.Type) int {
	return len(c.stacks[kind])
}

// Len returns the total number of active providers across all kinds.
func (c *ContextStack) Len() int {
	n := 0
	for _, s := range c.stacks {
		n += len(s)
	}
	return n
}

// ContextOf returns the innermost provider of type T.
//
//	if scope, ok := thicket.ContextOf[*thicket.DisableScope](ctx); ok { ... }
func ContextOf[T any](r ContextReader) (T, bool) {
	var zero T
	if r == nil {
		return zero, false
	}
	v, ok := r.TryGet(reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
