package thicket

import "reflect"

// Renderer draws one element kind with the host backend.
//
// Render and RenderStateful may return an error or panic; either way the
// Manager calls RenderFallback for that element and carries on with the rest
// of the tree.
type Renderer interface {
	Render(m *Manager, el Element, style *ResolvedStyle) error
	CalculateSize(m *Manager, el Element, style *ResolvedStyle) Vec2
	RenderFallback(err error, el Element)
}

// StatefulRenderer is required for Stateful elements that carry state.
type StatefulRenderer interface {
	Renderer
	RenderStateful(m *Manager, el Stateful, state any, style *ResolvedStyle) error
}

// Registry maps element kinds to renderers.
type Registry struct {
	exact   map[reflect.Type]Renderer
	generic map[string]Renderer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		exact:   make(map[reflect.Type]Renderer),
		generic: make(map[string]Renderer),
	}
}

// Register binds r to the exact concrete kind.
func (r *Registry) Register(kind reflect.Type, rd Renderer) {
	r.exact[kind] = rd
}

// RegisterGeneric binds rd to every instantiation of kind's generic type:
// registering *List[int] also serves *List[string]. Kinds that are not
// generic are registered exactly.
func (r *Registry) RegisterGeneric(kind reflect.Type, rd Renderer) {
	def, ok := genericDefinition(kind)
	if !ok {
		r.Register(kind, rd)
		return
	}
	r.generic[genericKey(kind, def)] = rd
}

// RegisterFor binds rd to the element type E.
//
//	thicket.RegisterFor[*Button](m.Registry(), buttonRenderer{})
func RegisterFor[E Element](r *Registry, rd Renderer) {
	r.Register(reflect.TypeFor[E](), rd)
}

// Unregister removes the exact and generic bindings for kind.
func (r *Registry) Unregister(kind reflect.Type) {
	delete(r.exact, kind)
	if def, ok := genericDefinition(kind); ok {
		delete(r.generic, genericKey(kind, def))
	}
}

// Lookup finds the renderer for kind: the exact binding first, then the
// binding for its generic definition.
func (r *Registry) Lookup(kind reflect.Type) (Renderer, bool) {
	if rd, ok := r.exact[kind]; ok {
		return rd, true
	}
	if def, ok := genericDefinition(kind); ok {
		rd, ok := r.generic[genericKey(kind, def)]
		return rd, ok
	}
	return nil, false
}

// Len returns the number of bindings.
func (r *Registry) Len() int {
	return len(r.exact) + len(r.generic)
}

// genericKey keeps *List[T] and List[T] apart.
func genericKey(kind reflect.Type, def string) string {
	if kind.Kind() == reflect.Pointer {
		return "*" + def
	}
	return def
}
