package thicket

import (
	"reflect"
	"strings"
)

// Element is an immutable description of one UI node. Render returns the
// element that replaces it for this pass, or nil when the node is a leaf.
//
// Elements implement any subset of the capability interfaces below. The
// Manager checks capabilities with type assertions, so a single concrete type
// may be keyed, a container, styleful and eventful at the same time.
type Element interface {
	Render() Element
}

// Keyed elements own persistent state. The key is the element's only mutable
// field: when it is empty the Manager synthesizes one and writes it back.
type Keyed interface {
	Element
	GetKey() string
	SetKey(key string)
}

// Stateful elements carry an opaque state payload created once per key.
type Stateful interface {
	Keyed
	CreateState() any
	RenderState(state any) Element
}

// Container elements own an ordered list of children and a state scope for
// them.
type Container interface {
	Keyed
	Children() []Element
}

// ContextProvider makes itself available to every descendant of Child,
// looked up by its concrete type.
type ContextProvider interface {
	Element
	Child() Element
}

// ContextConsumer builds its replacement from the enclosing contexts.
type ContextConsumer interface {
	Element
	Consume(ctx ContextReader) Element
}

// Styleful elements declare an inline style. A nil style means the element
// has nothing to resolve.
type Styleful interface {
	Element
	ElementStyle() *Style
}

// Eventful elements receive interaction events.
type Eventful interface {
	Element
	Events() *EventHandlers
}

// Disableable elements can opt out of interaction on their own. Ambient
// disablement from a DisableScope overrides this.
type Disableable interface {
	Element
	IsDisabled() bool
}

// KeyField is embedded in element structs to satisfy the key half of Keyed.
// Elements embedding it must be used by pointer.
type KeyField struct {
	Key string
}

// GetKey returns the element's key, which may be empty.
func (k *KeyField) GetKey() string { return k.Key }

// SetKey assigns the element's key.
func (k *KeyField) SetKey(key string) { k.Key = key }

// Kind returns the concrete type of el.
func Kind(el Element) reflect.Type {
	return reflect.TypeOf(el)
}

// KindName returns the name used when synthesizing keys for el: the concrete
// type name with pointer indirection removed.
func KindName(el Element) string {
	return typeName(reflect.TypeOf(el))
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// genericDefinition returns the package path and type name of t without type
// arguments, e.g. "example.com/ui.List" for *ui.List[Item]. ok is false when
// t is not an instantiated generic type.
func genericDefinition(t reflect.Type) (string, bool) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	i := strings.IndexByte(name, '[')
	if i < 0 {
		return "", false
	}
	return t.PkgPath() + "." + name[:i], true
}

// StateOf returns the typed payload of st. ok is false when st is nil or the
// payload has a different type.
func StateOf[S any](st *ElementState) (S, bool) {
	var zero S
	if st == nil {
		return zero, false
	}
	s, ok := st.State.(S)
	return s, ok
}

// sameElement reports whether next is el itself. Value elements that are not
// comparable are never the same.
func sameElement(el, next Element) (same bool) {
	ev, nv := reflect.ValueOf(el), reflect.ValueOf(next)
	if ev.Type() != nv.Type() {
		return false
	}
	switch ev.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice:
		return ev.Pointer() == nv.Pointer()
	}
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return el == next
}
