package thicket

import "fmt"

// PropertyValue is the closed set of value kinds a style property or theme
// property may hold.
type PropertyValue interface {
	Color | float64 | Insets | FontStyle | TextAlign | string
}

type propertyMode uint8

const (
	propertyNone   propertyMode = iota // unset; falls through to what is underneath
	propertyDirect                     // literal value
	propertyRef                        // named theme property
)

// StyleProperty is a tri-state style value: unset, a direct value, or a
// reference to a named theme property resolved at read time. The zero value
// is unset.
//
// Unset and a direct zero value are different: merging Direct(0) over
// Direct(5) yields 0, merging None over Direct(5) yields 5.
type StyleProperty[T PropertyValue] struct {
	mode  propertyMode
	value T
	ref   string
}

// None returns an unset property.
func None[T PropertyValue]() StyleProperty[T] {
	return StyleProperty[T]{}
}

// Direct returns a property holding v.
func Direct[T PropertyValue](v T) StyleProperty[T] {
	return StyleProperty[T]{mode: propertyDirect, value: v}
}

// Ref returns a property that reads the theme property called name.
func Ref[T PropertyValue](name string) StyleProperty[T] {
	return StyleProperty[T]{mode: propertyRef, ref: name}
}

// IsNone reports whether the property is unset.
func (p StyleProperty[T]) IsNone() bool { return p.mode == propertyNone }

// IsDirect reports whether the property holds a literal value.
func (p StyleProperty[T]) IsDirect() bool { return p.mode == propertyDirect }

// IsRef reports whether the property references a theme property.
func (p StyleProperty[T]) IsRef() bool { return p.mode == propertyRef }

// Value returns the literal value. ok is false unless the property is direct.
func (p StyleProperty[T]) Value() (T, bool) {
	if p.mode != propertyDirect {
		var zero T
		return zero, false
	}
	return p.value, true
}

// RefName returns the referenced theme property name, or "".
func (p StyleProperty[T]) RefName() string {
	if p.mode != propertyRef {
		return ""
	}
	return p.ref
}

// Resolve returns the concrete value. Unset properties, references to a
// missing theme or name, and references to a property of a different kind
// all yield def.
func (p StyleProperty[T]) Resolve(src ThemePropertySource, def T) T {
	switch p.mode {
	case propertyDirect:
		return p.value
	case propertyRef:
		return GetThemeProperty(src, p.ref, def)
	default:
		return def
	}
}

// Merge returns over unless over is unset, in which case p is kept.
func (p StyleProperty[T]) Merge(over StyleProperty[T]) StyleProperty[T] {
	if over.mode == propertyNone {
		return p
	}
	return over
}

// Equal compares by content: two direct values are equal when their values
// are equal, two references when they name the same property.
func (p StyleProperty[T]) Equal(other StyleProperty[T]) bool {
	if p.mode != other.mode {
		return false
	}
	switch p.mode {
	case propertyDirect:
		return p.value == other.value
	case propertyRef:
		return p.ref == other.ref
	default:
		return true
	}
}

func (p StyleProperty[T]) String() string {
	switch p.mode {
	case propertyDirect:
		return fmt.Sprintf("%v", p.value)
	case propertyRef:
		return "ref(" + p.ref + ")"
	default:
		return "none"
	}
}
