package thicket

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	// ErrStatefulRendererRequired is wrapped by ContractError when a stateful
	// element with state is matched to a renderer that cannot take state.
	ErrStatefulRendererRequired = errors.New("renderer does not accept element state")
	// ErrMaxDepthExceeded is reported when element replacement recurses
	// deeper than Config.MaxDepth.
	ErrMaxDepthExceeded = errors.New("maximum render depth exceeded")
	// ErrManagedProperty is returned when deleting a template-managed theme
	// property.
	ErrManagedProperty = errors.New("theme property is managed by a template")
	// ErrUnknownTheme is returned when activating a theme that is not
	// registered.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrUnknownStep is returned for event script steps with an unknown
	// action.
	ErrUnknownStep = errors.New("unknown script action")
)

// RenderError is a renderer failure for one element. It is handled at the
// element: the renderer's fallback draws in its place and the pass goes on.
type RenderError struct {
	// Op is the operation that failed, e.g. "render" or "render stateful".
	Op string
	// Element is the concrete kind name of the element.
	Element string
	// Key is the element's key, if it has one.
	Key string
	// Err is the underlying error; a *PanicError when the renderer panicked.
	Err error
}

func (e *RenderError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s (key %s): %v", e.Op, e.Element, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Element, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// PanicError is a recovered renderer panic.
type PanicError struct {
	Value      any
	StackTrace string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// ContractError reports a renderer that cannot serve an element it was
// registered for. Unlike RenderError it aborts the pass.
type ContractError struct {
	Element  string
	Renderer string
	Err      error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("renderer %s for %s: %v", e.Renderer, e.Element, e.Err)
}

func (e *ContractError) Unwrap() error { return e.Err }

func capturePanic(v any) *PanicError {
	return &PanicError{Value: v, StackTrace: string(debug.Stack())}
}
