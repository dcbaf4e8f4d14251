package thicket

import (
	"reflect"
	"time"
)

type hoverEdge uint8

const (
	edgeNone hoverEdge = iota
	edgeEnter
	edgeLeave
)

// HoverState tracks whether the pointer is over an element.
type HoverState struct {
	IsHovering     bool
	HoverStartTime time.Time
	LastLeaveTime  time.Time
	LastHoverTime  time.Time

	edge hoverEdge // transition made by the most recent update
}

// ShouldTriggerEnter reports whether the most recent hover update entered
// the element.
func (h *HoverState) ShouldTriggerEnter() bool { return h.edge == edgeEnter }

// ShouldTriggerLeave reports whether the most recent hover update left the
// element.
func (h *HoverState) ShouldTriggerLeave() bool { return h.edge == edgeLeave }

func (h *HoverState) enter(now time.Time) {
	h.IsHovering = true
	h.HoverStartTime = now
	h.LastHoverTime = now
	h.edge = edgeEnter
}

func (h *HoverState) refresh(now time.Time) {
	h.LastHoverTime = now
	h.edge = edgeNone
}

func (h *HoverState) leave(now time.Time) {
	h.IsHovering = false
	h.LastLeaveTime = now
	h.edge = edgeLeave
}

// clear ends hovering without recording a leave.
func (h *HoverState) clear() {
	h.IsHovering = false
	h.edge = edgeNone
}

// FocusState tracks keyboard/press focus.
type FocusState struct {
	IsFocused      bool
	FocusStartTime time.Time
	LastBlurTime   time.Time
}

func (f *FocusState) focus(now time.Time) {
	f.IsFocused = true
	f.FocusStartTime = now
}

func (f *FocusState) blur(now time.Time) {
	f.IsFocused = false
	f.LastBlurTime = now
}

// DisabledState records why an element is not interactive.
type DisabledState struct {
	IsDisabled bool
	Reason     string

	// ContextControlled is set while an enclosing DisableScope is active.
	ContextControlled bool
	// Explicit is set by ElementState.SetDisabled and survives passes.
	Explicit bool

	explicitReason string
}

// ElementState is the persistent record kept for one keyed element. It is
// owned by the StateManager that created it.
type ElementState struct {
	Key         string
	ElementType reflect.Type

	Hover    HoverState
	Focus    FocusState
	Pressed  bool // pointer went down inside and has not been released
	Disabled DisabledState

	Transition *TransitionState

	// State is the payload returned by Stateful.CreateState.
	State any

	lastUsedFrame uint64

	bounds     Rect
	boundsPass uint64 // pass in which bounds were reported; 0 = never

	current    ResolvedStyle
	hasCurrent bool
}

func newElementState(key string, kind reflect.Type) *ElementState {
	return &ElementState{Key: key, ElementType: kind}
}

// Flags returns the interaction flags used to select a pseudo-class.
func (s *ElementState) Flags() InteractionFlags {
	return InteractionFlags{
		Hover:    s.Hover.IsHovering,
		Active:   s.Pressed,
		Focus:    s.Focus.IsFocused,
		Disabled: s.Disabled.IsDisabled,
	}
}

// SetDisabled explicitly disables or re-enables the element. An active
// DisableScope still wins while it is present.
func (s *ElementState) SetDisabled(disabled bool, reason string) {
	s.Disabled.Explicit = disabled
	s.Disabled.explicitReason = reason
	if !disabled {
		s.Disabled.explicitReason = ""
	}
	s.updateDisabled(s.Disabled.ContextControlled, s.Disabled.Reason, false)
}

// CurrentStyle returns the style produced for the element by the most recent
// resolution, including any in-flight transition.
func (s *ElementState) CurrentStyle() (ResolvedStyle, bool) {
	return s.current, s.hasCurrent
}

// Bounds returns the rectangle reported for the element during the most
// recent pass in which one was reported.
func (s *ElementState) Bounds() (Rect, bool) {
	return s.bounds, s.boundsPass != 0
}

// updateDisabled recomputes the disabled flag. Becoming disabled ends any
// hover, focus or press without raising exit or blur events.
func (s *ElementState) updateDisabled(ambient bool, ambientReason string, own bool) {
	was := s.Disabled.IsDisabled

	s.Disabled.ContextControlled = ambient
	s.Disabled.IsDisabled = ambient || own || s.Disabled.Explicit
	switch {
	case ambient:
		s.Disabled.Reason = ambientReason
	case s.Disabled.Explicit:
		s.Disabled.Reason = s.Disabled.explicitReason
	default:
		s.Disabled.Reason = ""
	}

	if s.Disabled.IsDisabled && !was {
		s.clearInteraction()
	}
}

func (s *ElementState) clearInteraction() {
	s.Hover.clear()
	s.Focus.IsFocused = false
	s.Pressed = false
}

// normalize re-derives flags after the payload or disabled state changed.
func (s *ElementState) normalize() {
	if s.Disabled.IsDisabled {
		s.clearInteraction()
	}
}
