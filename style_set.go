package thicket

// PseudoClass selects a StyleSet variant.
type PseudoClass uint8

const (
	PseudoNormal   PseudoClass = iota // no interaction; the style-set's base
	PseudoHover                       // pointer over the element
	PseudoActive                      // pressed
	PseudoFocus                       // focused
	PseudoDisabled                    // disabled
)

func (p PseudoClass) String() string {
	switch p {
	case PseudoHover:
		return "hover"
	case PseudoActive:
		return "active"
	case PseudoFocus:
		return "focus"
	case PseudoDisabled:
		return "disabled"
	default:
		return "normal"
	}
}

// InteractionFlags is the element's interaction state as seen by style
// resolution.
type InteractionFlags struct {
	Hover, Active, Focus, Disabled bool
}

// PseudoClass returns the pseudo-class for the flags. Priority is
// Disabled > Active > Focus > Hover > Normal.
func (f InteractionFlags) PseudoClass() PseudoClass {
	switch {
	case f.Disabled:
		return PseudoDisabled
	case f.Active:
		return PseudoActive
	case f.Focus:
		return PseudoFocus
	case f.Hover:
		return PseudoHover
	default:
		return PseudoNormal
	}
}

// StyleSet is a themed style with per-pseudo-class overrides and an optional
// transition. ParentID names another style-set in the same theme whose
// properties this one inherits.
type StyleSet struct {
	ID         string
	ParentID   string
	Base       Style
	Variants   map[PseudoClass]Style
	Transition *TransitionConfig
}

// NewStyleSet returns a style-set with the given base style.
func NewStyleSet(id string, base Style) *StyleSet {
	return &StyleSet{ID: id, Base: base, Variants: make(map[PseudoClass]Style)}
}

// With sets the override for pc and returns s for chaining.
func (s *StyleSet) With(pc PseudoClass, style Style) *StyleSet {
	if s.Variants == nil {
		s.Variants = make(map[PseudoClass]Style)
	}
	if pc == PseudoNormal {
		s.Base = s.Base.Merge(style)
		return s
	}
	s.Variants[pc] = style
	return s
}

// WithTransition sets the transition and returns s for chaining.
func (s *StyleSet) WithTransition(cfg TransitionConfig) *StyleSet {
	s.Transition = &cfg
	return s
}

// Variant returns the base style with one override merged on top: the
// highest-priority pseudo-class that is both active in flags and defined on
// the style-set wins. Normal is the base itself.
func (s *StyleSet) Variant(flags InteractionFlags) Style {
	pc := s.Match(flags)
	if pc == PseudoNormal {
		return s.Base
	}
	return s.Base.Merge(s.Variants[pc])
}

// Match returns the pseudo-class Variant would apply for flags.
func (s *StyleSet) Match(flags InteractionFlags) PseudoClass {
	for _, c := range [...]struct {
		on bool
		pc PseudoClass
	}{
		{flags.Disabled, PseudoDisabled},
		{flags.Active, PseudoActive},
		{flags.Focus, PseudoFocus},
		{flags.Hover, PseudoHover},
	} {
		if !c.on {
			continue
		}
		if _, ok := s.Variants[c.pc]; ok {
			return c.pc
		}
	}
	return PseudoNormal
}

func (s *StyleSet) clone() *StyleSet {
	c := &StyleSet{
		ID:         s.ID,
		ParentID:   s.ParentID,
		Base:       s.Base,
		Variants:   make(map[PseudoClass]Style, len(s.Variants)),
		Transition: s.Transition,
	}
	for k, v := range s.Variants {
		c.Variants[k] = v
	}
	return c
}

// inherit returns s with parent's properties underneath.
func (s *StyleSet) inherit(parent *StyleSet) *StyleSet {
	out := s.clone()
	out.Base = parent.Base.Merge(s.Base)
	for pc, pv := range parent.Variants {
		if own, ok := s.Variants[pc]; ok {
			out.Variants[pc] = pv.Merge(own)
		} else {
			out.Variants[pc] = pv
		}
	}
	if out.Transition == nil {
		out.Transition = parent.Transition
	}
	return out
}
