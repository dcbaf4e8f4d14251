package thicket

// ResolveStyle computes the concrete style of an element declaring decl while
// in the interaction state flags. A declared style-set is flattened through
// its parents, the variant for flags is selected, and decl's inline values
// are layered on top. It also returns the style-set's transition, if any.
//
// theme may be nil; theme references then resolve to the zero value.
func ResolveStyle(theme *Theme, decl Style, flags InteractionFlags) (ResolvedStyle, *TransitionConfig) {
	style := decl
	var cfg *TransitionConfig
	if decl.StyleSetID != "" {
		if set, ok := theme.ResolveStyleSet(decl.StyleSetID); ok {
			style = set.Variant(flags).Merge(decl)
			cfg = set.Transition
		}
	}
	return style.Resolve(theme), cfg
}

// ActiveTheme returns the theme in effect for the element being rendered:
// the innermost ThemeScope's theme, else the manager-wide theme.
func (m *Manager) ActiveTheme() *Theme {
	if t, ok := scopedTheme(m.contexts); ok {
		return t
	}
	return m.theme
}

func (m *Manager) resolveStyle(el Styleful, st *ElementState) *ResolvedStyle {
	decl := el.ElementStyle()
	if decl == nil {
		return nil
	}
	theme := m.ActiveTheme()
	if decl.StyleSetID != "" && m.cfg.Debug {
		if _, ok := theme.ResolveStyleSet(decl.StyleSetID); !ok {
			m.logger.Debug("unknown style set", "style_set", decl.StyleSetID, "key", st.Key)
		}
	}
	target, cfg := ResolveStyle(theme, *decl, st.Flags())
	current := m.transitions.Process(st, target, cfg, m.now)
	return &current
}
