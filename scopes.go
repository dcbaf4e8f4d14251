package thicket

import "reflect"

var disableScopeKind = reflect.TypeFor[*DisableScope]()

// DisableScope disables every interactive element beneath Content while
// Disabled is true. Elements re-evaluate the scope every pass, so removing the
// scope (or clearing Disabled) re-enables them on the next pass.
type DisableScope struct {
	Disabled bool
	Reason   string
	Content  Element
}

// Render implements Element.
func (d *DisableScope) Render() Element { return nil }

// Child implements ContextProvider.
func (d *DisableScope) Child() Element { return d.Content }

// ThemeScope overrides the manager's theme for Content.
type ThemeScope struct {
	Theme   *Theme
	Content Element
}

// Render implements Element.
func (t *ThemeScope) Render() Element { return nil }

// Child implements ContextProvider.
func (t *ThemeScope) Child() Element { return t.Content }

// Consumer adapts a function to ContextConsumer.
//
//	thicket.Consumer(func(ctx thicket.ContextReader) thicket.Element {
//		user, _ := thicket.ContextOf[*Session](ctx)
//		return &Label{Text: user.Name}
//	})
type Consumer func(ctx ContextReader) Element

// Render implements Element.
func (f Consumer) Render() Element { return nil }

// Consume implements ContextConsumer.
func (f Consumer) Consume(ctx ContextReader) Element { return f(ctx) }

// ambientDisable returns the innermost DisableScope that is disabled. An
// enabled inner scope does not re-enable elements under a disabled outer one.
func ambientDisable(c *ContextStack) (*DisableScope, bool) {
	s := c.stacks[disableScopeKind]
	for i := len(s) - 1; i >= 0; i-- {
		if scope, ok := s[i].(*DisableScope); ok && scope != nil && scope.Disabled {
			return scope, true
		}
	}
	return nil, false
}

// scopedTheme returns the innermost ThemeScope theme.
func scopedTheme(r ContextReader) (*Theme, bool) {
	scope, ok := ContextOf[*ThemeScope](r)
	if !ok || scope == nil || scope.Theme == nil {
		return nil, false
	}
	return scope.Theme, true
}
