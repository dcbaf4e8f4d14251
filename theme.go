package thicket

import (
	"fmt"
	"maps"
	"slices"
)

// ThemePropertySource is what style resolution reads from. *Theme
// implements it; a nil *Theme is a valid, empty source.
type ThemePropertySource interface {
	ThemeProperty(name string) (any, bool)
	StyleSet(id string) (*StyleSet, bool)
}

// GetThemeProperty returns the property called name from src, or def when
// src is nil, the name is unknown or the stored value has another kind.
func GetThemeProperty[T PropertyValue](src ThemePropertySource, name string, def T) T {
	if src == nil {
		return def
	}
	v, ok := src.ThemeProperty(name)
	if !ok {
		return def
	}
	t, ok := v.(T)
	if !ok {
		return def
	}
	return t
}

// Theme is a registry of style-sets and named properties. Style properties
// created with Ref read the named properties at resolution time, so changing
// a property restyles every element that references it on the next pass.
type Theme struct {
	Name string

	styleSets  map[string]*StyleSet
	properties map[string]any
	managed    map[string]struct{}
	template   string
}

// NewTheme returns an empty theme.
func NewTheme(name string) *Theme {
	return &Theme{
		Name:       name,
		styleSets:  make(map[string]*StyleSet),
		properties: make(map[string]any),
		managed:    make(map[string]struct{}),
	}
}

// AddStyleSet registers set under its ID, replacing any previous one.
func (t *Theme) AddStyleSet(set *StyleSet) {
	t.styleSets[set.ID] = set
}

// RemoveStyleSet unregisters the style-set with the given id.
func (t *Theme) RemoveStyleSet(id string) {
	delete(t.styleSets, id)
}

// StyleSet returns the style-set registered under id, without inheritance
// applied.
func (t *Theme) StyleSet(id string) (*StyleSet, bool) {
	if t == nil {
		return nil, false
	}
	s, ok := t.styleSets[id]
	return s, ok
}

// StyleSetIDs returns the registered style-set ids, sorted.
func (t *Theme) StyleSetIDs() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.styleSets))
}

// ResolveStyleSet returns the style-set registered under id with its
// ParentID chain flattened into it. A chain that loops back on itself stops
// at the first repeated id. Missing parents are ignored.
func (t *Theme) ResolveStyleSet(id string) (*StyleSet, bool) {
	set, ok := t.StyleSet(id)
	if !ok {
		return nil, false
	}
	chain := []*StyleSet{set}
	seen := map[string]struct{}{id: {}}
	for p := set.ParentID; p != ""; {
		if _, loop := seen[p]; loop {
			break
		}
		parent, ok := t.styleSets[p]
		if !ok {
			break
		}
		seen[p] = struct{}{}
		chain = append(chain, parent)
		p = parent.ParentID
	}
	if len(chain) == 1 {
		return set, true
	}
	out := chain[len(chain)-1]
	for i := len(chain) - 2; i >= 0; i-- {
		out = chain[i].inherit(out)
	}
	return out, true
}

// SetThemeProperty stores a named property on t.
func SetThemeProperty[T PropertyValue](t *Theme, name string, v T) {
	t.properties[name] = v
}

// ThemeProperty returns the raw value of a named property.
func (t *Theme) ThemeProperty(name string) (any, bool) {
	if t == nil {
		return nil, false
	}
	v, ok := t.properties[name]
	return v, ok
}

// PropertyNames returns the names of all properties, sorted.
func (t *Theme) PropertyNames() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.properties))
}

// IsManaged reports whether name was declared by the applied template.
func (t *Theme) IsManaged(name string) bool {
	_, ok := t.managed[name]
	return ok
}

// DeleteProperty removes a named property. Properties declared by the
// applied template cannot be removed.
func (t *Theme) DeleteProperty(name string) error {
	if t.IsManaged(name) {
		return fmt.Errorf("delete theme property %q: %w", name, ErrManagedProperty)
	}
	delete(t.properties, name)
	return nil
}

// Template returns the name of the applied template, or "".
func (t *Theme) Template() string { return t.template }

// ThemeTemplate declares a set of managed properties with their defaults.
type ThemeTemplate struct {
	Name       string
	Properties map[string]any
}

// NewThemeTemplate returns an empty template.
func NewThemeTemplate(name string) *ThemeTemplate {
	return &ThemeTemplate{Name: name, Properties: make(map[string]any)}
}

// DeclareTemplateProperty adds a managed property with its default value.
func DeclareTemplateProperty[T PropertyValue](tpl *ThemeTemplate, name string, def T) {
	tpl.Properties[name] = def
}

// ApplyTemplate seeds t with tpl's defaults for properties t does not define
// yet and marks every template property as managed.
func (t *Theme) ApplyTemplate(tpl *ThemeTemplate) {
	for name, def := range tpl.Properties {
		if _, ok := t.properties[name]; !ok {
			t.properties[name] = def
		}
		t.managed[name] = struct{}{}
	}
	t.template = tpl.Name
}

// ThemeRegistry holds named themes and tracks which one is active.
type ThemeRegistry struct {
	themes map[string]*Theme
	active string
}

// NewThemeRegistry returns an empty registry.
func NewThemeRegistry() *ThemeRegistry {
	return &ThemeRegistry{themes: make(map[string]*Theme)}
}

// Add registers t under t.Name. The first theme added becomes active.
func (r *ThemeRegistry) Add(t *Theme) {
	r.themes[t.Name] = t
	if r.active == "" {
		r.active = t.Name
	}
}

// Get returns the theme called name.
func (r *ThemeRegistry) Get(name string) (*Theme, bool) {
	t, ok := r.themes[name]
	return t, ok
}

// SetActive switches the active theme.
func (r *ThemeRegistry) SetActive(name string) error {
	if _, ok := r.themes[name]; !ok {
		return fmt.Errorf("activate theme %q: %w", name, ErrUnknownTheme)
	}
	r.active = name
	return nil
}

// Active returns the active theme, or nil.
func (r *ThemeRegistry) Active() *Theme {
	return r.themes[r.active]
}

// Names returns the registered theme names, sorted.
func (r *ThemeRegistry) Names() []string {
	return slices.Sorted(maps.Keys(r.themes))
}
