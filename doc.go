// Package thicket is an immediate-mode UI core with retained element state.
//
// Each frame the application builds a fresh tree of small element values and
// hands it to a [Manager]. The manager walks the tree, attaches persistent
// [ElementState] to every keyed element, propagates contexts, resolves
// themed styles with animated transitions, calls the [Renderer] registered
// for each element kind, and dispatches the frame's single [HostEvent] to
// interested elements. State of elements that stop appearing is evicted a
// few frames later.
//
// Drawing is left to renderers. The ebitenhost package drives a Manager from
// an [Ebitengine] game loop and provides basic box and label renderers; the
// root package itself has no graphics dependency and can be driven
// headlessly through a [Dispatcher].
//
// # Quick start
//
//	m := thicket.NewManager(thicket.Config{Theme: theme})
//	thicket.RegisterFor[*Button](m.Registry(), buttonRenderer{})
//
//	// once per frame
//	if err := m.RenderDOM(buildUI(), &event); err != nil {
//		log.Fatal(err)
//	}
//
// # Elements
//
// An element is any pointer type implementing [Element]. Capabilities are
// opted into by implementing further interfaces: [Keyed] for identity and
// state, [Stateful] for a user state payload, [Container] for children with
// their own key scope, [Styleful], [Eventful] and [Disableable]. Embedding
// [KeyField] provides [Keyed].
//
// Elements without an explicit key receive one synthesized from their kind
// and ordinal among same-kind siblings, so keys stay stable as long as the
// tree shape does.
//
// # Contexts
//
// A [ContextProvider] makes itself visible to every element below it; a
// [ContextConsumer] reads the innermost provider of a kind through
// [ContextOf]. [DisableScope] and [ThemeScope] are built-in providers.
//
// # Styles and themes
//
// A [Style] holds [StyleProperty] values that are unset, direct, or
// references to named [Theme] properties. A [StyleSet] adds pseudo-class
// variants (hover, active, focus, disabled) and an optional
// [TransitionConfig] whose easing comes from [gween/ease].
//
// [Ebitengine]: https://ebitengine.org
// [gween/ease]: https://pkg.go.dev/github.com/tanema/gween/ease
package thicket
