// Package ebitenhost drives a thicket UI from an Ebitengine game loop.
//
// [Game] translates mouse and keyboard state into one [thicket.HostEvent]
// per frame, renders the element tree during Draw, and provides renderers for
// the [Box], [Label] and [FPS] elements:
//
//	host := ebitenhost.NewGame(thicket.Config{Theme: theme}, buildUI)
//	if err := ebitenhost.Run(host, ebitenhost.RunConfig{Title: "Demo", Width: 640, Height: 480}); err != nil {
//		log.Fatal(err)
//	}
package ebitenhost
