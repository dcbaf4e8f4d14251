package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/thicket"
)

// Game implements ebiten.Game around a thicket Manager. Update samples
// input; Draw renders one pass of the tree returned by build.
type Game struct {
	manager    *thicket.Manager
	dispatcher *thicket.Dispatcher
	build      func() thicket.Element
	input      Input
	canvas     *canvas
	err        error

	// Width and Height are the logical screen size. Zero uses the outside
	// size.
	Width, Height int
}

// NewGame creates a Game. The box, label and FPS renderers are registered
// in cfg's registry, which is created if nil.
func NewGame(cfg thicket.Config, build func() thicket.Element) *Game {
	if cfg.Registry == nil {
		cfg.Registry = thicket.NewRegistry()
	}
	c := &canvas{}
	registerRenderers(cfg.Registry, c)
	m := thicket.NewManager(cfg)
	return &Game{
		manager:    m,
		dispatcher: thicket.NewDispatcher(m),
		build:      build,
		canvas:     c,
	}
}

// registerRenderers binds the package's renderers in reg, drawing through c.
func registerRenderers(reg *thicket.Registry, c *canvas) {
	thicket.RegisterFor[*Box](reg, BoxRenderer{c: c})
	thicket.RegisterFor[*Label](reg, LabelRenderer{c: c})
	thicket.RegisterFor[*FPS](reg, FPSRenderer{c: c})
}

// Manager returns the game's manager.
func (g *Game) Manager() *thicket.Manager { return g.manager }

// Dispatcher returns the dispatcher feeding the manager. Tests and replays
// inject events through it.
func (g *Game) Dispatcher() *thicket.Dispatcher { return g.dispatcher }

// Update queues this tick's input. It returns the error of the last pass,
// which stops the game.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	for _, ev := range g.input.Translate(ReadSample()) {
		g.dispatcher.Inject(ev)
	}
	return nil
}

// Draw renders one pass onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.target = screen
	g.canvas.origins = g.canvas.origins[:0]
	defer func() { g.canvas.target = nil }()
	if _, err := g.dispatcher.Step(g.build()); err != nil {
		g.err = err
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Width > 0 && g.Height > 0 {
		return g.Width, g.Height
	}
	return outsideWidth, outsideHeight
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	Resizable     bool
}

// Run opens a window and runs g until it is closed or a pass fails.
func Run(g *Game, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		g.Width, g.Height = cfg.Width, cfg.Height
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(g)
}
