// Command antares-demo runs a single match locally in an Ebitengine
// window: load a level, tick the engine once per frame, render a
// tactical view, and forward WASD as the local admiral's input, the
// desktop counterpart to cmd/antares-replay's headless batch mode.
package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/antares-engine/antares/internal/corelog"
	"github.com/antares-engine/antares/internal/engine"
	"github.com/antares-engine/antares/internal/leveldata"
	"github.com/antares-engine/antares/internal/render"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	title        = "Antares"

	cellWidth  = 16
	cellHeight = 16
	gridCols   = screenWidth / cellWidth
	gridRows   = screenHeight / cellHeight

	localAdmiral = int32(0)
)

// demoGame is the Ebitengine-facing wrapper around an engine.Game; it
// owns rendering and input only, nothing in it participates in
// simulation state.
type demoGame struct {
	atlas    *render.FontAtlas
	renderer *render.GridRenderer
	buffer   *render.CellBuffer
	view     *render.TacticalView

	sim     *engine.Game
	tracked engine.Handle
}

func newDemoGame(levelPath string) (*demoGame, error) {
	data, err := os.ReadFile(levelPath)
	if err != nil {
		return nil, err
	}
	lvl, err := leveldata.Load(data)
	if err != nil {
		return nil, err
	}
	sim, err := leveldata.Build(lvl)
	if err != nil {
		return nil, err
	}

	tracked := engine.NoHandle
	sim.Arena.All(func(obj *engine.SpaceObject) bool {
		base := sim.Arena.BaseObjectAt(obj.BaseType())
		if obj.Owner == localAdmiral && base.Attributes.Has(engine.IsHumanControlled) {
			tracked = obj.Handle()
			return false
		}
		return true
	})

	atlas := render.NewFontAtlas()
	return &demoGame{
		atlas:    atlas,
		renderer: render.NewGridRenderer(atlas, cellWidth, cellHeight),
		buffer:   render.NewCellBuffer(gridCols, gridRows),
		view:     render.NewTacticalView(gridCols, gridRows, cellWidth, cellHeight),
		sim:      sim,
		tracked:  tracked,
	}, nil
}

func (g *demoGame) Update() error {
	var mask uint32
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		mask |= render.KeyTurnLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		mask |= render.KeyTurnRight
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		mask |= render.KeyThrust
	}
	g.sim.InjectInput(localAdmiral, mask)

	g.sim.Tick()
	for _, msg := range g.sim.SubscribeMessages() {
		g.view.PushMessage(msg)
	}

	if g.sim.IsGameOver() && ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	g.view.Draw(g.buffer, g.sim.Snapshot(), g.tracked, g.sim.Admirals)
	if g.sim.IsGameOver() {
		g.buffer.WriteString(2, gridRows-1, "MATCH OVER - ESC to quit", render.ColorYellow, render.ColorBlack)
	}
	g.renderer.Draw(screen, g.buffer)
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	levelPath := flag.String("level", "", "path to a level-data JSON file")
	flag.Parse()

	zlog := zerolog.New(os.Stderr).With().Timestamp().Logger()
	corelog.SetLogger(corelog.NewZerologAdapter(zlog))

	if *levelPath == "" {
		corelog.Error("antares-demo requires -level")
		os.Exit(1)
	}

	g, err := newDemoGame(*levelPath)
	if err != nil {
		corelog.Error("failed to load level", corelog.F("error", err))
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(g); err != nil {
		corelog.Error("demo exited with error", corelog.F("error", err))
		os.Exit(1)
	}
}
