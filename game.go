package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/boxplatformer/common"
	"github.com/milk9111/boxplatformer/ecs/system"
	"github.com/milk9111/boxplatformer/input"
	"github.com/milk9111/boxplatformer/logging"
	"github.com/milk9111/boxplatformer/prefabs"
	"github.com/milk9111/boxplatformer/script"
	"github.com/milk9111/boxplatformer/sim"
	"go.uber.org/zap"
)

type Options struct {
	World  string
	Scale  float64
	Debug  bool
	Watch  bool
	Script string
	TPS    int
}

type Game struct {
	frames int
	opts   Options
	log    *zap.SugaredLogger

	driver    *sim.Driver
	render    *system.RenderSystem
	keys      input.State
	poller    input.Poller
	autopilot *script.Autopilot
	watcher   *prefabs.Watcher

	paused  bool
	pauseUI *ebitenui.UI
}

func NewGame(opts Options) (*Game, error) {
	if opts.Scale <= 0 {
		opts.Scale = common.Scale
	}
	g := &Game{opts: opts, log: logging.Log}

	spec, err := prefabs.LoadWorldSpec(opts.World)
	if err != nil {
		return nil, err
	}
	s, err := sim.New(spec, g.log)
	if err != nil {
		return nil, err
	}
	g.driver = sim.NewDriver(s)
	g.applySpec(spec)

	if opts.Script != "" {
		if g.autopilot, err = script.Load(opts.Script); err != nil {
			return nil, err
		}
		g.log.Infow("autopilot enabled", "script", g.autopilot.Name())
	}

	if opts.Watch {
		dirs := watchDirs(opts)
		if len(dirs) == 0 {
			g.log.Warnw("nothing to watch, world is embedded", "world", opts.World)
		}
		if g.watcher, err = prefabs.NewWatcher(dirs...); err != nil {
			return nil, fmt.Errorf("watch prefabs: %w", err)
		}
		g.log.Infow("watching prefabs", "dirs", dirs)
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

// watchDirs lists the directories prefabs.Load can read the world from: the
// world file's own directory when it exists on disk, and prefabs/.
func watchDirs(opts Options) []string {
	var dirs []string
	world := opts.World
	if world == "" {
		world = prefabs.DefaultWorld
	}
	if _, err := os.Stat(world); err == nil {
		dirs = append(dirs, filepath.Clean(filepath.Dir(world)))
	}
	if info, err := os.Stat("prefabs"); err == nil && info.IsDir() && !slices.Contains(dirs, "prefabs") {
		dirs = append(dirs, "prefabs")
	}
	return dirs
}

func (g *Game) applySpec(spec *prefabs.WorldSpec) {
	g.render = system.NewRenderSystem(spec.Colors.Background.Color, g.opts.Scale)
	tps := spec.TPS
	if g.opts.TPS > 0 {
		tps = g.opts.TPS
	}
	ebiten.SetTPS(tps)
}

// Reset rebuilds the world from the current spec.
func (g *Game) Reset() {
	s, err := sim.New(g.driver.Simulation().Spec(), g.log)
	if err != nil {
		g.log.Errorw("reset failed", "error", err)
		return
	}
	g.driver.Swap(s)
	g.log.Infow("world reset")
}

func (g *Game) reloadIfChanged() {
	if g.watcher == nil {
		return
	}
	for {
		name, ok := g.watcher.Poll()
		if !ok {
			return
		}
		switch filepath.Ext(name) {
		case ".tengo":
			if g.autopilot == nil {
				continue
			}
			a, err := script.Load(g.opts.Script)
			if err != nil {
				g.log.Errorw("script reload failed", "file", name, "error", err)
				continue
			}
			g.autopilot = a
			g.log.Infow("script reloaded", "file", name)
		default:
			spec, err := prefabs.LoadWorldSpec(g.opts.World)
			if err != nil {
				g.log.Errorw("world reload failed", "file", name, "error", err)
				continue
			}
			s, err := sim.New(spec, g.log)
			if err != nil {
				g.log.Errorw("world rebuild failed", "file", name, "error", err)
				continue
			}
			g.driver.Swap(s)
			g.applySpec(spec)
			g.log.Infow("world reloaded", "file", name)
		}
	}
}

// heldState returns what the simulation sees this tick: the keyboard, or the
// autopilot's choice fed through the same bindings.
func (g *Game) heldState() input.State {
	if g.autopilot == nil {
		return g.keys
	}
	s := g.driver.Simulation()
	body, ok := s.Player()
	if !ok {
		return input.State{}
	}
	spec := s.Spec()
	intents, err := g.autopilot.Intents(s.Ticks(), body, spec.Width, spec.Height())
	if err != nil {
		g.log.Errorw("autopilot failed", "error", err)
		return input.State{}
	}
	return input.FromIntents(spec.Keys, intents...)
}

func (g *Game) Update() error {
	g.frames++

	g.keys = g.poller.Poll(g.keys)
	g.reloadIfChanged()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	if g.paused {
		g.pauseUI.Update()
		if g.driver.Stopped() {
			return ebiten.Termination
		}
		return nil
	}

	if !g.driver.Step(g.heldState()) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	world := g.driver.Simulation().World()
	g.render.Draw(world, screen)

	if g.opts.Debug {
		system.DrawPhysicsDebug(world, screen, g.opts.Scale)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Tick: %d    FPS: %.2f", g.driver.Simulation().Ticks(), ebiten.ActualFPS()))
		system.DrawPlayerStateDebug(world, screen)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	spec := g.driver.Simulation().Spec()
	return int(spec.Width * g.opts.Scale), int(spec.Height() * g.opts.Scale)
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	if err := g.watcher.Close(); err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}
	return nil
}
