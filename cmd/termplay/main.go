// Command termplay runs the platformer in a terminal.
//
// Terminals report key presses but not releases, so each press holds its key
// for a few ticks (terminal.hold_ticks in the world prefab).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/boxplatformer/input"
	"github.com/milk9111/boxplatformer/logging"
	"github.com/milk9111/boxplatformer/prefabs"
	"github.com/milk9111/boxplatformer/script"
	"github.com/milk9111/boxplatformer/sim"
	"go.uber.org/zap"
)

var arrowKeys = map[tcell.Key]ebiten.Key{
	tcell.KeyUp:    ebiten.KeyArrowUp,
	tcell.KeyLeft:  ebiten.KeyArrowLeft,
	tcell.KeyRight: ebiten.KeyArrowRight,
}

var runeKeys = map[rune]ebiten.Key{
	'w': ebiten.KeyW,
	'a': ebiten.KeyA,
	'd': ebiten.KeyD,
}

type host struct {
	screen    tcell.Screen
	driver    *sim.Driver
	events    chan tcell.Event
	latch     *input.Latch
	keys      input.State
	autopilot *script.Autopilot
	log       *zap.SugaredLogger
}

func main() {
	worldName := flag.String("world", prefabs.DefaultWorld, "world prefab (.yaml or .toml)")
	scriptName := flag.String("script", "", "drive the player with a tengo script")
	logFile := flag.String("log", "termplay.log", "log file; the terminal is busy drawing")
	debug := flag.Bool("debug", false, "log every contact")
	flag.Parse()

	// keep stderr off the screen
	log := logging.Init(logging.Config{File: *logFile, Debug: *debug, Quiet: true})
	defer logging.Sync()

	if err := run(*worldName, *scriptName, log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Errorw("termplay failed", "error", err)
		logging.Sync()
		os.Exit(1)
	}
}

func run(worldName, scriptName string, log *zap.SugaredLogger) error {
	spec, err := prefabs.LoadWorldSpec(worldName)
	if err != nil {
		return err
	}
	s, err := sim.New(spec, log)
	if err != nil {
		return err
	}

	h := &host{
		driver: sim.NewDriver(s),
		events: make(chan tcell.Event, 100),
		latch:  input.NewLatch(spec.Terminal.HoldTicks),
		log:    log,
	}
	if scriptName != "" {
		if h.autopilot, err = script.Load(scriptName); err != nil {
			return err
		}
	}

	if h.screen, err = tcell.NewScreen(); err != nil {
		return fmt.Errorf("termplay: new screen: %w", err)
	}
	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("termplay: init screen: %w", err)
	}
	defer h.screen.Fini()
	h.screen.HideCursor()

	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			h.events <- ev
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = sim.RunTimer(ctx, h.driver, spec.TPS, h.poll, h.draw)
	log.Infow("stopped", "ticks", h.driver.Simulation().Ticks())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// poll drains pending terminal events and returns the keys held this tick.
func (h *host) poll() input.State {
	h.keys = h.latch.Advance(h.keys)
	for {
		select {
		case ev := <-h.events:
			h.handle(ev)
		default:
			return h.held()
		}
	}
}

func (h *host) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			h.driver.Stop()
			return
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				h.driver.Stop()
			case 'r':
				h.reset()
			default:
				if k, ok := runeKeys[ev.Rune()]; ok {
					h.keys = h.latch.Press(h.keys, k)
				}
			}
			return
		}
		if k, ok := arrowKeys[ev.Key()]; ok {
			h.keys = h.latch.Press(h.keys, k)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
}

func (h *host) held() input.State {
	if h.autopilot == nil {
		return h.keys
	}
	s := h.driver.Simulation()
	body, ok := s.Player()
	if !ok {
		return input.State{}
	}
	spec := s.Spec()
	intents, err := h.autopilot.Intents(s.Ticks(), body, spec.Width, spec.Height())
	if err != nil {
		h.log.Errorw("autopilot failed", "error", err)
		return input.State{}
	}
	return input.FromIntents(spec.Keys, intents...)
}

func (h *host) reset() {
	s, err := sim.New(h.driver.Simulation().Spec(), h.log)
	if err != nil {
		h.log.Errorw("reset failed", "error", err)
		return
	}
	h.driver.Swap(s)
	h.keys = input.State{}
	h.log.Infow("world reset")
}

func (h *host) draw() {
	s := h.driver.Simulation()
	spec := s.Spec()

	cols, rows := h.screen.Size()
	// last row is the status line
	v := newViewport(spec.Width, spec.Height(), cols, rows-1)

	bg := tcell.StyleDefault.Background(toTcell(spec.Colors.Background.Color))
	h.screen.Fill(' ', bg)

	obstacle := bg.Foreground(toTcell(spec.Colors.Obstacle.Color))
	for _, shape := range s.Obstacles() {
		fillCells(h.screen, v.cells(shape), '█', obstacle)
	}
	player := bg.Foreground(toTcell(spec.Colors.Player.Color))
	for _, body := range s.Bodies() {
		fillCells(h.screen, v.cells(body.Shape), '█', player)
	}

	status := fmt.Sprintf("tick %d  arrows or w/a/d move  r reset  q quit", s.Ticks())
	if body, ok := s.Player(); ok {
		status = fmt.Sprintf("tick %d  x %.1f y %.1f  grounded %t jumping %t  r reset  q quit",
			s.Ticks(), body.X, body.Y, body.Grounded, body.Jumping)
	}
	for i, ch := range status {
		if i >= cols {
			break
		}
		h.screen.SetContent(i, rows-1, ch, nil, tcell.StyleDefault)
	}
	h.screen.Show()
}
