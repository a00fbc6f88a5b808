package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/boxplatformer/common"
	"github.com/milk9111/boxplatformer/logging"
	"github.com/milk9111/boxplatformer/prefabs"
	"go.uber.org/zap"
)

func main() {
	worldName := flag.String("world", prefabs.DefaultWorld, "world prefab (.yaml or .toml); prefabs/ on disk overrides the embedded copy")
	scale := flag.Float64("scale", common.Scale, "window pixels per world pixel")
	debug := flag.Bool("debug", false, "enable debug overlay and contact logging")
	watch := flag.Bool("watch", false, "reload the world when the world file or prefabs/ changes")
	scriptName := flag.String("script", "", "drive the player with a tengo script instead of the keyboard")
	logFile := flag.String("log", "", "also write logs to this rotating file")
	tps := flag.Int("tps", 0, "ticks per second (0 uses the world prefab)")
	flag.Parse()

	log := logging.Init(logging.Config{File: *logFile, Debug: *debug})
	code := run(Options{
		World:  *worldName,
		Scale:  *scale,
		Debug:  *debug,
		Watch:  *watch,
		Script: *scriptName,
		TPS:    *tps,
	}, log)
	logging.Sync()
	os.Exit(code)
}

// run owns the game for its lifetime and returns the process exit code. Every
// deferred cleanup has run by the time it returns.
func run(opts Options, log *zap.SugaredLogger) int {
	game, err := NewGame(opts)
	if err != nil {
		log.Errorw("startup failed", "error", err)
		return 1
	}
	defer func() {
		if err := game.Close(); err != nil {
			log.Errorw("shutdown failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		game.driver.Stop()
	}()

	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("boxplatformer")

	if err := ebiten.RunGame(game); err != nil {
		log.Errorw("game exited", "error", err)
		return 1
	}
	log.Infow("stopped", "ticks", game.driver.Simulation().Ticks())
	return 0
}
