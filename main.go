// FILE: main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/flapdot/audio"
	"github.com/lixenwraith/flapdot/game"
	"github.com/lixenwraith/flapdot/render"
	"github.com/lixenwraith/flapdot/terminal"
	"github.com/lixenwraith/flapdot/vmath"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config overriding the defaults")
		seed       = flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
		immediate  = flag.Bool("immediate", false, "start ticking without waiting for the first tap")
		logPath    = flag.String("log", "", "write logs to this file (default: discard)")
		mute       = flag.Bool("mute", false, "disable sound")
	)
	flag.Parse()

	if err := run(*configPath, *seed, *immediate, *logPath, *mute); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, seed uint64, immediate bool, logPath string, mute bool) error {
	logger := newLogger(logPath)
	defer logger.Sync()

	cfg := game.Default()
	if configPath != "" {
		var err error
		if cfg, err = game.Load(configPath); err != nil {
			return err
		}
	}
	if immediate {
		cfg.Immediate = true
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("flapdot: create screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("flapdot: init screen: %w", err)
	}
	defer scr.Fini()
	scr.EnableMouse()
	scr.HideCursor()

	loop := terminal.NewLoop()
	surface := terminal.NewScreen(scr, cfg.HalfExtent)
	sim := game.NewSim(cfg, vmath.NewFastRand(seed), loop, surface, logger)

	if !mute {
		player := audio.NewPlayer(logger)
		sim.OnFlap = player.Flap
		sim.OnCrash = player.Crash
	}

	pump := terminal.NewPump(scr, loop, surface)
	pump.OnTap = sim.Tap

	splash(surface, cfg)
	loop.Post(sim.Start)

	logger.Info("flapdot starting",
		zap.Uint64("seed", seed),
		zap.Bool("immediate", cfg.Immediate),
	)

	var g errgroup.Group
	g.Go(loop.Run)
	g.Go(pump.Run)
	return g.Wait()
}

// splash shows the idle field before the first tick so a tap-start game is
// not a blank screen.
func splash(surface *terminal.Screen, cfg game.Config) {
	surface.Clear()
	surface.FillCircle(0, 0, cfg.BirdDiameter, render.Green)
	surface.SetStatus(" tap / space to start, q to quit")
	surface.Present()
}

// newLogger builds a file logger. Stderr belongs to the game screen, so
// without a path logs are discarded.
func newLogger(path string) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
