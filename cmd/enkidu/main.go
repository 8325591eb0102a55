package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Garsondee/Enkidu/internal/display"
	"github.com/Garsondee/Enkidu/internal/game"
	"github.com/Garsondee/Enkidu/internal/terminal"
	"github.com/Garsondee/Enkidu/pkg/logger"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type options struct {
	frontend string
	controls string
	quirks   string
	scale    int
	fps      int
	mapPath  string
	logFile  string
	verbose  bool
}

func main() {
	var o options
	flag.StringVar(&o.frontend, "frontend", "window", "presentation: window or term")
	flag.StringVar(&o.controls, "controls", "tank", "control scheme: tank or grid")
	flag.StringVar(&o.quirks, "quirks", "none", "legacy behaviours to enable: none, all, or a comma list of index-clamp,cell-border,unit-init-vector")
	flag.IntVar(&o.scale, "scale", 0, "window scale factor (0 keeps the default)")
	flag.IntVar(&o.fps, "fps", 0, "terminal frame rate (0 keeps the default)")
	flag.StringVar(&o.mapPath, "map", "", "map file ('#' wall, '.' floor); empty uses the built-in 8x8 map")
	flag.StringVar(&o.logFile, "log-file", "", "write logs to this file instead of stderr")
	flag.BoolVar(&o.verbose, "verbose", false, "log every per-tick position change")
	flag.Parse()

	out, closeLog, err := logOutput(o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger.Init(out)

	session := uuid.NewString()
	log := logger.Log.WithField("session", session)

	cfg, err := buildConfig(o)
	if err != nil {
		log.WithError(err).Fatal("bad flags")
	}
	grid, err := loadGrid(o.mapPath)
	if err != nil {
		log.WithError(err).Fatal("load map")
	}
	sim, err := game.NewSim(cfg, grid)
	if err != nil {
		log.WithError(err).Fatal("create simulation")
	}
	log.WithFields(logrus.Fields{
		"frontend": o.frontend,
		"controls": cfg.Controls,
		"quirks":   cfg.Quirks,
		"grid":     sim.Grid().Size(),
	}).Info("starting")

	switch o.frontend {
	case "window":
		err = runWindow(sim, session, log, o.verbose)
	case "term":
		err = runTerminal(sim, log, o.verbose)
	}
	if err != nil {
		log.WithError(err).Fatal("run")
	}
	log.WithField("ticks", sim.Tick()).Info("stopped")
}

// logOutput picks the log destination. The terminal frontend owns the
// screen, so without a log file its logs are dropped.
func logOutput(o options) (io.Writer, func(), error) {
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return f, func() { f.Close() }, nil
	}
	if o.frontend == "term" {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}

func buildConfig(o options) (game.Config, error) {
	cfg := game.DefaultConfig()
	if o.frontend != "window" && o.frontend != "term" {
		return cfg, fmt.Errorf("unknown frontend %q (want window or term)", o.frontend)
	}
	controls, err := game.ParseControlScheme(o.controls)
	if err != nil {
		return cfg, err
	}
	cfg.Controls = controls
	quirks, err := game.ParseQuirks(o.quirks)
	if err != nil {
		return cfg, err
	}
	cfg.Quirks = quirks
	if o.scale > 0 {
		cfg.WindowScale = o.scale
	}
	if o.fps > 0 {
		cfg.FPS = o.fps
	}
	return cfg, nil
}

// loadGrid reads a map file. An empty path selects the built-in map.
func loadGrid(path string) (*game.TileGrid, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	grid, err := game.ParseTileGrid(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse map %s: %w", path, err)
	}
	return grid, nil
}

// eventLogger forwards simulation events to the debug log.
type eventLogger struct {
	log *logrus.Entry
}

func (l eventLogger) Add(e game.Event) {
	l.log.WithFields(logrus.Fields{
		"tick":     e.Tick,
		"category": e.Category,
		"key":      e.Key,
	}).Debug(e.Value)
}

func runWindow(sim *game.Sim, session string, log *logrus.Entry, verbose bool) error {
	g := display.New(sim, display.Options{Session: session, Log: log})
	sim.SetEventSink(game.MultiSink{g.Panel(), eventLogger{log: log}}, verbose)

	ebiten.SetWindowTitle("Enkidu")
	ebiten.SetWindowSize(g.WindowSize())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func runTerminal(sim *game.Sim, log *logrus.Entry, verbose bool) error {
	sim.SetEventSink(eventLogger{log: log}, verbose)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	fe, err := terminal.New(screen, terminal.Options{
		Status: func() string { return statusLine(sim) },
		Log:    log,
	})
	if err != nil {
		return err
	}
	defer fe.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	clock := game.NewTickerClock(sim.Config().FPS)
	defer clock.Stop()

	return game.Run(ctx, sim, fe, clock)
}

func statusLine(sim *game.Sim) string {
	p := sim.Player()
	return fmt.Sprintf("%s  pos %.0f,%.0f  heading %.2f  tick %d  [q quit]",
		sim.Config().Controls, p.Pos.X, p.Pos.Y, p.Heading, sim.Tick())
}
