package display

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/Garsondee/Enkidu/internal/game"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

// Options configures the window frontend.
type Options struct {
	Session       string        // shown in debug reports and screenshot names
	Log           *logrus.Entry // nil discards
	ScreenshotDir string        // "" writes to the working directory
}

// Game adapts a game.Sim to ebiten. Ebiten owns the frame clock: every
// Update is one simulation step, paced by vsync.
type Game struct {
	sim   *game.Sim
	cfg   game.Config
	panel *EventPanel
	opts  Options
	log   *logrus.Entry

	frame   *ebiten.Image // W x H, rewritten every Draw
	scale   int
	showHUD bool
	quit    bool

	pressed     pressedFunc
	justPressed pressedFunc
	copyToClip  func(string) error
	screenshots int
}

// New wraps sim. Route the sim's events to Panel to show them on screen.
func New(sim *game.Sim, opts Options) *Game {
	cfg := sim.Config()
	scale := cfg.WindowScale
	if scale <= 0 {
		scale = 1
	}
	lg := opts.Log
	if lg == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		lg = logrus.NewEntry(l)
	}
	return &Game{
		sim:         sim,
		cfg:         cfg,
		panel:       NewEventPanel(),
		opts:        opts,
		log:         lg,
		scale:       scale,
		showHUD:     true,
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
		copyToClip:  clipboard.WriteAll,
	}
}

// Panel returns the on-screen event panel, for use as an event sink.
func (g *Game) Panel() *EventPanel { return g.panel }

// WindowSize is the outer size the window should open at.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}

// RequestQuit makes the next Update end the run.
func (g *Game) RequestQuit() { g.quit = true }

func (g *Game) Update() error {
	if g.quit || g.justPressed(ebiten.KeyEscape) {
		g.log.Info("quit requested")
		return ebiten.Termination
	}
	if g.justPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if g.justPressed(ebiten.KeyF2) {
		g.copyReport()
	}
	if g.justPressed(ebiten.KeyF12) {
		g.saveScreenshot()
	}

	g.sim.Step(sampleKeys(g.pressed))
	return nil
}

// copyReport puts a debug report on the clipboard. Failure is logged only.
func (g *Game) copyReport() {
	report := game.DebugReport(g.sim, g.opts.Session, g.panel.Recent())
	if err := g.copyToClip(report); err != nil {
		g.log.WithError(err).Warn("copy debug report to clipboard")
		return
	}
	g.log.WithField("tick", g.sim.Tick()).Info("debug report copied to clipboard")
}

// saveScreenshot writes the current frame as a PNG at window scale.
func (g *Game) saveScreenshot() string {
	g.screenshots++
	name := fmt.Sprintf("enkidu-%s-%05d-%d.png", shortID(g.opts.Session), g.sim.Tick(), g.screenshots)
	path := filepath.Join(g.opts.ScreenshotDir, name)
	f, err := os.Create(path)
	if err != nil {
		g.log.WithError(err).Warn("create screenshot")
		return ""
	}
	defer f.Close()
	if err := game.WritePNG(f, g.sim.Pixels(), g.scale); err != nil {
		g.log.WithError(err).Warn("write screenshot")
		return ""
	}
	g.log.WithField("path", path).Info("screenshot saved")
	return path
}

func shortID(s string) string {
	if s == "" {
		return "local"
	}
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 8, B: 10, A: 255})

	px := g.sim.Pixels()
	if g.frame == nil {
		g.frame = ebiten.NewImage(px.W, px.H)
	}
	g.frame.WritePixels(px.Bytes())

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.frame, &op)

	_, h := g.Layout(0, 0)
	g.panel.Draw(screen, px.W*g.scale, h)

	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	p := g.sim.Player()
	ebitenutil.DebugPrintAt(screen, g.hudText(p), 6, 4)
}

func (g *Game) hudText(p game.Player) string {
	return fmt.Sprintf("%s controls  pos %.0f,%.0f  heading %.2f\nF2 copy report  F12 screenshot  H hide  Esc quit",
		g.cfg.Controls, p.Pos.X, p.Pos.Y, p.Heading)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.ScreenWidth*g.scale + panelWidth, g.cfg.ScreenHeight * g.scale
}
