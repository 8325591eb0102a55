// Package terminal presents the simulation in a terminal with tcell. Each
// character cell shows two stacked pixels using a half-block glyph, so a
// 256x256 frame fits a 128x64 terminal at full resolution.
package terminal

import (
	"fmt"
	"io"
	"time"

	"github.com/Garsondee/Enkidu/internal/game"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Terminals report key presses, not releases, so a key counts as held for
// this long after its last press or auto-repeat.
const defaultHold = 150 * time.Millisecond

const halfBlock = '▀'

// Options configures the terminal frontend.
type Options struct {
	Hold   time.Duration // key hold window; 0 selects the default
	Status func() string // bottom status line, optional
	Log    *logrus.Entry // nil discards
}

// Frontend implements game.Frontend on a tcell screen.
type Frontend struct {
	screen tcell.Screen
	opts   Options
	log    *logrus.Entry

	events chan tcell.Event
	done   chan struct{}

	lastPress map[game.Key]time.Time
	now       func() time.Time
	quit      bool
}

// New initialises screen and starts reading its events.
func New(screen tcell.Screen, opts Options) (*Frontend, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	if opts.Hold <= 0 {
		opts.Hold = defaultHold
	}
	lg := opts.Log
	if lg == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		lg = logrus.NewEntry(l)
	}
	screen.HideCursor()
	screen.Clear()

	f := &Frontend{
		screen:    screen,
		opts:      opts,
		log:       lg,
		events:    make(chan tcell.Event, 64),
		done:      make(chan struct{}),
		lastPress: make(map[game.Key]time.Time),
		now:       time.Now,
	}
	go f.readEvents()
	return f, nil
}

// readEvents forwards screen events until the screen is finalised.
func (f *Frontend) readEvents() {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case f.events <- ev:
		case <-f.done:
			return
		}
	}
}

// Close restores the terminal.
func (f *Frontend) Close() {
	close(f.done)
	f.screen.Fini()
}

// Poll drains pending events and returns the keys held right now.
func (f *Frontend) Poll() game.Keys {
	for {
		select {
		case ev := <-f.events:
			f.handle(ev)
		default:
			return f.held()
		}
	}
}

func (f *Frontend) held() game.KeySet {
	now := f.now()
	var ks game.KeySet
	for k, t := range f.lastPress {
		if now.Sub(t) <= f.opts.Hold {
			ks = ks.With(k)
		}
	}
	return ks
}

func (f *Frontend) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
	case *tcell.EventKey:
		if k, ok := logicalKey(ev); ok {
			f.lastPress[k] = f.now()
			return
		}
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
			ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			f.log.Info("quit requested")
			f.quit = true
		}
	}
}

// logicalKey maps arrows and WASD to simulation keys.
func logicalKey(ev *tcell.EventKey) (game.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyUp, true
	case tcell.KeyDown:
		return game.KeyDown, true
	case tcell.KeyLeft:
		return game.KeyLeft, true
	case tcell.KeyRight:
		return game.KeyRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.KeyUp, true
		case 's', 'S':
			return game.KeyDown, true
		case 'a', 'A':
			return game.KeyLeft, true
		case 'd', 'D':
			return game.KeyRight, true
		}
	}
	return 0, false
}

// QuitRequested reports whether Escape, q or Ctrl-C was pressed.
func (f *Frontend) QuitRequested() bool { return f.quit }

// Present draws the frame, downsampled to fit, plus the status line.
func (f *Frontend) Present(px *game.PixelBuffer) error {
	cols, rows := f.screen.Size()
	if f.opts.Status != nil {
		rows--
	}
	if cols <= 0 || rows <= 0 {
		return nil
	}
	step := fitStep(px.W, px.H, cols, rows)
	grid := Downsample(px, step)

	f.screen.Clear()
	for cy := 0; 2*cy < len(grid) && cy < rows; cy++ {
		top := grid[2*cy]
		var bottom []game.Color
		if 2*cy+1 < len(grid) {
			bottom = grid[2*cy+1]
		}
		for cx := 0; cx < len(top) && cx < cols; cx++ {
			st := tcell.StyleDefault.Foreground(toTcell(top[cx]))
			if bottom != nil {
				st = st.Background(toTcell(bottom[cx]))
			} else {
				st = st.Background(tcell.ColorBlack)
			}
			f.screen.SetContent(cx, cy, halfBlock, nil, st)
		}
	}
	if f.opts.Status != nil {
		drawText(f.screen, 0, rows, f.opts.Status(), tcell.StyleDefault.Foreground(tcell.ColorSilver))
	}
	f.screen.Show()
	return nil
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, st)
		x++
	}
}

func toTcell(c game.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}
