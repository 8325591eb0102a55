package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/Garsondee/Enkidu/internal/game"
	"github.com/gdamore/tcell/v2"
)

func newTestFrontend(t *testing.T, cols, rows int, status func() string) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	f, err := New(screen, Options{Status: status})
	if err != nil {
		t.Fatal(err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(f.Close)
	return f, screen
}

// fixedClock lets tests move time by hand.
type fixedClock struct{ t time.Time }

func (c *fixedClock) now() time.Time          { return c.t }
func (c *fixedClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }
func runeKey(r rune) *tcell.EventKey  { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestHandle_HoldWindow(t *testing.T) {
	f, _ := newTestFrontend(t, 80, 40, nil)
	clk := &fixedClock{t: time.Unix(1000, 0)}
	f.now = clk.now

	f.handle(key(tcell.KeyUp))
	f.handle(runeKey('a'))
	if got := f.held(); got != game.NewKeySet(game.KeyUp, game.KeyLeft) {
		t.Fatalf("held = %s", got)
	}

	clk.advance(defaultHold / 2)
	f.handle(key(tcell.KeyUp)) // auto-repeat refreshes Up only
	clk.advance(defaultHold/2 + time.Millisecond)
	if got := f.held(); got != game.NewKeySet(game.KeyUp) {
		t.Fatalf("after partial expiry held = %s", got)
	}

	clk.advance(defaultHold)
	if got := f.held(); got != 0 {
		t.Fatalf("after full expiry held = %s", got)
	}
}

func TestHandle_QuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{key(tcell.KeyEscape), key(tcell.KeyCtrlC), runeKey('q')} {
		f, _ := newTestFrontend(t, 80, 40, nil)
		f.handle(ev)
		if !f.QuitRequested() {
			t.Errorf("%v did not request quit", ev.Name())
		}
	}

	f, _ := newTestFrontend(t, 80, 40, nil)
	f.handle(runeKey('x'))
	if f.QuitRequested() {
		t.Fatal("unbound key requested quit")
	}
}

func TestPoll_InjectedKeyReachesSim(t *testing.T) {
	f, screen := newTestFrontend(t, 80, 40, nil)
	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if game.Snapshot(f.Poll()).IsKeyDown(game.KeyRight) {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("injected key never showed up in Poll")
}

func TestFitStep(t *testing.T) {
	cases := []struct {
		w, h, cols, rows int
		want             int
	}{
		{256, 256, 128, 64, 2},
		{256, 256, 256, 128, 1},
		{256, 256, 80, 24, 6},
		{256, 256, 300, 10, 13},
		{4, 4, 1000, 1000, 1},
	}
	for _, c := range cases {
		if got := fitStep(c.w, c.h, c.cols, c.rows); got != c.want {
			t.Errorf("fitStep(%d,%d,%d,%d) = %d, want %d", c.w, c.h, c.cols, c.rows, got, c.want)
		}
	}
}

func TestDownsample_KeepsBrightestPixel(t *testing.T) {
	px := game.NewPixelBuffer(5, 5)
	for i := range px.Pix {
		px.Pix[i] = game.RGB(0x15, 0x15, 0x15)
	}
	px.Pix[3*5+3] = game.ColorWhite

	got := Downsample(px, 2)
	if len(got) != 3 || len(got[0]) != 3 {
		t.Fatalf("shape = %dx%d, want 3x3", len(got[0]), len(got))
	}
	if got[1][1] != game.ColorWhite {
		t.Fatalf("block (1,1) = %#x, want white", uint32(got[1][1]))
	}
	if got[0][0] != game.RGB(0x15, 0x15, 0x15) || got[2][2] != game.RGB(0x15, 0x15, 0x15) {
		t.Fatal("untouched blocks changed colour")
	}
}

func TestPresent_HalfBlocksAndStatus(t *testing.T) {
	f, screen := newTestFrontend(t, 128, 65, func() string { return "tank pos 128,128" })
	sim, err := game.NewSim(game.DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Present(sim.Pixels()); err != nil {
		t.Fatal(err)
	}

	// At step 2 the player pixel (128,128) pools into block (64,64), the top
	// half of character cell (64,32).
	r, _, st, _ := screen.GetContent(64, 32)
	if r != halfBlock {
		t.Fatalf("glyph = %q", r)
	}
	fg, _, _ := st.Decompose()
	if fg != tcell.NewRGBColor(0xff, 0xff, 0xff) {
		t.Fatalf("player cell fg = %v", fg)
	}

	var line strings.Builder
	for x := 0; x < 16; x++ {
		r, _, _, _ := screen.GetContent(x, 64)
		line.WriteRune(r)
	}
	if got := line.String(); got != "tank pos 128,128" {
		t.Fatalf("status line = %q", got)
	}
}

func TestPresent_TinyScreenIsNoop(t *testing.T) {
	f, _ := newTestFrontend(t, 0, 0, nil)
	if err := f.Present(game.NewPixelBuffer(8, 8)); err != nil {
		t.Fatal(err)
	}
}
