package game

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Harness is a headless simulation runner for tests and the report tool.
// It drives Run with a VirtualClock and a scripted frontend, so no window
// or terminal is needed and every run is deterministic.
type Harness struct {
	Sim    *Sim
	SimLog *SimLog
	Clock  *VirtualClock

	cfg     Config
	grid    *TileGrid
	verbose bool
}

// HarnessOption configures a Harness before the Sim is built.
type HarnessOption func(*Harness)

// WithConfig replaces the whole config.
func WithConfig(cfg Config) HarnessOption {
	return func(h *Harness) { h.cfg = cfg }
}

// WithGrid sets the tile grid.
func WithGrid(g *TileGrid) HarnessOption {
	return func(h *Harness) { h.grid = g }
}

// WithControls selects the control scheme.
func WithControls(c ControlScheme) HarnessOption {
	return func(h *Harness) { h.cfg.Controls = c }
}

// WithQuirks sets the compatibility quirks.
func WithQuirks(q Quirks) HarnessOption {
	return func(h *Harness) { h.cfg.Quirks = q }
}

// WithVerbose records per-tick position events.
func WithVerbose(v bool) HarnessOption {
	return func(h *Harness) { h.verbose = v }
}

// NewHarness builds a Harness over DefaultConfig and DefaultGrid, then
// applies opts.
func NewHarness(opts ...HarnessOption) (*Harness, error) {
	h := &Harness{cfg: DefaultConfig(), Clock: &VirtualClock{}}
	for _, o := range opts {
		o(h)
	}
	sim, err := NewSim(h.cfg, h.grid)
	if err != nil {
		return nil, err
	}
	h.Sim = sim
	h.SimLog = NewSimLog(h.verbose)
	sim.SetEventSink(h.SimLog, h.verbose)
	return h, nil
}

// RunFrames steps n frames holding keys.
func (h *Harness) RunFrames(n int, keys KeySet) error {
	return h.RunScript(Script{{Keys: keys, Frames: n}})
}

// RunScript plays every step of script through Run.
func (h *Harness) RunScript(script Script) error {
	fe := &scriptFrontend{script: script}
	return Run(context.Background(), h.Sim, fe, h.Clock)
}

// ScriptStep holds a key set for a number of frames.
type ScriptStep struct {
	Keys   KeySet
	Frames int
}

// Script is a sequence of held-key steps.
type Script []ScriptStep

// Frames returns the total frame count.
func (s Script) Frames() int {
	n := 0
	for _, st := range s {
		n += st.Frames
	}
	return n
}

func (s Script) String() string {
	parts := make([]string, len(s))
	for i, st := range s {
		parts[i] = fmt.Sprintf("%s:%d", st.Keys, st.Frames)
	}
	return strings.Join(parts, ",")
}

// ParseScript reads steps of the form "up+left:20,right:5,idle:3". A step
// without a count lasts one frame.
func ParseScript(text string) (Script, error) {
	var script Script
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, count, hasCount := strings.Cut(part, ":")
		frames := 1
		if hasCount {
			n, err := strconv.Atoi(strings.TrimSpace(count))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("step %q: bad frame count", part)
			}
			frames = n
		}
		keys, err := parseKeySet(name)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", part, err)
		}
		script = append(script, ScriptStep{Keys: keys, Frames: frames})
	}
	return script, nil
}

func parseKeySet(s string) (KeySet, error) {
	var ks KeySet
	for _, name := range strings.Split(s, "+") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "idle", "none", "":
		case "up":
			ks = ks.With(KeyUp)
		case "down":
			ks = ks.With(KeyDown)
		case "left":
			ks = ks.With(KeyLeft)
		case "right":
			ks = ks.With(KeyRight)
		default:
			return 0, fmt.Errorf("unknown key %q", name)
		}
	}
	return ks, nil
}

// scriptFrontend replays a Script and asks to quit once it runs out.
type scriptFrontend struct {
	script   Script
	step     int
	used     int
	done     bool
	presents int
}

func (f *scriptFrontend) Poll() Keys {
	for f.step < len(f.script) && f.used >= f.script[f.step].Frames {
		f.step++
		f.used = 0
	}
	if f.step >= len(f.script) {
		f.done = true
		return KeySet(0)
	}
	f.used++
	return f.script[f.step].Keys
}

func (f *scriptFrontend) QuitRequested() bool { return f.done }

func (f *scriptFrontend) Present(*PixelBuffer) error {
	f.presents++
	return nil
}
