package game

import "fmt"

// Sim is the simulation context: the grid, the player, and the pixel
// buffer they are rendered into. It has no windowing dependency; a
// frontend feeds it key snapshots and presents Pixels after each Step.
type Sim struct {
	cfg      Config
	grid     *TileGrid
	player   *Player
	pixels   *PixelBuffer
	renderer *Renderer
	tick     int

	sink     EventSink
	verbose  bool
	prevKeys KeySet
}

// NewSim validates cfg against grid and builds a session with the player
// at its start pose. A nil grid selects DefaultGrid.
func NewSim(cfg Config, grid *TileGrid) (*Sim, error) {
	if grid == nil {
		grid = DefaultGrid()
	}
	if err := cfg.Validate(grid.Size()); err != nil {
		return nil, err
	}
	s := &Sim{
		cfg:    cfg,
		grid:   grid,
		player: NewPlayer(cfg),
		pixels: NewPixelBuffer(cfg.ScreenWidth, cfg.ScreenHeight),
	}
	s.renderer = NewRenderer(cfg, grid, s.player, s.pixels)
	s.renderer.Render()
	return s, nil
}

// SetEventSink directs step events to sink. Per-tick position events are
// only emitted when verbose is set.
func (s *Sim) SetEventSink(sink EventSink, verbose bool) {
	s.sink = sink
	s.verbose = verbose
}

// Step advances one frame: clear, apply input, render.
func (s *Sim) Step(keys Keys) {
	s.tick++
	held := Snapshot(keys)

	s.pixels.Clear()
	before := *s.player
	res := ApplyInput(s.player, held, s.cfg)
	s.renderer.Render()

	s.emit(held, before, res)
	s.prevKeys = held
}

func (s *Sim) emit(held KeySet, before Player, res InputResult) {
	if s.sink == nil {
		return
	}
	p := s.player
	if held != s.prevKeys {
		s.sink.Add(Event{Tick: s.tick, Category: "input", Key: "keys", Value: held.String(), NumVal: float64(held)})
	}
	if res.Rotated && p.Heading != before.Heading {
		s.sink.Add(Event{Tick: s.tick, Category: "turn", Key: "heading",
			Value: fmt.Sprintf("%.3f → %.3f", before.Heading, p.Heading), NumVal: p.Heading})
		if wrapped(before.Heading, p.Heading) {
			s.sink.Add(Event{Tick: s.tick, Category: "turn", Key: "wrap",
				Value: fmt.Sprintf("%.3f", p.Heading), NumVal: p.Heading})
		}
	}
	if res.Clamped {
		s.sink.Add(Event{Tick: s.tick, Category: "move", Key: "clamp",
			Value: fmtVec(p.Pos), NumVal: p.Pos.X})
	}
	if s.verbose && p.Pos != before.Pos {
		s.sink.Add(Event{Tick: s.tick, Category: "move", Key: "position",
			Value: fmtVec(p.Pos), NumVal: p.Pos.Sub(before.Pos).Len()})
	}
}

// wrapped reports a heading change larger than any single step, which only
// happens when Rotate corrected across 0/2π.
func wrapped(from, to float64) bool {
	d := to - from
	return d > twoPi/2 || d < -twoPi/2
}

func fmtVec(v Vec2F) string {
	return fmt.Sprintf("(%.1f,%.1f)", v.X, v.Y)
}

// Pixels returns the frame rendered by the last Step. Read only.
func (s *Sim) Pixels() *PixelBuffer { return s.pixels }

// Player returns a copy of the current player state.
func (s *Sim) Player() Player { return *s.player }

// Grid returns the tile grid.
func (s *Sim) Grid() *TileGrid { return s.grid }

// Config returns the session config.
func (s *Sim) Config() Config { return s.cfg }

// Tick returns the number of steps taken.
func (s *Sim) Tick() int { return s.tick }

// Renderer exposes the renderer for callers that draw individual layers.
func (s *Sim) Renderer() *Renderer { return s.renderer }
