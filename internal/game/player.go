package game

import "math"

const twoPi = 2 * math.Pi

// Direction selects forward or backward travel along the heading.
type Direction int8

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Player is the single moving entity: a point with a heading.
type Player struct {
	Pos     Vec2F
	Heading float64 // radians, kept in [0, 2π] by single-step correction
	Move    Vec2F   // per-frame displacement along Heading

	speed  float64
	minPos Vec2F
	maxPos Vec2F
	legacy bool // facing marker from Move rather than Heading
}

// NewPlayer places a player at the screen centre facing -X (heading π).
func NewPlayer(cfg Config) *Player {
	p := &Player{
		speed:  cfg.MoveSpeed,
		minPos: Vec2F{cfg.Padding, cfg.Padding},
		maxPos: Vec2F{float64(cfg.ScreenWidth) - cfg.Padding, float64(cfg.ScreenHeight) - cfg.Padding},
		legacy: cfg.Quirks.UnitInitVector,
	}
	p.SetPosition(float64(cfg.ScreenWidth/2), float64(cfg.ScreenHeight/2))
	p.Heading = math.Pi
	if cfg.Quirks.UnitInitVector {
		p.Move = Heading(p.Heading)
	} else {
		p.Move = Heading(p.Heading).Scale(p.speed)
	}
	return p
}

// SetPosition clamps each axis into the padded screen area and stores the
// result. Every position change goes through here. It reports whether
// either axis had to be clamped.
func (p *Player) SetPosition(x, y float64) (clamped bool) {
	cx := Clamp(x, p.minPos.X, p.maxPos.X)
	cy := Clamp(y, p.minPos.Y, p.maxPos.Y)
	p.Pos = Vec2F{cx, cy}
	return cx != x || cy != y
}

// Rotate turns the player by delta radians and rederives Move. The wrap is
// a single correction in the direction of travel, so |delta| must stay
// below 2π.
func (p *Player) Rotate(delta float64) {
	h := p.Heading + delta
	if delta > 0 && h > twoPi {
		h -= twoPi
	}
	if delta < 0 && h < 0 {
		h += twoPi
	}
	p.Heading = h
	p.Move = Heading(h).Scale(p.speed)
}

// MovementDelta is the displacement one step in dir would apply.
func (p *Player) MovementDelta(dir Direction) Vec2F {
	if dir == Backward {
		return p.Move.Scale(-1)
	}
	return p.Move
}

// ApplyMovement steps once along the heading.
func (p *Player) ApplyMovement(dir Direction) bool {
	next := p.Pos.Add(p.MovementDelta(dir))
	return p.SetPosition(next.X, next.Y)
}

// FacingMarker returns where the heading indicator is drawn, length pixels
// ahead of the player.
func (p *Player) FacingMarker(length float64) Vec2F {
	if p.legacy {
		return p.Pos.Add(p.Move.Scale(length))
	}
	return p.Pos.Add(Heading(p.Heading).Scale(length))
}
