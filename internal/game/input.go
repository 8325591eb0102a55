package game

import "strings"

// Key is a logical key the simulation understands.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	keyCount // sentinel
)

var keyNames = [keyCount]string{"up", "down", "left", "right"}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "?"
}

// Keys is a snapshot of which logical keys are held this frame.
type Keys interface {
	IsKeyDown(k Key) bool
}

// KeySet is a Keys value backed by a bitmask.
type KeySet uint8

// NewKeySet returns a set holding the given keys.
func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s |= 1 << k
	}
	return s
}

func (s KeySet) IsKeyDown(k Key) bool { return s&(1<<k) != 0 }

// With returns s plus k.
func (s KeySet) With(k Key) KeySet { return s | 1<<k }

// String lists held keys joined by '+', or "idle".
func (s KeySet) String() string {
	var held []string
	for k := Key(0); k < keyCount; k++ {
		if s.IsKeyDown(k) {
			held = append(held, k.String())
		}
	}
	if len(held) == 0 {
		return "idle"
	}
	return strings.Join(held, "+")
}

// Snapshot copies any Keys into a KeySet.
func Snapshot(keys Keys) KeySet {
	if ks, ok := keys.(KeySet); ok {
		return ks
	}
	var s KeySet
	if keys == nil {
		return s
	}
	for k := Key(0); k < keyCount; k++ {
		if keys.IsKeyDown(k) {
			s = s.With(k)
		}
	}
	return s
}

// InputResult summarizes what one frame of input did to the player.
type InputResult struct {
	Rotated bool
	Clamped bool
}

// ApplyInput maps held keys to player changes for one frame. Rotation is
// applied first; translation deltas are summed and committed with a single
// SetPosition.
func ApplyInput(p *Player, keys Keys, cfg Config) InputResult {
	var res InputResult
	next := p.Pos

	switch cfg.Controls {
	case ControlsGrid:
		if keys.IsKeyDown(KeyUp) {
			next.Y -= cfg.MoveSpeed
		}
		if keys.IsKeyDown(KeyDown) {
			next.Y += cfg.MoveSpeed
		}
		if keys.IsKeyDown(KeyLeft) {
			next.X -= cfg.MoveSpeed
		}
		if keys.IsKeyDown(KeyRight) {
			next.X += cfg.MoveSpeed
		}
	default:
		if keys.IsKeyDown(KeyLeft) {
			p.Rotate(-cfg.RotationStep)
			res.Rotated = true
		}
		if keys.IsKeyDown(KeyRight) {
			p.Rotate(cfg.RotationStep)
			res.Rotated = true
		}
		if keys.IsKeyDown(KeyUp) {
			next = next.Add(p.MovementDelta(Forward))
		}
		if keys.IsKeyDown(KeyDown) {
			next = next.Add(p.MovementDelta(Backward))
		}
	}

	res.Clamped = p.SetPosition(next.X, next.Y)
	return res
}
