package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// ControlScheme selects how arrow keys map to player movement.
type ControlScheme uint8

const (
	ControlsTank ControlScheme = iota // left/right turn, up/down drive along heading
	ControlsGrid                      // arrows move along screen axes, no rotation
)

func (c ControlScheme) String() string {
	switch c {
	case ControlsTank:
		return "tank"
	case ControlsGrid:
		return "grid"
	default:
		return fmt.Sprintf("ControlScheme(%d)", uint8(c))
	}
}

// ParseControlScheme accepts "tank" or "grid" (case-insensitive).
func ParseControlScheme(s string) (ControlScheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tank", "":
		return ControlsTank, nil
	case "grid":
		return ControlsGrid, nil
	default:
		return 0, fmt.Errorf("unknown control scheme %q (want tank or grid)", s)
	}
}

// Quirks re-enables legacy behaviours that are off by default. Each one is
// covered by tests in both positions.
type Quirks struct {
	// IndexClamp clamps pixel coordinates to [0, dim] instead of [0, dim-1].
	IndexClamp bool
	// CellBorder uses the legacy border test: right/bottom edges are never
	// drawn and the row test compares against the cell width.
	CellBorder bool
	// UnitInitVector leaves the initial movement vector at unit length
	// until the first rotation, and draws the facing marker from the raw
	// movement vector instead of the heading.
	UnitInitVector bool
}

// AllQuirks turns every compatibility quirk on.
func AllQuirks() Quirks {
	return Quirks{IndexClamp: true, CellBorder: true, UnitInitVector: true}
}

func (q Quirks) String() string {
	var on []string
	if q.IndexClamp {
		on = append(on, "index-clamp")
	}
	if q.CellBorder {
		on = append(on, "cell-border")
	}
	if q.UnitInitVector {
		on = append(on, "unit-init-vector")
	}
	if len(on) == 0 {
		return "none"
	}
	return strings.Join(on, ",")
}

// ParseQuirks reads a comma-separated list of quirk names. "all" enables
// every quirk, "" or "none" disables them.
func ParseQuirks(s string) (Quirks, error) {
	var q Quirks
	for _, name := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "", "none":
		case "all":
			q = AllQuirks()
		case "index-clamp":
			q.IndexClamp = true
		case "cell-border":
			q.CellBorder = true
		case "unit-init-vector":
			q.UnitInitVector = true
		default:
			return Quirks{}, fmt.Errorf("unknown quirk %q", name)
		}
	}
	return q, nil
}

// Config holds the fixed parameters of a session.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	Padding      float64 // player keeps this far from the screen edge
	MoveSpeed    float64 // pixels per frame
	RotationStep float64 // radians per frame
	ArrowLength  float64 // facing marker distance from the player
	DividerWidth int     // cell border thickness in pixels
	Controls     ControlScheme
	Quirks       Quirks

	// Presentation hints, unused by the simulation itself.
	WindowScale int
	FPS         int
}

// DefaultConfig returns the sample configuration: a 256x256 buffer shown
// at 3x, tank controls.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  256,
		ScreenHeight: 256,
		Padding:      10,
		MoveSpeed:    2,
		RotationStep: 0.1,
		ArrowLength:  5,
		DividerWidth: 1,
		Controls:     ControlsTank,
		WindowScale:  3,
		FPS:          60,
	}
}

// Validate checks the config against a grid of gridSize x gridSize cells.
func (c Config) Validate(gridSize int) error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	case gridSize <= 0:
		return fmt.Errorf("%w: grid size %d", ErrInvalidConfig, gridSize)
	case c.ScreenWidth%gridSize != 0 || c.ScreenHeight%gridSize != 0:
		return fmt.Errorf("%w: screen %dx%d not divisible by grid size %d",
			ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight, gridSize)
	case c.Padding < 0 || 2*c.Padding > float64(c.ScreenWidth) || 2*c.Padding > float64(c.ScreenHeight):
		return fmt.Errorf("%w: padding %.1f", ErrInvalidConfig, c.Padding)
	case c.MoveSpeed < 0:
		return fmt.Errorf("%w: move speed %.2f", ErrInvalidConfig, c.MoveSpeed)
	case c.DividerWidth < 0:
		return fmt.Errorf("%w: divider width %d", ErrInvalidConfig, c.DividerWidth)
	case c.Controls != ControlsTank && c.Controls != ControlsGrid:
		return fmt.Errorf("%w: %s", ErrInvalidConfig, c.Controls)
	}
	return nil
}
