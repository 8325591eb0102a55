package game

import (
	"math"
	"testing"
)

func TestKeySet(t *testing.T) {
	ks := NewKeySet(KeyUp, KeyLeft)
	if !ks.IsKeyDown(KeyUp) || !ks.IsKeyDown(KeyLeft) || ks.IsKeyDown(KeyDown) || ks.IsKeyDown(KeyRight) {
		t.Fatalf("unexpected key set %s", ks)
	}
	if ks.String() != "up+left" {
		t.Fatalf("String = %q", ks.String())
	}
	if KeySet(0).String() != "idle" {
		t.Fatalf("empty String = %q", KeySet(0).String())
	}
}

type mapKeys map[Key]bool

func (m mapKeys) IsKeyDown(k Key) bool { return m[k] }

func TestSnapshot_CopiesAnyKeys(t *testing.T) {
	if got := Snapshot(mapKeys{KeyRight: true, KeyDown: true}); got != NewKeySet(KeyDown, KeyRight) {
		t.Fatalf("snapshot = %s", got)
	}
	if got := Snapshot(nil); got != 0 {
		t.Fatalf("nil snapshot = %s", got)
	}
}

func gridConfig() Config {
	cfg := DefaultConfig()
	cfg.Controls = ControlsGrid
	return cfg
}

func TestApplyInput_GridDiagonal(t *testing.T) {
	cfg := gridConfig()
	p := NewPlayer(cfg)
	ApplyInput(p, NewKeySet(KeyUp, KeyLeft), cfg)
	if p.Pos != (Vec2F{126, 126}) {
		t.Fatalf("pos = %v, want (126,126)", p.Pos)
	}
	if p.Heading != math.Pi {
		t.Fatalf("grid controls rotated the player: %v", p.Heading)
	}
}

func TestApplyInput_GridOppositeKeysCancel(t *testing.T) {
	cfg := gridConfig()
	p := NewPlayer(cfg)
	ApplyInput(p, NewKeySet(KeyUp, KeyDown, KeyLeft, KeyRight), cfg)
	if p.Pos != (Vec2F{128, 128}) {
		t.Fatalf("pos = %v, want unchanged", p.Pos)
	}
}

func TestApplyInput_GridClampsAtEdge(t *testing.T) {
	cfg := gridConfig()
	p := NewPlayer(cfg)
	p.SetPosition(11, 11)
	res := ApplyInput(p, NewKeySet(KeyUp, KeyLeft), cfg)
	if p.Pos != (Vec2F{10, 10}) || !res.Clamped {
		t.Fatalf("pos = %v clamped=%v, want (10,10) clamped", p.Pos, res.Clamped)
	}
}

func TestApplyInput_TankForwardBackward(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg)
	ApplyInput(p, NewKeySet(KeyUp), cfg)
	if !p.Pos.Eq(Vec2F{126, 128}, eps) {
		t.Fatalf("forward: pos = %v", p.Pos)
	}
	ApplyInput(p, NewKeySet(KeyDown), cfg)
	if !p.Pos.Eq(Vec2F{128, 128}, eps) {
		t.Fatalf("backward: pos = %v", p.Pos)
	}
	ApplyInput(p, NewKeySet(KeyUp, KeyDown), cfg)
	if !p.Pos.Eq(Vec2F{128, 128}, eps) {
		t.Fatalf("up+down should cancel: pos = %v", p.Pos)
	}
}

func TestApplyInput_TankRotatesBeforeMoving(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg)
	res := ApplyInput(p, NewKeySet(KeyRight, KeyUp), cfg)
	if !res.Rotated {
		t.Fatal("expected rotation")
	}
	want := Vec2F{128, 128}.Add(Heading(math.Pi + 0.1).Scale(2))
	if !p.Pos.Eq(want, eps) {
		t.Fatalf("pos = %v, want %v (move along the new heading)", p.Pos, want)
	}
}

func TestApplyInput_TankLeftRightCancel(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg)
	ApplyInput(p, NewKeySet(KeyLeft, KeyRight), cfg)
	if math.Abs(p.Heading-math.Pi) > eps {
		t.Fatalf("heading = %v, want π", p.Heading)
	}
}

func TestApplyInput_TankLeftTurnsNegative(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg)
	ApplyInput(p, NewKeySet(KeyLeft), cfg)
	if math.Abs(p.Heading-(math.Pi-0.1)) > eps {
		t.Fatalf("heading = %v, want π-0.1", p.Heading)
	}
}

func TestParseControlScheme(t *testing.T) {
	for in, want := range map[string]ControlScheme{"tank": ControlsTank, "GRID": ControlsGrid, "": ControlsTank} {
		got, err := ParseControlScheme(in)
		if err != nil || got != want {
			t.Fatalf("ParseControlScheme(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseControlScheme("mouse"); err == nil {
		t.Fatal("expected error for unknown scheme")
	}
}

func TestParseQuirks(t *testing.T) {
	q, err := ParseQuirks("index-clamp, cell-border")
	if err != nil || !q.IndexClamp || !q.CellBorder || q.UnitInitVector {
		t.Fatalf("got %+v, %v", q, err)
	}
	if q, _ := ParseQuirks("all"); q != AllQuirks() {
		t.Fatalf("all = %+v", q)
	}
	if q, _ := ParseQuirks("none"); q != (Quirks{}) || q.String() != "none" {
		t.Fatalf("none = %+v", q)
	}
	if _, err := ParseQuirks("warp"); err == nil {
		t.Fatal("expected error for unknown quirk")
	}
}
