package game

import (
	"math"
	"testing"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript("up+left:20, right:5,idle:3,down")
	if err != nil {
		t.Fatal(err)
	}
	want := Script{
		{NewKeySet(KeyUp, KeyLeft), 20},
		{NewKeySet(KeyRight), 5},
		{0, 3},
		{NewKeySet(KeyDown), 1},
	}
	if len(s) != len(want) {
		t.Fatalf("got %d steps, want %d", len(s), len(want))
	}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("step %d = %+v, want %+v", i, s[i], want[i])
		}
	}
	if s.Frames() != 29 {
		t.Fatalf("frames = %d", s.Frames())
	}
	if s.String() != "up+left:20,right:5,idle:3,down:1" {
		t.Fatalf("String = %q", s.String())
	}
}

func TestParseScript_Errors(t *testing.T) {
	for _, bad := range []string{"jump:3", "up:x", "up:-1", "up+fly"} {
		if _, err := ParseScript(bad); err == nil {
			t.Errorf("ParseScript(%q) should fail", bad)
		}
	}
}

func TestHarness_ScriptFrameCount(t *testing.T) {
	h, err := NewHarness()
	if err != nil {
		t.Fatal(err)
	}
	s, _ := ParseScript("right:10,idle:4,up:6")
	if err := h.RunScript(s); err != nil {
		t.Fatal(err)
	}
	if h.Sim.Tick() != 20 || h.Clock.Frames != 20 {
		t.Fatalf("tick=%d frames=%d, want 20", h.Sim.Tick(), h.Clock.Frames)
	}
	p := h.Sim.Player()
	if math.Abs(p.Heading-(math.Pi+1)) > 1e-9 {
		t.Fatalf("heading = %v", p.Heading)
	}
	want := Vec2F{128, 128}.Add(Heading(math.Pi + 1).Scale(12))
	if !p.Pos.Eq(want, 1e-9) {
		t.Fatalf("pos = %v, want %v", p.Pos, want)
	}
}

func TestHarness_EmptyScriptDoesNothing(t *testing.T) {
	h, err := NewHarness()
	if err != nil {
		t.Fatal(err)
	}
	if err := h.RunScript(nil); err != nil {
		t.Fatal(err)
	}
	if h.Sim.Tick() != 0 {
		t.Fatalf("tick = %d", h.Sim.Tick())
	}
}

// Walls are not solid: the player only stops at the screen padding.
func TestHarness_DriveToEveryEdge(t *testing.T) {
	h, err := NewHarness(WithControls(ControlsGrid), WithVerbose(true))
	if err != nil {
		t.Fatal(err)
	}
	s, _ := ParseScript("up+left:100,down+right:200")
	if err := h.RunScript(s); err != nil {
		t.Fatal(err)
	}
	if p := h.Sim.Player(); p.Pos != (Vec2F{246, 246}) {
		t.Fatalf("pos = %v, want (246,246)", p.Pos)
	}
	last, ok := h.SimLog.LastOf("move", "clamp")
	if !ok || last.Value != "(246.0,246.0)" {
		t.Fatalf("last clamp = %+v", last)
	}
	if !h.SimLog.HasEntry("move", "clamp", "(10.0,10.0)") {
		t.Fatal("never clamped at the top-left corner")
	}
}

// With the unit-init quirk the first forward step is one pixel and later
// ones two.
func TestHarness_LegacyInitSpeed(t *testing.T) {
	h, err := NewHarness(WithQuirks(Quirks{UnitInitVector: true}))
	if err != nil {
		t.Fatal(err)
	}
	if err := h.RunFrames(1, NewKeySet(KeyUp)); err != nil {
		t.Fatal(err)
	}
	if p := h.Sim.Player(); !p.Pos.Eq(Vec2F{127, 128}, 1e-9) {
		t.Fatalf("legacy first step: pos = %v, want (127,128)", p.Pos)
	}

	h2, err := NewHarness()
	if err != nil {
		t.Fatal(err)
	}
	if err := h2.RunFrames(1, NewKeySet(KeyUp)); err != nil {
		t.Fatal(err)
	}
	if p := h2.Sim.Player(); !p.Pos.Eq(Vec2F{126, 128}, 1e-9) {
		t.Fatalf("consistent first step: pos = %v, want (126,128)", p.Pos)
	}
}
