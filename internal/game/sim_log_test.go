package game

import (
	"strings"
	"testing"
)

func TestSimLog_Queries(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(Event{Tick: 1, Category: "input", Key: "keys", Value: "up"})
	sl.Add(Event{Tick: 2, Category: "move", Key: "clamp", Value: "(10.0,20.0)", NumVal: 10})
	sl.Add(Event{Tick: 5, Category: "move", Key: "clamp", Value: "(10.0,22.0)", NumVal: 10})
	sl.Add(Event{Tick: 7, Category: "turn", Key: "heading", Value: "3.142 → 3.242"})

	if sl.Len() != 4 {
		t.Fatalf("len = %d", sl.Len())
	}
	if n := sl.CountCategory("move", ""); n != 2 {
		t.Fatalf("move events = %d", n)
	}
	last, ok := sl.LastOf("move", "clamp")
	if !ok || last.Tick != 5 {
		t.Fatalf("LastOf = %+v, %v", last, ok)
	}
	if _, ok := sl.LastOf("turn", "wrap"); ok {
		t.Fatal("LastOf found a missing event")
	}
	if !sl.HasEntry("move", "clamp", "22.0") || sl.HasEntry("move", "clamp", "99") {
		t.Fatal("HasEntry substring match wrong")
	}
	if got := sl.FilterTickRange(2, 5); len(got) != 2 {
		t.Fatalf("tick range = %d events", len(got))
	}
	if tail := sl.Tail(2); len(tail) != 2 || tail[1].Tick != 7 {
		t.Fatalf("tail = %+v", tail)
	}
	if sl.Tail(0) != nil || len(sl.Tail(99)) != 4 {
		t.Fatal("tail bounds wrong")
	}
}

func TestEvent_String(t *testing.T) {
	e := Event{Tick: 42, Category: "move", Key: "clamp", Value: "(10.0,128.0)"}
	got := e.String()
	if !strings.HasPrefix(got, "[T=042] move ") || !strings.HasSuffix(got, "(10.0,128.0)") {
		t.Fatalf("String = %q", got)
	}
	sl := NewSimLog(false)
	sl.Add(e)
	if sl.Format() != got+"\n" {
		t.Fatalf("Format = %q", sl.Format())
	}
	if sl.FormatRange(0, 10) != "" {
		t.Fatal("FormatRange should exclude tick 42")
	}
}

func TestMultiSink_FansOut(t *testing.T) {
	a, b := NewSimLog(false), NewSimLog(false)
	m := MultiSink{a, nil, b}
	m.Add(Event{Tick: 3, Category: "move", Key: "clamp"})
	if a.Len() != 1 || b.Len() != 1 {
		t.Fatalf("a=%d b=%d", a.Len(), b.Len())
	}
}
