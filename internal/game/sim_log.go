package game

import (
	"fmt"
	"strings"
)

// Event is one thing that happened during a simulation step.
type Event struct {
	Tick     int
	Category string  // input, turn, move
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the event as a fixed-width log line.
//
//	[T=042] move      clamp            (10.0,128.0)
func (e Event) String() string {
	return fmt.Sprintf("[T=%03d] %-9s %-16s %s", e.Tick, e.Category, e.Key, e.Value)
}

// EventSink receives events as the simulation emits them.
type EventSink interface {
	Add(e Event)
}

// MultiSink fans each event out to every non-nil sink, in order.
type MultiSink []EventSink

func (m MultiSink) Add(e Event) {
	for _, s := range m {
		if s != nil {
			s.Add(e)
		}
	}
}

// SimLog collects every event of a run. It is unbounded and meant for
// headless runs and tests; the window frontend keeps a ring buffer instead.
type SimLog struct {
	entries []Event
	verbose bool
}

// NewSimLog creates a SimLog. With verbose set, per-tick position entries
// are recorded as well.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Verbose reports whether per-tick entries are wanted.
func (sl *SimLog) Verbose() bool { return sl.verbose }

// Add records an event.
func (sl *SimLog) Add(e Event) {
	sl.entries = append(sl.entries, e)
}

// Entries returns all recorded events.
func (sl *SimLog) Entries() []Event {
	return sl.entries
}

// Len returns the number of recorded events.
func (sl *SimLog) Len() int { return len(sl.entries) }

// Filter returns events matching category and key. Pass "" to match any
// value for that field.
func (sl *SimLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterTickRange returns events within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []Event {
	var out []Event
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many events match category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent event matching category+key.
func (sl *SimLog) LastOf(category, key string) (Event, bool) {
	for i := len(sl.entries) - 1; i >= 0; i-- {
		e := sl.entries[i]
		if (category == "" || e.Category == category) && (key == "" || e.Key == key) {
			return e, true
		}
	}
	return Event{}, false
}

// HasEntry reports whether any event matches category, key and a value
// substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.Filter(category, key) {
		if valueSubstr == "" || strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// Tail returns the last n events, oldest first.
func (sl *SimLog) Tail(n int) []Event {
	if n <= 0 {
		return nil
	}
	if n >= len(sl.entries) {
		return sl.entries
	}
	return sl.entries[len(sl.entries)-n:]
}

// Format returns the full log, one event per line.
func (sl *SimLog) Format() string {
	return formatEvents(sl.entries)
}

// FormatRange returns the log restricted to a tick range.
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	return formatEvents(sl.FilterTickRange(fromTick, toTick))
}

func formatEvents(events []Event) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
