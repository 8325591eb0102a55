package game

import (
	"fmt"
	"math"
	"strings"
)

// DebugReport renders the session state as plain text for pasting into a
// bug report. recent is printed oldest first; session may be empty.
func DebugReport(s *Sim, session string, recent []Event) string {
	cfg := s.Config()
	p := s.Player()

	var b strings.Builder
	fmt.Fprintf(&b, "--- Enkidu debug report ---\n")
	if session != "" {
		fmt.Fprintf(&b, "session=%s\n", session)
	}
	fmt.Fprintf(&b, "tick=%d screen=%dx%d grid=%dx%d controls=%s quirks=%s\n",
		s.Tick(), cfg.ScreenWidth, cfg.ScreenHeight, s.Grid().Size(), s.Grid().Size(), cfg.Controls, cfg.Quirks)
	fmt.Fprintf(&b, "pos=%s heading=%.4f (%.1f°) move=(%.3f,%.3f) |move|=%.3f\n",
		fmtVec(p.Pos), p.Heading, p.Heading*180/math.Pi, p.Move.X, p.Move.Y, p.Move.Len())

	w, h := s.Renderer().CellSize()
	col, row := int(p.Pos.X)/w, int(p.Pos.Y)/h
	kind, _ := s.Grid().At(col, row)
	fmt.Fprintf(&b, "cell=(%d,%d) kind=%s\n", col, row, kind)

	if len(recent) == 0 {
		b.WriteString("events: (none)\n")
	} else {
		b.WriteString("events:\n")
		for _, e := range recent {
			b.WriteString("  ")
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}

	b.WriteString("map:\n")
	b.WriteString(markPlayer(s.Grid().String(), col, row, s.Grid().Size()))
	return b.String()
}

// markPlayer replaces the player's cell in a grid dump with '@'.
func markPlayer(dump string, col, row, size int) string {
	if col < 0 || row < 0 || col >= size || row >= size {
		return dump
	}
	buf := []byte(dump)
	buf[row*(size+1)+col] = '@'
	return string(buf)
}
