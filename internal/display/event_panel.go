package display

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Enkidu/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelWidth      = 320
	panelMaxEntries = 60
	panelLineHeight = 12
)

// EventPanel is a ring buffer of recent simulation events rendered beside
// the playfield. It implements game.EventSink.
type EventPanel struct {
	entries []game.Event
	head    int
	count   int
}

// NewEventPanel creates a panel with a fixed capacity.
func NewEventPanel() *EventPanel {
	return &EventPanel{
		entries: make([]game.Event, panelMaxEntries),
	}
}

// Add appends an event, overwriting the oldest when full.
func (p *EventPanel) Add(e game.Event) {
	p.entries[p.head] = e
	p.head = (p.head + 1) % panelMaxEntries
	if p.count < panelMaxEntries {
		p.count++
	}
}

// Recent returns events in chronological order (oldest first).
func (p *EventPanel) Recent() []game.Event {
	result := make([]game.Event, p.count)
	for i := 0; i < p.count; i++ {
		idx := (p.head - p.count + i + panelMaxEntries) % panelMaxEntries
		result[i] = p.entries[idx]
	}
	return result
}

// categoryColor tints the marker dot for each event category.
func categoryColor(category string) color.RGBA {
	switch category {
	case "move":
		return color.RGBA{R: 210, G: 170, B: 60, A: 255}
	case "turn":
		return color.RGBA{R: 70, G: 160, B: 210, A: 255}
	default:
		return color.RGBA{R: 140, G: 140, B: 140, A: 255}
	}
}

// Draw renders the panel at panelX, filling the full height.
func (p *EventPanel) Draw(screen *ebiten.Image, panelX, panelH int) {
	x := float32(panelX)
	vector.FillRect(screen, x, 0, panelWidth, float32(panelH), color.RGBA{R: 12, G: 12, B: 14, A: 255}, false)
	vector.StrokeLine(screen, x, 0, x, float32(panelH), 1.0, color.RGBA{R: 60, G: 60, B: 70, A: 255}, false)

	vector.FillRect(screen, x, 0, panelWidth, 16, color.RGBA{R: 24, G: 24, B: 30, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 0)

	entries := p.Recent()
	maxVisible := (panelH - 24) / panelLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 20
	for _, e := range entries {
		vector.FillRect(screen, x+5, float32(y+4), 3, 5, categoryColor(e.Category), false)
		line := fmt.Sprintf("%5d %-5s %-8s %s", e.Tick, e.Category, e.Key, e.Value)
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y)
		y += panelLineHeight
	}
}
