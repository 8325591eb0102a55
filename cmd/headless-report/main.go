package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/Garsondee/Enkidu/internal/game"
)

type runStats struct {
	script game.Script
	frames int

	firstKeysTick  int
	firstTurnTick  int
	firstWrapTick  int
	firstClampTick int

	keyChanges int
	turns      int
	wraps      int
	clamps     int
	positions  int

	counts map[string]int
	tail   []game.Event
}

func main() {
	var frames int
	var script string
	var controls string
	var quirks string
	var mapPath string
	var pngPath string
	var scale int
	var tail int
	var verbose bool

	flag.IntVar(&frames, "frames", 120, "idle frames to run when no -script is given")
	flag.StringVar(&script, "script", "", `key script, e.g. "up+left:20,right:5,idle:3"`)
	flag.StringVar(&controls, "controls", "tank", "control scheme: tank or grid")
	flag.StringVar(&quirks, "quirks", "none", "legacy behaviours: none, all, or a comma list")
	flag.StringVar(&mapPath, "map", "", "map file; empty uses the built-in map")
	flag.StringVar(&pngPath, "png", "", "write the final frame to this PNG file")
	flag.IntVar(&scale, "scale", 1, "PNG scale factor")
	flag.IntVar(&tail, "tail", 20, "number of trailing events to include in the report")
	flag.BoolVar(&verbose, "verbose", false, "record per-tick position events")
	flag.Parse()

	if frames < 0 {
		fmt.Println("error: -frames must be >= 0")
		return
	}
	if scale <= 0 {
		fmt.Println("error: -scale must be > 0")
		return
	}
	steps, err := buildScript(script, frames)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	opts, err := harnessOptions(controls, quirks, mapPath, verbose)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	h, err := game.NewHarness(opts...)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if err := h.RunScript(steps); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Movement Report ===\n")
	fmt.Printf("script=%s frames=%d controls=%s quirks=%s\n\n", steps, steps.Frames(), controls, quirks)

	stats := collectStats(steps, h.SimLog, tail)
	fmt.Print(game.DebugReport(h.Sim, "", stats.tail))
	fmt.Println()
	printStats(os.Stdout, stats)

	if pngPath != "" {
		if err := writePNG(pngPath, h.Sim, scale); err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		fmt.Printf("\nframe written to %s (scale %d)\n", pngPath, scale)
	}
}

// buildScript parses text, or idles for frames when text is empty.
func buildScript(text string, frames int) (game.Script, error) {
	if strings.TrimSpace(text) == "" {
		return game.Script{{Frames: frames}}, nil
	}
	return game.ParseScript(text)
}

func harnessOptions(controls, quirks, mapPath string, verbose bool) ([]game.HarnessOption, error) {
	cs, err := game.ParseControlScheme(controls)
	if err != nil {
		return nil, err
	}
	q, err := game.ParseQuirks(quirks)
	if err != nil {
		return nil, err
	}
	opts := []game.HarnessOption{game.WithControls(cs), game.WithQuirks(q), game.WithVerbose(verbose)}
	if mapPath != "" {
		data, err := os.ReadFile(mapPath)
		if err != nil {
			return nil, fmt.Errorf("read map: %w", err)
		}
		grid, err := game.ParseTileGrid(string(data))
		if err != nil {
			return nil, fmt.Errorf("parse map %s: %w", mapPath, err)
		}
		opts = append(opts, game.WithGrid(grid))
	}
	return opts, nil
}

func collectStats(script game.Script, log *game.SimLog, tail int) runStats {
	entries := log.Entries()
	counts := map[string]int{}
	for _, e := range entries {
		counts[e.Category+"/"+e.Key]++
	}
	return runStats{
		script:         script,
		frames:         script.Frames(),
		firstKeysTick:  firstTick(entries, "input", "keys", ""),
		firstTurnTick:  firstTick(entries, "turn", "heading", ""),
		firstWrapTick:  firstTick(entries, "turn", "wrap", ""),
		firstClampTick: firstTick(entries, "move", "clamp", ""),
		keyChanges:     log.CountCategory("input", "keys"),
		turns:          log.CountCategory("turn", "heading"),
		wraps:          log.CountCategory("turn", "wrap"),
		clamps:         log.CountCategory("move", "clamp"),
		positions:      log.CountCategory("move", "position"),
		counts:         counts,
		tail:           log.Tail(tail),
	}
}

func firstTick(entries []game.Event, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printStats(w io.Writer, rs runStats) {
	fmt.Fprintf(w, "phase_markers: first_keys=%d first_turn=%d first_wrap=%d first_clamp=%d\n",
		rs.firstKeysTick, rs.firstTurnTick, rs.firstWrapTick, rs.firstClampTick)
	fmt.Fprintf(w, "event_totals: key_change=%d turn=%d wrap=%d clamp=%d position=%d\n",
		rs.keyChanges, rs.turns, rs.wraps, rs.clamps, rs.positions)
	fmt.Fprintf(w, "clamp_rate: %s\n", rate(rs.clamps, rs.frames))
	fmt.Fprintf(w, "by_key: %s\n", joinCounts(rs.counts))
}

// rate formats n events over frames as a percentage.
func rate(n, frames int) string {
	if frames <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", float64(n)/float64(frames)*100)
}

func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	return strings.Join(parts, " ")
}

func writePNG(path string, sim *game.Sim, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := game.WritePNG(f, sim.Pixels(), scale); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
