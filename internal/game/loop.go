package game

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrClockStopped is returned by a FrameClock that will deliver no more
// frames. Run treats it as a clean exit.
var ErrClockStopped = errors.New("frame clock stopped")

// Frontend is the windowing side of the loop: it samples input, carries
// the quit request, and presents finished frames.
type Frontend interface {
	// Poll samples held keys for the coming frame.
	Poll() Keys
	// QuitRequested is checked once per frame, after Poll.
	QuitRequested() bool
	// Present shows a finished frame. The buffer must not be modified.
	Present(pixels *PixelBuffer) error
}

// FrameClock paces the loop. Wait blocks until the next frame is due.
type FrameClock interface {
	Wait(ctx context.Context) error
}

// Run drives sim until the frontend asks to quit, ctx is cancelled, or the
// clock stops. Each frame polls, steps, presents, then waits.
func Run(ctx context.Context, sim *Sim, fe Frontend, clock FrameClock) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		keys := fe.Poll()
		if fe.QuitRequested() {
			return nil
		}
		sim.Step(keys)
		if err := fe.Present(sim.Pixels()); err != nil {
			return fmt.Errorf("present frame %d: %w", sim.Tick(), err)
		}
		if err := clock.Wait(ctx); err != nil {
			if errors.Is(err, ErrClockStopped) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}

// TickerClock paces frames with a wall-clock ticker.
type TickerClock struct {
	t *time.Ticker
}

// NewTickerClock ticks fps times a second. fps <= 0 selects 60.
func NewTickerClock(fps int) *TickerClock {
	if fps <= 0 {
		fps = 60
	}
	return &TickerClock{t: time.NewTicker(time.Second / time.Duration(fps))}
}

func (c *TickerClock) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.t.C:
		return nil
	}
}

// Stop releases the ticker.
func (c *TickerClock) Stop() { c.t.Stop() }

// VirtualClock advances instantly and counts frames. With Limit > 0 it
// stops after that many frames.
type VirtualClock struct {
	Frames int
	Limit  int
}

func (c *VirtualClock) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.Frames++
	if c.Limit > 0 && c.Frames >= c.Limit {
		return ErrClockStopped
	}
	return nil
}
