package core

import (
	"context"
	"time"
)

// Clock reports session time in milliseconds since the session started.
type Clock interface {
	NowMillis() int64
	// Tick is called once after every simulated frame.
	Tick()
}

// FrameClock derives time from the number of simulated frames, which keeps
// runs deterministic and freezes timers while the game is paused.
type FrameClock struct {
	tickRate int
	frames   int64
}

// NewFrameClock creates a frame clock for the given tick rate.
func NewFrameClock(tickRate int) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{tickRate: tickRate}
}

// NowMillis implements Clock.
func (c *FrameClock) NowMillis() int64 {
	return c.frames * 1000 / int64(c.tickRate)
}

// Tick implements Clock.
func (c *FrameClock) Tick() {
	c.frames++
}

// WallClock measures real elapsed time.
type WallClock struct {
	start time.Time
	now   func() time.Time
}

// NewWallClock starts a wall clock at the current instant.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now(), now: time.Now}
}

// NowMillis implements Clock.
func (c *WallClock) NowMillis() int64 {
	return c.now().Sub(c.start).Milliseconds()
}

// Tick implements Clock.
func (c *WallClock) Tick() {}

// ManualClock is set explicitly, for tests and replays.
type ManualClock struct {
	Millis int64
	// Step is added on every Tick.
	Step int64
}

// NowMillis implements Clock.
func (c *ManualClock) NowMillis() int64 {
	return c.Millis
}

// Tick implements Clock.
func (c *ManualClock) Tick() {
	c.Millis += c.Step
}

// Set jumps to an absolute time.
func (c *ManualClock) Set(ms int64) {
	c.Millis = ms
}

// Pacer caps the frame rate of a loop.
type Pacer interface {
	// Wait blocks until the next frame is due or ctx is done.
	Wait(ctx context.Context) error
}

// RealtimePacer sleeps until the next tick of a fixed-rate ticker.
type RealtimePacer struct {
	ticker *time.Ticker
}

// NewRealtimePacer creates a pacer for the target frame rate.
func NewRealtimePacer(fps int) *RealtimePacer {
	if fps <= 0 {
		fps = 60
	}
	return &RealtimePacer{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

// Wait implements Pacer.
func (p *RealtimePacer) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

// Stop releases the underlying ticker.
func (p *RealtimePacer) Stop() {
	p.ticker.Stop()
}

// NoPacer runs frames back to back.
type NoPacer struct{}

// Wait implements Pacer.
func (NoPacer) Wait(ctx context.Context) error {
	return ctx.Err()
}
