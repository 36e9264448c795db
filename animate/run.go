package animate

import (
	"context"
	"time"
)

// DefaultFrameInterval is roughly 60 frames per second.
const DefaultFrameInterval = 16 * time.Millisecond

// FrameFunc is called once per frame with the tick time. Returning false
// ends the loop.
type FrameFunc func(now time.Time) bool

// Run calls frame on every tick of interval until frame returns false or
// ctx is done. It returns ctx.Err() when cancelled and nil otherwise.
// frame is always called from the goroutine running Run.
func Run(ctx context.Context, interval time.Duration, frame FrameFunc) error {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			// A tick and cancellation can be ready together.
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if !frame(now) {
				return nil
			}
		}
	}
}
