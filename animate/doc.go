// Package animate drives time-based value sweeps for gauges.
//
// A Sweep is frame-driven: the host calls Advance with the current time on
// every frame and reads back the interpolated value. Nothing runs in the
// background unless the host uses Run to pump frames from a ticker.
//
// A Sweep has exactly one writer. It is not safe for concurrent use.
package animate
