package main

import "time"

// wallClock counts milliseconds on the monotonic clock since it was created.
type wallClock struct {
	start time.Time
}

func newWallClock() wallClock {
	return wallClock{start: time.Now()}
}

func (c wallClock) Ticks() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}
