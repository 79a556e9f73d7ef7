package pong

// Clock is a monotonic millisecond tick counter.
type Clock interface {
	Ticks() uint64
}

// Ticker turns clock ticks into per-frame delta times.
type Ticker struct {
	clock Clock
	last  uint64
}

func NewTicker(c Clock) *Ticker {
	return &Ticker{clock: c, last: c.Ticks()}
}

// Delta returns the seconds elapsed since the previous call (or since the
// ticker was created).
func (t *Ticker) Delta() float64 {
	now := t.clock.Ticks()
	dt := float64(now-t.last) / 1000
	t.last = now
	return dt
}
