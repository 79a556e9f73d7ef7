package pong

import (
	"golang.org/x/image/math/f64"

	"saber-pong/content/config"
)

type recordingSound struct {
	played []Effect
}

func (r *recordingSound) Play(e Effect) {
	r.played = append(r.played, e)
}

func (r *recordingSound) count(e Effect) int {
	n := 0
	for _, p := range r.played {
		if p == e {
			n++
		}
	}
	return n
}

// playing returns a session in the middle of a match with the ball placed
// at pos moving at vel.
func playing(pos, vel f64.Vec2) (*Session, *recordingSound) {
	rec := &recordingSound{}
	s := NewSession(WithSound(rec))
	s.StartMatch()
	s.Mode = config.ModePlaying
	s.Ball.Pos = pos
	s.Ball.Vel = vel
	return s, rec
}

type fakeClock struct {
	now uint64
}

func (c *fakeClock) Ticks() uint64 {
	return c.now
}
