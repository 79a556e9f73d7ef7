package pong

import (
	"image"

	"golang.org/x/image/math/f64"

	"saber-pong/content/config"
	"saber-pong/content/utils"
)

type Ball struct {
	Pos f64.Vec2
	Vel f64.Vec2 // px per second
}

// Serve places the ball at the playfield center. dir picks the horizontal
// direction (+1 right, -1 left); the ball always starts moving down.
func (b *Ball) Serve(dir float64) {
	b.Pos = f64.Vec2{config.ScreenWidth / 2, config.ScreenHeight / 2}
	b.Vel = f64.Vec2{dir * config.BallSpeed, config.BallSpeed}
}

func (b *Ball) Advance(dt float64) {
	b.Pos[0] += b.Vel[0] * dt
	b.Pos[1] += b.Vel[1] * dt
}

func (b *Ball) Bounds() image.Rectangle {
	return utils.Bounds(b.Pos[0], b.Pos[1], config.BallSize, config.BallSize)
}
