package pong

import (
	"image"

	"saber-pong/content/config"
	"saber-pong/content/utils"
)

type Paddle struct {
	X, Y     float64
	Score    int
	Controls Controls

	startX, startY float64
	minX, maxX     float64 // horizontal range of the paddle's own half
}

// NewLeftPaddle returns the paddle on the left half, driven by W/S/A/D.
func NewLeftPaddle() Paddle {
	return newPaddle(
		config.PaddleMargin,
		0, config.HalfWidth-config.PaddleWidth,
		LeftControls,
	)
}

// NewRightPaddle returns the paddle on the right half, driven by the arrows.
func NewRightPaddle() Paddle {
	return newPaddle(
		config.ScreenWidth-config.PaddleMargin-config.PaddleWidth,
		config.HalfWidth, config.ScreenWidth-config.PaddleWidth,
		RightControls,
	)
}

func newPaddle(x, minX, maxX float64, c Controls) Paddle {
	y := float64(config.ScreenHeight/2 - config.PaddleHeight/2)
	return Paddle{
		X:        x,
		Y:        y,
		Controls: c,
		startX:   x,
		startY:   y,
		minX:     minX,
		maxX:     maxX,
	}
}

// Move shifts the paddle by (dx, dy) unless that would take it out of its
// bounds, in which case the paddle stays where it is.
func (p *Paddle) Move(dx, dy float64) bool {
	x, y := p.X+dx, p.Y+dy
	if !utils.Within(x, p.minX, p.maxX) || !utils.Within(y, 0, config.ScreenHeight-config.PaddleHeight) {
		return false
	}
	p.X, p.Y = x, y
	return true
}

// Steer applies every held control key for a frame of dt seconds.
func (p *Paddle) Steer(keys Keyboard, dt float64) {
	step := config.PaddleSpeed * dt
	if keys.Pressed(p.Controls.Up) {
		p.Move(0, -step)
	}
	if keys.Pressed(p.Controls.Down) {
		p.Move(0, step)
	}
	if keys.Pressed(p.Controls.Left) {
		p.Move(-step, 0)
	}
	if keys.Pressed(p.Controls.Right) {
		p.Move(step, 0)
	}
}

// Reset puts the paddle back at its starting position with no points.
func (p *Paddle) Reset() {
	p.X, p.Y = p.startX, p.startY
	p.Score = 0
}

func (p *Paddle) Bounds() image.Rectangle {
	return utils.Bounds(p.X, p.Y, config.PaddleWidth, config.PaddleHeight)
}

// Range returns the horizontal range the paddle may occupy.
func (p *Paddle) Range() (minX, maxX float64) {
	return p.minX, p.maxX
}
