package pong

import (
	"saber-pong/content/config"
	"saber-pong/content/utils"
)

// Step advances the match by dt seconds. It does nothing outside of
// ModePlaying.
func (s *Session) Step(keys Keyboard, dt float64) {
	if s.Mode != config.ModePlaying {
		return
	}

	s.Left.Steer(keys, dt)
	s.Right.Steer(keys, dt)

	s.Ball.Advance(dt)

	s.bounceWalls()
	s.bouncePaddles()
	s.checkScore()
}

func (s *Session) bounceWalls() {
	b := &s.Ball
	if b.Pos[1] <= 0 {
		b.Pos[1] = 0
		b.Vel[1] = -b.Vel[1]
		s.sound.Play(EffectBounce)
	} else if b.Pos[1] >= config.ScreenHeight-config.BallSize {
		b.Pos[1] = config.ScreenHeight - config.BallSize
		b.Vel[1] = -b.Vel[1]
		s.sound.Play(EffectBounce)
	}
}

func (s *Session) bouncePaddles() {
	b := &s.Ball
	ball := b.Bounds()
	if utils.Overlaps(ball, s.Left.Bounds()) {
		b.Pos[0] = s.Left.X + config.PaddleWidth
		b.Vel[0] = -b.Vel[0]
		s.sound.Play(EffectBounce)
	} else if utils.Overlaps(ball, s.Right.Bounds()) {
		b.Pos[0] = s.Right.X - config.BallSize
		b.Vel[0] = -b.Vel[0]
		s.sound.Play(EffectBounce)
	}
}

func (s *Session) checkScore() {
	x := s.Ball.Pos[0]
	switch {
	case x+config.BallSize < 0:
		s.point(&s.Right, 1, config.RightWinsMessage)
	case x > config.ScreenWidth:
		s.point(&s.Left, -1, config.LeftWinsMessage)
	}
}

// point credits scorer, serves towards serveDir and ends the match once the
// scorer reaches the winning score.
func (s *Session) point(scorer *Paddle, serveDir float64, winMessage string) {
	s.sound.Play(EffectScore)
	scorer.Score++
	s.logger.Info("point", "match", s.MatchID, "left", s.Left.Score, "right", s.Right.Score)
	s.Ball.Serve(serveDir)

	if scorer.Score >= config.WinningScore {
		s.Mode = config.ModeGameOver
		s.Winner = winMessage
		s.logger.Info("match over", "match", s.MatchID, "winner", winMessage)
	}
}
