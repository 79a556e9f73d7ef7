package pong

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"

	"saber-pong/content/config"
)

const eps = 1e-9

func TestStepIntegratesBall(t *testing.T) {
	s, rec := playing(f64.Vec2{595, 325}, f64.Vec2{500, 500})

	s.Step(KeySet{}, 0.1)

	assert.InDelta(t, 645, s.Ball.Pos[0], eps)
	assert.InDelta(t, 375, s.Ball.Pos[1], eps)
	assert.Equal(t, f64.Vec2{500, 500}, s.Ball.Vel)
	assert.Empty(t, rec.played)
	assert.Zero(t, s.Left.Score)
	assert.Zero(t, s.Right.Score)
}

func TestStepBouncesOffWalls(t *testing.T) {
	tests := []struct {
		name  string
		pos   f64.Vec2
		vel   f64.Vec2
		wantY float64
	}{
		{"top", f64.Vec2{600, 5}, f64.Vec2{500, -500}, 0},
		{"bottom", f64.Vec2{600, 635}, f64.Vec2{500, 500}, config.ScreenHeight - config.BallSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec := playing(tt.pos, tt.vel)

			s.Step(KeySet{}, 0.02)

			assert.Equal(t, tt.wantY, s.Ball.Pos[1])
			assert.Equal(t, -tt.vel[1], s.Ball.Vel[1])
			assert.Equal(t, tt.vel[0], s.Ball.Vel[0])
			assert.Equal(t, []Effect{EffectBounce}, rec.played)
		})
	}
}

func TestStepBouncesOffPaddles(t *testing.T) {
	t.Run("left", func(t *testing.T) {
		s, rec := playing(f64.Vec2{70, 300}, f64.Vec2{-500, 0})

		s.Step(KeySet{}, 0.02)

		assert.Equal(t, s.Left.X+config.PaddleWidth, s.Ball.Pos[0])
		assert.Equal(t, float64(500), s.Ball.Vel[0])
		assert.Equal(t, []Effect{EffectBounce}, rec.played)
	})
	t.Run("right", func(t *testing.T) {
		s, rec := playing(f64.Vec2{1120, 300}, f64.Vec2{500, 0})

		s.Step(KeySet{}, 0.02)

		assert.Equal(t, s.Right.X-config.BallSize, s.Ball.Pos[0])
		assert.Equal(t, float64(-500), s.Ball.Vel[0])
		assert.Equal(t, []Effect{EffectBounce}, rec.played)
	})
	t.Run("edge contact is not a hit", func(t *testing.T) {
		s, rec := playing(f64.Vec2{70, 300}, f64.Vec2{-500, 0})

		s.Step(KeySet{}, 0.01)

		assert.InDelta(t, 65, s.Ball.Pos[0], eps)
		assert.Equal(t, float64(-500), s.Ball.Vel[0])
		assert.Empty(t, rec.played)
	})
}

func TestStepRightScores(t *testing.T) {
	s, rec := playing(f64.Vec2{-5, 300}, f64.Vec2{-500, 0})

	s.Step(KeySet{}, 0.02)

	assert.Equal(t, 1, s.Right.Score)
	assert.Zero(t, s.Left.Score)
	assert.Equal(t, f64.Vec2{600, 325}, s.Ball.Pos)
	assert.Equal(t, f64.Vec2{config.BallSpeed, config.BallSpeed}, s.Ball.Vel)
	assert.Equal(t, []Effect{EffectScore}, rec.played)
	assert.Equal(t, config.ModePlaying, s.Mode)
}

func TestStepLeftWinsMatch(t *testing.T) {
	s, rec := playing(f64.Vec2{1195, 100}, f64.Vec2{500, 500})
	s.Left.Score = 4
	s.Right.Score = 3

	s.Step(KeySet{}, 0.1)

	assert.Equal(t, 5, s.Left.Score)
	assert.Equal(t, 3, s.Right.Score)
	assert.Equal(t, config.ModeGameOver, s.Mode)
	assert.Equal(t, config.LeftWinsMessage, s.Winner)
	assert.Equal(t, f64.Vec2{-config.BallSpeed, config.BallSpeed}, s.Ball.Vel)
	assert.Equal(t, 1, rec.count(EffectScore))
}

func TestStepRightWinsMatch(t *testing.T) {
	s, _ := playing(f64.Vec2{-5, 100}, f64.Vec2{-500, 0})
	s.Right.Score = 4

	s.Step(KeySet{}, 0.02)

	assert.Equal(t, config.ModeGameOver, s.Mode)
	assert.Equal(t, config.RightWinsMessage, s.Winner)
}

func TestStepIdleOutsidePlaying(t *testing.T) {
	for _, mode := range []config.Mode{config.ModeMenu, config.ModeInstructions, config.ModeGameOver, config.ModeQuit} {
		t.Run(mode.String(), func(t *testing.T) {
			s, rec := playing(f64.Vec2{-5, 300}, f64.Vec2{-500, 0})
			s.Mode = mode
			left := s.Left

			s.Step(KeySet{KeyW: true, KeyUp: true}, 0.5)

			assert.Equal(t, f64.Vec2{-5, 300}, s.Ball.Pos)
			assert.Equal(t, left, s.Left)
			assert.Zero(t, s.Right.Score)
			assert.Empty(t, rec.played)
		})
	}
}

func TestStepMovesPaddles(t *testing.T) {
	s, _ := playing(f64.Vec2{600, 325}, f64.Vec2{0, 0})

	s.Step(KeySet{KeyW: true, KeyD: true, KeyDown: true, KeyLeft: true}, 0.1)

	assert.InDelta(t, 90, s.Left.X, eps)
	assert.InDelta(t, 240, s.Left.Y, eps)
	assert.InDelta(t, 1095, s.Right.X, eps)
	assert.InDelta(t, 320, s.Right.Y, eps)
}

func TestStepSkipsMovesPastBounds(t *testing.T) {
	s, _ := playing(f64.Vec2{600, 325}, f64.Vec2{0, 0})
	s.Left.X, s.Left.Y = 10, 10
	s.Right.X, s.Right.Y = 610, 550

	s.Step(KeySet{KeyW: true, KeyA: true, KeyDown: true, KeyLeft: true}, 0.1)

	// 40px steps would cross the edges, so nothing moves.
	assert.Equal(t, float64(10), s.Left.X)
	assert.Equal(t, float64(10), s.Left.Y)
	assert.Equal(t, float64(610), s.Right.X)
	assert.Equal(t, float64(550), s.Right.Y)
}

func TestStepOppositeKeysCancel(t *testing.T) {
	s, _ := playing(f64.Vec2{600, 325}, f64.Vec2{0, 0})
	start := s.Left

	s.Step(KeySet{KeyW: true, KeyS: true}, 0.05)

	assert.InDelta(t, start.Y, s.Left.Y, eps)
}

func TestStepInvariantsUnderRandomPlay(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	keys := []Key{KeyW, KeyS, KeyA, KeyD, KeyUp, KeyDown, KeyLeft, KeyRight}

	s, _ := playing(f64.Vec2{600, 325}, f64.Vec2{config.BallSpeed, config.BallSpeed})
	for i := 0; i < 20000; i++ {
		held := KeySet{}
		for _, k := range keys {
			held[k] = rng.Intn(2) == 0
		}
		dt := rng.Float64() * 0.05
		if rng.Intn(50) == 0 {
			dt = rng.Float64() * 2
		}
		left, right := s.Left.Score, s.Right.Score

		s.Step(held, dt)

		for _, p := range []Paddle{s.Left, s.Right} {
			minX, maxX := p.Range()
			require.GreaterOrEqual(t, p.Y, 0.0)
			require.LessOrEqual(t, p.Y, float64(config.ScreenHeight-config.PaddleHeight))
			require.GreaterOrEqual(t, p.X, minX)
			require.LessOrEqual(t, p.X, maxX)
		}
		scored := (s.Left.Score - left) + (s.Right.Score - right)
		require.LessOrEqual(t, scored, 1, "both sides scored in one step")

		if s.Mode == config.ModeGameOver {
			if s.Left.Score == config.WinningScore {
				require.Less(t, s.Right.Score, config.WinningScore)
			} else {
				require.Equal(t, config.WinningScore, s.Right.Score)
				require.Less(t, s.Left.Score, config.WinningScore)
			}
			s.StartMatch()
			s.Mode = config.ModePlaying
		}
	}
}
