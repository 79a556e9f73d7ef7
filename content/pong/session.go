// Package pong holds the match state and the per-frame rules of the game.
// The platform plugs in through Keyboard, Sound and Clock.
package pong

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"saber-pong/content/config"
)

// Session is the whole state of one game process: the active screen, the
// menu cursor, both paddles, the ball and the last winner. It is owned by a
// single goroutine and mutated in place.
type Session struct {
	Mode     config.Mode
	Selected int
	Winner   string
	MatchID  string

	Left  Paddle
	Right Paddle
	Ball  Ball

	running bool
	sound   Sound
	logger  *log.Logger
}

type Option func(*Session)

func WithSound(s Sound) Option {
	return func(sess *Session) {
		sess.sound = s
	}
}

func WithLogger(l *log.Logger) Option {
	return func(sess *Session) {
		sess.logger = l
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		Mode:    config.ModeMenu,
		Left:    NewLeftPaddle(),
		Right:   NewRightPaddle(),
		running: true,
		sound:   NopSound{},
		logger:  log.New(io.Discard),
	}
	s.Ball.Serve(1)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Running reports whether the outer loop should keep going.
func (s *Session) Running() bool {
	return s.running
}

// HandleEvent applies one discrete event to the mode machine.
func (s *Session) HandleEvent(ev Event) {
	out := Transition(s.Mode, s.Selected, ev)
	if out.Mode != s.Mode {
		s.logger.Debug("mode change", "from", s.Mode, "to", out.Mode)
	}
	s.Mode, s.Selected = out.Mode, out.Selected

	if out.NewMatch {
		s.StartMatch()
	}
	if s.Mode == config.ModeQuit {
		s.running = false
	}
}

// StartMatch clears both scores and the winner, puts the paddles back and
// serves the ball to the right.
func (s *Session) StartMatch() {
	s.Left.Reset()
	s.Right.Reset()
	s.Ball.Serve(1)
	s.Winner = ""
	s.MatchID = uuid.NewString()
	s.logger.Info("match started", "match", s.MatchID)
}
