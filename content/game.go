package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"saber-pong/content/config"
	"saber-pong/content/pong"
)

type Game struct {
	session *pong.Session
	ticker  *pong.Ticker
	keys    keyboard
	events  eventPoller
	render  *renderer
	logger  *log.Logger
}

func NewGame(assets *Assets, logger *log.Logger) *Game {
	return &Game{
		session: pong.NewSession(
			pong.WithSound(assets.Mixer),
			pong.WithLogger(logger),
		),
		ticker: pong.NewTicker(newWallClock()),
		render: &renderer{assets: assets, logger: logger},
		logger: logger,
	}
}

// Update runs once per frame: sample the frame time, feed the discrete key
// presses to the mode machine, then advance the match.
func (g *Game) Update() error {
	dt := g.ticker.Delta()

	for _, ev := range g.events.poll() {
		g.session.HandleEvent(ev)
	}

	g.session.Step(g.keys, dt)

	if !g.session.Running() {
		g.logger.Info("quit requested")
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current session into the frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.render.draw(screen, g.session)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
