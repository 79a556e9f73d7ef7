package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"saber-pong/content/pong"
)

var keymap = map[ebiten.Key]pong.Key{
	ebiten.KeyW:           pong.KeyW,
	ebiten.KeyS:           pong.KeyS,
	ebiten.KeyA:           pong.KeyA,
	ebiten.KeyD:           pong.KeyD,
	ebiten.KeyArrowUp:     pong.KeyUp,
	ebiten.KeyArrowDown:   pong.KeyDown,
	ebiten.KeyArrowLeft:   pong.KeyLeft,
	ebiten.KeyArrowRight:  pong.KeyRight,
	ebiten.KeyEnter:       pong.KeyEnter,
	ebiten.KeyNumpadEnter: pong.KeyEnter,
	ebiten.KeyEscape:      pong.KeyEscape,
}

// platformKeys lists the ebiten keys behind each game key.
var platformKeys = func() map[pong.Key][]ebiten.Key {
	m := make(map[pong.Key][]ebiten.Key, len(keymap))
	for ek, k := range keymap {
		m[k] = append(m[k], ek)
	}
	return m
}()

// keyboard reports held keys straight from ebiten.
type keyboard struct{}

func (keyboard) Pressed(k pong.Key) bool {
	for _, ek := range platformKeys[k] {
		if ebiten.IsKeyPressed(ek) {
			return true
		}
	}
	return false
}

// eventPoller collects the discrete events of the current tick.
type eventPoller struct {
	keys   []ebiten.Key
	events []pong.Event
}

func (p *eventPoller) poll() []pong.Event {
	p.events = p.events[:0]

	if ebiten.IsWindowBeingClosed() {
		p.events = append(p.events, pong.CloseWindow())
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, ek := range p.keys {
		if k, ok := keymap[ek]; ok {
			p.events = append(p.events, pong.Press(k))
		}
	}
	return p.events
}
