package pong

import (
	"saber-pong/content/config"
	"saber-pong/content/utils"
)

// Outcome is the result of feeding one event to the mode machine.
type Outcome struct {
	Mode     config.Mode
	Selected int
	NewMatch bool // scores, paddles and ball must be reset
}

// Transition is the mode machine: it maps the current mode, the highlighted
// menu option and a discrete event to the next mode and option. Events that
// match no transition leave both unchanged.
func Transition(mode config.Mode, selected int, ev Event) Outcome {
	out := Outcome{Mode: mode, Selected: selected}

	if ev.Kind == EventClose {
		out.Mode = config.ModeQuit
		return out
	}
	if ev.Kind != EventKeyDown {
		return out
	}

	switch mode {
	case config.ModeMenu:
		switch ev.Key {
		case KeyUp:
			out.Selected = utils.Wrap(selected, -1, config.MenuOptions)
		case KeyDown:
			out.Selected = utils.Wrap(selected, 1, config.MenuOptions)
		case KeyEnter:
			switch selected {
			case config.OptionPlay:
				out.Mode = config.ModePlaying
				out.NewMatch = true
			case config.OptionInstructions:
				out.Mode = config.ModeInstructions
			case config.OptionExit:
				out.Mode = config.ModeQuit
			}
		}
	case config.ModeInstructions, config.ModePlaying:
		if ev.Key == KeyEscape {
			out.Mode = config.ModeMenu
		}
	case config.ModeGameOver:
		if ev.Key == KeyEnter {
			out.Mode = config.ModeMenu
		}
	}
	return out
}
