package config

type Mode int

const (
	ModeMenu Mode = iota
	ModeInstructions
	ModePlaying
	ModeGameOver
	ModeQuit
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeInstructions:
		return "instructions"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game-over"
	case ModeQuit:
		return "quit"
	}
	return "unknown"
}

const (
	ScreenWidth  = 1200
	ScreenHeight = 650
	HalfWidth    = ScreenWidth / 2
	PaddleWidth  = 15
	PaddleHeight = 90
	PaddleMargin = 50 // distance between a paddle and its own edge at match start
	BallSize     = 10
	FontSize     = 24
)

const (
	PaddleSpeed  = 400 // px per second
	BallSpeed    = 500 // px per second, both axes on reset
	WinningScore = 5
)

// Menu entries, in display order.
const (
	OptionPlay = iota
	OptionInstructions
	OptionExit
	MenuOptions
)

const (
	LeftWinsMessage  = "Left player wins!"
	RightWinsMessage = "Right player wins!"
)
