package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"saber-pong/content/config"
	"saber-pong/content/pong"
)

var (
	colorText     color.Color = color.White
	colorSelected color.Color = color.RGBA{0xFF, 0xFF, 0x00, 0xFF}
	colorBall     color.Color = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
)

// surface wraps the back buffer of one frame with the few primitives the
// game draws with.
type surface struct {
	dst    *ebiten.Image
	face   *text.GoTextFace
	logger *log.Logger
}

func (s surface) Rect(r image.Rectangle, clr color.Color) {
	vector.StrokeRect(s.dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, clr, false)
}

func (s surface) FillRect(r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(s.dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

// Texture stretches img over r.
func (s surface) Texture(img *ebiten.Image, r image.Rectangle) {
	if img == nil {
		s.logger.Warn("skip texture: image not loaded", "rect", r)
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx())/float64(b.Dx()), float64(r.Dy())/float64(b.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	s.dst.DrawImage(img, op)
}

func (s surface) Text(str string, x, y float64, clr color.Color) {
	if s.face == nil {
		s.logger.Warn("skip text: font not loaded", "text", str)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = config.FontSize
	text.Draw(s.dst, str, s.face, op)
}

// renderer draws the session every frame.
type renderer struct {
	assets *Assets
	logger *log.Logger
}

func (r *renderer) draw(screen *ebiten.Image, sess *pong.Session) {
	s := surface{dst: screen, logger: r.logger}
	if r.assets != nil {
		s.face = r.assets.Face
		s.Texture(r.assets.Background, screen.Bounds())
		s.Texture(r.assets.LeftSaber, sess.Left.Bounds())
		s.Texture(r.assets.RightSaber, sess.Right.Bounds())
	}

	switch sess.Mode {
	case config.ModeMenu:
		drawMenu(s, sess.Selected)
	case config.ModeInstructions:
		drawInstructions(s)
	case config.ModePlaying:
		drawPlaying(s, sess)
	case config.ModeGameOver:
		drawGameOver(s, sess.Winner)
	}
}

var menuItems = [config.MenuOptions]string{
	config.OptionPlay:         "Play",
	config.OptionInstructions: "Instructions",
	config.OptionExit:         "Exit",
}

func drawMenu(s surface, selected int) {
	x := float64(config.ScreenWidth/2 - 50)
	s.Text("Pong", x, 100, colorText)
	for i, item := range menuItems {
		y := float64(200 + 50*i)
		clr := colorText
		if i == selected {
			clr = colorSelected
			s.Rect(image.Rect(int(x)-10, int(y)-5, int(x)+200, int(y)+config.FontSize+10), colorSelected)
		}
		s.Text(item, x, y, clr)
	}
}

// Horizontal movement (A/D and Left/Right) is intentionally not listed.
var instructions = []struct {
	text string
	y    float64
}{
	{"Instructions", 100},
	{"Left player:", 200},
	{"W: Up", 230},
	{"S: Down", 260},
	{"Right player:", 300},
	{"Arrow Up: Up", 330},
	{"Arrow Down: Down", 360},
	{"Press ESC to return", 450},
}

func drawInstructions(s surface) {
	x := float64(config.ScreenWidth/2 - 80)
	for _, line := range instructions {
		s.Text(line.text, x, line.y, colorText)
	}
}

func drawPlaying(s surface, sess *pong.Session) {
	s.FillRect(sess.Ball.Bounds(), colorBall)
	score := fmt.Sprintf("%d - %d", sess.Left.Score, sess.Right.Score)
	s.Text(score, config.ScreenWidth/2-20, 20, colorText)
}

func drawGameOver(s surface, winner string) {
	x := float64(config.ScreenWidth/2 - 100)
	s.Text(winner, x, config.ScreenHeight/2-50, colorText)
	s.Text("Press ENTER to return to the menu", x, config.ScreenHeight/2+50, colorText)
}
