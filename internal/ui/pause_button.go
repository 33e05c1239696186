// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — пауза/продолжение симуляции
type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.RGBA
	PlayColor      color.RGBA
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	size := b.Size * clickPulse(b.LastClickTime)

	if b.IsPaused {
		// Треугольник (play)
		play := triangle(b.X-size, b.Y-size*1.2, b.X-size, b.Y+size*1.2, b.X+size, b.Y)
		fillPath(screen, play, b.PlayColor)
		strokePath(screen, play, 1, color.RGBA{255, 255, 255, 255})
		return
	}

	// Два прямоугольника (pause)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(screen, x, b.Y-height/2, width, height, straight(b.PauseColor), true)
		vector.StrokeRect(screen, x, b.Y-height/2, width, height, 1, color.White, true)
	}
}

func (b *PauseButton) IsClicked(mx, my float32) bool {
	return insideCircle(mx, my, b.X, b.Y, b.Size*1.2)
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
	b.LastToggleTime = b.LastClickTime
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
