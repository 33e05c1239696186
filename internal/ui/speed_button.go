// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton — кнопка ускорения, по цвету на каждую скорость.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.Color
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	triangleSize := b.Size * clickPulse(b.LastClickTime)
	c := toRGBA(b.StateColors[b.CurrentState])

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	left := triangle(b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2)
	fillPath(screen, left, c)
	strokePath(screen, left, 1, color.RGBA{255, 255, 255, 255})

	right := triangle(b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2)
	fillPath(screen, right, c)
	strokePath(screen, right, 1, color.RGBA{255, 255, 255, 255})
}

// IsClicked проверяет попадание по кругу вокруг кнопки.
func (b *SpeedButton) IsClicked(mx, my float32) bool {
	return insideCircle(mx, my, b.X, b.Y, b.Size*1.5)
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	b.LastToggleTime = b.LastClickTime
}

// SetState выставляет состояние без анимации (например, после загрузки).
func (b *SpeedButton) SetState(i int) {
	if i >= 0 && i < len(b.StateColors) {
		b.CurrentState = i
	}
}
