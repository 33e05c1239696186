// internal/ui/bar.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Bar — горизонтальная полоса-шкала (тепло, энергия, охлаждение).
type Bar struct {
	X, Y, Width, Height float32
	Label               string
	Color               color.RGBA
	Face                font.Face
}

func NewBar(x, y, width, height float32, label string, c color.RGBA, face font.Face) *Bar {
	return &Bar{X: x, Y: y, Width: width, Height: height, Label: label, Color: c, Face: face}
}

// Fill returns the filled width for a fraction, clamped to the bar.
func (b *Bar) Fill(fraction float64) float32 {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return b.Width * float32(fraction)
}

// Caption formats the label shown next to the bar.
func (b *Bar) Caption(fraction float64) string {
	return fmt.Sprintf("%s %3.0f%%", b.Label, min(max(fraction, 0), 1)*100)
}

func (b *Bar) Draw(screen *ebiten.Image, fraction float64) {
	back := color.RGBA{b.Color.R / 4, b.Color.G / 4, b.Color.B / 4, 200}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, straight(back), false)
	vector.DrawFilledRect(screen, b.X, b.Y, b.Fill(fraction), b.Height, straight(b.Color), false)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 1, color.White, false)

	if b.Face != nil {
		text.Draw(screen, b.Caption(fraction), b.Face, int(b.X+b.Width)+8, int(b.Y+b.Height)-2, color.White)
	}
}
