// pkg/render/color.go
package render

import (
	"image/color"

	"go-reactor-sim/internal/utils"
)

var (
	Red     = color.RGBA{R: 255, A: 255}
	Yellow  = color.RGBA{R: 255, G: 255, A: 255}
	Scarlet = color.RGBA{R: 255, G: 52, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// MapColors holds the colors used to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	TileColor       color.RGBA
	StrokeColor     color.RGBA
	TextColor       color.RGBA
	StrokeWidth     float32
}

// LerpColor interpolates every channel, alpha included. t is clamped to [0,1].
func LerpColor(from, to color.RGBA, t float64) color.RGBA {
	t = utils.Clamp(t)
	ch := func(a, b uint8) uint8 {
		return uint8(utils.Lerp(float64(a), float64(b), t) + 0.5)
	}
	return color.RGBA{R: ch(from.R, to.R), G: ch(from.G, to.G), B: ch(from.B, to.B), A: ch(from.A, to.A)}
}

// WithAlpha replaces the alpha channel; alpha is in [0,1].
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	c.A = uint8(utils.Clamp(alpha)*255 + 0.5)
	return c
}

// premultiply converts a straight-alpha color for ebiten's vector API.
func premultiply(c color.RGBA) color.RGBA {
	a := float64(c.A) / 255
	return color.RGBA{
		R: uint8(float64(c.R)*a + 0.5),
		G: uint8(float64(c.G)*a + 0.5),
		B: uint8(float64(c.B)*a + 0.5),
		A: c.A,
	}
}
