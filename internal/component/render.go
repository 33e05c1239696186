// internal/component/render.go
package component

import "image/color"

// Renderable — простые блоки (стены, потребители): квадрат с обводкой или без.
type Renderable struct {
	Color     color.RGBA
	Stroke    color.RGBA
	HasStroke bool
}

// NewRenderable берёт для обводки тот же цвет вдвое темнее.
func NewRenderable(c color.RGBA, stroke bool) *Renderable {
	return &Renderable{
		Color:     c,
		Stroke:    scale(c, 0.5),
		HasStroke: stroke,
	}
}

// Shade возвращает цвет тела при доле здоровья health: разбитый блок темнеет
// до половины яркости.
func (r *Renderable) Shade(health float64) color.RGBA {
	health = min(max(health, 0), 1)
	return scale(r.Color, 0.5+0.5*health)
}

func scale(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
