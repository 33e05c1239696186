// internal/ui/draw.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteImage *ebiten.Image

// fillPath заливает замкнутый контур. c: цвет с непремультиплицированной альфой.
func fillPath(dst *ebiten.Image, path *vector.Path, c color.RGBA) {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	paintVertices(vs, c)
	dst.DrawTriangles(vs, is, whiteImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func strokePath(dst *ebiten.Image, path *vector.Path, width float32, c color.RGBA) {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: width})
	paintVertices(vs, c)
	dst.DrawTriangles(vs, is, whiteImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func paintVertices(vs []ebiten.Vertex, c color.RGBA) {
	a := float32(c.A) / 255
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255 * a
		vs[i].ColorG = float32(c.G) / 255 * a
		vs[i].ColorB = float32(c.B) / 255 * a
		vs[i].ColorA = a
	}
}

func triangle(x1, y1, x2, y2, x3, y3 float32) *vector.Path {
	path := &vector.Path{}
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()
	return path
}

// clickPulse даёт короткое увеличение элемента после клика.
func clickPulse(last time.Time) float32 {
	elapsed := time.Since(last).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

func insideCircle(mx, my, x, y, radius float32) bool {
	dx, dy := mx-x, my-y
	return dx*dx+dy*dy <= radius*radius
}

// straight превращает RGBA с обычной альфой в цвет для vector.*.
func straight(c color.RGBA) color.Color {
	return color.NRGBA(c)
}

func toRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
