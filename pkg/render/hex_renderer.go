// pkg/render/hex_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-reactor-sim/pkg/hexmap"
)

// HexRenderer рисует площадку и примитивы поверх неё.
type HexRenderer struct {
	hexMap       *hexmap.HexMap
	hexSize      float64
	originX      float64
	originY      float64
	screenWidth  int
	screenHeight int
	colors       MapColors
	fillImg      *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	fontFace     font.Face
	mapImage     *ebiten.Image // предрендеренная карта
}

func NewHexRenderer(hexMap *hexmap.HexMap, hexSize float64, screenWidth, screenHeight int, colors MapColors) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &HexRenderer{
		hexMap:       hexMap,
		hexSize:      hexSize,
		originX:      float64(screenWidth) / 2,
		originY:      float64(screenHeight) / 2,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		colors:       colors,
		fillImg:      fillImg,
		fillVs:       make([]ebiten.Vertex, 0, 18),
		fillIs:       make([]uint16, 0, 18),
		strokeVs:     make([]ebiten.Vertex, 0, 36),
		strokeIs:     make([]uint16, 0, 36),
		fontFace:     basicfont.Face7x13,
		mapImage:     ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderMapImage()
	return r
}

// Origin returns the screen position of hex (0,0).
func (r *HexRenderer) Origin() (float64, float64) {
	return r.originX, r.originY
}

// FontFace returns the face used for labels.
func (r *HexRenderer) FontFace() font.Face {
	return r.fontFace
}

// RenderMapImage перерисовывает задник с гексами.
func (r *HexRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)
	for hex := range r.hexMap.Tiles {
		x, y := r.HexCenter(hex)
		r.FillHex(r.mapImage, x, y, r.hexSize, r.colors.TileColor, math.Pi/6)
		r.StrokeHex(r.mapImage, x, y, r.hexSize, r.colors.StrokeWidth, r.colors.StrokeColor)

		label := fmt.Sprintf("%d,%d", hex.Q, hex.R)
		bounds := text.BoundString(r.fontFace, label)
		text.Draw(r.mapImage, label, r.fontFace,
			int(x)-bounds.Dx()/2, int(y+r.hexSize*0.7), premultiply(WithAlpha(r.colors.TextColor, 0.35)))
	}
}

// Draw рисует предрендеренную карту одним вызовом.
func (r *HexRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}

// HexCenter returns the screen center of hex.
func (r *HexRenderer) HexCenter(hex hexmap.Hex) (float64, float64) {
	x, y := hex.ToPixel(r.hexSize)
	return x + r.originX, y + r.originY
}

// ScreenToHex converts a cursor position to a hex.
func (r *HexRenderer) ScreenToHex(x, y int) hexmap.Hex {
	return hexmap.PixelToHex(float64(x), float64(y), r.originX, r.originY, r.hexSize)
}

func hexPath(x, y, radius, rotation float64) *vector.Path {
	path := &vector.Path{}
	for i := 0; i < 6; i++ {
		angle := math.Pi/3*float64(i) + rotation
		px := x + radius*math.Cos(angle)
		py := y + radius*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	return path
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	p := premultiply(c)
	for i := range vs {
		vs[i].ColorR = float32(p.R) / 255
		vs[i].ColorG = float32(p.G) / 255
		vs[i].ColorB = float32(p.B) / 255
		vs[i].ColorA = float32(p.A) / 255
	}
}

// FillHex fills a hexagon. c uses straight alpha.
func (r *HexRenderer) FillHex(target *ebiten.Image, x, y, radius float64, c color.RGBA, rotation float64) {
	r.fillVs, r.fillIs = hexPath(x, y, radius, rotation).AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, c)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// StrokeHex outlines a pointy-top hexagon.
func (r *HexRenderer) StrokeHex(target *ebiten.Image, x, y, radius float64, width float32, c color.RGBA) {
	r.strokeVs, r.strokeIs = hexPath(x, y, radius, math.Pi/6).AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	paint(r.strokeVs, c)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// FillRect fills a rectangle centered on (x, y). c uses straight alpha.
func FillRect(target *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	vector.DrawFilledRect(target, float32(x-w/2), float32(y-h/2), float32(w), float32(h), premultiply(c), true)
}

// FillCircle fills a circle. c uses straight alpha.
func FillCircle(target *ebiten.Image, x, y, radius float64, c color.RGBA) {
	if radius <= 0 {
		return
	}
	vector.DrawFilledCircle(target, float32(x), float32(y), float32(radius), premultiply(c), true)
}

// StrokeCircle outlines a circle. c uses straight alpha.
func StrokeCircle(target *ebiten.Image, x, y, radius float64, width float32, c color.RGBA) {
	if radius <= 0 {
		return
	}
	vector.StrokeCircle(target, float32(x), float32(y), float32(radius), width, premultiply(c), true)
}
