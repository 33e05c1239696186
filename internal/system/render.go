// internal/system/render.go
package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"go-reactor-sim/internal/component"
	"go-reactor-sim/internal/config"
	"go-reactor-sim/internal/defs"
	"go-reactor-sim/internal/entity"
	"go-reactor-sim/pkg/render"
)

// RenderSystem рисует сущности поверх карты. Меняет только ReactorVisual.
type RenderSystem struct {
	ecs      *entity.ECS
	lib      *defs.Library
	renderer *render.HexRenderer
}

func NewRenderSystem(ecs *entity.ECS, lib *defs.Library, renderer *render.HexRenderer) *RenderSystem {
	return &RenderSystem{ecs: ecs, lib: lib, renderer: renderer}
}

// toScreen переводит мировые координаты в экранные.
func (s *RenderSystem) toScreen(x, y float64) (float64, float64) {
	ox, oy := s.renderer.Origin()
	return ox + x*config.WorldToScreen, oy + y*config.WorldToScreen
}

// Draw рисует кадр, delta задаёт прошедшие тики для анимаций.
func (s *RenderSystem) Draw(screen *ebiten.Image, delta float64) {
	for _, id := range sortedIDs(s.ecs.Renderables) {
		rend := s.ecs.Renderables[id]
		b, hasBuilding := s.ecs.Buildings[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasBuilding || !hasPos || b.Dead {
			continue
		}
		x, y := s.toScreen(pos.X, pos.Y)
		size := float64(b.Size) * config.TileSize * config.WorldToScreen
		if rend.HasStroke {
			render.FillRect(screen, x, y, size+4, size+4, rend.Stroke)
		}
		health := 1.0
		if h, ok := s.ecs.Healths[id]; ok {
			health = h.Fraction()
		}
		render.FillRect(screen, x, y, size, size, rend.Shade(health))
	}

	for _, id := range sortedIDs(s.ecs.Reactors) {
		r := s.ecs.Reactors[id]
		vis, hasVis := s.ecs.ReactorVisuals[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasVis || !hasPos || r.Dead() {
			continue
		}
		frame := render.BuildReactorFrame(r, vis, s.lib, config.TileSize, delta)
		s.drawReactor(screen, r.Building.DefID, pos, frame)
	}

	s.drawEffects(screen)
}

func (s *RenderSystem) drawReactor(screen *ebiten.Image, defID string, pos *component.Position, frame render.ReactorFrame) {
	x, y := s.toScreen(pos.X, pos.Y)
	scale := config.WorldToScreen
	size := frame.Size * scale

	body := config.TileColor
	if def, err := s.lib.Block(defID); err == nil {
		body = def.Color.ToRGBA()
	}
	render.FillRect(screen, x, y, size, size, body)
	render.FillRect(screen, x, y, size, size, frame.Heat)
	render.FillRect(screen, x, y, size*0.6, size*0.6, frame.Coolant)

	if frame.Flashing {
		for _, corner := range [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			render.FillCircle(screen, x+corner[0]*size*0.38, y+corner[1]*size*0.38, size*0.07, frame.Flash)
		}
	}

	for _, rod := range frame.Rods {
		s.renderer.FillHex(screen, x+rod.Offset.X*scale, y+rod.Offset.Y*scale, rod.Radius*scale, rod.Color, 0)
	}

	if frame.Light.Radius > 0 {
		render.FillCircle(screen, x, y, frame.Light.Radius*scale, render.WithAlpha(frame.Light.Color, frame.Light.Alpha*0.5))
	}
}

func (s *RenderSystem) drawEffects(screen *ebiten.Image) {
	for _, id := range sortedIDs(s.ecs.Effects) {
		e := s.ecs.Effects[id]
		x, y := s.toScreen(e.X, e.Y)
		p := e.Progress()
		switch e.Kind {
		case component.EffectSmoke:
			c := render.WithAlpha(config.SmokeColor, float64(config.SmokeColor.A)/255*(1-p))
			render.FillCircle(screen, x, y-p*12, e.Radius*config.WorldToScreen*(0.5+p), c)
		case component.EffectExplosion:
			c := render.WithAlpha(config.ExplosionColor, float64(config.ExplosionColor.A)/255*(1-p))
			radius := e.Radius * config.WorldToScreen * math.Sqrt(p)
			render.StrokeCircle(screen, x, y, radius, 4, c)
			render.FillCircle(screen, x, y, radius*0.6, render.WithAlpha(c, float64(c.A)/255*0.4))
		}
	}
}
