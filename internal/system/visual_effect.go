// internal/system/visual_effect.go
package system

import (
	"go-reactor-sim/internal/component"
	"go-reactor-sim/internal/config"
	"go-reactor-sim/internal/entity"
	"go-reactor-sim/internal/event"
)

const (
	SmokeDuration     = 60.0 // тики
	ExplosionDuration = 40.0
	smokeRadius       = 4.0 // мировых единиц
)

// VisualEffectSystem управляет дымом и взрывами.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает систему и подписывает её на события эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{ecs: ecs}
	eventDispatcher.Subscribe(event.SmokeEmitted, s)
	eventDispatcher.Subscribe(event.ExplosionCreated, s)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.SmokeData:
		s.spawn(component.Effect{Kind: component.EffectSmoke, X: data.X, Y: data.Y, Radius: smokeRadius, Duration: SmokeDuration})
	case event.ExplosionData:
		s.spawn(component.Effect{
			Kind:     component.EffectExplosion,
			X:        data.X,
			Y:        data.Y,
			Radius:   float64(data.Radius) * config.TileSize,
			Duration: ExplosionDuration,
		})
	}
}

func (s *VisualEffectSystem) spawn(effect component.Effect) {
	id := s.ecs.NewEntity()
	s.ecs.Effects[id] = &effect
}

// Update продвигает таймеры и удаляет завершившиеся эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, effect := range s.ecs.Effects {
		effect.Timer += deltaTime
		if effect.Timer >= effect.Duration {
			delete(s.ecs.Effects, id)
		}
	}
}
