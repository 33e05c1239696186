// internal/system/explosion.go
package system

import (
	"math"

	"go.uber.org/zap"

	"go-reactor-sim/internal/config"
	"go-reactor-sim/internal/entity"
	"go-reactor-sim/internal/event"
	"go-reactor-sim/internal/types"
)

type pendingExplosion struct {
	source types.EntityID
	x, y   float64
	radius int
	damage float64
}

// ExplosionSystem превращает уничтоженные реакторы во взрывы.
// Урон падает линейно от центра до края радиуса; погибшие от взрыва
// реакторы взрываются следом в том же тике.
type ExplosionSystem struct {
	ecs             *entity.ECS
	destroyer       *Destroyer
	eventDispatcher *event.Dispatcher
	log             *zap.Logger
	queue           []pendingExplosion
}

func NewExplosionSystem(ecs *entity.ECS, destroyer *Destroyer, eventDispatcher *event.Dispatcher, log *zap.Logger) *ExplosionSystem {
	s := &ExplosionSystem{
		ecs:             ecs,
		destroyer:       destroyer,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
	eventDispatcher.Subscribe(event.BuildingDestroyed, s)
	return s
}

func (s *ExplosionSystem) OnEvent(e event.Event) {
	if e.Type != event.BuildingDestroyed {
		return
	}
	data, ok := e.Data.(event.DestroyedData)
	if !ok {
		return
	}
	r, ok := s.ecs.Reactors[data.ID]
	if !ok || !r.ShouldExplode() {
		return
	}
	s.queue = append(s.queue, pendingExplosion{
		source: data.ID,
		x:      data.X,
		y:      data.Y,
		radius: r.Stats.ExplosionRadius,
		damage: r.Stats.ExplosionDamage,
	})
}

// Pending returns the number of queued explosions.
func (s *ExplosionSystem) Pending() int {
	return len(s.queue)
}

func (s *ExplosionSystem) Update() {
	for len(s.queue) > 0 {
		ex := s.queue[0]
		s.queue = s.queue[1:]
		s.explode(ex)
	}
	s.destroyer.Sweep()
}

func (s *ExplosionSystem) explode(ex pendingExplosion) {
	s.log.Warn("reactor exploded",
		zap.Uint64("source", uint64(ex.source)),
		zap.Int("radius", ex.radius),
		zap.Float64("damage", ex.damage),
	)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ExplosionCreated,
		Data: event.ExplosionData{SourceID: ex.source, X: ex.x, Y: ex.y, Radius: ex.radius, Damage: ex.damage},
	})

	reach := float64(ex.radius) * config.TileSize
	if reach <= 0 {
		return
	}
	for _, id := range sortedIDs(s.ecs.Buildings) {
		b := s.ecs.Buildings[id]
		if b.Dead || id == ex.source {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		health, hasHealth := s.ecs.Healths[id]
		if !hasPos || !hasHealth {
			continue
		}
		dist := math.Hypot(pos.X-ex.x, pos.Y-ex.y)
		if dist > reach {
			continue
		}
		if health.Damage(ex.damage * (1 - dist/reach)) {
			s.destroyer.Destroy(id)
		}
	}
}
