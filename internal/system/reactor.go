// internal/system/reactor.go
package system

import (
	"go.uber.org/zap"

	"go-reactor-sim/internal/entity"
	"go-reactor-sim/internal/event"
	"go-reactor-sim/internal/reactor"
	"go-reactor-sim/internal/utils"
)

// ReactorSystem обновляет тепловую модель каждого живого реактора.
type ReactorSystem struct {
	ecs             *entity.ECS
	destroyer       *Destroyer
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	log             *zap.Logger
}

func NewReactorSystem(ecs *entity.ECS, destroyer *Destroyer, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, log *zap.Logger) *ReactorSystem {
	return &ReactorSystem{
		ecs:             ecs,
		destroyer:       destroyer,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		log:             log,
	}
}

func (s *ReactorSystem) Update(tick reactor.Tick) {
	for _, id := range sortedIDs(s.ecs.Reactors) {
		r := s.ecs.Reactors[id]
		if r.Dead() {
			continue
		}
		out := r.Update(tick, s.rng)

		if out.FuelConsumed > 0 {
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.FuelConsumed,
				Data: event.FuelData{ID: id, Remaining: r.Fuel()},
			})
		}

		if out.Smoke != nil {
			data := event.SmokeData{SourceID: id, X: out.Smoke.X, Y: out.Smoke.Y}
			if pos, ok := s.ecs.Positions[id]; ok {
				data.X += pos.X
				data.Y += pos.Y
			}
			s.eventDispatcher.Dispatch(event.Event{Type: event.SmokeEmitted, Data: data})
		}

		if out.Overheated {
			s.log.Warn("reactor overheated",
				zap.Uint64("id", uint64(id)),
				zap.Int("fuel", r.Fuel()),
				zap.Float64("game_time", s.ecs.GameTime),
			)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.ReactorOverheat,
				Data: event.OverheatData{ID: id, Heat: r.Heat},
			})
			s.destroyer.Destroy(id)
		}
	}
}
