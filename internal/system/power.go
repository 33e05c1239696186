// internal/system/power.go
package system

import (
	"go-reactor-sim/internal/entity"
	"go-reactor-sim/internal/power"
	"go-reactor-sim/internal/reactor"
)

// PowerSystem сводит баланс сети за тик: выработка генераторов против
// базовой нагрузки и потребителей.
type PowerSystem struct {
	ecs        *entity.ECS
	graph      *power.Graph
	baseDemand float64 // в тик
}

func NewPowerSystem(ecs *entity.ECS, graph *power.Graph, baseDemand float64) *PowerSystem {
	return &PowerSystem{ecs: ecs, graph: graph, baseDemand: baseDemand}
}

func (s *PowerSystem) Graph() *power.Graph {
	return s.graph
}

func (s *PowerSystem) Update(tick reactor.Tick) {
	produced := 0.0
	for id, gen := range s.ecs.Generators {
		if b, ok := s.ecs.Buildings[id]; ok && b.Dead {
			continue
		}
		produced += gen.PowerOutput(tick.BlockDelta())
	}

	needed := s.baseDemand * tick.Delta
	for id, c := range s.ecs.Consumers {
		if b, ok := s.ecs.Buildings[id]; ok && (b.Dead || !b.Enabled) {
			continue
		}
		needed += c.PowerUse * tick.Delta
	}

	satisfaction := s.graph.Balance(produced, needed)
	for _, c := range s.ecs.Consumers {
		c.Satisfied = satisfaction
	}
}
