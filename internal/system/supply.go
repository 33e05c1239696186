// internal/system/supply.go
package system

import (
	"go-reactor-sim/internal/entity"
	"go-reactor-sim/internal/reactor"
)

// SupplySystem подаёт топливо и охлаждение в реакторы, к которым
// подключена подача. Лишнее топливо остаётся на ленте.
type SupplySystem struct {
	ecs            *entity.ECS
	ticksPerSecond float64
}

func NewSupplySystem(ecs *entity.ECS, ticksPerSecond float64) *SupplySystem {
	return &SupplySystem{ecs: ecs, ticksPerSecond: ticksPerSecond}
}

func (s *SupplySystem) Update(tick reactor.Tick) {
	seconds := tick.Delta / s.ticksPerSecond
	for _, id := range sortedIDs(s.ecs.Supplies) {
		supply := s.ecs.Supplies[id]
		r, ok := s.ecs.Reactors[id]
		if !ok || r.Dead() {
			continue
		}
		if supply.Item != "" {
			if n := supply.Accumulate(seconds); n > 0 {
				supply.Refund(n - r.HandleItem(supply.Item, n))
			}
		}
		if supply.Liquid != "" && supply.LiquidPerTick > 0 {
			r.HandleLiquid(supply.Liquid, supply.LiquidPerTick*tick.Delta)
		}
	}
}
