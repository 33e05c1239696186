// internal/reactor/reactor.go
package reactor

import (
	"fmt"

	"go-reactor-sim/internal/component"
	"go-reactor-sim/internal/defs"
	"go-reactor-sim/internal/power"
	"go-reactor-sim/pkg/hexmap"
)

// FuelRodGap — расстояние между соседними стержнями в мировых единицах.
const FuelRodGap = 2

// Sensor — имя величины, доступной логике через Sense.
type Sensor string

const (
	SensorHeat           Sensor = "heat"
	SensorEfficiency     Sensor = "efficiency"
	SensorTotalItems     Sensor = "totalItems"
	SensorItemCapacity   Sensor = "itemCapacity"
	SensorTotalLiquids   Sensor = "totalLiquids"
	SensorLiquidCapacity Sensor = "liquidCapacity"
	SensorEnabled        Sensor = "enabled"
	SensorDead           Sensor = "dead"
)

// Sensors lists every sensor in a stable order.
var Sensors = []Sensor{
	SensorHeat, SensorEfficiency, SensorTotalItems, SensorItemCapacity,
	SensorTotalLiquids, SensorLiquidCapacity, SensorEnabled, SensorDead,
}

// Reactor — генератор с тепловой моделью. Обновляется только своим
// тиком симуляции; рендер лишь читает поля.
type Reactor struct {
	*power.Generator
	Building *component.Building
	Health   *component.Health
	Stats    defs.ReactorStats
	Model    HeatModel
	Heat     float64

	fuelTimer float64
	rods      *hexmap.SpiralLayout
}

// New builds a reactor for a block definition with reactor stats.
// The building and health components are shared with the ECS.
func New(def defs.BlockDefinition, b *component.Building, h *component.Health, tileSize float64) (*Reactor, error) {
	if def.Reactor == nil {
		return nil, fmt.Errorf("block %q: %w", def.ID, ErrNotReactor)
	}
	stats := *def.Reactor
	return &Reactor{
		Generator: power.NewGenerator(stats.PowerProduction, def.ItemCapacity, def.LiquidCapacity),
		Building:  b,
		Health:    h,
		Stats:     stats,
		Model:     NuclearHeat{Stats: stats, TileSize: tileSize},
		rods:      hexmap.NewSpiralLayout(def.ItemCapacity),
	}, nil
}

// Update runs one heat step. A dead reactor is left untouched, so the
// overheat outcome is reported at most once.
func (r *Reactor) Update(tick Tick, rng Chancer) Outcome {
	if r.Building.Dead {
		return Outcome{}
	}
	out := r.Model.Update(r, tick, rng)
	if out.Overheated {
		r.Kill()
	}
	return out
}

// Kill destroys the reactor.
func (r *Reactor) Kill() {
	r.Building.Dead = true
	r.ProductionEfficiency = 0
	if r.Health != nil {
		r.Health.Value = 0
	}
}

func (r *Reactor) Dead() bool {
	return r.Building.Dead
}

// Fuel returns the stored amount of fuel.
func (r *Reactor) Fuel() int {
	return r.Items.Get(r.Stats.FuelItem)
}

// ShouldExplode — разрушение даёт взрыв только при достаточном
// запасе топлива или тепла.
func (r *Reactor) ShouldExplode() bool {
	return r.Fuel() >= r.Stats.ExplosionMinFuel || r.Heat >= r.Stats.ExplosionMinHeat
}

// AcceptItem reports whether one item can be inserted.
func (r *Reactor) AcceptItem(item string) bool {
	return !r.Dead() && item == r.Stats.FuelItem && r.Items.Get(item) < r.Items.Capacity
}

// HandleItem inserts up to n items and returns how many were taken.
func (r *Reactor) HandleItem(item string, n int) int {
	if !r.AcceptItem(item) {
		return 0
	}
	return r.Items.Add(item, n)
}

// AcceptLiquid reports whether liquid can flow in right now.
func (r *Reactor) AcceptLiquid(liquid string) bool {
	return !r.Dead() && r.Liquids.Accepts(liquid)
}

// HandleLiquid pours in up to amount of liquid and returns the accepted amount.
func (r *Reactor) HandleLiquid(liquid string, amount float64) float64 {
	if !r.AcceptLiquid(liquid) {
		return 0
	}
	return r.Liquids.Add(liquid, amount)
}

// Sense returns the value of a sensor and whether it is known.
func (r *Reactor) Sense(s Sensor) (float64, bool) {
	switch s {
	case SensorHeat:
		return r.Heat, true
	case SensorEfficiency:
		return r.ProductionEfficiency, true
	case SensorTotalItems:
		return float64(r.Items.Total()), true
	case SensorItemCapacity:
		return float64(r.Items.Capacity), true
	case SensorTotalLiquids:
		return r.Liquids.CurrentAmount(), true
	case SensorLiquidCapacity:
		return r.Liquids.Capacity, true
	case SensorEnabled:
		return boolSense(r.Building.Enabled), true
	case SensorDead:
		return boolSense(r.Building.Dead), true
	}
	return 0, false
}

// SenseAll returns every sensor value keyed by name.
func (r *Reactor) SenseAll() map[Sensor]float64 {
	out := make(map[Sensor]float64, len(Sensors))
	for _, s := range Sensors {
		out[s], _ = r.Sense(s)
	}
	return out
}

func boolSense(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// FuelRodPosition returns the draw offset of fuel item i. The first
// ring is left free around the center.
func (r *Reactor) FuelRodPosition(i int) hexmap.Vec2 {
	if r.rods.Len() != r.Items.Capacity+hexmap.SpiralPadding {
		r.rods.SetCapacity(r.Items.Capacity)
	}
	return r.rods.Position(i+hexmap.SpiralPadding, FuelRodGap)
}

// RodLayout exposes the owned spiral buffer.
func (r *Reactor) RodLayout() *hexmap.SpiralLayout {
	return r.rods
}
