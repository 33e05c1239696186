// internal/reactor/heat.go
package reactor

import (
	"go-reactor-sim/internal/defs"
	"go-reactor-sim/pkg/hexmap"
)

// OverheatLevel — порог тепла, при котором реактор разрушается.
const OverheatLevel = 0.999

// maxHeatingDelta ограничивает шаг нагрева при просадках кадра.
const maxHeatingDelta = 4

// Tick — время одного шага симуляции.
type Tick struct {
	Delta     float64 // прошедшее время в тиках, без ускорения
	TimeScale float64 // ускорение блока (x1, x2, x4)
}

// BlockDelta returns the scaled delta used for heating and smoke.
func (t Tick) BlockDelta() float64 {
	return t.Delta * t.scale()
}

func (t Tick) scale() float64 {
	if t.TimeScale <= 0 {
		return 1
	}
	return t.TimeScale
}

// Chancer is the random source used for visual side effects.
type Chancer interface {
	Chance(p float64) bool
	Range(r float64) float64
}

// Outcome reports what happened during one heat update.
type Outcome struct {
	FuelConsumed int
	CoolantUsed  float64
	Smoke        *hexmap.Vec2 // смещение клуба дыма от центра блока, nil если дыма нет
	Overheated   bool
}

// HeatModel — стратегия обновления конкретного вида реактора.
type HeatModel interface {
	Update(r *Reactor, tick Tick, rng Chancer) Outcome
}

// NuclearHeat нагревается пропорционально заполненности топливом
// и охлаждается жидкостью из резервуара.
type NuclearHeat struct {
	Stats    defs.ReactorStats
	TileSize float64 // размер клетки в мировых единицах, для разброса дыма
}

func (m NuclearHeat) Update(r *Reactor, tick Tick, rng Chancer) Outcome {
	var out Outcome
	s := m.Stats
	delta := tick.BlockDelta()

	fuel := r.Items.Get(s.FuelItem)
	fullness := 0.0
	if r.Items.Capacity > 0 {
		fullness = float64(fuel) / float64(r.Items.Capacity)
	}
	r.ProductionEfficiency = fullness

	if fuel > 0 && r.Building.Enabled {
		r.Heat += fullness * s.Heating * min(delta, maxHeatingDelta)

		// Таймер топлива идёт в нескалированном времени, а порог делится на ускорение.
		r.fuelTimer += tick.Delta
		if r.fuelTimer >= s.ItemDuration/tick.scale() {
			r.fuelTimer = 0
			out.FuelConsumed = r.Items.Remove(s.FuelItem, 1)
		}
	} else {
		r.ProductionEfficiency = 0
	}

	if r.Heat > 0 && s.CoolantPower > 0 {
		used := min(r.Liquids.CurrentAmount(), r.Heat/s.CoolantPower)
		r.Heat -= used * s.CoolantPower
		out.CoolantUsed = r.Liquids.Remove(used)
	}

	if r.Heat > s.SmokeThreshold {
		smoke := 1 + (r.Heat-s.SmokeThreshold)/(1-s.SmokeThreshold)
		if rng != nil && rng.Chance(smoke/20*delta) {
			spread := float64(r.Building.Size) * m.TileSize / 2
			out.Smoke = &hexmap.Vec2{X: rng.Range(spread), Y: rng.Range(spread)}
		}
	}

	r.Heat = clamp01(r.Heat)

	if r.Heat >= OverheatLevel {
		out.Overheated = true
	}
	return out
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}
