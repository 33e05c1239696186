// internal/app/game.go
package app

import (
	"go.uber.org/zap"

	"go-reactor-sim/internal/component"
	"go-reactor-sim/internal/config"
	"go-reactor-sim/internal/defs"
	"go-reactor-sim/internal/entity"
	"go-reactor-sim/internal/event"
	"go-reactor-sim/internal/power"
	"go-reactor-sim/internal/reactor"
	"go-reactor-sim/internal/scripting"
	"go-reactor-sim/internal/system"
	"go-reactor-sim/internal/utils"
	"go-reactor-sim/pkg/hexmap"
)

// Game holds the simulation state and systems.
type Game struct {
	HexMap             *hexmap.HexMap
	ECS                *entity.ECS
	Library            *defs.Library
	Config             *config.Config
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	Log                *zap.Logger
	Destroyer          *system.Destroyer
	ScriptSystem       *system.ScriptSystem
	SupplySystem       *system.SupplySystem
	ReactorSystem      *system.ReactorSystem
	ExplosionSystem    *system.ExplosionSystem
	PowerSystem        *system.PowerSystem
	VisualEffectSystem *system.VisualEffectSystem
	Stats              *system.StatsListener

	TimeScale float64
	ticks     int64
}

// NewGame wires a new, empty world. engine may be nil.
func NewGame(cfg *config.Config, lib *defs.Library, engine *scripting.Engine, log *zap.Logger) *Game {
	ecs := entity.NewECS()
	hexMap := hexmap.NewHexMap(cfg.Simulation.MapRadius)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(cfg.Simulation.Seed)
	destroyer := system.NewDestroyer(ecs, hexMap, eventDispatcher)

	g := &Game{
		HexMap:          hexMap,
		ECS:             ecs,
		Library:         lib,
		Config:          cfg,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Log:             log,
		Destroyer:       destroyer,
		TimeScale:       cfg.Simulation.TimeScale,
	}
	g.ScriptSystem = system.NewScriptSystem(ecs, engine, log)
	g.SupplySystem = system.NewSupplySystem(ecs, cfg.Simulation.TicksPerSecond)
	g.ReactorSystem = system.NewReactorSystem(ecs, destroyer, eventDispatcher, rng, log)
	g.ExplosionSystem = system.NewExplosionSystem(ecs, destroyer, eventDispatcher, log)
	g.PowerSystem = system.NewPowerSystem(ecs, power.NewGraph(cfg.Power.BatteryCapacity), cfg.Power.Demand)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, eventDispatcher)
	g.Stats = system.NewStatsListener(eventDispatcher)
	system.NewEventLog(eventDispatcher, log)

	log.Debug("simulation created",
		zap.Int64("seed", rng.Seed()),
		zap.Int("map_radius", cfg.Simulation.MapRadius),
		zap.Float64("time_scale", g.TimeScale),
	)
	return g
}

// Update progresses the simulation by one frame of dtSeconds real time.
// Frames longer than MaxDeltaTime are cut.
func (g *Game) Update(dtSeconds float64) {
	if g.ECS.RunState == component.Paused || dtSeconds <= 0 {
		return
	}
	if limit := g.Config.Simulation.MaxDeltaTime; limit > 0 && dtSeconds > limit {
		dtSeconds = limit
	}
	g.Step(reactor.Tick{
		Delta:     dtSeconds * g.Config.Simulation.TicksPerSecond,
		TimeScale: g.TimeScale,
	})
}

// Step runs every system once in fixed order.
func (g *Game) Step(tick reactor.Tick) {
	g.ScriptSystem.Update()
	g.SupplySystem.Update(tick)
	g.ReactorSystem.Update(tick)
	g.ExplosionSystem.Update()
	g.PowerSystem.Update(tick)
	g.VisualEffectSystem.Update(tick.Delta)

	g.ECS.GameTime += tick.Delta
	g.ticks++
}

// RunTicks steps the world n whole ticks, ignoring pause.
func (g *Game) RunTicks(n int) {
	for i := 0; i < n; i++ {
		g.Step(reactor.Tick{Delta: 1, TimeScale: g.TimeScale})
	}
}

// Ticks returns the number of steps run so far.
func (g *Game) Ticks() int64 {
	return g.ticks
}

// TogglePause switches between running and paused.
func (g *Game) TogglePause() {
	if g.ECS.RunState == component.Paused {
		g.ECS.RunState = component.Running
	} else {
		g.ECS.RunState = component.Paused
	}
}

// CycleTimeScale moves to the next speed in config.TimeScales and returns its index.
func (g *Game) CycleTimeScale() int {
	next := 0
	for i, s := range config.TimeScales {
		if s == g.TimeScale {
			next = (i + 1) % len(config.TimeScales)
			break
		}
	}
	g.TimeScale = config.TimeScales[next]
	return next
}

// TimeScaleIndex returns the index of the current speed, 0 if it is not a preset.
func (g *Game) TimeScaleIndex() int {
	for i, s := range config.TimeScales {
		if s == g.TimeScale {
			return i
		}
	}
	return 0
}

// Power returns the grid state.
func (g *Game) Power() *power.Graph {
	return g.PowerSystem.Graph()
}
