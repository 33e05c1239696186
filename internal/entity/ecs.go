// internal/entity/ecs.go
package entity

import (
	"go-reactor-sim/internal/component"
	"go-reactor-sim/internal/power"
	"go-reactor-sim/internal/reactor"
	"go-reactor-sim/internal/types"
)

type ECS struct {
	GameTime       float64 // тики симуляции с начала мира
	NextID         types.EntityID
	Positions      map[types.EntityID]*component.Position
	Buildings      map[types.EntityID]*component.Building
	Healths        map[types.EntityID]*component.Health
	Renderables    map[types.EntityID]*component.Renderable
	Reactors       map[types.EntityID]*reactor.Reactor
	Generators     map[types.EntityID]*power.Generator
	Consumers      map[types.EntityID]*component.Consumer
	Supplies       map[types.EntityID]*component.Supply
	ReactorVisuals map[types.EntityID]*component.ReactorVisual
	Effects        map[types.EntityID]*component.Effect
	RunState       component.RunState
}

func NewECS() *ECS {
	return &ECS{
		NextID:         1,
		Positions:      make(map[types.EntityID]*component.Position),
		Buildings:      make(map[types.EntityID]*component.Building),
		Healths:        make(map[types.EntityID]*component.Health),
		Renderables:    make(map[types.EntityID]*component.Renderable),
		Reactors:       make(map[types.EntityID]*reactor.Reactor),
		Generators:     make(map[types.EntityID]*power.Generator),
		Consumers:      make(map[types.EntityID]*component.Consumer),
		Supplies:       make(map[types.EntityID]*component.Supply),
		ReactorVisuals: make(map[types.EntityID]*component.ReactorVisual),
		Effects:        make(map[types.EntityID]*component.Effect),
		RunState:       component.Running,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Remove удаляет сущность из всех хранилищ.
func (ecs *ECS) Remove(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Buildings, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Reactors, id)
	delete(ecs.Generators, id)
	delete(ecs.Consumers, id)
	delete(ecs.Supplies, id)
	delete(ecs.ReactorVisuals, id)
	delete(ecs.Effects, id)
}
