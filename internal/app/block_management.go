// internal/app/block_management.go
package app

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"go-reactor-sim/internal/component"
	"go-reactor-sim/internal/config"
	"go-reactor-sim/internal/defs"
	"go-reactor-sim/internal/event"
	"go-reactor-sim/internal/reactor"
	"go-reactor-sim/internal/types"
	"go-reactor-sim/pkg/hexmap"
)

var ErrCannotPlace = errors.New("hex is not free")

// DefaultReactor is the block placed by PlaceReactor.
const DefaultReactor = "thorium-reactor"

// PlaceBlock creates a building of defID at hex.
func (g *Game) PlaceBlock(defID string, hex hexmap.Hex) (types.EntityID, error) {
	def, err := g.Library.Block(defID)
	if err != nil {
		return 0, err
	}
	if !g.HexMap.CanPlace(hex) {
		return 0, fmt.Errorf("place %s at %v: %w", defID, hex, ErrCannotPlace)
	}

	id := g.ECS.NewEntity()
	b := &component.Building{DefID: def.ID, Hex: hex, Size: def.Size, Enabled: true}
	h := &component.Health{Value: def.Health, Max: def.Health}

	if def.Type == defs.BlockTypeReactor {
		r, err := reactor.New(def, b, h, config.TileSize)
		if err != nil {
			return 0, err
		}
		g.ECS.Reactors[id] = r
		g.ECS.Generators[id] = r.Generator
		g.ECS.ReactorVisuals[id] = &component.ReactorVisual{}
	} else {
		g.ECS.Renderables[id] = component.NewRenderable(def.Color.ToRGBA(), def.Type == defs.BlockTypeWall)
	}
	if def.Type == defs.BlockTypeConsumer {
		g.ECS.Consumers[id] = &component.Consumer{PowerUse: def.PowerUse}
	}

	x, y := hex.ToPixel(config.HexWorldSize)
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Buildings[id] = b
	g.ECS.Healths[id] = h
	g.HexMap.Occupy(hex, uint64(id))

	g.EventDispatcher.Dispatch(event.Event{Type: event.BuildingPlaced, Data: id})
	return id, nil
}

// PlaceReactor places the default reactor with fuel and coolant supply attached.
func (g *Game) PlaceReactor(hex hexmap.Hex) (types.EntityID, error) {
	id, err := g.PlaceBlock(DefaultReactor, hex)
	if err != nil {
		return 0, err
	}
	g.AttachSupply(id)
	return id, nil
}

// AttachSupply connects the configured feeder and pump to a reactor.
func (g *Game) AttachSupply(id types.EntityID) bool {
	r, ok := g.ECS.Reactors[id]
	if !ok {
		return false
	}
	sc := g.Config.Supply
	g.ECS.Supplies[id] = &component.Supply{
		Item:          r.Stats.FuelItem,
		ItemPerSecond: sc.FuelPerSecond,
		Liquid:        sc.Coolant,
		LiquidPerTick: sc.CoolantPerSecond / g.Config.Simulation.TicksPerSecond,
	}
	return true
}

// ToggleCoolant switches the coolant pump of a reactor on or off.
func (g *Game) ToggleCoolant(id types.EntityID) bool {
	s, ok := g.ECS.Supplies[id]
	if !ok {
		return false
	}
	if s.Liquid == "" {
		s.Liquid = g.Config.Supply.Coolant
	} else {
		s.Liquid = ""
	}
	return s.Liquid != ""
}

// RemoveBlock deconstructs the building at hex without an explosion.
func (g *Game) RemoveBlock(hex hexmap.Hex) bool {
	occupant, ok := g.HexMap.Occupant(hex)
	if !ok {
		return false
	}
	g.HexMap.Free(hex)
	g.ECS.Remove(types.EntityID(occupant))
	return true
}

// BlockAt returns the building ID on hex.
func (g *Game) BlockAt(hex hexmap.Hex) (types.EntityID, bool) {
	occupant, ok := g.HexMap.Occupant(hex)
	return types.EntityID(occupant), ok
}

// ReactorIDs returns the IDs of all reactors in ascending order.
func (g *Game) ReactorIDs() []types.EntityID {
	return slices.Sorted(maps.Keys(g.ECS.Reactors))
}

// ToggleReactor flips the enabled flag.
func (g *Game) ToggleReactor(id types.EntityID) bool {
	r, ok := g.ECS.Reactors[id]
	if !ok || r.Dead() {
		return false
	}
	r.Building.Enabled = !r.Building.Enabled
	return r.Building.Enabled
}

// FeedFuel pushes n fuel items into a reactor by hand and returns how many it took.
func (g *Game) FeedFuel(id types.EntityID, n int) int {
	r, ok := g.ECS.Reactors[id]
	if !ok {
		return 0
	}
	return r.HandleItem(r.Stats.FuelItem, n)
}
