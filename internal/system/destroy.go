// internal/system/destroy.go
package system

import (
	"maps"
	"slices"

	"go-reactor-sim/internal/entity"
	"go-reactor-sim/internal/event"
	"go-reactor-sim/internal/types"
	"go-reactor-sim/pkg/hexmap"
)

// Destroyer убирает здания с карты. Здание считается живым, пока
// занимает свой гекс, поэтому каждое уничтожается ровно один раз.
type Destroyer struct {
	ecs             *entity.ECS
	hexMap          *hexmap.HexMap
	eventDispatcher *event.Dispatcher
}

func NewDestroyer(ecs *entity.ECS, hexMap *hexmap.HexMap, eventDispatcher *event.Dispatcher) *Destroyer {
	return &Destroyer{ecs: ecs, hexMap: hexMap, eventDispatcher: eventDispatcher}
}

// Destroy marks the building dead, frees its hex and fires BuildingDestroyed.
// It returns false when the building was already gone.
func (d *Destroyer) Destroy(id types.EntityID) bool {
	b, ok := d.ecs.Buildings[id]
	if !ok {
		return false
	}
	if occupant, taken := d.hexMap.Occupant(b.Hex); !taken || types.EntityID(occupant) != id {
		return false
	}
	d.hexMap.Free(b.Hex)
	b.Dead = true
	if r, ok := d.ecs.Reactors[id]; ok {
		r.Kill()
	}
	if h, ok := d.ecs.Healths[id]; ok {
		h.Value = 0
	}

	data := event.DestroyedData{ID: id, DefID: b.DefID}
	if pos, ok := d.ecs.Positions[id]; ok {
		data.X, data.Y = pos.X, pos.Y
	}
	d.eventDispatcher.Dispatch(event.Event{Type: event.BuildingDestroyed, Data: data})
	return true
}

// Sweep removes dead buildings from the ECS and returns how many were removed.
func (d *Destroyer) Sweep() int {
	removed := 0
	for _, id := range sortedIDs(d.ecs.Buildings) {
		if d.ecs.Buildings[id].Dead {
			d.ecs.Remove(id)
			removed++
		}
	}
	return removed
}

// sortedIDs даёт детерминированный порядок обхода для сидированного рандома.
func sortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	return slices.Sorted(maps.Keys(m))
}
