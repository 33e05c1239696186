// internal/event/types.go
package event

import "go-reactor-sim/internal/types"

const (
	ReactorOverheat   EventType = "ReactorOverheat"   // Перегрев реактора (триггер достижений)
	BuildingDestroyed EventType = "BuildingDestroyed" // Здание уничтожено
	ExplosionCreated  EventType = "ExplosionCreated"  // Взрыв после уничтожения
	SmokeEmitted      EventType = "SmokeEmitted"      // Клуб дыма над горячим реактором
	FuelConsumed      EventType = "FuelConsumed"      // Сгорела единица топлива
	BuildingPlaced    EventType = "BuildingPlaced"
)

// OverheatData is the payload of ReactorOverheat.
type OverheatData struct {
	ID   types.EntityID
	Heat float64
}

// DestroyedData is the payload of BuildingDestroyed.
type DestroyedData struct {
	ID    types.EntityID
	DefID string
	X, Y  float64
}

// ExplosionData is the payload of ExplosionCreated.
type ExplosionData struct {
	SourceID types.EntityID
	X, Y     float64
	Radius   int
	Damage   float64
}

// SmokeData is the payload of SmokeEmitted.
type SmokeData struct {
	SourceID types.EntityID
	X, Y     float64
}

// FuelData is the payload of FuelConsumed.
type FuelData struct {
	ID        types.EntityID
	Remaining int
}
