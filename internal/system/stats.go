// internal/system/stats.go
package system

import (
	"go-reactor-sim/internal/event"
	"go-reactor-sim/internal/persist"
)

// StatsListener считает перегревы и взрывы для достижений.
type StatsListener struct {
	stats persist.Stats
}

func NewStatsListener(eventDispatcher *event.Dispatcher) *StatsListener {
	l := &StatsListener{}
	eventDispatcher.Subscribe(event.ReactorOverheat, l)
	eventDispatcher.Subscribe(event.ExplosionCreated, l)
	return l
}

func (l *StatsListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.ReactorOverheat:
		l.stats.Overheats++
	case event.ExplosionCreated:
		l.stats.Explosions++
	}
}

func (l *StatsListener) Stats() persist.Stats {
	return l.stats
}

// Restore sets the counters, used after loading a save.
func (l *StatsListener) Restore(stats persist.Stats) {
	l.stats = stats
}
