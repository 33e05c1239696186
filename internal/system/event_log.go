// internal/system/event_log.go
package system

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go-reactor-sim/internal/event"
)

// EventLog пишет события симуляции в лог на уровне debug.
// Дым и сгорание топлива слишком частые, их пропускаем.
type EventLog struct {
	log *zap.Logger
}

// NewEventLog subscribes to every event. Nothing is subscribed when debug
// logging is off.
func NewEventLog(eventDispatcher *event.Dispatcher, log *zap.Logger) *EventLog {
	l := &EventLog{log: log.Named("events")}
	if log.Core().Enabled(zapcore.DebugLevel) {
		eventDispatcher.SubscribeAll(l)
	}
	return l
}

func (l *EventLog) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.OverheatData:
		l.log.Debug(string(e.Type), zap.Uint64("id", uint64(data.ID)), zap.Float64("heat", data.Heat))
	case event.DestroyedData:
		l.log.Debug(string(e.Type), zap.Uint64("id", uint64(data.ID)), zap.String("def", data.DefID))
	case event.ExplosionData:
		l.log.Debug(string(e.Type), zap.Uint64("source", uint64(data.SourceID)), zap.Int("radius", data.Radius))
	case event.SmokeData, event.FuelData:
	default:
		l.log.Debug(string(e.Type), zap.Any("data", data))
	}
}
