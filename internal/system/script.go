// internal/system/script.go
package system

import (
	"context"
	"time"

	"go.uber.org/zap"

	"go-reactor-sim/internal/entity"
	"go-reactor-sim/internal/scripting"
)

// scriptBudget ограничивает время одного вызова control().
const scriptBudget = 5 * time.Millisecond

// ScriptSystem отдаёт решение о включении реакторов Lua-контроллеру.
type ScriptSystem struct {
	ecs    *entity.ECS
	engine *scripting.Engine
	log    *zap.Logger
	failed map[uint64]bool
}

func NewScriptSystem(ecs *entity.ECS, engine *scripting.Engine, log *zap.Logger) *ScriptSystem {
	return &ScriptSystem{ecs: ecs, engine: engine, log: log, failed: make(map[uint64]bool)}
}

// SetEngine заменяет контроллер; предыдущий закрывается. nil отключает скрипты.
func (s *ScriptSystem) SetEngine(engine *scripting.Engine) {
	if s.engine != nil && s.engine != engine {
		s.engine.Close()
	}
	s.engine = engine
	clear(s.failed)
}

// Engine returns the active controller, nil when none.
func (s *ScriptSystem) Engine() *scripting.Engine {
	return s.engine
}

func (s *ScriptSystem) Update() {
	if s.engine == nil {
		return
	}
	for _, id := range sortedIDs(s.ecs.Reactors) {
		r := s.ecs.Reactors[id]
		if r.Dead() {
			continue
		}
		values := r.SenseAll()
		sensors := make(map[string]float64, len(values))
		for name, v := range values {
			sensors[string(name)] = v
		}

		ctx, cancel := context.WithTimeout(context.Background(), scriptBudget)
		enabled, ok, err := s.engine.Control(ctx, uint64(id), sensors)
		cancel()
		if err != nil {
			// Ошибку логируем один раз на реактор, состояние не меняем.
			if !s.failed[uint64(id)] {
				s.log.Error("reactor controller failed", zap.Uint64("id", uint64(id)), zap.Error(err))
				s.failed[uint64(id)] = true
			}
			continue
		}
		delete(s.failed, uint64(id))
		if ok {
			r.Building.Enabled = enabled
		}
	}
}
