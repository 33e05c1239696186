// internal/scripting/engine.go
package scripting

import (
	"context"
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// ControlFunc is the global every controller script defines.
const ControlFunc = "control"

var ErrNoControl = errors.New("script does not define control()")

// Engine — одна Lua VM для контроллеров реакторов.
// Доступ только из потока симуляции.
type Engine struct {
	vm     *lua.LState
	log    *zap.Logger
	closed bool
}

// NewEngine runs the script file at path and checks that it defines control().
func NewEngine(path string, log *zap.Logger) (*Engine, error) {
	e := newEngine(log)
	if err := e.vm.DoFile(path); err != nil {
		e.Close()
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := e.checkControl(); err != nil {
		e.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("loaded lua controller", zap.String("file", path))
	return e, nil
}

// NewEngineFromString is NewEngine for inline source.
func NewEngineFromString(source string, log *zap.Logger) (*Engine, error) {
	e := newEngine(log)
	if err := e.vm.DoString(source); err != nil {
		e.Close()
		return nil, fmt.Errorf("load inline script: %w", err)
	}
	if err := e.checkControl(); err != nil {
		e.Close()
		return nil, err
	}
	return e, nil
}

func newEngine(log *zap.Logger) *Engine {
	vm := lua.NewState(lua.Options{SkipOpenLibs: false})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	e := &Engine{vm: vm, log: log}
	vm.SetGlobal("log", vm.NewFunction(e.luaLog))
	return e
}

func (e *Engine) checkControl() error {
	if _, ok := e.vm.GetGlobal(ControlFunc).(*lua.LFunction); !ok {
		return ErrNoControl
	}
	return nil
}

// luaLog: log(msg) из скрипта пишет в общий логгер.
func (e *Engine) luaLog(L *lua.LState) int {
	e.log.Info("lua", zap.String("msg", L.CheckString(1)))
	return 0
}

// Control calls control(r) with a table of sensor values.
// ok is false when the script returns nil, meaning "leave as is".
func (e *Engine) Control(ctx context.Context, id uint64, sensors map[string]float64) (enabled, ok bool, err error) {
	fn := e.vm.GetGlobal(ControlFunc)

	t := e.vm.NewTable()
	t.RawSetString("id", lua.LNumber(id))
	for name, v := range sensors {
		t.RawSetString(name, lua.LNumber(v))
	}

	e.vm.SetContext(ctx)
	defer e.vm.RemoveContext()

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		return false, false, fmt.Errorf("lua %s: %w", ControlFunc, err)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	switch v := result.(type) {
	case lua.LBool:
		return bool(v), true, nil
	case *lua.LNilType:
		return false, false, nil
	case lua.LNumber:
		return v != 0, true, nil
	default:
		return false, false, fmt.Errorf("lua %s returned %s, want boolean", ControlFunc, result.Type())
	}
}

// Close shuts down the Lua VM. Repeated calls do nothing.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.vm.Close()
}
