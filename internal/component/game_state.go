// internal/component/game_state.go
package component

// RunState — состояние симуляции
type RunState int

const (
	Running RunState = iota
	Paused
)

func (s RunState) String() string {
	if s == Paused {
		return "paused"
	}
	return "running"
}
