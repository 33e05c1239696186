// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — экран приложения
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine переключает экраны. Переход, запрошенный из Update,
// выполняется после возврата из Update: старое состояние успевает
// доработать кадр, прежде чем получит Exit.
type StateMachine struct {
	current  State
	updating bool
	next     State
	pending  bool
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Current возвращает активное состояние или nil.
func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState делает newState активным. nil оставляет машину пустой.
func (sm *StateMachine) SetState(newState State) {
	if sm.updating {
		sm.next, sm.pending = newState, true
		return
	}
	sm.switchTo(newState)
}

func (sm *StateMachine) switchTo(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current == nil {
		return
	}
	sm.updating = true
	sm.current.Update(deltaTime)
	sm.updating = false

	if sm.pending {
		next := sm.next
		sm.next, sm.pending = nil, false
		sm.switchTo(next)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
