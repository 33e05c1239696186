// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-reactor-sim/internal/component"
	"go-reactor-sim/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState останавливает симуляцию поверх GameState.
type PauseState struct {
	stateMachine *StateMachine
	game         *GameState
	wasRunning   bool
}

func NewPauseState(sm *StateMachine, gs *GameState) *PauseState {
	return &PauseState{stateMachine: sm, game: gs}
}

func (s *PauseState) Enter() {
	ecs := s.game.Game().ECS
	s.wasRunning = ecs.RunState == component.Running
	ecs.RunState = component.Paused
}

func (s *PauseState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.stateMachine.SetState(s.game)
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		s.stateMachine.SetState(NewLoadState(s.stateMachine, s.game.env, s))
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	face := basicfont.Face7x13
	lines := []string{"PAUSED", "Esc/P resume   L saves"}
	for i, line := range lines {
		bounds := text.BoundString(face, line)
		text.Draw(screen, line, face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2+i*20, color.White)
	}
}

// Exit возвращает симуляции прежнее состояние.
func (s *PauseState) Exit() {
	if s.wasRunning {
		s.game.Game().ECS.RunState = component.Running
	}
}
