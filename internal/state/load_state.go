// internal/state/load_state.go
package state

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"go-reactor-sim/internal/app"
	"go-reactor-sim/internal/persist"
)

// LoadState — список слотов сохранения: загрузка, удаление или новая площадка.
type LoadState struct {
	sm      *StateMachine
	env     Env
	saves   []persist.SaveInfo
	cursor  int
	message string
	back    State // куда вернуться по Esc, может быть nil
}

func NewLoadState(sm *StateMachine, env Env, back State) *LoadState {
	return &LoadState{sm: sm, env: env, back: back}
}

func (m *LoadState) Enter() {
	m.refresh()
}

func (m *LoadState) refresh() {
	m.saves = nil
	if m.env.Store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	saves, err := m.env.Store.List(ctx)
	if err != nil {
		m.env.Log.Error("list saves", zap.Error(err))
		m.message = "cannot list saves"
		return
	}
	m.saves = saves
	m.cursor = min(m.cursor, max(len(saves)-1, 0))
}

func (m *LoadState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if m.back != nil {
			m.sm.SetState(m.back)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		m.start(nil)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		m.move(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		m.move(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyL):
		m.load()
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete), inpututil.IsKeyJustPressed(ebiten.KeyD):
		m.delete()
	}
}

func (m *LoadState) move(d int) {
	if len(m.saves) == 0 {
		return
	}
	m.cursor = (m.cursor + d + len(m.saves)) % len(m.saves)
}

func (m *LoadState) selectedSave() (persist.SaveInfo, bool) {
	if m.cursor < 0 || m.cursor >= len(m.saves) {
		return persist.SaveInfo{}, false
	}
	return m.saves[m.cursor], true
}

func (m *LoadState) load() {
	info, ok := m.selectedSave()
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	g := app.NewGame(m.env.Config, m.env.Library, m.env.Engine, m.env.Log)
	if err := g.LoadFrom(ctx, m.env.Store, info.ID); err != nil {
		m.env.Log.Error("load save", zap.String("id", info.ID), zap.Error(err))
		m.message = "load failed: " + err.Error()
		return
	}
	m.start(g)
}

func (m *LoadState) delete() {
	info, ok := m.selectedSave()
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := m.env.Store.Delete(ctx, info.ID); err != nil {
		m.message = "delete failed: " + err.Error()
		return
	}
	m.message = "deleted " + info.Name
	m.refresh()
}

func (m *LoadState) start(g *app.Game) {
	gs, err := NewGameState(m.sm, m.env, g)
	if err != nil {
		m.env.Log.Error("start simulation", zap.Error(err))
		m.message = err.Error()
		return
	}
	m.sm.SetState(gs)
}

func (m *LoadState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	ebitenutil.DebugPrintAt(screen, m.listing(), 40, 40)
}

// listing собирает текст меню.
func (m *LoadState) listing() string {
	var b strings.Builder
	b.WriteString("SAVES\n\nN  new simulation   Esc  back\n")
	if m.env.Store != nil {
		b.WriteString("Up/Down  select   Enter/L  load   D  delete\n\n")
	}
	for i, s := range m.saves {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%-20s tick %-8d overheats %d  explosions %d  %s\n",
			marker, s.Name, s.Tick, s.Stats.Overheats, s.Stats.Explosions, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	if m.env.Store != nil && len(m.saves) == 0 {
		b.WriteString("no saves yet\n")
	}
	if m.message != "" {
		b.WriteString("\n" + m.message + "\n")
	}
	return b.String()
}

func (m *LoadState) Exit() {}
