package state

import (
	"context"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-reactor-sim/internal/config"
	"go-reactor-sim/internal/defs"
	"go-reactor-sim/internal/persist"
	"go-reactor-sim/pkg/hexmap"
)

type traceState struct {
	name string
	log  *[]string
}

func (s traceState) Enter() { *s.log = append(*s.log, "enter "+s.name) }
func (s traceState) Update(float64) { *s.log = append(*s.log, "update "+s.name) }
func (s traceState) Draw(*ebiten.Image) {}
func (s traceState) Exit() { *s.log = append(*s.log, "exit "+s.name) }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(1) // без состояния ничего не происходит

	sm.SetState(traceState{"a", &log})
	sm.Update(1)
	sm.SetState(traceState{"b", &log})
	sm.SetState(nil)
	sm.Update(1)

	assert.Equal(t, []string{"enter a", "update a", "exit a", "enter b", "exit b"}, log)
}

type switchingState struct {
	traceState
	sm   *StateMachine
	next State
}

func (s switchingState) Update(dt float64) {
	s.sm.SetState(s.next)
	s.traceState.Update(dt)
}

func TestStateMachineDefersSwitchFromUpdate(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	b := traceState{"b", &log}
	sm.SetState(switchingState{traceState: traceState{"a", &log}, sm: sm, next: b})
	sm.Update(1)

	assert.Equal(t, []string{"enter a", "update a", "exit a", "enter b"}, log)
	assert.Equal(t, State(b), sm.Current())
}

func testEnv(t *testing.T) Env {
	t.Helper()
	cfg := config.Default()
	cfg.Simulation.Seed = 1
	return Env{Config: cfg, Library: defs.NewDefaultLibrary(), Log: zap.NewNop()}
}

func TestNewWorld(t *testing.T) {
	g, err := newWorld(testEnv(t))
	require.NoError(t, err)

	ids := g.ReactorIDs()
	require.Len(t, ids, 1)
	id, ok := g.BlockAt(hexmap.Hex{})
	require.True(t, ok)
	assert.Equal(t, ids[0], id)
	assert.Contains(t, g.ECS.Supplies, id, "reactor starts with supply attached")
	assert.Len(t, g.ECS.Buildings, 1+len(demoLayout))
}

func TestHexClicks(t *testing.T) {
	env := testEnv(t)
	g, err := newWorld(env)
	require.NoError(t, err)
	gs := &GameState{env: env, game: g}
	gs.selectFirstReactor()
	first := gs.selected
	require.True(t, gs.hasSelected)

	free := hexmap.Hex{Q: 0, R: 3}
	gs.handleHexClick(free, ebiten.MouseButtonLeft)
	second, ok := g.BlockAt(free)
	require.True(t, ok)
	assert.Equal(t, second, gs.selected, "new reactor is selected")
	assert.Len(t, g.ReactorIDs(), 2)

	gs.handleHexClick(hexmap.Hex{}, ebiten.MouseButtonLeft)
	assert.Equal(t, first, gs.selected, "click on reactor selects it")

	gs.handleHexClick(hexmap.Hex{Q: 1, R: 1}, ebiten.MouseButtonLeft)
	assert.Equal(t, first, gs.selected, "walls are not selectable")

	gs.handleHexClick(hexmap.Hex{Q: 40, R: 40}, ebiten.MouseButtonLeft)
	assert.Len(t, g.ReactorIDs(), 2, "outside the map nothing happens")

	gs.handleHexClick(hexmap.Hex{}, ebiten.MouseButtonRight)
	assert.Len(t, g.ReactorIDs(), 1)
	assert.Equal(t, second, gs.selected, "selection moves to a remaining reactor")

	gs.cycleSelection()
	assert.Equal(t, second, gs.selected)

	gs.toggleSelected()
	assert.False(t, g.ECS.Reactors[second].Building.Enabled)
	assert.Equal(t, "reactor disabled", gs.message)
}

func TestSaveWithoutStore(t *testing.T) {
	env := testEnv(t)
	g, err := newWorld(env)
	require.NoError(t, err)
	gs := &GameState{env: env, game: g}
	gs.save()
	assert.Equal(t, "no save storage configured", gs.message)
}

func TestLoadStateListsSaves(t *testing.T) {
	ctx := context.Background()
	env := testEnv(t)
	store, err := persist.OpenStore(ctx, persist.MemoryPath, env.Log)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	env.Store = store

	g, err := newWorld(env)
	require.NoError(t, err)
	g.RunTicks(10)
	gs := &GameState{env: env, game: g}
	gs.save()
	require.Contains(t, gs.message, "saved ")

	m := NewLoadState(nil, env, nil)
	m.refresh()
	require.Len(t, m.saves, 1)
	assert.Equal(t, int64(10), m.saves[0].Tick)
	assert.Contains(t, m.listing(), "> ")

	m.move(1)
	assert.Equal(t, 0, m.cursor, "single entry wraps onto itself")

	m.delete()
	assert.Empty(t, m.saves)
	assert.Contains(t, m.listing(), "no saves yet")
}
