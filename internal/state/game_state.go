// internal/state/game_state.go
package state

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"go-reactor-sim/internal/app"
	"go-reactor-sim/internal/component"
	"go-reactor-sim/internal/config"
	"go-reactor-sim/internal/system"
	"go-reactor-sim/internal/types"
	"go-reactor-sim/internal/ui"
	"go-reactor-sim/pkg/hexmap"
	"go-reactor-sim/pkg/render"
)

const (
	feedAmount  = 10
	saveTimeout = 2 * time.Second
)

// GameState — состояние симуляции
type GameState struct {
	sm           *StateMachine
	env          Env
	game         *app.Game
	renderer     *render.HexRenderer
	renderSystem *system.RenderSystem
	indicator    *ui.StateIndicator
	speedButton  *ui.SpeedButton
	pauseButton  *ui.PauseButton
	saveButton   *ui.Button
	heatBar      *ui.Bar
	coolantBar   *ui.Bar
	powerBar     *ui.Bar
	selected     types.EntityID
	hasSelected  bool
	frameDelta   float64 // тиков за последний кадр, для анимаций
	message      string
}

// NewGameState создаёт состояние; g может быть nil, тогда строится новый мир.
func NewGameState(sm *StateMachine, env Env, g *app.Game) (*GameState, error) {
	if g == nil {
		var err error
		if g, err = newWorld(env); err != nil {
			return nil, err
		}
	}

	renderer := render.NewHexRenderer(g.HexMap, config.HexSize, config.ScreenWidth, config.ScreenHeight, render.MapColors{
		BackgroundColor: config.BackgroundColor,
		TileColor:       config.TileColor,
		StrokeColor:     config.TileStrokeColor,
		TextColor:       config.TextLightColor,
		StrokeWidth:     2,
	})
	face := renderer.FontFace()

	gs := &GameState{
		sm:           sm,
		env:          env,
		game:         g,
		renderer:     renderer,
		renderSystem: system.NewRenderSystem(g.ECS, g.Library, renderer),
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		speedButton: ui.NewSpeedButton(
			float32(config.ScreenWidth-config.SpeedButtonOffsetX),
			config.SpeedButtonY,
			config.SpeedButtonSize,
			config.SpeedButtonColors,
		),
		pauseButton: ui.NewPauseButton(
			float32(config.ScreenWidth-config.SpeedButtonOffsetX*2),
			config.SpeedButtonY,
			config.SpeedButtonSize*0.7,
			config.EnabledColor,
			config.DisabledColor,
		),
		saveButton: ui.NewButton(image.Rect(config.ScreenWidth-110, 60, config.ScreenWidth-20, 84), "Save", face),
		heatBar:    ui.NewBar(20, config.ScreenHeight-80, config.BarWidth, config.BarHeight, "heat", config.HeatBarColor, face),
		coolantBar: ui.NewBar(20, config.ScreenHeight-60, config.BarWidth, config.BarHeight, "coolant", config.CoolantBarColor, face),
		powerBar:   ui.NewBar(20, config.ScreenHeight-40, config.BarWidth, config.BarHeight, "battery", config.PowerBarColor, face),
	}
	gs.speedButton.SetState(g.TimeScaleIndex())
	gs.pauseButton.SetPaused(g.ECS.RunState == component.Paused)
	gs.selectFirstReactor()
	return gs, nil
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(g.game.ECS.RunState == component.Paused)
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.handleKeys()
	g.pollController()

	g.frameDelta = 0
	if g.game.ECS.RunState == component.Running {
		g.frameDelta = min(deltaTime, g.game.Config.Simulation.MaxDeltaTime) * g.game.Config.Simulation.TicksPerSecond
	}
	g.game.Update(deltaTime)

	if g.hasSelected {
		if r, ok := g.game.ECS.Reactors[g.selected]; !ok || r.Dead() {
			g.selectFirstReactor()
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !g.handleUIClick(float32(x), float32(y)) {
			g.handleHexClick(g.renderer.ScreenToHex(x, y), ebiten.MouseButtonLeft)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.handleHexClick(g.renderer.ScreenToHex(x, y), ebiten.MouseButtonRight)
	}
}

func (g *GameState) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.togglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.toggleSelected()
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		if g.hasSelected {
			n := g.game.FeedFuel(g.selected, feedAmount)
			g.message = fmt.Sprintf("fed %d fuel", n)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if g.hasSelected {
			if g.game.ToggleCoolant(g.selected) {
				g.message = "coolant on"
			} else {
				g.message = "coolant off"
			}
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.save()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.cycleSelection()
	}
}

// handleUIClick возвращает true, если клик попал в элемент интерфейса.
func (g *GameState) handleUIClick(mx, my float32) bool {
	cooldown := time.Duration(config.ClickCooldown) * time.Millisecond
	switch {
	case g.speedButton.IsClicked(mx, my):
		if time.Since(g.speedButton.LastToggleTime) >= cooldown {
			g.game.CycleTimeScale()
			g.speedButton.ToggleState()
			g.speedButton.SetState(g.game.TimeScaleIndex())
		}
	case g.pauseButton.IsClicked(mx, my):
		if time.Since(g.pauseButton.LastToggleTime) >= cooldown {
			g.togglePause()
		}
	case g.saveButton.Contains(int(mx), int(my)):
		g.save()
	case g.indicator.IsClicked(mx, my):
		if time.Since(g.indicator.LastClickTime) >= cooldown {
			g.toggleSelected()
			g.indicator.HandleClick()
		}
	default:
		return false
	}
	return true
}

// handleHexClick: левый клик выбирает реактор или ставит новый, правый разбирает блок.
func (g *GameState) handleHexClick(hex hexmap.Hex, button ebiten.MouseButton) {
	if !g.game.HexMap.Contains(hex) {
		return
	}
	switch button {
	case ebiten.MouseButtonLeft:
		if id, ok := g.game.BlockAt(hex); ok {
			if _, isReactor := g.game.ECS.Reactors[id]; isReactor {
				g.selected, g.hasSelected = id, true
			}
			return
		}
		id, err := g.game.PlaceReactor(hex)
		if err != nil {
			g.message = err.Error()
			return
		}
		g.selected, g.hasSelected = id, true
	case ebiten.MouseButtonRight:
		if g.game.RemoveBlock(hex) {
			g.message = fmt.Sprintf("removed block at %d,%d", hex.Q, hex.R)
		}
		if _, ok := g.game.ECS.Reactors[g.selected]; !ok {
			g.selectFirstReactor()
		}
	}
}

// pollController подхватывает перезагруженный Lua-контроллер.
func (g *GameState) pollController() {
	if g.env.Reloader == nil {
		return
	}
	select {
	case e := <-g.env.Reloader.Updates():
		g.game.ScriptSystem.SetEngine(e)
		g.env.Engine = e
		g.message = "controller reloaded"
	default:
	}
}

func (g *GameState) togglePause() {
	g.game.TogglePause()
	g.pauseButton.TogglePause()
	g.pauseButton.SetPaused(g.game.ECS.RunState == component.Paused)
}

func (g *GameState) toggleSelected() {
	if !g.hasSelected {
		return
	}
	if g.game.ToggleReactor(g.selected) {
		g.message = "reactor enabled"
	} else {
		g.message = "reactor disabled"
	}
}

func (g *GameState) selectFirstReactor() {
	g.hasSelected = false
	for _, id := range g.game.ReactorIDs() {
		if !g.game.ECS.Reactors[id].Dead() {
			g.selected, g.hasSelected = id, true
			return
		}
	}
}

func (g *GameState) cycleSelection() {
	ids := g.game.ReactorIDs()
	if len(ids) == 0 {
		return
	}
	next := 0
	for i, id := range ids {
		if g.hasSelected && id == g.selected {
			next = (i + 1) % len(ids)
			break
		}
	}
	g.selected, g.hasSelected = ids[next], true
}

func (g *GameState) save() {
	if g.env.Store == nil {
		g.message = "no save storage configured"
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	name := time.Now().Format("2006-01-02 15:04:05")
	id, err := g.game.SaveTo(ctx, g.env.Store, name)
	if err != nil {
		g.env.Log.Error("save failed", zap.Error(err))
		g.message = "save failed"
		return
	}
	g.env.Log.Info("game saved", zap.String("id", id), zap.Int64("tick", g.game.Ticks()))
	g.message = "saved " + id[:8]
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	g.renderSystem.Draw(screen, g.frameDelta)

	stateColor := config.DisabledColor
	heat, coolant := 0.0, 0.0
	if r, ok := g.game.ECS.Reactors[g.selected]; g.hasSelected && ok {
		if r.Building.Enabled {
			stateColor = config.EnabledColor
		}
		heat = r.Heat
		if r.Liquids.Capacity > 0 {
			coolant = r.Liquids.CurrentAmount() / r.Liquids.Capacity
		}
		x, y := g.renderer.HexCenter(r.Building.Hex)
		render.StrokeCircle(screen, x, y, config.HexSize*0.95, 2, color.RGBA{255, 255, 255, 160})
	}
	g.indicator.Draw(screen, stateColor)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	cx, cy := ebiten.CursorPosition()
	g.saveButton.Draw(screen, g.saveButton.Contains(cx, cy))
	g.heatBar.Draw(screen, heat)
	g.coolantBar.Draw(screen, coolant)
	g.powerBar.Draw(screen, g.game.Power().BatteryFraction())

	stats := g.game.Stats.Stats()
	grid := g.game.Power()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"tick %d  x%.0f  %s\npower +%.1f / -%.1f  satisfied %.0f%%\noverheats %d  explosions %d\n%s",
		g.game.Ticks(), g.game.TimeScale, g.game.ECS.RunState,
		grid.LastProduced, grid.LastNeeded, grid.Satisfaction*100,
		stats.Overheats, stats.Explosions,
		g.message,
	))
	ebitenutil.DebugPrintAt(screen,
		"LMB place/select  RMB remove  Tab next  F toggle  E fuel  C coolant  Space pause  S save  Esc pause menu",
		20, config.ScreenHeight-20)
}

func (g *GameState) Exit() {}

// Game returns the running simulation.
func (g *GameState) Game() *app.Game {
	return g.game
}
