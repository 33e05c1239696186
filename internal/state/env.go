// internal/state/env.go
package state

import (
	"fmt"

	"go.uber.org/zap"

	"go-reactor-sim/internal/app"
	"go-reactor-sim/internal/config"
	"go-reactor-sim/internal/defs"
	"go-reactor-sim/internal/persist"
	"go-reactor-sim/internal/scripting"
	"go-reactor-sim/pkg/hexmap"
)

// Env — общие зависимости всех состояний. Engine, Reloader и Store могут быть nil.
type Env struct {
	Config   *config.Config
	Library  *defs.Library
	Engine   *scripting.Engine
	Reloader *scripting.Reloader
	Store    *persist.Store
	Log      *zap.Logger
}

// Стартовая площадка: реактор в центре, рядом бур и стена.
var demoLayout = []struct {
	defID string
	hex   hexmap.Hex
}{
	{"laser-drill", hexmap.Hex{Q: 2, R: -1}},
	{"laser-drill", hexmap.Hex{Q: -2, R: 2}},
	{"thorium-wall", hexmap.Hex{Q: 1, R: 1}},
	{"thorium-wall", hexmap.Hex{Q: -1, R: -1}},
}

// newWorld creates a simulation with the demo layout placed.
func newWorld(env Env) (*app.Game, error) {
	g := app.NewGame(env.Config, env.Library, env.Engine, env.Log)
	if _, err := g.PlaceReactor(hexmap.Hex{}); err != nil {
		return nil, fmt.Errorf("place reactor: %w", err)
	}
	for _, b := range demoLayout {
		if !g.HexMap.Contains(b.hex) {
			continue
		}
		if _, err := g.PlaceBlock(b.defID, b.hex); err != nil {
			return nil, fmt.Errorf("place %s: %w", b.defID, err)
		}
	}
	return g, nil
}
