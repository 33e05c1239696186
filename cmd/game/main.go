// cmd/game/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-reactor-sim/internal/app"
	"go-reactor-sim/internal/config"
	"go-reactor-sim/internal/logging"
	"go-reactor-sim/internal/persist"
	"go-reactor-sim/internal/scripting"
	"go-reactor-sim/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		configPath string
		savesOnly  bool
		watch      bool
	)
	root := &cobra.Command{
		Use:           "game",
		Short:         "Interactive reactor simulation viewer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, savesOnly, watch)
		},
	}
	root.Flags().StringVarP(&configPath, "config", "c", "config.toml", "TOML configuration file")
	root.Flags().BoolVar(&savesOnly, "saves", false, "start on the save list")
	root.Flags().BoolVar(&watch, "watch", true, "reload the Lua controller when its file changes")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(configPath string, savesOnly, watch bool) error {
	cfg, err := app.LoadConfig(configPath, true)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	lib, err := app.LoadLibrary(cfg)
	if err != nil {
		return err
	}
	engine, err := app.OpenController(cfg, log)
	if err != nil {
		return err
	}
	if engine != nil {
		defer engine.Close()
	}
	var reloader *scripting.Reloader
	if engine != nil && watch {
		reloader, err = scripting.NewReloader(cfg.Scripting.Controller, log)
		if err != nil {
			log.Warn("controller hot reload disabled", zap.Error(err))
			reloader = nil
		} else {
			defer reloader.Close()
		}
	}

	var store *persist.Store
	if cfg.Storage.Path != "" {
		store, err = persist.OpenStore(context.Background(), cfg.Storage.Path, log)
		if err != nil {
			// без хранилища играть можно, только без сохранений
			log.Warn("save storage unavailable", zap.Error(err))
			store = nil
		} else {
			defer store.Close()
		}
	}

	env := state.Env{Config: cfg, Library: lib, Engine: engine, Reloader: reloader, Store: store, Log: log}
	sm := state.NewStateMachine()
	if savesOnly && store != nil {
		sm.SetState(state.NewLoadState(sm, env, nil))
	} else {
		gs, err := state.NewGameState(sm, env, nil)
		if err != nil {
			return err
		}
		sm.SetState(gs)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Reactor Simulation")
	log.Info("starting viewer", zap.String("config", configPath), zap.Bool("scripted", engine != nil))
	return ebiten.RunGame(&AppGame{stateMachine: sm, lastUpdateTime: time.Now()})
}
