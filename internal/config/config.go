// internal/config/config.go
package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	HexSize      = 38.0 // радиус гекса на экране, px
	MapRadius    = 4

	TicksPerSecond = 60.0 // тиков симуляции в секунду
	MaxDeltaTime   = 0.06 // секунд, ограничение кадра
	TileSize       = 8.0  // мировых единиц в одной клетке
	WorldToScreen  = 2.4  // px на мировую единицу
	HexWorldSize   = HexSize / WorldToScreen

	ClickCooldown = 300 // мс

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	SpeedButtonOffsetX = 80
	SpeedButtonY       = 30
	SpeedButtonSize    = 18.0

	BarWidth  = 160
	BarHeight = 14
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TileColor       = color.RGBA{70, 100, 120, 220}
	TileStrokeColor = color.RGBA{110, 140, 160, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	EnabledColor    = color.RGBA{70, 130, 180, 220}
	DisabledColor   = color.RGBA{220, 60, 60, 220}
	HeatBarColor    = color.RGBA{255, 165, 83, 255} // lightOrange
	PowerBarColor   = color.RGBA{255, 211, 127, 255}
	CoolantBarColor = color.RGBA{110, 205, 236, 255}
	SmokeColor      = color.RGBA{110, 110, 110, 180}
	ExplosionColor  = color.RGBA{255, 140, 60, 220}

	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
	TimeScales = []float64{1, 2, 4}
)

// Config — настройки, загружаемые из TOML поверх значений по умолчанию.
type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Blocks     BlocksConfig     `toml:"blocks"`
	Power      PowerConfig      `toml:"power"`
	Supply     SupplyConfig     `toml:"supply"`
	Storage    StorageConfig    `toml:"storage"`
	Logging    LoggingConfig    `toml:"logging"`
	Scripting  ScriptingConfig  `toml:"scripting"`
}

type SimulationConfig struct {
	TicksPerSecond float64 `toml:"ticks_per_second"`
	MaxDeltaTime   float64 `toml:"max_delta_time"` // seconds
	TimeScale      float64 `toml:"time_scale"`
	Seed           int64   `toml:"seed"` // 0 = time based
	MapRadius      int     `toml:"map_radius"`
}

type BlocksConfig struct {
	DefsPath string `toml:"defs_path"` // YAML block definitions, empty = built-in
}

type PowerConfig struct {
	BatteryCapacity float64 `toml:"battery_capacity"`
	Demand          float64 `toml:"demand"` // power units per tick
}

type SupplyConfig struct {
	FuelPerSecond    float64 `toml:"fuel_per_second"`
	CoolantPerSecond float64 `toml:"coolant_per_second"`
	Coolant          string  `toml:"coolant"`
}

type StorageConfig struct {
	Path string `toml:"path"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type ScriptingConfig struct {
	Controller string `toml:"controller"` // Lua file, empty = no controller
}

// Load reads path and overlays it on the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Simulation.TicksPerSecond <= 0 {
		return fmt.Errorf("simulation.ticks_per_second must be positive, got %v", c.Simulation.TicksPerSecond)
	}
	if c.Simulation.TimeScale <= 0 {
		return fmt.Errorf("simulation.time_scale must be positive, got %v", c.Simulation.TimeScale)
	}
	if c.Simulation.MapRadius < 0 {
		return fmt.Errorf("simulation.map_radius must not be negative, got %d", c.Simulation.MapRadius)
	}
	if c.Supply.FuelPerSecond < 0 || c.Supply.CoolantPerSecond < 0 {
		return fmt.Errorf("supply rates must not be negative")
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TicksPerSecond: TicksPerSecond,
			MaxDeltaTime:   MaxDeltaTime,
			TimeScale:      1,
			Seed:           0,
			MapRadius:      MapRadius,
		},
		Power: PowerConfig{
			BatteryCapacity: 100000,
			Demand:          10,
		},
		Supply: SupplyConfig{
			FuelPerSecond:    1,
			CoolantPerSecond: 12,
			Coolant:          "cryofluid",
		},
		Storage: StorageConfig{
			Path: "data/saves.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
