// internal/defs/blocks.go
package defs

// BlockType defines the category of a block.
type BlockType string

const (
	BlockTypeReactor  BlockType = "REACTOR"
	BlockTypeWall     BlockType = "WALL"
	BlockTypeConsumer BlockType = "CONSUMER"
)

// BlockDefinition holds all the static data for a specific type of block.
type BlockDefinition struct {
	ID             string        `yaml:"id"`
	Name           string        `yaml:"name"`
	Type           BlockType     `yaml:"type"`
	Size           int           `yaml:"size"` // footprint in tiles
	Health         float64       `yaml:"health"`
	ItemCapacity   int           `yaml:"item_capacity"`
	LiquidCapacity float64       `yaml:"liquid_capacity"`
	PowerUse       float64       `yaml:"power_use,omitempty"` // per tick, consumers only
	Reactor        *ReactorStats `yaml:"reactor,omitempty"`
	Color          Color         `yaml:"color"`
}

// ReactorStats contains parameters of a heat-driven generator.
type ReactorStats struct {
	FuelItem        string  `yaml:"fuel_item"`
	ItemDuration    float64 `yaml:"item_duration"`   // ticks to consume one fuel item
	Heating         float64 `yaml:"heating"`         // heating per tick * fullness
	SmokeThreshold  float64 `yaml:"smoke_threshold"` // heat at which the block starts smoking
	FlashThreshold  float64 `yaml:"flash_threshold"` // heat at which lights start flashing
	CoolantPower    float64 `yaml:"coolant_power"`   // heat removed per unit of coolant
	PowerProduction float64 `yaml:"power_production"`

	ExplosionRadius  int     `yaml:"explosion_radius"` // hexes
	ExplosionDamage  float64 `yaml:"explosion_damage"`
	ExplosionMinFuel int     `yaml:"explosion_min_fuel"`
	ExplosionMinHeat float64 `yaml:"explosion_min_heat"`

	LightColor Color `yaml:"light_color"`
	CoolColor  Color `yaml:"cool_color"`
	HotColor   Color `yaml:"hot_color"`
}

// ProductionTime returns the seconds needed to burn one fuel item.
func (s ReactorStats) ProductionTime(ticksPerSecond float64) float64 {
	return s.ItemDuration / ticksPerSecond
}

// DefaultBlocks is the built-in block library.
func DefaultBlocks() []BlockDefinition {
	return []BlockDefinition{
		{
			ID:             "thorium-reactor",
			Name:           "Thorium Reactor",
			Type:           BlockTypeReactor,
			Size:           3,
			Health:         700,
			ItemCapacity:   30,
			LiquidCapacity: 30,
			Color:          MustParseColor("a0a0b0"),
			Reactor: &ReactorStats{
				FuelItem:         "thorium",
				ItemDuration:     360,
				Heating:          0.02,
				SmokeThreshold:   0.3,
				FlashThreshold:   0.46,
				CoolantPower:     0.5,
				PowerProduction:  15,
				ExplosionRadius:  19,
				ExplosionDamage:  1250 * 4,
				ExplosionMinFuel: 5,
				ExplosionMinHeat: 0.5,
				LightColor:       MustParseColor("7f19ea"),
				CoolColor:        Color{R: 255, G: 255, B: 255, A: 0},
				HotColor:         MustParseColor("ff9575a3"),
			},
		},
		{
			ID:     "thorium-wall",
			Name:   "Thorium Wall",
			Type:   BlockTypeWall,
			Size:   1,
			Health: 800,
			Color:  MustParseColor("f9a3c7"),
		},
		{
			ID:       "laser-drill",
			Name:     "Laser Drill",
			Type:     BlockTypeConsumer,
			Size:     3,
			Health:   590,
			PowerUse: 1.1,
			Color:    MustParseColor("8aa3f4"),
		},
	}
}
