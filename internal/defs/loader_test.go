package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLibrary(t *testing.T) {
	lib := NewDefaultLibrary()
	require.NoError(t, lib.validate())

	reactor, err := lib.Block("thorium-reactor")
	require.NoError(t, err)
	assert.Equal(t, BlockTypeReactor, reactor.Type)
	assert.Equal(t, 30, reactor.ItemCapacity)
	require.NotNil(t, reactor.Reactor)
	assert.Equal(t, 0.5, reactor.Reactor.CoolantPower)
	assert.Equal(t, 6.0, reactor.Reactor.ProductionTime(60))
	assert.Equal(t, Color{R: 0x7f, G: 0x19, B: 0xea, A: 255}, reactor.Reactor.LightColor)

	_, err = lib.Block("mender")
	assert.ErrorIs(t, err, ErrUnknownBlock)

	water, err := lib.LiquidByNumericID(1)
	require.NoError(t, err)
	assert.Equal(t, "water", water.ID)
	_, err = lib.LiquidByNumericID(77)
	assert.ErrorIs(t, err, ErrUnknownLiquid)

	assert.Equal(t, []string{"laser-drill", "thorium-reactor", "thorium-wall"}, lib.BlockIDs())
}

func TestParseLibraryOverrides(t *testing.T) {
	doc := `
items:
  - id: plutonium
    name: Plutonium
    color: "#55ff55"
blocks:
  - id: thorium-reactor
    name: Tuned Reactor
    type: REACTOR
    size: 3
    health: 900
    item_capacity: 40
    liquid_capacity: 50
    color: "a0a0b0"
    reactor:
      fuel_item: plutonium
      item_duration: 200
      heating: 0.03
      smoke_threshold: 0.3
      flash_threshold: 0.46
      coolant_power: 0.4
      power_production: 20
      explosion_radius: 4
      explosion_damage: 3000
      explosion_min_fuel: 5
      explosion_min_heat: 0.5
      light_color: "7f19ea"
      cool_color: "ffffff00"
      hot_color: "ff9575a3"
`
	lib, err := ParseLibrary([]byte(doc))
	require.NoError(t, err)

	reactor, err := lib.Block("thorium-reactor")
	require.NoError(t, err)
	assert.Equal(t, "Tuned Reactor", reactor.Name)
	assert.Equal(t, 40, reactor.ItemCapacity)
	assert.Equal(t, "plutonium", reactor.Reactor.FuelItem)
	assert.Equal(t, Color{R: 255, G: 255, B: 255, A: 0}, reactor.Reactor.CoolColor)
	assert.Equal(t, Color{R: 0xff, G: 0x95, B: 0x75, A: 0xa3}, reactor.Reactor.HotColor)

	_, err = lib.Block("thorium-wall")
	assert.NoError(t, err, "built-ins survive the merge")
}

func TestParseLibraryRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown fuel", `
blocks:
  - id: bad
    type: REACTOR
    size: 1
    item_capacity: 10
    reactor: {fuel_item: unobtainium, coolant_power: 1, item_duration: 1}
`},
		{"missing reactor stats", `
blocks:
  - {id: bad, type: REACTOR, size: 1, item_capacity: 3}
`},
		{"bad color", `
items:
  - {id: x, color: "zz"}
`},
		{"reserved liquid id", `
liquids:
  - {id: slag, numeric_id: 0}
`},
		{"duplicate liquid id", `
liquids:
  - {id: slag, numeric_id: 1}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLibrary([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadLibraryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("liquids:\n  - {id: slag, name: Slag, numeric_id: 9, color: \"ffa166\"}\n"), 0o644))

	lib, err := LoadLibrary(path)
	require.NoError(t, err)
	slag, err := lib.Liquid("slag")
	require.NoError(t, err)
	assert.Equal(t, byte(9), slag.NumericID)

	_, err = LoadLibrary(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestColorRoundTrip(t *testing.T) {
	c, err := ParseColor("#ff9575a3")
	require.NoError(t, err)
	out, err := c.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "ff9575a3", out)
	assert.Equal(t, uint8(0xa3), c.ToRGBA().A)
}

func TestLiquidCodec(t *testing.T) {
	lib := NewDefaultLibrary()
	assert.Equal(t, byte(2), lib.LiquidNumericID("cryofluid"))
	assert.Equal(t, byte(0), lib.LiquidNumericID("slag"))

	id, ok := lib.LiquidID(1)
	assert.True(t, ok)
	assert.Equal(t, "water", id)

	_, ok = lib.LiquidID(0)
	assert.False(t, ok)
	_, ok = lib.LiquidID(99)
	assert.False(t, ok)
}
