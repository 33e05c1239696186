package component

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemStock(t *testing.T) {
	s := NewItemStock(30)
	assert.Equal(t, 25, s.Add("thorium", 25))
	assert.Equal(t, 5, s.Add("thorium", 10), "capped at capacity")
	assert.Equal(t, 0, s.Add("thorium", 1))
	assert.Equal(t, 30, s.Get("thorium"))
	assert.Equal(t, 3, s.Add("graphite", 3))
	assert.Equal(t, 33, s.Total())

	assert.Equal(t, 30, s.Remove("thorium", 40))
	assert.Equal(t, 0, s.Get("thorium"))
	assert.Equal(t, 0, s.Remove("thorium", 1))

	s.Set("thorium", 99)
	assert.Equal(t, 30, s.Get("thorium"))
	s.Set("thorium", -4)
	assert.Equal(t, 0, s.Get("thorium"))
}

func TestLiquidStock(t *testing.T) {
	s := NewLiquidStock(30)
	assert.True(t, s.Accepts("water"))
	assert.Equal(t, 20.0, s.Add("water", 20))
	assert.False(t, s.Accepts("cryofluid"), "one liquid at a time")
	assert.Equal(t, 0.0, s.Add("cryofluid", 5))
	assert.Equal(t, 10.0, s.Add("water", 15))
	assert.False(t, s.Accepts("water"), "full")

	assert.Equal(t, 30.0, s.Remove(31))
	assert.Equal(t, 4.0, s.Add("cryofluid", 4), "empty tank switches liquid")
	assert.Equal(t, "cryofluid", s.Current())
	assert.Equal(t, 4.0, s.CurrentAmount())
}

func TestHealth(t *testing.T) {
	h := Health{Value: 100, Max: 100}
	assert.False(t, h.Damage(40))
	assert.Equal(t, 0.6, h.Fraction())
	assert.True(t, h.Damage(70))
	assert.Equal(t, 0.0, h.Value)
	assert.True(t, h.Damage(0))
}

func TestSupplyAccumulate(t *testing.T) {
	s := Supply{ItemPerSecond: 1.5}
	assert.Equal(t, 0, s.Accumulate(0.5))
	assert.Equal(t, 1, s.Accumulate(0.5))
	assert.Equal(t, 2, s.Accumulate(1))

	s.Refund(5)
	assert.Equal(t, 1, s.Accumulate(0), "at most one refused item waits")
}

func TestEffectProgress(t *testing.T) {
	assert.Equal(t, 0.5, Effect{Timer: 5, Duration: 10}.Progress())
	assert.Equal(t, 1.0, Effect{Timer: 15, Duration: 10}.Progress())
	assert.Equal(t, 1.0, Effect{}.Progress())
}

func TestRenderableShade(t *testing.T) {
	r := NewRenderable(color.RGBA{R: 100, G: 200, A: 9}, true)
	assert.Equal(t, color.RGBA{R: 50, G: 100, B: 0, A: 9}, r.Stroke)
	assert.Equal(t, r.Color, r.Shade(1))
	assert.Equal(t, r.Stroke, r.Shade(0))
	assert.Equal(t, r.Stroke, r.Shade(-3), "health below zero is clamped")
	assert.Equal(t, color.RGBA{R: 75, G: 150, A: 9}, r.Shade(0.5))
}
