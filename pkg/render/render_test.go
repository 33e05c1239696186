package render

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-reactor-sim/internal/component"
	"go-reactor-sim/internal/defs"
	"go-reactor-sim/internal/reactor"
)

func thoriumStats(t *testing.T) (*defs.Library, defs.BlockDefinition) {
	t.Helper()
	lib := defs.NewDefaultLibrary()
	def, err := lib.Block("thorium-reactor")
	require.NoError(t, err)
	require.NotNil(t, def.Reactor)
	return lib, def
}

func TestLerpColor(t *testing.T) {
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	assert.Equal(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}, LerpColor(black, white, 0.5))
	assert.Equal(t, black, LerpColor(black, white, -1), "t below 0 is clamped")
	assert.Equal(t, white, LerpColor(black, white, 3), "t above 1 is clamped")
	assert.Equal(t, uint8(0), LerpColor(color.RGBA{}, color.RGBA{A: 0}, 0.7).A)
}

func TestAlphaHelpers(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 77}, WithAlpha(color.RGBA{R: 10, G: 20, B: 30, A: 255}, 0.3))
	assert.Equal(t, uint8(255), WithAlpha(Red, 2).A)
	assert.Equal(t, color.RGBA{R: 128, A: 128}, premultiply(color.RGBA{R: 255, A: 128}))
}

func TestHeatColor(t *testing.T) {
	_, def := thoriumStats(t)
	stats := *def.Reactor

	assert.Equal(t, stats.CoolColor.ToRGBA(), HeatColor(stats, 0))
	assert.Equal(t, stats.HotColor.ToRGBA(), HeatColor(stats, 1))
	mid := HeatColor(stats, 0.5)
	assert.Equal(t, uint8(82), mid.A, "alpha follows heat")
}

func TestCoolantAlpha(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		capacity float64
		want     float64
	}{
		{"empty", 0, 30, 0},
		{"half", 15, 30, 0.3},
		{"full", 30, 30, CoolantAlphaMax},
		{"overfull", 60, 30, CoolantAlphaMax},
		{"no tank", 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CoolantAlpha(tt.amount, tt.capacity), 1e-9)
		})
	}
}

func TestAdvanceFlash(t *testing.T) {
	flash, on := AdvanceFlash(1, 0.4, 0.46, 1)
	assert.False(t, on)
	assert.Equal(t, 1.0, flash, "phase holds below threshold")

	flash, on = AdvanceFlash(1, 0.46, 0.46, 1)
	assert.False(t, on, "threshold itself does not flash")
	assert.Equal(t, 1.0, flash)

	flash, on = AdvanceFlash(1, 1, 0.46, 2)
	assert.True(t, on)
	assert.InDelta(t, 1+(1+FlashBoost)*2, flash, 1e-9)

	// Hotter reactors flash faster.
	slow, _ := AdvanceFlash(0, 0.6, 0.46, 1)
	fast, _ := AdvanceFlash(0, 0.9, 0.46, 1)
	assert.Greater(t, fast, slow)
}

func TestFlashColor(t *testing.T) {
	for _, phase := range []float64{0, 3, 17.5, 100} {
		c := FlashColor(phase)
		assert.Equal(t, uint8(77), c.A, "phase %v", phase)
		assert.Equal(t, uint8(255), c.R, "between red and yellow, phase %v", phase)
		assert.Equal(t, uint8(0), c.B)
	}
}

func TestLight(t *testing.T) {
	_, def := thoriumStats(t)
	stats := *def.Reactor

	assert.InDelta(t, 0.08, SmoothLight(0, 1, 1), 1e-9)
	assert.InDelta(t, 1-0.92*0.92, SmoothLight(0, 1, 2), 1e-9)
	assert.InDelta(t, 0.5, SmoothLight(0.5, 0.5, 10), 1e-9)

	l := LightFor(stats, 0.5, 0)
	assert.InDelta(t, LightRadius*0.5, l.Radius, 1e-9)
	assert.InDelta(t, LightAlpha*0.5, l.Alpha, 1e-9)
	assert.Equal(t, stats.LightColor.ToRGBA(), l.Color)
	assert.Equal(t, Scarlet, LightFor(stats, 1, 1).Color)
}

func TestBuildReactorFrame(t *testing.T) {
	lib, def := thoriumStats(t)
	b := &component.Building{DefID: def.ID, Size: def.Size, Enabled: true}
	h := &component.Health{Value: def.Health, Max: def.Health}
	r, err := reactor.New(def, b, h, 8)
	require.NoError(t, err)

	r.Items.Set("thorium", 7)
	r.Liquids.Set("cryofluid", 15)
	r.Heat = 0.8
	r.ProductionEfficiency = 7.0 / 30

	vis := &component.ReactorVisual{}
	frame := BuildReactorFrame(r, vis, lib, 8, 1)

	assert.Equal(t, 24.0, frame.Size)
	assert.True(t, frame.Flashing)
	assert.Greater(t, vis.Flash, 0.0)
	assert.InDelta(t, 0.08*7.0/30, vis.SmoothLight, 1e-9)

	cryo, err := lib.Liquid("cryofluid")
	require.NoError(t, err)
	assert.Equal(t, WithAlpha(cryo.Color.ToRGBA(), 0.3), frame.Coolant)

	require.Len(t, frame.Rods, 7)
	for i, rod := range frame.Rods {
		assert.Equal(t, r.FuelRodPosition(i), rod.Offset, "rod %d", i)
		assert.Equal(t, uint8(204), rod.Color.A)
	}

	// The reactor itself is not touched by the render pass.
	assert.Equal(t, 0.8, r.Heat)
	assert.Equal(t, 7, r.Fuel())
	assert.InDelta(t, 15, r.Liquids.CurrentAmount(), 1e-9)
}

func TestBuildReactorFrameIdle(t *testing.T) {
	lib, def := thoriumStats(t)
	r, err := reactor.New(def, &component.Building{DefID: def.ID, Size: def.Size}, &component.Health{Value: 1, Max: 1}, 8)
	require.NoError(t, err)

	vis := &component.ReactorVisual{Flash: 4, SmoothLight: 0}
	frame := BuildReactorFrame(r, vis, lib, 8, 1)

	want := ReactorFrame{
		Size:    24,
		Heat:    HeatColor(*def.Reactor, 0),
		Coolant: WithAlpha(White, 0),
		Light:   Light{Color: def.Reactor.LightColor.ToRGBA()},
		Rods:    []Rod{},
	}
	if diff := cmp.Diff(want, frame); diff != "" {
		t.Errorf("idle frame mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4.0, vis.Flash)
}
