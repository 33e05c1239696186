// pkg/render/reactor_frame.go
package render

import (
	"image/color"

	"go-reactor-sim/internal/component"
	"go-reactor-sim/internal/defs"
	"go-reactor-sim/internal/reactor"
	"go-reactor-sim/internal/utils"
	"go-reactor-sim/pkg/hexmap"
)

const (
	LightRadius      = 12.0 // мировых единиц при полной яркости
	LightAlpha       = 0.6
	LightSmoothing   = 0.08
	CoolantAlphaMax  = 0.6
	FlashAlpha       = 0.3
	FlashBoost       = 5.4
	FlashPeriodScale = 9.0
	RodRadius        = 0.7
	RodAlpha         = 0.8
)

// Light — параметры свечения вокруг реактора.
type Light struct {
	Radius float64
	Color  color.RGBA
	Alpha  float64
}

// Rod is one fuel rod hexagon, offset from the block center.
type Rod struct {
	Offset hexmap.Vec2
	Radius float64
	Color  color.RGBA
}

// ReactorFrame — всё, что нужно нарисовать для одного реактора в кадре.
type ReactorFrame struct {
	Size     float64    // сторона блока в мировых единицах
	Heat     color.RGBA // оверлей тепла
	Coolant  color.RGBA // крышка цвета жидкости
	Flashing bool
	Flash    color.RGBA
	Light    Light
	Rods     []Rod
}

// HeatColor returns the heat overlay color.
func HeatColor(stats defs.ReactorStats, heat float64) color.RGBA {
	return LerpColor(stats.CoolColor.ToRGBA(), stats.HotColor.ToRGBA(), heat)
}

// CoolantAlpha returns the opacity of the coolant top layer.
func CoolantAlpha(amount, capacity float64) float64 {
	if capacity <= 0 {
		return 0
	}
	return utils.Clamp(amount/capacity) * CoolantAlphaMax
}

// AdvanceFlash moves the warning light phase forward. Below the threshold
// the phase stays put and false is returned.
func AdvanceFlash(flash, heat, threshold, delta float64) (float64, bool) {
	if heat <= threshold {
		return flash, false
	}
	return flash + (1+(heat-threshold)/(1-threshold)*FlashBoost)*delta, true
}

// FlashColor returns the warning light color for a phase.
func FlashColor(flash float64) color.RGBA {
	return WithAlpha(LerpColor(Red, Yellow, utils.Absin(flash, FlashPeriodScale, 1)), FlashAlpha)
}

// SmoothLight eases the light intensity toward the production efficiency.
func SmoothLight(current, efficiency, delta float64) float64 {
	return utils.LerpDelta(current, efficiency, LightSmoothing, delta)
}

// LightFor returns the light for a smoothed intensity and heat.
func LightFor(stats defs.ReactorStats, smoothLight, heat float64) Light {
	return Light{
		Radius: LightRadius * smoothLight,
		Color:  LerpColor(stats.LightColor.ToRGBA(), Scarlet, heat),
		Alpha:  LightAlpha * smoothLight,
	}
}

// BuildReactorFrame computes the draw parameters of a reactor. Only vis is
// modified; the reactor itself is read.
func BuildReactorFrame(r *reactor.Reactor, vis *component.ReactorVisual, lib *defs.Library, tileSize, delta float64) ReactorFrame {
	frame := ReactorFrame{
		Size: float64(r.Building.Size) * tileSize,
		Heat: HeatColor(r.Stats, r.Heat),
	}

	coolant := White
	if liquid, err := lib.Liquid(r.Liquids.Current()); err == nil {
		coolant = liquid.Color.ToRGBA()
	}
	frame.Coolant = WithAlpha(coolant, CoolantAlpha(r.Liquids.CurrentAmount(), r.Liquids.Capacity))

	vis.Flash, frame.Flashing = AdvanceFlash(vis.Flash, r.Heat, r.Stats.FlashThreshold, delta)
	if frame.Flashing {
		frame.Flash = FlashColor(vis.Flash)
	}

	vis.SmoothLight = SmoothLight(vis.SmoothLight, r.ProductionEfficiency, delta)
	frame.Light = LightFor(r.Stats, vis.SmoothLight, r.Heat)

	rodColor := White
	if item, err := lib.Item(r.Stats.FuelItem); err == nil {
		rodColor = item.Color.ToRGBA()
	}
	rodColor = WithAlpha(rodColor, RodAlpha)
	fuel := r.Fuel()
	frame.Rods = make([]Rod, 0, fuel)
	for i := 0; i < fuel; i++ {
		frame.Rods = append(frame.Rods, Rod{Offset: r.FuelRodPosition(i), Radius: RodRadius, Color: rodColor})
	}
	return frame
}
