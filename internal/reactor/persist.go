// internal/reactor/persist.go
package reactor

import (
	"errors"
	"fmt"

	"go-reactor-sim/internal/persist"
)

var ErrNotReactor = errors.New("block has no reactor stats")

// LiquidCodec maps liquid IDs to the byte written in saves.
type LiquidCodec interface {
	LiquidNumericID(id string) byte
	LiquidID(numeric byte) (string, bool)
}

// Write сохраняет поля здания, затем тепло. Нулевой ID жидкости
// означает пустой резервуар.
func (r *Reactor) Write(w *persist.Writes, codec LiquidCodec) {
	health := 0.0
	if r.Health != nil {
		health = r.Health.Value
	}
	w.F(float32(health))
	w.Bool(r.Building.Enabled)
	w.S(int16(r.Fuel()))

	var liquid byte
	if r.Liquids.CurrentAmount() > 0 {
		liquid = codec.LiquidNumericID(r.Liquids.Current())
	}
	w.B(liquid)
	w.F(float32(r.Liquids.CurrentAmount()))

	w.F(float32(r.ProductionEfficiency))
	w.F(float32(r.Heat))
}

// Read restores the fields written by Write. Revision 0 saves carry no
// production efficiency.
func (r *Reactor) Read(rd *persist.Reads, revision byte, codec LiquidCodec) error {
	health := float64(rd.F())
	enabled := rd.Bool()
	fuel := int(rd.S())
	liquidID := rd.B()
	amount := float64(rd.F())
	efficiency := 0.0
	if revision >= 1 {
		efficiency = float64(rd.F())
	}
	heat := float64(rd.F())
	if err := rd.Err(); err != nil {
		return fmt.Errorf("read reactor: %w", err)
	}

	if r.Health != nil {
		r.Health.Value = min(max(health, 0), r.Health.Max)
	}
	r.Building.Enabled = enabled
	r.Items.Set(r.Stats.FuelItem, fuel)

	if liquidID != 0 {
		id, ok := codec.LiquidID(liquidID)
		if !ok {
			return fmt.Errorf("read reactor: unknown liquid %d", liquidID)
		}
		r.Liquids.Set(id, amount)
	} else {
		r.Liquids.Set("", 0)
	}

	r.ProductionEfficiency = clamp01(efficiency)
	r.Heat = clamp01(heat)
	return nil
}
