// internal/power/generator.go
package power

import "go-reactor-sim/internal/component"

// Generator — общая часть любого генератора: эффективность выработки
// и склады предметов/жидкостей. Поведение конкретного вида генератора
// задаётся отдельной стратегией у владельца.
type Generator struct {
	ProductionEfficiency float64 // [0,1], выставляется стратегией каждый тик
	PowerProduction      float64 // энергия за тик при эффективности 1
	Items                *component.ItemStock
	Liquids              *component.LiquidStock
}

func NewGenerator(powerProduction float64, itemCapacity int, liquidCapacity float64) *Generator {
	return &Generator{
		PowerProduction: powerProduction,
		Items:           component.NewItemStock(itemCapacity),
		Liquids:         component.NewLiquidStock(liquidCapacity),
	}
}

// PowerOutput returns the energy produced over delta ticks.
func (g *Generator) PowerOutput(delta float64) float64 {
	return g.PowerProduction * g.ProductionEfficiency * delta
}
