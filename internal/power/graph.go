// internal/power/graph.go
package power

// Graph — единая энергосеть: выработка, потребление и аккумулятор.
type Graph struct {
	BatteryCapacity float64
	Stored          float64

	LastProduced float64
	LastNeeded   float64
	Satisfaction float64 // доля удовлетворённого спроса в последнем тике
}

func NewGraph(batteryCapacity float64) *Graph {
	return &Graph{BatteryCapacity: batteryCapacity, Satisfaction: 1}
}

// Balance settles one tick: production first covers demand, the surplus
// charges the battery and a deficit drains it. Returns the satisfaction.
func (g *Graph) Balance(produced, needed float64) float64 {
	g.LastProduced = produced
	g.LastNeeded = needed

	if needed <= 0 {
		g.Satisfaction = 1
		g.charge(produced)
		return g.Satisfaction
	}

	if produced >= needed {
		g.Satisfaction = 1
		g.charge(produced - needed)
		return g.Satisfaction
	}

	deficit := needed - produced
	if g.Stored >= deficit {
		g.Stored -= deficit
		g.Satisfaction = 1
		return g.Satisfaction
	}

	g.Satisfaction = (produced + g.Stored) / needed
	g.Stored = 0
	return g.Satisfaction
}

func (g *Graph) charge(amount float64) {
	g.Stored += amount
	if g.Stored > g.BatteryCapacity {
		g.Stored = g.BatteryCapacity
	}
}

// BatteryFraction returns Stored/BatteryCapacity.
func (g *Graph) BatteryFraction() float64 {
	if g.BatteryCapacity <= 0 {
		return 0
	}
	return g.Stored / g.BatteryCapacity
}
