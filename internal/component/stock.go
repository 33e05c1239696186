// internal/component/stock.go
package component

// ItemStock — склад предметов блока. Capacity действует на каждый вид предмета.
type ItemStock struct {
	Capacity int
	items    map[string]int
}

func NewItemStock(capacity int) *ItemStock {
	return &ItemStock{Capacity: capacity, items: make(map[string]int)}
}

// Get returns the stored amount of item.
func (s *ItemStock) Get(item string) int {
	return s.items[item]
}

// Total returns the amount of all items.
func (s *ItemStock) Total() int {
	total := 0
	for _, n := range s.items {
		total += n
	}
	return total
}

// Add stores up to n items and returns how many were accepted.
func (s *ItemStock) Add(item string, n int) int {
	if n <= 0 {
		return 0
	}
	free := s.Capacity - s.items[item]
	if free <= 0 {
		return 0
	}
	if n > free {
		n = free
	}
	s.items[item] += n
	return n
}

// Remove takes up to n items and returns how many were removed.
func (s *ItemStock) Remove(item string, n int) int {
	have := s.items[item]
	if n > have {
		n = have
	}
	if n <= 0 {
		return 0
	}
	if have == n {
		delete(s.items, item)
	} else {
		s.items[item] = have - n
	}
	return n
}

// Set overwrites the stored amount, clamped to [0, Capacity]. Used when loading.
func (s *ItemStock) Set(item string, n int) {
	if n < 0 {
		n = 0
	}
	if n > s.Capacity {
		n = s.Capacity
	}
	if n == 0 {
		delete(s.items, item)
		return
	}
	s.items[item] = n
}

// LiquidStock — резервуар, хранящий одну жидкость за раз.
type LiquidStock struct {
	Capacity float64
	current  string
	amount   float64
}

func NewLiquidStock(capacity float64) *LiquidStock {
	return &LiquidStock{Capacity: capacity}
}

// Current returns the stored liquid ID, empty when nothing was ever stored.
func (s *LiquidStock) Current() string {
	return s.current
}

// CurrentAmount returns the stored amount of the current liquid.
func (s *LiquidStock) CurrentAmount() float64 {
	return s.amount
}

// Accepts reports whether liquid could be added right now.
func (s *LiquidStock) Accepts(liquid string) bool {
	if s.amount >= s.Capacity {
		return false
	}
	return s.current == "" || s.current == liquid || s.amount <= 0.0001
}

// Add stores up to amount of liquid and returns the accepted amount.
// A different liquid is accepted only once the tank is (almost) empty.
func (s *LiquidStock) Add(liquid string, amount float64) float64 {
	if amount <= 0 || !s.Accepts(liquid) {
		return 0
	}
	if s.current != liquid {
		s.current = liquid
		s.amount = 0
	}
	free := s.Capacity - s.amount
	if amount > free {
		amount = free
	}
	s.amount += amount
	return amount
}

// Remove drains up to amount and returns what was drained.
func (s *LiquidStock) Remove(amount float64) float64 {
	if amount > s.amount {
		amount = s.amount
	}
	if amount <= 0 {
		return 0
	}
	s.amount -= amount
	return amount
}

// Set overwrites the contents. Used when loading.
func (s *LiquidStock) Set(liquid string, amount float64) {
	if amount < 0 {
		amount = 0
	}
	if amount > s.Capacity {
		amount = s.Capacity
	}
	s.current = liquid
	s.amount = amount
}
