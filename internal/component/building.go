// internal/component/building.go
package component

import "go-reactor-sim/pkg/hexmap"

// Position — позиция центра сущности в мировых координатах
type Position struct {
	X, Y float64
}

// Building — общее состояние любого блока на карте
type Building struct {
	DefID   string     // ID из определений блоков
	Hex     hexmap.Hex // Гекс, на котором стоит блок
	Size    int        // Размер в клетках (для эффектов и отрисовки)
	Enabled bool       // Управляется логикой/скриптом
	Dead    bool       // Выставляется один раз при уничтожении
}

// Health — компонент здоровья
type Health struct {
	Value float64
	Max   float64
}

// Fraction returns Value/Max clamped to [0,1].
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	f := h.Value / h.Max
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Damage уменьшает здоровье и сообщает, упало ли оно до нуля.
func (h *Health) Damage(amount float64) bool {
	if amount <= 0 {
		return h.Value <= 0
	}
	h.Value -= amount
	if h.Value < 0 {
		h.Value = 0
	}
	return h.Value <= 0
}

// Consumer — блок, потребляющий энергию из сети
type Consumer struct {
	PowerUse  float64 // в тик
	Satisfied float64 // доля удовлетворённого спроса в прошлом тике
}
