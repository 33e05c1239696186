// internal/component/visual.go
package component

import "math"

// ReactorVisual — состояние отрисовки реактора. Не сохраняется и
// изменяется только проходом рендера.
type ReactorVisual struct {
	Flash       float64 // фаза мигания ламп, только растёт
	SmoothLight float64 // сглаженная яркость свечения [0,1]
}

// EffectKind — вид визуального эффекта
type EffectKind int

const (
	EffectSmoke EffectKind = iota
	EffectExplosion
)

// Effect — кратковременный визуальный эффект (дым, взрыв).
type Effect struct {
	Kind     EffectKind
	X, Y     float64
	Radius   float64
	Timer    float64 // Сколько времени эффект уже активен, тики
	Duration float64 // Общая продолжительность эффекта, тики
}

// Progress returns Timer/Duration in [0,1].
func (e Effect) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := e.Timer / e.Duration
	if p > 1 {
		return 1
	}
	return p
}

// Supply — подача топлива и охлаждающей жидкости в блок
type Supply struct {
	Item          string
	ItemPerSecond float64
	Liquid        string
	LiquidPerTick float64
	itemAcc       float64
}

// Accumulate adds the items produced over dt seconds and returns whole items ready.
func (s *Supply) Accumulate(dt float64) int {
	s.itemAcc += s.ItemPerSecond * dt
	n := int(s.itemAcc)
	s.itemAcc -= float64(n)
	return n
}

// Refund возвращает отказанные предметы; на ленте ждёт не больше одного.
func (s *Supply) Refund(n int) {
	if n > 0 {
		s.itemAcc = math.Min(s.itemAcc+float64(n), 1)
	}
}
