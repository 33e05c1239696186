// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает v диапазоном [0, 1]
func Clamp(v float64) float64 {
	return ClampRange(v, 0, 1)
}

// ClampRange ограничивает v диапазоном [lo, hi]
func ClampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LerpDelta — интерполяция, не зависящая от частоты кадров:
// progress задаётся на один тик, delta равна числу прошедших тиков.
func LerpDelta(from, to, progress, delta float64) float64 {
	t := 1 - math.Pow(1-progress, delta)
	return Lerp(from, to, Clamp(t))
}

// Absin returns a sine wave folded into [0, mag]. scl stretches the period.
func Absin(x, scl, mag float64) float64 {
	return (math.Sin(x/(scl*2))*mag + mag) / 2
}
