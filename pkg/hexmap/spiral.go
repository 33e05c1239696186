// pkg/hexmap/spiral.go
package hexmap

import "math"

// SpiralPadding — число позиций первого кольца, которые резервируются
// вокруг центра перед позициями топливных стержней.
const SpiralPadding = 6

// Vec2 — смещение в мировых координатах.
type Vec2 struct {
	X, Y float64
}

// Scale returns v multiplied by factor.
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// SpiralRing возвращает номер кольца для позиции posID.
// Кольцо r занимает индексы [3r(r-1), 3r(r+1)).
func SpiralRing(posID int) int {
	ring := 1
	for ring*(ring+1)*3 <= posID {
		ring++
	}
	return ring
}

// SpiralPoint returns the unscaled position of posID on its ring.
// Each ring is walked along six straight segments of length ring.
func SpiralPoint(posID int) Vec2 {
	if posID < 0 {
		return Vec2{}
	}
	ring := SpiralRing(posID)
	r := float64(ring)
	offset := posID - ring*(ring-1)*3
	lineID := offset / ring
	linePos := float64(offset % ring)

	switch lineID {
	case 0:
		return Vec2{X: r/-2 + linePos, Y: r / 2 * Sqrt3}
	case 1:
		return Vec2{X: r/2 + linePos/2, Y: (r - linePos) * Sqrt3 / 2}
	case 2:
		return Vec2{X: r - linePos/2, Y: -linePos * Sqrt3 / 2}
	case 3:
		return Vec2{X: r/2 - linePos, Y: -r / 2 * Sqrt3}
	case 4:
		return Vec2{X: -r/2 - linePos/2, Y: (-r + linePos) * Sqrt3 / 2}
	default:
		return Vec2{X: -r + linePos/2, Y: linePos * Sqrt3 / 2}
	}
}

// SpiralLayout — собственный буфер позиций одной сущности.
// Генерируется при первом обращении и перестраивается, только если
// изменилась вместимость.
type SpiralLayout struct {
	capacity    int
	points      []Vec2
	generations int
}

func NewSpiralLayout(capacity int) *SpiralLayout {
	if capacity < 0 {
		capacity = 0
	}
	return &SpiralLayout{capacity: capacity}
}

// SetCapacity меняет вместимость; буфер будет перестроен при следующем запросе.
func (l *SpiralLayout) SetCapacity(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	l.capacity = capacity
}

// Len is the number of positions covered by the layout, capacity + SpiralPadding.
func (l *SpiralLayout) Len() int {
	return l.capacity + SpiralPadding
}

// Generations returns how many times the buffer has been built.
func (l *SpiralLayout) Generations() int {
	return l.generations
}

// Position returns point posID multiplied by gap.
// Indices outside [0, Len()) saturate to the origin.
func (l *SpiralLayout) Position(posID int, gap float64) Vec2 {
	if len(l.points) != l.Len() {
		l.generate()
	}
	if posID < 0 || posID >= len(l.points) {
		return Vec2{}
	}
	return l.points[posID].Scale(gap)
}

func (l *SpiralLayout) generate() {
	n := l.Len()
	if cap(l.points) >= n {
		l.points = l.points[:n]
	} else {
		l.points = make([]Vec2, n)
	}
	for posID := range l.points {
		l.points[posID] = SpiralPoint(posID)
	}
	l.generations++
}
