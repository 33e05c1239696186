// pkg/hexmap/utils.go
package hexmap

import "math"

// Sqrt3 используется и сеткой, и спиралью стержней.
const Sqrt3 = 1.7320508075688772935274463415059

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// fracHex — дробные кубические координаты, q+r+s == 0.
type fracHex struct {
	q, r, s float64
}

func newFracHex(q, r float64) fracHex {
	return fracHex{q: q, r: r, s: -q - r}
}

// round выбирает ближайший гекс: компонента с наибольшей ошибкой
// округления пересчитывается из двух других.
func (f fracHex) round() Hex {
	q, r, s := math.Round(f.q), math.Round(f.r), math.Round(f.s)
	dq, dr, ds := math.Abs(q-f.q), math.Abs(r-f.r), math.Abs(s-f.s)
	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	}
	return Hex{Q: int(q), R: int(r)}
}
