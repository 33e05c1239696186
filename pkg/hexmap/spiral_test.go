package hexmap

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestSpiralRing(t *testing.T) {
	tests := []struct {
		posID int
		ring  int
	}{
		{0, 1}, {5, 1}, {6, 2}, {17, 2}, {18, 3}, {35, 3}, {36, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ring, SpiralRing(tt.posID), "posID %d", tt.posID)
	}
}

func TestSpiralPointDistances(t *testing.T) {
	t.Run("first ring is at unit distance", func(t *testing.T) {
		for posID := 0; posID < 6; posID++ {
			assert.InDelta(t, 1.0, SpiralPoint(posID).Len(), eps, "posID %d", posID)
		}
	})

	t.Run("second ring starts at its corner", func(t *testing.T) {
		p := SpiralPoint(6)
		assert.InDelta(t, -1.0, p.X, eps)
		assert.InDelta(t, Sqrt3, p.Y, eps)
		assert.InDelta(t, 2.0, p.Len(), eps)
	})

	t.Run("ring points lie between inner radius and ring radius", func(t *testing.T) {
		for posID := 0; posID < 90; posID++ {
			ring := float64(SpiralRing(posID))
			d := SpiralPoint(posID).Len()
			assert.LessOrEqual(t, d, ring+eps, "posID %d", posID)
			assert.GreaterOrEqual(t, d, ring*Sqrt3/2-eps, "posID %d", posID)
		}
	})
}

func TestSpiralPointsAreDistinct(t *testing.T) {
	seen := make(map[[2]int64]int)
	for posID := 0; posID < 36; posID++ {
		p := SpiralPoint(posID)
		key := [2]int64{int64(math.Round(p.X * 1e6)), int64(math.Round(p.Y * 1e6))}
		prev, dup := seen[key]
		require.False(t, dup, "posID %d collides with %d", posID, prev)
		seen[key] = posID
	}
}

func TestSpiralPointNegative(t *testing.T) {
	assert.Equal(t, Vec2{}, SpiralPoint(-1))
}

func TestSpiralLayoutPosition(t *testing.T) {
	layout := NewSpiralLayout(30)
	require.Equal(t, 36, layout.Len())

	p0 := layout.Position(0, 1)
	p5 := layout.Position(5, 1)
	p6 := layout.Position(6, 1)
	assert.InDelta(t, 1.0, p0.Len(), eps)
	assert.InDelta(t, 1.0, p5.Len(), eps)
	assert.GreaterOrEqual(t, p6.Len(), 1.0)
	assert.Equal(t, 2, SpiralRing(6))

	scaled := layout.Position(6, 2)
	assert.InDelta(t, p6.X*2, scaled.X, eps)
	assert.InDelta(t, p6.Y*2, scaled.Y, eps)

	assert.Equal(t, Vec2{}, layout.Position(36, 1), "out of range saturates to origin")
	assert.Equal(t, Vec2{}, layout.Position(-3, 2))
}

func TestSpiralLayoutCaching(t *testing.T) {
	layout := NewSpiralLayout(30)
	first := make([]Vec2, layout.Len())
	for i := range first {
		first[i] = layout.Position(i, 2)
	}
	second := make([]Vec2, layout.Len())
	for i := range second {
		second[i] = layout.Position(i, 2)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached positions changed (-first +second):\n%s", diff)
	}
	assert.Equal(t, 1, layout.Generations())

	layout.SetCapacity(30)
	layout.Position(0, 1)
	assert.Equal(t, 1, layout.Generations(), "same capacity keeps the buffer")

	layout.SetCapacity(12)
	assert.Equal(t, Vec2{}, layout.Position(20, 1))
	assert.Equal(t, 2, layout.Generations())
	assert.Equal(t, first[3], layout.Position(3, 2))
}

func TestSpiralLayoutsAreNotShared(t *testing.T) {
	a := NewSpiralLayout(10)
	b := NewSpiralLayout(10)
	a.Position(0, 1)
	assert.Equal(t, 1, a.Generations())
	assert.Equal(t, 0, b.Generations())

	a.SetCapacity(4)
	a.Position(0, 1)
	assert.Equal(t, SpiralPoint(12), b.Position(12, 1))
}
