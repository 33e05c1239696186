package hexmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Hex
		want int
	}{
		{"same", Hex{0, 0}, Hex{0, 0}, 0},
		{"neighbor", Hex{0, 0}, Hex{1, 0}, 1},
		{"diagonal", Hex{0, 0}, Hex{2, -1}, 2},
		{"far", Hex{-3, 1}, Hex{2, 0}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Distance(tt.b))
			assert.Equal(t, tt.want, tt.b.Distance(tt.a))
		})
	}
}

func TestHexRange(t *testing.T) {
	center := Hex{Q: 2, R: -1}
	for radius := 0; radius <= 4; radius++ {
		hexes := center.Range(radius)
		assert.Len(t, hexes, 3*radius*(radius+1)+1)
		for _, h := range hexes {
			assert.LessOrEqual(t, center.Distance(h), radius)
		}
	}
	assert.Nil(t, center.Range(-1))
}

func TestPixelRoundTrip(t *testing.T) {
	const size = 19.0
	for _, h := range (Hex{}).Range(3) {
		x, y := h.ToPixel(size)
		assert.Equal(t, h, PixelToHex(x+600, y+450, 600, 450, size))
	}
}

func TestHexMapOccupancy(t *testing.T) {
	hm := NewHexMap(2)
	assert.Len(t, hm.Tiles, 19)

	h := Hex{Q: 1, R: 0}
	assert.True(t, hm.Occupy(h, 7))
	assert.False(t, hm.Occupy(h, 8), "occupied tile rejects a second building")
	id, ok := hm.Occupant(h)
	assert.True(t, ok)
	assert.Equal(t, uint64(7), id)

	hm.Free(h)
	_, ok = hm.Occupant(h)
	assert.False(t, ok)
	assert.False(t, hm.Occupy(Hex{Q: 5, R: 0}, 9), "outside the map")

	assert.Len(t, hm.GetHexesInRange(Hex{Q: 2, R: 0}, 1), 4)
}
