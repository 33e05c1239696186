// pkg/hexmap/map.go
package hexmap

// Tile — клетка площадки. Occupant == 0 означает свободную клетку.
type Tile struct {
	Buildable bool
	Occupant  uint64
}

// HexMap — гексагональная площадка радиуса Radius вокруг (0,0).
type HexMap struct {
	Tiles  map[Hex]Tile
	Radius int
}

func NewHexMap(radius int) *HexMap {
	tiles := make(map[Hex]Tile)
	for _, hex := range (Hex{}).Range(radius) {
		tiles[hex] = Tile{Buildable: true}
	}
	return &HexMap{
		Tiles:  tiles,
		Radius: radius,
	}
}

func (hm *HexMap) Contains(hex Hex) bool {
	_, exists := hm.Tiles[hex]
	return exists
}

// CanPlace reports whether hex is inside the map, buildable and free.
func (hm *HexMap) CanPlace(hex Hex) bool {
	tile, exists := hm.Tiles[hex]
	return exists && tile.Buildable && tile.Occupant == 0
}

// Occupy помечает клетку занятой сущностью id.
func (hm *HexMap) Occupy(hex Hex, id uint64) bool {
	if !hm.CanPlace(hex) {
		return false
	}
	tile := hm.Tiles[hex]
	tile.Occupant = id
	hm.Tiles[hex] = tile
	return true
}

// Free освобождает клетку.
func (hm *HexMap) Free(hex Hex) {
	if tile, exists := hm.Tiles[hex]; exists {
		tile.Occupant = 0
		hm.Tiles[hex] = tile
	}
}

// Occupant возвращает ID сущности на клетке.
func (hm *HexMap) Occupant(hex Hex) (uint64, bool) {
	tile, exists := hm.Tiles[hex]
	if !exists || tile.Occupant == 0 {
		return 0, false
	}
	return tile.Occupant, true
}

// GetHexesInRange returns the map hexes within radius of center.
func (hm *HexMap) GetHexesInRange(center Hex, radius int) []Hex {
	var result []Hex
	for _, hex := range center.Range(radius) {
		if hm.Contains(hex) {
			result = append(result, hex)
		}
	}
	return result
}
