// internal/defs/items.go
package defs

// ItemDefinition — предмет, который можно хранить и сжигать.
type ItemDefinition struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color Color  `yaml:"color"`
}

// LiquidDefinition — жидкость; NumericID пишется в сохранения.
type LiquidDefinition struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	NumericID byte   `yaml:"numeric_id"`
	Color     Color  `yaml:"color"`
}

// DefaultItems is the built-in item library.
func DefaultItems() []ItemDefinition {
	return []ItemDefinition{
		{ID: "thorium", Name: "Thorium", Color: MustParseColor("f9a3c7")},
		{ID: "graphite", Name: "Graphite", Color: MustParseColor("b2c6d2")},
	}
}

// DefaultLiquids is the built-in liquid library. NumericID 0 is reserved for "none".
func DefaultLiquids() []LiquidDefinition {
	return []LiquidDefinition{
		{ID: "water", Name: "Water", NumericID: 1, Color: MustParseColor("596ab8")},
		{ID: "cryofluid", Name: "Cryofluid", NumericID: 2, Color: MustParseColor("6ecdec")},
	}
}
