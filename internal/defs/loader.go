// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownBlock  = errors.New("unknown block")
	ErrUnknownItem   = errors.New("unknown item")
	ErrUnknownLiquid = errors.New("unknown liquid")
)

// Library holds block, item and liquid definitions keyed by ID.
type Library struct {
	Blocks  map[string]BlockDefinition
	Items   map[string]ItemDefinition
	Liquids map[string]LiquidDefinition
}

// libraryFile is the on-disk YAML layout.
type libraryFile struct {
	Blocks  []BlockDefinition  `yaml:"blocks"`
	Items   []ItemDefinition   `yaml:"items"`
	Liquids []LiquidDefinition `yaml:"liquids"`
}

// NewDefaultLibrary returns the built-in definitions.
func NewDefaultLibrary() *Library {
	lib := &Library{
		Blocks:  make(map[string]BlockDefinition),
		Items:   make(map[string]ItemDefinition),
		Liquids: make(map[string]LiquidDefinition),
	}
	lib.merge(libraryFile{
		Blocks:  DefaultBlocks(),
		Items:   DefaultItems(),
		Liquids: DefaultLiquids(),
	})
	return lib
}

// LoadLibrary reads a YAML definitions file and merges it over the built-in
// definitions. Entries with an existing ID replace the built-in one.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	return ParseLibrary(data)
}

// ParseLibrary is LoadLibrary for an in-memory document.
func ParseLibrary(data []byte) (*Library, error) {
	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}
	lib := NewDefaultLibrary()
	lib.merge(file)
	if err := lib.validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

func (l *Library) merge(file libraryFile) {
	for _, def := range file.Blocks {
		l.Blocks[def.ID] = def
	}
	for _, def := range file.Items {
		l.Items[def.ID] = def
	}
	for _, def := range file.Liquids {
		l.Liquids[def.ID] = def
	}
}

func (l *Library) validate() error {
	seen := make(map[byte]string)
	for _, liquid := range l.Liquids {
		if liquid.NumericID == 0 {
			return fmt.Errorf("liquid %q: numeric_id 0 is reserved", liquid.ID)
		}
		if other, dup := seen[liquid.NumericID]; dup {
			return fmt.Errorf("liquids %q and %q share numeric_id %d", other, liquid.ID, liquid.NumericID)
		}
		seen[liquid.NumericID] = liquid.ID
	}
	for _, block := range l.Blocks {
		if block.Size <= 0 {
			return fmt.Errorf("block %q: size must be positive", block.ID)
		}
		if block.Type != BlockTypeReactor {
			continue
		}
		r := block.Reactor
		if r == nil {
			return fmt.Errorf("block %q: reactor stats missing", block.ID)
		}
		if _, ok := l.Items[r.FuelItem]; !ok {
			return fmt.Errorf("block %q: fuel %q: %w", block.ID, r.FuelItem, ErrUnknownItem)
		}
		if block.ItemCapacity <= 0 {
			return fmt.Errorf("block %q: item_capacity must be positive", block.ID)
		}
		if r.CoolantPower <= 0 || r.ItemDuration <= 0 {
			return fmt.Errorf("block %q: coolant_power and item_duration must be positive", block.ID)
		}
		if r.SmokeThreshold >= 1 || r.FlashThreshold >= 1 {
			return fmt.Errorf("block %q: thresholds must be below 1", block.ID)
		}
	}
	return nil
}

// Block looks up a block definition.
func (l *Library) Block(id string) (BlockDefinition, error) {
	def, ok := l.Blocks[id]
	if !ok {
		return BlockDefinition{}, fmt.Errorf("%w: %q", ErrUnknownBlock, id)
	}
	return def, nil
}

// Item looks up an item definition.
func (l *Library) Item(id string) (ItemDefinition, error) {
	def, ok := l.Items[id]
	if !ok {
		return ItemDefinition{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return def, nil
}

// Liquid looks up a liquid definition.
func (l *Library) Liquid(id string) (LiquidDefinition, error) {
	def, ok := l.Liquids[id]
	if !ok {
		return LiquidDefinition{}, fmt.Errorf("%w: %q", ErrUnknownLiquid, id)
	}
	return def, nil
}

// LiquidByNumericID resolves the ID written into saves.
func (l *Library) LiquidByNumericID(id byte) (LiquidDefinition, error) {
	for _, def := range l.Liquids {
		if def.NumericID == id {
			return def, nil
		}
	}
	return LiquidDefinition{}, fmt.Errorf("%w: numeric id %d", ErrUnknownLiquid, id)
}

// BlockIDs returns block IDs in a stable order.
func (l *Library) BlockIDs() []string {
	ids := make([]string, 0, len(l.Blocks))
	for id := range l.Blocks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LiquidNumericID returns the save ID of a liquid, 0 when it is unknown.
func (l *Library) LiquidNumericID(id string) byte {
	return l.Liquids[id].NumericID
}

// LiquidID is the reverse of LiquidNumericID.
func (l *Library) LiquidID(numeric byte) (string, bool) {
	def, err := l.LiquidByNumericID(numeric)
	if err != nil || numeric == 0 {
		return "", false
	}
	return def.ID, true
}
