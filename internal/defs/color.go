// internal/defs/color.go
package defs

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color — RGBA, в YAML записывается как "rrggbb" или "rrggbbaa".
type Color color.RGBA

// ToRGBA returns the value as the standard library type.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA(c)
}

// ParseColor parses "rrggbb" or "rrggbbaa", optionally prefixed with '#'.
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	c := Color{R: b[0], G: b[1], B: b[2], A: 255}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}

// MustParseColor is ParseColor for built-in literals.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (interface{}, error) {
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
}
