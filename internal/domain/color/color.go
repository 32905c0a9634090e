// Package color holds the RGBA colour type shared by team records and scene
// renderers.
package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit-per-channel RGBA colour.
type Color struct {
	R, G, B, A uint8
}

var (
	Red   = Color{R: 255, A: 255}
	White = Color{R: 255, G: 255, B: 255, A: 255}
)

// ParseHex converts "#RRGGBB" or "#RRGGBBAA" (leading # optional) into a Color.
func ParseHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	var parts [4]uint8
	parts[3] = 255
	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color component in %s: %w", hex, err)
		}
		parts[i] = uint8(v)
	}
	return Color{R: parts[0], G: parts[1], B: parts[2], A: parts[3]}, nil
}

// Hex formats the colour as #RRGGBBAA.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func (c Color) String() string { return c.Hex() }

// MarshalText implements encoding.TextMarshaler so colours serialise as hex in
// JSON and YAML alike.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
