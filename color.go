package ggline

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned by ParseColor for strings that are neither
// a hex color nor a known color name.
var ErrUnknownColor = errors.New("ggline: unknown color")

// ParseColor converts a color specification to gg.RGBA.
//
// Accepted forms:
//   - hex: "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA" (leading '#' optional)
//   - SVG 1.1 color keywords, case-insensitive: "black", "red", "steelblue"
func ParseColor(s string) (gg.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return gg.RGBA{}, fmt.Errorf("%w: empty string", ErrUnknownColor)
	}
	if c, ok := colornames.Map[name]; ok {
		return gg.FromColor(c), nil
	}
	hex := strings.TrimPrefix(name, "#")
	if isHexColor(hex) {
		return gg.Hex(hex), nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

func isHexColor(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// FormatColor returns c as "#rrggbb", or "#rrggbbaa" when not opaque.
func FormatColor(c gg.RGBA) string {
	r, g, b, a := to8(c.R), to8(c.G), to8(c.B), to8(c.A)
	if a == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
