// Package contrast implements WCAG 2.1 relative-luminance contrast validation
// with a bounded correction search for non-compliant color pairs.
package contrast

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lmeyrat/chime/internal/errcode"
)

// RGB is a plain 8-bit-per-channel color value.
type RGB struct {
	R, G, B uint8
}

// namedColors is the fixed lookup table for named color strings.
var namedColors = map[string]RGB{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"red":     {255, 0, 0},
	"green":   {0, 128, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"aqua":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"fuchsia": {255, 0, 255},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
	"silver":  {192, 192, 192},
	"maroon":  {128, 0, 0},
	"olive":   {128, 128, 0},
	"lime":    {0, 255, 0},
	"navy":    {0, 0, 128},
	"teal":    {0, 128, 128},
	"purple":  {128, 0, 128},
	"orange":  {255, 165, 0},
	"pink":    {255, 192, 203},
	"brown":   {165, 42, 42},
}

var rgbFuncRe = regexp.MustCompile(`^rgba?\(\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\s*(?:,\s*[\d.]+\s*)?\)$`)

// ParseColor accepts named colors, 3- or 6-digit hex, and rgb()/rgba()
// functional notation. Anything else, including out-of-range channel values,
// yields an INVALID_COLOR error.
func ParseColor(s string) (RGB, error) {
	trimmed := strings.TrimSpace(strings.ToLower(s))
	if trimmed == "" {
		return RGB{}, errcode.New(errcode.InvalidColor, "empty color string")
	}

	if c, ok := namedColors[trimmed]; ok {
		return c, nil
	}

	if strings.HasPrefix(trimmed, "#") {
		return parseHex(trimmed[1:], s)
	}

	if m := rgbFuncRe.FindStringSubmatch(trimmed); m != nil {
		var channels [3]uint8
		for i, raw := range m[1:4] {
			v, err := strconv.Atoi(raw)
			if err != nil || v < 0 || v > 255 {
				return RGB{}, errcode.New(errcode.InvalidColor, "channel out of range in %q", s)
			}
			channels[i] = uint8(v)
		}
		return RGB{channels[0], channels[1], channels[2]}, nil
	}

	return RGB{}, errcode.New(errcode.InvalidColor, "unrecognized color %q", s)
}

func parseHex(hex, original string) (RGB, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGB{}, errcode.New(errcode.InvalidColor, "malformed hex color %q", original)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, errcode.New(errcode.InvalidColor, "malformed hex color %q", original)
	}
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// ToHex formats a color as an uppercase 6-digit hex string.
func ToHex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Brightness is the perceived brightness (0-255) using the classic
// 0.299/0.587/0.114 weights. Used only to pick a correction direction.
func Brightness(c RGB) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// IsLight reports whether a color is perceived as light.
func IsLight(c RGB) bool {
	return Brightness(c) >= 128
}
