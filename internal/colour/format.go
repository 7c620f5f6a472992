package colour

import (
	"fmt"
	"strings"
)

// Format names a textual representation of a colour.
type Format string

const (
	FormatHex   Format = "hex"
	FormatStrip Format = "strip"
	FormatRGB   Format = "rgb"
	FormatRGBA  Format = "rgba"
	FormatHSL   Format = "hsl"
	FormatHSLA  Format = "hsla"
)

// ValidFormats returns every supported format in display order.
func ValidFormats() []Format {
	return []Format{FormatHex, FormatStrip, FormatRGB, FormatRGBA, FormatHSL, FormatHSLA}
}

// ParseFormat converts a user supplied name into a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range ValidFormats() {
		if f == valid {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown colour format: %q (valid formats: %v)", s, ValidFormats())
}

// Format renders the colour using f. Unknown formats fall back to hex.
func (c Color) Format(f Format) string {
	switch f {
	case FormatStrip:
		return c.Strip()
	case FormatRGB:
		return c.RGB()
	case FormatRGBA:
		return c.RGBA()
	case FormatHSL:
		return c.HSL()
	case FormatHSLA:
		return c.HSLA()
	default:
		return c.Hex()
	}
}
