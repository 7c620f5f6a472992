package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex parses "#RGB", "#RRGGBB" or "#RRGGBBAA". The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("invalid hex colour %q: expected 3, 6 or 8 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}

	if len(hex) == 8 {
		// RRGGBBAA
		return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	}
	return New(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// ParseRGB parses "rgb(r, g, b)" or a bare "r, g, b" triple.
func ParseRGB(s string) (Color, error) {
	parts, err := splitFunctional(s, "rgb", 3)
	if err != nil {
		return Color{}, err
	}

	var ch [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 255 {
			return Color{}, fmt.Errorf("invalid rgb colour %q: channel %q must be 0-255", s, p)
		}
		ch[i] = uint8(n)
	}
	return New(ch[0], ch[1], ch[2]), nil
}

// ParseHSL parses "hsl(h, s%, l%)" or a bare "h, s, l" triple.
// Saturation and lightness are percentages, with or without the '%' sign.
func ParseHSL(s string) (Color, error) {
	parts, err := splitFunctional(s, "hsl", 3)
	if err != nil {
		return Color{}, err
	}

	h, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hsl colour %q: bad hue %q", s, parts[0])
	}

	var sl [2]float64
	for i, p := range parts[1:] {
		v, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
		if err != nil || v < 0 || v > 100 {
			return Color{}, fmt.Errorf("invalid hsl colour %q: %q must be 0-100", s, p)
		}
		sl[i] = v / 100
	}

	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return hslToColor(h, sl[0], sl[1]), nil
}

// Parse parses a colour literal of the given kind ("hex", "rgb" or "hsl").
func Parse(kind, s string) (Color, error) {
	switch strings.ToLower(kind) {
	case "hex":
		return ParseHex(s)
	case "rgb":
		return ParseRGB(s)
	case "hsl":
		return ParseHSL(s)
	default:
		return Color{}, fmt.Errorf("unknown colour kind: %s (valid kinds: hex, rgb, hsl)", kind)
	}
}

func splitFunctional(s, name string, want int) ([]string, error) {
	body := strings.TrimSpace(s)
	lower := strings.ToLower(body)
	if strings.HasPrefix(lower, name+"(") {
		if !strings.HasSuffix(body, ")") {
			return nil, fmt.Errorf("invalid %s colour %q: missing ')'", name, s)
		}
		body = body[len(name)+1 : len(body)-1]
	}

	parts := strings.Split(body, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("invalid %s colour %q: expected %d components, got %d", name, s, want, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}
