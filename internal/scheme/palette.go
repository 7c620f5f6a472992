package scheme

import (
	"cogentcore.org/core/colors/cam/hct"

	"github.com/jmylchreest/tonal/internal/colour"
)

// TonalPalette is a fixed hue and chroma from which any tone 0-100 can be taken.
type TonalPalette struct {
	Hue    float32
	Chroma float32
}

// Tone returns the palette colour at the given HCT tone.
func (p TonalPalette) Tone(tone float32) colour.Color {
	return colour.FromColor(hct.New(p.Hue, p.Chroma, tone).AsRGBA())
}

// Palettes are the six core tonal palettes derived from a source colour.
type Palettes struct {
	Primary        TonalPalette
	Secondary      TonalPalette
	Tertiary       TonalPalette
	Neutral        TonalPalette
	NeutralVariant TonalPalette
	Error          TonalPalette
}

// NewPalettes derives the tonal spot palettes for a source colour.
func NewPalettes(source colour.Color) Palettes {
	h := hct.FromColor(source.NRGBA())
	return Palettes{
		Primary:        TonalPalette{Hue: h.Hue, Chroma: max(h.Chroma, 48)},
		Secondary:      TonalPalette{Hue: h.Hue, Chroma: 16},
		Tertiary:       TonalPalette{Hue: sanitizeHue(h.Hue + 60), Chroma: 24},
		Neutral:        TonalPalette{Hue: h.Hue, Chroma: 4},
		NeutralVariant: TonalPalette{Hue: h.Hue, Chroma: 8},
		Error:          TonalPalette{Hue: 25, Chroma: 84},
	}
}

// PaletteTones are the tones listed when dumping palettes.
var PaletteTones = []int{0, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 75, 80, 85, 90, 95, 100}

// Named returns the palettes keyed by their dump names.
func (p Palettes) Named() map[string]TonalPalette {
	return map[string]TonalPalette{
		"primary":         p.Primary,
		"secondary":       p.Secondary,
		"tertiary":        p.Tertiary,
		"neutral":         p.Neutral,
		"neutral_variant": p.NeutralVariant,
		"error":           p.Error,
	}
}

func sanitizeHue(h float32) float32 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}
