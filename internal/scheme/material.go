package scheme

import (
	"github.com/jmylchreest/tonal/internal/colour"
)

type paletteKey int

const (
	primary paletteKey = iota
	secondary
	tertiary
	neutral
	neutralVariant
	errorPalette
)

// roleTone assigns a palette tone to a role for each variant.
type roleTone struct {
	name    string
	palette paletteKey
	light   float32
	dark    float32
}

// materialRoles is the Material 3 role table, in declaration order.
var materialRoles = []roleTone{
	{"primary", primary, 40, 80},
	{"on_primary", primary, 100, 20},
	{"primary_container", primary, 90, 30},
	{"on_primary_container", primary, 10, 90},
	{"inverse_primary", primary, 80, 40},
	{"primary_fixed", primary, 90, 90},
	{"primary_fixed_dim", primary, 80, 80},
	{"on_primary_fixed", primary, 10, 10},
	{"on_primary_fixed_variant", primary, 30, 30},

	{"secondary", secondary, 40, 80},
	{"on_secondary", secondary, 100, 20},
	{"secondary_container", secondary, 90, 30},
	{"on_secondary_container", secondary, 10, 90},
	{"secondary_fixed", secondary, 90, 90},
	{"secondary_fixed_dim", secondary, 80, 80},
	{"on_secondary_fixed", secondary, 10, 10},
	{"on_secondary_fixed_variant", secondary, 30, 30},

	{"tertiary", tertiary, 40, 80},
	{"on_tertiary", tertiary, 100, 20},
	{"tertiary_container", tertiary, 90, 30},
	{"on_tertiary_container", tertiary, 10, 90},
	{"tertiary_fixed", tertiary, 90, 90},
	{"tertiary_fixed_dim", tertiary, 80, 80},
	{"on_tertiary_fixed", tertiary, 10, 10},
	{"on_tertiary_fixed_variant", tertiary, 30, 30},

	{"error", errorPalette, 40, 80},
	{"on_error", errorPalette, 100, 20},
	{"error_container", errorPalette, 90, 30},
	{"on_error_container", errorPalette, 10, 90},

	{"background", neutral, 98, 6},
	{"on_background", neutral, 10, 90},
	{"surface", neutral, 98, 6},
	{"on_surface", neutral, 10, 90},
	{"surface_dim", neutral, 87, 6},
	{"surface_bright", neutral, 98, 24},
	{"surface_container_lowest", neutral, 100, 4},
	{"surface_container_low", neutral, 96, 10},
	{"surface_container", neutral, 94, 12},
	{"surface_container_high", neutral, 92, 17},
	{"surface_container_highest", neutral, 90, 22},
	{"inverse_surface", neutral, 20, 90},
	{"inverse_on_surface", neutral, 95, 20},
	{"shadow", neutral, 0, 0},
	{"scrim", neutral, 0, 0},

	{"surface_variant", neutralVariant, 90, 30},
	{"on_surface_variant", neutralVariant, 30, 80},
	{"outline", neutralVariant, 50, 60},
	{"outline_variant", neutralVariant, 80, 30},
}

// amoledRoles are forced to black in amoled mode.
var amoledRoles = []string{"background", "surface", "surface_dim", "surface_container_lowest"}

// Options control scheme generation.
type Options struct {
	// Amoled replaces the dark background and surface roles with pure black.
	Amoled bool
}

// FromSource derives a complete scheme from a source colour.
func FromSource(source colour.Color, opts Options) *Scheme {
	palettes := NewPalettes(source)
	byKey := map[paletteKey]TonalPalette{
		primary:        palettes.Primary,
		secondary:      palettes.Secondary,
		tertiary:       palettes.Tertiary,
		neutral:        palettes.Neutral,
		neutralVariant: palettes.NeutralVariant,
		errorPalette:   palettes.Error,
	}

	s := &Scheme{
		Source:   source,
		Roles:    make([]string, 0, len(materialRoles)),
		Light:    make(map[string]colour.Color, len(materialRoles)),
		Dark:     make(map[string]colour.Color, len(materialRoles)),
		Palettes: palettes,
	}

	for _, r := range materialRoles {
		p := byKey[r.palette]
		s.Roles = append(s.Roles, r.name)
		s.Light[r.name] = p.Tone(r.light)
		s.Dark[r.name] = p.Tone(r.dark)
	}

	if opts.Amoled {
		for _, name := range amoledRoles {
			s.Dark[name] = colour.New(0, 0, 0)
		}
	}

	return s
}
