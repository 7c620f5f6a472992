// Package scheme holds the Material You colour scheme consumed by templates:
// an ordered set of colour roles for a light and a dark variant plus the
// source colour they were derived from.
package scheme

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
)

// SourceColorRole is reserved for the source colour and always resolvable.
const SourceColorRole = "source_color"

// Variant selects the light or dark half of a scheme.
type Variant int

const (
	Light Variant = iota
	Dark
)

// String returns the variant name.
func (v Variant) String() string {
	if v == Dark {
		return "dark"
	}
	return "light"
}

// Scheme maps role names to colours for both variants.
// Light and Dark always have exactly the keys listed in Roles.
type Scheme struct {
	Source   colour.Color
	Roles    []string
	Light    map[string]colour.Color
	Dark     map[string]colour.Color
	Palettes Palettes
}

// New builds a scheme from explicit role mappings and checks its invariants.
func New(source colour.Color, roles []string, light, dark map[string]colour.Color) (*Scheme, error) {
	if len(light) != len(roles) || len(dark) != len(roles) {
		return nil, fmt.Errorf("scheme role count mismatch: %d roles, %d light, %d dark", len(roles), len(light), len(dark))
	}

	seen := make(map[string]bool, len(roles))
	for _, role := range roles {
		if role == SourceColorRole {
			return nil, fmt.Errorf("role name %q is reserved", role)
		}
		if seen[role] {
			return nil, fmt.Errorf("duplicate role name %q", role)
		}
		seen[role] = true

		if _, ok := light[role]; !ok {
			return nil, fmt.Errorf("role %q missing from light variant", role)
		}
		if _, ok := dark[role]; !ok {
			return nil, fmt.Errorf("role %q missing from dark variant", role)
		}
	}

	return &Scheme{
		Source:   source,
		Roles:    roles,
		Light:    light,
		Dark:     dark,
		Palettes: NewPalettes(source),
	}, nil
}

// RoleNames returns the declared roles followed by SourceColorRole.
func (s *Scheme) RoleNames() []string {
	names := make([]string, 0, len(s.Roles)+1)
	names = append(names, s.Roles...)
	return append(names, SourceColorRole)
}

// Get resolves a role for a variant, including SourceColorRole.
func (s *Scheme) Get(v Variant, role string) (colour.Color, bool) {
	if role == SourceColorRole {
		return s.Source, true
	}
	c, ok := s.colors(v)[role]
	return c, ok
}

func (s *Scheme) colors(v Variant) map[string]colour.Color {
	if v == Dark {
		return s.Dark
	}
	return s.Light
}

// Mode is the user facing scheme selection: light, dark or amoled.
// It implements pflag.Value.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeAmoled Mode = "amoled"
)

// String implements pflag.Value.
func (m *Mode) String() string {
	return string(*m)
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	switch Mode(strings.ToLower(s)) {
	case ModeLight, ModeDark, ModeAmoled:
		*m = Mode(strings.ToLower(s))
		return nil
	default:
		return fmt.Errorf("invalid mode %q (valid modes: light, dark, amoled)", s)
	}
}

// Type implements pflag.Value.
func (m *Mode) Type() string {
	return "mode"
}

// Variant returns the variant rendered for the mode.
func (m Mode) Variant() Variant {
	if m == ModeLight {
		return Light
	}
	return Dark
}
