package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/scheme"
)

const swatchWidth = 6

// swatch renders a block of c. Without colour support it renders nothing.
func swatch(c colour.Color, styled bool) string {
	if !styled {
		return ""
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Width(swatchWidth).
		Render("")
}

// printColors writes every role of s with its light and dark value.
func printColors(w io.Writer, s *scheme.Scheme, styled bool) {
	headers := []string{"ROLE", "LIGHT", "DARK"}
	if styled {
		headers = []string{"ROLE", "LIGHT", "", "DARK", ""}
	}
	table := NewTable(headers)

	for _, role := range s.RoleNames() {
		light, _ := s.Get(scheme.Light, role)
		dark, _ := s.Get(scheme.Dark, role)
		if styled {
			table.AddRow([]string{role, light.Hex(), swatch(light, true), dark.Hex(), swatch(dark, true)})
		} else {
			table.AddRow([]string{role, light.Hex(), dark.Hex()})
		}
	}

	fmt.Fprint(w, table.Render())
}

type schemeDump struct {
	Colors   variantDump                  `json:"colors"`
	Palettes map[string]map[string]string `json:"palettes"`
}

type variantDump struct {
	Light map[string]string `json:"light"`
	Dark  map[string]string `json:"dark"`
}

// newSchemeDump formats every role and palette tone of s with format.
func newSchemeDump(s *scheme.Scheme, format colour.Format) schemeDump {
	names := s.RoleNames()
	dump := schemeDump{
		Colors: variantDump{
			Light: make(map[string]string, len(names)),
			Dark:  make(map[string]string, len(names)),
		},
		Palettes: make(map[string]map[string]string),
	}

	for _, role := range names {
		light, _ := s.Get(scheme.Light, role)
		dark, _ := s.Get(scheme.Dark, role)
		dump.Colors.Light[role] = light.Format(format)
		dump.Colors.Dark[role] = dark.Format(format)
	}

	for name, palette := range s.Palettes.Named() {
		tones := make(map[string]string, len(scheme.PaletteTones))
		for _, tone := range scheme.PaletteTones {
			tones[strconv.Itoa(tone)] = palette.Tone(float32(tone)).Format(format)
		}
		dump.Palettes[name] = tones
	}

	return dump
}

// writeJSON writes the scheme dump as indented JSON.
func writeJSON(w io.Writer, s *scheme.Scheme, format colour.Format) error {
	data, err := json.MarshalIndent(newSchemeDump(s, format), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scheme: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write scheme: %w", err)
	}
	return nil
}
