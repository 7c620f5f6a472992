package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Role", "Hex"})

	table.AddRow([]string{"primary", "#6750A4"})
	table.AddRow([]string{"secondary"})
	table.AddRow([]string{"tertiary", "#7D5260", "extra"})

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d: expected 2 columns, got %d", i, len(row))
		}
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"ROLE", "LIGHT", "DARK"})
	table.AddRow([]string{"primary", "#6750A4", "#D0BCFF"})
	table.AddRow([]string{"on_primary_container", "#21005D", "#EADDFF"})

	lines := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d: %q", len(lines), lines)
	}

	if !strings.HasPrefix(lines[1], strings.Repeat("-", len("on_primary_container"))+"  ") {
		t.Errorf("Expected separator sized to the widest role, got %q", lines[1])
	}

	// Columns line up.
	col := strings.Index(lines[0], "LIGHT")
	for _, line := range lines[2:] {
		if strings.Index(line, "#") != col {
			t.Errorf("Expected light column at %d in %q", col, line)
		}
	}
	for _, line := range lines {
		if strings.HasSuffix(line, " ") {
			t.Errorf("Unexpected trailing space in %q", line)
		}
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if output := NewTable(nil).Render(); output != "" {
		t.Errorf("Expected empty string for empty table, got: %q", output)
	}
}

func TestTableStyledCellWidth(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("ab")

	table := NewTable([]string{"A", "B"})
	table.AddRow([]string{styled, "x"})
	table.AddRow([]string{"abcd", "y"})

	lines := strings.Split(table.Render(), "\n")
	if lipgloss.Width(lines[2]) != lipgloss.Width(lines[3]) {
		t.Errorf("Styled row width %d differs from plain row width %d", lipgloss.Width(lines[2]), lipgloss.Width(lines[3]))
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"},
		{"", 5, "     "},
		{"→", 3, "→  "},
	}

	for _, tt := range tests {
		if result := padRight(tt.input, tt.width); result != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, result, tt.expected)
		}
	}
}
