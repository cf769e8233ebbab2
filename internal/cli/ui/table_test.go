package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestTable(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Owner", "Members", "External Imports"}, &TableOptions{NoColor: true})

	table.AddRow("A", "2", "0")
	table.AddRow("B", "1", "1")

	table.Render()

	output := buf.String()

	for _, want := range []string{"Owner", "Members", "External Imports", "A", "B"} {
		if !strings.Contains(output, want) {
			t.Errorf("Table output missing %q", want)
		}
	}

	if !strings.Contains(output, "─") {
		t.Errorf("Table output missing separator")
	}
}

func TestTableEmpty(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	table := NewTable(&buf, []string{}, &TableOptions{NoColor: true})

	table.Render()

	output := buf.String()
	if output != "" {
		t.Errorf("Expected empty output for table with no headers, got: %q", output)
	}
}

func TestTableAlignment(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Short", "VeryLongHeader"}, &TableOptions{NoColor: true})

	table.AddRow("a", "b")
	table.AddRow("longer", "c")

	table.Render()

	output := buf.String()

	lines := strings.Split(output, "\n")
	if len(lines) < 3 {
		t.Errorf("Expected at least 3 lines (header, separator, row)")
	}

	for i, line := range lines {
		if line == "" {
			continue
		}
		if i > 0 && len(line) < 10 {
			t.Errorf("Line %d seems too short for proper alignment: %q", i, line)
		}
	}
}

// TestNewSCCTable covers the column layout root.go's printSCCTable relies
// on when reporting the strongly connected components produced by a
// module-mode run.
func TestNewSCCTable(t *testing.T) {
	var buf bytes.Buffer
	table := NewSCCTable(&buf, true)

	table.AddRow("A", "2", "0")
	table.Render()

	output := buf.String()
	for _, want := range []string{"Owner", "Members", "External Imports", "A", "2", "0"} {
		if !strings.Contains(output, want) {
			t.Errorf("SCC table output missing %q, got: %s", want, output)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"test", 4, "test"},
		{"test", 2, "test"},
		{"", 5, "     "},
	}

	for _, tt := range tests {
		result := padRight(tt.input, tt.width)
		if result != tt.expected {
			t.Errorf("padRight(%q, %d) = %q; want %q", tt.input, tt.width, result, tt.expected)
		}
	}
}
