package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1350000:  "1,350,000",
		-45000:   "-45,000",
		12345678: "12,345,678",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatNumber(in), "FormatNumber(%d)", in)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "KES 1,350,000", FormatAmount("KES", 1350000))
	assert.Equal(t, "USD 13", FormatAmount("USD", 12.6))
	assert.Equal(t, "−KES 5,000", FormatAmount("KES", -5000))
	assert.Equal(t, "KES 0", FormatAmount("KES", -0.2))
	assert.Equal(t, "250", FormatAmount("", 250))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "33%", FormatPercent(33.333))
	assert.Equal(t, "100%", FormatPercent(100))
	assert.Equal(t, "0%", FormatPercent(0))
}

func TestFormatMonth(t *testing.T) {
	assert.Equal(t, "Mar 2025", FormatMonth("2025-03"))
	assert.Equal(t, "Dec 2024", FormatMonth("2024-12"))
	assert.Equal(t, "garbage", FormatMonth("garbage"))
	assert.Equal(t, "2025-13", FormatMonth("2025-13"))
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Goals",
		Headers: []string{"Goal", "Saved"},
		Rows: [][]string{
			{"Emergency", "KES 450,000"},
			{"---"},
			{"Travel ✓", "USD 750"},
		},
	})

	assert.Contains(t, out, "Goals")
	assert.Contains(t, out, "Emergency")
	assert.Contains(t, out, "KES 450,000")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// title + top + header + sep + 2 rows + row sep + bottom
	assert.Len(t, lines, 8)
	width := lipgloss.Width(lines[1])
	for _, l := range lines[1:] {
		assert.Equal(t, width, lipgloss.Width(l), "ragged line %q", l)
	}
}

func TestRenderTableEmpty(t *testing.T) {
	assert.Empty(t, RenderTable(Table{}))
}

func TestRenderProgressBar(t *testing.T) {
	out := RenderProgressBar(50, 10)
	assert.Contains(t, out, "50%")
	assert.Equal(t, 5, strings.Count(out, "█"))

	assert.Contains(t, RenderProgressBar(140, 10), "100%")
	assert.Empty(t, RenderProgressBar(50, 0))
}

func TestRenderTitle(t *testing.T) {
	assert.Contains(t, RenderTitle("reviewr"), "reviewr")
}
