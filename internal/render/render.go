// Package render formats matcalc results for the terminal with lipgloss.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/densemat/internal/config"
	"github.com/katalvlaran/densemat/matrix"
)

const (
	cellGap  = "  "
	emptyTag = "(empty)"
)

// Matrix renders m as right-aligned columns, optionally inside a rounded border.
// A nil or empty m renders as "(empty)".
func Matrix(m *matrix.Dense, cfg config.DisplayConfig) string {
	if m == nil || m.IsEmpty() {
		return frame(emptyTag, cfg)
	}

	rows, cols := m.Shape()
	cells := make([][]string, rows)
	widths := make([]int, cols)
	for i, row := range m.RowsData() {
		cells[i] = make([]string, cols)
		for j, v := range row {
			s := formatFloat(v, cfg.Precision)
			cells[i][j] = s
			widths[j] = max(widths[j], lipgloss.Width(s))
		}
	}

	lines := make([]string, rows)
	for i, row := range cells {
		parts := make([]string, cols)
		for j, s := range row {
			parts[j] = lipgloss.NewStyle().Width(widths[j]).Align(lipgloss.Right).Render(s)
		}
		lines[i] = strings.Join(parts, cellGap)
	}

	return frame(strings.Join(lines, "\n"), cfg)
}

// Scalar renders a single number with the configured precision.
func Scalar(label string, v float64, cfg config.DisplayConfig) string {
	return labelStyle(cfg).Render(label+":") + " " + formatFloat(v, cfg.Precision)
}

// Bool renders a yes/no answer.
func Bool(label string, v bool, cfg config.DisplayConfig) string {
	return labelStyle(cfg).Render(label+":") + " " + strconv.FormatBool(v)
}

func frame(body string, cfg config.DisplayConfig) string {
	if !cfg.Border {
		return body
	}
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if cfg.Color != "" {
		style = style.BorderForeground(lipgloss.Color(cfg.Color))
	}

	return style.Render(body)
}

func labelStyle(cfg config.DisplayConfig) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if cfg.Color != "" {
		style = style.Foreground(lipgloss.Color(cfg.Color))
	}

	return style
}

// formatFloat prints v with prec decimals, trimming trailing zeros and
// normalising negative zero, so integers print as "3" and not "3.000000".
func formatFloat(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}

	return s
}
