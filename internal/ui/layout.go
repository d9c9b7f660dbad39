package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Columns returns how many grid columns fit in width, given a minimum cell
// width and the gap between cells, capped at most.
func Columns(width, minCell, gap, most int) int {
	if most < 1 {
		most = 1
	}
	n := (width + gap) / (minCell + gap)
	return max(1, min(n, most))
}

// CellWidth is the width of each of n cells laid across width with gap
// spaces between them.
func CellWidth(width, n, gap int) int {
	if n < 1 {
		return width
	}
	return max((width-gap*(n-1))/n, 1)
}

// Grid lays cells out left to right in rows of cols, separating cells by gap
// spaces and rows by a blank line. Cells in a row are top-aligned.
func Grid(cells []string, cols, gap int) string {
	if cols < 1 {
		cols = 1
	}
	var rows []string
	spacer := strings.Repeat(" ", gap)
	for i := 0; i < len(cells); i += cols {
		end := min(i+cols, len(cells))
		parts := make([]string, 0, 2*(end-i))
		for j := i; j < end; j++ {
			if j > i {
				parts = append(parts, spacer)
			}
			parts = append(parts, cells[j])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return strings.Join(rows, "\n\n")
}
