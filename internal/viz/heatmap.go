package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBar draws a 1D field as a single colored strip, resampled to
// width cells.
func RenderBar(field []float64, width int, cm *Colormap) string {
	if len(field) == 0 || width < 1 {
		return ""
	}
	var b strings.Builder
	for x := 0; x < width; x++ {
		t := field[resample(x, width, len(field))]
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(cm.Hex(t))).
			Render("█"))
	}
	return b.String()
}

// RenderPlate draws a 2D field as rows of half blocks, two field rows
// per terminal row. Row j increases upward, so the top terminal row
// shows the highest j.
func RenderPlate(grid [][]float64, width, height int, cm *Colormap) string {
	n := len(grid)
	if n == 0 || width < 1 || height < 1 {
		return ""
	}

	rows := make([]string, 0, height)
	for y := 0; y < height; y++ {
		var b strings.Builder
		jTop := n - 1 - resample(2*y, 2*height, n)
		jBot := n - 1 - resample(2*y+1, 2*height, n)
		for x := 0; x < width; x++ {
			i := resample(x, width, n)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(cm.Hex(grid[jTop][i]))).
				Background(lipgloss.Color(cm.Hex(grid[jBot][i])))
			b.WriteString(style.Render("▀"))
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

// Colorbar draws the legend strip with the range endpoints in Kelvin.
func Colorbar(cm *Colormap, width int) string {
	if width < 1 {
		return ""
	}
	tMin, tMax := cm.Range()

	var b strings.Builder
	for x := 0; x < width; x++ {
		frac := 0.0
		if width > 1 {
			frac = float64(x) / float64(width-1)
		}
		t := tMin + frac*(tMax-tMin)
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(cm.Hex(t))).
			Render("█"))
	}
	minLabel := fmt.Sprintf("%.1fK", tMin)
	maxLabel := fmt.Sprintf("%.1fK", tMax)
	pad := width - len(minLabel) - len(maxLabel)
	if pad < 1 {
		pad = 1
	}
	return b.String() + "\n" + minLabel + strings.Repeat(" ", pad) + maxLabel
}

// resample maps output cell x of w onto a source index of n points.
func resample(x, w, n int) int {
	if w <= 1 {
		return 0
	}
	i := x * (n - 1) / (w - 1)
	if i > n-1 {
		i = n - 1
	}
	return i
}
