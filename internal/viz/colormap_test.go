package viz

import (
	"math"
	"strings"
	"testing"
)

func TestColormapEndpoints(t *testing.T) {
	cm := NewColormap(0, 100)

	r, g, b := cm.RGB(0)
	if r != 0 || g != 0 || b != 4 {
		t.Errorf("expected darkest entry (0,0,4), got (%d,%d,%d)", r, g, b)
	}

	r, g, b = cm.RGB(100)
	if r != 252 || g != 255 || b != 164 {
		t.Errorf("expected brightest entry (252,255,164), got (%d,%d,%d)", r, g, b)
	}
}

func TestColormapClamps(t *testing.T) {
	cm := NewColormap(0, 100)

	rLow, gLow, bLow := cm.RGB(-50)
	r0, g0, b0 := cm.RGB(0)
	if rLow != r0 || gLow != g0 || bLow != b0 {
		t.Error("below-range value must clamp to the low end")
	}

	rHigh, _, _ := cm.RGB(1e6)
	r1, _, _ := cm.RGB(100)
	if rHigh != r1 {
		t.Error("above-range value must clamp to the high end")
	}
}

func TestColormapInterpolates(t *testing.T) {
	// halfway between table entries 0 and 1: (0,0,4) and (1,0,5)
	cm := NewColormap(0, 255)
	_, _, b := cm.RGB(0.5)
	if b != 4 {
		t.Errorf("expected truncated midpoint blue 4, got %d", b)
	}
}

func TestAutoRangeMargin(t *testing.T) {
	cm := NewColormap(0, 1)
	cm.AutoRange([]float64{200, 300})

	tMin, tMax := cm.Range()
	if math.Abs(tMin-195) > 1e-9 || math.Abs(tMax-305) > 1e-9 {
		t.Errorf("expected [195, 305], got [%f, %f]", tMin, tMax)
	}
}

func TestAutoRangeFloor(t *testing.T) {
	cm := NewColormap(0, 1)
	cm.AutoRange([]float64{273.15, 273.15, 273.15})

	tMin, tMax := cm.Range()
	if tMax-tMin < 1.0 {
		t.Errorf("degenerate range not widened: [%f, %f]", tMin, tMax)
	}
	if math.Abs((tMin+tMax)/2-273.15) > 1e-9 {
		t.Errorf("widened range not centered on field value: [%f, %f]", tMin, tMax)
	}
}

func TestAutoRangeEmptyField(t *testing.T) {
	cm := NewColormap(5, 10)
	cm.AutoRange(nil)

	tMin, tMax := cm.Range()
	if tMin != 5 || tMax != 10 {
		t.Error("empty field must leave the range untouched")
	}
}

func TestHexFormat(t *testing.T) {
	cm := NewColormap(0, 100)
	hex := cm.Hex(0)
	if hex != "#000004" {
		t.Errorf("expected #000004, got %s", hex)
	}
}

func TestRenderBarWidth(t *testing.T) {
	cm := NewColormap(273, 283)
	field := []float64{273, 275, 277, 279, 281, 283}

	out := RenderBar(field, 12, cm)
	if strings.Count(out, "█") != 12 {
		t.Errorf("expected 12 cells, got %d", strings.Count(out, "█"))
	}

	if RenderBar(nil, 12, cm) != "" {
		t.Error("empty field renders empty")
	}
}

func TestRenderPlateRows(t *testing.T) {
	cm := NewColormap(273, 283)
	grid := make([][]float64, 8)
	for j := range grid {
		grid[j] = make([]float64, 8)
		for i := range grid[j] {
			grid[j][i] = 273 + float64(i+j)
		}
	}

	out := RenderPlate(grid, 10, 4, cm)
	rows := strings.Split(out, "\n")
	if len(rows) != 4 {
		t.Errorf("expected 4 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if strings.Count(row, "▀") != 10 {
			t.Errorf("expected 10 cells per row, got %d", strings.Count(row, "▀"))
		}
	}
}

func TestColorbarLabels(t *testing.T) {
	cm := NewColormap(273.15, 373.15)
	out := Colorbar(cm, 30)

	if !strings.Contains(out, "273.1K") || !strings.Contains(out, "373.1K") {
		t.Errorf("colorbar missing range labels: %q", out)
	}
}

func TestResample(t *testing.T) {
	tests := []struct {
		x, w, n  int
		expected int
	}{
		{0, 10, 100, 0},
		{9, 10, 100, 99},
		{0, 1, 100, 0},
		{5, 10, 10, 5},
	}
	for _, tt := range tests {
		if got := resample(tt.x, tt.w, tt.n); got != tt.expected {
			t.Errorf("resample(%d,%d,%d) = %d, want %d", tt.x, tt.w, tt.n, got, tt.expected)
		}
	}
}
