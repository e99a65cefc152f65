package viz

import "fmt"

// Colormap maps temperatures in [tMin, tMax] onto the inferno table.
// Out-of-range values clamp to the ends.
type Colormap struct {
	tMin, tMax float64
}

func NewColormap(tMin, tMax float64) *Colormap {
	return &Colormap{tMin: tMin, tMax: tMax}
}

func (c *Colormap) SetRange(tMin, tMax float64) {
	c.tMin = tMin
	c.tMax = tMax
}

func (c *Colormap) Range() (float64, float64) { return c.tMin, c.tMax }

// AutoRange fits the map to the field with a 5% margin, widening to a
// floor of 1 K so a near-uniform field does not explode the contrast.
func (c *Colormap) AutoRange(field []float64) {
	if len(field) == 0 {
		return
	}
	min, max := field[0], field[0]
	for _, v := range field[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	margin := (max - min) * 0.05
	c.tMin = min - margin
	c.tMax = max + margin
	if c.tMax-c.tMin < 1.0 {
		c.tMin -= 0.5
		c.tMax += 0.5
	}
}

// RGB maps a temperature to an interpolated inferno color.
func (c *Colormap) RGB(t float64) (uint8, uint8, uint8) {
	norm := (t - c.tMin) / (c.tMax - c.tMin)
	if norm < 0 {
		norm = 0
	}
	if norm > 1 {
		norm = 1
	}

	idx := norm * float64(len(infernoTable)-1)
	i0 := int(idx)
	i1 := i0 + 1
	if i1 > len(infernoTable)-1 {
		i1 = len(infernoTable) - 1
	}
	frac := idx - float64(i0)

	r := float64(infernoTable[i0][0])*(1-frac) + float64(infernoTable[i1][0])*frac
	g := float64(infernoTable[i0][1])*(1-frac) + float64(infernoTable[i1][1])*frac
	b := float64(infernoTable[i0][2])*(1-frac) + float64(infernoTable[i1][2])*frac
	return uint8(r), uint8(g), uint8(b)
}

// Hex returns the color as a lipgloss-compatible "#rrggbb" string.
func (c *Colormap) Hex(t float64) string {
	r, g, b := c.RGB(t)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
