package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/heatsim/internal/storage"
)

// TraceSVG renders the max-temperature trace as a standalone SVG
// polyline, for embedding where PNG rasterization is unwanted.
func TraceSVG(trace *storage.Trace, width, height int) string {
	if trace == nil || len(trace.Times) < 2 {
		return ""
	}

	tEnd := trace.Times[len(trace.Times)-1]
	minV, maxV := trace.Max[0], trace.Max[0]
	for _, v := range trace.Max {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if maxV-minV < 1e-12 {
		maxV = minV + 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<polyline fill="none" stroke="#ff8800" stroke-width="1.5" points="`,
		width, height, width, height))

	for i, t := range trace.Times {
		x := float64(width) * t / tEnd
		y := float64(height) * (1 - (trace.Max[i]-minV)/(maxV-minV))
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
