// Package export renders stored runs to image files: PNG plots of
// temperature profiles and traces, and a dependency-free SVG fallback
// for traces.
package export

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/heatsim/internal/storage"
)

// ProfilePNG plots a final temperature profile against position. For a
// plate the center row is plotted.
func ProfilePNG(path, title string, length float64, rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return fmt.Errorf("export: empty field")
	}

	row := rows[len(rows)/2]
	n := len(row)

	pts := make(plotter.XYs, n)
	for i, v := range row {
		x := 0.0
		if n > 1 {
			x = length * float64(i) / float64(n-1)
		}
		pts[i].X = x
		pts[i].Y = v
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "temperature (K)"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	p.Add(plotter.NewGrid())

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// TracePNG plots the min, max, and center temperature traces over time.
func TracePNG(path, title string, trace *storage.Trace) error {
	if len(trace.Times) == 0 {
		return fmt.Errorf("export: empty trace")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t (s)"
	p.Y.Label.Text = "temperature (K)"

	series := []struct {
		label string
		vals  []float64
	}{
		{"max", trace.Max},
		{"center", trace.Center},
		{"min", trace.Min},
	}

	for i, s := range series {
		pts := make(plotter.XYs, len(trace.Times))
		for j := range trace.Times {
			pts[j].X = trace.Times[j]
			pts[j].Y = s.vals[j]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.label, line)
	}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
