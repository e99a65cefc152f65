package solver

// Heat sources are static: they are sampled once at construction from
// fixed fractional sub-regions of the domain and never change afterwards.
// Region bounds are inclusive, so a grid point exactly on a boundary
// belongs to the source.

// newSource1D places two bands on the bar: [L/10, 2L/10] at full
// intensity tmax·f²·scale and [5L/10, 6L/10] at 3/4 of it.
func newSource1D(p Params) []float64 {
	full := p.Tmax * p.SourceAmplitude * p.SourceAmplitude * p.sourceScale()
	reduced := 0.75 * full

	f := make([]float64, p.GridPoints)
	dx, l := p.dx(), p.Length
	for i := range f {
		x := float64(i) * dx
		switch {
		case x >= l/10 && x <= 2*l/10:
			f[i] = full
		case x >= 5*l/10 && x <= 6*l/10:
			f[i] = reduced
		}
	}
	return f
}

// newSource2D places four squares of uniform intensity tmax·f²·scale,
// spanning [L/6, 2L/6] and [4L/6, 5L/6] on each axis. The returned slice
// is row-major with index j*n+i.
func newSource2D(p Params) []float64 {
	intensity := p.Tmax * p.SourceAmplitude * p.SourceAmplitude * p.sourceScale()

	n := p.GridPoints
	f := make([]float64, n*n)
	dx, l := p.dx(), p.Length
	inBand := func(v float64) bool {
		return (v >= l/6 && v <= 2*l/6) || (v >= 4*l/6 && v <= 5*l/6)
	}
	for j := 0; j < n; j++ {
		y := float64(j) * dx
		for i := 0; i < n; i++ {
			x := float64(i) * dx
			if inBand(x) && inBand(y) {
				f[j*n+i] = intensity
			}
		}
	}
	return f
}
