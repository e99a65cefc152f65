package solver

import (
	"math"
	"testing"

	"github.com/san-kum/heatsim/internal/material"
)

func testParams(n int) Params {
	return Params{
		Material:        material.Iron,
		Length:          1.0,
		Tmax:            1.0,
		InitialTemp:     0,
		SourceAmplitude: 2.0,
		GridPoints:      n,
	}
}

func TestSource1D_Bands(t *testing.T) {
	// n=11 puts grid points exactly on the band boundaries (dx=0.1).
	p := testParams(11)
	f := newSource1D(p)

	full := p.Tmax * p.SourceAmplitude * p.SourceAmplitude * DefaultSourceScale
	reduced := 0.75 * full

	expected := []float64{
		0,          // x=0.0
		full, full, // x=0.1, 0.2 (inclusive bounds)
		0, 0, // x=0.3, 0.4
		reduced, // x=0.5
		0,       // x=0.6 rounds up to 0.6000…01, just past the band
		0, 0, 0, 0, // x=0.7..1.0
	}
	for i, want := range expected {
		if math.Abs(f[i]-want) > 1e-12 {
			t.Errorf("f[%d]: expected %g, got %g", i, want, f[i])
		}
	}
}

func TestSource1D_ZeroAmplitude(t *testing.T) {
	p := testParams(11)
	p.SourceAmplitude = 0
	for i, v := range newSource1D(p) {
		if v != 0 {
			t.Errorf("f[%d]: expected 0, got %g", i, v)
		}
	}
}

func TestSource1D_ScaleOverride(t *testing.T) {
	p := testParams(11)
	p.SourceScale = 1
	f := newSource1D(p)

	want := p.Tmax * p.SourceAmplitude * p.SourceAmplitude
	if math.Abs(f[1]-want) > 1e-12 {
		t.Errorf("expected unscaled intensity %g, got %g", want, f[1])
	}
}

func TestSource2D_Squares(t *testing.T) {
	// n=13 puts grid points exactly on sixths of the domain (dx=1/12).
	p := testParams(13)
	f := newSource2D(p)
	n := p.GridPoints

	intensity := p.Tmax * p.SourceAmplitude * p.SourceAmplitude * DefaultSourceScale

	// Grid index 2 is at L/6, 4 at 2L/6, 8 at 4L/6, 10 at 5L/6.
	inBand := func(k int) bool { return (k >= 2 && k <= 4) || (k >= 8 && k <= 10) }

	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			want := 0.0
			if inBand(i) && inBand(j) {
				want = intensity
			}
			if math.Abs(f[j*n+i]-want) > 1e-12 {
				t.Errorf("f(%d,%d): expected %g, got %g", i, j, want, f[j*n+i])
			}
		}
	}
}

func TestSource2D_DirichletEdgesUnsourced(t *testing.T) {
	p := testParams(25)
	f := newSource2D(p)
	n := p.GridPoints

	for k := 0; k < n; k++ {
		if f[(n-1)*n+k] != 0 {
			t.Errorf("top edge point %d carries source", k)
		}
		if f[k*n+n-1] != 0 {
			t.Errorf("right edge point %d carries source", k)
		}
	}
}
