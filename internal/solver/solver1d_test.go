package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/heatsim/internal/material"
)

func TestNew1D_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"too few points", func(p *Params) { p.GridPoints = 1 }},
		{"zero length", func(p *Params) { p.Length = 0 }},
		{"negative length", func(p *Params) { p.Length = -1 }},
		{"zero tmax", func(p *Params) { p.Tmax = 0 }},
		{"zero heat capacity", func(p *Params) { p.Material = material.Material{Name: "void"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams(5)
			tt.mutate(&p)
			if _, err := New1D(p); !errors.Is(err, ErrInvalidDomainParameters) {
				t.Errorf("expected ErrInvalidDomainParameters, got %v", err)
			}
		})
	}
}

func TestSolver1D_InitialField(t *testing.T) {
	p := testParams(5)
	p.SourceAmplitude = 0
	s, err := New1D(p)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range s.Temperature() {
		if v != 273.15 {
			t.Errorf("u[%d]: expected 273.15, got %g", i, v)
		}
	}
	if s.Time() != 0 {
		t.Errorf("expected t=0, got %g", s.Time())
	}
}

func TestSolver1D_NoSourceEquilibrium(t *testing.T) {
	p := testParams(5)
	p.SourceAmplitude = 0
	s, _ := New1D(p)

	if !s.Step() {
		t.Fatal("first step should succeed")
	}
	for i, v := range s.Temperature() {
		if math.Abs(v-273.15) > 1e-9 {
			t.Errorf("u[%d]: equilibrium disturbed without source: %g", i, v)
		}
	}
	// The Dirichlet end stays exact, not just within tolerance.
	if s.Temperature()[4] != 273.15 {
		t.Errorf("boundary not pinned exactly: %v", s.Temperature()[4])
	}
}

func TestSolver1D_StepCount(t *testing.T) {
	p := testParams(5)
	s, _ := New1D(p)

	count := 0
	for s.Step() {
		count++
		if count > 2000 {
			t.Fatal("runaway stepping")
		}
	}

	if count != 1000 {
		t.Errorf("expected 1000 successful steps, got %d", count)
	}
	if math.Abs(s.Time()-p.Tmax) > 1e-9 {
		t.Errorf("expected t≈%g, got %g", p.Tmax, s.Time())
	}
	if !s.Done() {
		t.Error("solver should report done")
	}

	// Past the horizon, stepping stays a no-op.
	before := make([]float64, len(s.Temperature()))
	copy(before, s.Temperature())
	if s.Step() {
		t.Error("step past horizon should return false")
	}
	for i, v := range s.Temperature() {
		if v != before[i] {
			t.Errorf("no-op step modified u[%d]", i)
		}
	}
}

func TestSolver1D_DirichletPinned(t *testing.T) {
	p := testParams(21)
	s, _ := New1D(p)

	for k := 0; k < 50; k++ {
		if !s.Step() {
			t.Fatal("unexpected end of stepping")
		}
		u := s.Temperature()
		if u[len(u)-1] != 273.15 {
			t.Fatalf("step %d: boundary drifted to %g", k, u[len(u)-1])
		}
	}
}

func TestSolver1D_MonotonicHeating(t *testing.T) {
	p := testParams(21)
	p.SourceAmplitude = 50
	s, _ := New1D(p)

	prevMax := maxOf(s.Temperature())
	for k := 0; k < 200; k++ {
		s.Step()
		m := maxOf(s.Temperature())
		if m < prevMax-1e-9 {
			t.Fatalf("step %d: max temperature dropped from %g to %g", k, prevMax, m)
		}
		prevMax = m
	}
	if prevMax <= 273.15 {
		t.Error("positive source should heat the bar")
	}
}

func TestSolver1D_Reset(t *testing.T) {
	p := testParams(9)
	p.SourceAmplitude = 10
	s, _ := New1D(p)

	for k := 0; k < 123; k++ {
		s.Step()
	}
	src := make([]float64, len(s.Source()))
	copy(src, s.Source())

	s.Reset()

	if s.Time() != 0 {
		t.Errorf("expected t=0 after reset, got %g", s.Time())
	}
	fresh, _ := New1D(p)
	for i, v := range s.Temperature() {
		if v != fresh.Temperature()[i] {
			t.Errorf("u[%d]: reset field differs from fresh construction", i)
		}
	}
	for i, v := range s.Source() {
		if v != src[i] {
			t.Errorf("f[%d]: reset touched the source", i)
		}
	}
}

func TestSolver1D_HeatSpreadsFromSource(t *testing.T) {
	// The band at [L/10, 2L/10] should warm its surroundings over time.
	// Copper and a long horizon give a diffusion number large enough for
	// the spread to be visible at this resolution.
	p := Params{
		Material:        material.Copper,
		Length:          1.0,
		Tmax:            16.0,
		InitialTemp:     13,
		SourceAmplitude: 80,
		GridPoints:      101,
	}
	s, _ := New1D(p)

	for k := 0; k < 500; k++ {
		s.Step()
	}

	u := s.Temperature()
	inBand := u[15]   // x=0.15, inside the strong band
	nearBand := u[30] // x=0.30, outside
	far := u[90]      // x=0.90, near the pinned end

	if inBand <= nearBand+1 {
		t.Errorf("band (%g) should be much hotter than its surroundings (%g)", inBand, nearBand)
	}
	if nearBand <= far {
		t.Errorf("region near band (%g) should be hotter than the far end (%g)", nearBand, far)
	}
}

func maxOf(u []float64) float64 {
	m := u[0]
	for _, v := range u[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
