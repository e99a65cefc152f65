package solver

import (
	"errors"
	"fmt"

	"github.com/san-kum/heatsim/internal/material"
)

// KelvinOffset converts the Celsius construction inputs to the Kelvin
// values stored in the field.
const KelvinOffset = 273.15

// timeSteps is the number of backward Euler steps from t=0 to tmax; the
// time step is always tmax/timeSteps.
const timeSteps = 1000

// DefaultSourceScale is the amplification applied to the physical source
// intensity tmax·f². It has no physical meaning; it exists to make heat
// propagation visible on the rendered colormap, and can be overridden
// through Params.SourceScale.
const DefaultSourceScale = 100.0

// ErrInvalidDomainParameters indicates a solver construction request with
// a degenerate domain (too few grid points, non-positive extent or
// horizon, or zero volumetric heat capacity ρc).
var ErrInvalidDomainParameters = errors.New("solver: invalid domain parameters")

// Params configures a solver. Material, Length, Tmax, InitialTemp,
// SourceAmplitude and GridPoints correspond to the λ/ρ/c, L, tmax, u0, f
// and n inputs of the underlying scheme. InitialTemp is in °C and also
// serves as the Dirichlet boundary temperature.
type Params struct {
	Material        material.Material
	Length          float64 // domain extent L, m
	Tmax            float64 // simulation horizon, s
	InitialTemp     float64 // u0, °C
	SourceAmplitude float64 // f
	GridPoints      int     // n, per axis
	SourceScale     float64 // 0 means DefaultSourceScale
}

func (p Params) validate() error {
	if p.GridPoints < 2 {
		return fmt.Errorf("%w: need at least 2 grid points, got %d", ErrInvalidDomainParameters, p.GridPoints)
	}
	if p.Length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %g", ErrInvalidDomainParameters, p.Length)
	}
	if p.Tmax <= 0 {
		return fmt.Errorf("%w: tmax must be positive, got %g", ErrInvalidDomainParameters, p.Tmax)
	}
	if p.Material.Density*p.Material.SpecificHeat == 0 {
		return fmt.Errorf("%w: material %q has zero volumetric heat capacity", ErrInvalidDomainParameters, p.Material.Name)
	}
	return nil
}

func (p Params) sourceScale() float64 {
	if p.SourceScale == 0 {
		return DefaultSourceScale
	}
	return p.SourceScale
}

func (p Params) dx() float64 { return p.Length / float64(p.GridPoints-1) }
func (p Params) dt() float64 { return p.Tmax / timeSteps }
