package sim

import (
	"github.com/san-kum/heatsim/internal/solver"
)

// Session drives one solver instance to its time horizon. It is the
// single surface the TUI, CLI, and server code talk to.
type Session struct {
	kind   Kind
	params solver.Params
	bar    *solver.Solver1D
	plate  *solver.Solver2D
}

func NewSession(kind Kind, p solver.Params) (*Session, error) {
	s := &Session{kind: kind, params: p}
	var err error
	switch kind {
	case Plate2D:
		s.plate, err = solver.New2D(p)
	default:
		s.bar, err = solver.New1D(p)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Kind() Kind            { return s.kind }
func (s *Session) Params() solver.Params { return s.params }

// Step advances one time step. Returns false once the horizon is
// reached; further calls leave the field untouched.
func (s *Session) Step() bool {
	if s.kind == Plate2D {
		return s.plate.Step()
	}
	return s.bar.Step()
}

func (s *Session) Done() bool {
	if s.kind == Plate2D {
		return s.plate.Done()
	}
	return s.bar.Done()
}

func (s *Session) Reset() {
	if s.kind == Plate2D {
		s.plate.Reset()
		return
	}
	s.bar.Reset()
}

func (s *Session) Time() float64 {
	if s.kind == Plate2D {
		return s.plate.Time()
	}
	return s.bar.Time()
}

func (s *Session) Tmax() float64 { return s.params.Tmax }

// N is the number of grid points per axis.
func (s *Session) N() int {
	if s.kind == Plate2D {
		return s.plate.N()
	}
	return s.bar.N()
}

// Field returns the temperature field in Kelvin. For a plate it is the
// flattened row-major field. Callers must not modify it.
func (s *Session) Field() []float64 {
	if s.kind == Plate2D {
		return s.plate.Temperature()
	}
	return s.bar.Temperature()
}

// Grid returns the plate field as rows of columns. Nil for a bar.
func (s *Session) Grid() [][]float64 {
	if s.kind != Plate2D {
		return nil
	}
	return s.plate.Temperature2D()
}

// Sweeps reports the relaxation sweeps of the last plate step. Zero
// for a bar, whose solve is direct.
func (s *Session) Sweeps() int {
	if s.kind != Plate2D {
		return 0
	}
	return s.plate.LastSweeps()
}

// Summary is the per-frame display digest: material, diffusivity,
// progress, and the current field extremes.
type Summary struct {
	Kind        Kind
	Material    string
	Alpha       float64
	Time        float64
	Tmax        float64
	Length      float64
	InitialTemp float64
	Min         float64
	Max         float64
	Center      float64
	Sweeps      int
}

func (s *Session) Summary() Summary {
	field := s.Field()
	min, max := field[0], field[0]
	for _, v := range field[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return Summary{
		Kind:        s.kind,
		Material:    s.params.Material.Name,
		Alpha:       s.params.Material.Alpha(),
		Time:        s.Time(),
		Tmax:        s.params.Tmax,
		Length:      s.params.Length,
		InitialTemp: s.params.InitialTemp,
		Min:         min,
		Max:         max,
		Center:      s.centerTemp(field),
		Sweeps:      s.Sweeps(),
	}
}

func (s *Session) centerTemp(field []float64) float64 {
	n := s.N()
	mid := n / 2
	if s.kind == Plate2D {
		return field[mid*n+mid]
	}
	return field[mid]
}
