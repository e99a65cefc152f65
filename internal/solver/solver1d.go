package solver

// Solver1D advances the temperature field of a 1D bar one backward Euler
// step at a time. Each step builds a tridiagonal system over the n grid
// points and solves it directly; there is no iteration and no tolerance.
type Solver1D struct {
	params   Params
	dx, dt   float64
	u0Kelvin float64
	t        float64
	n        int

	u []float64 // temperature field, Kelvin
	f []float64 // static heat source

	// per-step scratch, reused across steps
	a, b, c, d, cp, dp, uNew []float64
}

// New1D validates p and builds a solver with a uniform initial field.
func New1D(p Params) (*Solver1D, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	n := p.GridPoints
	s := &Solver1D{
		params:   p,
		dx:       p.dx(),
		dt:       p.dt(),
		u0Kelvin: p.InitialTemp + KelvinOffset,
		n:        n,
		u:        make([]float64, n),
		f:        newSource1D(p),
		a:        make([]float64, n),
		b:        make([]float64, n),
		c:        make([]float64, n),
		d:        make([]float64, n),
		cp:       make([]float64, n),
		dp:       make([]float64, n),
		uNew:     make([]float64, n),
	}
	for i := range s.u {
		s.u[i] = s.u0Kelvin
	}
	return s, nil
}

// Step advances the field by dt. It returns false, without touching any
// state, once the horizon tmax has been reached; calling it again stays
// a no-op.
func (s *Solver1D) Step() bool {
	// t accumulates dt additions, so float rounding can leave it just
	// under tmax and admit one extra step for some horizons
	if s.t >= s.params.Tmax {
		return false
	}

	alpha := s.params.Material.Alpha()
	r := alpha * s.dt / (s.dx * s.dx)
	coef := s.dt / (s.params.Material.Density * s.params.Material.SpecificHeat)

	for i := 0; i < s.n; i++ {
		s.a[i] = -r
		s.b[i] = 1 + 2*r
		s.c[i] = -r
		s.d[i] = s.u[i] + coef*s.f[i]
	}

	// Insulated left end: the missing ghost neighbor mirrors into the
	// right neighbor's coefficient.
	s.b[0] = 1 + r
	s.c[0] = -r

	// Fixed right end, pinned to the reference temperature.
	s.a[s.n-1] = 0
	s.b[s.n-1] = 1
	s.c[s.n-1] = 0
	s.d[s.n-1] = s.u0Kelvin

	solveTridiagonal(s.a, s.b, s.c, s.d, s.cp, s.dp, s.uNew)

	s.u, s.uNew = s.uNew, s.u
	s.t += s.dt
	return true
}

// Temperature returns the current field in Kelvin, index i at x = i·dx.
// The slice is owned by the solver; callers must not modify it.
func (s *Solver1D) Temperature() []float64 { return s.u }

// Source returns the static heat source term. Read-only.
func (s *Solver1D) Source() []float64 { return s.f }

// Time returns the current simulation time.
func (s *Solver1D) Time() float64 { return s.t }

// Tmax returns the simulation horizon.
func (s *Solver1D) Tmax() float64 { return s.params.Tmax }

// N returns the grid resolution.
func (s *Solver1D) N() int { return s.n }

// Done reports whether the horizon has been reached.
func (s *Solver1D) Done() bool { return s.t >= s.params.Tmax }

// Reset returns the solver to t=0 with a uniform field at the initial
// temperature. The source is left untouched.
func (s *Solver1D) Reset() {
	s.t = 0
	for i := range s.u {
		s.u[i] = s.u0Kelvin
	}
}
