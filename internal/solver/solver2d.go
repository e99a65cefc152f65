package solver

import "math"

// Gauss–Seidel iteration bounds. Exhausting maxSweeps without reaching
// the tolerance is an accepted approximation, not an error; LastDelta
// exposes the achieved residual for diagnostics.
const (
	maxSweeps      = 100
	sweepTolerance = 1e-6
)

// Solver2D advances the temperature field of a square plate one backward
// Euler step at a time. The implicit five-point-stencil system is solved
// by in-place Gauss–Seidel relaxation on a working copy of the field,
// which converges because the system matrix is diagonally dominant.
type Solver2D struct {
	params   Params
	dx, dt   float64
	u0Kelvin float64
	t        float64
	n        int

	u []float64 // row-major field, index j*n+i, Kelvin
	f []float64 // static heat source, same layout

	uNew []float64 // relaxation working copy

	lastSweeps int
	lastDelta  float64
}

// New2D validates p and builds a solver with a uniform initial field.
func New2D(p Params) (*Solver2D, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	n := p.GridPoints
	s := &Solver2D{
		params:   p,
		dx:       p.dx(),
		dt:       p.dt(),
		u0Kelvin: p.InitialTemp + KelvinOffset,
		n:        n,
		u:        make([]float64, n*n),
		f:        newSource2D(p),
		uNew:     make([]float64, n*n),
	}
	for i := range s.u {
		s.u[i] = s.u0Kelvin
	}
	return s, nil
}

func (s *Solver2D) idx(i, j int) int { return j*s.n + i }

// Step advances the field by dt, relaxing the implicit system with up to
// maxSweeps Gauss–Seidel sweeps. It returns false, without touching any
// state, once tmax has been reached.
func (s *Solver2D) Step() bool {
	// t accumulates dt additions, so float rounding can leave it just
	// under tmax and admit one extra step for some horizons
	if s.t >= s.params.Tmax {
		return false
	}

	alpha := s.params.Material.Alpha()
	r := alpha * s.dt / (s.dx * s.dx)
	coef := s.dt / (s.params.Material.Density * s.params.Material.SpecificHeat)

	n := s.n
	copy(s.uNew, s.u)

	s.lastSweeps = 0
	s.lastDelta = 0
	for sweep := 0; sweep < maxSweeps; sweep++ {
		maxDiff := 0.0

		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				// Right and top edges are pinned, including the corners
				// they share with the insulated edges.
				if i == n-1 || j == n-1 {
					s.uNew[s.idx(i, j)] = s.u0Kelvin
					continue
				}

				old := s.uNew[s.idx(i, j)]

				// Insulated left/bottom edges substitute the interior
				// neighbor at index 1 for the missing one at index -1.
				left := s.uNew[s.idx(1, j)]
				if i > 0 {
					left = s.uNew[s.idx(i-1, j)]
				}
				down := s.uNew[s.idx(i, 1)]
				if j > 0 {
					down = s.uNew[s.idx(i, j-1)]
				}
				right := s.uNew[s.idx(i+1, j)]
				up := s.uNew[s.idx(i, j+1)]

				rhs := s.u[s.idx(i, j)] + coef*s.f[s.idx(i, j)]
				val := (rhs + r*(left+right+down+up)) / (1 + 4*r)
				s.uNew[s.idx(i, j)] = val

				maxDiff = math.Max(maxDiff, math.Abs(val-old))
			}
		}

		s.lastSweeps = sweep + 1
		s.lastDelta = maxDiff
		if maxDiff < sweepTolerance {
			break
		}
	}

	s.u, s.uNew = s.uNew, s.u
	s.t += s.dt
	return true
}

// Temperature returns the current row-major field in Kelvin, index
// j*n+i for grid point (i,j). Owned by the solver; callers must not
// modify it.
func (s *Solver2D) Temperature() []float64 { return s.u }

// TemperatureAt returns the temperature at grid point (i,j).
func (s *Solver2D) TemperatureAt(i, j int) float64 { return s.u[s.idx(i, j)] }

// Temperature2D materializes the field as rows indexed by j, columns by
// i. The result is freshly allocated on every call.
func (s *Solver2D) Temperature2D() [][]float64 {
	result := make([][]float64, s.n)
	for j := 0; j < s.n; j++ {
		result[j] = make([]float64, s.n)
		for i := 0; i < s.n; i++ {
			result[j][i] = s.u[s.idx(i, j)]
		}
	}
	return result
}

// Source returns the static heat source term. Read-only.
func (s *Solver2D) Source() []float64 { return s.f }

// Time returns the current simulation time.
func (s *Solver2D) Time() float64 { return s.t }

// Tmax returns the simulation horizon.
func (s *Solver2D) Tmax() float64 { return s.params.Tmax }

// N returns the grid resolution per axis.
func (s *Solver2D) N() int { return s.n }

// Done reports whether the horizon has been reached.
func (s *Solver2D) Done() bool { return s.t >= s.params.Tmax }

// LastSweeps returns the number of relaxation sweeps of the most recent
// step.
func (s *Solver2D) LastSweeps() int { return s.lastSweeps }

// LastDelta returns the maximum per-point change of the last sweep of
// the most recent step.
func (s *Solver2D) LastDelta() float64 { return s.lastDelta }

// Reset returns the solver to t=0 with a uniform field at the initial
// temperature. The source is left untouched.
func (s *Solver2D) Reset() {
	s.t = 0
	for i := range s.u {
		s.u[i] = s.u0Kelvin
	}
	s.lastSweeps = 0
	s.lastDelta = 0
}
