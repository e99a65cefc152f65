package sim

// SweepCount accumulates Gauss-Seidel sweeps across a run. It reads the
// session's per-step diagnostic, so it reports 0 for a bar session.
type SweepCount struct {
	session *Session
	total   int
}

func NewSweepCount(session *Session) *SweepCount {
	return &SweepCount{session: session}
}

func (s *SweepCount) Name() string { return "total_sweeps" }

func (s *SweepCount) Observe(field []float64, t float64) {
	s.total += s.session.Sweeps()
}

func (s *SweepCount) Value() float64 {
	return float64(s.total)
}

func (s *SweepCount) Reset() {
	s.total = 0
}
