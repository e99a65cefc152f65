package sim

import "fmt"

// Kind selects which solver a session drives. The two solvers are
// distinct concrete types; a session wraps exactly one of them.
type Kind int

const (
	Bar1D Kind = iota
	Plate2D
)

func (k Kind) String() string {
	switch k {
	case Bar1D:
		return "bar"
	case Plate2D:
		return "plate"
	}
	return "unknown"
}

func ParseKind(s string) (Kind, error) {
	switch s {
	case "bar", "1d":
		return Bar1D, nil
	case "plate", "2d":
		return Plate2D, nil
	}
	return 0, fmt.Errorf("unknown simulation kind %q (want bar or plate)", s)
}

type Metric interface {
	Name() string
	Observe(field []float64, t float64)
	Value() float64
	Reset()
}

type Result struct {
	Times      []float64
	MinTrace   []float64
	MaxTrace   []float64
	Center     []float64
	Metrics    map[string]float64
	FinalField []float64
	Steps      int
}

type RunConfig struct {
	// SampleEvery records a trace point every k steps; 0 means every step.
	SampleEvery int
}
