package sim

// Headless runner: steps a session to its horizon, recording traces and
// feeding metrics. Cancellation is honored between steps only; a step
// is never interrupted mid-solve.

import (
	"context"
)

type Runner struct {
	session *Session
	metrics []Metric
}

func NewRunner(session *Session) *Runner {
	return &Runner{
		session: session,
		metrics: make([]Metric, 0),
	}
}

func (r *Runner) AddMetric(m Metric) { r.metrics = append(r.metrics, m) }

func (r *Runner) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	every := cfg.SampleEvery
	if every < 1 {
		every = 1
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	result := &Result{
		Metrics: make(map[string]float64),
	}
	r.record(result)

	for {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if !r.session.Step() {
			break
		}
		result.Steps++

		field := r.session.Field()
		t := r.session.Time()
		for _, m := range r.metrics {
			m.Observe(field, t)
		}
		if result.Steps%every == 0 {
			r.record(result)
		}
	}

	if result.Steps%every != 0 {
		r.record(result)
	}

	field := r.session.Field()
	result.FinalField = make([]float64, len(field))
	copy(result.FinalField, field)

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (r *Runner) record(result *Result) {
	s := r.session.Summary()
	result.Times = append(result.Times, s.Time)
	result.MinTrace = append(result.MinTrace, s.Min)
	result.MaxTrace = append(result.MaxTrace, s.Max)
	result.Center = append(result.Center, s.Center)
}
