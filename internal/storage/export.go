package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

type ExportData struct {
	RunMetadata
	Times  []float64   `json:"times"`
	Min    []float64   `json:"t_min"`
	Max    []float64   `json:"t_max"`
	Center []float64   `json:"t_center"`
	Field  [][]float64 `json:"field"`
}

// ExportJSON writes a stored run, trace and final field included, as
// one JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	trace, err := s.LoadTrace(runID)
	if err != nil {
		return err
	}
	field, err := s.LoadField(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		RunMetadata: *meta,
		Times:       trace.Times,
		Min:         trace.Min,
		Max:         trace.Max,
		Center:      trace.Center,
		Field:       field,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes a stored run's trace as CSV.
func (s *Store) ExportCSV(w io.Writer, runID string) error {
	trace, err := s.LoadTrace(runID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"time", "t_min", "t_max", "t_center"}); err != nil {
		return err
	}
	for i := range trace.Times {
		row := []string{
			strconv.FormatFloat(trace.Times[i], 'f', 6, 64),
			strconv.FormatFloat(trace.Min[i], 'f', 6, 64),
			strconv.FormatFloat(trace.Max[i], 'f', 6, 64),
			strconv.FormatFloat(trace.Center[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}
