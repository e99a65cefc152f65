package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/heatsim/internal/sim"
	"github.com/san-kum/heatsim/internal/solver"
)

// Store is a filesystem run archive: one directory per completed run
// holding metadata.json, trace.csv, and field.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID              string             `json:"id"`
	Kind            string             `json:"kind"`
	Material        string             `json:"material"`
	Timestamp       time.Time          `json:"timestamp"`
	Length          float64            `json:"length"`
	Tmax            float64            `json:"tmax"`
	InitialTemp     float64            `json:"initial_temp"`
	SourceAmplitude float64            `json:"source_amplitude"`
	GridPoints      int                `json:"grid_points"`
	SourceScale     float64            `json:"source_scale"`
	Steps           int                `json:"steps"`
	Metrics         map[string]float64 `json:"metrics"`
}

func (s *Store) Save(kind sim.Kind, p solver.Params, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%s_%d", kind, p.Material.Name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:              runID,
		Kind:            kind.String(),
		Material:        p.Material.Name,
		Timestamp:       time.Now(),
		Length:          p.Length,
		Tmax:            p.Tmax,
		InitialTemp:     p.InitialTemp,
		SourceAmplitude: p.SourceAmplitude,
		GridPoints:      p.GridPoints,
		SourceScale:     p.SourceScale,
		Steps:           result.Steps,
		Metrics:         result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writeTrace(runDir, result); err != nil {
		return "", err
	}
	if err := s.writeField(runDir, kind, p.GridPoints, result.FinalField); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeTrace(runDir string, result *sim.Result) error {
	file, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"time", "t_min", "t_max", "t_center"}); err != nil {
		return err
	}
	for i := range result.Times {
		row := []string{
			strconv.FormatFloat(result.Times[i], 'f', 6, 64),
			strconv.FormatFloat(result.MinTrace[i], 'f', 6, 64),
			strconv.FormatFloat(result.MaxTrace[i], 'f', 6, 64),
			strconv.FormatFloat(result.Center[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// writeField stores the final field, one CSV row per grid row. A bar
// field is a single row.
func (s *Store) writeField(runDir string, kind sim.Kind, n int, field []float64) error {
	file, err := os.Create(filepath.Join(runDir, "field.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	rowLen := len(field)
	if kind == sim.Plate2D && n > 0 {
		rowLen = n
	}

	for start := 0; start < len(field); start += rowLen {
		end := start + rowLen
		if end > len(field) {
			end = len(field)
		}
		row := make([]string, 0, rowLen)
		for _, v := range field[start:end] {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Trace holds the per-step extracts of a stored run.
type Trace struct {
	Times  []float64
	Min    []float64
	Max    []float64
	Center []float64
}

func (s *Store) LoadTrace(runID string) (*Trace, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	trace := &Trace{}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 4 {
			continue
		}
		vals := make([]float64, 4)
		ok := true
		for j := 0; j < 4; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		trace.Times = append(trace.Times, vals[0])
		trace.Min = append(trace.Min, vals[1])
		trace.Max = append(trace.Max, vals[2])
		trace.Center = append(trace.Center, vals[3])
	}
	return trace, nil
}

// LoadField returns the stored final field as rows.
func (s *Store) LoadField(runID string) ([][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "field.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, 0, len(records))
	for _, record := range records {
		row := make([]float64, 0, len(record))
		for _, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				continue
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
