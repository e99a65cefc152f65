package storage

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/heatsim/internal/material"
	"github.com/san-kum/heatsim/internal/sim"
	"github.com/san-kum/heatsim/internal/solver"
)

func testRun() (solver.Params, *sim.Result) {
	p := solver.Params{
		Material:        material.Iron,
		Length:          1.0,
		Tmax:            16.0,
		InitialTemp:     13.0,
		SourceAmplitude: 80.0,
		GridPoints:      3,
	}
	result := &sim.Result{
		Times:      []float64{0.0, 0.016, 0.032},
		MinTrace:   []float64{286.15, 286.15, 286.15},
		MaxTrace:   []float64{286.15, 287.0, 288.2},
		Center:     []float64{286.15, 286.5, 286.9},
		FinalField: []float64{286.15, 288.2, 286.15},
		Steps:      2,
		Metrics:    map[string]float64{"max_temperature": 288.2},
	}
	return p, result
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	p, result := testRun()
	runID, err := st.Save(sim.Bar1D, p, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}
	if !strings.HasPrefix(runID, "bar_iron_") {
		t.Errorf("unexpected run id format: %s", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Material != "iron" || meta.Kind != "bar" {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Steps != 2 {
		t.Errorf("expected 2 steps, got %d", meta.Steps)
	}
	if meta.Metrics["max_temperature"] != 288.2 {
		t.Errorf("metrics not round-tripped: %v", meta.Metrics)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty store, got %d runs", len(runs))
	}

	p, result := testRun()
	if _, err := st.Save(sim.Bar1D, p, result); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New("/nonexistent/heatsim-test-store")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list of missing dir must not fail: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadTrace(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	p, result := testRun()
	runID, err := st.Save(sim.Bar1D, p, result)
	if err != nil {
		t.Fatal(err)
	}

	trace, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}
	if len(trace.Times) != 3 {
		t.Fatalf("expected 3 trace points, got %d", len(trace.Times))
	}
	if trace.Max[2] != 288.2 {
		t.Errorf("expected max 288.2, got %f", trace.Max[2])
	}
}

func TestLoadFieldBar(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	p, result := testRun()
	runID, err := st.Save(sim.Bar1D, p, result)
	if err != nil {
		t.Fatal(err)
	}

	rows, err := st.LoadField(runID)
	if err != nil {
		t.Fatalf("load field failed: %v", err)
	}
	if len(rows) != 1 || len(rows[0]) != 3 {
		t.Fatalf("expected one row of 3, got %v", rows)
	}
}

func TestLoadFieldPlateRows(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	p, result := testRun()
	result.FinalField = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	runID, err := st.Save(sim.Plate2D, p, result)
	if err != nil {
		t.Fatal(err)
	}

	rows, err := st.LoadField(runID)
	if err != nil {
		t.Fatalf("load field failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if len(row) != 3 {
			t.Fatalf("expected 3 columns, got %d", len(row))
		}
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	p, result := testRun()
	runID, err := st.Save(sim.Bar1D, p, result)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(&buf, runID); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if data.ID != runID {
		t.Errorf("expected id %s, got %s", runID, data.ID)
	}
	if len(data.Times) != 3 || len(data.Field) != 1 {
		t.Errorf("export incomplete: %d times, %d field rows", len(data.Times), len(data.Field))
	}
}

func TestExportCSV(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	p, result := testRun()
	runID, err := st.Save(sim.Bar1D, p, result)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := st.ExportCSV(&buf, runID); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "time,t_min,t_max,t_center" {
		t.Errorf("unexpected header: %s", lines[0])
	}
}

func TestExportMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(&buf, "no_such_run"); err == nil {
		t.Error("expected error for missing run")
	}
}
