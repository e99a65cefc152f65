package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/heatsim/internal/storage"
)

func testTrace() *storage.Trace {
	return &storage.Trace{
		Times:  []float64{0, 0.5, 1.0},
		Min:    []float64{286.15, 286.15, 286.15},
		Max:    []float64{286.15, 290.0, 295.5},
		Center: []float64{286.15, 287.0, 288.0},
	}
}

func TestProfilePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.png")
	rows := [][]float64{{286.15, 290.0, 288.0, 286.15}}

	if err := ProfilePNG(path, "iron bar", 1.0, rows); err != nil {
		t.Fatalf("profile plot failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("empty plot file")
	}
}

func TestProfilePNG_EmptyField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.png")
	if err := ProfilePNG(path, "empty", 1.0, nil); err == nil {
		t.Error("expected error for empty field")
	}
}

func TestTracePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.png")

	if err := TracePNG(path, "iron bar", testTrace()); err != nil {
		t.Fatalf("trace plot failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestTraceSVG(t *testing.T) {
	svg := TraceSVG(testTrace(), 400, 200)

	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("missing XML prolog")
	}
	if !strings.Contains(svg, "<polyline") {
		t.Error("missing polyline")
	}
	if strings.Count(svg, ",") < 3 {
		t.Error("expected one point per trace sample")
	}
}

func TestTraceSVG_Degenerate(t *testing.T) {
	if TraceSVG(nil, 400, 200) != "" {
		t.Error("nil trace renders empty")
	}
	if TraceSVG(&storage.Trace{Times: []float64{0}, Max: []float64{1}}, 400, 200) != "" {
		t.Error("single-point trace renders empty")
	}
}
