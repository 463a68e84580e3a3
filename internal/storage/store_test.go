package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/turingmul/internal/runner"
	"github.com/san-kum/turingmul/internal/turing"
)

func runTraced(t *testing.T, a, b int) *runner.Result {
	t.Helper()
	m, err := turing.New(a, b)
	if err != nil {
		t.Fatal(err)
	}
	result, err := runner.New().Run(context.Background(), m, runner.Config{Trace: true})
	if err != nil {
		t.Fatal(err)
	}
	result.Metrics["head_travel"] = 26
	return result
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(runTraced(t, 1, 1))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "mul_1x1_") {
		t.Errorf("unexpected run id %q", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Product != 1 || meta.Steps != 26 {
		t.Errorf("product=%d steps=%d", meta.Product, meta.Steps)
	}
	if meta.Metrics["head_travel"] != 26 {
		t.Errorf("metrics not saved: %v", meta.Metrics)
	}

	rows, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}
	if len(rows) != 27 {
		t.Fatalf("expected 27 rows, got %d", len(rows))
	}
	if rows[0].From != "" || rows[0].Next != "init" || rows[0].Marks != 2 {
		t.Errorf("unexpected first row %+v", rows[0])
	}
	first := rows[1]
	if first.From != "init" || first.Read != "1" || first.Move != "R" || first.Head != 1 {
		t.Errorf("unexpected step 1 row %+v", first)
	}
	if last := rows[26]; last.Next != "done" || last.Marks != 3 {
		t.Errorf("unexpected last row %+v", last)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	first, _ := st.Save(runTraced(t, 1, 1))
	second, _ := st.Save(runTraced(t, 2, 1))

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != first || runs[1].ID != second {
		t.Errorf("runs not ordered by time: %s, %s", runs[0].ID, runs[1].ID)
	}
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Errorf("List() = %v, %v", runs, err)
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(runTraced(t, 0, 2))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"metadata.json", "trace.csv"} {
		if _, err := os.Stat(filepath.Join(tmpDir, runID, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestExport(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	runID, err := st.Save(runTraced(t, 2, 2))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(&buf, runID); err != nil {
		t.Fatalf("export json failed: %v", err)
	}
	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.ID != runID || data.Product != 4 || len(data.Trace) != data.Steps+1 {
		t.Errorf("unexpected export id=%s product=%d rows=%d steps=%d", data.ID, data.Product, len(data.Trace), data.Steps)
	}

	buf.Reset()
	if err := st.ExportCSV(&buf, runID); err != nil {
		t.Fatalf("export csv failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "step,from,read,write,move,next,head,marks" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if len(lines) != data.Steps+2 {
		t.Errorf("expected %d lines, got %d", data.Steps+2, len(lines))
	}
}

func TestLoad_Missing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("missing"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, err := st.LoadTrace("missing"); err == nil {
		t.Error("expected error for missing trace")
	}
}
