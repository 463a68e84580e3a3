package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/turingmul/internal/runner"
)

const (
	metadataFile = "metadata.json"
	traceFile    = "trace.csv"
)

var traceHeader = []string{"step", "from", "read", "write", "move", "next", "head", "marks"}

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
	ID           string             `json:"id"`
	Multiplier   int                `json:"multiplier"`
	Multiplicand int                `json:"multiplicand"`
	Product      int                `json:"product"`
	Steps        int                `json:"steps"`
	Timestamp    time.Time          `json:"timestamp"`
	ElapsedMs    float64            `json:"elapsed_ms"`
	Metrics      map[string]float64 `json:"metrics"`
}

// TraceRow is one line of trace.csv. Row 0 is the initial configuration and
// has empty rule columns.
type TraceRow struct {
	Step  int    `json:"step"`
	From  string `json:"from,omitempty"`
	Read  string `json:"read,omitempty"`
	Write string `json:"write,omitempty"`
	Move  string `json:"move,omitempty"`
	Next  string `json:"next"`
	Head  int    `json:"head"`
	Marks int    `json:"marks"`
}

// Save writes the run's metadata and, when the result carries frames, its
// trace. It returns the new run id.
func (s *Store) Save(result *runner.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("mul_%dx%d_%d", result.Multiplier, result.Multiplicand, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Multiplier:   result.Multiplier,
		Multiplicand: result.Multiplicand,
		Product:      result.Product,
		Steps:        result.Steps,
		Timestamp:    now,
		ElapsedMs:    float64(result.Elapsed.Microseconds()) / 1000,
		Metrics:      result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, traceFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writeTrace(csvFile, result.Frames); err != nil {
		return "", err
	}
	return runID, nil
}

func writeTrace(w io.Writer, frames []runner.Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(traceHeader); err != nil {
		return err
	}
	for _, f := range frames {
		row := []string{strconv.Itoa(f.Step), "", "", "", "", f.State.String(), strconv.Itoa(f.Head), strconv.Itoa(f.Marks)}
		if f.Step > 0 {
			row[1] = f.Rule.State.String()
			row[2] = f.Rule.Read.String()
			row[3] = f.Rule.Write.String()
			row[4] = f.Rule.Move.String()
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// List returns every readable run, oldest first.
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

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadTrace(runID string) ([]TraceRow, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, traceFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(traceHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []TraceRow{}, nil
	}

	rows := make([]TraceRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		step, err1 := strconv.Atoi(rec[0])
		head, err2 := strconv.Atoi(rec[6])
		marks, err3 := strconv.Atoi(rec[7])
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("%s line %d: malformed row %v", traceFile, i+2, rec)
		}
		rows = append(rows, TraceRow{
			Step:  step,
			From:  rec[1],
			Read:  rec[2],
			Write: rec[3],
			Move:  rec[4],
			Next:  rec[5],
			Head:  head,
			Marks: marks,
		})
	}
	return rows, nil
}
