package batch_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shpitdev/csv-row-select/internal/batch"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("parses jobs", func(t *testing.T) {
		m, err := batch.Load(writeManifest(t, `
jobs:
  - kind: shortest
    input: data/all.csv
  - kind: PAIRS
    input: data/all.csv
    output: out/custom.csv
`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(m.Jobs) != 2 {
			t.Fatalf("expected 2 jobs, got %#v", m.Jobs)
		}
		if m.Jobs[0].Kind != batch.KindShortest || m.Jobs[0].Input != "data/all.csv" {
			t.Fatalf("unexpected job 0: %#v", m.Jobs[0])
		}
		if m.Jobs[1].Kind != batch.KindPairs || m.Jobs[1].Output != "out/custom.csv" {
			t.Fatalf("unexpected job 1: %#v", m.Jobs[1])
		}
	})

	t.Run("unknown kind errors", func(t *testing.T) {
		_, err := batch.Load(writeManifest(t, "jobs:\n  - kind: longest\n    input: x.csv\n"))
		if err == nil || !strings.Contains(err.Error(), "unknown job kind") {
			t.Fatalf("expected kind error, got %v", err)
		}
	})

	t.Run("missing input errors", func(t *testing.T) {
		_, err := batch.Load(writeManifest(t, "jobs:\n  - kind: pairs\n"))
		if err == nil || !strings.Contains(err.Error(), "input is required") {
			t.Fatalf("expected input error, got %v", err)
		}
	})

	t.Run("no jobs errors", func(t *testing.T) {
		_, err := batch.Load(writeManifest(t, "jobs: []\n"))
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := batch.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestJobOutputPath(t *testing.T) {
	t.Run("explicit output wins", func(t *testing.T) {
		j := batch.Job{Kind: batch.KindShortest, Input: "a/all.csv", Output: "b/out.csv"}
		if got := j.OutputPath(); got != "b/out.csv" {
			t.Fatalf("unexpected output path: %q", got)
		}
	})

	t.Run("derives short.csv next to input", func(t *testing.T) {
		j := batch.Job{Kind: batch.KindShortest, Input: filepath.Join("a", "all.csv")}
		if got := j.OutputPath(); got != filepath.Join("a", "short.csv") {
			t.Fatalf("unexpected output path: %q", got)
		}
	})

	t.Run("derives pairs.csv next to input", func(t *testing.T) {
		j := batch.Job{Kind: batch.KindPairs, Input: filepath.Join("a", "all.csv")}
		if got := j.OutputPath(); got != filepath.Join("a", "pairs.csv") {
			t.Fatalf("unexpected output path: %q", got)
		}
	})
}
