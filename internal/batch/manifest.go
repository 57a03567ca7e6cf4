// Package batch loads the YAML job manifest consumed by batchselect.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind names one of the two selectors.
type Kind string

const (
	KindShortest Kind = "shortest"
	KindPairs    Kind = "pairs"
)

// ParseKind normalizes a manifest kind value.
func ParseKind(raw string) (Kind, error) {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "shortest":
		return KindShortest, nil
	case "pairs":
		return KindPairs, nil
	default:
		return "", fmt.Errorf("unknown job kind %q (want %q or %q)", raw, KindShortest, KindPairs)
	}
}

// Job is one selector run over one input/output file pair.
type Job struct {
	Kind   Kind
	Input  string
	Output string
}

// OutputPath returns the job's output path, deriving the conventional
// filename next to the input when the manifest leaves output empty.
func (j Job) OutputPath() string {
	if strings.TrimSpace(j.Output) != "" {
		return j.Output
	}
	name := "short.csv"
	if j.Kind == KindPairs {
		name = "pairs.csv"
	}
	return filepath.Join(filepath.Dir(j.Input), name)
}

// Manifest is the parsed, validated job list.
type Manifest struct {
	Jobs []Job
}

type rawManifest struct {
	Jobs []rawJob `yaml:"jobs"`
}

type rawJob struct {
	Kind   string `yaml:"kind"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// Load reads and validates a manifest file.
//
// Example (YAML):
//
//	jobs:
//	  - kind: shortest
//	    input: out/examples_rewrite2_csv/all.csv
//	  - kind: pairs
//	    input: out/examples_rewrite2_csv/all.csv
//	    output: out/pairs_only.csv
func Load(path string) (Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	return parse(b)
}

func parse(b []byte) (Manifest, error) {
	var raw rawManifest
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest YAML: %w", err)
	}
	if len(raw.Jobs) == 0 {
		return Manifest{}, fmt.Errorf("manifest has no jobs")
	}

	m := Manifest{Jobs: make([]Job, 0, len(raw.Jobs))}
	for i, rj := range raw.Jobs {
		kind, err := ParseKind(rj.Kind)
		if err != nil {
			return Manifest{}, fmt.Errorf("job %d: %w", i, err)
		}
		input := strings.TrimSpace(rj.Input)
		if input == "" {
			return Manifest{}, fmt.Errorf("job %d: input is required", i)
		}
		m.Jobs = append(m.Jobs, Job{
			Kind:   kind,
			Input:  input,
			Output: strings.TrimSpace(rj.Output),
		})
	}
	return m, nil
}
