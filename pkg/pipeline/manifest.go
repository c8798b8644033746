package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/surveyplot/pkg/buildinfo"
)

// Manifest describes one report run.
type Manifest struct {
	RunID     string          `json:"run_id"`
	Version   string          `json:"version"`
	Generated time.Time       `json:"generated"`
	Data      string          `json:"data,omitempty"`
	Rows      int             `json:"rows"`
	Formats   []string        `json:"formats"`
	Charts    []ManifestChart `json:"charts"`
}

// ManifestChart is the manifest entry of one chart.
type ManifestChart struct {
	Name      string       `json:"name"`
	Kind      string       `json:"kind"`
	Questions []string     `json:"questions"`
	Files     []string     `json:"files"`
	Summary   []RowSummary `json:"summary"`
}

func newManifest(runID, data string, rows int, formats []string, charts []ChartResult, dir string) Manifest {
	m := Manifest{
		RunID:     runID,
		Version:   buildinfo.Version,
		Generated: time.Now().UTC(),
		Data:      data,
		Rows:      rows,
		Formats:   formats,
		Charts:    make([]ManifestChart, len(charts)),
	}
	for i, c := range charts {
		files := make([]string, len(c.Files))
		for j, f := range c.Files {
			if rel, err := filepath.Rel(dir, f); err == nil {
				f = rel
			}
			files[j] = f
		}
		m.Charts[i] = ManifestChart{
			Name:      c.Name,
			Kind:      c.Kind,
			Questions: c.Questions,
			Files:     files,
			Summary:   c.Summary,
		}
	}
	return m
}

// ReadManifest loads a manifest written by a previous run.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
