package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one job in the output manifest.
type ManifestEntry struct {
	Kind    string   `json:"kind"`
	Name    string   `json:"name"`
	Source  string   `json:"source"`
	Outputs []string `json:"outputs,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// WriteManifest writes manifest.json listing every job and what it produced.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Kind:    r.Kind.String(),
			Name:    r.Name,
			Source:  r.Source,
			Outputs: r.Outputs,
			Error:   r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Summary counts successes and failures.
func Summary(results []Result) (ok, failed int) {
	for _, r := range results {
		if r.Success {
			ok++
		} else {
			failed++
		}
	}
	return ok, failed
}
