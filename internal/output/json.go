// internal/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// FeatureMap holds one repeat's named numeric descriptors.
type FeatureMap map[string]float64

// FileResult pairs an input path with its per-repeat feature maps. Failed
// repeats contribute no entry, so len(Features) ranges from 0 to the repeat
// count.
type FileResult struct {
	Path     string
	Features []FeatureMap
}

// MarshalJSON emits the single-key object {"<path>": [features...]}. A file
// whose every repeat failed serializes as an empty array, never null.
func (r FileResult) MarshalJSON() ([]byte, error) {
	feats := r.Features
	if feats == nil {
		feats = []FeatureMap{}
	}
	return json.Marshal(map[string][]FeatureMap{r.Path: feats})
}

// WriteJSON writes results as one indented JSON array.
func WriteJSON(w io.Writer, results []FileResult) error {
	if results == nil {
		results = []FileResult{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(results)
}

// WriteFile serializes results to path, truncating any previous run.
func WriteFile(path string, results []FileResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(f, results); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
