// internal/task/task.go
package task

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"abfeat/internal/annotate"
	"abfeat/internal/features"
	"abfeat/internal/logx"
	"abfeat/internal/output"
	"abfeat/internal/repair"
)

// errAnnotation marks a repeat abandoned because the annotator reported
// failure; it is logged and skipped, never surfaced.
var errAnnotation = errors.New("annotation failed")

// Runner is the per-file unit of work: for each of Repeats iterations it runs
// repair → annotate → featurize inside a fresh scratch directory, removed
// unconditionally afterward. One repeat's failure never aborts the rest.
type Runner struct {
	Repair   repair.Repairer
	Annotate annotate.Annotator
	Features features.Calculator
	Errors   *logx.Logger

	Repeats     int
	PH          float64
	ScratchRoot string // "" = system temp dir
}

// ProcessFile returns pdbPath paired with the feature maps of its successful
// repeats (between 0 and Repeats entries).
func (r Runner) ProcessFile(ctx context.Context, pdbPath string) output.FileResult {
	repeats := r.Repeats
	if repeats < 1 {
		repeats = 1
	}
	feats := make([]output.FeatureMap, 0, repeats)
	for i := 0; i < repeats; i++ {
		m, err := r.runOnce(ctx, pdbPath)
		switch {
		case errors.Is(err, errAnnotation):
			r.Errors.Errorf("skipping feature calculation for %s: annotator failed", pdbPath)
		case err != nil:
			r.Errors.Errorf("error processing %s (iteration %d): %v", pdbPath, i+1, err)
		default:
			feats = append(feats, m)
		}
	}
	return output.FileResult{Path: pdbPath, Features: feats}
}

func (r Runner) runOnce(ctx context.Context, pdbPath string) (output.FeatureMap, error) {
	root := r.ScratchRoot
	if root == "" {
		root = os.TempDir()
	}
	scratch := filepath.Join(root, "abfeat-"+uuid.NewString())
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		return nil, err
	}
	defer func() { _ = os.RemoveAll(scratch) }()

	fixed, err := r.Repair.AddHydrogens(ctx, pdbPath, r.PH, scratch)
	if err != nil {
		return nil, err
	}
	annotated, ok := r.Annotate.Annotate(ctx, fixed)
	if !ok {
		return nil, errAnnotation
	}
	// The annotated copy may live outside scratch in temp-output mode.
	defer func() { _ = os.Remove(annotated) }()

	return r.Features.Compute(ctx, annotated)
}
