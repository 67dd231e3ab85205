// internal/repair/repair.go
package repair

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"abfeat/internal/extproc"
	"abfeat/internal/inputs"
	"abfeat/internal/tooldef"
)

// Repairer adds missing hydrogens to a structure file at a given pH and
// returns the path of the repaired copy inside destDir. Original atom and
// residue identifiers are preserved by the underlying tool. Failures
// propagate; the caller decides whether to retry or skip.
type Repairer interface {
	AddHydrogens(ctx context.Context, pdbPath string, pH float64, destDir string) (string, error)
}

// ToolRepairer shells out to the configured repair executable.
type ToolRepairer struct {
	Tool tooldef.Tool
}

func (r ToolRepairer) AddHydrogens(ctx context.Context, pdbPath string, pH float64, destDir string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(pdbPath), inputs.Ext)
	out := filepath.Join(destDir, base+"_fixed"+inputs.Ext)

	argv, err := r.Tool.Argv(tooldef.Params{Input: pdbPath, Output: out, PH: pH})
	if err != nil {
		return "", fmt.Errorf("repair %s: %w", pdbPath, err)
	}
	res, err := extproc.Run(ctx, argv, nil)
	if err != nil {
		return "", fmt.Errorf("repair %s: %w", pdbPath, err)
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("repair %s: exit %d: %s", pdbPath, res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	if _, err := os.Stat(out); err != nil {
		return "", fmt.Errorf("repair %s: tool wrote no output: %w", pdbPath, err)
	}
	return out, nil
}
