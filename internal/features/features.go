// internal/features/features.go
package features

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"abfeat/internal/extproc"
	"abfeat/internal/output"
	"abfeat/internal/tooldef"
)

// ChargeAsymKey names the charge-asymmetry scalar merged into every feature
// map.
const ChargeAsymKey = "charge_asym"

// Calculator computes the named molecular descriptors of an annotated
// structure file. Failures propagate.
type Calculator interface {
	Compute(ctx context.Context, annotatedPath string) (output.FeatureMap, error)
}

// ToolCalculator shells out to the patch-feature tool (flat JSON map on
// stdout) and the charge-asymmetry tool (single scalar on stdout), merging
// both into one mapping.
type ToolCalculator struct {
	Patches    tooldef.Tool
	ChargeAsym tooldef.Tool
	Env        []string // feature-tool environment from the config snapshot
}

func (c ToolCalculator) Compute(ctx context.Context, annotatedPath string) (output.FeatureMap, error) {
	res, err := c.run(ctx, c.Patches, annotatedPath)
	if err != nil {
		return nil, fmt.Errorf("patch features for %s: %w", annotatedPath, err)
	}
	var m output.FeatureMap
	if err := json.Unmarshal([]byte(res.Stdout), &m); err != nil {
		return nil, fmt.Errorf("patch features for %s: %w", annotatedPath, err)
	}
	if m == nil {
		return nil, fmt.Errorf("patch features for %s: tool produced no feature map", annotatedPath)
	}

	res, err = c.run(ctx, c.ChargeAsym, annotatedPath)
	if err != nil {
		return nil, fmt.Errorf("charge asymmetry for %s: %w", annotatedPath, err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(res.Stdout), 64)
	if err != nil {
		return nil, fmt.Errorf("charge asymmetry for %s: %w", annotatedPath, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("charge asymmetry for %s: non-finite value %q", annotatedPath, strings.TrimSpace(res.Stdout))
	}
	m[ChargeAsymKey] = v
	return m, nil
}

func (c ToolCalculator) run(ctx context.Context, tool tooldef.Tool, path string) (extproc.Result, error) {
	argv, err := tool.Argv(tooldef.Params{Input: path})
	if err != nil {
		return extproc.Result{}, err
	}
	res, err := extproc.Run(ctx, argv, c.Env)
	if err != nil {
		return res, err
	}
	if res.ExitCode != 0 {
		return res, fmt.Errorf("exit %d: %s", res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	return res, nil
}
