// internal/annotate/annotate.go
package annotate

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"abfeat/internal/extproc"
	"abfeat/internal/inputs"
	"abfeat/internal/logx"
	"abfeat/internal/tooldef"
)

// Annotator renumbers antibody chains in a repaired structure file. ok
// reports whether outPath holds a usable annotated copy; failure is an
// absent-result signal, never an error, and is judged by exit code alone.
type Annotator interface {
	Annotate(ctx context.Context, fixedPath string) (outPath string, ok bool)
}

// ToolAnnotator invokes the external numbering executable, appending one
// record per invocation to the annotator log and reporting stderr at error
// severity.
type ToolAnnotator struct {
	Tool    tooldef.Tool
	Log     *logx.Logger // free-text invocation log
	Errors  *logx.Logger // severity log
	RunID   string       // stamped into every record
	UseTemp bool         // allocate output in the system temp dir instead of a sibling name
	Verbose bool         // copy tool stdout into the invocation log
}

func (a ToolAnnotator) Annotate(ctx context.Context, fixedPath string) (string, bool) {
	out, err := a.outputPath(fixedPath)
	if err != nil {
		a.Errors.Errorf("failed to run annotator on %s: %v", fixedPath, err)
		return "", false
	}

	argv, err := a.Tool.Argv(tooldef.Params{Input: fixedPath, Output: out})
	if err != nil {
		a.Errors.Errorf("failed to run annotator on %s: %v", fixedPath, err)
		_ = os.Remove(out)
		return "", false
	}
	res, err := extproc.Run(ctx, argv, nil)

	var rec strings.Builder
	fmt.Fprintf(&rec, "[%s %s] processing %s:\n",
		time.Now().Format("2006-01-02 15:04:05"), a.RunID, fixedPath)
	if a.Verbose && res.Stdout != "" {
		rec.WriteString(res.Stdout)
	}
	if res.Stderr != "" {
		rec.WriteString("\nErrors:\n" + res.Stderr)
		a.Errors.Errorf("annotator error for %s: %s", fixedPath, strings.TrimSpace(res.Stderr))
	}
	a.Log.Append(rec.String())

	if err != nil {
		a.Errors.Errorf("failed to run annotator on %s: %v", fixedPath, err)
		_ = os.Remove(out)
		return "", false
	}
	if res.ExitCode != 0 {
		_ = os.Remove(out)
		return "", false
	}
	return out, true
}

func (a ToolAnnotator) outputPath(fixedPath string) (string, error) {
	if !a.UseTemp {
		return strings.TrimSuffix(fixedPath, inputs.Ext) + "_anno" + inputs.Ext, nil
	}
	f, err := os.CreateTemp("", "*_anno"+inputs.Ext)
	if err != nil {
		return "", err
	}
	name := f.Name()
	_ = f.Close()
	return name, nil
}
