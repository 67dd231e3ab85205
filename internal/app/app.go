// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"abfeat/internal/annotate"
	"abfeat/internal/cli"
	"abfeat/internal/config"
	"abfeat/internal/features"
	"abfeat/internal/inputs"
	"abfeat/internal/logx"
	"abfeat/internal/output"
	"abfeat/internal/pipeline"
	"abfeat/internal/repair"
	"abfeat/internal/task"
	"abfeat/internal/tooldef"
	"abfeat/internal/version"
)

// RunContext is the orchestrator: resolve inputs, load the configuration
// snapshot and tool definitions once, fan one task per file out to the worker
// pool, collect, serialize, report elapsed time. File-level failures degrade
// to partial results; only collection/serialization errors are fatal.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("abfeat")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "abfeat version %s\n", version.Version)
		return 0
	}

	files, err := inputs.Resolve(opts.Input)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	cfg, err := config.Load(opts.Config, opts.Config == config.DefaultPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	tools, err := tooldef.Load(opts.Tools)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	errLog, closeErrLog, err := logx.OpenFile(opts.ErrorLog)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = closeErrLog() }()
	annLog, closeAnnLog, err := logx.OpenFile(opts.AnnotatorLog)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = closeAnnLog() }()

	runID := uuid.NewString()
	runner := task.Runner{
		Repair: repair.ToolRepairer{Tool: tools.Repair},
		Annotate: annotate.ToolAnnotator{
			Tool:    tools.Annotate,
			Log:     annLog,
			Errors:  errLog,
			RunID:   runID,
			UseTemp: opts.TempOutput,
			Verbose: opts.Verbose,
		},
		Features: features.ToolCalculator{
			Patches:    tools.Patches,
			ChargeAsym: tools.ChargeAsym,
			Env:        cfg.Env(),
		},
		Errors:  errLog,
		Repeats: opts.Repeats,
		PH:      opts.PH,
	}

	start := time.Now()
	results, err := pipeline.Collect(parent,
		pipeline.Config{Threads: opts.Threads, Incremental: opts.Wait},
		files, runner.ProcessFile)
	if err == nil {
		err = output.WriteFile(opts.Output, results)
	}
	if err != nil {
		errLog.Criticalf("ERROR: %v", err)
		_, _ = fmt.Fprintf(outw, "ERROR: %v\n", err)
		return 1
	}

	_, _ = fmt.Fprintf(outw, "Processing complete in %.2f seconds. Results saved to %s\n",
		time.Since(start).Seconds(), opts.Output)
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
