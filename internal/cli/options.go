// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"abfeat/internal/config"
)

// Default output and log destinations.
const (
	DefaultOutput       = "molecular_features.json"
	DefaultErrorLog     = "pdb_processing.log"
	DefaultAnnotatorLog = "annotator.log"
)

// Options holds all CLI flags and the positional input path.
type Options struct {
	Input string // PDB file or directory (positional)

	// Pipeline parameters
	Repeats    int
	PH         float64
	TempOutput bool // annotator output in the system temp dir

	// Execution
	Threads int
	Wait    bool // collect results incrementally as tasks finish

	// Files
	Output       string
	Config       string
	Tools        string
	ErrorLog     string
	AnnotatorLog string

	Verbose bool // copy annotator stdout into its log
	Version bool
}

// ParseArgs registers and parses all flags, returning a validated Options.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.IntVar(&opt.Repeats, "r", 1, "feature-calculation repeats per structure [1]")
	fs.IntVar(&opt.Repeats, "repeats", 1, "feature-calculation repeats per structure [1]")
	fs.BoolVar(&opt.Wait, "w", false, "collect results incrementally as tasks complete [false]")
	fs.BoolVar(&opt.Wait, "wait", false, "collect results incrementally as tasks complete [false]")
	fs.StringVar(&opt.Output, "o", DefaultOutput, "output JSON file ["+DefaultOutput+"]")
	fs.StringVar(&opt.Output, "output", DefaultOutput, "output JSON file ["+DefaultOutput+"]")
	fs.Float64Var(&opt.PH, "pH", 7.0, "pH for adding missing hydrogens [7.0]")

	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.BoolVar(&opt.TempOutput, "temp-output", false, "write annotator output to the system temp dir [false]")
	fs.StringVar(&opt.Config, "config", config.DefaultPath, "feature-tool configuration snapshot ["+config.DefaultPath+"]")
	fs.StringVar(&opt.Tools, "tools", "", "TOML file overriding the built-in tool definitions")
	fs.StringVar(&opt.ErrorLog, "error-log", DefaultErrorLog, "processing-error log ["+DefaultErrorLog+"]")
	fs.StringVar(&opt.AnnotatorLog, "annotator-log", DefaultAnnotatorLog, "annotator invocation log ["+DefaultAnnotatorLog+"]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "record annotator stdout in its log [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := splitArgs(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	switch len(posArgs) {
	case 0:
		return opt, errors.New("input path required (PDB file or directory)")
	case 1:
		opt.Input = posArgs[0]
	default:
		return opt, fmt.Errorf("exactly one input path expected, got %d", len(posArgs))
	}
	if opt.Repeats < 1 {
		return opt, errors.New("--repeats must be ≥ 1")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Output == "" {
		return opt, errors.New("--output must not be empty")
	}
	return opt, nil
}
