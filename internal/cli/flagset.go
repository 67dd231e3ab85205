// internal/cli/flagset.go
package cli

import (
	"flag"
	"fmt"

	"abfeat/internal/version"
)

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: antibody structure feature pipeline

Repairs each input PDB (missing hydrogens at --pH), renumbers antibody
chains via the external annotator, computes molecular descriptor features,
and aggregates everything into one JSON file.

Version: %s

Usage:
  %s [flags] <structure.pdb | directory>

`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}
