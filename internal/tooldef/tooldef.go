// internal/tooldef/tooldef.go
package tooldef

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
)

//go:embed tools.toml
var builtinTOML []byte

// Tool describes one external executable: its command and templated argument
// list.
type Tool struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// Set holds the definitions of every external tool the pipeline invokes.
type Set struct {
	Repair     Tool `toml:"repair"`
	Annotate   Tool `toml:"annotate"`
	Patches    Tool `toml:"patches"`
	ChargeAsym Tool `toml:"charge_asym"`
}

// Params feeds the argument templates of one invocation.
type Params struct {
	Input  string
	Output string
	PH     float64
}

// Builtin returns the compiled-in tool set.
func Builtin() (Set, error) {
	var s Set
	if err := toml.Unmarshal(builtinTOML, &s); err != nil {
		return Set{}, fmt.Errorf("builtin tool definitions: %w", err)
	}
	return s, nil
}

// Load returns the builtin set, overlaid with the TOML file at path when path
// is non-empty, then with the ABFEAT_*_CMD environment overrides. Tables
// absent from the override file keep their builtin definition.
func Load(path string) (Set, error) {
	s, err := Builtin()
	if err != nil {
		return Set{}, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Set{}, fmt.Errorf("tool definitions: %w", err)
		}
		if err := toml.Unmarshal(data, &s); err != nil {
			return Set{}, fmt.Errorf("tool definitions %s: %w", path, err)
		}
	}
	s.applyEnv()
	return s, nil
}

func (s *Set) applyEnv() {
	override := func(t *Tool, key string) {
		if v := os.Getenv(key); v != "" {
			t.Command = v
		}
	}
	override(&s.Repair, "ABFEAT_REPAIR_CMD")
	override(&s.Annotate, "ABFEAT_ANNOTATE_CMD")
	override(&s.Patches, "ABFEAT_PATCHES_CMD")
	override(&s.ChargeAsym, "ABFEAT_CHARGE_ASYM_CMD")
}

// Argv renders the full command line for p.
func (t Tool) Argv(p Params) ([]string, error) {
	if t.Command == "" {
		return nil, fmt.Errorf("tool command not set")
	}
	argv := make([]string, 0, len(t.Args)+1)
	argv = append(argv, t.Command)
	for _, arg := range t.Args {
		tpl, err := template.New("arg").Option("missingkey=error").Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("tool %s: argument %q: %w", t.Command, arg, err)
		}
		var b strings.Builder
		if err := tpl.Execute(&b, p); err != nil {
			return nil, fmt.Errorf("tool %s: argument %q: %w", t.Command, arg, err)
		}
		argv = append(argv, b.String())
	}
	return argv, nil
}
