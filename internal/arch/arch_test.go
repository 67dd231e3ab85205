// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"abfeat/internal/pipeline": {
			"abfeat/internal/app", "abfeat/internal/cli", "abfeat/internal/task", "abfeat/cmd/",
		},
		"abfeat/internal/task": {
			"abfeat/internal/app", "abfeat/internal/cli", "abfeat/internal/pipeline", "abfeat/cmd/",
		},
		"abfeat/internal/repair": {
			"abfeat/internal/app", "abfeat/internal/cli", "abfeat/internal/task", "abfeat/cmd/",
		},
		"abfeat/internal/annotate": {
			"abfeat/internal/app", "abfeat/internal/cli", "abfeat/internal/task", "abfeat/cmd/",
		},
		"abfeat/internal/features": {
			"abfeat/internal/app", "abfeat/internal/cli", "abfeat/internal/task", "abfeat/cmd/",
		},
		"abfeat/internal/output": {
			"abfeat/internal/app", "abfeat/internal/cli", "abfeat/internal/pipeline", "abfeat/cmd/",
		},
		"abfeat/internal/tooldef": {
			"abfeat/internal/app", "abfeat/internal/repair", "abfeat/internal/annotate", "abfeat/internal/features",
		},
	}

	for {
		var p pkg
		if err := dec.Decode(&p); err != nil {
			if err == io.EOF {
				break
			}
			t.Fatalf("decode go list output: %v", err)
		}
		if p.Standard {
			continue
		}
		banned, ok := bans[p.ImportPath]
		if !ok {
			continue
		}
		for _, imp := range p.Imports {
			for _, b := range banned {
				if imp == b || (strings.HasSuffix(b, "/") && strings.HasPrefix(imp, b)) {
					t.Errorf("%s must not import %s", p.ImportPath, imp)
				}
			}
		}
	}
}
