// internal/extproc/extproc.go
package extproc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Result carries the captured streams and exit status of one invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes argv[0] with argv[1:], capturing both standard streams. A
// non-zero exit is reported through Result, not as an error; the error return
// is reserved for spawn failures and context cancellation. env entries are
// appended to the inherited environment.
func Run(ctx context.Context, argv []string, env []string) (Result, error) {
	if len(argv) == 0 || argv[0] == "" {
		return Result{}, errors.New("empty command line")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	err := cmd.Run()
	res := Result{Stdout: out.String(), Stderr: errBuf.String()}
	if err != nil && ctx.Err() != nil {
		return res, ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("run %s: %w", argv[0], err)
	}
	return res, nil
}
