// internal/pipeline/pipeline_test.go
package pipeline

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abfeat/internal/output"
)

func paths(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("file%02d.pdb", i)
	}
	return out
}

func TestCollectSubmissionOrder(t *testing.T) {
	files := paths(8)
	// later submissions finish first
	run := func(ctx context.Context, path string) output.FileResult {
		if path == "file00.pdb" {
			time.Sleep(30 * time.Millisecond)
		}
		return output.FileResult{Path: path}
	}

	res, err := Collect(context.Background(), Config{Threads: 4}, files, run)
	require.NoError(t, err)
	require.Len(t, res, len(files))
	for i, r := range res {
		assert.Equal(t, files[i], r.Path, "default mode preserves submission order")
	}
}

func TestCollectIncremental(t *testing.T) {
	files := paths(6)
	run := func(ctx context.Context, path string) output.FileResult {
		return output.FileResult{Path: path}
	}

	res, err := Collect(context.Background(), Config{Threads: 3, Incremental: true}, files, run)
	require.NoError(t, err)
	require.Len(t, res, len(files))

	got := make([]string, len(res))
	for i, r := range res {
		got[i] = r.Path
	}
	assert.ElementsMatch(t, files, got, "incremental mode reorders but loses nothing")
}

func TestCollectSingleThreadRunsEverything(t *testing.T) {
	var calls atomic.Int32
	run := func(ctx context.Context, path string) output.FileResult {
		calls.Add(1)
		return output.FileResult{Path: path}
	}
	res, err := Collect(context.Background(), Config{Threads: 1}, paths(5), run)
	require.NoError(t, err)
	assert.Len(t, res, 5)
	assert.Equal(t, int32(5), calls.Load())
}

func TestCollectNoFiles(t *testing.T) {
	run := func(ctx context.Context, path string) output.FileResult {
		t.Fatal("no task expected")
		return output.FileResult{}
	}
	res, err := Collect(context.Background(), Config{}, nil, run)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestCollectCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	run := func(ctx context.Context, path string) output.FileResult {
		cancel()
		<-ctx.Done()
		return output.FileResult{Path: path}
	}
	_, err := Collect(ctx, Config{Threads: 1}, paths(100), run)
	assert.ErrorIs(t, err, context.Canceled)
}
