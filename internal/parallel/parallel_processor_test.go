// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-redactor/internal/redactors"
	"pii-redactor/internal/redactors/plaintext"
)

func newManager(t *testing.T) (*redactors.RedactionManager, string) {
	t.Helper()
	outDir := t.TempDir()
	om, err := redactors.NewOutputStructureManager(outDir, nil)
	require.NoError(t, err)
	rm := redactors.NewRedactionManager(om, nil)
	rm.SetFallbackRedactor(plaintext.NewPlainTextRedactor(nil))
	return rm, outDir
}

func writeInputs(t *testing.T, n int) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, n)
	for i := range paths {
		paths[i] = filepath.Join(dir, fmt.Sprintf("record_%d.txt", i))
		require.NoError(t, os.WriteFile(paths[i], []byte("SSN 123-45-6789, email jane@example.com"), 0600))
	}
	return paths
}

func TestProcessFiles(t *testing.T) {
	rm, _ := newManager(t)
	inputs := writeInputs(t, 5)

	pp := NewParallelProcessor(3, nil)
	results, stats, err := pp.ProcessFiles(context.Background(), inputs, rm)
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.Equal(t, 5, stats.TotalFiles)
	assert.Equal(t, 5, stats.ProcessedFiles)
	assert.Zero(t, stats.FailedFiles)
	assert.Equal(t, 10, stats.TotalRedactions)
	assert.Equal(t, map[string]int{"[SSN]": 5, "[EMAIL]": 5}, stats.LabelCounts)
	assert.Equal(t, 3, stats.WorkerCount)

	for _, r := range results {
		require.NoError(t, r.Error)
		assert.Equal(t, "plaintext_redactor", r.RedactorUsed)
		out, err := os.ReadFile(r.RedactedPath)
		require.NoError(t, err)
		assert.Equal(t, "SSN [SSN], email [EMAIL]", string(out))
	}
}

func TestProcessFilesIsolatesFailures(t *testing.T) {
	rm, _ := newManager(t)
	inputs := writeInputs(t, 2)
	missing := filepath.Join(t.TempDir(), "missing.txt")
	inputs = append(inputs, missing)

	var mu sync.Mutex
	var seen []string
	progress := func(completed, total int, r *Result) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 3, total)
		seen = append(seen, r.FilePath)
	}

	results, stats, err := NewParallelProcessor(2, nil).ProcessFilesWithProgress(context.Background(), inputs, rm, progress)
	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, 2, stats.ProcessedFiles)
	assert.Equal(t, 1, stats.FailedFiles)

	for _, r := range results {
		if r.FilePath == missing {
			assert.ErrorIs(t, r.Error, redactors.ErrNotFound)
		} else {
			assert.NoError(t, r.Error)
		}
	}

	sort.Strings(seen)
	want := append([]string(nil), inputs...)
	sort.Strings(want)
	assert.Equal(t, want, seen)
}

func TestProcessFilesEmpty(t *testing.T) {
	rm, _ := newManager(t)
	results, stats, err := NewParallelProcessor(0, nil).ProcessFiles(context.Background(), nil, rm)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, DefaultWorkers(), stats.WorkerCount)
}

func TestProcessFilesCancelled(t *testing.T) {
	rm, _ := newManager(t)
	inputs := writeInputs(t, 20)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, _, err := NewParallelProcessor(2, nil).ProcessFiles(ctx, inputs, rm)
	for _, r := range results {
		assert.Error(t, r.Error)
	}
	if len(results) < len(inputs) {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestWorkerPoolJobWithoutManager(t *testing.T) {
	pool := NewWorkerPool(context.Background(), 0, nil)
	assert.Equal(t, 1, pool.Workers())
	pool.Start()

	require.True(t, pool.Submit(&Job{JobID: "job_0", FilePath: "a.txt"}))
	pool.Close()
	go pool.Stop()

	var results []*Result
	for r := range pool.Results() {
		results = append(results, r)
	}
	require.Len(t, results, 1)
	assert.Equal(t, "job_0", results[0].JobID)
	assert.ErrorIs(t, results[0].Error, redactors.ErrArgument)
}

func TestProcessJobsExplicitOutput(t *testing.T) {
	rm, _ := newManager(t)
	inputs := writeInputs(t, 1)
	output := filepath.Join(t.TempDir(), "safe.txt")

	jobs := []*Job{{FilePath: inputs[0], OutputPath: output, JobID: "single", RedactionManager: rm}}
	results, stats, err := NewParallelProcessor(1, nil).ProcessJobs(context.Background(), jobs, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, output, results[0].RedactedPath)
	assert.Equal(t, 1, stats.ProcessedFiles)

	out, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "SSN [SSN], email [EMAIL]", string(out))
}
