// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"pii-redactor/internal/observability"
	"pii-redactor/internal/redactors"
)

// maxDefaultWorkers caps the worker count derived from the CPU count
const maxDefaultWorkers = 8

// ParallelProcessor redacts a batch of files on a worker pool
type ParallelProcessor struct {
	workers  int
	observer *observability.StandardObserver
}

// ProcessingStats tracks parallel processing statistics
type ProcessingStats struct {
	TotalFiles      int            `json:"total_files"`
	ProcessedFiles  int            `json:"processed_files"`
	FailedFiles     int            `json:"failed_files"`
	TotalRedactions int            `json:"total_redactions"`
	LabelCounts     map[string]int `json:"label_counts"`
	TotalDuration   time.Duration  `json:"total_duration_ms"`
	WorkerCount     int            `json:"worker_count"`
	AvgFileTime     time.Duration  `json:"avg_file_time_ms"`
}

// DefaultWorkers returns the CPU count, capped
func DefaultWorkers() int {
	return min(runtime.NumCPU(), maxDefaultWorkers)
}

// NewParallelProcessor creates a processor running workers goroutines.
// A non-positive count selects DefaultWorkers.
func NewParallelProcessor(workers int, observer *observability.StandardObserver) *ParallelProcessor {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	return &ParallelProcessor{
		workers:  workers,
		observer: observer,
	}
}

// ProgressCallback is called when a file is completed
type ProgressCallback func(completed, total int, result *Result)

// ProcessFiles redacts every file in filePaths. Per-file failures are
// reported in the returned results, not as an error; the error is only set
// when ctx is cancelled before every file was processed.
func (pp *ParallelProcessor) ProcessFiles(ctx context.Context, filePaths []string, manager *redactors.RedactionManager) ([]*Result, *ProcessingStats, error) {
	return pp.ProcessFilesWithProgress(ctx, filePaths, manager, nil)
}

// ProcessFilesWithProgress processes multiple files in parallel with progress callback
func (pp *ParallelProcessor) ProcessFilesWithProgress(ctx context.Context, filePaths []string, manager *redactors.RedactionManager, progressCallback ProgressCallback) ([]*Result, *ProcessingStats, error) {
	jobs := make([]*Job, len(filePaths))
	for i, filePath := range filePaths {
		jobs[i] = &Job{
			FilePath:         filePath,
			JobID:            fmt.Sprintf("job_%d", i),
			RedactionManager: manager,
		}
	}
	return pp.ProcessJobs(ctx, jobs, progressCallback)
}

// ProcessJobs runs prepared jobs, e.g. with explicit output paths
func (pp *ParallelProcessor) ProcessJobs(ctx context.Context, jobs []*Job, progressCallback ProgressCallback) ([]*Result, *ProcessingStats, error) {
	start := time.Now()

	var finishTiming func(bool, map[string]interface{})
	if pp.observer != nil {
		finishTiming = pp.observer.StartTiming("parallel_processor", "process_files", "batch")
	}

	pool := NewWorkerPool(ctx, pp.workers, pp.observer)
	pool.Start()

	// Submit jobs in a separate goroutine to prevent deadlock
	go func() {
		defer pool.Close()
		for _, job := range jobs {
			if !pool.Submit(job) {
				return
			}
		}
	}()
	go pool.Stop()

	stats := &ProcessingStats{
		TotalFiles:  len(jobs),
		LabelCounts: make(map[string]int),
		WorkerCount: pp.workers,
	}
	results := make([]*Result, 0, len(jobs))
	totalDuration := time.Duration(0)

	for result := range pool.Results() {
		results = append(results, result)
		totalDuration += result.Duration

		if result.Error != nil {
			stats.FailedFiles++
			if pp.observer != nil {
				pp.observer.LogOperation(observability.StandardObservabilityData{
					Component: "parallel_processor",
					Operation: "file_processing",
					FilePath:  result.FilePath,
					Success:   false,
					Error:     result.Error.Error(),
				})
			}
		} else {
			stats.ProcessedFiles++
			stats.TotalRedactions += result.RedactionResult.TotalRedactions()
			if result.RedactionResult != nil {
				for label, n := range result.RedactionResult.LabelCounts {
					stats.LabelCounts[label] += n
				}
			}
		}

		if progressCallback != nil {
			progressCallback(len(results), len(jobs), result)
		}
	}

	stats.TotalDuration = time.Since(start)
	stats.AvgFileTime = totalDuration / time.Duration(max(len(results), 1))

	var err error
	if len(results) < len(jobs) {
		err = fmt.Errorf("batch interrupted after %d of %d files: %w", len(results), len(jobs), context.Cause(ctx))
	}

	if finishTiming != nil {
		finishTiming(err == nil, map[string]interface{}{
			"total_files":      stats.TotalFiles,
			"processed_files":  stats.ProcessedFiles,
			"failed_files":     stats.FailedFiles,
			"total_redactions": stats.TotalRedactions,
			"worker_count":     pp.workers,
			"duration_ms":      stats.TotalDuration.Milliseconds(),
		})
	}

	return results, stats, err
}
