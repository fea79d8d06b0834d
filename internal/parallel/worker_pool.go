// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"context"
	"sync"
	"time"

	"pii-redactor/internal/observability"
	"pii-redactor/internal/redactors"
)

// defaultJobTimeout bounds a single document
const defaultJobTimeout = 5 * time.Minute

// WorkerPool redacts files concurrently. Every job runs to completion or
// failure exactly once; a failed file never stops the others.
type WorkerPool struct {
	workers    int
	jobs       chan *Job
	results    chan *Result
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	observer   *observability.StandardObserver
	jobTimeout time.Duration
}

// Job represents a file redaction task
type Job struct {
	FilePath string
	JobID    string

	// OutputPath overrides the mirrored output location when set
	OutputPath string

	RedactionManager *redactors.RedactionManager
}

// Result represents the outcome of one job
type Result struct {
	JobID    string
	FilePath string
	Error    error
	Duration time.Duration

	RedactionResult *redactors.RedactionResult
	RedactedPath    string
	RedactorUsed    string
}

// NewWorkerPool creates a worker pool bound to ctx. Cancelling ctx stops
// the workers after their current job.
func NewWorkerPool(ctx context.Context, workers int, observer *observability.StandardObserver) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(ctx)

	return &WorkerPool{
		workers:    workers,
		jobs:       make(chan *Job, workers*2),
		results:    make(chan *Result, workers*2),
		ctx:        ctx,
		cancel:     cancel,
		observer:   observer,
		jobTimeout: defaultJobTimeout,
	}
}

// Workers returns the number of worker goroutines
func (wp *WorkerPool) Workers() int {
	return wp.workers
}

// Start initializes worker goroutines
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

// Close signals that no more jobs will be submitted
func (wp *WorkerPool) Close() {
	close(wp.jobs)
}

// Stop waits for the workers to drain, then closes the results channel
func (wp *WorkerPool) Stop() {
	wp.wg.Wait()
	close(wp.results)
	wp.cancel()
}

// Submit adds a job to the queue. It reports false if the pool was
// cancelled before the job was accepted.
func (wp *WorkerPool) Submit(job *Job) bool {
	select {
	case wp.jobs <- job:
		return true
	case <-wp.ctx.Done():
		return false
	}
}

// Results returns the results channel
func (wp *WorkerPool) Results() <-chan *Result {
	return wp.results
}

// worker processes jobs from the queue
func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for job := range wp.jobs {
		result := wp.processJob(job, id)

		select {
		case wp.results <- result:
		case <-wp.ctx.Done():
			return
		}
	}
}

// processJob redacts a single file through the job's manager
func (wp *WorkerPool) processJob(job *Job, workerID int) *Result {
	start := time.Now()

	var finishTiming func(bool, map[string]interface{})
	if wp.observer != nil {
		finishTiming = wp.observer.StartTiming("worker_pool", "process_job", job.FilePath)
	}

	result := &Result{JobID: job.JobID, FilePath: job.FilePath}

	if job.RedactionManager == nil {
		result.Error = redactors.ArgumentError("job has no redaction manager", "worker_pool")
	} else if err := wp.ctx.Err(); err != nil {
		result.Error = err
	} else {
		jobCtx, cancel := context.WithTimeout(wp.ctx, wp.jobTimeout)
		processed, err := job.RedactionManager.RedactFile(jobCtx, job.FilePath, job.OutputPath)
		cancel()

		result.Error = err
		if processed != nil {
			result.RedactionResult = processed.Result
			result.RedactedPath = processed.RedactedPath
			result.RedactorUsed = processed.RedactorUsed
		}
	}

	result.Duration = time.Since(start)

	if finishTiming != nil {
		finishTiming(result.Error == nil, map[string]interface{}{
			"worker_id":   workerID,
			"redactions":  result.RedactionResult.TotalRedactions(),
			"duration_ms": result.Duration.Milliseconds(),
			"had_error":   result.Error != nil,
		})
	}

	return result
}
