// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redactors

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"pii-redactor/internal/observability"
)

// RedactionManager routes documents to the redactor registered for their
// extension. Inputs with no registered extension go to the fallback
// redactor. Failures are returned as-is; nothing is retried.
type RedactionManager struct {
	// redactors maps file extensions to their corresponding redactors
	redactors map[string]Redactor

	// fallback handles every extension without a registration
	fallback Redactor

	// observer handles observability and metrics
	observer *observability.StandardObserver

	// outputManager names and places output files
	outputManager *OutputStructureManager

	// mutex protects concurrent access to redactors map
	mu sync.RWMutex

	// stats tracks redaction statistics
	stats *RedactionStats
}

// RedactionStats tracks statistics for redaction operations
type RedactionStats struct {
	mu sync.RWMutex

	// TotalFiles is the total number of files processed
	TotalFiles int64

	// SuccessfulRedactions is the number of files redacted without error
	SuccessfulRedactions int64

	// FailedRedactions is the number of files that failed
	FailedRedactions int64

	// TotalRedactions is the total number of replacements and overlays
	TotalRedactions int64

	// LabelCounts aggregates RedactionResult.LabelCounts across files
	LabelCounts map[string]int64

	// ProcessingTime is the total time spent on redaction operations
	ProcessingTime time.Duration

	// RedactorStats tracks statistics per redactor
	RedactorStats map[string]*RedactorStats

	// StartTime is when the redaction manager was created
	StartTime time.Time
}

// RedactorStats tracks statistics for a specific redactor
type RedactorStats struct {
	FilesProcessed  int64
	SuccessfulCount int64
	FailedCount     int64
	TotalRedactions int64
	ProcessingTime  time.Duration
	LastProcessedAt time.Time
}

// NewRedactionManager creates a new RedactionManager
func NewRedactionManager(outputManager *OutputStructureManager, observer *observability.StandardObserver) *RedactionManager {
	if observer == nil {
		observer = observability.NewStandardObserver(observability.ObservabilityOff, nil)
	}

	return &RedactionManager{
		redactors:     make(map[string]Redactor),
		observer:      observer,
		outputManager: outputManager,
		stats:         newRedactionStats(),
	}
}

func newRedactionStats() *RedactionStats {
	return &RedactionStats{
		LabelCounts:   make(map[string]int64),
		RedactorStats: make(map[string]*RedactorStats),
		StartTime:     time.Now(),
	}
}

// RegisterRedactor registers a redactor for its supported file types
func (rm *RedactionManager) RegisterRedactor(redactor Redactor) error {
	if redactor == nil {
		return fmt.Errorf("redactor cannot be nil")
	}

	supportedTypes := redactor.GetSupportedTypes()
	if len(supportedTypes) == 0 {
		return fmt.Errorf("redactor must support at least one file type")
	}

	rm.mu.Lock()
	for _, fileType := range supportedTypes {
		rm.redactors[normalizeExt(fileType)] = redactor
	}
	total := len(rm.redactors)
	rm.mu.Unlock()

	rm.logEvent("redactor_registered", true, map[string]interface{}{
		"redactor_name":   redactor.GetName(),
		"supported_types": supportedTypes,
		"total_redactors": total,
	})

	return nil
}

// SetFallbackRedactor sets the redactor used for unregistered extensions
func (rm *RedactionManager) SetFallbackRedactor(redactor Redactor) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.fallback = redactor
}

// GetRedactorForFile returns the appropriate redactor for a given file
func (rm *RedactionManager) GetRedactorForFile(filePath string) (Redactor, error) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	ext := strings.ToLower(filepath.Ext(filePath))
	if redactor, exists := rm.redactors[ext]; exists && ext != "" {
		return redactor, nil
	}
	if rm.fallback != nil {
		return rm.fallback, nil
	}
	return nil, NewRedactionError(ErrorFormat, fmt.Sprintf("no redactor registered for file type %q", ext), filePath, "redaction_manager", nil)
}

// RedactFile redacts a single file. When outputPath is empty the output is
// written to the mirrored "<name>_redacted<ext>" path under the output
// directory.
func (rm *RedactionManager) RedactFile(ctx context.Context, inputPath, outputPath string) (*ProcessedFile, error) {
	startTime := time.Now()
	processed := &ProcessedFile{OriginalPath: inputPath}

	redactor, err := rm.GetRedactorForFile(inputPath)
	if err != nil {
		return rm.fail(processed, startTime, "", err)
	}
	processed.RedactorUsed = redactor.GetName()

	if rm.observer != nil && rm.observer.DebugObserver != nil {
		finishStep := rm.observer.DebugObserver.StartStep("redaction_manager", "redact with "+processed.RedactorUsed, inputPath)
		defer func() {
			if processed.Error != nil {
				finishStep(false, processed.Error.Error())
				return
			}
			finishStep(true, fmt.Sprintf("%d redactions", processed.Result.TotalRedactions()))
		}()
	}

	if outputPath == "" {
		if rm.outputManager == nil {
			return rm.fail(processed, startTime, processed.RedactorUsed,
				ArgumentError("no output path and no output directory configured", "redaction_manager"))
		}
		if outputPath, err = rm.outputManager.CreateRedactedPath(inputPath); err != nil {
			return rm.fail(processed, startTime, processed.RedactorUsed,
				NewRedactionError(ErrorFileSystem, "failed to create output path", inputPath, "redaction_manager", err))
		}
		if err := rm.outputManager.EnsureDirectoryExists(outputPath); err != nil {
			return rm.fail(processed, startTime, processed.RedactorUsed,
				NewRedactionError(ErrorFileSystem, "failed to create output directory", inputPath, "redaction_manager", err))
		}
	}
	processed.RedactedPath = outputPath

	result, err := redactor.RedactDocument(ctx, inputPath, outputPath)
	if err != nil {
		return rm.fail(processed, startTime, processed.RedactorUsed, err)
	}
	if rm.outputManager != nil {
		if err := rm.outputManager.PreserveAttributes(inputPath, outputPath); err != nil {
			return rm.fail(processed, startTime, processed.RedactorUsed,
				NewRedactionError(ErrorFileSystem, "failed to preserve file attributes", outputPath, "redaction_manager", err))
		}
	}

	processed.Result = result
	processed.ProcessingTime = time.Since(startTime)

	rm.updateStats(func(stats *RedactionStats) {
		stats.TotalFiles++
		stats.SuccessfulRedactions++
		stats.ProcessingTime += processed.ProcessingTime
		stats.TotalRedactions += int64(result.TotalRedactions())
		for label, n := range result.LabelCounts {
			stats.LabelCounts[label] += int64(n)
		}

		rs := stats.redactor(processed.RedactorUsed)
		rs.FilesProcessed++
		rs.SuccessfulCount++
		rs.TotalRedactions += int64(result.TotalRedactions())
		rs.ProcessingTime += processed.ProcessingTime
		rs.LastProcessedAt = time.Now()
	})

	rm.logEvent("redaction_successful", true, map[string]interface{}{
		"file_path":        inputPath,
		"output_path":      outputPath,
		"redactor_name":    processed.RedactorUsed,
		"redactions_count": result.TotalRedactions(),
		"processing_time":  processed.ProcessingTime.String(),
	})

	return processed, nil
}

func (rm *RedactionManager) fail(processed *ProcessedFile, startTime time.Time, redactorName string, err error) (*ProcessedFile, error) {
	processed.Error = err
	processed.ProcessingTime = time.Since(startTime)

	rm.updateStats(func(stats *RedactionStats) {
		stats.TotalFiles++
		stats.FailedRedactions++
		stats.ProcessingTime += processed.ProcessingTime
		if redactorName != "" {
			rs := stats.redactor(redactorName)
			rs.FilesProcessed++
			rs.FailedCount++
			rs.LastProcessedAt = time.Now()
		}
	})

	rm.logEvent("redaction_failed", false, map[string]interface{}{
		"file_path":     processed.OriginalPath,
		"redactor_name": redactorName,
		"error":         err.Error(),
	})

	return processed, err
}

func (s *RedactionStats) redactor(name string) *RedactorStats {
	rs, exists := s.RedactorStats[name]
	if !exists {
		rs = &RedactorStats{}
		s.RedactorStats[name] = rs
	}
	return rs
}

// GetStats returns a copy of the current redaction statistics
func (rm *RedactionManager) GetStats() *RedactionStats {
	rm.stats.mu.RLock()
	defer rm.stats.mu.RUnlock()

	stats := &RedactionStats{
		TotalFiles:           rm.stats.TotalFiles,
		SuccessfulRedactions: rm.stats.SuccessfulRedactions,
		FailedRedactions:     rm.stats.FailedRedactions,
		TotalRedactions:      rm.stats.TotalRedactions,
		ProcessingTime:       rm.stats.ProcessingTime,
		StartTime:            rm.stats.StartTime,
		LabelCounts:          make(map[string]int64, len(rm.stats.LabelCounts)),
		RedactorStats:        make(map[string]*RedactorStats, len(rm.stats.RedactorStats)),
	}
	for label, n := range rm.stats.LabelCounts {
		stats.LabelCounts[label] = n
	}
	for name, rs := range rm.stats.RedactorStats {
		copied := *rs
		stats.RedactorStats[name] = &copied
	}
	return stats
}

// updateStats safely updates statistics using a callback function
func (rm *RedactionManager) updateStats(updateFunc func(*RedactionStats)) {
	rm.stats.mu.Lock()
	defer rm.stats.mu.Unlock()
	updateFunc(rm.stats)
}

// logEvent logs an event if observer is available
func (rm *RedactionManager) logEvent(operation string, success bool, metadata map[string]interface{}) {
	if rm.observer != nil {
		rm.observer.StartTiming("redaction_manager", operation, "")(success, metadata)
	}
}

// GetComponentName returns the component name for observability
func (rm *RedactionManager) GetComponentName() string {
	return "redaction_manager"
}

func normalizeExt(fileType string) string {
	ext := strings.ToLower(fileType)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
