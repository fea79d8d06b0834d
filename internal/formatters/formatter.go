// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"sort"
	"strings"

	"pii-redactor/internal/parallel"
	"pii-redactor/internal/redactors"
)

// FormatterOptions defines configuration options for formatters
type FormatterOptions struct {
	Verbose bool // Whether to list label counts per file
	NoColor bool // Whether to disable colored output
}

// Formatter renders the report of a redaction run
type Formatter interface {
	// Format renders report in the formatter's output format
	Format(report *Report, options FormatterOptions) (string, error)

	// Name returns the name of the formatter (e.g., "json", "text", "csv")
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string

	// FileExtension returns the recommended file extension for this format (e.g., ".json", ".txt", ".csv")
	FileExtension() string
}

// Report is the outcome of one run over one or more inputs
type Report struct {
	Files   []FileReport `json:"files" yaml:"files"`
	Summary Summary      `json:"summary" yaml:"summary"`
}

// FileReport is the outcome for a single input
type FileReport struct {
	File        string         `json:"file" yaml:"file"`
	Output      string         `json:"output,omitempty" yaml:"output,omitempty"`
	Redactor    string         `json:"redactor,omitempty" yaml:"redactor,omitempty"`
	Redactions  int            `json:"redactions" yaml:"redactions"`
	LabelCounts map[string]int `json:"label_counts,omitempty" yaml:"label_counts,omitempty"`
	Regions     int            `json:"regions,omitempty" yaml:"regions,omitempty"`
	DurationMs  int64          `json:"duration_ms" yaml:"duration_ms"`
	Error       string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary aggregates a report
type Summary struct {
	TotalFiles      int            `json:"total_files" yaml:"total_files"`
	Redacted        int            `json:"redacted" yaml:"redacted"`
	Failed          int            `json:"failed" yaml:"failed"`
	TotalRedactions int            `json:"total_redactions" yaml:"total_redactions"`
	LabelCounts     map[string]int `json:"label_counts" yaml:"label_counts"`
	Workers         int            `json:"workers" yaml:"workers"`
	DurationMs      int64          `json:"duration_ms" yaml:"duration_ms"`
	FailuresByType  map[string]int `json:"failures_by_type,omitempty" yaml:"failures_by_type,omitempty"`
}

// NewReport builds a report from worker results, ordered by input path
func NewReport(results []*parallel.Result, stats *parallel.ProcessingStats) *Report {
	report := &Report{Files: make([]FileReport, 0, len(results))}
	for _, r := range results {
		fr := FileReport{
			File:       r.FilePath,
			Output:     r.RedactedPath,
			Redactor:   r.RedactorUsed,
			DurationMs: r.Duration.Milliseconds(),
		}
		if r.Error != nil {
			fr.Error = r.Error.Error()
			fr.Output = ""
		} else if r.RedactionResult != nil {
			fr.Redactions = r.RedactionResult.TotalRedactions()
			fr.LabelCounts = r.RedactionResult.LabelCounts
			fr.Regions = len(r.RedactionResult.RedactionMap)
		}
		report.Files = append(report.Files, fr)
	}
	sort.SliceStable(report.Files, func(i, j int) bool { return report.Files[i].File < report.Files[j].File })

	if stats != nil {
		report.Summary = Summary{
			TotalFiles:      stats.TotalFiles,
			Redacted:        stats.ProcessedFiles,
			Failed:          stats.FailedFiles,
			TotalRedactions: stats.TotalRedactions,
			LabelCounts:     stats.LabelCounts,
			Workers:         stats.WorkerCount,
			DurationMs:      stats.TotalDuration.Milliseconds(),
		}
	}
	if report.Summary.LabelCounts == nil {
		report.Summary.LabelCounts = map[string]int{}
	}
	return report
}

// WithFailures records the per-type failure counts of failures in the summary
func (r *Report) WithFailures(failures *redactors.RedactionErrorCollection) *Report {
	if failures != nil && failures.HasErrors() {
		r.Summary.FailuresByType = failures.CountByType()
	}
	return r
}

// Registry holds all registered formatters
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names, sorted
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry
var DefaultRegistry = NewRegistry()

// Register is a convenience function to register a formatter with the default registry
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get is a convenience function to get a formatter from the default registry
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List is a convenience function to list all formatters in the default registry
func List() []string {
	return DefaultRegistry.List()
}

// Export formats report with the named formatter from the default registry
func Export(format string, report *Report, options FormatterOptions) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format '%s'. Available formats: %s", format, strings.Join(List(), ", "))
	}
	return formatter.Format(report, options)
}
